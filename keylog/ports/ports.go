package ports

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"go.bug.st/serial"
)

// ZMK's CDC ACM console ignores the baud rate, any value works.
const baudRate = 9600

var devicePrefixes = []string{"tty.usbmodem", "cu.usbmodem", "ttyACM"}

// LooksLikeZMKDevice reports whether path names a USB modem device node
// directly under /dev.
func LooksLikeZMKDevice(path string) bool {
	if filepath.Dir(path) != "/dev" {
		return false
	}

	name := filepath.Base(path)
	for _, p := range devicePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}

	return false
}

// Open opens a serial console and never times out on reads.
func Open(path string) (serial.Port, error) {
	port, err := serial.Open(path, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("could not open port %s: %w", path, err)
	}

	if err := port.SetReadTimeout(serial.NoTimeout); err != nil {
		port.Close()

		return nil, fmt.Errorf("could not set read timeout on %s: %w", path, err)
	}

	return port, nil
}

// send delivers line unless ctx is done first.
func send(ctx context.Context, out chan<- string, line string) bool {
	if ctx.Err() != nil {
		return false
	}

	select {
	case out <- line:
		return true
	case <-ctx.Done():
		return false
	}
}

// ReadFile sends r line by line. The channel closes at EOF or once ctx is
// done; a read in progress still has to return first.
func ReadFile(ctx context.Context, r io.Reader) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !send(ctx, out, scanner.Text()) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			slog.Warn("Reader stopped", "error", err)
		}
	}()

	return out
}

// Merge fans in several line channels. The result closes once all inputs are
// closed or ctx is done.
func Merge(ctx context.Context, inputs ...<-chan string) <-chan string {
	out := make(chan string)

	var wg sync.WaitGroup

	for _, in := range inputs {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for {
				select {
				case line, ok := <-in:
					if !ok || !send(ctx, out, line) {
						return
					}
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// ReadTwoFiles reads two halves of a split keyboard at the same time.
func ReadTwoFiles(ctx context.Context, r1, r2 io.Reader) <-chan string {
	return Merge(ctx, ReadFile(ctx, r1), ReadFile(ctx, r2))
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var errs []error

	for _, c := range m {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// OpenFiles opens every serial device and merges their lines.
func OpenFiles(ctx context.Context, paths ...string) (<-chan string, io.Closer, error) {
	closers := make(multiCloser, 0, len(paths))
	channels := make([]<-chan string, 0, len(paths))

	for _, p := range paths {
		port, err := Open(p)
		if err != nil {
			closers.Close()

			return nil, nil, err
		}

		closers = append(closers, port)
		channels = append(channels, ReadFile(ctx, port))
	}

	return Merge(ctx, channels...), closers, nil
}

// OpenTwoFiles opens both halves of a split keyboard.
func OpenTwoFiles(ctx context.Context, path1, path2 string) (<-chan string, io.Closer, error) {
	return OpenFiles(ctx, path1, path2)
}

// GetAvailableDevices lists serial ports that look like ZMK consoles.
func GetAvailableDevices() ([]string, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("could not get list of serial ports: %w", err)
	}

	result := make([]string, 0, len(names))

	for _, n := range names {
		if LooksLikeZMKDevice(n) {
			result = append(result, n)
		}
	}

	return result, nil
}
