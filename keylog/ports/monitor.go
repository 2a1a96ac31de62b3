package ports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"sort"
	"sync"
	"time"

	"go.bug.st/serial"
)

const DefaultPollingInterval = 5 * time.Second

// DeviceOpener opens a device node for reading.
type DeviceOpener interface {
	Open(devicePath string) (io.ReadCloser, error)
}

type SerialOpener struct{}

func (SerialOpener) Open(devicePath string) (io.ReadCloser, error) {
	return Open(devicePath)
}

// MonitoringDeviceReader polls for ZMK consoles, opens new ones as they
// appear and forgets them once they disconnect.
type MonitoringDeviceReader struct {
	pathToLookup string

	devicesList map[string]io.ReadCloser
	lock        sync.RWMutex

	opener DeviceOpener
	lister func() ([]string, error)

	pollingInterval time.Duration
}

func DefaultMonitoringDeviceReader() *MonitoringDeviceReader {
	return NewMonitoringDeviceReader("/dev/")
}

func NewMonitoringDeviceReader(pathToLookup string) *MonitoringDeviceReader {
	r := &MonitoringDeviceReader{
		pathToLookup:    pathToLookup,
		devicesList:     make(map[string]io.ReadCloser),
		opener:          SerialOpener{},
		pollingInterval: DefaultPollingInterval,
	}
	r.lister = r.scanDevices

	return r
}

// WithOpener replaces how devices are opened and listed.
func (r *MonitoringDeviceReader) WithOpener(opener DeviceOpener, lister func() ([]string, error)) *MonitoringDeviceReader {
	r.opener = opener
	if lister != nil {
		r.lister = lister
	}

	return r
}

func (r *MonitoringDeviceReader) WithPollingInterval(d time.Duration) *MonitoringDeviceReader {
	r.pollingInterval = d

	return r
}

// Close closes every open device, even when some of them fail to close.
func (r *MonitoringDeviceReader) Close() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	var errs []error

	for devicePath, device := range r.devicesList {
		if err := device.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing device %s: %w", devicePath, err))
		}

		delete(r.devicesList, devicePath)
	}

	return errors.Join(errs...)
}

// Devices returns the currently open device paths, sorted.
func (r *MonitoringDeviceReader) Devices() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	result := make([]string, 0, len(r.devicesList))
	for p := range r.devicesList {
		result = append(result, p)
	}

	sort.Strings(result)

	return result
}

func (r *MonitoringDeviceReader) removeDevice(devicePath string, device io.ReadCloser) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	current, ok := r.devicesList[devicePath]
	if !ok || current != device {
		return nil
	}

	delete(r.devicesList, devicePath)
	slog.Info("Device disconnected", "path", devicePath)

	if err := device.Close(); err != nil {
		return fmt.Errorf("error closing device %s: %w", devicePath, err)
	}

	return nil
}

// AddDevice opens devicePath, if not open yet, and forwards its lines to out.
func (r *MonitoringDeviceReader) AddDevice(ctx context.Context, devicePath string, out chan<- string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, exists := r.devicesList[devicePath]; exists {
		slog.Debug("Device already exists, skipping", "path", devicePath)

		return nil
	}

	device, err := r.opener.Open(devicePath)
	if err != nil {
		return fmt.Errorf("error opening device %s: %w", devicePath, err)
	}

	r.devicesList[devicePath] = device

	slog.Info("Device connected", "path", devicePath)

	go func() {
		defer func() {
			if err := r.removeDevice(devicePath, device); err != nil {
				slog.Warn("Could not close disconnected device", "error", err)
			}
		}()

		for line := range ReadFile(ctx, device) {
			if !send(ctx, out, line) {
				return
			}
		}
	}()

	return nil
}

// FindDevices lists devices that should be opened and are not open yet.
func (r *MonitoringDeviceReader) FindDevices() ([]string, error) {
	candidates, err := r.lister()
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(candidates))

	for _, devicePath := range candidates {
		if r.shouldOpenDevice(devicePath) {
			result = append(result, devicePath)
		}
	}

	sort.Strings(result)

	return result, nil
}

// Channel polls until ctx is done, merging every connected device's lines.
// The channel is never closed; readers stop on ctx.
func (r *MonitoringDeviceReader) Channel(ctx context.Context) <-chan string {
	out := make(chan string, 5)

	go func() {
		slog.Info("Monitoring started", "path", r.pathToLookup)
		defer slog.Info("End monitoring", "path", r.pathToLookup)

		ticker := time.NewTicker(r.pollingInterval)
		defer ticker.Stop()

		for {
			r.poll(ctx, out)

			select {
			case <-ctx.Done():
				if err := r.Close(); err != nil {
					slog.Error("Could not close devices", "error", err)
				}

				return
			case <-ticker.C:
			}
		}
	}()

	return out
}

func (r *MonitoringDeviceReader) poll(ctx context.Context, out chan<- string) {
	devices, err := r.FindDevices()
	if err != nil {
		slog.Error("Error finding devices", "error", err)

		return
	}

	for _, devicePath := range devices {
		if err := r.AddDevice(ctx, devicePath, out); err != nil {
			slog.Error("Could not add device", "path", devicePath, "error", err)
		}
	}
}

func (r *MonitoringDeviceReader) scanDevices() ([]string, error) {
	serialDevices, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("could not get list of serial ports: %w", err)
	}

	entries, err := os.ReadDir(r.pathToLookup)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", r.pathToLookup, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || entry.Type()&os.ModeDevice == 0 {
			continue
		}

		serialDevices = append(serialDevices, path.Join(r.pathToLookup, entry.Name()))
	}

	return serialDevices, nil
}

func (r *MonitoringDeviceReader) shouldOpenDevice(devicePath string) bool {
	if !LooksLikeZMKDevice(devicePath) {
		return false
	}

	r.lock.RLock()
	defer r.lock.RUnlock()

	_, ok := r.devicesList[devicePath]

	return !ok
}
