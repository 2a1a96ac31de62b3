package terminal

import (
	"fmt"
	"log/slog"
	"unicode"

	"github.com/dasdy/keylayout/app"
	"github.com/dasdy/keylayout/model"
	"github.com/dasdy/keylayout/render"
	"github.com/gdamore/tcell/v2"
)

const upperHalfBlock = '▀'

var runeCodes = map[rune]model.KeyCode{
	'`': model.KeyBackQuote, '1': model.KeyNum1, '2': model.KeyNum2, '3': model.KeyNum3,
	'4': model.KeyNum4, '5': model.KeyNum5, '6': model.KeyNum6, '7': model.KeyNum7,
	'8': model.KeyNum8, '9': model.KeyNum9, '0': model.KeyNum0, '-': model.KeyMinus,
	'=': model.KeyEqual, 'q': model.KeyQ, 'w': model.KeyW, 'e': model.KeyE, 'r': model.KeyR,
	't': model.KeyT, 'y': model.KeyY, 'u': model.KeyU, 'i': model.KeyI, 'o': model.KeyO,
	'p': model.KeyP, '[': model.KeyLeftBracket, ']': model.KeyRightBracket, '\\': model.KeyBackSlash,
	'a': model.KeyA, 's': model.KeyS, 'd': model.KeyD, 'f': model.KeyF, 'g': model.KeyG,
	'h': model.KeyH, 'j': model.KeyJ, 'k': model.KeyK, 'l': model.KeyL, ';': model.KeySemiColon,
	'\'': model.KeyQuote, 'z': model.KeyZ, 'x': model.KeyX, 'c': model.KeyC, 'v': model.KeyV,
	'b': model.KeyB, 'n': model.KeyN, 'm': model.KeyM, ',': model.KeyComma, '.': model.KeyDot,
	'/': model.KeySlash, ' ': model.KeySpace,
}

var specialCodes = map[tcell.Key]model.KeyCode{
	tcell.KeyEnter:      model.KeyReturn,
	tcell.KeyTab:        model.KeyTab,
	tcell.KeyBackspace2: model.KeyBackspace,
	tcell.KeyBackspace:  model.KeyBackspace,
	tcell.KeyDelete:     model.KeyDelete,
	tcell.KeyHome:       model.KeyHome,
	tcell.KeyEnd:        model.KeyEnd,
	tcell.KeyUp:         model.KeyUpArrow,
	tcell.KeyDown:       model.KeyDownArrow,
	tcell.KeyLeft:       model.KeyLeftArrow,
	tcell.KeyRight:      model.KeyRightArrow,
}

// Surface renders frames with half-block characters, two pixel rows per
// cell. Terminals report no key releases, so typed keys are shown as taps
// released on the next poll.
type Surface struct {
	screen tcell.Screen
	events chan tcell.Event

	taps       []model.KeyTransition
	tapChars   []rune
	middleDown bool
}

// Open starts a surface on the controlling terminal.
func Open() (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("could not create terminal screen: %w", err)
	}

	return New(screen)
}

// New initializes screen and starts reading its events.
func New(screen tcell.Screen) (*Surface, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize terminal screen: %w", err)
	}

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	s := &Surface{
		screen: screen,
		events: make(chan tcell.Event, 100),
	}

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(s.events)

				return
			}

			s.events <- ev
		}
	}()

	return s, nil
}

func (s *Surface) Poll() app.HostInput {
	in := app.HostInput{
		Transitions: s.taps,
		Keys:        s.tapChars,
	}
	s.taps = nil
	s.tapChars = nil

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				in.Quit = true

				return in
			}

			s.handle(ev, &in)

			if in.Quit {
				return in
			}
		default:
			return in
		}
	}
}

func (s *Surface) handle(ev tcell.Event, in *app.HostInput) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev, in)
	case *tcell.EventMouse:
		buttons := ev.Buttons()

		middle := buttons&tcell.ButtonMiddle != 0
		if middle && !s.middleDown {
			in.Toggle = true
		}

		s.middleDown = middle

		if buttons&tcell.WheelUp != 0 {
			in.Wheel++
		}

		if buttons&tcell.WheelDown != 0 {
			in.Wheel--
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

func (s *Surface) handleKey(ev *tcell.EventKey, in *app.HostInput) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.Quit = true

		return
	case tcell.KeyRune:
		r := ev.Rune()
		lower := unicode.ToLower(r)

		if code, ok := runeCodes[lower]; ok {
			s.tap(code, in)

			if r != lower {
				s.tap(model.KeyShiftLeft, in)
			}
		}

		s.tapChars = append(s.tapChars, lower)
	default:
		if code, ok := specialCodes[ev.Key()]; ok {
			s.tap(code, in)
		}

		s.tapChars = append(s.tapChars, 0)
	}
}

func (s *Surface) tap(code model.KeyCode, in *app.HostInput) {
	in.Transitions = append(in.Transitions, model.KeyTransition{Code: code, Pressed: true})
	s.taps = append(s.taps, model.KeyTransition{Code: code, Pressed: false})
}

func cellColor(c model.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

// Present scales the frame to fit the terminal, keeping its aspect ratio.
func (s *Surface) Present(frame *render.PixelBuffer) error {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 || frame.Width() == 0 || frame.Height() == 0 {
		return nil
	}

	step := max(float64(frame.Width())/float64(cols), float64(frame.Height())/float64(rows*2))

	for cy := range rows {
		for cx := range cols {
			x := int(float64(cx) * step)
			top := int(float64(2*cy) * step)
			bottom := int(float64(2*cy+1) * step)

			if x >= frame.Width() || top >= frame.Height() {
				s.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault)

				continue
			}

			style := tcell.StyleDefault.
				Foreground(cellColor(frame.At(x, top))).
				Background(cellColor(frame.At(x, bottom)))
			s.screen.SetContent(cx, cy, upperHalfBlock, nil, style)
		}
	}

	s.screen.Show()

	return nil
}

func (s *Surface) Close() error {
	slog.Debug("Closing terminal screen")
	s.screen.Fini()

	return nil
}
