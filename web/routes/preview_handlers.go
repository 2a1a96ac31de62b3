package routes

import (
	"bytes"
	"fmt"
	"image/png"
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/dasdy/keylayout/model"
	cs "github.com/dasdy/keylayout/web/components"
)

// MaxScrollDelta bounds a single scroll request; larger values are clamped.
const MaxScrollDelta = 255

func (s *ServerHandler) IndexHandle(w http.ResponseWriter, r *http.Request) {
	slog.Debug("Got request to preview page")

	renderContext := cs.NewRenderContext(s.Table, s.RefreshInterval)
	if err := RenderPage(r.Context(), w, cs.Page(&renderContext)); err != nil {
		slog.Error("Could not render preview page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *ServerHandler) FrameHandle(w http.ResponseWriter, _ *http.Request) {
	img, version, ok := s.Preview.Snapshot()
	if !ok {
		http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)

		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		slog.Error("Could not encode frame", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("ETag", fmt.Sprintf("\"%d\"", version))

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}

func (s *ServerHandler) ToggleHandle(w http.ResponseWriter, _ *http.Request) {
	s.Preview.Toggle()
	w.WriteHeader(http.StatusNoContent)
}

func (s *ServerHandler) KeyHandle(w http.ResponseWriter, r *http.Request) {
	k := r.URL.Query().Get("k")

	if utf8.RuneCountInString(k) != 1 {
		http.Error(w, "k must be a single character", http.StatusBadRequest)

		return
	}

	c, _ := utf8.DecodeRuneInString(k)
	s.Preview.Key(c)
	w.WriteHeader(http.StatusNoContent)
}

func (s *ServerHandler) ScrollHandle(w http.ResponseWriter, r *http.Request) {
	delta, err := strconv.Atoi(r.URL.Query().Get("delta"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	s.Preview.Scroll(max(-MaxScrollDelta, min(MaxScrollDelta, delta)))
	w.WriteHeader(http.StatusNoContent)
}

func (s *ServerHandler) PressHandle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	code, err := model.ParseKeyCode(q.Get("code"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	pressed, err := strconv.ParseBool(q.Get("pressed"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	s.Preview.Transition(model.KeyTransition{Code: code, Pressed: pressed})
	w.WriteHeader(http.StatusNoContent)
}
