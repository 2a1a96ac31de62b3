package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gitlab.com/greyxor/slogor"
)

type ctxKey string

const (
	slogFields  ctxKey = "slog_fields"
	PackageName string = "package"
)

// ContextHandler copies attributes stored with AppendCtx into every record.
type ContextHandler struct {
	slog.Handler
}

func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}

	if err := h.Handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("error handling record for a log: %+v: %w", r, err)
	}

	return nil
}

func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{h.Handler.WithAttrs(attrs)}
}

func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{h.Handler.WithGroup(name)}
}

// NewHandler builds the colored terminal handler used by all commands.
func NewHandler(w io.Writer, verbose bool) slog.Handler {
	if verbose {
		return ContextHandler{slogor.NewHandler(w,
			slogor.SetLevel(slog.LevelDebug),
			slogor.SetTimeFormat(time.DateTime),
			slogor.ShowSource())}
	}

	return ContextHandler{slogor.NewHandler(w,
		slogor.SetLevel(slog.LevelInfo),
		slogor.SetTimeFormat(time.DateTime))}
}

// Setup installs the handler as the slog default.
func Setup(w io.Writer, verbose bool) {
	slog.SetDefault(slog.New(NewHandler(w, verbose)))
}

// AppendCtx adds an slog attribute to the provided context so that it will be included in any Record created with such context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	v, _ := parent.Value(slogFields).([]slog.Attr)

	attrs := make([]slog.Attr, 0, len(v)+1)
	attrs = append(attrs, v...)
	attrs = append(attrs, attr)

	return context.WithValue(parent, slogFields, attrs)
}

func PackageCtx(packageName string) context.Context {
	return AppendCtx(context.Background(), slog.String(PackageName, packageName))
}
