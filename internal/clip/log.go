package clip

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"go.klb.dev/cyoclip/internal/bom"
)

const previewRunes = 120

// LogPayload logs a completed copy at INFO (backend, encoding, size) and
// DEBUG (text preview up to 120 characters).
func LogPayload(backend string, enc bom.Encoding, payload []byte) {
	slog.Info("clipboard replaced", "backend", backend, "encoding", enc.String(), "size_bytes", len(payload))

	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	text, err := enc.ToUTF8(payload)
	if err != nil {
		slog.Debug("clipboard text", "preview_err", err)
		return
	}
	slog.Debug("clipboard text", "preview", preview(text, previewRunes))
}

func preview(text []byte, limit int) string {
	if utf8.RuneCount(text) <= limit {
		return string(text)
	}
	n := 0
	for i := range string(text) {
		if n == limit {
			return string(text[:i]) + "…"
		}
		n++
	}
	return string(text)
}
