package xl

import (
	"bytes"
	"log/slog"
)

func newTestEncoder() (*Encoder, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewEncoder(WithLogger(log)), buf
}
