package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/cyoclip/internal/clip"
	"go.klb.dev/cyoclip/internal/input"
)

func runCopy(cmd *cobra.Command, v *viper.Viper) error {
	setupLogging(cmd, v)

	res, err := input.Read(cmd.InOrStdin(), input.MaxBytes)
	if err != nil {
		return err
	}
	slog.Debug("stdin read", "bytes", len(res.Data), "truncated", res.Truncated)

	be, err := newBackend(v.GetString("backend"))
	if err != nil {
		return err
	}

	if _, err := clip.Copy(be, res.Data); err != nil {
		return err
	}

	h, ok := be.(clip.Holder)
	if !ok {
		return nil
	}
	if !v.GetBool("hold") {
		slog.Warn("clipboard content lasts only while cyoclip runs; drop --hold=false to keep it",
			"backend", be.Name())
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return h.Hold(ctx)
}
