package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/config"
)

// setupLogging installs a text logger at the configured level. -v and -vv
// raise it to info and debug.
func setupLogging(ctx *cli.Context, cfg *config.Config) {
	level := cfg.LogLevel()
	if ctx.GlobalBool("v") && level > slog.LevelInfo {
		level = slog.LevelInfo
	}
	if ctx.GlobalBool("vv") {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	gfx.SetLogger(slog.New(h))
}
