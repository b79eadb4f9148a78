package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/devclass/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	logPath := flag.String("log", "", "write logs to this file (optional)")
	width := flag.Int("width", -1, "classify this width in pixels and exit")
	watch := flag.Bool("watch", false, "print device class changes as the terminal is resized")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		LogPath:    *logPath,
		Mode:       app.ModeUI,
	}
	switch {
	case *width >= 0:
		opts.Mode = app.ModeReport
		opts.Width = *width
	case *watch:
		opts.Mode = app.ModeWatch
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "devclass: %v\n", err)
		return 1
	}
	return 0
}
