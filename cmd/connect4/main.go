package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/iamasit07/connect4-engine/internal/driver"
	"github.com/iamasit07/connect4-engine/internal/logging"
	"github.com/iamasit07/connect4-engine/internal/transport/terminal"
)

func main() {
	driverName := flag.String("driver", "", "play columns automatically: random or lua")
	script := flag.String("script", "", "Lua script defining choose(board, turn), for -driver lua")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for -driver random")
	interval := flag.Duration("interval", 500*time.Millisecond, "delay between driver moves")
	logPath := flag.String("log", "connect4.log", "log file")
	level := flag.String("level", "info", "log level")
	flag.Parse()

	if err := run(*driverName, *script, *seed, *interval, *logPath, *level); err != nil {
		fmt.Fprintln(os.Stderr, "connect4:", err)
		os.Exit(1)
	}
}

func run(driverName, script string, seed uint64, interval time.Duration, logPath, level string) error {
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logging.Setup(logFile, level)

	var drv driver.Driver
	switch driverName {
	case "":
	case "random":
		drv = driver.NewRandom(seed)
	case "lua":
		l, err := driver.LoadLuaFile(script)
		if err != nil {
			return err
		}
		defer l.Close()
		drv = l
	default:
		return fmt.Errorf("unknown driver %q", driverName)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("driver", driverName).Msg("terminal session started")
	return terminal.NewApp(screen, drv, interval, log).Run(ctx)
}
