package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/1siamBot/snake-engine/engine/audio"
	"github.com/1siamBot/snake-engine/engine/audio/beepaudio"
	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/term"
	"github.com/gdamore/tcell/v2"
)

const (
	logDir      = "logs"
	logFileName = "snake-term.log"
)

var (
	configPath = flag.String("config", "", "JSON config file")
	seed       = flag.Uint64("seed", 0, "food placement seed (0 = random)")
	interval   = flag.Duration("interval", 0, "time between moves (default 180ms)")
	sound      = flag.Bool("sound", false, "play sound effects")
	debugLog   = flag.Bool("debug", false, "write a log file under ./logs")
)

// setupLogging keeps log output off the terminal. With debug it goes to a
// file, otherwise it is discarded.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func loadConfig() (core.Config, error) {
	cfg := core.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(*configPath); err != nil {
			return cfg, err
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *interval > 0 {
		cfg.Interval = *interval
	}
	return cfg, cfg.Validate()
}

func run(screen tcell.Screen, cfg core.Config) error {
	engine, err := core.NewEngine(cfg)
	if err != nil {
		return err
	}
	loop := core.NewGameLoop(engine, cfg.Interval, core.SystemClock{})

	bus := engine.Events()
	bus.On(core.EvtGameOver, func(e core.Event) {
		over := e.Payload.(core.GameOver)
		log.Printf("game over: %s, score %d, length %d", over.Reason, over.Score, over.Length)
	})
	bus.On(core.EvtRestart, func(core.Event) { log.Printf("restart") })

	if *sound {
		sink, err := beepaudio.New()
		if err != nil {
			// Non-fatal, game can run without sound
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer sink.Close()
			audio.NewAudioManager(sink).Attach(bus)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = term.Run(ctx, term.NewRenderer(screen), loop)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	flag.Parse()

	if f := setupLogging(*debugLog); f != nil {
		defer f.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: init screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "snake-term crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	err = run(screen, cfg)
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}
