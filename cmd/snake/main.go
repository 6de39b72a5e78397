package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/1siamBot/snake-engine/engine/audio"
	"github.com/1siamBot/snake-engine/engine/audio/ebitenaudio"
	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/input"
	"github.com/1siamBot/snake-engine/engine/input/ebitenkeys"
	"github.com/1siamBot/snake-engine/engine/render"
	"github.com/1siamBot/snake-engine/engine/render/style"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	configPath = flag.String("config", "", "JSON config file")
	seed       = flag.Uint64("seed", 0, "food placement seed (0 = random)")
	interval   = flag.Duration("interval", 0, "time between moves (default 180ms)")
	mute       = flag.Bool("mute", false, "disable sound")
	debug      = flag.Bool("debug", false, "show frame and tick counters")
)

// Game implements ebiten.Game interface
type Game struct {
	loop     *core.GameLoop
	keyboard *ebitenkeys.Keyboard
	renderer *render.BoardRenderer
	width    int
	height   int
}

func NewGame(cfg core.Config) (*Game, error) {
	engine, err := core.NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	g := &Game{
		loop:     core.NewGameLoop(engine, cfg.Interval, core.SystemClock{}),
		keyboard: ebitenkeys.NewKeyboard(),
		renderer: render.NewBoardRenderer(cfg.Scale, style.DefaultTheme),
	}
	g.width, g.height = g.renderer.Layout.ScreenSize(engine.Grid())

	bus := engine.Events()
	bus.On(core.EvtGameStart, func(core.Event) { log.Printf("game started on %dx%d grid", engine.Grid().Size, engine.Grid().Size) })
	bus.On(core.EvtGameOver, func(e core.Event) {
		over := e.Payload.(core.GameOver)
		log.Printf("game over: %s, score %d, length %d", over.Reason, over.Score, over.Length)
	})

	if !*mute {
		audio.NewAudioManager(ebitenaudio.New()).Attach(bus)
	}
	return g, nil
}

func (g *Game) Update() error {
	for _, a := range g.keyboard.Poll() {
		if input.Handle(g.loop, a) {
			return ebiten.Termination
		}
	}

	// Game simulation tick
	g.loop.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.loop.Engine.Snapshot()
	g.renderer.Draw(screen, snap, g.loop.Paused())

	if *debug {
		info := fmt.Sprintf("FPS: %.0f | Tick: %d | Frame: %d\nLength: %d | Heading: %s",
			ebiten.ActualFPS(),
			snap.Ticks,
			g.loop.Engine.Frame(),
			len(snap.Snake),
			snap.Direction,
		)
		ebitenutil.DebugPrint(screen, info)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
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

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer game.loop.Stop()

	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	start := time.Now()
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("session ended after %s", time.Since(start).Round(time.Second))
}
