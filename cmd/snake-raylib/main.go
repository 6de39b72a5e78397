package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/1siamBot/snake-engine/engine/core"
	"github.com/1siamBot/snake-engine/engine/input"
	"github.com/1siamBot/snake-engine/engine/render/style"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	configPath = flag.String("config", "", "JSON config file")
	seed       = flag.Uint64("seed", 0, "food placement seed (0 = random)")
	interval   = flag.Duration("interval", 0, "time between moves (default 180ms)")
)

var bindings = map[int32]input.Action{
	rl.KeyUp:    input.ActionUp,
	rl.KeyDown:  input.ActionDown,
	rl.KeyLeft:  input.ActionLeft,
	rl.KeyRight: input.ActionRight,
	rl.KeyW:     input.ActionUp,
	rl.KeyS:     input.ActionDown,
	rl.KeyA:     input.ActionLeft,
	rl.KeyD:     input.ActionRight,
	rl.KeyR:     input.ActionRestart,
	rl.KeySpace: input.ActionRestart,
	rl.KeyEnter: input.ActionRestart,
	rl.KeyP:     input.ActionPause,
	rl.KeyQ:     input.ActionQuit,
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

// pollInput drains the key queue so several presses in one frame all count
func pollInput(loop *core.GameLoop) (quit bool) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if a, ok := bindings[key]; ok && input.Handle(loop, a) {
			return true
		}
	}
	return false
}

func draw(l style.Layout, theme style.Theme, snap core.Snapshot, paused bool) {
	side := int32(l.BoardSize(snap.Grid))
	ox, oy := int32(l.OffsetX), int32(l.OffsetY)

	rl.ClearBackground(rl.White)
	rl.DrawRectangleGradientV(ox, oy, side, side, theme.BackgroundTop, theme.BackgroundBottom)

	if snap.HasFood {
		x, y := l.CellCenter(snap.Food)
		rl.DrawCircle(int32(x), int32(y), l.FoodRadius(), theme.Food)
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		x, y := l.CellCenter(snap.Snake[i])
		clr := theme.Body
		if i == 0 {
			clr = theme.Head
		}
		rl.DrawCircle(int32(x), int32(y), l.SegmentRadius(), clr)
	}
	if len(snap.Snake) > 0 {
		x1, y1, x2, y2 := l.Eyes(snap.Snake[0], snap.Direction)
		rl.DrawCircle(int32(x1), int32(y1), l.EyeRadius(), theme.Eye)
		rl.DrawCircle(int32(x2), int32(y2), l.EyeRadius(), theme.Eye)
	}
	rl.DrawRectangleLines(ox, oy, side, side, theme.Border)

	cx := ox + side/2
	drawCentered(fmt.Sprintf("Score: %d", snap.Score), cx, oy+side+style.HUDHeight/2, 20, theme.Text)

	mid := oy + side/2
	switch {
	case !snap.Alive:
		rl.DrawRectangle(ox, mid-30, side, 60, rl.NewColor(255, 255, 255, 200))
		drawCentered("Game Over!", cx, mid-12, 20, theme.GameOver)
		drawCentered(style.GameOverHint(snap.Reason), cx, mid+12, 10, theme.Text)
	case paused:
		drawCentered("Paused", cx, mid, 20, theme.Text)
	}
}

func drawCentered(s string, cx, cy, size int32, clr rl.Color) {
	w := rl.MeasureText(s, size)
	rl.DrawText(s, cx-w/2, cy-size/2, size, clr)
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	engine, err := core.NewEngine(cfg)
	if err != nil {
		log.Fatal(err)
	}
	loop := core.NewGameLoop(engine, cfg.Interval, core.SystemClock{})
	engine.Events().On(core.EvtGameOver, func(e core.Event) {
		over := e.Payload.(core.GameOver)
		log.Printf("game over: %s, score %d, length %d", over.Reason, over.Score, over.Length)
	})

	layout := style.Layout{Scale: cfg.Scale}
	w, h := layout.ScreenSize(engine.Grid())

	rl.InitWindow(int32(w), int32(h), "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() && !loop.Stopped() {
		if pollInput(loop) {
			break
		}
		loop.Update()

		rl.BeginDrawing()
		draw(layout, style.DefaultTheme, engine.Snapshot(), loop.Paused())
		rl.EndDrawing()
	}
	loop.Stop()
}
