package main

import (
	"log"
	"runtime"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	runtime.LockOSThread() // <-- must be first on macOS

	cfg, err := LoadConfig()
	if err != nil {
		log.Printf("Invalid environment, using defaults: %v", err)
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), portfolio.Name)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 20)
	gui.SetStyle(gui.BUTTON, gui.BASE_COLOR_NORMAL, colorHex(buttonBlue))
	gui.SetStyle(gui.BUTTON, gui.TEXT_COLOR_NORMAL, colorHex(textMain))

	chime := NewChime(cfg.Chime)
	chime.Init()
	defer chime.Close()

	clock := NewClock(1 / cfg.StepHz)
	shell := NewShell(cfg, &portfolio, pointer, clock, chime)
	shell.Mount(viewportSize())
	defer shell.Unmount()
	log.Printf("Mounted %d particles, %d tilt cards", len(shell.Field().Particles), len(shell.Cards()))

	for !rl.WindowShouldClose() {
		shell.Update(Frame{
			Dt:       rl.GetFrameTime(),
			Viewport: viewportSize(),
			Wheel:    rl.GetMouseWheelMove(),
		}, mouseSource{})

		rl.BeginDrawing()
		shell.Draw()
		rl.EndDrawing()
	}
}

func viewportSize() rl.Vector2 {
	return rl.NewVector2(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}
