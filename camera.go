package main

import rl "github.com/gen2brain/raylib-go/raylib"

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Smooth follow (lerp). Higher is snappier.
const followSpeed = float32(12.0)

// pixels scrolled per wheel notch
const wheelStep = float32(90)

// updateCamera eases the page camera toward the scroll target.
func updateCamera(cam *rl.Camera2D, target rl.Vector2, dt float32) {
	t := clamp(followSpeed*dt, 0, 1)
	cam.Target = rl.Vector2{
		X: cam.Target.X + (target.X-cam.Target.X)*t,
		Y: cam.Target.Y + (target.Y-cam.Target.Y)*t,
	}
	// stop creeping once within half a pixel
	if absf(cam.Target.Y-target.Y) < 0.5 {
		cam.Target.Y = target.Y
	}
}

// scrollBy moves the scroll target by wheel notches, kept inside the page.
func scrollBy(scroll, wheel, pageHeight, viewHeight float32) float32 {
	maxScroll := pageHeight - viewHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	return clamp(scroll-wheel*wheelStep, 0, maxScroll)
}

// toScreen maps a page rectangle through the camera.
func toScreen(cam rl.Camera2D, r rl.Rectangle) rl.Rectangle {
	return rl.NewRectangle(
		r.X-cam.Target.X+cam.Offset.X,
		r.Y-cam.Target.Y+cam.Offset.Y,
		r.Width, r.Height,
	)
}
