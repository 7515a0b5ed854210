package main

import rl "github.com/gen2brain/raylib-go/raylib"

func darken(c rl.Color, factor float32) rl.Color {
	factor = clamp(factor, 0, 1)
	return rl.NewColor(
		uint8(float32(c.R)*factor),
		uint8(float32(c.G)*factor),
		uint8(float32(c.B)*factor),
		c.A,
	)
}

func lighten(c rl.Color, factor float32) rl.Color {
	factor = clamp(factor, 0, 1)
	invFactor := 1.0 - factor
	return rl.NewColor(
		uint8(float32(c.R)*invFactor+255*factor),
		uint8(float32(c.G)*invFactor+255*factor),
		uint8(float32(c.B)*invFactor+255*factor),
		c.A,
	)
}

// withAlpha replaces the alpha channel, a in [0, 1].
func withAlpha(c rl.Color, a float32) rl.Color {
	c.A = uint8(clamp(a, 0, 1) * 255)
	return c
}

// page palette (dark gray page, blue accents)
var pageBG = rl.NewColor(17, 24, 39, 255)       // gray-900
var sectionAlt = rl.NewColor(0, 0, 0, 50)       // banded sections
var cardBG = rl.NewColor(255, 255, 255, 13)     // translucent card fill
var cardBorder = rl.NewColor(55, 65, 81, 128)   // gray-700/50
var cardHover = rl.NewColor(96, 165, 250, 255)  // blue-400 border on hover
var textMain = rl.NewColor(255, 255, 255, 255)  // headings
var textBody = rl.NewColor(156, 163, 175, 255)  // gray-400
var textSoft = rl.NewColor(209, 213, 219, 255)  // gray-300
var accent = rl.NewColor(96, 165, 250, 255)     // blue-400
var buttonBlue = rl.NewColor(37, 99, 235, 255)  // blue-600
var tagBG = rl.NewColor(55, 65, 81, 128)        // tag chips
var badgeBG = rl.NewColor(31, 41, 55, 128)      // skill badges
var particleTint = rl.NewColor(147, 197, 253, 255)

// glow blob colors, left to right
var glowColors = []rl.Color{
	rl.NewColor(59, 130, 246, 255),
	rl.NewColor(168, 85, 247, 255),
	rl.NewColor(236, 72, 153, 255),
}
