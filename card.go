package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// fixed depth of the layers inside a project card, for parallax while it
// tilts
const (
	iconDepth  = 40
	titleDepth = 30
	bodyDepth  = 18
	tagDepth   = 10
)

// wrapText breaks s into lines no wider than maxWidth as reported by
// measure. Explicit newlines are kept.
func wrapText(s string, maxWidth int32, measure func(string) int32) []string {
	lines := []string{""}
	for _, word := range splitWordsPreserveNL(s) {
		if word == "\n" {
			lines = append(lines, "")
			continue
		}
		next := lines[len(lines)-1]
		if next != "" {
			next += " "
		}
		next += word
		if measure(next) > maxWidth && lines[len(lines)-1] != "" {
			// put word on a new line
			lines = append(lines, word)
		} else {
			lines[len(lines)-1] = next
		}
	}
	return lines
}

func splitWordsPreserveNL(s string) []string {
	out, cur := []string{}, ""
	for _, r := range s {
		if r == '\n' {
			if cur != "" {
				out = append(out, cur)
				cur = ""
			}
			out = append(out, "\n")
			continue
		}
		if r == ' ' || r == '\t' {
			if cur != "" {
				out = append(out, cur)
				cur = ""
			}
		} else {
			cur += string(r)
		}
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}

func measurer(fs int32) func(string) int32 {
	return func(s string) int32 { return rl.MeasureText(s, fs) }
}

// drawMultiline draws wrapped text and returns the height it used.
func drawMultiline(s string, x, y int32, fs int32, col rl.Color, maxWidth int32) int32 {
	lines := wrapText(s, maxWidth, measurer(fs))
	for i, line := range lines {
		rl.DrawText(line, x, y+int32(i)*(fs+6), fs, col)
	}
	return int32(len(lines)) * (fs + 6)
}

// drawCentered draws one line of text centered on cx.
func drawCentered(s string, cx, y int32, fs int32, col rl.Color) {
	w := rl.MeasureText(s, fs)
	rl.DrawText(s, cx-w/2, y, fs, col)
}

// drawQuad fills a convex quad given in order. Both windings are submitted
// so the face survives back-face culling whichever way the tilt turned it.
func drawQuad(a, b, c, d rl.Vector2, col rl.Color) {
	rl.DrawTriangle(a, c, b, col)
	rl.DrawTriangle(a, d, c, col)
	rl.DrawTriangle(a, b, c, col)
	rl.DrawTriangle(a, c, d, col)
}

func drawOutline(pts [4]rl.Vector2, thick float32, col rl.Color) {
	for i := range pts {
		rl.DrawLineEx(pts[i], pts[(i+1)%4], thick, col)
	}
}

// drawChip draws a rounded tag at (x, y) and returns its right edge.
func drawChip(x, y int32, label string, fs int32, bg, fg rl.Color) (right int32) {
	padding := int32(8)
	w := rl.MeasureText(label, fs) + padding*2
	h := fs + 8
	rl.DrawRectangleRounded(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), 0.9, 8, bg)
	rl.DrawText(label, x+padding, y+4, fs, fg)
	return x + w + 6
}

// drawProjectCard draws a project card at screen rectangle r, leaning by the
// card's current tilt. Inner layers sit at fixed depths so they shift
// against the face as it turns.
func drawProjectCard(p Project, tc *TiltCard, r rl.Rectangle, resultLabel string) {
	center := rl.NewVector2(r.X+r.Width/2, r.Y+r.Height/2)
	hw, hh := r.Width/2, r.Height/2

	at := func(x, y, z float32) rl.Vector2 {
		return tc.Project(center, rl.NewVector3(x, y, z))
	}
	corners := [4]rl.Vector2{at(-hw, -hh, 0), at(hw, -hh, 0), at(hw, hh, 0), at(-hw, hh, 0)}

	border := cardBorder
	if tc.Hovered() {
		border = cardHover
	}
	drawQuad(corners[0], corners[1], corners[2], corners[3], cardBG)
	drawOutline(corners, 1.5, border)

	// icon tile
	icon := at(-hw+24, -hh+24, iconDepth)
	tile := rl.NewColor(31, 41, 55, 255)
	if tc.Hovered() {
		tile = buttonBlue
	}
	rl.DrawRectangleRounded(rl.NewRectangle(icon.X, icon.Y, 48, 48), 0.3, 8, tile)
	iw := rl.MeasureText(p.Icon, 16)
	rl.DrawText(p.Icon, int32(icon.X)+24-iw/2, int32(icon.Y)+16, 16, p.IconColor)

	title := at(-hw+24, -hh+88, titleDepth)
	rl.DrawText(p.Title, int32(title.X), int32(title.Y), 22, textMain)

	body := at(-hw+24, -hh+122, bodyDepth)
	drawMultiline(p.Description, int32(body.X), int32(body.Y), 16, textBody, int32(r.Width)-48)

	res := at(-hw+24, hh-116, bodyDepth)
	rl.DrawText(resultLabel, int32(res.X), int32(res.Y), 14, accent)
	drawMultiline(p.Result, int32(res.X), int32(res.Y)+20, 16, textSoft, int32(r.Width)-48)

	tags := at(-hw+24, hh-40, tagDepth)
	x := int32(tags.X)
	for _, t := range p.Tags {
		x = drawChip(x, int32(tags.Y), t, 14, tagBG, textSoft)
	}
}

func drawStrengthCard(s Strength, r rl.Rectangle) {
	rl.DrawRectangleRounded(r, 0.08, 8, badgeBG)
	rl.DrawRectangleRoundedLines(r, 0.08, 8, cardBorder)
	rl.DrawCircle(int32(r.X)+48, int32(r.Y)+48, 20, withAlpha(accent, 0.25))
	rl.DrawText(s.Title, int32(r.X)+24, int32(r.Y)+88, 22, textMain)
	drawMultiline(s.Text, int32(r.X)+24, int32(r.Y)+122, 16, textBody, int32(r.Width)-48)
}
