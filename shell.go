package main

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frame is what the main loop gathers from the window each frame.
type Frame struct {
	Dt       float32
	Viewport rl.Vector2
	Wheel    float32
}

// Shell is the page: static content, its layout and the animated pieces
// that hang off the pointer tracker.
type Shell struct {
	cfg     Config
	content *Content
	tracker *PointerTracker
	clock   *Clock
	chime   *Chime

	field *AmbientParticleField
	glow  *Glow
	cards []*TiltCard

	cardSubs  []Subscription
	cardTicks []func()
	mounted   bool

	layout   Layout
	viewport rl.Vector2
	cam      rl.Camera2D
	scroll   float32 // scroll target; the camera eases toward it
}

func NewShell(cfg Config, content *Content, tracker *PointerTracker, clock *Clock, chime *Chime) *Shell {
	return &Shell{
		cfg:     cfg,
		content: content,
		tracker: tracker,
		clock:   clock,
		chime:   chime,
		field:   NewAmbientParticleField(cfg.Field),
		glow:    NewGlow(cfg.Glow, clock.Step),
		cam:     rl.Camera2D{Zoom: 1},
	}
}

func (s *Shell) Field() *AmbientParticleField { return s.field }
func (s *Shell) Cards() []*TiltCard           { return s.cards }
func (s *Shell) Layout() Layout               { return s.layout }

// Mount starts the tracker and attaches every animated piece to it.
func (s *Shell) Mount(viewport rl.Vector2) {
	if s.mounted {
		return
	}
	s.mounted = true
	s.viewport = viewport
	s.layout = BuildLayout(s.content, viewport.X)

	s.tracker.Start(viewport)
	s.field.Mount(s.tracker, s.clock, viewport)
	s.glow.Mount(s.tracker, s.clock)

	s.cards = make([]*TiltCard, len(s.content.Projects))
	for i := range s.cards {
		tc := NewTiltCard(s.projectBounds(i), s.cfg.Tilt)
		if s.chime != nil {
			tc.OnEnter = s.chime.Play
		}
		s.cards[i] = tc
		s.cardSubs = append(s.cardSubs, s.tracker.Subscribe(tc.OnPointer))
		s.cardTicks = append(s.cardTicks, s.clock.Add(tc))
	}
}

// Unmount detaches everything; no callback or tick reaches the page after
// this returns.
func (s *Shell) Unmount() {
	if !s.mounted {
		return
	}
	for _, sub := range s.cardSubs {
		sub.Cancel()
	}
	for _, remove := range s.cardTicks {
		remove()
	}
	s.cardSubs, s.cardTicks, s.cards = nil, nil, nil
	s.glow.Unmount()
	s.field.Unmount()
	s.tracker.Stop()
	s.mounted = false
}

// projectBounds reports card i's rectangle on screen. Cards past the current
// layout count as detached.
func (s *Shell) projectBounds(i int) BoundsFunc {
	return func() (rl.Rectangle, bool) {
		if !s.mounted || i >= len(s.layout.ProjectCards) {
			return rl.Rectangle{}, false
		}
		return toScreen(s.cam, s.layout.ProjectCards[i]), true
	}
}

// Update runs one frame: resize, scroll, pointer events, then integration.
func (s *Shell) Update(f Frame, src PointerSource) {
	if !s.mounted {
		return
	}
	if f.Viewport != s.viewport && f.Viewport.X > 0 && f.Viewport.Y > 0 {
		s.viewport = f.Viewport
		s.layout = BuildLayout(s.content, f.Viewport.X)
		s.field.Resize(f.Viewport)
	}

	if f.Wheel != 0 {
		s.scroll = scrollBy(s.scroll, f.Wheel, s.layout.Height, s.viewport.Y)
	}
	before := s.cam.Target
	updateCamera(&s.cam, rl.NewVector2(0, s.scroll), f.Dt)

	moved := s.tracker.Poll(src)
	if !moved && s.cam.Target != before {
		// the page slid under a still pointer: hover may have changed
		p := s.tracker.Position()
		for _, tc := range s.cards {
			tc.OnPointer(p)
		}
	}

	s.clock.Advance(f.Dt)
}

// ScrollTo sets the scroll target to page y.
func (s *Shell) ScrollTo(y float32) {
	s.scroll = clamp(y, 0, max(s.layout.Height-s.viewport.Y, 0))
}

func (s *Shell) Draw() {
	rl.ClearBackground(pageBG)

	s.drawGlow()
	s.drawParticles()

	rl.BeginMode2D(s.cam)
	s.drawSections()
	rl.EndMode2D()

	// cards are drawn in screen space through their tilt projection
	for i, tc := range s.cards {
		if r, ok := tc.Bounds(); ok && s.visible(r) {
			drawProjectCard(s.content.Projects[i], tc, r, s.content.ResultLabel)
		}
	}

	s.drawButtons()
}

func (s *Shell) visible(r rl.Rectangle) bool {
	return r.Y+r.Height >= 0 && r.Y <= s.viewport.Y
}

func (s *Shell) drawGlow() {
	c := s.glow.Center()
	r := s.glow.Radius
	for i, col := range glowColors {
		off := (float32(i) - 1) * r / 3
		rl.DrawCircleGradient(int32(c.X+off), int32(c.Y), r, withAlpha(col, 0.22), withAlpha(col, 0))
	}
}

func (s *Shell) drawParticles() {
	for i := range s.field.Particles {
		p := &s.field.Particles[i]
		radius := p.Size / 2
		col := withAlpha(particleTint, s.field.Twinkle(i))
		if p.Hovered {
			radius *= 1.5
			col = withAlpha(lighten(particleTint, 0.5), 1)
		}
		rl.DrawCircleV(p.Pos(), radius, col)
	}
}

func (s *Shell) drawSections() {
	c, l := s.content, s.layout
	cx := int32(l.Width / 2)

	// hero
	hy := int32(l.Hero.Y)
	rl.DrawCircle(cx, hy+130, 64, darken(accent, 0.35))
	rl.DrawCircleLines(cx, hy+130, 66, rl.NewColor(31, 41, 55, 200))
	drawCentered(initials(c.Name), cx, hy+112, 36, textMain)
	drawCentered(c.Name, cx, hy+220, 52, textMain)
	drawCentered(c.Tagline, cx, hy+292, 20, textBody)

	// about
	ay := int32(l.About.Y)
	drawCentered(c.AboutTitle, cx, ay+40, 30, textMain)
	aw := int32(contentWidth(l.Width, 768))
	drawMultiline(c.About, cx-aw/2, ay+96, 20, textBody, aw)

	// strengths
	rl.DrawRectangleRec(l.Strengths, sectionAlt)
	drawCentered(c.StrengthsTitle, cx, int32(l.Strengths.Y)+sectionPad, 30, textMain)
	for i, st := range c.Strengths {
		drawStrengthCard(st, l.StrengthCards[i])
	}

	// projects; the cards themselves are drawn outside the camera
	drawCentered(c.ProjectsTitle, cx, int32(l.Projects.Y)+sectionPad, 30, textMain)

	// skills
	rl.DrawRectangleRec(l.Skills, sectionAlt)
	drawCentered(c.SkillsTitle, cx, int32(l.Skills.Y)+sectionPad, 30, textMain)
	world := rl.GetScreenToWorld2D(s.tracker.Position(), s.cam)
	for gi, row := range l.SkillRows {
		rl.DrawText(c.Skills[gi].Name, int32(row.Label.X), int32(row.Label.Y), 20, accent)
		hx, hy, hit := row.Grid.CellOf(world)
		for i, name := range c.Skills[gi].Skills {
			r := row.Grid.Cell(i)
			bg := badgeBG
			if hit && hy*row.Grid.Cols+hx == i {
				bg = lighten(badgeBG, 0.15)
			}
			rl.DrawRectangleRounded(r, 0.2, 8, bg)
			fs := int32(18)
			w := rl.MeasureText(name, fs)
			rl.DrawText(name, int32(r.X+r.Width/2)-w/2, int32(r.Y+r.Height/2)-fs/2, fs, textSoft)
		}
	}

	// contact
	oy := int32(l.Contact.Y)
	drawCentered(c.ContactTitle, cx, oy+sectionPad, 30, textMain)
	cw := int32(contentWidth(l.Width, 576))
	drawMultiline(c.ContactText, cx-cw/2, oy+sectionPad+48, 18, textBody, cw)

	// footer
	rl.DrawRectangleRec(l.Footer, rl.Black)
	drawCentered(fmt.Sprintf("(c) %d %s", time.Now().Year(), c.Footer), cx, int32(l.Footer.Y)+28, 16, rl.Gray)
}

// drawButtons draws the raygui buttons in screen space. A hovered button
// grows by 5%.
func (s *Shell) drawButtons() {
	mouse := s.tracker.Position()

	hero := toScreen(s.cam, s.layout.HeroButton)
	if s.visible(hero) && gui.Button(hoverScale(hero, mouse), s.content.HeroButton) {
		s.ScrollTo(s.layout.Contact.Y)
	}

	for i, ct := range s.content.Contacts {
		r := toScreen(s.cam, s.layout.ContactButtons[i])
		if !s.visible(r) {
			continue
		}
		gui.SetStyle(gui.BUTTON, gui.BASE_COLOR_NORMAL, colorHex(ct.Color))
		if gui.Button(hoverScale(r, mouse), ct.Label) {
			rl.OpenURL(ct.URL)
		}
	}
	gui.SetStyle(gui.BUTTON, gui.BASE_COLOR_NORMAL, colorHex(buttonBlue))
}

func hoverScale(r rl.Rectangle, p rl.Vector2) rl.Rectangle {
	if !rl.CheckCollisionPointRec(p, r) {
		return r
	}
	dw, dh := r.Width*0.05, r.Height*0.05
	return rl.NewRectangle(r.X-dw/2, r.Y-dh/2, r.Width+dw, r.Height+dh)
}

// colorHex packs a color the way raygui styles expect (0xRRGGBBAA).
func colorHex(c rl.Color) int64 {
	return int64(c.R)<<24 | int64(c.G)<<16 | int64(c.B)<<8 | int64(c.A)
}

func initials(name string) string {
	out := ""
	for _, w := range splitWordsPreserveNL(name) {
		if w == "\n" {
			continue
		}
		out += string([]rune(w)[:1])
	}
	return out
}
