package main

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Grid lays equal cells out row-major from Origin.
type Grid struct {
	Origin       rl.Vector2 // top-left of the grid in page pixels
	CellW, CellH float32
	Gap          float32
	Cols         int
}

func (g Grid) Cell(i int) rl.Rectangle {
	cx, cy := i%g.Cols, i/g.Cols
	return rl.NewRectangle(
		g.Origin.X+float32(cx)*(g.CellW+g.Gap),
		g.Origin.Y+float32(cy)*(g.CellH+g.Gap),
		g.CellW, g.CellH,
	)
}

// CellOf returns the column and row under p; ok is false in a gap or
// outside the grid.
func (g Grid) CellOf(p rl.Vector2) (cx, cy int, ok bool) {
	fx := (p.X - g.Origin.X) / (g.CellW + g.Gap)
	fy := (p.Y - g.Origin.Y) / (g.CellH + g.Gap)
	cx = int(math.Floor(float64(fx)))
	cy = int(math.Floor(float64(fy)))
	if cx < 0 || cy < 0 || cx >= g.Cols {
		return cx, cy, false
	}
	inX := p.X - (g.Origin.X + float32(cx)*(g.CellW+g.Gap))
	inY := p.Y - (g.Origin.Y + float32(cy)*(g.CellH+g.Gap))
	return cx, cy, inX <= g.CellW && inY <= g.CellH
}

// Rows is how many rows n cells take.
func (g Grid) Rows(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + g.Cols - 1) / g.Cols
}

func (g Grid) Height(n int) float32 {
	r := g.Rows(n)
	if r == 0 {
		return 0
	}
	return float32(r)*g.CellH + float32(r-1)*g.Gap
}

const (
	pagePad       = 24
	sectionPad    = 80
	titleBlock    = 72 // section heading plus spacing below it
	heroHeight    = 540
	aboutHeight   = 260
	contactHeight = 320
	footerHeight  = 72

	strengthCardH = 200
	projectCardH  = 320
	cardGap       = 32
	badgeH        = 72
	badgeGap      = 16
	groupLabelH   = 36

	wideBreakpoint = 900 // two card columns from here
)

type SkillRow struct {
	Label rl.Vector2
	Grid  Grid
	Count int
}

// Layout is every rectangle of the page in page coordinates for one window
// width.
type Layout struct {
	Width, Height float32

	Hero, About, Strengths, Projects, Skills, Contact, Footer rl.Rectangle

	HeroButton     rl.Rectangle
	StrengthCards  []rl.Rectangle
	ProjectCards   []rl.Rectangle
	SkillRows      []SkillRow
	ContactButtons []rl.Rectangle
}

func contentWidth(width, limit float32) float32 {
	return float32(math.Min(float64(limit), float64(width-2*pagePad)))
}

func cardColumns(width float32) int {
	if width >= wideBreakpoint {
		return 2
	}
	return 1
}

func badgeColumns(width float32) int {
	switch {
	case width >= 768:
		return 6
	case width >= 640:
		return 4
	}
	return 3
}

// BuildLayout stacks the page sections top to bottom for a window width.
func BuildLayout(c *Content, width float32) Layout {
	l := Layout{Width: width}
	y := float32(0)

	l.Hero = rl.NewRectangle(0, y, width, heroHeight)
	l.HeroButton = rl.NewRectangle(width/2-110, y+heroHeight-150, 220, 56)
	y += heroHeight

	l.About = rl.NewRectangle(0, y, width, aboutHeight)
	y += aboutHeight

	// strengths
	cw := contentWidth(width, 1024)
	cols := cardColumns(width)
	g := Grid{
		Origin: rl.NewVector2((width-cw)/2, y+sectionPad+titleBlock),
		CellW:  (cw - float32(cols-1)*cardGap) / float32(cols),
		CellH:  strengthCardH,
		Gap:    cardGap,
		Cols:   cols,
	}
	for i := range c.Strengths {
		l.StrengthCards = append(l.StrengthCards, g.Cell(i))
	}
	h := 2*sectionPad + titleBlock + g.Height(len(c.Strengths))
	l.Strengths = rl.NewRectangle(0, y, width, h)
	y += h

	// projects
	cw = contentWidth(width, 1152)
	g = Grid{
		Origin: rl.NewVector2((width-cw)/2, y+sectionPad+titleBlock),
		CellW:  (cw - float32(cols-1)*cardGap) / float32(cols),
		CellH:  projectCardH,
		Gap:    cardGap,
		Cols:   cols,
	}
	for i := range c.Projects {
		l.ProjectCards = append(l.ProjectCards, g.Cell(i))
	}
	h = 2*sectionPad + titleBlock + g.Height(len(c.Projects))
	l.Projects = rl.NewRectangle(0, y, width, h)
	y += h

	// skills, one badge grid per group
	cw = contentWidth(width, 896)
	bcols := badgeColumns(width)
	start := y
	y += sectionPad + titleBlock
	for _, grp := range c.Skills {
		row := SkillRow{
			Label: rl.NewVector2((width-cw)/2, y),
			Count: len(grp.Skills),
			Grid: Grid{
				Origin: rl.NewVector2((width-cw)/2, y+groupLabelH),
				CellW:  (cw - float32(bcols-1)*badgeGap) / float32(bcols),
				CellH:  badgeH,
				Gap:    badgeGap,
				Cols:   bcols,
			},
		}
		l.SkillRows = append(l.SkillRows, row)
		y += groupLabelH + row.Grid.Height(row.Count) + 32
	}
	y += sectionPad
	l.Skills = rl.NewRectangle(0, start, width, y-start)

	// contacts, buttons centered in one row
	l.Contact = rl.NewRectangle(0, y, width, contactHeight)
	const btnW, btnH, btnGap = 180, 52, 24
	n := float32(len(c.Contacts))
	bx := width/2 - (n*btnW+(n-1)*btnGap)/2
	for i := range c.Contacts {
		l.ContactButtons = append(l.ContactButtons,
			rl.NewRectangle(bx+float32(i)*(btnW+btnGap), y+200, btnW, btnH))
	}
	y += contactHeight

	l.Footer = rl.NewRectangle(0, y, width, footerHeight)
	y += footerHeight

	l.Height = y
	return l
}
