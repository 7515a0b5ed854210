package main

import rl "github.com/gen2brain/raylib-go/raylib"

type Project struct {
	Icon        string // short glyph drawn in the icon tile
	IconColor   rl.Color
	Title       string
	Description string
	Result      string
	Tags        []string
}

type Strength struct {
	Title, Text string
}

type SkillGroup struct {
	Name   string
	Skills []string
}

type Contact struct {
	Label string
	URL   string
	Color rl.Color
}

// Content is the static page model. The animation core never reads it.
type Content struct {
	Name       string
	Tagline    string
	HeroButton string

	AboutTitle string
	About      string

	StrengthsTitle string
	Strengths      []Strength

	ProjectsTitle string
	ResultLabel   string
	Projects      []Project

	SkillsTitle string
	Skills      []SkillGroup

	ContactTitle string
	ContactText  string
	Contacts     []Contact

	Footer string
}

var portfolio = Content{
	Name:       "Nikita Kirsanov",
	Tagline:    "I build solutions at every level, from chat bots to tools for working with data.",
	HeroButton: "My contacts",

	AboutTitle: "Hi, I'm Nikita.",
	About: "I am an engineer who turns ideas into finished products. My experience covers " +
		"chat bots, business systems and AI solutions. The goal of my work is a product " +
		"that is reliable, convenient and ready for real use.",

	StrengthsTitle: "Why me?",
	Strengths: []Strength{
		{
			Title: "From backend to frontend",
			Text: "I like solving problems end to end: I design the server side in C# or Python " +
				"and then build a clear interface on top of it.",
		},
		{
			Title: "Data and AI",
			Text: "I help automate routine work with chat bots and I know how to work with " +
				"neural networks. I enjoy finding practical value in data.",
		},
	},

	ProjectsTitle: "Key projects",
	ResultLabel:   "Key result:",
	Projects: []Project{
		{
			Icon:        "TTS",
			IconColor:   rl.NewColor(96, 165, 250, 255),
			Title:       "Audiobook TTS",
			Description: "A neural network that turns text into speech with separate voices for different characters.",
			Result:      "A tool for fast, high quality AI voice-over of content.",
			Tags:        []string{"Python", "AI", "PyTorch"},
		},
		{
			Icon:        "BOT",
			IconColor:   rl.NewColor(74, 222, 128, 255),
			Title:       "Chat bots",
			Description: "Intelligent Rasa bots integrated with databases to automate customer requests.",
			Result:      "Lower support load; product and price lookup automated.",
			Tags:        []string{"Rasa", "Python", "SQL"},
		},
		{
			Icon:        "C#",
			IconColor:   rl.NewColor(192, 132, 252, 255),
			Title:       "Sales department tools",
			Description: "C# WinForms desktop applications integrated with a REST API for data exchange.",
			Result:      "Routine tasks automated and data exchange between systems sped up.",
			Tags:        []string{"C#", "SQL Server", ".NET", "REST API"},
		},
		{
			Icon:        "SQL",
			IconColor:   rl.NewColor(250, 204, 21, 255),
			Title:       "SQL system design",
			Description: "Database architecture, queries, stored procedures and analytical reports.",
			Result:      "Reliable and scalable data storage systems.",
			Tags:        []string{"SQL", "PostgreSQL", "Analytics"},
		},
	},

	SkillsTitle: "Tech stack",
	Skills: []SkillGroup{
		{Name: "Backend", Skills: []string{"Python", "C#"}},
		{Name: "Frontend", Skills: []string{"React", "Next.js"}},
		{Name: "Data", Skills: []string{"SQL", "Rasa"}},
	},

	ContactTitle: "Ready to help your team",
	ContactText:  "Open to job offers and interesting projects. Get in touch and we will discuss how I can help.",
	Contacts: []Contact{
		{Label: "Email", URL: "mailto:ydafred.dafred@gmail.com", Color: rl.NewColor(37, 99, 235, 255)},
		{Label: "Telegram", URL: "https://t.me/NiOReD", Color: rl.NewColor(14, 165, 233, 255)},
	},

	Footer: "Nikita Kirsanov",
}
