package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Planet Pal theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconPlanet   = "🪐"
	IconSparkle  = "✨"
	IconCrystal  = "💎"
	IconStardust = "⭐"
	IconWater    = "💧"
	IconSolar    = "🌞"
	IconQuiz     = "❓"
	IconShop     = "🛒"
	IconDone     = "✅"
	IconWrong    = "❌"
	IconTrophy   = "🏆"
	IconFire     = "🔥"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ResourceIcon maps a resource name to its emoji.
func ResourceIcon(resource string) string {
	switch resource {
	case "crystals":
		return IconCrystal
	case "stardust":
		return IconStardust
	case "water":
		return IconWater
	case "solar":
		return IconSolar
	default:
		return IconSparkle
	}
}

// CategoryIcon maps a shop category to its emoji.
func CategoryIcon(category string) string {
	switch category {
	case "biome":
		return "🗺️"
	case "structure":
		return "🏗️"
	case "creature":
		return "🐾"
	default:
		return IconShop
	}
}
