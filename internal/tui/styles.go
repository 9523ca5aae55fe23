package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	roseColor    = lipgloss.Color("#ff6b9a")
	emberColor   = lipgloss.Color("#1a0b14")
	mistColor    = lipgloss.Color("#f5e6ee")
	dimColor     = lipgloss.Color("244")
	backdropTone = []lipgloss.Color{"#5c3b4c", "#7a4d63", "#9c607c", "#c07495", "#e588ae"}

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(roseColor)
	subtitleStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#d6b3c4"))
	labelStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle    = lipgloss.NewStyle().Foreground(dimColor)
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#c0392b")).Padding(0, 2)
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
	spineStyle     = lipgloss.NewStyle().Padding(0, 1)
	hoverStyle     = spineStyle.Foreground(emberColor).Background(roseColor).Bold(true)
	cardFrontStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(roseColor).Foreground(mistColor).Padding(1, 3)
	cardBackStyle  = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#7f5af0")).Foreground(mistColor).Padding(1, 3)
	questionStyle  = lipgloss.NewStyle().Bold(true).Foreground(mistColor)
	counterStyle   = lipgloss.NewStyle().Foreground(roseColor)
	finishedStyle  = lipgloss.NewStyle().Foreground(mistColor).Italic(true).Align(lipgloss.Center)

	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(roseColor)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(emberColor)
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)
	logoArtLines       = []string{
		"██╗  ██╗ ███████╗  █████╗  ██████╗  ████████╗ ███████╗ ██╗   ██╗ ███╗   ██╗  ██████╗",
		"██║  ██║ ██╔════╝ ██╔══██╗ ██╔══██╗ ╚══██╔══╝ ██╔════╝ ╚██╗ ██╔╝ ████╗  ██║ ██╔════╝",
		"███████║ █████╗   ███████║ ██████╔╝    ██║    ███████╗  ╚████╔╝  ██╔██╗ ██║ ██║     ",
		"██╔══██║ ██╔══╝   ██╔══██║ ██╔══██╗    ██║    ╚════██║   ╚██╔╝   ██║╚██╗██║ ██║     ",
		"██║  ██║ ███████╗ ██║  ██║ ██║  ██║    ██║    ███████║    ██║    ██║ ╚████║ ╚██████╗",
		"╚═╝  ╚═╝ ╚══════╝ ╚═╝  ╚═╝ ╚═╝  ╚═╝    ╚═╝    ╚══════╝    ╚═╝    ╚═╝  ╚═══╝  ╚═════╝",
	}
)

// logoMinWidth is the narrowest window that fits the block logo.
const logoMinWidth = 90

// spineTone shades a gallery card by depth; depth 0 is the back of the fan.
func spineTone(depth, total int) lipgloss.Style {
	if total <= 1 {
		return spineStyle.Foreground(backdropTone[len(backdropTone)-1])
	}
	idx := depth * (len(backdropTone) - 1) / (total - 1)
	tone := backdropTone[idx]
	return spineStyle.Foreground(tone)
}

func renderLogo(width int) string {
	if width < logoMinWidth || len(logoArtLines) == 0 {
		return titleStyle.Render("HeartSync")
	}
	artWidth := 0
	lineRunes := make([][]rune, len(logoArtLines))
	for i, line := range logoArtLines {
		runes := []rune(line)
		lineRunes[i] = runes
		if len(runes) > artWidth {
			artWidth = len(runes)
		}
	}
	artWidth++
	height := len(logoArtLines) + 1

	type cell struct {
		r     rune
		style lipgloss.Style
	}
	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, artWidth)
	}
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r != ' ' {
				grid[y+1][x+1] = cell{r: r, style: logoShadowStyle}
			}
		}
	}
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r != ' ' {
				grid[y][x] = cell{r: r, style: logoFaceStyle}
			}
		}
	}

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			if c.r == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = b.String()
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}
