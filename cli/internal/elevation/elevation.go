// ABOUTME: Terminal rendering of rack elevations with lipgloss
// ABOUTME: Draws one row per unit, top of rack first, with devices and free runs

package elevation

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/assetdex-dcim/models"
)

// SlotWidth is the number of columns used for a device label.
const SlotWidth = 24

var (
	Primary = lipgloss.Color("#7C3AED") // Purple
	Free    = lipgloss.Color("#10B981") // Green
	Muted   = lipgloss.Color("#6B7280") // Gray
	Text    = lipgloss.Color("#F9FAFB") // Light
	Surface = lipgloss.Color("#374151") // Elevated surface background

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	UnitLabel = lipgloss.NewStyle().
			Foreground(Muted).
			Width(5).
			Align(lipgloss.Right)

	Device = lipgloss.NewStyle().
		Foreground(Text).
		Background(Surface).
		Width(SlotWidth)

	Empty = lipgloss.NewStyle().
		Foreground(Muted).
		Width(SlotWidth)

	FreeRun = lipgloss.NewStyle().
		Foreground(Free)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)
)

// Render draws the rack in occ as a bordered elevation.
func Render(occ models.RackOccupancy) string {
	total := occ.Rack.TotalUnits
	owner := make(map[int]models.Server, total)
	for _, s := range occ.Servers {
		if !s.Racked() {
			continue
		}
		for u := s.Unit; u < s.Unit+s.UnitHeight; u++ {
			owner[u] = s
		}
	}

	rows := make([]string, 0, total+3)
	rows = append(rows, Title.Render(fmt.Sprintf("Rack %s (%dU, %d used, %d free)",
		occ.Rack.Name, total, occ.UsedUnits, occ.FreeUnits)))
	if occ.Rack.Location != "" {
		rows = append(rows, Empty.Render(occ.Rack.Location))
	}

	for u := total; u >= 1; u-- {
		label := UnitLabel.Render(models.FormatUnit(u))
		s, ok := owner[u]
		var slot string
		switch {
		case !ok:
			slot = Empty.Render(strings.Repeat("·", SlotWidth))
		case u == s.Unit+s.UnitHeight-1:
			slot = Device.Render(truncate(fmt.Sprintf(" %s (%dU)", s.Hostname, s.UnitHeight), SlotWidth))
		default:
			slot = Device.Render("")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, " ", slot))
	}

	rows = append(rows, "", FreeSpaceSummary(occ.FreeSpaces))
	return Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// FreeSpaceSummary lists free runs top of rack first, e.g. "Free: U39-U3 (37U)".
func FreeSpaceSummary(spaces []models.FreeSpace) string {
	if len(spaces) == 0 {
		return FreeRun.Render("Free: none")
	}
	parts := make([]string, len(spaces))
	for i, fs := range spaces {
		parts[i] = fmt.Sprintf("%s-%s (%dU)", models.FormatUnit(fs.StartUnit), models.FormatUnit(fs.EndUnit), fs.Size)
	}
	return FreeRun.Render("Free: " + strings.Join(parts, ", "))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
