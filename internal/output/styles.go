package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rxcalc/pharmacy-calculator/internal/domain"
)

// Colors
var (
	colorTeal   = lipgloss.Color("#14B8A6")
	colorRose   = lipgloss.Color("#F43F5E")
	colorAmber  = lipgloss.Color("#F59E0B")
	colorSky    = lipgloss.Color("#0EA5E9")
	colorMuted  = lipgloss.Color("#64748B")
	colorBright = lipgloss.Color("#F1F5F9")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBright)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	gainStyle = lipgloss.NewStyle().
			Foreground(colorTeal)

	lossStyle = lipgloss.NewStyle().
			Foreground(colorRose)

	recommendedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorTeal)

	minimumLossStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorRose)

	warningBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorRose).
			Padding(0, 1)
)

// severityStyle colours a clinical verdict.
func severityStyle(s domain.Severity) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch s {
	case domain.SeverityInfo:
		return base.Foreground(colorSky)
	case domain.SeverityNormal:
		return base.Foreground(colorTeal)
	case domain.SeverityCaution:
		return base.Foreground(colorAmber)
	default:
		return base.Foreground(colorRose)
	}
}

// amountStyle picks the gain or loss colour by sign.
func amountStyle(negative bool) lipgloss.Style {
	if negative {
		return lossStyle
	}
	return gainStyle
}
