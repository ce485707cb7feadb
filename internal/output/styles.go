package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hacktx/financial-navigator/internal/domain"
)

var (
	successColor = lipgloss.Color("#4ECDC4")
	warningColor = lipgloss.Color("#FFE66D")
	errorColor   = lipgloss.Color("#FF6B6B")
	subtleColor  = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EB0A1E"))

	headerStyle = lipgloss.NewStyle().Bold(true)

	successStyle = lipgloss.NewStyle().Foreground(successColor)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	subtleStyle  = lipgloss.NewStyle().Foreground(subtleColor)
)

// healthStyle colours a health tier: excellent green, good yellow, otherwise red.
func healthStyle(tier domain.HealthTier) lipgloss.Style {
	switch tier {
	case domain.TierExcellent:
		return successStyle
	case domain.TierGood:
		return warningStyle
	default:
		return errorStyle
	}
}

func matchStyle(tier domain.MatchTier) lipgloss.Style {
	switch tier {
	case domain.MatchExcellent, domain.MatchGreat:
		return successStyle
	case domain.MatchGood:
		return warningStyle
	default:
		return subtleStyle
	}
}

func adviceStyle(t domain.AdviceType) lipgloss.Style {
	switch t {
	case domain.AdviceWarning:
		return errorStyle
	case domain.AdviceOpportunity:
		return successStyle
	default:
		return warningStyle
	}
}
