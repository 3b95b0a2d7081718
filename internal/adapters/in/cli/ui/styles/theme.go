package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/domaingate/internal/domain"
)

// Theme contains the composed styles of the CLI.
var Theme = struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
	Muted:   lipgloss.NewStyle().Foreground(ColorTextMuted),
	Bold:    lipgloss.NewStyle().Bold(true).Foreground(ColorText),
	Accent:  lipgloss.NewStyle().Foreground(ColorAccent),
	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Warning: lipgloss.NewStyle().Foreground(ColorWarning),
	Info:    lipgloss.NewStyle().Foreground(ColorInfo),

	TableHeader: lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(0, 1),
	TableCell:   lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1),
	TableBorder: lipgloss.NewStyle().Foreground(ColorBorder),
}

// RenderSuccess renders a success message with a check mark.
func RenderSuccess(msg string) string {
	return Theme.Success.Render("✓ " + msg)
}

// RenderWarning renders a warning message.
func RenderWarning(msg string) string {
	return Theme.Warning.Render("! " + msg)
}

// RenderError renders an error message.
func RenderError(msg string) string {
	return Theme.Error.Render("✗ " + msg)
}

// RenderVerificationStatus colors a verification status by outcome.
func RenderVerificationStatus(status domain.VerificationStatus) string {
	s := string(status)
	switch status {
	case domain.VerificationVerified:
		return Theme.Success.Render(s)
	case domain.VerificationPending:
		return Theme.Warning.Render(s)
	case domain.VerificationFailed:
		return Theme.Error.Render(s)
	default:
		return Theme.Muted.Render(s)
	}
}

// RenderDecision colors a routing decision kind.
func RenderDecision(kind domain.DecisionKind) string {
	s := kind.String()
	switch kind {
	case domain.DecisionRewriteToSubdomainPage:
		return Theme.Accent.Render(s)
	case domain.DecisionDeferToExternalProxy:
		return Theme.Info.Render(s)
	case domain.DecisionBypassAlways:
		return Theme.Muted.Render(s)
	default:
		return Theme.Bold.Render(s)
	}
}
