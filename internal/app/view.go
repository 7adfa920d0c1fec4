package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/haxx0rman/qBank/internal/ui/components"
	"github.com/haxx0rman/qBank/internal/ui/layout"
	"github.com/haxx0rman/qBank/internal/ui/theme"
)

func (m StudyModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	remaining := len(m.questions) - m.index
	if m.phase == phaseSummary || len(m.questions) == 0 {
		remaining = 0
	}
	header := layout.RenderHeader("Study", m.mgr.UserRating(), remaining, m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)

	var content string
	switch {
	case m.errMsg != "":
		content = renderError(m.width, m.errMsg)
	case m.phase == phaseLoading:
		content = lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Selecting due questions...")
	case m.phase == phaseQuitConfirm:
		content = renderQuitConfirm(m.width)
	case m.phase == phaseSummary:
		content = m.renderSummary()
	case m.phase == phaseFeedback:
		content = m.renderFeedback()
	default:
		content = m.renderQuestion()
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m StudyModel) renderQuestion() string {
	q := m.questions[m.index]

	var b strings.Builder

	progress := components.NewProgressBar(
		fmt.Sprintf("  Question %d/%d", m.index+1, len(m.questions)),
		float64(m.index)/float64(len(m.questions)),
		m.width-4,
	)
	b.WriteString(progress.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(m.width-4, 0))))
	b.WriteString("\n\n")

	if len(q.Tags) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("  " + strings.Join(q.Tags, ", ")))
		b.WriteString("\n\n")
	}

	if m.mcActive {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.mc.View()))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(m.mc.Options))))
	} else {
		questionStyle := lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true)
		b.WriteString(questionStyle.Render(q.Text))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render("Answer: " + m.input.View()))
	}

	return b.String()
}

func (m StudyModel) renderFeedback() string {
	var b strings.Builder
	b.WriteString("\n\n")

	if m.skipped {
		b.WriteString(lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("Skipped"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Pushed back for an earlier review."))
		b.WriteString("\n\n")
		b.WriteString(continuePrompt(m.width))
		return b.String()
	}

	r := m.report
	if r.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if r.CorrectAnswer != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(m.width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("Correct answer: %s", r.CorrectAnswer.Text)))
		}
	}
	b.WriteString("\n\n")

	if r.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(m.width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, expStyle.Render(r.Explanation)))
		b.WriteString("\n\n")
	}

	detail := fmt.Sprintf("Your rating %.0f (%+.0f)   Question %.0f (%+.0f)   Next review in %.1fd",
		r.UserRating, r.UserDelta, r.QuestionRating, r.QuestionDelta, r.IntervalDays)
	b.WriteString(lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n\n")
	b.WriteString(continuePrompt(m.width))

	return b.String()
}

func (m StudyModel) renderSummary() string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(theme.Title.Width(m.width).Render("Session complete"))
	b.WriteString("\n\n")

	total := m.correct + m.wrong + m.skippedCount
	accuracy := 0.0
	if m.summary != nil {
		accuracy = m.summary.Accuracy()
	}

	rows := []string{
		fmt.Sprintf("Questions answered   %d", total),
		lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("Correct              %d", m.correct)),
		lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("Incorrect            %d", m.wrong)),
		fmt.Sprintf("Skipped              %d", m.skippedCount),
		fmt.Sprintf("Accuracy             %.0f%%", accuracy*100),
		fmt.Sprintf("Rating               %.0f", m.mgr.UserRating()),
	}
	block := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(rows, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, theme.Card.Render(block)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to exit."))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress is already saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to exit.", errMsg))
}

func continuePrompt(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue...")
}
