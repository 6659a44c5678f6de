package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ritwika/khel/internal/ui/components"
	"github.com/ritwika/khel/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	sess := s.machine.Session()

	var body string
	if sess.Completed {
		body = s.renderSummary(width)
	} else {
		body = s.renderPrompt(width)
	}

	if s.field.Active() {
		confetti := components.RenderConfetti(s.field, width, height)
		return overlay(confetti, body, width)
	}
	return body
}

// renderPrompt shows the question, the option cards and any hint or
// feedback line.
func (s *Screen) renderPrompt(width int) string {
	sess := s.machine.Session()
	prompt := s.machine.Prompt()

	var b strings.Builder

	total := len(s.machine.Activity().Prompts)
	bar := components.NewProgressBar(
		fmt.Sprintf("  Question %d of %d", sess.PromptIndex+1, total),
		float64(sess.PromptIndex)/float64(total),
		false,
		max(width-4, 20),
	)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	text := prompt.Text
	if s.machine.Attracting() && s.frame%8 < 4 {
		text = "👉 " + text + " 👈"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(text))
	b.WriteString("\n\n")

	cards := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.grid.View())
	b.WriteString(cards)
	b.WriteString("\n\n")

	switch {
	case sess.FeedbackVisible && sess.LastCorrect:
		b.WriteString(centerLine(width, theme.Correct.Render(" ✓ Great job! ")))
	case sess.FeedbackVisible:
		b.WriteString(centerLine(width, theme.Incorrect.Render(" ✗ Look at the green card! ")))
	case sess.HintVisible && prompt.Hint != "":
		b.WriteString(centerLine(width, theme.Hint.Render("Hint: "+prompt.Hint)))
	}

	return b.String()
}

// renderSummary shows the final score and the replay affordance.
func (s *Screen) renderSummary(width int) string {
	sess := s.machine.Session()
	total := len(s.machine.Activity().Prompts)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerLine(width, theme.Title.Render("🎉 Quiz Complete! 🎉")))
	b.WriteString("\n\n")
	b.WriteString(centerLine(width, lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("Your score: %d / %d", sess.Score, total))))
	b.WriteString("\n\n")
	b.WriteString(centerLine(width, strings.Repeat("⭐ ", sess.Score)))
	b.WriteString("\n\n")
	b.WriteString(centerLine(width, theme.Hint.Render("Press R to play again")))
	return b.String()
}

func centerLine(width int, content string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content) + "\n"
}

// overlay draws confetti above the body by merging lines; confetti cells
// win over spaces only, so the text stays readable.
func overlay(confetti, body string, width int) string {
	cLines := strings.Split(confetti, "\n")
	bLines := strings.Split(body, "\n")
	n := max(len(cLines), len(bLines))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var c, b string
		if i < len(cLines) {
			c = cLines[i]
		}
		if i < len(bLines) {
			b = bLines[i]
		}
		if strings.TrimSpace(b) != "" {
			out = append(out, b)
		} else {
			out = append(out, c)
		}
	}
	return strings.Join(out, "\n")
}
