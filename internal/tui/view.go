package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/zenithwellness/zenith/internal/domain"
	"github.com/zenithwellness/zenith/pkg/client/chat"
	"github.com/zenithwellness/zenith/pkg/client/meditation"
)

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("244"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("212"))

	userStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")).
			Padding(0, 1)

	timerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("120"))
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.alert.Visible(time.Now()) {
		b.WriteString(m.renderBanner())
		b.WriteString("\n")
	}

	switch m.section {
	case sectionChat:
		b.WriteString(m.Viewport.View())
		b.WriteString("\n")
		b.WriteString(m.renderStatus())
		b.WriteString("\n")
		b.WriteString(m.Input.View())
	case sectionMeditation:
		b.WriteString(m.renderMeditation())
	}

	return b.String()
}

func (m Model) renderTabs() string {
	chatTab := tabStyle.Render("Chat")
	medTab := tabStyle.Render("Meditation")
	if m.section == sectionChat {
		chatTab = activeTabStyle.Render("Chat")
	} else {
		medTab = activeTabStyle.Render("Meditation")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chatTab, medTab, statusStyle.Render("  tab to switch · ctrl+c to quit"))
}

func (m Model) renderBanner() string {
	detection := m.alert.Detection()
	line := "You matter. Help is available right now — call 988 or text HOME to 741741."
	if detection.Type == domain.CrisisExplicitKeyword {
		line = "Please reach out now: call 988 (Suicide & Crisis Lifeline) or text HOME to 741741."
	}
	return bannerStyle.Width(m.width).Render(line + "  (esc to close)")
}

func (m Model) renderMessages() string {
	messages := m.loop.Messages()
	if len(messages) == 0 {
		return statusStyle.Render("This is a safe space. Say anything.")
	}

	var b strings.Builder
	for _, msg := range messages {
		switch msg.Role {
		case domain.RoleUser:
			b.WriteString(userStyle.Render("You: "))
		default:
			b.WriteString(assistantStyle.Render("Zenith: "))
		}
		b.WriteString(msg.Content)
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m Model) renderStatus() string {
	if err := m.loop.Err(); err != nil {
		return errorStyle.Render("Couldn't send: " + firstLine(err.Error()))
	}
	if m.loop.State() == chat.AwaitingResponse {
		return statusStyle.Render("Zenith is typing...")
	}
	return statusStyle.Render(m.status)
}

func (m Model) renderMeditation() string {
	var b strings.Builder

	if m.notesPrompt {
		b.WriteString(timerStyle.Render("Well done."))
		b.WriteString("\n\nAny notes about this sit? Press enter to save (blank is fine).\n\n")
		b.WriteString(m.notesInput.View())
		return b.String()
	}

	if m.moodPending != nil {
		b.WriteString(timerStyle.Render("Well done."))
		b.WriteString("\n\nHow do you feel now? Rate 1 (low) to 9, 0 for 10 (great), or press enter to skip.\n")
		return b.String()
	}

	if m.moodBeforePrompt {
		b.WriteString("Before you begin: how do you feel?\n\n")
		b.WriteString(statusStyle.Render("Rate 1 (low) to 9, 0 for 10 (great), or press enter to skip."))
		return b.String()
	}

	now := time.Now()
	switch m.timer.Phase() {
	case meditation.Running:
		remaining := m.timer.Remaining(now)
		total := m.timer.Duration()
		elapsed := total - remaining
		b.WriteString(timerStyle.Render(fmt.Sprintf("%02d:%02d remaining",
			int(remaining.Minutes()), int(remaining.Seconds())%60)))
		b.WriteString("\n\n")
		if total > 0 {
			b.WriteString(m.progress.ViewAs(float64(elapsed) / float64(total)))
		}
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render("x to stop early"))
	default:
		b.WriteString("Take a moment for yourself.\n\n")
		b.WriteString(statusStyle.Render("s to start a 10 minute sit"))
		if m.status != "" {
			b.WriteString("\n" + statusStyle.Render(m.status))
		}
		if m.stats != nil {
			b.WriteString("\n\n")
			b.WriteString(m.renderStats())
		}
	}

	return b.String()
}

func (m Model) renderStats() string {
	s := m.stats
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d sessions, %d minutes, %d day streak\n",
		s.TotalSessions, s.TotalMinutes, s.StreakDays))
	b.WriteString(fmt.Sprintf("average sit %.1f min", s.AverageSessionLength))
	if s.FavoriteType != "" {
		b.WriteString(", mostly " + s.FavoriteType)
	}
	if s.MoodImprovementAvg != 0 {
		b.WriteString(fmt.Sprintf(", mood %+.1f", s.MoodImprovementAvg))
	}
	return timerStyle.Render("Your practice") + "\n" + statusStyle.Render(b.String())
}
