package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/engine"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateTank:
		content = m.viewTank()
	case StateStats:
		content = m.viewStats()
	case StateBadges:
		content = m.viewBadges()
	}

	sections := []string{m.viewTabs(), content}
	if m.err != nil {
		sections = append(sections, errStyle.Render("Error: "+m.err.Error()))
	} else if m.flash != "" {
		sections = append(sections, flashStyle.Render(m.flash))
	}
	sections = append(sections, m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if sessionState(i) == m.state {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewTank() string {
	status := m.status

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Today (%s)", status.Date)))
	b.WriteString("\n\n")

	ratio := 0.0
	if status.Goal > 0 {
		ratio = float64(status.Total) / float64(status.Goal)
		if ratio > 1 {
			ratio = 1
		}
	}
	b.WriteString(m.progress.ViewAs(ratio))
	b.WriteString(fmt.Sprintf("\n%d / %d ml", status.Total, status.Goal))
	if status.Streak > 0 {
		b.WriteString(fmt.Sprintf("   🔥 %d day streak", status.Streak))
	}
	b.WriteString("\n\n")

	b.WriteString(tankStyle.Render(renderAquarium(m.collectibles, status.Total, status.Goal)))
	b.WriteString("\n\n")

	challenge := status.Challenge
	check := " "
	if challenge.Completed {
		check = "✓"
	}
	b.WriteString(fmt.Sprintf("[%s] %s (%d/%d, +%d XP)",
		check, challenge.Description, challenge.Progress, challenge.Target, challenge.XPReward))

	return b.String()
}

func (m Model) viewStats() string {
	stats := m.stats
	p := stats.Profile

	into, span := engine.XPIntoLevel(p.TotalXP)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Level %d", p.Level)))
	b.WriteString(fmt.Sprintf("  %d/%d XP\n\n", into, span))

	rows := []struct {
		label string
		value int
	}{
		{"Total XP", p.TotalXP},
		{"Spendable XP", p.SpendableXP},
		{"Total volume", p.TotalVolume},
		{"Days tracked", stats.DaysTracked},
		{"Days goal met", stats.DaysGoalMet},
		{"Average per day", stats.AveragePerDay},
		{"Daily record", p.DailyRecord},
		{"Current streak", stats.CurrentStreak},
		{"Best streak", p.BestStreak},
		{"Challenges done", stats.Challenges},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %-16s %d\n", row.label, row.value))
	}
	return b.String()
}

func (m Model) viewBadges() string {
	if len(m.badges) == 0 {
		return dimStyle.Render("No badges yet. Keep drinking!")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Badges (%d)", len(m.badges))))
	b.WriteString("\n\n")
	for _, badge := range m.badges {
		b.WriteString(fmt.Sprintf("  🏅 %s  %s\n",
			badge.EarnedAt.Format(constants.DateFormat), badge.Description))
	}
	return b.String()
}
