// Package tui is the interactive dashboard: the aquarium tank, today's
// progress, the daily challenge, and lifetime stats, with quick-log keys.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/engine"
	"github.com/driplog/drip/internal/models"
	"github.com/driplog/drip/internal/storage"
)

type sessionState int

const (
	StateTank sessionState = iota
	StateStats
	StateBadges
)

var tabNames = []string{"Tank", "Stats", "Badges"}

type Model struct {
	store  storage.Provider
	engine *engine.Engine

	state    sessionState
	keys     KeyMap
	help     help.Model
	progress progress.Model

	status       engine.TodayStatus
	stats        engine.Stats
	badges       []models.Badge
	collectibles []models.Collectible
	presets      []int

	flash    string
	err      error
	width    int
	quitting bool
}

func NewModel(store storage.Provider, eng *engine.Engine) Model {
	return Model{
		store:    store,
		engine:   eng,
		state:    StateTank,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

type refreshMsg struct {
	status       engine.TodayStatus
	stats        engine.Stats
	badges       []models.Badge
	collectibles []models.Collectible
	presets      []int
	err          error
}

type loggedMsg struct {
	result engine.IntakeResult
	err    error
}

func (m Model) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		var msg refreshMsg

		msg.status, msg.err = m.engine.Today()
		if msg.err != nil {
			return msg
		}
		msg.stats, msg.err = m.engine.Statistics()
		if msg.err != nil {
			return msg
		}
		msg.badges, msg.err = m.store.GetBadges()
		if msg.err != nil {
			return msg
		}
		msg.collectibles, msg.err = m.store.GetCollectibles()
		if msg.err != nil {
			return msg
		}

		settings, err := m.store.GetSettings()
		if err != nil {
			msg.err = err
			return msg
		}
		msg.presets = settings.Presets
		return msg
	}
}

func (m Model) logCmd(amount int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.engine.RecordIntake(constants.IntakeWater, amount)
		return loggedMsg{result: res, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = min(msg.Width-8, 48)
		return m, nil

	case refreshMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = msg.status
		m.stats = msg.stats
		m.badges = msg.badges
		m.collectibles = msg.collectibles
		m.presets = msg.presets
		return m, nil

	case loggedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.flash = flashFor(msg.result)
		return m, m.refreshCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.state = (m.state + 1) % sessionState(len(tabNames))
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.state = (m.state + sessionState(len(tabNames)) - 1) % sessionState(len(tabNames))
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.refreshCmd()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Log):
			if len(m.presets) > 0 {
				return m, m.logCmd(m.presets[0])
			}
			return m, nil
		case key.Matches(msg, m.keys.Preset):
			idx := int(msg.String()[0] - '1')
			if idx >= 0 && idx < len(m.presets) {
				return m, m.logCmd(m.presets[idx])
			}
			return m, nil
		}
	}

	return m, nil
}

func flashFor(res engine.IntakeResult) string {
	flash := ""
	if res.XPEarned > 0 {
		flash = fmt.Sprintf("+%d XP", res.XPEarned)
	}
	if res.GoalCrossed {
		flash += "  🎉 goal reached!"
	}
	if res.LeveledUp {
		flash += fmt.Sprintf("  ⬆ level %d", res.Level)
	}
	if res.ChallengeCompleted != nil {
		flash += "  ✓ challenge done"
	}
	if res.Badge != nil {
		flash += "  🏅 " + res.Badge.Type
	}
	for _, c := range res.Unlocked {
		flash += "  🐠 " + c.Name
	}
	return flash
}
