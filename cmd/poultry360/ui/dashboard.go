package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"poultry360/internal/domain"
	"poultry360/internal/logging"
	"poultry360/internal/store"
)

// refreshDoneMsg signals that a background refresh finished.
type refreshDoneMsg struct{}

// Model is the interactive dashboard. It owns a dashboard store and a
// flock store and re-renders from their snapshots after every refresh.
type Model struct {
	styles   Styles
	spinner  spinner.Model
	viewport viewport.Model
	ready    bool

	dashboard *store.DashboardStore
	flocks    *store.FlockStore

	identity *domain.User
	currency string

	width  int
	height int

	lastRefresh time.Time
}

// NewModel builds the dashboard model around the two stores.
func NewModel(dashboard *store.DashboardStore, flocks *store.FlockStore, identity *domain.User, currency string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		styles:    DefaultStyles(),
		spinner:   sp,
		dashboard: dashboard,
		flocks:    flocks,
		identity:  identity,
		currency:  currency,
	}
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		m.dashboard.Refresh(ctx)
		m.flocks.Refresh(ctx)
		logging.API("dashboard refresh complete")
		return refreshDoneMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refreshCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m, tea.Batch(m.spinner.Tick, m.refreshCmd())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.viewport.SetContent(m.renderContent())
		return m, nil

	case refreshDoneMsg:
		m.lastRefresh = time.Now()
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return m.spinner.View() + " loading dashboard..."
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	title := m.styles.Title.Render("Poultry360 Dashboard")
	who := ""
	if m.identity != nil {
		who = m.styles.Muted.Render(fmt.Sprintf("signed in as %s (%s)", m.identity.Username, m.identity.Role))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", who)
}

func (m Model) footerView() string {
	status := "r: refresh  q: quit"
	if m.dashboard.Loading() || m.flocks.Loading() {
		status = m.spinner.View() + " refreshing..."
	} else if !m.lastRefresh.IsZero() {
		status += "  |  updated " + m.lastRefresh.Format("15:04:05")
	}
	return m.styles.StatusBar.Render(status)
}

func (m Model) renderContent() string {
	var sections []string

	if msg := m.dashboard.ErrorMessage(); msg != "" {
		sections = append(sections, m.styles.Error.Render("! "+msg))
	}
	if msg := m.flocks.ErrorMessage(); msg != "" {
		sections = append(sections, m.styles.Error.Render("! "+msg))
	}

	sections = append(sections, m.renderOverview())
	sections = append(sections, m.renderFlocks())
	sections = append(sections, m.renderActivities())
	sections = append(sections, m.renderPerformance())

	return strings.Join(sections, "\n\n")
}

func (m Model) renderOverview() string {
	ov := m.dashboard.Overview()
	if ov == nil {
		return m.styles.Muted.Render("No overview data yet.")
	}

	cards := []string{
		m.statCard("Farms", domain.FormatNumber(ov.Farms)),
		m.statCard("Flocks", domain.FormatNumber(ov.Flocks)),
		m.statCard("Birds", domain.FormatNumber(ov.TotalBirds)),
		m.statCard("Eggs today", domain.FormatNumber(ov.TodayEggs)),
		m.statCard("Deaths today", domain.FormatNumber(ov.MortalityToday)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) statCard(label, value string) string {
	content := m.styles.StatValue.Render(value) + "\n" + m.styles.StatLabel.Render(label)
	return m.styles.Card.Render(content)
}

func (m Model) renderFlocks() string {
	flocks := m.flocks.Items()
	if len(flocks) == 0 {
		return m.styles.CardTitle.Render("Flocks") + "\n" + m.styles.Muted.Render("  none yet")
	}

	now := time.Now()
	var b strings.Builder
	b.WriteString(m.styles.CardTitle.Render("Flocks"))
	b.WriteString("\n")
	for _, f := range flocks {
		b.WriteString(fmt.Sprintf("  %-12s %-10s %8s birds  %3dw  %5.1f%% survival  %s\n",
			f.BatchNumber, f.PoultryType,
			domain.FormatNumber(f.CurrentCount),
			domain.AgeWeeks(f.ArrivalDate, now),
			domain.SurvivalRate(f.CurrentCount, f.InitialCount),
			f.Status))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderActivities() string {
	acts := m.dashboard.Activities()
	if len(acts) == 0 {
		return m.styles.CardTitle.Render("Recent activity") + "\n" + m.styles.Muted.Render("  nothing recorded yet")
	}

	var b strings.Builder
	b.WriteString(m.styles.CardTitle.Render("Recent activity"))
	b.WriteString("\n")
	for _, a := range acts {
		b.WriteString(fmt.Sprintf("  %-10s %-11s %s\n",
			domain.FormatDate(a.Date), a.Type, a.Description))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderPerformance() string {
	perf := m.dashboard.Performance()
	if len(perf) == 0 {
		return m.styles.CardTitle.Render("Production performance") + "\n" + m.styles.Muted.Render("  no data for the period")
	}

	var b strings.Builder
	b.WriteString(m.styles.CardTitle.Render("Production performance"))
	b.WriteString("\n")
	for _, p := range perf {
		b.WriteString(fmt.Sprintf("  %-12s %-14s %6.1f eggs/day  %5.1f%% laying  %s total\n",
			p.BatchNumber, p.FarmName, p.AvgDailyEggs, p.LayingRatePct,
			domain.FormatNumber(p.TotalEggs30Days)))
	}
	return strings.TrimRight(b.String(), "\n")
}
