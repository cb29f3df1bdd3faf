package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/foldedhq/folded/internal/notification"
	"github.com/foldedhq/folded/internal/user"
)

type notificationsState int

const (
	notificationsStatePick notificationsState = iota
	notificationsStateBrowse
)

type NotificationsModel struct {
	CommonModel
	notificationService *notification.Service
	userService         *user.Service

	state notificationsState
	form  *huh.Form
	table table.Model

	users         []*user.User
	selectedUser  string
	notifications []*notification.Notification

	loading bool
	err     error
	status  string
}

func NewNotificationsModel(notificationSvc *notification.Service, userSvc *user.Service) NotificationsModel {
	columns := []table.Column{
		{Title: "Created", Width: 12},
		{Title: "Type", Width: 12},
		{Title: "Value", Width: 10},
		{Title: "Transactions", Width: 14},
		{Title: "Viewed", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return NotificationsModel{
		notificationService: notificationSvc,
		userService:         userSvc,
		table:               t,
		loading:             true,
	}
}

func (m NotificationsModel) Title() string { return "Notifications" }
func (m NotificationsModel) ShortHelp() string {
	if m.state == notificationsStatePick {
		return "Pick a user | Esc: back"
	}
	return "Esc: back | v: mark viewed | r: refresh"
}

func (m NotificationsModel) Init() tea.Cmd {
	return m.loadPickerCmd()
}

func (m NotificationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsPickerMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.users = msg.users
		return m.enterPickMode()

	case loadNotificationsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.notifications = msg.notifications
		m.refreshTable()
		return m, nil

	case markViewedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.status = ""
		return m, m.loadNotificationsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil
	}

	switch m.state {
	case notificationsStatePick:
		return m.updatePick(msg)
	case notificationsStateBrowse:
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m NotificationsModel) enterPickMode() (tea.Model, tea.Cmd) {
	options := make([]huh.Option[string], 0, len(m.users))
	for _, u := range m.users {
		options = append(options, huh.NewOption(u.Email, u.ID.String()))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("user").
				Title("User").
				Options(options...).
				Value(&m.selectedUser),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = notificationsStatePick

	return m, m.form.Init()
}

func (m NotificationsModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = notificationsStateBrowse
	m.loading = true

	return m, m.loadNotificationsCmd()
}

func (m NotificationsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "v":
			return m, m.markViewedCmd()
		case "r":
			m.loading = true
			return m, m.loadNotificationsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m NotificationsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == notificationsStatePick {
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	if m.status != "" {
		tableView = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + tableView
	}

	return lipgloss.NewStyle().Padding(1).Render(tableView)
}

func (m *NotificationsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.notifications))
	for _, n := range m.notifications {
		value := ""
		txCount := ""
		if n.Relapse != nil {
			value = FormatAmount(n.Relapse.Value)
			txCount = fmt.Sprintf("%d", len(n.Relapse.Transactions))
		}

		viewed := ""
		if n.ViewedAt != nil {
			viewed = FormatDate(*n.ViewedAt)
		}

		rows = append(rows, table.Row{
			FormatDate(n.CreatedAt),
			string(n.Type),
			value,
			txCount,
			viewed,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type notificationsPickerMsg struct {
	users []*user.User
	err   error
}

func (m NotificationsModel) loadPickerCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		users, err := m.userService.List(ctx)
		return notificationsPickerMsg{users: users, err: err}
	}
}

type loadNotificationsMsg struct {
	notifications []*notification.Notification
	err           error
}

func (m NotificationsModel) loadNotificationsCmd() tea.Cmd {
	selected := m.selectedUser

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		userID, err := uuid.Parse(selected)
		if err != nil {
			return loadNotificationsMsg{err: err}
		}

		notifications, err := m.notificationService.List(ctx, userID)
		return loadNotificationsMsg{notifications: notifications, err: err}
	}
}

type markViewedMsg struct {
	err error
}

func (m NotificationsModel) markViewedCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.notifications) {
		return nil
	}

	selected := m.selectedUser
	id := m.notifications[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		userID, err := uuid.Parse(selected)
		if err != nil {
			return markViewedMsg{err: err}
		}

		return markViewedMsg{err: m.notificationService.MarkViewed(ctx, userID, id)}
	}
}
