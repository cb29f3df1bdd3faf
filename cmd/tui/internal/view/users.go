package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/foldedhq/folded/internal/user"
)

type UsersModel struct {
	CommonModel
	userService *user.Service

	table   table.Model
	users   []*user.User
	loading bool
	err     error
}

func NewUsersModel(userSvc *user.Service) UsersModel {
	columns := []table.Column{
		{Title: "Email", Width: 30},
		{Title: "Name", Width: 20},
		{Title: "Streak", Width: 10},
		{Title: "Since", Width: 12},
		{Title: "Joined", Width: 12},
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

	return UsersModel{
		userService: userSvc,
		table:       t,
		loading:     true,
	}
}

func (m UsersModel) Title() string { return "Users" }
func (m UsersModel) ShortHelp() string {
	return "Esc: back | r: refresh"
}

func (m UsersModel) Init() tea.Cmd {
	return m.loadUsersCmd()
}

func (m UsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadUsersMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.users = msg.users
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadUsersCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m UsersModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading users...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(tableView)
}

func (m *UsersModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.users))
	for _, u := range m.users {
		rows = append(rows, table.Row{
			u.Email,
			u.DisplayName,
			FormatStreak(u.StreakStart),
			FormatDate(u.StreakStart),
			FormatDate(u.CreatedAt),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadUsersMsg struct {
	users []*user.User
	err   error
}

func (m UsersModel) loadUsersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		users, err := m.userService.List(ctx)
		return loadUsersMsg{users: users, err: err}
	}
}
