package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/foldedhq/folded/internal/banking"
	"github.com/foldedhq/folded/internal/user"
)

type transactionsState int

const (
	transactionsStatePick transactionsState = iota
	transactionsStateBrowse
)

type TransactionsModel struct {
	CommonModel
	bankingService *banking.Service
	userService    *user.Service

	state transactionsState
	form  *huh.Form
	table table.Model

	users        []*user.User
	selectedUser string
	txs          []*banking.Transaction

	gamblingOnly bool
	loading      bool
	err          error
}

func NewTransactionsModel(bankingSvc *banking.Service, userSvc *user.Service) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Amount", Width: 10},
		{Title: "Name", Width: 35},
		{Title: "Category", Width: 35},
		{Title: "Merchant", Width: 25},
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

	return TransactionsModel{
		bankingService: bankingSvc,
		userService:    userSvc,
		table:          t,
		loading:        true,
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }
func (m TransactionsModel) ShortHelp() string {
	if m.state == transactionsStatePick {
		return "Pick a user | Esc: back"
	}
	return "Esc: back | g: gambling filter | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadPickerCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pickerLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.users = msg.users
		return m.enterPickMode()

	case loadTransactionsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.txs = msg.txs
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil
	}

	switch m.state {
	case transactionsStatePick:
		return m.updatePick(msg)
	case transactionsStateBrowse:
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m TransactionsModel) enterPickMode() (tea.Model, tea.Cmd) {
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

	m.state = transactionsStatePick

	return m, m.form.Init()
}

func (m TransactionsModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	m.state = transactionsStateBrowse
	m.loading = true

	return m, m.loadTxsCmd()
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "g":
			m.gamblingOnly = !m.gamblingOnly
			m.loading = true
			return m, m.loadTxsCmd()
		case "r":
			m.loading = true
			return m, m.loadTxsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == transactionsStatePick {
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	}

	filterLabel := "All"
	if m.gamblingOnly {
		filterLabel = "Gambling"
	}

	header := fmt.Sprintf("Filter: [g] %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(filterLabel),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		category := ""
		if tx.Category.Detailed != nil {
			category = *tx.Category.Detailed
		}

		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			FormatAmount(tx.Amount),
			tx.Name,
			category,
			tx.Merchant.Name,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type pickerLoadedMsg struct {
	users []*user.User
	err   error
}

func (m TransactionsModel) loadPickerCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		users, err := m.userService.List(ctx)
		return pickerLoadedMsg{users: users, err: err}
	}
}

type loadTransactionsMsg struct {
	txs []*banking.Transaction
	err error
}

func (m TransactionsModel) loadTxsCmd() tea.Cmd {
	selected := m.selectedUser
	filter := banking.ListFilter{GamblingOnly: m.gamblingOnly}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		userID, err := uuid.Parse(selected)
		if err != nil {
			return loadTransactionsMsg{err: err}
		}

		txs, err := m.bankingService.List(ctx, userID, filter)
		return loadTransactionsMsg{txs: txs, err: err}
	}
}
