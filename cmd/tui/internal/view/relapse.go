package view

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/foldedhq/folded/internal/notification"
	"github.com/foldedhq/folded/internal/user"
)

// RelapseModel records a manually reported relapse: the streak restarts now
// and the user gets a notification, same as an automatically detected one.
type RelapseModel struct {
	CommonModel
	userService         *user.Service
	notificationService *notification.Service

	form *huh.Form

	users        []*user.User
	selectedUser string
	confirmed    bool

	loading bool
	done    bool
	err     error
}

func NewRelapseModel(userSvc *user.Service, notificationSvc *notification.Service) RelapseModel {
	return RelapseModel{
		userService:         userSvc,
		notificationService: notificationSvc,
		loading:             true,
	}
}

func (m RelapseModel) Title() string { return "Record Relapse" }
func (m RelapseModel) ShortHelp() string {
	return "Esc: back"
}

func (m RelapseModel) Init() tea.Cmd {
	return m.loadPickerCmd()
}

func (m RelapseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case relapsePickerMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.users = msg.users
		return m.enterForm()

	case relapseRecordedMsg:
		m.loading = false
		m.done = true
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc || (m.done && msg.String() == "enter") {
			return m, Back
		}
	}

	if m.form == nil || m.done {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.confirmed {
		return m, Back
	}

	m.loading = true

	return m, m.recordCmd()
}

func (m RelapseModel) enterForm() (tea.Model, tea.Cmd) {
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

			huh.NewConfirm().
				Key("confirm").
				Title("Reset this user's streak?").
				Value(&m.confirmed),
		),
	).WithWidth(45).WithShowHelp(false)

	return m, m.form.Init()
}

func (m RelapseModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Working...")
	}

	if m.done {
		if m.err != nil {
			return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
		}

		return lipgloss.NewStyle().Padding(2).Render("Relapse recorded. Streak reset.\n\nEnter: back")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
}

// Messages

type relapsePickerMsg struct {
	users []*user.User
	err   error
}

func (m RelapseModel) loadPickerCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		users, err := m.userService.List(ctx)
		return relapsePickerMsg{users: users, err: err}
	}
}

type relapseRecordedMsg struct {
	err error
}

func (m RelapseModel) recordCmd() tea.Cmd {
	selected := m.selectedUser

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		userID, err := uuid.Parse(selected)
		if err != nil {
			return relapseRecordedMsg{err: err}
		}

		if err := m.userService.ResetStreak(ctx, userID, time.Now()); err != nil {
			return relapseRecordedMsg{err: err}
		}

		err = m.notificationService.Create(ctx, &notification.Notification{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      notification.TypeRelapse,
			CreatedAt: time.Now(),
			Relapse:   &notification.RelapsePayload{},
		})

		return relapseRecordedMsg{err: err}
	}
}
