package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/foldedhq/folded/cmd/tui/internal/view"
	"github.com/foldedhq/folded/internal/banking"
	bankingStore "github.com/foldedhq/folded/internal/banking/store"
	"github.com/foldedhq/folded/internal/config"
	"github.com/foldedhq/folded/internal/database"
	"github.com/foldedhq/folded/internal/notification"
	notificationStore "github.com/foldedhq/folded/internal/notification/store"
	"github.com/foldedhq/folded/internal/plaid"
	"github.com/foldedhq/folded/internal/push"
	"github.com/foldedhq/folded/internal/user"
	userStore "github.com/foldedhq/folded/internal/user/store"
)

type model struct {
	userService         *user.Service
	bankingService      *banking.Service
	notificationService *notification.Service

	currentView View

	usersView         view.UsersModel
	transactionsView  view.TransactionsModel
	notificationsView view.NotificationsModel
	relapseView       view.RelapseModel
}

type View int

const (
	ViewMenu          View = 0
	ViewUsers         View = 1
	ViewTransactions  View = 2
	ViewNotifications View = 3
	ViewRelapse       View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	provider := plaid.NewClient(plaid.Config{
		ClientID:       cfg.Plaid.ClientID,
		Secret:         cfg.Plaid.Secret,
		BaseURL:        cfg.Plaid.BaseURL,
		ClientName:     cfg.Plaid.ClientName,
		WebhookURL:     cfg.Plaid.WebhookURL,
		AndroidPackage: cfg.Plaid.AndroidPackage,
		DaysRequested:  cfg.Plaid.DaysRequested,
	})

	userSvc := user.NewService(userStore.New(db))
	pushClient := push.New(cfg.Push.Endpoint, cfg.Push.ServerKey)
	notificationSvc := notification.NewService(notificationStore.New(db), userSvc, pushClient)
	classifier := banking.NewClassifier(userSvc, notificationSvc)
	bankingSvc := banking.NewService(bankingStore.New(db), banking.NewChangeFeed(provider), userSvc, classifier)

	return model{
		userService:         userSvc,
		bankingService:      bankingSvc,
		notificationService: notificationSvc,
		currentView:         ViewMenu,
		usersView:           view.NewUsersModel(userSvc),
		transactionsView:    view.NewTransactionsModel(bankingSvc, userSvc),
		notificationsView:   view.NewNotificationsModel(notificationSvc, userSvc),
		relapseView:         view.NewRelapseModel(userSvc, notificationSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewUsers
				m.usersView = view.NewUsersModel(m.userService)

				return m, m.usersView.Init()
			case "2":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.bankingService, m.userService)

				return m, m.transactionsView.Init()
			case "3":
				m.currentView = ViewNotifications
				m.notificationsView = view.NewNotificationsModel(m.notificationService, m.userService)

				return m, m.notificationsView.Init()
			case "4":
				m.currentView = ViewRelapse
				m.relapseView = view.NewRelapseModel(m.userService, m.notificationService)

				return m, m.relapseView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewUsers:
		var newModel tea.Model
		newModel, cmd = m.usersView.Update(msg)
		m.usersView = newModel.(view.UsersModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewNotifications:
		var newModel tea.Model
		newModel, cmd = m.notificationsView.Update(msg)
		m.notificationsView = newModel.(view.NotificationsModel)
	case ViewRelapse:
		var newModel tea.Model
		newModel, cmd = m.relapseView.Update(msg)
		m.relapseView = newModel.(view.RelapseModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Folded Admin\n\n" +
				"1. Users\n" +
				"2. Transactions\n" +
				"3. Notifications\n" +
				"4. Record Relapse\n\n" +
				"q. Quit",
		)
	case ViewUsers:
		return m.usersView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewNotifications:
		return m.notificationsView.View()
	case ViewRelapse:
		return m.relapseView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
