package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrNoBankLink = errors.New("user has no bank link")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)

	GetUserByItemID(ctx context.Context, itemID string) (*User, error)
	GetBankLink(ctx context.Context, userID uuid.UUID) (*BankLink, error)
	SaveBankLink(ctx context.Context, link *BankLink) error

	ResetStreak(ctx context.Context, userID uuid.UUID, start time.Time) error

	GetDeviceToken(ctx context.Context, userID uuid.UUID) (*DeviceToken, error)
	SaveDeviceToken(ctx context.Context, userID uuid.UUID, token DeviceToken) error
	ClearDeviceToken(ctx context.Context, userID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Email       string
	DisplayName string
	PhotoURL    string
}

// Create provisions a new user. The recovery streak starts at creation time.
func (s *Service) Create(ctx context.Context, params CreateParams) (*User, error) {
	u := &User{
		ID:          uuid.New(),
		Email:       params.Email,
		DisplayName: params.DisplayName,
		PhotoURL:    params.PhotoURL,
		StreakStart: time.Now(),
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.ListUsers(ctx)
}

// GetByItemID resolves the user owning a provider item. Exactly one user owns
// any item; absence is a data-integrity error surfaced to the caller.
func (s *Service) GetByItemID(ctx context.Context, itemID string) (*User, error) {
	return s.repo.GetUserByItemID(ctx, itemID)
}

func (s *Service) BankLink(ctx context.Context, userID uuid.UUID) (*BankLink, error) {
	return s.repo.GetBankLink(ctx, userID)
}

// SaveBankLink stores the provider credentials for a user, replacing any
// previous link. A fresh link always starts with a nil cursor.
func (s *Service) SaveBankLink(ctx context.Context, userID uuid.UUID, accessToken, itemID string) (*BankLink, error) {
	link := &BankLink{
		UserID:      userID,
		AccessToken: accessToken,
		ItemID:      itemID,
	}
	if err := s.repo.SaveBankLink(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

// ResetStreak records a relapse at the given instant. The start timestamp is
// always set to a past or current time, never a future one.
func (s *Service) ResetStreak(ctx context.Context, userID uuid.UUID, now time.Time) error {
	return s.repo.ResetStreak(ctx, userID, now)
}

func (s *Service) DeviceToken(ctx context.Context, userID uuid.UUID) (*DeviceToken, error) {
	return s.repo.GetDeviceToken(ctx, userID)
}

func (s *Service) RegisterDeviceToken(ctx context.Context, userID uuid.UUID, token string) error {
	return s.repo.SaveDeviceToken(ctx, userID, DeviceToken{
		Token:     token,
		CreatedAt: time.Now(),
	})
}

func (s *Service) ClearDeviceToken(ctx context.Context, userID uuid.UUID) error {
	return s.repo.ClearDeviceToken(ctx, userID)
}
