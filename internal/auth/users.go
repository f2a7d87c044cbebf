package auth

import (
	"errors"

	"github.com/ukydev/truck-fleet-tracker/internal/models"
)

// ErrUserNotFound is returned when no user matches the given username.
var ErrUserNotFound = errors.New("user not found")

// UserStore looks up users for login. The only implementation is the static
// in-memory table below; there is no user database in this system.
type UserStore interface {
	FindByUsername(username string) (*models.User, error)
}

// StaticUserStore holds the demo user table. It is read-only after creation
// and, like everything else in the process, resets on restart.
type StaticUserStore struct {
	users []models.User
}

// NewStaticUserStore builds the fixed user table, hashing the demo
// credentials at startup.
func NewStaticUserStore(svc *Service) (*StaticUserStore, error) {
	adminHash, err := svc.HashPassword("admin123")
	if err != nil {
		return nil, err
	}
	driverHash, err := svc.HashPassword("driver123")
	if err != nil {
		return nil, err
	}
	return &StaticUserStore{
		users: []models.User{
			{ID: 1, Username: "admin", PasswordHash: adminHash, Role: models.RoleOwner},
			{ID: 2, Username: "driver1", PasswordHash: driverHash, Role: models.RoleDriver},
		},
	}, nil
}

// FindByUsername returns the user with the given username, or ErrUserNotFound.
func (s *StaticUserStore) FindByUsername(username string) (*models.User, error) {
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}
