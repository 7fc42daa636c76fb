package service

import (
	"user_registry/internal/models"
	"user_registry/internal/repository"
)

// RegisterParams carries the fields a caller supplies at registration.
type RegisterParams struct {
	LoginID  string
	Password string
	Name     string
	Email    string
}

// UpdateParams is a partial update: a nil field means "leave unchanged".
// Login id and password are immutable through this path.
type UpdateParams struct {
	Name  *string
	Email *string
}

// LoginResult is the payload returned on a successful credential check.
type LoginResult struct {
	LoginID string `json:"loginId"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// Users exposes all account operations. Every method is total: it returns
// either data or a typed error, never panics out of the service.
type Users interface {
	Register(p RegisterParams) (models.User, error)
	Login(loginID, password string) (LoginResult, error)
	List() []models.User
	GetByID(id int64) (models.User, error)
	Update(id int64, p UpdateParams) (models.User, error)
	ChangePassword(id int64, oldPassword, newPassword string) error
	Delete(id int64) error
	DeleteAll() (int, error)
	Count() int
}

// Root Service aggregates all sub-services.
type Service struct {
	Users
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Users: NewUsersService(repos.Users),
	}
}
