package repository

import (
	"errors"

	"user_registry/internal/models"
)

// ErrLoginIDTaken is returned by Insert when the login id is already indexed.
var ErrLoginIDTaken = errors.New("login id already exists")

// Users is the record store contract: two lookup paths (numeric id and
// human-chosen login id) that always change together, plus a sequence
// generator for id assignment.
type Users interface {
	NextID() int64
	Insert(u models.User) error
	GetByID(id int64) (models.User, bool)
	GetByLoginID(loginID string) (models.User, bool)
	Update(id int64, mutate func(*models.User)) (models.User, bool)
	RemoveByID(id int64) (models.User, bool)
	List() []models.User
	Clear() int
	Count() int
}

type Repository struct {
	Users Users
}

func NewRepository() *Repository {
	return &Repository{
		Users: NewUserStore(),
	}
}
