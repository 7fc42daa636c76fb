package service

import (
	"errors"
	"fmt"

	"user_registry/internal/models"
	"user_registry/internal/repository"
)

// Domain errors for account flows. Handlers map these to HTTP statuses.
var (
	ErrLoginIDRequired     = errors.New("login id is required")
	ErrPasswordRequired    = errors.New("password is required")
	ErrLoginIDTaken        = errors.New("login id already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrPasswordMismatch    = errors.New("password does not match")
	ErrNewPasswordRequired = errors.New("new password is required")
)

const loginSuccessMessage = "login successful"

// UsersService implements account registration, credential checks and CRUD
// on top of the record store.
type UsersService struct {
	store repository.Users
}

func NewUsersService(store repository.Users) *UsersService {
	return &UsersService{store: store}
}

var _ Users = (*UsersService)(nil)

// Register validates the input, allocates an id and inserts the record.
// Field checks run before the id is allocated; the duplicate check happens
// inside the store's atomic insert, so two concurrent registrations for the
// same login id cannot both succeed.
func (s *UsersService) Register(p RegisterParams) (models.User, error) {
	if p.LoginID == "" {
		return models.User{}, ErrLoginIDRequired
	}
	if p.Password == "" {
		return models.User{}, ErrPasswordRequired
	}

	u := models.User{
		ID:       s.store.NextID(),
		LoginID:  p.LoginID,
		Password: p.Password,
		Name:     p.Name,
		Email:    p.Email,
	}
	if err := s.store.Insert(u); err != nil {
		if errors.Is(err, repository.ErrLoginIDTaken) {
			return models.User{}, ErrLoginIDTaken
		}
		return models.User{}, fmt.Errorf("insert user %q: %w", p.LoginID, err)
	}
	return u.Redacted(), nil
}

// Login is a stateless credential check: exact, case-sensitive comparison
// against the stored password. No session or token is created.
func (s *UsersService) Login(loginID, password string) (LoginResult, error) {
	u, ok := s.store.GetByLoginID(loginID)
	if !ok {
		return LoginResult{}, ErrUserNotFound
	}
	if u.Password != password {
		return LoginResult{}, ErrPasswordMismatch
	}
	return LoginResult{
		LoginID: u.LoginID,
		Name:    u.Name,
		Message: loginSuccessMessage,
	}, nil
}

// List returns every record with the credential redacted.
func (s *UsersService) List() []models.User {
	records := s.store.List()
	out := make([]models.User, 0, len(records))
	for _, u := range records {
		out = append(out, u.Redacted())
	}
	return out
}

func (s *UsersService) GetByID(id int64) (models.User, error) {
	u, ok := s.store.GetByID(id)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u.Redacted(), nil
}

// Update applies only the fields present in p; absent fields keep their
// current values.
func (s *UsersService) Update(id int64, p UpdateParams) (models.User, error) {
	u, ok := s.store.Update(id, func(rec *models.User) {
		if p.Name != nil {
			rec.Name = *p.Name
		}
		if p.Email != nil {
			rec.Email = *p.Email
		}
	})
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u.Redacted(), nil
}

// ChangePassword verifies the old password and overwrites it with the new
// one. Check order: record exists, old password matches, new password
// non-empty. The checks and the write happen inside one store update, so a
// concurrent change cannot slip between them.
func (s *UsersService) ChangePassword(id int64, oldPassword, newPassword string) error {
	var checkErr error
	_, ok := s.store.Update(id, func(rec *models.User) {
		switch {
		case rec.Password != oldPassword:
			checkErr = ErrPasswordMismatch
		case newPassword == "":
			checkErr = ErrNewPasswordRequired
		default:
			rec.Password = newPassword
		}
	})
	if !ok {
		return ErrUserNotFound
	}
	return checkErr
}

func (s *UsersService) Delete(id int64) error {
	if _, ok := s.store.RemoveByID(id); !ok {
		return ErrUserNotFound
	}
	return nil
}

// DeleteAll clears the store and reports how many records were removed.
func (s *UsersService) DeleteAll() (count int, err error) {
	defer func() {
		if r := recover(); r != nil {
			count = 0
			err = fmt.Errorf("delete all users: %v", r)
		}
	}()
	return s.store.Clear(), nil
}

func (s *UsersService) Count() int {
	return s.store.Count()
}
