package handlers

import (
	"user_registry/internal/models"
	"user_registry/internal/repository"
	"user_registry/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockUsers struct {
	registerUser models.User
	registerErr  error
	lastRegister service.RegisterParams

	loginResult service.LoginResult
	loginErr    error
	lastLoginID string
	lastLoginPW string

	listResp []models.User

	getUser   models.User
	getErr    error
	lastGetID int64

	updateUser   models.User
	updateErr    error
	lastUpdateID int64
	lastUpdate   service.UpdateParams

	changeErr    error
	lastChangeID int64
	lastOldPW    string
	lastNewPW    string

	deleteErr    error
	lastDeleteID int64

	deleteAllCount int
	deleteAllErr   error

	countResp int
}

func (m *mockUsers) Register(p service.RegisterParams) (models.User, error) {
	m.lastRegister = p
	return m.registerUser, m.registerErr
}

func (m *mockUsers) Login(loginID, password string) (service.LoginResult, error) {
	m.lastLoginID = loginID
	m.lastLoginPW = password
	return m.loginResult, m.loginErr
}

func (m *mockUsers) List() []models.User {
	return m.listResp
}

func (m *mockUsers) GetByID(id int64) (models.User, error) {
	m.lastGetID = id
	return m.getUser, m.getErr
}

func (m *mockUsers) Update(id int64, p service.UpdateParams) (models.User, error) {
	m.lastUpdateID = id
	m.lastUpdate = p
	return m.updateUser, m.updateErr
}

func (m *mockUsers) ChangePassword(id int64, oldPassword, newPassword string) error {
	m.lastChangeID = id
	m.lastOldPW = oldPassword
	m.lastNewPW = newPassword
	return m.changeErr
}

func (m *mockUsers) Delete(id int64) error {
	m.lastDeleteID = id
	return m.deleteErr
}

func (m *mockUsers) DeleteAll() (int, error) {
	return m.deleteAllCount, m.deleteAllErr
}

func (m *mockUsers) Count() int {
	return m.countResp
}

// ---- Router helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// newLiveRouter wires the full stack (real store and service) for
// end-to-end handler tests.
func newLiveRouter() *gin.Engine {
	return newTestRouter(service.NewService(repository.NewRepository()))
}
