package handlers

import (
	"net/http"
	"strconv"

	"user_registry/internal/service"

	"github.com/gin-gonic/gin"
)

// Credential and password-change headers. Kept out of request bodies so
// bodies never carry secrets.
const (
	headerLoginID     = "X-USER-ID"
	headerPassword    = "X-USER-PW"
	headerOldPassword = "X-OLD-PW"
	headerNewPassword = "X-NEW-PW"
)

const (
	statusOK = "ok"

	msgUserDeleted     = "user deleted"
	msgPasswordChanged = "password changed"
	errInvalidID       = "invalid user id"
	errInvalidBodyPref = "invalid body: "
)

// Request DTO for registration.
type registerRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Request DTO for partial profile updates. Pointers distinguish "absent"
// from "set to empty".
type updateRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// parseIDParam reads the :id path segment; writes a 400 envelope and returns
// false when it is not a number.
func (h *Handler) parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, errInvalidID)
		return 0, false
	}
	return id, true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body   registerRequest  true  "Registration payload"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Router       /api/v1/users/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errInvalidBodyPref+err.Error())
		return
	}

	u, err := h.services.Users.Register(service.RegisterParams{
		LoginID:  req.LoginID,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
	})
	if err != nil {
		if h.log != nil {
			h.log.Infow("user_register_rejected", "login_id", req.LoginID, "err", err)
		}
		h.respondServiceError(c, err, "user_register_failed", "login_id", req.LoginID)
		return
	}
	respondOK(c, http.StatusCreated, u)
}

// @Summary      Check credentials
// @Description  Stateless credential check; no token or session is created.
// @Tags         users
// @Produce      json
// @Param        X-USER-ID  header  string  true  "Login id"
// @Param        X-USER-PW  header  string  true  "Password"
// @Success      200  {object}  apiResponse
// @Failure      401  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /api/v1/users/login [post]
func (h *Handler) login(c *gin.Context) {
	loginID := c.GetHeader(headerLoginID)
	password := c.GetHeader(headerPassword)

	result, err := h.services.Users.Login(loginID, password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("user_login_failed", "login_id", loginID, "err", err)
		}
		h.respondServiceError(c, err, "user_login_failed", "login_id", loginID)
		return
	}
	respondOK(c, http.StatusOK, result)
}

// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  apiResponse
// @Router       /api/v1/users [get]
func (h *Handler) listUsers(c *gin.Context) {
	respondOK(c, http.StatusOK, h.services.Users.List())
}

// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  apiResponse
// @Failure      400  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /api/v1/users/{id} [get]
func (h *Handler) getUserByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	u, err := h.services.Users.GetByID(id)
	if err != nil {
		h.respondServiceError(c, err, "user_get_failed", "id", id)
		return
	}
	respondOK(c, http.StatusOK, u)
}

// @Summary      Update user profile
// @Description  Partial update: absent fields keep their current values. Login id and password are not settable here.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int            true  "User id"
// @Param        body  body  updateRequest  true  "Fields to update"
// @Success      200  {object}  apiResponse
// @Failure      400  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /api/v1/users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errInvalidBodyPref+err.Error())
		return
	}

	u, err := h.services.Users.Update(id, service.UpdateParams{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.respondServiceError(c, err, "user_update_failed", "id", id)
		return
	}
	respondOK(c, http.StatusOK, u)
}

// @Summary      Change password
// @Tags         users
// @Produce      json
// @Param        id        path    int     true  "User id"
// @Param        X-OLD-PW  header  string  true  "Current password"
// @Param        X-NEW-PW  header  string  true  "New password"
// @Success      200  {object}  apiResponse
// @Failure      400  {object}  apiResponse
// @Failure      401  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /api/v1/users/{id}/password [put]
func (h *Handler) changePassword(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	oldPW := c.GetHeader(headerOldPassword)
	newPW := c.GetHeader(headerNewPassword)

	if err := h.services.Users.ChangePassword(id, oldPW, newPW); err != nil {
		if h.log != nil {
			h.log.Infow("user_password_change_failed", "id", id, "err", err)
		}
		h.respondServiceError(c, err, "user_password_change_failed", "id", id)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": msgPasswordChanged})
}

// @Summary      Delete user by id
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  apiResponse
// @Failure      400  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /api/v1/users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	if err := h.services.Users.Delete(id); err != nil {
		h.respondServiceError(c, err, "user_delete_failed", "id", id)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": msgUserDeleted})
}

// @Summary      Delete all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  apiResponse
// @Failure      500  {object}  apiResponse
// @Router       /api/v1/users [delete]
func (h *Handler) deleteAllUsers(c *gin.Context) {
	count, err := h.services.Users.DeleteAll()
	if err != nil {
		h.respondServiceError(c, err, "user_delete_all_failed")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deletedCount": count})
}
