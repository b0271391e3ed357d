package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrifkiw/contact-management/internal/middleware"
	"github.com/mrifkiw/contact-management/internal/models"
	"github.com/mrifkiw/contact-management/internal/service"
	"go.uber.org/zap"
)

// UserHandler handles registration, login and current-user requests.
type UserHandler struct {
	userService service.UserService
	log         *zap.SugaredLogger
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService, log *zap.SugaredLogger) *UserHandler {
	return &UserHandler{userService: userService, log: log.With("handler", "user")}
}

// UserResponse is the user resource shape. The token is present only on
// login responses.
type UserResponse struct {
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Token    *string `json:"token,omitempty"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{Username: user.Username, Name: user.Name}
}

// Register handles POST /api/users.
func (h *UserHandler) Register(c *gin.Context) {
	var req service.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindingError(err))
		return
	}
	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusCreated, newUserResponse(user))
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req service.LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindingError(err))
		return
	}
	user, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	resp := newUserResponse(user)
	resp.Token = user.Token
	respondData(c, http.StatusOK, resp)
}

// Current handles GET /api/users/current. The identity was already
// resolved by the auth guard; no extra query is made.
func (h *UserHandler) Current(c *gin.Context) {
	user := middleware.CurrentUser(c)
	respondData(c, http.StatusOK, newUserResponse(user))
}

// Update handles PATCH /api/users/current.
func (h *UserHandler) Update(c *gin.Context) {
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindingError(err))
		return
	}
	user, err := h.userService.Update(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, newUserResponse(user))
}

// Logout handles DELETE /api/users/logout.
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.userService.Logout(c.Request.Context(), middleware.CurrentUser(c)); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, true)
}
