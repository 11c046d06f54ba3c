package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"course-api/internal/service"
)

// UserHandler mantiene dependencias para endpoints de usuarios.
type UserHandler struct {
	logger   *zap.Logger
	userServ *service.UserService
}

// NewUserHandler crea una instancia de UserHandler con dependencias necesarias.
func NewUserHandler(logger *zap.Logger, userServ *service.UserService) *UserHandler {
	return &UserHandler{
		logger:   logger,
		userServ: userServ,
	}
}

// GetCurrentUser maneja GET /users.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		_ = c.Error(service.ErrUserNotFound)
		return
	}

	user, err := h.userServ.GetUser(c.Request.Context(), identity.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser maneja POST /users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		FirstName    string `json:"firstName"`
		LastName     string `json:"lastName"`
		EmailAddress string `json:"emailAddress"`
		Password     string `json:"password"`
		Courses      string `json:"courses"`
	}
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warn("invalid create user request", zap.Error(err))
		_ = c.Error(err)
		return
	}

	user, err := h.userServ.CreateUser(c.Request.Context(), service.CreateUserInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		Password:     req.Password,
		Courses:      req.Courses,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Location", "/")
	c.JSON(http.StatusCreated, user)
}
