package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	portssvc "github.com/SscSPs/piecework_app/internal/core/ports/services"
	"github.com/SscSPs/piecework_app/internal/dto"
	"github.com/SscSPs/piecework_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// loginRate caps password attempts per client IP.
const loginRate = "5-M"

// authHandler handles login and back-office user management.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

// registerAuthRoutes sets up the public login route.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade) error {
	h := &authHandler{authService: authService}

	loginLimiter, err := middleware.NewRateLimiter(loginRate)
	if err != nil {
		return err
	}

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
	}
	return nil
}

// registerUserRoutes sets up user routes under the authenticated group.
func registerUserRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := &authHandler{authService: authService}

	users := rg.Group("/users")
	{
		users.GET("/me", h.me)
		users.POST("", middleware.RequireRole(string(domain.RoleAdmin)), h.createUser)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a manager or admin and returns a JWT access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "login request", err)
		return
	}

	user, token, expiresAt, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	})
}

// me godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *authHandler) me(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// createUser godoc
// @Summary Create a back-office user
// @Description Admin only. Creates a manager or admin account.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username already exists"
// @Security BearerAuth
// @Router /users [post]
func (h *authHandler) createUser(c *gin.Context) {
	creatorID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "user request", err)
		return
	}

	user, err := h.authService.CreateUser(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User created", slog.String("new_user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}
