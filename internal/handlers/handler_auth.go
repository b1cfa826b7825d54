package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/money_records_app/internal/apperrors"
	portssvc "github.com/SscSPs/money_records_app/internal/core/ports/services"
	"github.com/SscSPs/money_records_app/internal/dto"
	"github.com/SscSPs/money_records_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// authHandler handles registration and login.
type authHandler struct {
	userService portssvc.UserSvcFacade
	tokens      portssvc.TokenIssuer
	tokenTTL    time.Duration
}

func newAuthHandler(us portssvc.UserSvcFacade, tokens portssvc.TokenIssuer, ttl time.Duration) *authHandler {
	return &authHandler{userService: us, tokens: tokens, tokenTTL: ttl}
}

// RegisterAuthRoutes sets up the public authentication routes. Every route in
// the group passes through the supplied middleware (typically the rate limiter).
func RegisterAuthRoutes(rg *gin.RouterGroup, us portssvc.UserSvcFacade, tokens portssvc.TokenIssuer, ttl time.Duration, mw ...gin.HandlerFunc) {
	h := newAuthHandler(us, tokens, ttl)

	auth := rg.Group("/auth", mw...)
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

// register godoc
// @Summary Register new user
// @Description Creates a new user and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for register", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Message: "Username already taken"})
			return
		}
		respondWithError(c, err, "Failed to register user")
		return
	}

	h.respondWithToken(c, http.StatusCreated, user.UserID)
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Info("Login rejected", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Invalid username or password"})
			return
		}
		respondWithError(c, err, "Failed to log in")
		return
	}

	h.respondWithToken(c, http.StatusOK, user.UserID)
}

func (h *authHandler) respondWithToken(c *gin.Context, status int, userID uuid.UUID) {
	token, _, err := h.tokens.Issue(userID, h.tokenTTL)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to generate token"})
		return
	}
	c.JSON(status, dto.TokenResponse{Token: token})
}
