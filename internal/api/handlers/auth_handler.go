// Package handlers contains the handlers for the API
package handlers

import (
	"errors"
	"net/http"

	"github.com/guide4360/guide4360api/internal/auth"
	"github.com/guide4360/guide4360api/internal/config"
	"github.com/guide4360/guide4360api/internal/models"
	"github.com/guide4360/guide4360api/internal/service"
	"github.com/guide4360/guide4360api/pkg/utils/response"
	"github.com/labstack/echo/v4"
)

// AuthHandler is the handler for the auth API
type AuthHandler struct {
	service *service.AuthService
	cfg     *config.Config
}

// NewAuthHandler creates a new handler for the auth API
func NewAuthHandler(service *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{service: service, cfg: cfg}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userData struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// Login verifies credentials and sets the session cookie
func (h *AuthHandler) Login(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	user, token, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return response.ErrorResponse(c, http.StatusUnauthorized, "AuthenticationException", "Invalid username or password")
		}
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	h.setSessionCookie(c, token, int(auth.SessionValidity.Seconds()))
	return response.SuccessResponse(c, echo.Map{"user": toUserData(user)})
}

// Register creates a new user and sets the session cookie
func (h *AuthHandler) Register(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	user, token, err := h.service.Register(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return response.ErrorResponse(c, http.StatusConflict, "ConflictException", "Username already exists")
		}
		return response.ErrorResponse(c, http.StatusInternalServerError, "ServerException", err.Error())
	}

	h.setSessionCookie(c, token, int(auth.SessionValidity.Seconds()))
	return response.SuccessResponse(c, echo.Map{"user": toUserData(user)})
}

// Logout clears the session cookie. Sessions are stateless, so there is no
// server-side state to drop.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.setSessionCookie(c, "", -1)
	return response.SuccessResponse(c, echo.Map{"success": true})
}

// Session reports whether the request carries a valid session
func (h *AuthHandler) Session(c echo.Context) error {
	cookie, err := c.Cookie(auth.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return response.ErrorResponse(c, http.StatusUnauthorized, "AuthenticationException", "Not authenticated")
	}

	claims, err := h.service.VerifySession(cookie.Value)
	if err != nil {
		return response.ErrorResponse(c, http.StatusUnauthorized, "AuthenticationException", "Not authenticated")
	}

	return response.SuccessResponse(c, echo.Map{
		"authenticated": true,
		"user": echo.Map{
			"id":       claims.UserID,
			"username": claims.Username,
		},
	})
}

func bindCredentials(c echo.Context) (*credentialsRequest, error) {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.ErrorResponse(c, http.StatusBadRequest, "InputException", "Invalid request body")
	}
	if req.Username == "" {
		return nil, response.ErrorResponse(c, http.StatusBadRequest, "InputException", "`username` is required")
	}
	if req.Password == "" {
		return nil, response.ErrorResponse(c, http.StatusBadRequest, "InputException", "`password` is required")
	}
	return &req, nil
}

func toUserData(user *models.UserModel) userData {
	return userData{ID: user.ID, Username: user.Username}
}

// setSessionCookie sets the session cookie. A negative maxAge clears it
// immediately (Max-Age=0 on the wire).
func (h *AuthHandler) setSessionCookie(c echo.Context, token string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}
