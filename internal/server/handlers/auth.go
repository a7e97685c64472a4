package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/finkeeper/internal/models"
	"github.com/iudanet/finkeeper/internal/server/storage"
	"github.com/iudanet/finkeeper/internal/validation"
	"github.com/iudanet/finkeeper/pkg/api"
)

// Ответ на логин с неверными данными одинаков для неизвестного email и
// неверного пароля, чтобы не раскрывать, какая часть неверна
const invalidCredentialsMsg = "Invalid Username/Password"

const invalidRefreshTokenMsg = "Invalid refresh token"

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger       *slog.Logger
	userStorage  storage.UserStorage
	tokenStorage storage.TokenStorage
	jwtConfig    JWTConfig
	bcryptCost   int
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, tokenStorage storage.TokenStorage, jwtConfig JWTConfig, bcryptCost int) *AuthHandler {
	return &AuthHandler{
		logger:       logger,
		userStorage:  userStorage,
		tokenStorage: tokenStorage,
		jwtConfig:    jwtConfig,
		bcryptCost:   bcryptCost,
	}
}

// Signup обрабатывает POST /auth/signup
// Регистрация нового пользователя
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode signup request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	email := validation.NormalizeEmail(req.Email)
	if err := validation.ValidateEmail(email); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validation.ValidatePassword(req.Password); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "signup with existing email", slog.String("email", email))
			sendError(h.logger, w, "user with this email already exists", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user signed up",
		slog.String("user_id", user.ID),
		slog.String("email", email))

	sendJSON(h.logger, w, userResponse(user), http.StatusCreated)
}

// Login обрабатывает POST /auth/login
// Аутентификация пользователя и выдача пары токенов
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	email := validation.NormalizeEmail(req.Email)

	user, err := h.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("email", email))
			sendError(h.logger, w, invalidCredentialsMsg, http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("email", email))
		sendError(h.logger, w, invalidCredentialsMsg, http.StatusBadRequest)
		return
	}

	accessToken, _, err := GenerateAccessToken(h.jwtConfig, user.ID, user.Email)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	refreshToken, _, err := GenerateRefreshToken(h.jwtConfig, user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate refresh token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email))

	resp := api.LoginResponse{
		ID:    user.ID,
		Email: user.Email,
		Tokens: api.TokenPair{
			RefreshToken: refreshToken,
			AccessToken:  accessToken,
		},
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Refresh обрабатывает POST /auth/refresh
// Обмен действующего refresh token на новый access token
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode refresh request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Refresh == "" {
		sendError(h.logger, w, invalidRefreshTokenMsg, http.StatusUnauthorized)
		return
	}

	claims, err := ValidateRefreshToken(h.jwtConfig, req.Refresh)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid refresh token", slog.Any("error", err))
		sendError(h.logger, w, invalidRefreshTokenMsg, http.StatusUnauthorized)
		return
	}

	blacklisted, err := h.tokenStorage.IsTokenBlacklisted(ctx, claims.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to check token blacklist", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if blacklisted {
		h.logger.WarnContext(ctx, "refresh with blacklisted token", slog.String("jti", claims.ID))
		sendError(h.logger, w, invalidRefreshTokenMsg, http.StatusUnauthorized)
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, claims.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "refresh for unknown user", slog.String("user_id", claims.UserID))
		sendError(h.logger, w, invalidRefreshTokenMsg, http.StatusUnauthorized)
		return
	}

	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, user.ID, user.Email)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "access token refreshed", slog.String("user_id", user.ID))

	sendJSON(h.logger, w, api.RefreshResponse{
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
	}, http.StatusOK)
}

// Logout обрабатывает POST /auth/logout
// Отзывает refresh token через blacklist. Access token, предъявленный вместо
// refresh, отклоняется: вид токена определяется по token_type claim.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode logout request", slog.Any("error", err))
		sendError(h.logger, w, invalidRefreshTokenMsg, http.StatusBadRequest)
		return
	}

	if req.Refresh == "" {
		sendError(h.logger, w, invalidRefreshTokenMsg, http.StatusBadRequest)
		return
	}

	claims, err := ValidateRefreshToken(h.jwtConfig, req.Refresh)
	if err != nil {
		h.logger.WarnContext(ctx, "logout with invalid token", slog.Any("error", err))
		sendError(h.logger, w, invalidRefreshTokenMsg, http.StatusBadRequest)
		return
	}

	// Повторный logout того же токена — тоже ошибка: токен уже не действует
	blacklisted, err := h.tokenStorage.IsTokenBlacklisted(ctx, claims.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to check token blacklist", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}
	if blacklisted {
		sendError(h.logger, w, invalidRefreshTokenMsg, http.StatusBadRequest)
		return
	}

	token := &models.BlacklistedToken{
		JTI:       claims.ID,
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt.Time,
		CreatedAt: time.Now(),
	}

	if err := h.tokenStorage.BlacklistToken(ctx, token); err != nil {
		h.logger.ErrorContext(ctx, "failed to blacklist token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged out",
		slog.String("user_id", claims.UserID),
		slog.String("jti", claims.ID))

	sendJSON(h.logger, w, api.MessageResponse{Message: "User logged out successfully"}, http.StatusOK)
}

func userResponse(user *models.User) api.UserResponse {
	return api.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
	}
}
