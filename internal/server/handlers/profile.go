package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/finkeeper/internal/server/storage"
	"github.com/iudanet/finkeeper/internal/validation"
	"github.com/iudanet/finkeeper/pkg/api"
)

// ProfileHandler обрабатывает запросы профиля пользователя
type ProfileHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	bcryptCost  int
}

// NewProfileHandler создает новый handler для профиля
func NewProfileHandler(logger *slog.Logger, userStorage storage.UserStorage, bcryptCost int) *ProfileHandler {
	return &ProfileHandler{
		logger:      logger,
		userStorage: userStorage,
		bcryptCost:  bcryptCost,
	}
}

// Get обрабатывает GET /auth/user/{id}/profile/
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(h.logger, w, "profile not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, userResponse(user), http.StatusOK)
}

// Update обрабатывает PUT /auth/user/{id}/profile/
// Полное обновление профиля; пароль меняется только если передан
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}

	var req api.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode profile update", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	// PUT требует полный payload
	if req.FirstName == nil || req.LastName == nil || req.Username == nil {
		sendError(h.logger, w, "first_name, last_name and username are required", http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(h.logger, w, "profile not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	user.FirstName = *req.FirstName
	user.LastName = *req.LastName
	user.Username = *req.Username

	if req.Password != "" {
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
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = time.Now()

	if err := h.userStorage.UpdateUser(ctx, user); err != nil {
		h.logger.ErrorContext(ctx, "failed to update user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "profile updated", slog.String("user_id", user.ID))

	sendJSON(h.logger, w, userResponse(user), http.StatusOK)
}

// ownProfileID сравнивает {id} из пути с аутентифицированным пользователем.
// Чужой id отдает 404, а не 403: существование чужого профиля не подтверждается.
func (h *ProfileHandler) ownProfileID(w http.ResponseWriter, r *http.Request) (string, bool) {
	callerID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.Error("user ID not found in context")
		sendError(h.logger, w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}

	pathID := r.PathValue("id")
	if pathID != callerID {
		sendError(h.logger, w, "profile not found", http.StatusNotFound)
		return "", false
	}

	return callerID, true
}
