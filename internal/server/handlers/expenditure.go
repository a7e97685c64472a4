package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/finkeeper/internal/models"
	"github.com/iudanet/finkeeper/internal/server/storage"
	"github.com/iudanet/finkeeper/internal/validation"
	"github.com/iudanet/finkeeper/pkg/api"
)

// ExpenditureHandler обрабатывает CRUD запросы по записям расходов.
// Все операции ограничены записями аутентифицированного пользователя:
// чужая запись неотличима от несуществующей (404, не 403).
type ExpenditureHandler struct {
	logger  *slog.Logger
	storage storage.ExpenditureStorage
}

// NewExpenditureHandler создает новый handler для расходов
func NewExpenditureHandler(logger *slog.Logger, storage storage.ExpenditureStorage) *ExpenditureHandler {
	return &ExpenditureHandler{
		logger:  logger,
		storage: storage,
	}
}

// Create обрабатывает POST /expenditure/user/
func (h *ExpenditureHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req api.ExpenditureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode expenditure request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateExpenditure(&req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now()
	exp := &models.Expenditure{
		ID:              uuid.New().String(),
		UserID:          userID,
		Category:        *req.Category,
		NameOfItem:      *req.NameOfItem,
		EstimatedAmount: *req.EstimatedAmount,
		CreatedAt:       now,
		ModifiedAt:      now,
	}

	if err := h.storage.CreateExpenditure(ctx, exp); err != nil {
		h.logger.ErrorContext(ctx, "failed to create expenditure", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "expenditure created",
		slog.String("user_id", userID),
		slog.String("expenditure_id", exp.ID))

	sendJSON(h.logger, w, expenditureResponse(exp), http.StatusCreated)
}

// List обрабатывает GET /expenditure/user/
// Возвращает все записи вызывающего пользователя и только их
func (h *ExpenditureHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	exps, err := h.storage.ListExpenditures(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list expenditures", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.ExpenditureResponse, 0, len(exps))
	for _, exp := range exps {
		resp = append(resp, expenditureResponse(exp))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get обрабатывает GET /expenditure/user/{id}/
func (h *ExpenditureHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	exp, err := h.storage.GetExpenditure(ctx, userID, r.PathValue("id"))
	if err != nil {
		h.respondStorageError(ctx, w, err)
		return
	}

	sendJSON(h.logger, w, expenditureResponse(exp), http.StatusOK)
}

// Update обрабатывает PUT /expenditure/user/{id}/
// Полное обновление: неполный payload отклоняется
func (h *ExpenditureHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req api.ExpenditureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode expenditure request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateExpenditure(&req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	exp, err := h.storage.GetExpenditure(ctx, userID, r.PathValue("id"))
	if err != nil {
		h.respondStorageError(ctx, w, err)
		return
	}

	exp.Category = *req.Category
	exp.NameOfItem = *req.NameOfItem
	exp.EstimatedAmount = *req.EstimatedAmount
	exp.ModifiedAt = time.Now()

	if err := h.storage.UpdateExpenditure(ctx, exp); err != nil {
		h.respondStorageError(ctx, w, err)
		return
	}

	sendJSON(h.logger, w, expenditureResponse(exp), http.StatusOK)
}

// Patch обрабатывает PATCH /expenditure/user/{id}/
// Частичное обновление: непереданные поля сохраняют прежние значения
func (h *ExpenditureHandler) Patch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req api.ExpenditureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode expenditure request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	exp, err := h.storage.GetExpenditure(ctx, userID, r.PathValue("id"))
	if err != nil {
		h.respondStorageError(ctx, w, err)
		return
	}

	if req.Category != nil {
		if err := validation.ValidateTextField("category", *req.Category); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		exp.Category = *req.Category
	}
	if req.NameOfItem != nil {
		if err := validation.ValidateTextField("name_of_item", *req.NameOfItem); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		exp.NameOfItem = *req.NameOfItem
	}
	if req.EstimatedAmount != nil {
		if err := validation.ValidateAmount("estimated_amount", *req.EstimatedAmount); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		exp.EstimatedAmount = *req.EstimatedAmount
	}

	exp.ModifiedAt = time.Now()

	if err := h.storage.UpdateExpenditure(ctx, exp); err != nil {
		h.respondStorageError(ctx, w, err)
		return
	}

	sendJSON(h.logger, w, expenditureResponse(exp), http.StatusOK)
}

// Delete обрабатывает DELETE /expenditure/user/{id}/
// Повторное удаление того же id возвращает 404
func (h *ExpenditureHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	if err := h.storage.DeleteExpenditure(ctx, userID, r.PathValue("id")); err != nil {
		h.respondStorageError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ExpenditureHandler) callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.Error("user ID not found in context")
		sendError(h.logger, w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

func (h *ExpenditureHandler) respondStorageError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrRecordNotFound) {
		sendError(h.logger, w, "expenditure not found", http.StatusNotFound)
		return
	}
	h.logger.ErrorContext(ctx, "expenditure storage error", slog.Any("error", err))
	sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
}

// validateExpenditure проверяет полный payload (create и PUT)
func validateExpenditure(req *api.ExpenditureRequest) error {
	if req.Category == nil {
		return errors.New("category is required")
	}
	if err := validation.ValidateTextField("category", *req.Category); err != nil {
		return err
	}
	if req.NameOfItem == nil {
		return errors.New("name_of_item is required")
	}
	if err := validation.ValidateTextField("name_of_item", *req.NameOfItem); err != nil {
		return err
	}
	if req.EstimatedAmount == nil {
		return errors.New("estimated_amount is required")
	}
	return validation.ValidateAmount("estimated_amount", *req.EstimatedAmount)
}

func expenditureResponse(exp *models.Expenditure) api.ExpenditureResponse {
	return api.ExpenditureResponse{
		ID:              exp.ID,
		Category:        exp.Category,
		NameOfItem:      exp.NameOfItem,
		EstimatedAmount: exp.EstimatedAmount,
		CreatedAt:       exp.CreatedAt,
		ModifiedAt:      exp.ModifiedAt,
	}
}
