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

// IncomeHandler обрабатывает CRUD запросы по записям доходов.
// Правила доступа те же, что и для расходов: только свои записи, 404 для чужих.
type IncomeHandler struct {
	logger  *slog.Logger
	storage storage.IncomeStorage
}

// NewIncomeHandler создает новый handler для доходов
func NewIncomeHandler(logger *slog.Logger, storage storage.IncomeStorage) *IncomeHandler {
	return &IncomeHandler{
		logger:  logger,
		storage: storage,
	}
}

// Create обрабатывает POST /income/user/
func (h *IncomeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req api.IncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode income request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateIncome(&req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now()
	inc := &models.Income{
		ID:            uuid.New().String(),
		UserID:        userID,
		NameOfRevenue: *req.NameOfRevenue,
		Amount:        *req.Amount,
		CreatedAt:     now,
		ModifiedAt:    now,
	}

	if err := h.storage.CreateIncome(ctx, inc); err != nil {
		h.logger.ErrorContext(ctx, "failed to create income", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "income created",
		slog.String("user_id", userID),
		slog.String("income_id", inc.ID))

	sendJSON(h.logger, w, incomeResponse(inc), http.StatusCreated)
}

// List обрабатывает GET /income/user/
func (h *IncomeHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	incs, err := h.storage.ListIncomes(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list incomes", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.IncomeResponse, 0, len(incs))
	for _, inc := range incs {
		resp = append(resp, incomeResponse(inc))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get обрабатывает GET /income/user/{id}/
func (h *IncomeHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	inc, err := h.storage.GetIncome(ctx, userID, r.PathValue("id"))
	if err != nil {
		h.respondStorageError(ctx, w, err)
		return
	}

	sendJSON(h.logger, w, incomeResponse(inc), http.StatusOK)
}

// Update обрабатывает PUT /income/user/{id}/
// Полное обновление: неполный payload отклоняется
func (h *IncomeHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req api.IncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode income request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateIncome(&req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	inc, err := h.storage.GetIncome(ctx, userID, r.PathValue("id"))
	if err != nil {
		h.respondStorageError(ctx, w, err)
		return
	}

	inc.NameOfRevenue = *req.NameOfRevenue
	inc.Amount = *req.Amount
	inc.ModifiedAt = time.Now()

	if err := h.storage.UpdateIncome(ctx, inc); err != nil {
		h.respondStorageError(ctx, w, err)
		return
	}

	sendJSON(h.logger, w, incomeResponse(inc), http.StatusOK)
}

// Patch обрабатывает PATCH /income/user/{id}/
// Частичное обновление: непереданные поля сохраняют прежние значения
func (h *IncomeHandler) Patch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req api.IncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode income request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	inc, err := h.storage.GetIncome(ctx, userID, r.PathValue("id"))
	if err != nil {
		h.respondStorageError(ctx, w, err)
		return
	}

	if req.NameOfRevenue != nil {
		if err := validation.ValidateTextField("name_of_revenue", *req.NameOfRevenue); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		inc.NameOfRevenue = *req.NameOfRevenue
	}
	if req.Amount != nil {
		if err := validation.ValidateAmount("amount", *req.Amount); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		inc.Amount = *req.Amount
	}

	inc.ModifiedAt = time.Now()

	if err := h.storage.UpdateIncome(ctx, inc); err != nil {
		h.respondStorageError(ctx, w, err)
		return
	}

	sendJSON(h.logger, w, incomeResponse(inc), http.StatusOK)
}

// Delete обрабатывает DELETE /income/user/{id}/
// Повторное удаление того же id возвращает 404
func (h *IncomeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	if err := h.storage.DeleteIncome(ctx, userID, r.PathValue("id")); err != nil {
		h.respondStorageError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *IncomeHandler) callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.Error("user ID not found in context")
		sendError(h.logger, w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

func (h *IncomeHandler) respondStorageError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrRecordNotFound) {
		sendError(h.logger, w, "income not found", http.StatusNotFound)
		return
	}
	h.logger.ErrorContext(ctx, "income storage error", slog.Any("error", err))
	sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
}

// validateIncome проверяет полный payload (create и PUT)
func validateIncome(req *api.IncomeRequest) error {
	if req.NameOfRevenue == nil {
		return errors.New("name_of_revenue is required")
	}
	if err := validation.ValidateTextField("name_of_revenue", *req.NameOfRevenue); err != nil {
		return err
	}
	if req.Amount == nil {
		return errors.New("amount is required")
	}
	return validation.ValidateAmount("amount", *req.Amount)
}

func incomeResponse(inc *models.Income) api.IncomeResponse {
	return api.IncomeResponse{
		ID:            inc.ID,
		NameOfRevenue: inc.NameOfRevenue,
		Amount:        inc.Amount,
		CreatedAt:     inc.CreatedAt,
		ModifiedAt:    inc.ModifiedAt,
	}
}
