package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/chanlloyd12/backend-repo/internal/domain"
	"github.com/chanlloyd12/backend-repo/internal/dto"
	"github.com/chanlloyd12/backend-repo/internal/middleware"
)

// statusByKind сопоставляет класс бизнес-ошибки с HTTP-статусом
var statusByKind = map[domain.Kind]int{
	domain.KindNotFound:   http.StatusNotFound,
	domain.KindConflict:   http.StatusConflict,
	domain.KindValidation: http.StatusBadRequest,
}

// base содержит общие для всех обработчиков зависимости и ответы
type base struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newBase(logger *slog.Logger) base {
	return base{
		validator: validator.New(),
		logger:    logger,
	}
}

// decode читает JSON-тело и валидирует его. При ошибке ответ уже отправлен.
func (b base) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		b.respondError(w, http.StatusBadRequest, "invalid request body", "", err.Error())
		return false
	}

	if err := b.validator.Struct(dst); err != nil {
		b.respondError(w, http.StatusBadRequest, "validation error", "ValidationFailed", err.Error())
		return false
	}

	return true
}

// pathID разбирает числовой идентификатор из пути. При ошибке ответ уже отправлен.
func (b base) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id < 1 {
		b.respondError(w, http.StatusBadRequest, "invalid "+name, "", "")
		return 0, false
	}
	return id, true
}

func (b base) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		if status, ok := statusByKind[domainErr.Kind]; ok {
			b.respondError(w, status, domainErr.Message, domainErr.Reason, "")
			return
		}
	}

	b.logger.Error("internal error",
		slog.Any("error", err),
		slog.String("request_id", middleware.RequestIDFrom(r.Context())),
	)
	b.respondError(w, http.StatusInternalServerError, "internal server error", "", "")
}

func (b base) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		b.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (b base) respondError(w http.ResponseWriter, status int, errMsg, reason, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg, Reason: reason, Message: details}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		b.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
