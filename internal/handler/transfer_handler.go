package handler

import (
	"log/slog"
	"net/http"

	"github.com/chanlloyd12/backend-repo/internal/dto"
	"github.com/chanlloyd12/backend-repo/internal/service"
)

type TransferHandler struct {
	base
	transferService service.TransferService
}

func NewTransferHandler(transferService service.TransferService, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{
		base:            newBase(logger),
		transferService: transferService,
	}
}

func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransferRequest
	if !h.decode(w, r, &req) {
		return
	}

	transfer, err := h.transferService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, dto.CreateTransferResponse{
		Message:  "Transfer request submitted",
		Transfer: toTransferResponse(transfer),
	})
}

func (h *TransferHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	transfer, err := h.transferService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toTransferResponse(transfer))
}

func (h *TransferHandler) List(w http.ResponseWriter, r *http.Request) {
	transfers, err := h.transferService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, mapSlice(transfers, toTransferResponse))
}

func (h *TransferHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	transfers, err := h.transferService.ListByEmployee(r.Context(), r.PathValue("employeeId"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, mapSlice(transfers, toTransferResponse))
}

func (h *TransferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.transferService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
