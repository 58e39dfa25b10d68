package handler

import (
	"log/slog"
	"net/http"

	"github.com/chanlloyd12/backend-repo/internal/dto"
	"github.com/chanlloyd12/backend-repo/internal/service"
)

type RequestHandler struct {
	base
	requestService service.RequestService
}

func NewRequestHandler(requestService service.RequestService, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		base:           newBase(logger),
		requestService: requestService,
	}
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRequestRequest
	if !h.decode(w, r, &req) {
		return
	}

	request, err := h.requestService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toRequestResponse(request))
}

func (h *RequestHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	request, err := h.requestService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toRequestResponse(request))
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, mapSlice(requests, toRequestResponse))
}

func (h *RequestHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.ListByEmployee(r.Context(), r.PathValue("employeeId"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, mapSlice(requests, toRequestResponse))
}

func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateRequestRequest
	if !h.decode(w, r, &req) {
		return
	}

	request, err := h.requestService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toRequestResponse(request))
}

func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.requestService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
