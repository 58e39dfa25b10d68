package handler

import (
	"log/slog"
	"net/http"

	"github.com/chanlloyd12/backend-repo/internal/dto"
	"github.com/chanlloyd12/backend-repo/internal/service"
)

type WorkflowHandler struct {
	base
	workflowService service.WorkflowService
}

func NewWorkflowHandler(workflowService service.WorkflowService, logger *slog.Logger) *WorkflowHandler {
	return &WorkflowHandler{
		base:            newBase(logger),
		workflowService: workflowService,
	}
}

func (h *WorkflowHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	wf, err := h.workflowService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toWorkflowResponse(wf))
}

func (h *WorkflowHandler) List(w http.ResponseWriter, r *http.Request) {
	workflows, err := h.workflowService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, mapSlice(workflows, toWorkflowResponse))
}

func (h *WorkflowHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	workflows, err := h.workflowService.ListByEmployee(r.Context(), r.PathValue("employeeId"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, mapSlice(workflows, toWorkflowResponse))
}

// Update меняет процесс и каскадно применяет новый статус
func (h *WorkflowHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkflowRequest
	if !h.decode(w, r, &req) {
		return
	}

	wf, err := h.workflowService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toWorkflowResponse(wf))
}

func (h *WorkflowHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.workflowService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
