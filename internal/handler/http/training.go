package http

import (
	"net/http"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
	"github.com/cmlabs-hris/training-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type TrainingHandler interface {
	// GetDetail returns a training with its derived lifecycle fields
	GetDetail(w http.ResponseWriter, r *http.Request)
	// GetEditOptions returns the edit form dropdowns for an existing training
	GetEditOptions(w http.ResponseWriter, r *http.Request)
	// GetCreateOptions returns the form dropdowns for a new training
	GetCreateOptions(w http.ResponseWriter, r *http.Request)
}

type trainingHandlerImpl struct {
	trainingService training.TrainingService
}

func NewTrainingHandler(trainingService training.TrainingService) TrainingHandler {
	return &trainingHandlerImpl{trainingService: trainingService}
}

// GetDetail handles GET /trainings/{id}
func (h *trainingHandlerImpl) GetDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := validator.RequireUUID("id", id); err != nil {
		response.HandleError(w, err)
		return
	}
	date := r.URL.Query().Get("date") // format: YYYY-MM-DD, default: today

	result, err := h.trainingService.GetDetail(r.Context(), id, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEditOptions handles GET /trainings/{id}/edit-options
func (h *trainingHandlerImpl) GetEditOptions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := validator.RequireUUID("id", id); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.trainingService.GetEditOptions(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCreateOptions handles GET /trainings/edit-options
func (h *trainingHandlerImpl) GetCreateOptions(w http.ResponseWriter, r *http.Request) {
	result, err := h.trainingService.GetEditOptions(r.Context(), "")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
