package http

import (
	"net/http"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/training-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type DocumentHandler interface {
	// GetEmployeeDocuments returns records and stored files of an employee
	GetEmployeeDocuments(w http.ResponseWriter, r *http.Request)
	// GetTrainingDocuments returns the mobile document list of a training
	GetTrainingDocuments(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{documentService: documentService}
}

// GetEmployeeDocuments handles GET /employees/{id}/documents
func (h *documentHandlerImpl) GetEmployeeDocuments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := validator.RequireUUID("id", id); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.documentService.GetEmployeeDocuments(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTrainingDocuments handles GET /trainings/{id}/documents
func (h *documentHandlerImpl) GetTrainingDocuments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := validator.RequireUUID("id", id); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.documentService.GetTrainingDocuments(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
