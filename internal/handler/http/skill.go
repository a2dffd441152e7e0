package http

import (
	"net/http"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/skill"
	"github.com/cmlabs-hris/training-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type SkillHandler interface {
	// GetEmployeeSkills returns an employee's skill levels against requirements
	GetEmployeeSkills(w http.ResponseWriter, r *http.Request)
}

type skillHandlerImpl struct {
	skillService skill.SkillService
}

func NewSkillHandler(skillService skill.SkillService) SkillHandler {
	return &skillHandlerImpl{skillService: skillService}
}

// GetEmployeeSkills handles GET /employees/{id}/skills
func (h *skillHandlerImpl) GetEmployeeSkills(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := validator.RequireUUID("id", id); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.skillService.GetEmployeeSkills(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
