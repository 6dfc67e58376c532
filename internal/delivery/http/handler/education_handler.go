package handler

import (
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type EducationHandler struct {
	uc usecase.EducationUsecase
}

type educationCreateRequest struct {
	Degree      string   `json:"degree"`
	School      string   `json:"school"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type educationUpdateRequest struct {
	Degree      *string  `json:"degree"`
	School      *string  `json:"school"`
	Period      *string  `json:"period"`
	Description *string  `json:"description"`
	Skills      []string `json:"skills"`
}

func NewEducationHandler(uc usecase.EducationUsecase) *EducationHandler {
	return &EducationHandler{uc: uc}
}

func (h *EducationHandler) RegisterRoutes(public, admin fiber.Router) {
	if public != nil {
		public.Get("/education", h.List)
	}
	if admin != nil {
		admin.Post("/education", h.Create)
		admin.Put("/education/:id", h.Update)
		admin.Delete("/education/:id", h.Delete)
	}
}

func (h *EducationHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *EducationHandler) Create(c fiber.Ctx) error {
	var req educationCreateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.Create(c.Context(), usecase.EducationInput{
		Degree:      req.Degree,
		School:      req.School,
		Period:      req.Period,
		Description: req.Description,
		Skills:      req.Skills,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("education", "created", created.ID.String())
	return response.Success(c, fiber.StatusOK, "Education created successfully", created)
}

func (h *EducationHandler) Update(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req educationUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.Update(c.Context(), id, usecase.EducationUpdate{
		Degree:      req.Degree,
		School:      req.School,
		Period:      req.Period,
		Description: req.Description,
		Skills:      req.Skills,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("education", "updated", updated.ID.String())
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *EducationHandler) Delete(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("education", "deleted", id.String())
	return response.Success(c, fiber.StatusOK, "Education deleted successfully", nil)
}
