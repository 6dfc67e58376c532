package handler

import (
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type ExperienceHandler struct {
	uc usecase.ExperienceUsecase
}

type experienceCreateRequest struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Period           string   `json:"period"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
}

type experienceUpdateRequest struct {
	Title            *string  `json:"title"`
	Company          *string  `json:"company"`
	Period           *string  `json:"period"`
	Description      *string  `json:"description"`
	Responsibilities []string `json:"responsibilities"`
}

func NewExperienceHandler(uc usecase.ExperienceUsecase) *ExperienceHandler {
	return &ExperienceHandler{uc: uc}
}

func (h *ExperienceHandler) RegisterRoutes(public, admin fiber.Router) {
	if public != nil {
		public.Get("/experience", h.List)
	}
	if admin != nil {
		admin.Post("/experience", h.Create)
		admin.Put("/experience/:id", h.Update)
		admin.Delete("/experience/:id", h.Delete)
	}
}

func (h *ExperienceHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ExperienceHandler) Create(c fiber.Ctx) error {
	var req experienceCreateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.Create(c.Context(), usecase.ExperienceInput{
		Title:            req.Title,
		Company:          req.Company,
		Period:           req.Period,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("experience", "created", created.ID.String())
	return response.Success(c, fiber.StatusOK, "Experience created successfully", created)
}

func (h *ExperienceHandler) Update(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req experienceUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.Update(c.Context(), id, usecase.ExperienceUpdate{
		Title:            req.Title,
		Company:          req.Company,
		Period:           req.Period,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("experience", "updated", updated.ID.String())
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *ExperienceHandler) Delete(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("experience", "deleted", id.String())
	return response.Success(c, fiber.StatusOK, "Experience deleted successfully", nil)
}
