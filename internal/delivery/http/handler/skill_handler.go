package handler

import (
	"portfolio-api/internal/domain/portfolio"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type skillCategoryCreateRequest struct {
	Category string                `json:"category"`
	Items    []portfolio.SkillItem `json:"items"`
}

type skillCategoryUpdateRequest struct {
	Category *string               `json:"category"`
	Items    []portfolio.SkillItem `json:"items"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(public, admin fiber.Router) {
	if public != nil {
		public.Get("/skills", h.List)
	}
	if admin != nil {
		admin.Post("/skills", h.Create)
		admin.Put("/skills/:id", h.Update)
		admin.Delete("/skills/:id", h.Delete)
	}
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req skillCategoryCreateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.Create(c.Context(), usecase.SkillCategoryInput{
		Category: req.Category,
		Items:    req.Items,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("skills", "created", created.ID.String())
	return response.Success(c, fiber.StatusOK, "Skill category created successfully", created)
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req skillCategoryUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.Update(c.Context(), id, usecase.SkillCategoryUpdate{
		Category: req.Category,
		Items:    req.Items,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("skills", "updated", updated.ID.String())
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("skills", "deleted", id.String())
	return response.Success(c, fiber.StatusOK, "Skill category deleted successfully", nil)
}
