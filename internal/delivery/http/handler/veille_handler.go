package handler

import (
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type VeilleHandler struct {
	uc usecase.VeilleUsecase
}

type veilleCreateRequest struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type veilleUpdateRequest struct {
	Type    *string `json:"type"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func NewVeilleHandler(uc usecase.VeilleUsecase) *VeilleHandler {
	return &VeilleHandler{uc: uc}
}

func (h *VeilleHandler) RegisterRoutes(public, admin fiber.Router) {
	if public != nil {
		public.Get("/veille", h.List)
	}
	if admin != nil {
		admin.Post("/veille", h.Create)
		admin.Put("/veille/:id", h.Update)
		admin.Delete("/veille/:id", h.Delete)
	}
}

func (h *VeilleHandler) List(c fiber.Ctx) error {
	if t := c.Query("type"); t != "" {
		items, err := h.uc.ListByType(c.Context(), t)
		if err != nil {
			return usecaseError(c, err)
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, items)
	}

	items, err := h.uc.List(c.Context())
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *VeilleHandler) Create(c fiber.Ctx) error {
	var req veilleCreateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.Create(c.Context(), usecase.VeilleInput{
		Type:    req.Type,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("veille", "created", created.ID.String())
	return response.Success(c, fiber.StatusOK, "Veille content created successfully", created)
}

func (h *VeilleHandler) Update(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req veilleUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.Update(c.Context(), id, usecase.VeilleUpdate{
		Type:    req.Type,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("veille", "updated", updated.ID.String())
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *VeilleHandler) Delete(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("veille", "deleted", id.String())
	return response.Success(c, fiber.StatusOK, "Veille content deleted successfully", nil)
}
