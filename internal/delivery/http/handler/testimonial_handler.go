package handler

import (
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type TestimonialHandler struct {
	uc usecase.TestimonialUsecase
}

type testimonialCreateRequest struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Content string `json:"content"`
	Avatar  string `json:"avatar"`
}

type testimonialUpdateRequest struct {
	Name    *string `json:"name"`
	Role    *string `json:"role"`
	Company *string `json:"company"`
	Content *string `json:"content"`
	Avatar  *string `json:"avatar"`
}

func NewTestimonialHandler(uc usecase.TestimonialUsecase) *TestimonialHandler {
	return &TestimonialHandler{uc: uc}
}

func (h *TestimonialHandler) RegisterRoutes(public, admin fiber.Router) {
	if public != nil {
		public.Get("/testimonials", h.List)
	}
	if admin != nil {
		admin.Post("/testimonials", h.Create)
		admin.Put("/testimonials/:id", h.Update)
		admin.Delete("/testimonials/:id", h.Delete)
	}
}

func (h *TestimonialHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *TestimonialHandler) Create(c fiber.Ctx) error {
	var req testimonialCreateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.Create(c.Context(), usecase.TestimonialInput{
		Name:    req.Name,
		Role:    req.Role,
		Company: req.Company,
		Content: req.Content,
		Avatar:  req.Avatar,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("testimonials", "created", created.ID.String())
	return response.Success(c, fiber.StatusOK, "Testimonial created successfully", created)
}

func (h *TestimonialHandler) Update(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req testimonialUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.Update(c.Context(), id, usecase.TestimonialUpdate{
		Name:    req.Name,
		Role:    req.Role,
		Company: req.Company,
		Content: req.Content,
		Avatar:  req.Avatar,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("testimonials", "updated", updated.ID.String())
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *TestimonialHandler) Delete(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("testimonials", "deleted", id.String())
	return response.Success(c, fiber.StatusOK, "Testimonial deleted successfully", nil)
}
