package handler

import (
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ContactHandler struct {
	uc usecase.ContactUsecase
}

type contactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) RegisterRoutes(public, admin fiber.Router) {
	if public != nil {
		public.Post("/contact-messages", h.Submit)
	}
	if admin != nil {
		admin.Get("/contact-messages", h.List)
		admin.Put("/contact-messages/:id/read", h.MarkRead)
		admin.Delete("/contact-messages/:id", h.Delete)
	}
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req contactMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.Submit(c.Context(), usecase.ContactMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Message sent successfully", created)
}

func (h *ContactHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ContactHandler) MarkRead(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.MarkRead(c.Context(), id); err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Message marked as read", nil)
}

func (h *ContactHandler) Delete(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Message deleted successfully", nil)
}
