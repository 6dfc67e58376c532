package handler

import (
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Procedure mutations stay on the public group. The procedures page of
// the site lets visitors add and remove entries without logging in.
type ProcedureHandler struct {
	uc usecase.ProcedureUsecase
}

type procedureCreateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type procedureUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Content     *string  `json:"content"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
}

func NewProcedureHandler(uc usecase.ProcedureUsecase) *ProcedureHandler {
	return &ProcedureHandler{uc: uc}
}

func (h *ProcedureHandler) RegisterRoutes(public, _ fiber.Router) {
	if public == nil {
		return
	}
	public.Get("/procedures", h.List)
	public.Get("/procedures/:id", h.Get)
	public.Post("/procedures", h.Create)
	public.Put("/procedures/:id", h.Update)
	public.Delete("/procedures/:id", h.Delete)
}

func (h *ProcedureHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ProcedureHandler) Get(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	p, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}

func (h *ProcedureHandler) Create(c fiber.Ctx) error {
	var req procedureCreateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.Create(c.Context(), usecase.ProcedureInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		Tags:        req.Tags,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("procedures", "created", created.ID.String())
	return response.Success(c, fiber.StatusOK, "Procedure created successfully", created)
}

func (h *ProcedureHandler) Update(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req procedureUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.Update(c.Context(), id, usecase.ProcedureUpdate{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		Tags:        req.Tags,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("procedures", "updated", updated.ID.String())
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *ProcedureHandler) Delete(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("procedures", "deleted", id.String())
	return response.Success(c, fiber.StatusOK, "Procedure deleted successfully", nil)
}
