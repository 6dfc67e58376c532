package handler

import (
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

type projectCreateRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image"`
	Category     string   `json:"category"`
	Date         string   `json:"date"`
	Highlights   []string `json:"highlights"`
	GithubURL    *string  `json:"github_url"`
	DemoURL      *string  `json:"demo_url"`
}

type projectUpdateRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Technologies []string `json:"technologies"`
	Image        *string  `json:"image"`
	Category     *string  `json:"category"`
	Date         *string  `json:"date"`
	Highlights   []string `json:"highlights"`
	GithubURL    *string  `json:"github_url"`
	DemoURL      *string  `json:"demo_url"`
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(public, admin fiber.Router) {
	if public != nil {
		public.Get("/projects", h.List)
		public.Get("/projects/:id", h.Get)
	}
	if admin != nil {
		admin.Post("/projects", h.Create)
		admin.Put("/projects/:id", h.Update)
		admin.Delete("/projects/:id", h.Delete)
	}
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
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

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req projectCreateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.Create(c.Context(), usecase.ProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		Image:        req.Image,
		Category:     req.Category,
		Date:         req.Date,
		Highlights:   req.Highlights,
		GithubURL:    req.GithubURL,
		DemoURL:      req.DemoURL,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("projects", "created", created.ID.String())
	return response.Success(c, fiber.StatusOK, "Project created successfully", created)
}

func (h *ProjectHandler) Update(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req projectUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.Update(c.Context(), id, usecase.ProjectUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		Image:        req.Image,
		Category:     req.Category,
		Date:         req.Date,
		Highlights:   req.Highlights,
		GithubURL:    req.GithubURL,
		DemoURL:      req.DemoURL,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("projects", "updated", updated.ID.String())
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *ProjectHandler) Delete(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("projects", "deleted", id.String())
	return response.Success(c, fiber.StatusOK, "Project deleted successfully", nil)
}
