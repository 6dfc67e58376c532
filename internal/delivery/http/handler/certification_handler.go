package handler

import (
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type CertificationHandler struct {
	uc usecase.CertificationUsecase
}

type certificationCreateRequest struct {
	Name          string  `json:"name"`
	Issuer        string  `json:"issuer"`
	Status        string  `json:"status"`
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	CredentialURL *string `json:"credential_url"`
}

type certificationUpdateRequest struct {
	Name          *string `json:"name"`
	Issuer        *string `json:"issuer"`
	Status        *string `json:"status"`
	Date          *string `json:"date"`
	Description   *string `json:"description"`
	CredentialURL *string `json:"credential_url"`
}

func NewCertificationHandler(uc usecase.CertificationUsecase) *CertificationHandler {
	return &CertificationHandler{uc: uc}
}

func (h *CertificationHandler) RegisterRoutes(public, admin fiber.Router) {
	if public != nil {
		public.Get("/certifications", h.List)
	}
	if admin != nil {
		admin.Post("/certifications", h.Create)
		admin.Put("/certifications/:id", h.Update)
		admin.Delete("/certifications/:id", h.Delete)
	}
}

func (h *CertificationHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *CertificationHandler) Create(c fiber.Ctx) error {
	var req certificationCreateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.Create(c.Context(), usecase.CertificationInput{
		Name:          req.Name,
		Issuer:        req.Issuer,
		Status:        req.Status,
		Date:          req.Date,
		Description:   req.Description,
		CredentialURL: req.CredentialURL,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("certifications", "created", created.ID.String())
	return response.Success(c, fiber.StatusOK, "Certification created successfully", created)
}

func (h *CertificationHandler) Update(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req certificationUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.Update(c.Context(), id, usecase.CertificationUpdate{
		Name:          req.Name,
		Issuer:        req.Issuer,
		Status:        req.Status,
		Date:          req.Date,
		Description:   req.Description,
		CredentialURL: req.CredentialURL,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("certifications", "updated", updated.ID.String())
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *CertificationHandler) Delete(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("certifications", "deleted", id.String())
	return response.Success(c, fiber.StatusOK, "Certification deleted successfully", nil)
}
