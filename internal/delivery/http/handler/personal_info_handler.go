package handler

import (
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type PersonalInfoHandler struct {
	uc usecase.PersonalInfoUsecase
}

type personalInfoUpdateRequest struct {
	Name        *string           `json:"name"`
	Title       *string           `json:"title"`
	Subtitle    *string           `json:"subtitle"`
	Description *string           `json:"description"`
	Email       *string           `json:"email"`
	Phone       *string           `json:"phone"`
	Location    *string           `json:"location"`
	Avatar      *string           `json:"avatar"`
	Resume      *string           `json:"resume"`
	Social      map[string]string `json:"social"`
}

func NewPersonalInfoHandler(uc usecase.PersonalInfoUsecase) *PersonalInfoHandler {
	return &PersonalInfoHandler{uc: uc}
}

func (h *PersonalInfoHandler) RegisterRoutes(public, admin fiber.Router) {
	if public != nil {
		public.Get("/personal-info", h.Get)
	}
	if admin != nil {
		admin.Put("/personal-info", h.Update)
	}
}

func (h *PersonalInfoHandler) Get(c fiber.Ctx) error {
	info, err := h.uc.Get(c.Context())
	if err != nil {
		return usecaseError(c, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, info)
}

func (h *PersonalInfoHandler) Update(c fiber.Ctx) error {
	var req personalInfoUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.Update(c.Context(), usecase.PersonalInfoUpdate{
		Name:        req.Name,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		Avatar:      req.Avatar,
		Resume:      req.Resume,
		Social:      req.Social,
	})
	if err != nil {
		return usecaseError(c, err)
	}

	ws.NotifyContentUpdated("personal-info", "updated", updated.ID.String())
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}
