package analyze

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/outfit-finder-backend/internal/apperr"
	"github.com/wichananm65/outfit-finder-backend/internal/clothing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Post("/api/analyze", h.analyzeImage)
}

type analyzeRequest struct {
	Image string `json:"image"`
}

type analyzeResponse struct {
	Features clothing.Features `json:"features"`
}

func (h *Handler) analyzeImage(c *fiber.Ctx) error {
	// credentials first, then the body
	if err := h.service.Configured(); err != nil {
		return apperr.Respond(c, err, "Error analyzing image")
	}

	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest(c, "invalid request body: "+err.Error())
	}
	if req.Image == "" {
		return apperr.BadRequest(c, "Image data is required")
	}

	features, err := h.service.Analyze(c.UserContext(), req.Image)
	if err != nil {
		return apperr.Respond(c, err, "Error analyzing image")
	}
	return c.JSON(analyzeResponse{Features: features})
}
