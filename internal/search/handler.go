package search

import (
	"errors"
	"fmt"

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
	r.Post("/api/search", h.searchProducts)
}

type searchRequest struct {
	Features *clothing.Features `json:"features"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

func (h *Handler) searchProducts(c *fiber.Ctx) error {
	if err := h.service.Configured(); err != nil {
		return apperr.Respond(c, err, "Error searching")
	}

	var req searchRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest(c, "invalid request body: "+err.Error())
	}
	if req.Features == nil {
		return apperr.BadRequest(c, "Features are required")
	}

	results, err := h.service.Search(c.UserContext(), *req.Features)
	if err != nil {
		if errors.Is(err, apperr.ErrProvider) {
			err = fmt.Errorf("Error searching: %w", err)
		}
		return apperr.Respond(c, err, "Error searching")
	}
	return c.JSON(searchResponse{Results: results})
}
