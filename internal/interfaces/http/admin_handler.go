package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aplusmed/marketplace-api/internal/application/dto"
	"github.com/aplusmed/marketplace-api/internal/domain/repository"
)

// AdminHandler serves the admin users page (admin-only; gated in the router).
type AdminHandler struct {
	directory repository.AccountDirectory
}

// NewAdminHandler builds the handler.
func NewAdminHandler(directory repository.AccountDirectory) *AdminHandler {
	return &AdminHandler{directory: directory}
}

// ListUsers godoc
// @Summary      All directory accounts
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	accounts, err := h.directory.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]*dto.UserResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toUserResponse(a))
	}
	return c.JSON(out)
}
