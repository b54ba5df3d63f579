package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aplusmed/marketplace-api/internal/application/dto"
	"github.com/aplusmed/marketplace-api/internal/application/vendors"
	"github.com/aplusmed/marketplace-api/internal/domain"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
)

// VendorHandler serves the vendor dashboard (vendor-only) and the admin
// review queue (admin-only); the router applies the role gates.
type VendorHandler struct {
	uc *vendors.UseCase
}

// NewVendorHandler builds the handler.
func NewVendorHandler(uc *vendors.UseCase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

// Earnings godoc
// @Summary      Commission split for the current vendor
// @Tags         vendor
// @Produce      json
// @Success      200  {object}  dto.EarningsResponse
// @Router       /api/vendor/earnings [get]
func (h *VendorHandler) Earnings(c *fiber.Ctx) error {
	user := CurrentUser(c)
	out, err := h.uc.EarningsFor(user.Company, user.CommissionRate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.EarningsResponse{
		Supplier:       out.Supplier,
		CommissionRate: out.CommissionRate,
		TotalSales:     out.TotalSales,
		PlatformFee:    out.PlatformFee,
		NetEarnings:    out.NetEarnings,
		OrderCount:     out.OrderCount,
	})
}

// ListApplications godoc
// @Summary      Vendor applications by status tab
// @Tags         admin
// @Produce      json
// @Param        status  query  string  false  "pending | approved | rejected | suspended"  default(pending)
// @Success      200  {object}  dto.VendorApplicationListResponse
// @Router       /api/admin/vendors [get]
func (h *VendorHandler) ListApplications(c *fiber.Ctx) error {
	status := c.Query("status", entity.ApplicationPending)
	apps, err := h.uc.ListByStatus(status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.VendorApplicationListResponse{Items: make([]dto.VendorApplicationResponse, 0, len(apps)), Total: len(apps)}
	for _, a := range apps {
		out.Items = append(out.Items, toApplicationResponse(a))
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Approve a pending vendor application
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Application ID"
// @Success      200  {object}  dto.VendorApplicationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/vendors/{id}/approve [post]
func (h *VendorHandler) Approve(c *fiber.Ctx) error {
	app, err := h.uc.Approve(c.Params("id"))
	if err != nil {
		return mapApplicationError(c, err)
	}
	return c.JSON(toApplicationResponse(app))
}

// Reject godoc
// @Summary      Reject a pending vendor application
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Application ID"
// @Param        body  body  dto.RejectApplicationRequest  false  "Rejection reason"
// @Success      200   {object}  dto.VendorApplicationResponse
// @Router       /api/admin/vendors/{id}/reject [post]
func (h *VendorHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectApplicationRequest
	_ = c.BodyParser(&in) // reason is optional
	app, err := h.uc.Reject(c.Params("id"), in.Reason)
	if err != nil {
		return mapApplicationError(c, err)
	}
	return c.JSON(toApplicationResponse(app))
}

// Suspend godoc
// @Summary      Suspend an approved vendor
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Application ID"
// @Success      200  {object}  dto.VendorApplicationResponse
// @Router       /api/admin/vendors/{id}/suspend [post]
func (h *VendorHandler) Suspend(c *fiber.Ctx) error {
	app, err := h.uc.Suspend(c.Params("id"))
	if err != nil {
		return mapApplicationError(c, err)
	}
	return c.JSON(toApplicationResponse(app))
}

func mapApplicationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "application not found"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "application is not in a reviewable state"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toApplicationResponse(a *entity.VendorApplication) dto.VendorApplicationResponse {
	return dto.VendorApplicationResponse{
		ID:          a.ID,
		Company:     a.Company,
		ContactName: a.ContactName,
		Email:       a.Email,
		Phone:       a.Phone,
		TaxID:       a.TaxID,
		Status:      a.Status,
		Reason:      a.Reason,
		SubmittedAt: a.SubmittedAt,
	}
}
