package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aplusmed/marketplace-api/internal/application/dto"
	"github.com/aplusmed/marketplace-api/internal/application/session"
	"github.com/aplusmed/marketplace-api/internal/domain"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
)

// AuthHandler exposes the session store to the login/register/logout forms.
type AuthHandler struct {
	sessions *session.Store
}

// NewAuthHandler builds the handler.
func NewAuthHandler(sessions *session.Store) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email is required"})
	}
	user, err := h.sessions.Login(c.UserContext(), in.Email, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPendingApproval):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PENDING_APPROVAL", Message: session.MsgPendingApproval})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: session.MsgInvalidCredentials})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.SessionResponse{User: toUserResponse(user)})
}

// Register godoc
// @Summary      Register a customer or vendor account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Registration form"
// @Success      201   {object}  dto.RegisterResult
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email and password are required"})
	}
	msg, err := h.sessions.Register(c.UserContext(), session.RegisterInput{
		Email:       in.Email,
		Password:    in.Password,
		Name:        in.Name,
		Company:     in.Company,
		Phone:       in.Phone,
		TaxID:       in.TaxID,
		AccountType: in.AccountType,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyRegistered):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_REGISTERED", Message: session.MsgEmailRegistered})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: h.sessions.LastError()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResult{Message: msg})
}

// Logout godoc
// @Summary      Clear the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout()
	return c.JSON(dto.SessionResponse{User: nil})
}

// Session godoc
// @Summary      Current session snapshot
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(dto.SessionResponse{
		User:    toUserResponse(h.sessions.Current()),
		Loading: h.sessions.Loading(),
		Error:   h.sessions.LastError(),
	})
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Company:        u.Company,
		Role:           u.Role,
		Approved:       u.Approved,
		VendorID:       u.VendorID,
		CommissionRate: u.CommissionRate,
	}
}
