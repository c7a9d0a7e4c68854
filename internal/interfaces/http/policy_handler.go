package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/policy-admin/internal/application/dto"
	"github.com/tu-usuario/policy-admin/internal/application/usecase"
	"github.com/tu-usuario/policy-admin/internal/domain"
)

// PolicyHandler maneja las peticiones HTTP de pólizas. Es un pass-through al
// caso de uso: valida el cuerpo, delega y mapea errores de dominio a códigos.
type PolicyHandler struct {
	uc *usecase.PolicyUseCase
}

// NewPolicyHandler construye el handler.
func NewPolicyHandler(uc *usecase.PolicyUseCase) *PolicyHandler {
	return &PolicyHandler{uc: uc}
}

// Create POST /policies/
func (h *PolicyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePolicyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Detail: "invalid request body"})
	}
	policy, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToPolicyResponse(policy))
}

// Activate POST /policies/:policy_number/activate
func (h *PolicyHandler) Activate(c *fiber.Ctx) error {
	policy, err := h.uc.Activate(c.Context(), c.Params("policy_number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(usecase.ToPolicyResponse(policy))
}

// Cancel POST /policies/:policy_number/cancel — cuerpo opcional {reason}.
func (h *PolicyHandler) Cancel(c *fiber.Ctx) error {
	var in dto.CancelPolicyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Detail: "invalid request body"})
		}
	}
	policy, err := h.uc.Cancel(c.Context(), c.Params("policy_number"), in.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(usecase.ToPolicyResponse(policy))
}

// GetByNumber GET /policies/:policy_number
func (h *PolicyHandler) GetByNumber(c *fiber.Ctx) error {
	policy, err := h.uc.Get(c.Params("policy_number"))
	if err != nil {
		return writeError(c, err)
	}
	if policy == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Detail: "Policy not found"})
	}
	return c.JSON(usecase.ToPolicyResponse(policy))
}

// List GET /policies/
func (h *PolicyHandler) List(c *fiber.Ctx) error {
	policies, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(usecase.ToPolicyResponses(policies))
}

// writeError mapea errores de dominio a respuestas HTTP. La ausencia en
// activate/cancel es 400 (la transición es inválida), no 404: solo el GET
// plano mapea ausencia a 404, y eso lo decide el handler de lectura.
func writeError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Detail: verr.Message})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Detail: "Policy not found"})
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Detail: "Policy number already exists"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Detail: err.Error()})
}
