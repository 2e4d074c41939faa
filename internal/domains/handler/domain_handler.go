package handler

import (
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/domain"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/dto"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/domains/service"
	fserrors "github.com/CodeRohanDev/FastSubmit-sub004/internal/errors"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/identity"
	"github.com/gofiber/fiber/v2"
)

type DomainHandler struct {
	registry *service.RegistryService
}

func NewDomainHandler(registry *service.RegistryService) *DomainHandler {
	return &DomainHandler{registry: registry}
}

func (h *DomainHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterDomainInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	record, created, err := h.registry.Register(c.Context(), identity.UserID(c), input.Domain)
	if err != nil {
		return c.Status(fserrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(toOutput(record))
}

func (h *DomainHandler) Verify(c *fiber.Ctx) error {
	outcome, err := h.registry.AttemptVerify(c.Context(), c.Params("id"), identity.UserID(c))
	if err != nil {
		return c.Status(fserrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	out := dto.VerifyOutput{
		Verified:     outcome.Verified,
		Error:        outcome.Error,
		FoundRecords: outcome.FoundRecords,
	}
	if !outcome.Verified {
		return c.Status(fiber.StatusBadRequest).JSON(out)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *DomainHandler) Delete(c *fiber.Ctx) error {
	if err := h.registry.Delete(c.Context(), c.Params("id"), identity.UserID(c)); err != nil {
		return c.Status(fserrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": true})
}

func (h *DomainHandler) List(c *fiber.Ctx) error {
	records, err := h.registry.List(c.Context(), identity.UserID(c))
	if err != nil {
		return c.Status(fserrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	out := make([]dto.DomainOutput, 0, len(records))
	for i := range records {
		out = append(out, toOutput(&records[i]))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func toOutput(d *domain.VerifiedDomain) dto.DomainOutput {
	return dto.DomainOutput{
		ID:                d.ID,
		Domain:            d.Domain,
		Verified:          d.Verified,
		VerificationToken: d.VerificationToken,
		DNSRecord:         service.DNSRecordFor(d),
		VerifiedAt:        d.VerifiedAt,
		CreatedAt:         d.CreatedAt,
	}
}
