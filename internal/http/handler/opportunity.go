package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"siteapi/internal/http/middleware"
	"siteapi/internal/service"
)

type opportunityRequest struct {
	Title        string  `json:"title"`
	Location     string  `json:"location"`
	ContractType string  `json:"contract_type"`
	Description  string  `json:"description"`
	Requirements *string `json:"requirements"`
	SalaryRange  *string `json:"salary_range"`
	IsPublished  bool    `json:"is_published"`
}

func (r opportunityRequest) toInput() service.OpportunityInput {
	return service.OpportunityInput{
		Title:        r.Title,
		Location:     r.Location,
		ContractType: r.ContractType,
		Description:  r.Description,
		Requirements: r.Requirements,
		SalaryRange:  r.SalaryRange,
		IsPublished:  r.IsPublished,
	}
}

// ListOpportunities serves both the public careers page and the admin
// dashboard. Unauthenticated callers only ever see published rows, whatever
// query parameters they send; authenticated admins see everything unless they
// ask for ?published=true themselves.
func ListOpportunities(svc service.OpportunityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin := middleware.ClaimsFromCtx(c) != nil
		includeUnpublished := isAdmin && c.Query("published") != "true"

		opportunities, err := svc.List(c.UserContext(), includeUnpublished)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"opportunities": opportunities})
	}
}

// CreateOpportunity inserts a new posting. Admin only.
func CreateOpportunity(svc service.OpportunityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req opportunityRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		id, err := svc.Create(c.UserContext(), req.toInput())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "could not create opportunity")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "opportunity created",
			"id":      id,
		})
	}
}

// UpdateOpportunity overwrites every editable field of a posting.
func UpdateOpportunity(svc service.OpportunityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req opportunityRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		changes, err := svc.Update(c.UserContext(), id, req.toInput())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "could not update opportunity")
		}
		return c.JSON(fiber.Map{"success": true, "changes": changes})
	}
}

// DeleteOpportunity removes a posting.
func DeleteOpportunity(svc service.OpportunityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		changes, err := svc.Delete(c.UserContext(), id)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "could not delete")
		}
		return c.JSON(fiber.Map{"success": true, "changes": changes})
	}
}

// TogglePublish flips the published flag and returns the new value. Unlike
// update/delete this 404s on a missing id.
func TogglePublish(svc service.OpportunityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		published, err := svc.TogglePublish(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "opportunity not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "could not toggle publish state")
		}
		return c.JSON(fiber.Map{"success": true, "is_published": published})
	}
}
