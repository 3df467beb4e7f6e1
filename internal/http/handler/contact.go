package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"siteapi/internal/service"
)

type createContactRequest struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Company  *string `json:"company"`
	Subject  *string `json:"subject"`
	Message  string  `json:"message"`
}

// CreateContact accepts a public contact form submission.
func CreateContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createContactRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		id, err := svc.Create(c.UserContext(), service.CreateContactInput{
			FullName: req.FullName,
			Email:    req.Email,
			Company:  req.Company,
			Subject:  req.Subject,
			Message:  req.Message,
		})
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "could not save message")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "message received",
			"id":      id,
		})
	}
}

// ListContacts returns contacts for the admin dashboard, newest-first, with
// an optional status filter and a row cap (default 50).
func ListContacts(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "50"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		contacts, err := svc.List(c.UserContext(), c.Query("status"), limit)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"contacts": contacts})
	}
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateContactStatus overwrites a contact's status. A missing id is reported
// through changes=0, not an error.
func UpdateContactStatus(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req updateStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		changes, err := svc.UpdateStatus(c.UserContext(), id, req.Status)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "could not update status")
		}
		return c.JSON(fiber.Map{"success": true, "changes": changes})
	}
}

// DeleteContact removes a contact; deleting an absent id yields changes=0.
func DeleteContact(svc service.ContactService) fiber.Handler {
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

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
