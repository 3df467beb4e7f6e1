package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"siteapi/internal/service"
)

// CreateApplication accepts a public careers form submission as
// multipart/form-data with an optional single `cv` file field (PDF, ≤5MB).
func CreateApplication(svc service.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.CreateApplicationInput{
			FirstName: c.FormValue("first_name"),
			LastName:  c.FormValue("last_name"),
			Email:     c.FormValue("email"),
			Phone:     optionalFormValue(c, "phone"),
			Position:  optionalFormValue(c, "position"),
			Message:   optionalFormValue(c, "message"),
		}

		var cv *service.CVUpload
		if fh, err := c.FormFile("cv"); err == nil && fh != nil {
			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "UPLOAD_REJECTED", "cannot open uploaded file")
			}
			defer f.Close()

			cv = &service.CVUpload{
				Reader:      f,
				Filename:    fh.Filename,
				ContentType: fh.Header.Get(fiber.HeaderContentType),
				Size:        fh.Size,
			}
		}

		id, err := svc.Create(c.UserContext(), in, cv)
		if err != nil {
			if errors.Is(err, service.ErrCVNotPDF) || errors.Is(err, service.ErrCVTooLarge) {
				return writeError(c, fiber.StatusBadRequest, "UPLOAD_REJECTED", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "could not save application")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "application received",
			"id":      id,
		})
	}
}

// ListApplications returns applications for the admin dashboard.
func ListApplications(svc service.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "50"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		applications, err := svc.List(c.UserContext(), c.Query("status"), limit)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"applications": applications})
	}
}

// UpdateApplicationStatus overwrites an application's status.
func UpdateApplicationStatus(svc service.ApplicationService) fiber.Handler {
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

// DeleteApplication removes an application row. The stored CV file is not
// cleaned up.
func DeleteApplication(svc service.ApplicationService) fiber.Handler {
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

// optionalFormValue maps an absent or empty form field to nil so it lands as
// NULL rather than an empty string.
func optionalFormValue(c *fiber.Ctx, key string) *string {
	v := c.FormValue(key)
	if v == "" {
		return nil
	}
	return &v
}
