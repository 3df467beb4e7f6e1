package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"siteapi/internal/model"
	"siteapi/internal/repository"
)

const defaultListLimit = 50

var ErrIDRequired = errors.New("id is required")

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// CreateContactInput carries the public contact form fields. Required-field
// enforcement is left to the store's NOT NULL constraints.
type CreateContactInput struct {
	FullName string
	Email    string
	Company  *string
	Subject  *string
	Message  string
}

// ContactService defines the use cases for contact messages.
type ContactService interface {
	// Create stores a submitted message and returns the new id.
	Create(ctx context.Context, in CreateContactInput) (int64, error)

	// List returns contacts newest-first, optionally filtered by status.
	// A non-positive limit falls back to the default of 50.
	List(ctx context.Context, status string, limit int) ([]model.Contact, error)

	// UpdateStatus overwrites a contact's status and returns how many rows
	// changed (0 when the id does not exist — not an error).
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)

	// Delete removes a contact and returns rows changed.
	Delete(ctx context.Context, id int64) (int64, error)
}

type contactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) Create(ctx context.Context, in CreateContactInput) (int64, error) {
	c := &model.Contact{
		FullName: in.FullName,
		Email:    in.Email,
		Company:  in.Company,
		Subject:  in.Subject,
		Message:  in.Message,
	}
	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return 0, fmt.Errorf("save contact: %w", err)
	}
	return id, nil
}

func (s *contactService) List(ctx context.Context, status string, limit int) ([]model.Contact, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.List(ctx, repository.ListQuery{Status: status, Limit: limit})
}

func (s *contactService) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	if id <= 0 {
		return 0, ErrIDRequired
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *contactService) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
