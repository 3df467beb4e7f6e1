package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"siteapi/internal/model"
	"siteapi/internal/repository"
	"siteapi/internal/storage"
)

// MaxCVSize is the upload size limit for CV files.
const MaxCVSize = 5 << 20 // 5 MiB

var (
	// ErrCVNotPDF rejects uploads whose declared MIME type is not PDF. The
	// declared type is all that gets checked; a spoofed type with a different
	// payload is a documented limitation.
	ErrCVNotPDF = errors.New("only PDF files are accepted")
	// ErrCVTooLarge rejects uploads above MaxCVSize.
	ErrCVTooLarge = errors.New("file exceeds the 5MB limit")
)

// CVUpload describes the optional file attached to an application submission.
type CVUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// CreateApplicationInput carries the public careers form fields.
type CreateApplicationInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Position  *string
	Message   *string
}

// ApplicationService defines the use cases for job applications.
type ApplicationService interface {
	// Create validates and stores the optional CV, then inserts the
	// application row with the stored path. If the insert fails the stored
	// file is deleted again.
	Create(ctx context.Context, in CreateApplicationInput, cv *CVUpload) (int64, error)

	// List returns applications newest-first, optionally filtered by status.
	List(ctx context.Context, status string, limit int) ([]model.Application, error)

	// UpdateStatus overwrites an application's status and returns rows changed.
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)

	// Delete removes an application row and returns rows changed. Any stored
	// CV file is left in place.
	Delete(ctx context.Context, id int64) (int64, error)
}

type applicationService struct {
	repo  repository.ApplicationRepository
	store storage.Storage
	keyFn storage.KeyFunc
}

func NewApplicationService(repo repository.ApplicationRepository, store storage.Storage, keyFn storage.KeyFunc) ApplicationService {
	return &applicationService{repo: repo, store: store, keyFn: keyFn}
}

func (s *applicationService) Create(ctx context.Context, in CreateApplicationInput, cv *CVUpload) (int64, error) {
	a := &model.Application{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Position:  in.Position,
		Message:   in.Message,
	}

	var storedKey string
	if cv != nil {
		if cv.ContentType != "application/pdf" {
			return 0, ErrCVNotPDF
		}
		if cv.Size > MaxCVSize {
			return 0, ErrCVTooLarge
		}

		key := s.keyFn(cv.Filename)
		path, err := s.store.Put(ctx, key, cv.Reader, storage.PutOptions{
			Size:        cv.Size,
			ContentType: cv.ContentType,
		})
		if err != nil {
			return 0, fmt.Errorf("store cv: %w", err)
		}
		storedKey = key
		a.CVPath = &path
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		if storedKey != "" {
			if delErr := s.store.Delete(ctx, storedKey); delErr != nil {
				return 0, fmt.Errorf("save application failed: %v; rollback delete failed: %v", err, delErr)
			}
		}
		return 0, fmt.Errorf("save application: %w", err)
	}
	return id, nil
}

func (s *applicationService) List(ctx context.Context, status string, limit int) ([]model.Application, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.List(ctx, repository.ListQuery{Status: status, Limit: limit})
}

func (s *applicationService) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	if id <= 0 {
		return 0, ErrIDRequired
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *applicationService) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
