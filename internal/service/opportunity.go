package service

import (
	"context"
	"errors"
	"fmt"

	"siteapi/internal/model"
	"siteapi/internal/repository"
)

// ErrNotFound is returned by operations that, unlike update/delete, treat a
// missing id as a failure (toggle-publish only).
var ErrNotFound = errors.New("opportunity not found")

// OpportunityInput carries the admin-editable fields of a job posting. Both
// create and the full-overwrite update use it.
type OpportunityInput struct {
	Title        string
	Location     string
	ContractType string
	Description  string
	Requirements *string
	SalaryRange  *string
	IsPublished  bool
}

// OpportunityService defines the use cases for job opportunities.
type OpportunityService interface {
	// Create inserts a posting and returns the new id. Admin only.
	Create(ctx context.Context, in OpportunityInput) (int64, error)

	// List returns postings newest-first. When includeUnpublished is false
	// only published rows are returned; unauthenticated callers never get
	// anything else.
	List(ctx context.Context, includeUnpublished bool) ([]model.JobOpportunity, error)

	// Update overwrites every editable field and returns rows changed.
	Update(ctx context.Context, id int64, in OpportunityInput) (int64, error)

	// Delete removes a posting and returns rows changed.
	Delete(ctx context.Context, id int64) (int64, error)

	// TogglePublish flips the published flag and returns its new value.
	// Returns ErrNotFound when the id does not exist.
	TogglePublish(ctx context.Context, id int64) (bool, error)
}

type opportunityService struct {
	repo repository.OpportunityRepository
}

func NewOpportunityService(repo repository.OpportunityRepository) OpportunityService {
	return &opportunityService{repo: repo}
}

func (s *opportunityService) Create(ctx context.Context, in OpportunityInput) (int64, error) {
	id, err := s.repo.Create(ctx, toModel(in))
	if err != nil {
		return 0, fmt.Errorf("save opportunity: %w", err)
	}
	return id, nil
}

func (s *opportunityService) List(ctx context.Context, includeUnpublished bool) ([]model.JobOpportunity, error) {
	return s.repo.List(ctx, !includeUnpublished)
}

func (s *opportunityService) Update(ctx context.Context, id int64, in OpportunityInput) (int64, error) {
	if id <= 0 {
		return 0, ErrIDRequired
	}
	return s.repo.Update(ctx, id, toModel(in))
}

func (s *opportunityService) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}

func (s *opportunityService) TogglePublish(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrIDRequired
	}
	published, err := s.repo.TogglePublish(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return false, ErrNotFound
		}
		return false, err
	}
	return published, nil
}

func toModel(in OpportunityInput) *model.JobOpportunity {
	return &model.JobOpportunity{
		Title:        in.Title,
		Location:     in.Location,
		ContractType: in.ContractType,
		Description:  in.Description,
		Requirements: in.Requirements,
		SalaryRange:  in.SalaryRange,
		IsPublished:  in.IsPublished,
	}
}
