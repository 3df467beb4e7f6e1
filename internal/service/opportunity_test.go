package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"siteapi/internal/model"
	repoMocks "siteapi/internal/repository/mocks"
)

func TestOpportunityService_Create(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockOpportunityRepository)
	mRepo.On("Create", ctx, mock.MatchedBy(func(o *model.JobOpportunity) bool {
		return o.Title == "Backend Engineer" && !o.IsPublished
	})).Return(int64(5), nil)

	svc := NewOpportunityService(mRepo)

	id, err := svc.Create(ctx, OpportunityInput{Title: "Backend Engineer"})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), id)
	mRepo.AssertExpectations(t)
}

func TestOpportunityService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("public listing only sees published rows", func(t *testing.T) {
		mRepo := new(repoMocks.MockOpportunityRepository)
		mRepo.On("List", ctx, true).Return([]model.JobOpportunity{{ID: 1, IsPublished: true}}, nil)

		svc := NewOpportunityService(mRepo)

		items, err := svc.List(ctx, false)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		mRepo.AssertExpectations(t)
	})

	t.Run("admin listing includes drafts", func(t *testing.T) {
		mRepo := new(repoMocks.MockOpportunityRepository)
		mRepo.On("List", ctx, false).Return([]model.JobOpportunity{{ID: 1}, {ID: 2}}, nil)

		svc := NewOpportunityService(mRepo)

		items, err := svc.List(ctx, true)

		assert.NoError(t, err)
		assert.Len(t, items, 2)
		mRepo.AssertExpectations(t)
	})
}

func TestOpportunityService_Update(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockOpportunityRepository)
	mRepo.On("Update", ctx, int64(1), mock.MatchedBy(func(o *model.JobOpportunity) bool {
		return o.Title == "Updated" && o.IsPublished
	})).Return(int64(1), nil)

	svc := NewOpportunityService(mRepo)

	changes, err := svc.Update(ctx, 1, OpportunityInput{Title: "Updated", IsPublished: true})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	_, err = svc.Update(ctx, 0, OpportunityInput{})
	assert.ErrorIs(t, err, ErrIDRequired)
}

func TestOpportunityService_TogglePublish(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the new state", func(t *testing.T) {
		mRepo := new(repoMocks.MockOpportunityRepository)
		mRepo.On("TogglePublish", ctx, int64(1)).Return(true, nil)

		svc := NewOpportunityService(mRepo)

		published, err := svc.TogglePublish(ctx, 1)

		assert.NoError(t, err)
		assert.True(t, published)
	})

	t.Run("missing id maps to ErrNotFound", func(t *testing.T) {
		mRepo := new(repoMocks.MockOpportunityRepository)
		mRepo.On("TogglePublish", ctx, int64(999)).Return(false, sql.ErrNoRows)

		svc := NewOpportunityService(mRepo)

		_, err := svc.TogglePublish(ctx, 999)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid id is rejected before the repository", func(t *testing.T) {
		mRepo := new(repoMocks.MockOpportunityRepository)

		svc := NewOpportunityService(mRepo)

		_, err := svc.TogglePublish(ctx, 0)

		assert.ErrorIs(t, err, ErrIDRequired)
		mRepo.AssertNotCalled(t, "TogglePublish")
	})
}

func TestOpportunityService_Delete(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockOpportunityRepository)
	mRepo.On("Delete", ctx, int64(7)).Return(int64(1), nil)

	svc := NewOpportunityService(mRepo)

	changes, err := svc.Delete(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), changes)
}
