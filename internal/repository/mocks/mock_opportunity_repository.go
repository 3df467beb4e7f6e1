package mocks

import (
	"context"

	"siteapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockOpportunityRepository struct {
	mock.Mock
}

func (m *MockOpportunityRepository) Create(ctx context.Context, o *model.JobOpportunity) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOpportunityRepository) List(ctx context.Context, publishedOnly bool) ([]model.JobOpportunity, error) {
	args := m.Called(ctx, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.JobOpportunity), args.Error(1)
}

func (m *MockOpportunityRepository) Update(ctx context.Context, id int64, o *model.JobOpportunity) (int64, error) {
	args := m.Called(ctx, id, o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOpportunityRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOpportunityRepository) TogglePublish(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
