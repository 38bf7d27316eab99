package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCompanyReader is a mock implementation of repositories.CompanyReader
type MockCompanyReader struct {
	mock.Mock
}

func (m *MockCompanyReader) FindCompanyByTenantCode(ctx context.Context, code domain.TenantCode) (*domain.Company, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyReader) FindCompanyByEmail(ctx context.Context, email string) (*domain.Company, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyReader) FindCompanyByNameAndCode(ctx context.Context, name string, code domain.TenantCode) (*domain.Company, error) {
	args := m.Called(ctx, name, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyReader) TenantCodeExists(ctx context.Context, code domain.TenantCode) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func fixedSuffixes(suffixes ...int) randomSuffixFunc {
	i := 0
	return func(min, max int) (int, error) {
		v := suffixes[i%len(suffixes)]
		i++
		return v, nil
	}
}

func TestAllocateRetriesPastCollisions(t *testing.T) {
	ctx := context.Background()
	reader := new(MockCompanyReader)
	reader.On("TenantCodeExists", ctx, domain.TenantCode("COMP-1111")).Return(true, nil).Once()
	reader.On("TenantCodeExists", ctx, domain.TenantCode("COMP-2222")).Return(false, nil).Once()

	a := newTenantCodeAllocator(5)
	a.random = fixedSuffixes(1111, 2222)

	code, err := a.Allocate(ctx, reader)
	require.NoError(t, err)
	assert.Equal(t, domain.TenantCode("COMP-2222"), code)
	reader.AssertExpectations(t)
}

func TestAllocateGivesUpAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	reader := new(MockCompanyReader)
	reader.On("TenantCodeExists", ctx, mock.Anything).Return(true, nil)

	a := newTenantCodeAllocator(3)
	a.random = fixedSuffixes(1234)

	_, err := a.Allocate(ctx, reader)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInternal))
	reader.AssertNumberOfCalls(t, "TenantCodeExists", 3)
}

func TestAllocateSurfacesStoreErrors(t *testing.T) {
	ctx := context.Background()
	reader := new(MockCompanyReader)
	reader.On("TenantCodeExists", ctx, mock.Anything).Return(false, errors.New("connection reset"))

	a := newTenantCodeAllocator(3)
	_, err := a.Allocate(ctx, reader)
	assert.ErrorContains(t, err, "connection reset")
}

func TestAllocateUsesSecureRangeByDefault(t *testing.T) {
	ctx := context.Background()
	reader := new(MockCompanyReader)
	reader.On("TenantCodeExists", ctx, mock.Anything).Return(false, nil)

	code, err := newTenantCodeAllocator(1).Allocate(ctx, reader)
	require.NoError(t, err)
	assert.True(t, code.IsValid())
}
