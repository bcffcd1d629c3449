// Package testutils provides mock implementations for testing
package testutils

import (
	"context"

	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPreferenceRepository provides a mock implementation of PreferenceRepository
type MockPreferenceRepository struct {
	mock.Mock
}

// NewMockPreferenceRepository creates a new mock preference repository
func NewMockPreferenceRepository() *MockPreferenceRepository {
	return &MockPreferenceRepository{}
}

// FindByUserID returns the configured preferences
func (m *MockPreferenceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]mealplan.UserPreference, error) {
	args := m.Called(ctx, userID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mealplan.UserPreference), args.Error(1)
}

// FindFoodHealthMappings returns the configured mappings
func (m *MockPreferenceRepository) FindFoodHealthMappings(ctx context.Context) ([]mealplan.FoodHealthMapping, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mealplan.FoodHealthMapping), args.Error(1)
}

// MockGenerationLogRepository provides a mock implementation of GenerationLogRepository
type MockGenerationLogRepository struct {
	mock.Mock
}

// NewMockGenerationLogRepository creates a new mock log repository
func NewMockGenerationLogRepository() *MockGenerationLogRepository {
	return &MockGenerationLogRepository{}
}

// SaveSession records the call
func (m *MockGenerationLogRepository) SaveSession(ctx context.Context, sessionID, userID uuid.UUID, logs []mealplan.GenerationLog) error {
	args := m.Called(ctx, sessionID, userID, logs)
	return args.Error(0)
}
