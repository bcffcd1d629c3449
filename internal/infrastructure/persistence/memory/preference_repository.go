// Package memory provides in-memory repository implementations used for
// development, tests and deployments without a preference store
package memory

import (
	"context"
	"sync"

	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/ports/outbound"
	"github.com/google/uuid"
)

// PreferenceRepository implements an in-memory preference store.
// It starts empty; Seed* methods load the data the engine degrades
// without.
type PreferenceRepository struct {
	prefs    map[uuid.UUID][]mealplan.UserPreference
	mappings []mealplan.FoodHealthMapping
	mutex    sync.RWMutex
}

// NewPreferenceRepository creates a new in-memory preference repository
func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{
		prefs: make(map[uuid.UUID][]mealplan.UserPreference),
	}
}

var _ outbound.PreferenceRepository = (*PreferenceRepository)(nil)

// FindByUserID returns the stored preferences of a user
func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]mealplan.UserPreference, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	prefs := make([]mealplan.UserPreference, len(r.prefs[userID]))
	copy(prefs, r.prefs[userID])
	return prefs, nil
}

// FindFoodHealthMappings returns all stored food-health mappings
func (r *PreferenceRepository) FindFoodHealthMappings(ctx context.Context) ([]mealplan.FoodHealthMapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	mappings := make([]mealplan.FoodHealthMapping, len(r.mappings))
	copy(mappings, r.mappings)
	return mappings, nil
}

// SeedPreferences replaces the stored preferences of a user
func (r *PreferenceRepository) SeedPreferences(userID uuid.UUID, prefs []mealplan.UserPreference) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.prefs[userID] = append([]mealplan.UserPreference(nil), prefs...)
}

// SeedMappings replaces the stored food-health mappings
func (r *PreferenceRepository) SeedMappings(mappings []mealplan.FoodHealthMapping) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.mappings = append([]mealplan.FoodHealthMapping(nil), mappings...)
}
