package memory

import (
	"context"
	"sync"

	"github.com/alchemorsel/mealplanner/internal/domain/mealplan"
	"github.com/alchemorsel/mealplanner/internal/ports/outbound"
	"github.com/google/uuid"
)

// GenerationLogRepository keeps generation logs in memory, grouped by
// session. Useful in tests that assert on what a plan recorded.
type GenerationLogRepository struct {
	sessions map[uuid.UUID][]mealplan.GenerationLog
	mutex    sync.RWMutex
}

// NewGenerationLogRepository creates a new in-memory log repository
func NewGenerationLogRepository() *GenerationLogRepository {
	return &GenerationLogRepository{
		sessions: make(map[uuid.UUID][]mealplan.GenerationLog),
	}
}

var _ outbound.GenerationLogRepository = (*GenerationLogRepository)(nil)

// SaveSession stores the logs of one generation session
func (r *GenerationLogRepository) SaveSession(ctx context.Context, sessionID, userID uuid.UUID, logs []mealplan.GenerationLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.sessions[sessionID] = append([]mealplan.GenerationLog(nil), logs...)
	return nil
}

// Session returns the stored logs of a session
func (r *GenerationLogRepository) Session(sessionID uuid.UUID) []mealplan.GenerationLog {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	logs := make([]mealplan.GenerationLog, len(r.sessions[sessionID]))
	copy(logs, r.sessions[sessionID])
	return logs
}

// Sessions returns the number of stored sessions
func (r *GenerationLogRepository) Sessions() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.sessions)
}

// AllLogs returns every stored log row across sessions
func (r *GenerationLogRepository) AllLogs() []mealplan.GenerationLog {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var logs []mealplan.GenerationLog
	for _, session := range r.sessions {
		logs = append(logs, session...)
	}
	return logs
}
