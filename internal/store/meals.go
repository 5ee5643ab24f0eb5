package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Varun5711/mealcounter/internal/idgen"
	"github.com/Varun5711/mealcounter/internal/logger"
	"github.com/Varun5711/mealcounter/internal/models"
	"github.com/Varun5711/mealcounter/internal/nutrition"
	"github.com/Varun5711/mealcounter/internal/storage"
)

type persistedMeals struct {
	MealHistory []models.MealEntry `json:"mealHistory"`
}

// Meals holds the lookup history, newest first, plus the transient
// current-result, loading and error slots. Only the history is persisted.
//
// The loading and error slots are plain setters: nothing orders the writes
// of two overlapping lookups, so a stale call can overwrite a newer one.
type Meals struct {
	mu      sync.Mutex
	st      storage.Storage
	ids     *idgen.Generator
	log     *logger.Logger
	now     func() time.Time
	history []models.MealEntry
	current *models.LookupResult
	loading bool
	err     *string
}

type MealsOption func(*Meals)

// WithClock overrides the clock used to stamp new entries.
func WithClock(now func() time.Time) MealsOption {
	return func(m *Meals) {
		m.now = now
	}
}

// NewMeals restores the history persisted in st, if any.
func NewMeals(ctx context.Context, st storage.Storage, ids *idgen.Generator, log *logger.Logger, opts ...MealsOption) (*Meals, error) {
	if log == nil {
		log = logger.Nop()
	}
	m := &Meals{
		st:      st,
		ids:     ids,
		log:     log,
		now:     time.Now,
		history: []models.MealEntry{},
	}
	for _, opt := range opts {
		opt(m)
	}

	var p persistedMeals
	found, err := load(ctx, st, MealsNamespace, &p)
	if err != nil {
		return nil, err
	}
	if found && p.MealHistory != nil {
		m.history = p.MealHistory
		log.Debug("restored %d meal(s)", len(m.history))
	}

	return m, nil
}

// SetCurrentResult replaces the latest-result slot. nil clears it.
func (m *Meals) SetCurrentResult(result *models.LookupResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = cloneResult(result)
}

// AddMealToHistory stamps result with an ID, capture time and macro estimate
// and puts it at the front of the history. The returned entry is kept in
// memory even when the write-through fails.
func (m *Meals) AddMealToHistory(result models.LookupResult) (models.MealEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	capturedAt := m.now()
	entry := models.MealEntry{
		ID:                 m.ids.EntryID(capturedAt),
		DishName:           result.DishName,
		Servings:           result.Servings,
		CaloriesPerServing: result.CaloriesPerServing,
		TotalCalories:      result.TotalCalories,
		Timestamp:          capturedAt.UnixMilli(),
		Macros:             nutrition.CalculateMacros(result.CaloriesPerServing, result.Servings),
	}

	m.history = slices.Insert(m.history, 0, entry)
	return entry, m.persistLocked()
}

// RemoveMealFromHistory drops the entry with the given ID. Unknown IDs are
// ignored and nothing is written.
func (m *Meals) RemoveMealFromHistory(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.history, func(e models.MealEntry) bool {
		return e.ID == id
	})
	if i < 0 {
		return nil
	}

	m.history = slices.Delete(m.history, i, i+1)
	return m.persistLocked()
}

func (m *Meals) SetIsLoading(loading bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loading = loading
}

// SetError replaces the error slot. nil clears it.
func (m *Meals) SetError(message *string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if message == nil {
		m.err = nil
		return
	}
	msg := *message
	m.err = &msg
}

func (m *Meals) SetErrorMessage(message string) {
	m.SetError(&message)
}

func (m *Meals) ClearError() {
	m.SetError(nil)
}

// ClearMealHistory empties the history. The transient slots are untouched.
func (m *Meals) ClearMealHistory() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = []models.MealEntry{}
	return m.persistLocked()
}

// History returns a copy of the entries, newest first.
func (m *Meals) History() []models.MealEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.history)
}

func (m *Meals) CurrentResult() *models.LookupResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	return cloneResult(m.current)
}

func (m *Meals) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.loading
}

// Error returns the held error message, or nil.
func (m *Meals) Error() *string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err == nil {
		return nil
	}
	msg := *m.err
	return &msg
}

func (m *Meals) Totals() nutrition.Totals {
	m.mu.Lock()
	defer m.mu.Unlock()

	return nutrition.Summarize(m.history)
}

func (m *Meals) persistLocked() error {
	if err := save(context.Background(), m.st, MealsNamespace, persistedMeals{MealHistory: m.history}); err != nil {
		m.log.Error("Failed to persist meal history: %v", err)
		return err
	}
	return nil
}

func cloneResult(r *models.LookupResult) *models.LookupResult {
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}
