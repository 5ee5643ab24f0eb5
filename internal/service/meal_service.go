package service

import (
	"context"

	"github.com/Varun5711/mealcounter/internal/gateway"
	"github.com/Varun5711/mealcounter/internal/logger"
	"github.com/Varun5711/mealcounter/internal/models"
	"github.com/Varun5711/mealcounter/internal/store"
	"github.com/Varun5711/mealcounter/internal/validation"
)

const (
	MsgTokenMissing  = "Authentication token not found. Please log in again."
	MsgLookupFailure = "Failed to fetch calorie information. Please try again."
)

type MealService struct {
	gw      CalorieLookup
	session *store.Session
	meals   *store.Meals
	log     *logger.Logger
}

func NewMealService(gw CalorieLookup, session *store.Session, meals *store.Meals, log *logger.Logger) *MealService {
	if log == nil {
		log = logger.Nop()
	}
	return &MealService{
		gw:      gw,
		session: session,
		meals:   meals,
		log:     log,
	}
}

// Search looks up one dish and records the outcome in the meal store.
//
// The dish name is sent as entered; surrounding whitespace only matters to
// validation. Invalid input is rejected without touching the store. Without a token the
// error slot is set and ErrNoSession returned. Otherwise the loading flag
// brackets the call; a result becomes the current result and the newest
// history entry, a failure is held in the error slot and returned.
func (s *MealService) Search(ctx context.Context, req models.LookupRequest) (*models.MealEntry, error) {
	if err := validation.ValidateLookup(req); err != nil {
		return nil, err
	}

	token := s.session.Token()
	if token == "" {
		s.meals.SetErrorMessage(MsgTokenMissing)
		return nil, ErrNoSession
	}

	s.meals.SetIsLoading(true)
	s.meals.ClearError()
	defer s.meals.SetIsLoading(false)

	result, err := s.gw.Lookup(ctx, req, token)
	if err != nil {
		s.log.Warn("Lookup %q failed: %v", req.DishName, err)
		s.meals.SetErrorMessage(lookupMessage(err))
		s.meals.SetCurrentResult(nil)
		return nil, err
	}

	s.meals.SetCurrentResult(result)
	entry, err := s.meals.AddMealToHistory(*result)
	if err != nil {
		// The entry is in memory; only the write-through failed.
		s.log.Warn("Meal %s not persisted: %v", entry.ID, err)
	}
	s.meals.ClearError()

	s.log.Info("Recorded %s x%g = %.1f kcal", entry.DishName, entry.Servings, entry.TotalCalories)
	return &entry, nil
}

func (s *MealService) Delete(id string) error {
	return s.meals.RemoveMealFromHistory(id)
}

func (s *MealService) Clear() error {
	return s.meals.ClearMealHistory()
}

func lookupMessage(err error) string {
	if ge, ok := gateway.AsError(err); ok && ge.Message != "" {
		return ge.Message
	}
	return MsgLookupFailure
}
