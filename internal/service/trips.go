package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/trip-service/internal/domain/model"
	"github.com/guttosm/trip-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TripService plans trips and manages the stored records.
type TripService interface {
	// Create solves req and stores the result.
	Create(ctx context.Context, req model.SolveRequest) (*model.Trip, error)
	// List returns every stored trip, newest first.
	List(ctx context.Context) ([]model.Trip, error)
	// Delete removes the trip with the given hex id.
	Delete(ctx context.Context, id string) error
}

// TripServiceImpl implements TripService.
type TripServiceImpl struct {
	planner TripPlanner
	repo    repository.TripRepositoryInterface
}

// NewTripService creates a trip service. A nil planner falls back to an uncached planner with default limits.
func NewTripService(planner TripPlanner, repo repository.TripRepositoryInterface) *TripServiceImpl {
	if planner == nil {
		planner = NewTripPlannerService()
	}
	return &TripServiceImpl{planner: planner, repo: repo}
}

// Create solves req and stores the result. Infeasible results are stored too.
func (s *TripServiceImpl) Create(ctx context.Context, req model.SolveRequest) (*model.Trip, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	result, err := s.planner.Plan(req)
	if err != nil {
		return nil, err
	}

	trip := model.NewTrip(result)
	doc := tripToDocument(trip)
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("store trip: %w", err)
	}

	trip.ID = doc.ID
	trip.CreatedAt = doc.CreatedAt
	return trip, nil
}

// List returns every stored trip, newest first.
func (s *TripServiceImpl) List(ctx context.Context) ([]model.Trip, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}

	trips := make([]model.Trip, len(docs))
	for i := range docs {
		trips[i] = documentToTrip(&docs[i])
	}
	return trips, nil
}

// Delete removes the trip with the given hex id.
func (s *TripServiceImpl) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTripID, id)
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTripNotFound
		}
		return fmt.Errorf("delete trip: %w", err)
	}
	return nil
}

func tripToDocument(trip *model.Trip) *repository.TripDocument {
	return &repository.TripDocument{
		ID:            trip.ID,
		Name:          trip.Name,
		OptimalItems:  trip.OptimalItems,
		TotalWeight:   trip.TotalWeight,
		TotalCalories: trip.TotalCalories,
		CreatedAt:     trip.CreatedAt,
	}
}

func documentToTrip(doc *repository.TripDocument) model.Trip {
	items := doc.OptimalItems
	if items == nil {
		items = []string{}
	}
	return model.Trip{
		ID:            doc.ID,
		Name:          doc.Name,
		OptimalItems:  items,
		TotalWeight:   doc.TotalWeight,
		TotalCalories: doc.TotalCalories,
		CreatedAt:     doc.CreatedAt,
	}
}
