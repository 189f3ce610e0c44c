// Package model defines the core domain entities for the trip service.
package model

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item is a candidate item for a trip.
//
// @Description Candidate item with its weight and calorie value
// @Example {"name": "trail mix", "weight": 2, "calories": 10}
type Item struct {
	Name     string `json:"name" example:"trail mix"`
	Weight   int    `json:"weight" example:"2"`
	Calories int    `json:"calories" example:"10"`
}

// SolveRequest is the input of a single knapsack computation.
// Item order only matters for tie-breaking.
type SolveRequest struct {
	Name        string
	MinCalories int
	MaxWeight   int
	Items       []Item
}

// TotalCells returns the number of cells in the selection table for this request.
// It saturates at math.MaxInt when the table size does not fit in an int, and is
// zero for a negative budget.
func (r SolveRequest) TotalCells() int {
	if r.MaxWeight < 0 {
		return 0
	}
	rows := len(r.Items) + 1
	if r.MaxWeight > math.MaxInt/rows-1 {
		return math.MaxInt
	}
	return rows * (r.MaxWeight + 1)
}

// SolveResult is the outcome of a knapsack computation.
//
// @Description Optimal item selection for a trip
// @Example {"name": "weekend", "optimalItems": ["B", "A"], "totalWeight": 5, "totalCalories": 25}
type SolveResult struct {
	Name          string   `json:"name" example:"weekend"`
	OptimalItems  []string `json:"optimalItems"`
	TotalWeight   int      `json:"totalWeight" example:"5"`
	TotalCalories int      `json:"totalCalories" example:"25"`
}

// Infeasible returns the canonical result for a request whose calorie floor
// cannot be met.
func Infeasible(name string) SolveResult {
	return SolveResult{
		Name:         name,
		OptimalItems: []string{},
	}
}

// IsEmpty reports whether no item was selected.
func (r SolveResult) IsEmpty() bool {
	return len(r.OptimalItems) == 0
}

// Trip is a stored solve result.
//
// @Description Stored trip with its optimal selection
type Trip struct {
	ID            primitive.ObjectID `json:"id" swaggertype:"string" example:"65b7a1f0c2a4e3d1f0a1b2c3"`
	Name          string             `json:"name" example:"weekend"`
	OptimalItems  []string           `json:"optimalItems"`
	TotalWeight   int                `json:"totalWeight" example:"5"`
	TotalCalories int                `json:"totalCalories" example:"25"`
	CreatedAt     time.Time          `json:"createdAt"`
} // @name Trip

// NewTrip builds an unsaved Trip from a solve result.
func NewTrip(result SolveResult) *Trip {
	items := result.OptimalItems
	if items == nil {
		items = []string{}
	}
	return &Trip{
		Name:          result.Name,
		OptimalItems:  items,
		TotalWeight:   result.TotalWeight,
		TotalCalories: result.TotalCalories,
	}
}
