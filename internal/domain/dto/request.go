// Package dto defines the HTTP request and response bodies.
package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/guttosm/trip-service/internal/domain/model"
)

// ItemRequest is a candidate item in a trip request.
// Null or missing weight and calories are rejected by binding.
//
// @Description Candidate item
type ItemRequest struct {
	Name     string `json:"name" binding:"required" example:"trail mix"`
	Weight   *int   `json:"weight" binding:"required,gte=0" example:"2" minimum:"0"`
	Calories *int   `json:"calories" binding:"required,gte=0" example:"10" minimum:"0"`
} // @name ItemRequest

// CreateTripRequest is the body of POST /trips.
//
// MinCalories and MaxWeight accept a JSON integer or a string holding a base-10
// integer. Fractions, exponents and negative values are rejected by Validate.
//
// @Description Request to plan and store a trip
// @Example {"name": "weekend", "minCalories": 20, "maxWeight": 5, "items": [{"name": "A", "weight": 2, "calories": 10}]}
type CreateTripRequest struct {
	Name        string        `json:"name" binding:"required" example:"weekend"`
	MinCalories json.Number   `json:"minCalories" swaggertype:"integer" example:"20" minimum:"0"`
	MaxWeight   json.Number   `json:"maxWeight" swaggertype:"integer" example:"5" minimum:"0"`
	Items       []ItemRequest `json:"items" binding:"omitempty,dive"`
} // @name CreateTripRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Details returns the error as a field to message map for the error envelope.
func (e *ValidationError) Details() map[string]string {
	return map[string]string{e.Field: e.Message}
}

// Validation field names.
const (
	FieldName        = "name"
	FieldMinCalories = "minCalories"
	FieldMaxWeight   = "maxWeight"
	FieldItems       = "items"
)

// Validate checks the fields binding cannot express and returns the solver input.
// Item names and values are already enforced by binding tags.
func (r *CreateTripRequest) Validate() (model.SolveRequest, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return model.SolveRequest{}, &ValidationError{Field: FieldName, Message: "is required"}
	}

	minCalories, err := parseNonNegativeInt(FieldMinCalories, r.MinCalories)
	if err != nil {
		return model.SolveRequest{}, err
	}
	maxWeight, err := parseNonNegativeInt(FieldMaxWeight, r.MaxWeight)
	if err != nil {
		return model.SolveRequest{}, err
	}

	items := make([]model.Item, len(r.Items))
	for i, item := range r.Items {
		if item.Weight == nil || item.Calories == nil || *item.Weight < 0 || *item.Calories < 0 {
			return model.SolveRequest{}, &ValidationError{
				Field:   fmt.Sprintf("%s[%d]", FieldItems, i),
				Message: "weight and calories must be non-negative integers",
			}
		}
		items[i] = model.Item{Name: item.Name, Weight: *item.Weight, Calories: *item.Calories}
	}

	return model.SolveRequest{
		Name:        name,
		MinCalories: minCalories,
		MaxWeight:   maxWeight,
		Items:       items,
	}, nil
}

// parseNonNegativeInt accepts only plain base-10 digits.
func parseNonNegativeInt(field string, raw json.Number) (int, error) {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return 0, &ValidationError{Field: field, Message: "is required"}
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, &ValidationError{Field: field, Message: "must be a non-negative integer"}
		}
	}

	v, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: "is out of range"}
	}
	return int(v), nil
}
