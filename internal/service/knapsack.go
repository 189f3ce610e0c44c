package service

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/guttosm/trip-service/internal/domain/model"
)

var (
	// ErrNegativeBound is returned when minCalories or maxWeight is negative.
	ErrNegativeBound = errors.New("minCalories and maxWeight must be non-negative")
	// ErrNegativeItemValue is returned when an item has a negative weight or calorie value.
	ErrNegativeItemValue = errors.New("item weight and calories must be non-negative")
	// ErrTableOverflow is returned when the selection table size does not fit in an int.
	ErrTableOverflow = errors.New("selection table size overflows")
)

// maxPooledCells caps the selection table size kept in the pool.
const maxPooledCells = 1 << 22

// knapsackState holds the rolling value rows and the selection table.
// The value table only needs the previous row; the selection table is kept
// whole for trace-back.
type knapsackState struct {
	prev  []int
	curr  []int
	taken []bool
}

var knapsackPool = sync.Pool{
	New: func() interface{} {
		return &knapsackState{}
	},
}

// getKnapsackState returns zeroed buffers for a table of the given row width and cell count.
func getKnapsackState(width, cells int) *knapsackState {
	state, _ := knapsackPool.Get().(*knapsackState)
	if state == nil {
		state = &knapsackState{}
	}

	if cap(state.prev) < width {
		state.prev = make([]int, width)
		state.curr = make([]int, width)
	} else {
		state.prev = state.prev[:width]
		state.curr = state.curr[:width]
		clear(state.prev)
		clear(state.curr)
	}

	if cap(state.taken) < cells {
		state.taken = make([]bool, cells)
	} else {
		state.taken = state.taken[:cells]
		clear(state.taken)
	}

	return state
}

func putKnapsackState(state *knapsackState) {
	if cap(state.taken) > maxPooledCells {
		return
	}
	knapsackPool.Put(state)
}

// SolveKnapsack selects the subset of items with the highest total calories
// whose total weight does not exceed req.MaxWeight.
//
// Ties favor leaving an item out. The selected names are returned in trace-back
// order, last eligible item first. When the best achievable calories fall below
// req.MinCalories the canonical infeasible result is returned. An error is only
// returned for negative bounds or item values, or for a table too large to address.
func SolveKnapsack(req model.SolveRequest) (model.SolveResult, error) {
	if req.MinCalories < 0 || req.MaxWeight < 0 {
		return model.SolveResult{}, ErrNegativeBound
	}
	for _, item := range req.Items {
		if item.Weight < 0 || item.Calories < 0 {
			return model.SolveResult{}, fmt.Errorf("%w: %q", ErrNegativeItemValue, item.Name)
		}
	}

	cells := req.TotalCells()
	if cells == math.MaxInt {
		return model.SolveResult{}, fmt.Errorf("%w: %d items with maxWeight %d", ErrTableOverflow, len(req.Items), req.MaxWeight)
	}

	n := len(req.Items)
	width := req.MaxWeight + 1

	state := getKnapsackState(width, cells)
	defer putKnapsackState(state)

	prev, curr, taken := state.prev, state.curr, state.taken

	// Column 0 is filled too so zero-weight items are selectable at any budget.
	for i := 1; i <= n; i++ {
		item := req.Items[i-1]
		row := taken[i*width : (i+1)*width]
		for w := 0; w < width; w++ {
			without := prev[w]
			if item.Weight <= w {
				if with := prev[w-item.Weight] + item.Calories; with > without {
					curr[w] = with
					row[w] = true
					continue
				}
			}
			curr[w] = without
		}
		prev, curr = curr, prev
	}

	return traceBack(req, taken, width), nil
}

// traceBack walks the selection table from (n, maxWeight) and applies the calorie floor.
func traceBack(req model.SolveRequest, taken []bool, width int) model.SolveResult {
	names := make([]string, 0)
	totalWeight, totalCalories := 0, 0

	w := req.MaxWeight
	for i := len(req.Items); i > 0; i-- {
		if !taken[i*width+w] {
			continue
		}
		item := req.Items[i-1]
		names = append(names, item.Name)
		totalWeight += item.Weight
		totalCalories += item.Calories
		w -= item.Weight
	}

	if totalCalories < req.MinCalories {
		return model.Infeasible(req.Name)
	}

	return model.SolveResult{
		Name:          req.Name,
		OptimalItems:  names,
		TotalWeight:   totalWeight,
		TotalCalories: totalCalories,
	}
}
