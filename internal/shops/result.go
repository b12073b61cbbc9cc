package shops

import "intown-api/internal/models"

// Status tags a search outcome so callers can tell "no results" apart
// from "request failed".
type Status int

const (
	// StatusOK means the request succeeded and returned shops.
	StatusOK Status = iota
	// StatusEmpty means the request succeeded with zero matches.
	StatusEmpty
	// StatusFailed means the request could not be completed.
	StatusFailed
)

// Result is the tagged outcome of a shop search.
type Result struct {
	Status Status
	Shops  []models.Shop
	Err    error
}

// Ok builds a result from a shop list, tagging empty lists as such.
func Ok(list []models.Shop) Result {
	if len(list) == 0 {
		return Result{Status: StatusEmpty, Shops: []models.Shop{}}
	}
	return Result{Status: StatusOK, Shops: list}
}

// Failed builds a failure result.
func Failed(err error) Result {
	return Result{Status: StatusFailed, Shops: []models.Shop{}, Err: err}
}
