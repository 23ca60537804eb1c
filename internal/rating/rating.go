// Package rating handles parent-submitted parking ratings for a school:
// five 1–5 category scores plus an optional comment.
package rating

import (
	"errors"
	"fmt"
)

var ErrNoCategories = errors.New("select at least one rating category")

// Submission is the POST body. Zero means the category was left unset.
type Submission struct {
	SchoolID     string `json:"school_id"`
	Ease         int    `json:"ease"`
	Safety       int    `json:"safety"`
	Space        int    `json:"space"`
	Congestion   int    `json:"congestion"`
	Restrictions int    `json:"restrictions"`
	Comment      string `json:"comment,omitempty"`
}

func (s Submission) categories() [5]int {
	return [5]int{s.Ease, s.Safety, s.Space, s.Congestion, s.Restrictions}
}

// Validate rejects a submission before it reaches storage: missing school,
// every category unset, or any set category outside 1–5.
func (s Submission) Validate() error {
	if s.SchoolID == "" {
		return errors.New("school_id required")
	}
	anySet := false
	for _, v := range s.categories() {
		if v == 0 {
			continue
		}
		if v < 1 || v > 5 {
			return fmt.Errorf("rating values must be 1-5, got %d", v)
		}
		anySet = true
	}
	if !anySet {
		return ErrNoCategories
	}
	return nil
}

// Aggregate is the per-school rollup served back to the card.
type Aggregate struct {
	SchoolID     string  `json:"school_id"`
	Count        int     `json:"count"`
	Ease         float64 `json:"ease"`
	Safety       float64 `json:"safety"`
	Space        float64 `json:"space"`
	Congestion   float64 `json:"congestion"`
	Restrictions float64 `json:"restrictions"`
}
