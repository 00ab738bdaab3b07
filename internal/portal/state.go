package portal

import (
	"github.com/digital-aware/portal/internal/assignment"
	"github.com/digital-aware/portal/internal/catalog"
	"github.com/digital-aware/portal/internal/quiz"
)

// State is the whole application snapshot: the module catalog plus every
// submitted assignment and quiz result. It is loaded once at startup and
// persisted wholesale after each mutation.
type State struct {
	Modules     []catalog.Module        `json:"modules"`
	Assignments []assignment.Assignment `json:"assignments"`
	Results     []quiz.Result           `json:"results"`
}

// DefaultState seeds a fresh portal: built-in catalog, empty collections.
func DefaultState() State {
	return State{
		Modules:     catalog.Default(),
		Assignments: []assignment.Assignment{},
		Results:     []quiz.Result{},
	}
}
