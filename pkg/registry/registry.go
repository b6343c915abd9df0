// Package registry provides problem registration and discovery.
// Solution packages register their problems at startup; the
// runner and CLI look them up by year and day.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"advent/pkg/problem"
)

// Registry defines the interface for managing problems.
type Registry interface {
	// Register adds a problem. Registering the same year/day
	// twice is an error.
	Register(p *problem.Problem) error

	// Get retrieves a problem by year and day.
	Get(year, day int) (*problem.Problem, error)

	// Year returns all problems for a year sorted by day.
	Year(year int) []*problem.Problem

	// Years returns all years with registered problems, sorted
	// ascending.
	Years() []int

	// List returns all registered problems sorted by year then
	// day.
	List() []*problem.Problem

	// Clear removes all problems.
	Clear()

	// Count returns the number of registered problems.
	Count() int
}

type key struct {
	year, day int
}

// DefaultRegistry is the standard Registry implementation.
// It is safe for concurrent use.
type DefaultRegistry struct {
	mu       sync.RWMutex
	problems map[key]*problem.Problem
}

// NewRegistry creates a new, empty DefaultRegistry.
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{
		problems: make(map[key]*problem.Problem),
	}
}

// Default is the package-level default registry instance.
var Default = NewRegistry()

// Register adds a problem to the registry. The problem must be
// well-formed and its year/day must not already be taken.
func (r *DefaultRegistry) Register(p *problem.Problem) error {
	if err := p.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{p.Year, p.Day}
	if _, exists := r.problems[k]; exists {
		return fmt.Errorf(
			"problem already registered: %s", p.ID(),
		)
	}

	r.problems[k] = p
	return nil
}

// MustRegister registers a problem and panics on failure. It is
// intended for package init-time registration, where a conflict
// is a programming error.
func (r *DefaultRegistry) MustRegister(p *problem.Problem) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Get retrieves a problem by year and day.
func (r *DefaultRegistry) Get(
	year, day int,
) (*problem.Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.problems[key{year, day}]
	if !exists {
		return nil, fmt.Errorf(
			"problem not found: %d/day-%02d", year, day,
		)
	}
	return p, nil
}

// Year returns all problems for the given year sorted by day.
func (r *DefaultRegistry) Year(year int) []*problem.Problem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*problem.Problem
	for k, p := range r.problems {
		if k.year == year {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Day < out[j].Day
	})
	return out
}

// Years returns all years with registered problems, ascending.
func (r *DefaultRegistry) Years() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int]bool)
	var out []int
	for k := range r.problems {
		if !seen[k.year] {
			seen[k.year] = true
			out = append(out, k.year)
		}
	}

	sort.Ints(out)
	return out
}

// List returns all registered problems sorted by year then day.
func (r *DefaultRegistry) List() []*problem.Problem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*problem.Problem, 0, len(r.problems))
	for _, p := range r.problems {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Day < out[j].Day
	})
	return out
}

// Clear removes all problems.
func (r *DefaultRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.problems = make(map[key]*problem.Problem)
}

// Count returns the number of registered problems.
func (r *DefaultRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.problems)
}
