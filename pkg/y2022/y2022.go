// Package y2022 holds the Advent of Code 2022 solutions.
//
// Each day file declares its problem and appends it during
// init. Register wires the whole year into a registry.
package y2022

import (
	"sort"

	"advent/pkg/problem"
	"advent/pkg/registry"
)

var problems []problem.Problem

func register(p problem.Problem) {
	problems = append(problems, p)
}

// Problems returns the year's problems ordered by day.
func Problems() []problem.Problem {
	out := make([]problem.Problem, len(problems))
	copy(out, problems)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day < out[j].Day
	})
	return out
}

// Register adds every 2022 problem to the given registry.
func Register(reg registry.Registry) error {
	for _, p := range Problems() {
		if err := reg.Register(&p); err != nil {
			return err
		}
	}
	return nil
}
