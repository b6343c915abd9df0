package y2022_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent/pkg/input"
	"advent/pkg/registry"
	"advent/pkg/y2022"
)

func TestProblems_Registered(t *testing.T) {
	problems := y2022.Problems()
	require.NotEmpty(t, problems)

	days := make([]int, 0, len(problems))
	for _, p := range problems {
		require.NoError(t, p.Validate())
		assert.Equal(t, 2022, p.Year)
		assert.NotEmpty(t, p.Name)
		days = append(days, p.Day)
	}
	assert.Equal(
		t,
		[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 25},
		days,
	)
}

func TestRegister(t *testing.T) {
	reg := registry.NewRegistry()
	require.NoError(t, y2022.Register(reg))
	assert.Equal(t, len(y2022.Problems()), reg.Count())

	// A second registration hits the duplicate check.
	require.Error(t, y2022.Register(reg))
}

// TestSolutions_Samples runs every part against the checked-in
// sample inputs and compares with the known answers.
func TestSolutions_Samples(t *testing.T) {
	store := input.NewStore("../../data")

	for _, p := range y2022.Problems() {
		data, err := store.Test(p.Year, p.Day)
		require.NoError(t, err, "sample input for day %d", p.Day)

		for part := 1; part <= p.Parts(); part++ {
			name := fmt.Sprintf("day%02d/part%d", p.Day, part)
			t.Run(name, func(t *testing.T) {
				fn := p.Part(part)
				require.NotNil(t, fn)

				answer, err := fn(data)
				require.NoError(t, err)

				expected := p.Expected(part)
				if expected == "" {
					// Unjudged part (e.g. a screen render);
					// just make sure it produces something.
					assert.NotEmpty(t, fmt.Sprint(answer))
					return
				}
				assert.Equal(
					t, expected, fmt.Sprint(answer),
				)
			})
		}
	}
}
