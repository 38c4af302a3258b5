package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		model     *Model
		expectErr string
	}{
		{
			name: "valid",
			model: &Model{Tables: []*Table{
				{Name: "main", Kind: "dense", Inputs: []string{"a.txt"}, Output: "out/a.go"},
				{Name: "extra", Kind: "sparse", Inputs: []string{"b.txt"}, Output: "out/b.go"},
			}},
		},
		{
			name:      "no tables",
			model:     &Model{},
			expectErr: "no tables defined",
		},
		{
			name: "duplicate names",
			model: &Model{Tables: []*Table{
				{Name: "main", Inputs: []string{"a.txt"}, Output: "a.go"},
				{Name: "main", Inputs: []string{"b.txt"}, Output: "b.go"},
			}},
			expectErr: `table "main" is defined more than once`,
		},
		{
			name: "shared output",
			model: &Model{Tables: []*Table{
				{Name: "one", Inputs: []string{"a.txt"}, Output: "out/a.go"},
				{Name: "two", Inputs: []string{"b.txt"}, Output: "out/../out/a.go"},
			}},
			expectErr: `already written by table "one"`,
		},
		{
			name:      "missing inputs and output",
			model:     &Model{Tables: []*Table{{Name: "empty"}}},
			expectErr: "at least one input is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.model.Validate()
			if tc.expectErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}
