package project_test

import (
	"math"
	"testing"

	"github.com/rpggio/projectboard/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestParsePeople(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{raw: "", want: 0},
		{raw: "   ", want: 0},
		{raw: "3", want: 3},
		{raw: " 4 ", want: 4},
		{raw: "+2", want: 2},
		{raw: "-1", want: -1},
		{raw: "2.5", want: 2.5},
		{raw: ".5", want: 0.5},
		{raw: "1e2", want: 100},
		{raw: "0x10", want: 16},
		{raw: "0b11", want: 3},
		{raw: "0o7", want: 7},
		{raw: "Infinity", want: math.Inf(1)},
		{raw: "-Infinity", want: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.want, project.ParsePeople(tt.raw))
		})
	}
}

func TestParsePeople_Garbage(t *testing.T) {
	for _, raw := range []string{"abc", "3 people", "1_000", "0x", "0xZZ", "-0x10", "inf", "NaN", "1.2.3"} {
		require.True(t, math.IsNaN(project.ParsePeople(raw)), "raw %q", raw)
	}
}

func TestThresholds_Gather(t *testing.T) {
	thresholds := project.DefaultThresholds()

	tests := []struct {
		name    string
		in      project.Input
		want    project.CreateRequest
		wantErr bool
	}{
		{
			name: "valid",
			in:   project.Input{Title: "Build a rocket", Description: "Launch it to orbit", People: "3"},
			want: project.CreateRequest{Title: "Build a rocket", Description: "Launch it to orbit", People: 3},
		},
		{
			name:    "short title",
			in:      project.Input{Title: "abcd", Description: "Launch it to orbit", People: "3"},
			wantErr: true,
		},
		{
			name:    "blank title",
			in:      project.Input{Title: "      ", Description: "Launch it to orbit", People: "3"},
			wantErr: true,
		},
		{
			name:    "short description",
			in:      project.Input{Title: "Build a rocket", Description: "Launch", People: "3"},
			wantErr: true,
		},
		{
			name:    "zero people",
			in:      project.Input{Title: "Build a rocket", Description: "Launch it to orbit", People: "0"},
			wantErr: true,
		},
		{
			name:    "empty people",
			in:      project.Input{Title: "Build a rocket", Description: "Launch it to orbit", People: ""},
			wantErr: true,
		},
		{
			name:    "garbage people",
			in:      project.Input{Title: "Build a rocket", Description: "Launch it to orbit", People: "lots"},
			wantErr: true,
		},
		{
			name:    "fractional people",
			in:      project.Input{Title: "Build a rocket", Description: "Launch it to orbit", People: "2.5"},
			wantErr: true,
		},
		{
			name:    "infinite people",
			in:      project.Input{Title: "Build a rocket", Description: "Launch it to orbit", People: "Infinity"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := thresholds.Gather(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, project.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestThresholds_PeopleMax(t *testing.T) {
	thresholds := project.DefaultThresholds()
	thresholds.PeopleMax = 10

	_, err := thresholds.Gather(project.Input{Title: "Build a rocket", Description: "Launch it to orbit", People: "10"})
	require.NoError(t, err)

	_, err = thresholds.Gather(project.Input{Title: "Build a rocket", Description: "Launch it to orbit", People: "11"})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestThresholds_Rules(t *testing.T) {
	rules := project.DefaultThresholds().Rules(project.Input{Title: "t", Description: "d", People: "2"})
	require.Len(t, rules, 3)
	require.Equal(t, 5, *rules[0].MinLength)
	require.Equal(t, 10, *rules[1].MinLength)
	require.Equal(t, 2.0, rules[2].Value)
	require.Equal(t, 1.0, *rules[2].Min)
	require.Nil(t, rules[2].Max)
}
