package project

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rpggio/projectboard/internal/validation"
)

// Input holds raw form field values as entered by the user.
type Input struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      string `json:"people"`
}

// CreateRequest holds validated project fields.
type CreateRequest struct {
	Title       string
	Description string
	People      int
}

// Thresholds are the constraints applied to submitted input. A zero
// PeopleMax means no upper bound.
type Thresholds struct {
	TitleMinLength       int
	DescriptionMinLength int
	PeopleMin            int
	PeopleMax            int
}

// DefaultThresholds returns the thresholds used by the project form.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TitleMinLength:       5,
		DescriptionMinLength: 10,
		PeopleMin:            1,
	}
}

// Rules builds the validation rules for in.
func (t Thresholds) Rules(in Input) []validation.Rule {
	people := validation.Rule{
		Value:    ParsePeople(in.People),
		Required: true,
		Min:      validation.Float(float64(t.PeopleMin)),
	}
	if t.PeopleMax > 0 {
		people.Max = validation.Float(float64(t.PeopleMax))
	}

	return []validation.Rule{
		{
			Value:     in.Title,
			Required:  true,
			MinLength: validation.Int(t.TitleMinLength),
		},
		{
			Value:     in.Description,
			Required:  true,
			MinLength: validation.Int(t.DescriptionMinLength),
		},
		people,
	}
}

// Gather validates in and converts it into a CreateRequest. Any failure
// yields ErrInvalidInput.
func (t Thresholds) Gather(in Input) (CreateRequest, error) {
	if !validation.ValidateAll(t.Rules(in)...) {
		return CreateRequest{}, ErrInvalidInput
	}

	people := ParsePeople(in.People)
	if people != math.Trunc(people) || people > math.MaxInt32 {
		return CreateRequest{}, ErrInvalidInput
	}

	return CreateRequest{
		Title:       in.Title,
		Description: in.Description,
		People:      int(people),
	}, nil
}

var (
	decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	prefixedBases  = map[string]int{"0x": 16, "0o": 8, "0b": 2}
)

// ParsePeople converts a raw people field to a number the way a browser's
// unary plus does: surrounding space is ignored, an empty field is zero and
// anything unparseable is NaN.
func ParsePeople(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 {
		if base, ok := prefixedBases[strings.ToLower(s[:2])]; ok {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	if !decimalPattern.MatchString(s) {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out of range values still carry the correctly signed infinity.
		if errors.Is(err, strconv.ErrRange) {
			return n
		}
		return math.NaN()
	}
	return n
}
