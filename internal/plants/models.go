package plants

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Direction is a compass label on the polar axis.
type Direction string

const (
	North     Direction = "North"
	NorthEast Direction = "NorthEast"
	East      Direction = "East"
	SouthEast Direction = "SouthEast"
	South     Direction = "South"
	SouthWest Direction = "SouthWest"
	West      Direction = "West"
	NorthWest Direction = "NorthWest"
)

// AngleStep is the angular distance between two neighbouring directions.
const AngleStep = 45.0

var directions = [...]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Directions returns the eight labels in canonical rotational order, starting at North.
func Directions() []Direction {
	out := make([]Direction, len(directions))
	copy(out, directions[:])
	return out
}

// Index returns the position of d in the canonical order, or -1.
func (d Direction) Index() int {
	for i, v := range directions {
		if v == d {
			return i
		}
	}
	return -1
}

// Angle returns the polar angle in degrees (North = 0, clockwise).
// Unknown directions return -1.
func (d Direction) Angle() float64 {
	i := d.Index()
	if i < 0 {
		return -1
	}
	return float64(i) * AngleStep
}

// ParseDirection matches s against the known labels, ignoring case.
func ParseDirection(s string) (Direction, error) {
	for _, d := range directions {
		if strings.EqualFold(string(d), strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Category is one of the plotted plant series.
type Category string

const (
	CategoryTree   Category = "Tree"
	CategoryFlower Category = "Flower"
	CategoryWeed   Category = "Weed"
)

var categories = [...]Category{CategoryTree, CategoryFlower, CategoryWeed}

// Categories returns the plant series in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories[:])
	return out
}

// ParseCategory matches s against the known categories, ignoring case.
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// DirectionSample holds the plant counts observed in one direction.
type DirectionSample struct {
	Direction   Direction `json:"direction" yaml:"direction" validate:"required,oneof=North NorthEast East SouthEast South SouthWest West NorthWest"`
	TreeCount   int       `json:"treeCount" yaml:"treeCount" validate:"min=0"`
	FlowerCount int       `json:"flowerCount" yaml:"flowerCount" validate:"min=0"`
	WeedCount   int       `json:"weedCount" yaml:"weedCount" validate:"min=0"`
}

// Count returns the value of the given category.
func (s DirectionSample) Count(c Category) (int, error) {
	switch c {
	case CategoryTree:
		return s.TreeCount, nil
	case CategoryFlower:
		return s.FlowerCount, nil
	case CategoryWeed:
		return s.WeedCount, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
}

var validate = validator.New()

// Validate checks the direction label and that no count is negative.
func (s DirectionSample) Validate() error {
	return validate.Struct(s)
}
