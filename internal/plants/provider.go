package plants

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDirection is returned for a label outside the eight compass directions.
	ErrUnknownDirection = errors.New("unknown direction")
	// ErrUnknownCategory is returned for a plant category other than Tree, Flower or Weed.
	ErrUnknownCategory = errors.New("unknown plant category")
	// ErrDataUnavailable is reserved for providers backed by an external source.
	ErrDataUnavailable = errors.New("plant data unavailable")
)

// PlantDataProvider holds the fixed per-direction plant counts shown on the polar chart.
// The samples never change after construction, so a provider is safe for concurrent use.
type PlantDataProvider struct {
	samples []DirectionSample
}

// NewPlantDataProvider returns a provider populated with the canonical dataset.
func NewPlantDataProvider() *PlantDataProvider {
	return &PlantDataProvider{
		samples: []DirectionSample{
			{Direction: North, TreeCount: 80, FlowerCount: 42, WeedCount: 63},
			{Direction: NorthEast, TreeCount: 85, FlowerCount: 40, WeedCount: 70},
			{Direction: East, TreeCount: 78, FlowerCount: 47, WeedCount: 65},
			{Direction: SouthEast, TreeCount: 90, FlowerCount: 40, WeedCount: 70},
			{Direction: South, TreeCount: 78, FlowerCount: 27, WeedCount: 47},
			{Direction: SouthWest, TreeCount: 83, FlowerCount: 45, WeedCount: 65},
			{Direction: West, TreeCount: 79, FlowerCount: 40, WeedCount: 58},
			{Direction: NorthWest, TreeCount: 88, FlowerCount: 38, WeedCount: 73},
		},
	}
}

// Samples returns the eight samples in canonical direction order.
// The slice is a copy; changing it does not affect the provider.
func (p *PlantDataProvider) Samples() []DirectionSample {
	out := make([]DirectionSample, len(p.samples))
	copy(out, p.samples)
	return out
}

// Sample returns the sample recorded for d.
func (p *PlantDataProvider) Sample(d Direction) (DirectionSample, error) {
	i := d.Index()
	if i < 0 {
		return DirectionSample{}, fmt.Errorf("%w: %q", ErrUnknownDirection, d)
	}
	return p.samples[i], nil
}

// Series returns the values of one category across all directions, in canonical order.
func (p *PlantDataProvider) Series(c Category) ([]int, error) {
	values := make([]int, 0, len(p.samples))
	for _, s := range p.samples {
		v, err := s.Count(c)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
