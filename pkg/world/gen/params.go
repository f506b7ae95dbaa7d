package gen

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is returned when generation parameters cannot produce a world.
var ErrInvalidParams = errors.New("invalid generation parameters")

// Params controls world generation. Every field may be tuned freely; a change
// requires a full regeneration.
type Params struct {
	Width  int
	Height int

	HeightSeed   int64
	MountainSeed int64

	TerrainNoisiness  float64 // spatial frequency of the base terrain
	MountainNoisiness float64 // spatial frequency of the mountains

	TerrainMaxHeight  int
	MountainMaxHeight int // 0 disables mountains

	BaseLevel  int
	WaterLevel int

	TreeProbability  int // one tree per N grass columns on average
	PlantProbability int // one plant per N eligible columns on average
}

// DefaultParams returns the parameters of the stock 150×150 island world.
func DefaultParams() Params {
	return Params{
		Width:             150,
		Height:            150,
		TerrainNoisiness:  4.0,
		MountainNoisiness: 10.0,
		TerrainMaxHeight:  20,
		MountainMaxHeight: 30,
		WaterLevel:        15,
		BaseLevel:         10,
		TreeProbability:   200,
		PlantProbability:  50,
	}
}

// Validate checks the preconditions of Generate. All violations are reported.
func (p Params) Validate() error {
	var errs []error
	if p.Width <= 0 {
		errs = append(errs, fmt.Errorf("%w: width must be positive, got %d", ErrInvalidParams, p.Width))
	}
	if p.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: height must be positive, got %d", ErrInvalidParams, p.Height))
	}
	if p.TreeProbability <= 0 {
		errs = append(errs, fmt.Errorf("%w: tree probability must be positive, got %d", ErrInvalidParams, p.TreeProbability))
	}
	if p.PlantProbability <= 0 {
		errs = append(errs, fmt.Errorf("%w: plant probability must be positive, got %d", ErrInvalidParams, p.PlantProbability))
	}
	return errors.Join(errs...)
}
