package internal

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// How far the synthetic base points reach beyond the bounding box, as a
	// fraction of its size.
	DefaultBaseExpansion = 0.3
	// Slope of the shear y' = y + x*eps that breaks ties between equal y values.
	DefaultShearEpsilon = 1e-5
	// Below this many points, sorting uses insertion sort instead of merge sort.
	DefaultInsertionSortThreshold = 10
)

type Config struct {
	BaseExpansion          float64 `yaml:"base_expansion"`
	ShearEpsilon           float64 `yaml:"shear_epsilon"`
	InsertionSortThreshold int     `yaml:"insertion_sort_threshold"`
	// Run Validate after every swept point. Slow, meant for tests and debugging.
	CheckInvariants bool `yaml:"check_invariants"`
}

func DefaultConfig() Config {
	return Config{
		BaseExpansion:          DefaultBaseExpansion,
		ShearEpsilon:           DefaultShearEpsilon,
		InsertionSortThreshold: DefaultInsertionSortThreshold,
	}
}

func (c Config) Validate() error {
	if !(c.BaseExpansion > 0) || math.IsInf(c.BaseExpansion, 0) {
		return errors.Wrapf(ErrInvalidConfig, "base expansion must be positive and finite, got %g", c.BaseExpansion)
	}
	if math.IsNaN(c.ShearEpsilon) || math.IsInf(c.ShearEpsilon, 0) {
		return errors.Wrapf(ErrInvalidConfig, "shear epsilon must be finite, got %g", c.ShearEpsilon)
	}
	if c.InsertionSortThreshold < 0 {
		return errors.Wrapf(ErrInvalidConfig, "insertion sort threshold must not be negative, got %d", c.InsertionSortThreshold)
	}
	return nil
}
