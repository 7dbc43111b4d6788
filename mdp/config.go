package mdp

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by all configuration validation errors.
var ErrInvalidConfig = errors.New("invalid configuration")

// A Config holds the parameters of one inventory problem. A Config is
// immutable once handed to a Solver.
type Config struct {
	// MaxInventory is the warehouse capacity. States range over
	// [0, MaxInventory] and an action can never order above capacity.
	MaxInventory int `json:"max_inventory"`

	// OrderCost is the fixed cost charged once per non-zero order.
	OrderCost float64 `json:"order_cost"`

	// UnitOrderCost is the variable cost charged per ordered unit.
	UnitOrderCost float64 `json:"unit_order_cost"`

	HoldingCost  float64 `json:"holding_cost"`
	StockoutCost float64 `json:"stockout_cost"`
	SellingPrice float64 `json:"selling_price"`

	DemandMean float64 `json:"demand_mean"`
	DemandStd  float64 `json:"demand_std"`

	// Gamma is the discount factor, in (0, 1].
	Gamma float64 `json:"gamma"`
}

// DefaultConfig returns the reference parameterization.
func DefaultConfig() Config {
	return Config{
		MaxInventory:  100,
		OrderCost:     50,
		UnitOrderCost: 5,
		HoldingCost:   2,
		StockoutCost:  20,
		SellingPrice:  15,
		DemandMean:    10,
		DemandStd:     3,
		Gamma:         0.95,
	}
}

// Validate checks the numeric constraints on the configuration. It returns
// an error wrapping ErrInvalidConfig for the first violated constraint.
func (c Config) Validate() error {
	if c.MaxInventory <= 0 {
		return fmt.Errorf("%w: max inventory must be positive, got %d",
			ErrInvalidConfig, c.MaxInventory)
	}

	if c.DemandStd <= 0 {
		return fmt.Errorf("%w: demand std must be positive, got %g",
			ErrInvalidConfig, c.DemandStd)
	}

	if c.Gamma <= 0 || c.Gamma > 1 {
		return fmt.Errorf("%w: gamma must be in (0, 1], got %g",
			ErrInvalidConfig, c.Gamma)
	}

	return nil
}
