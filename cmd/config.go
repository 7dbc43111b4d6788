package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stocklab/restock/mdp"
	"github.com/stocklab/restock/transport"
)

// addConfigFlags registers the inventory-problem flags shared by the solve
// and simulate commands. Defaults follow the reference parameterization;
// RESTOCK_* environment variables override the defaults and flags override
// both.
func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.Int("capacity", 100, "maximum inventory capacity")
	flags.Float64("order-cost", 50, "fixed cost per non-zero order")
	flags.Float64("unit-cost", 5, "variable cost per ordered unit")
	flags.Float64("holding-cost", 2, "holding cost per unit per period")
	flags.Float64("stockout-cost", 20, "penalty per unit of unmet demand")
	flags.Float64("price", 15, "selling price per unit")
	flags.Float64("demand-mean", 10, "mean of the demand distribution")
	flags.Float64("demand-std", 3, "std of the demand distribution")
	flags.Float64("gamma", 0.95, "discount factor")
	flags.String("transport-table", "",
		"YAML file overriding the transport-mode table")
}

func loadConfig(cmd *cobra.Command) (mdp.Config, error) {
	cfg := mdp.DefaultConfig()

	intFromEnv("RESTOCK_CAPACITY", &cfg.MaxInventory)
	floatFromEnv("RESTOCK_ORDER_COST", &cfg.OrderCost)
	floatFromEnv("RESTOCK_UNIT_COST", &cfg.UnitOrderCost)
	floatFromEnv("RESTOCK_HOLDING_COST", &cfg.HoldingCost)
	floatFromEnv("RESTOCK_STOCKOUT_COST", &cfg.StockoutCost)
	floatFromEnv("RESTOCK_PRICE", &cfg.SellingPrice)
	floatFromEnv("RESTOCK_DEMAND_MEAN", &cfg.DemandMean)
	floatFromEnv("RESTOCK_DEMAND_STD", &cfg.DemandStd)
	floatFromEnv("RESTOCK_GAMMA", &cfg.Gamma)

	flags := cmd.Flags()

	if flags.Changed("capacity") {
		cfg.MaxInventory, _ = flags.GetInt("capacity")
	}
	if flags.Changed("order-cost") {
		cfg.OrderCost, _ = flags.GetFloat64("order-cost")
	}
	if flags.Changed("unit-cost") {
		cfg.UnitOrderCost, _ = flags.GetFloat64("unit-cost")
	}
	if flags.Changed("holding-cost") {
		cfg.HoldingCost, _ = flags.GetFloat64("holding-cost")
	}
	if flags.Changed("stockout-cost") {
		cfg.StockoutCost, _ = flags.GetFloat64("stockout-cost")
	}
	if flags.Changed("price") {
		cfg.SellingPrice, _ = flags.GetFloat64("price")
	}
	if flags.Changed("demand-mean") {
		cfg.DemandMean, _ = flags.GetFloat64("demand-mean")
	}
	if flags.Changed("demand-std") {
		cfg.DemandStd, _ = flags.GetFloat64("demand-std")
	}
	if flags.Changed("gamma") {
		cfg.Gamma, _ = flags.GetFloat64("gamma")
	}

	return cfg, cfg.Validate()
}

func loadTransportTable(cmd *cobra.Command) (transport.Table, error) {
	path, _ := cmd.Flags().GetString("transport-table")
	if path == "" {
		return transport.DefaultTable(), nil
	}

	return transport.LoadFile(path)
}

func floatFromEnv(name string, target *float64) {
	if raw, ok := os.LookupEnv(name); ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			*target = v
		}
	}
}

func intFromEnv(name string, target *int) {
	if raw, ok := os.LookupEnv(name); ok {
		if v, err := strconv.Atoi(raw); err == nil {
			*target = v
		}
	}
}
