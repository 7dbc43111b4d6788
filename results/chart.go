package results

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderCharts writes an HTML page with two line charts: the convergence
// delta per sweep and the value function/policy per inventory level.
func (r ResultSet) RenderCharts(path string) error {
	page := components.NewPage()
	page.AddCharts(r.convergenceChart(), r.policyChart())

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	defer file.Close()

	if err := page.Render(file); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}

	return nil
}

func (r ResultSet) convergenceChart() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Value-iteration convergence",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	var sweeps []string
	items := make([]opts.LineData, 0, len(r.Convergence.DeltaHistory))

	for i, delta := range r.Convergence.DeltaHistory {
		sweeps = append(sweeps, fmt.Sprintf("%d", i+1))
		items = append(items, opts.LineData{Value: delta})
	}

	line.SetXAxis(sweeps)
	line.AddSeries("delta", items)

	return line
}

func (r ResultSet) policyChart() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Value function and policy",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	var states []string
	values := make([]opts.LineData, 0, len(r.ValueFunction))
	actions := make([]opts.LineData, 0, len(r.Policy))

	for state := range r.ValueFunction {
		states = append(states, fmt.Sprintf("%d", state))
		values = append(values, opts.LineData{Value: r.ValueFunction[state]})
		actions = append(actions, opts.LineData{Value: r.Policy[state]})
	}

	line.SetXAxis(states)
	line.AddSeries("value", values)
	line.AddSeries("order quantity", actions)

	return line
}
