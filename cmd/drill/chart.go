package main

import (
	"fmt"

	"pokertrainer-server/pkg/preflop"
)

// ChartCmd prints range charts
type ChartCmd struct {
	Stack []int `arg:"" optional:"" help:"Stack depths in big blinds (default: all)"`
}

// Run prints a chart per stack depth
func (c *ChartCmd) Run() error {
	depths := c.Stack
	if len(depths) == 0 {
		depths = preflop.StackDepths()
	}

	for _, depth := range depths {
		rt, ok := preflop.HeadsUpSB(depth)
		if !ok {
			return fmt.Errorf("no range for %dbb, expected one of %v", depth, preflop.StackDepths())
		}

		fmt.Println(renderChart(rt.Chart()))
		fmt.Println()
	}

	return nil
}
