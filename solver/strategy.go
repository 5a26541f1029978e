package solver

import (
	"fmt"
	"strings"
)

// Strategy selects how the depth-first walk is driven.
type Strategy int

const (
	// StrategyRecursive walks the tree with plain recursion.
	StrategyRecursive Strategy = iota
	// StrategyStack walks the tree with an explicit frame stack.
	StrategyStack
)

var strategyNames = map[Strategy]string{
	StrategyRecursive: "recursive",
	StrategyStack:     "stack",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy converts a strategy name into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for strategy, n := range strategyNames {
		if n == name {
			return strategy, nil
		}
	}
	return StrategyRecursive, fmt.Errorf("unknown strategy: %q", s)
}
