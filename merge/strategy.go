package merge

import (
	"errors"
	"fmt"
)

// Strategy selects how same-target conflicts resolve, once for the
// whole merge.
type Strategy string

const (
	// StrategyError aborts the merge on any conflict.
	StrategyError Strategy = "error"
	// StrategyFirst keeps the earliest-encountered instruction.
	StrategyFirst Strategy = "first"
	// StrategyLast keeps the latest, replacing the earlier in place.
	StrategyLast Strategy = "last"
	// StrategyCombine concatenates conflicting plain comments and
	// falls back to first semantics for everything else.
	StrategyCombine Strategy = "combine"
)

var ErrBadStrategy = errors.New("bad merge strategy")

func ParseStrategy(v string) (Strategy, error) {
	switch Strategy(v) {
	case StrategyError, StrategyFirst, StrategyLast, StrategyCombine:
		return Strategy(v), nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadStrategy, v)
}

// Resolution records how one conflict was settled.
type Resolution string

const (
	ResolutionFirst      Resolution = "first"
	ResolutionLast       Resolution = "last"
	ResolutionCombined   Resolution = "combined"
	ResolutionUnresolved Resolution = "unresolved"
)
