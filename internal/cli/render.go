package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/changekit/coinchange"
	"github.com/katalvlaran/changekit/internal/config"
	"gopkg.in/yaml.v3"
)

const noSolution = "no solution"

// changeReport is the solve/table view of one amount.
type changeReport struct {
	Amount   int         `json:"amount" yaml:"amount"`
	Feasible bool        `json:"feasible" yaml:"feasible"`
	Count    int         `json:"count" yaml:"count"`
	Coins    []int       `json:"coins" yaml:"coins"`
	Tally    map[int]int `json:"tally,omitempty" yaml:"tally,omitempty"`
}

func newChangeReport(amount int, coins []int, ok bool) changeReport {
	r := changeReport{Amount: amount, Feasible: ok}
	if ok {
		r.Count = len(coins)
		r.Coins = coins
		if len(coins) > 0 {
			r.Tally = coinchange.Tally(coins)
		}
	}

	return r
}

func (r changeReport) text() string {
	switch {
	case !r.Feasible:
		return fmt.Sprintf("%d: %s", r.Amount, noSolution)
	case r.Count == 0:
		return fmt.Sprintf("%d: no coins needed", r.Amount)
	default:
		return fmt.Sprintf("%d = %s (%d coins)", r.Amount, joinInts(r.Coins, " + "), r.Count)
	}
}

type countReport struct {
	Amount   int  `json:"amount" yaml:"amount"`
	Feasible bool `json:"feasible" yaml:"feasible"`
	Count    int  `json:"count" yaml:"count"`
}

type verifyReport struct {
	Amount  int   `json:"amount" yaml:"amount"`
	Coins   []int `json:"coins" yaml:"coins"`
	Valid   bool  `json:"valid" yaml:"valid"`
	Optimal bool  `json:"optimal" yaml:"optimal"`
	Minimum int   `json:"minimum" yaml:"minimum"`
}

func (r verifyReport) text() string {
	if r.Optimal {
		return fmt.Sprintf("valid, optimal (%d coins)", r.Minimum)
	}

	return fmt.Sprintf("valid, not optimal: %d coins, minimum %d", len(r.Coins), r.Minimum)
}

// render writes v in the configured output format; text uses textFn.
func (a *app) render(w io.Writer, v any, textFn func(io.Writer) error) error {
	switch strings.ToLower(a.cfg.Output) {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return textFn(w)
	}
}

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, sep)
}
