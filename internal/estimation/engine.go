package estimation

import (
	"fmt"
	"sort"
)

// Engine evaluates one scenario against a set of proving systems and
// aggregates the results for comparison.
type Engine struct {
	systems []string
}

// NewEngine creates an Engine with no systems registered.
func NewEngine() *Engine {
	return &Engine{
		systems: make([]string, 0),
	}
}

// Register adds a proving system to participate in the comparison.
// Register panics if the key is already registered, as duplicate keys would
// silently overwrite results in Run.
func (e *Engine) Register(key string) {
	for _, existing := range e.systems {
		if existing == key {
			panic(fmt.Sprintf("estimation: system %q already registered", key))
		}
	}
	e.systems = append(e.systems, key)
}

// Systems returns the registered system keys in registration order.
func (e *Engine) Systems() []string {
	return e.systems
}

// Run evaluates the scenario against every registered system. The system key
// carried by req is ignored; each registered key is substituted in turn.
// The first failing evaluation aborts the run.
func (e *Engine) Run(req Request) (map[string]Result, error) {
	results := make(map[string]Result, len(e.systems))
	for _, key := range e.systems {
		scenario := req
		scenario.SystemKey = key
		res, err := Estimate(scenario)
		if err != nil {
			return nil, fmt.Errorf("estimating system %s: %w", key, err)
		}
		results[key] = res
	}
	return results, nil
}

// Delta captures how one system's totals compare to the baseline system.
type Delta struct {
	System        string  `json:"system"`
	TotalMsDelta  float64 `json:"totalMsDelta"`
	TotalUsdDelta float64 `json:"totalUsdDelta"`
	Verdict       string  `json:"verdict"`
}

// Comparison summarizes a multi-system run relative to a baseline.
type Comparison struct {
	Baseline string            `json:"baseline"`
	Results  map[string]Result `json:"results"`
	Deltas   []Delta           `json:"deltas"`
	Cheapest string            `json:"cheapest"`
	Fastest  string            `json:"fastest"`
}

// Compare builds a Comparison from a Run result set. The baseline key must be
// present in results. Deltas are sorted by system key so output is stable.
func Compare(results map[string]Result, baseline string) (Comparison, error) {
	base, ok := results[baseline]
	if !ok {
		return Comparison{}, fmt.Errorf("baseline system %s not present in results", baseline)
	}

	keys := make([]string, 0, len(results))
	for k := range results {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cmp := Comparison{
		Baseline: baseline,
		Results:  results,
		Deltas:   make([]Delta, 0, len(results)),
		Cheapest: baseline,
		Fastest:  baseline,
	}
	for _, k := range keys {
		res := results[k]
		cmp.Deltas = append(cmp.Deltas, Delta{
			System:        k,
			TotalMsDelta:  res.TotalMs - base.TotalMs,
			TotalUsdDelta: res.TotalUsd - base.TotalUsd,
			Verdict:       verdict(res.TotalUsd - base.TotalUsd),
		})
		if res.TotalUsd < results[cmp.Cheapest].TotalUsd {
			cmp.Cheapest = k
		}
		if res.TotalMs < results[cmp.Fastest].TotalMs {
			cmp.Fastest = k
		}
	}
	return cmp, nil
}

func verdict(usdDelta float64) string {
	switch {
	case usdDelta > 0:
		return "more expensive"
	case usdDelta < 0:
		return "cheaper"
	default:
		return "equal"
	}
}
