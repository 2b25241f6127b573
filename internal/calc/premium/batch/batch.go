package batch

import (
	"fmt"

	"TapeLab/internal/calc/properties"
	"TapeLab/internal/tape"
)

type Input struct {
	Items []tape.Config `json:"items"`
}

type Result struct {
	Results []properties.Result `json:"results"`
}

// Calculate evaluates every configuration in order. Evaluations are
// independent pure functions over immutable reference data.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]properties.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := properties.Calculate(item)
		if err != nil {
			return Result{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
