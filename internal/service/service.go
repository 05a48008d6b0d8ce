// Package service orchestrates validation and estimation for the CLI layer.
package service

import (
	"go.uber.org/zap"

	"github.com/zkcostlab/zkcost/internal/estimation"
	"github.com/zkcostlab/zkcost/internal/gascost"
	"github.com/zkcostlab/zkcost/internal/validator"
)

// EstimatorService validates requests and runs them through the estimation
// core. Validation happens before any arithmetic; an invalid request never
// reaches the estimator.
type EstimatorService struct {
	validator *validator.Validator
	logger    *zap.SugaredLogger
}

func NewEstimatorService() *EstimatorService {
	v := validator.NewValidator()
	v.Register(validator.NewEstimateValidationRules()...)

	return &EstimatorService{
		validator: v,
		logger:    zap.S().Named("estimator"),
	}
}

// Evaluate validates req and computes its estimate.
func (s *EstimatorService) Evaluate(req estimation.Request) (estimation.Result, error) {
	if err := s.validator.Struct(req); err != nil {
		mapped := mapValidationError(err)
		s.logger.Debugw("request rejected", "error", mapped)
		return estimation.Result{}, mapped
	}

	res, err := estimation.Estimate(req)
	if err != nil {
		s.logger.Debugw("estimation failed", "system", req.SystemKey, "error", err)
		return estimation.Result{}, err
	}

	s.logger.Debugw("estimate computed",
		"system", res.System,
		"tx_count", res.TxCount,
		"batches", res.Batches,
		"total_ms", res.TotalMs,
		"total_usd", res.TotalUsd,
	)
	return res, nil
}

// CompareAll validates req, evaluates it against the given systems and
// summarizes the outcome relative to the baseline system.
func (s *EstimatorService) CompareAll(req estimation.Request, systems []string, baseline string) (estimation.Comparison, error) {
	// The request must hold a valid system key for struct validation; the
	// engine substitutes the registered keys anyway.
	req.SystemKey = baseline
	if err := s.validator.Struct(req); err != nil {
		return estimation.Comparison{}, mapValidationError(err)
	}

	engine := estimation.NewEngine()
	seen := make(map[string]bool, len(systems))
	for _, key := range systems {
		if _, err := estimation.LookupProfile(key); err != nil {
			return estimation.Comparison{}, err
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		engine.Register(key)
	}

	results, err := engine.Run(req)
	if err != nil {
		return estimation.Comparison{}, err
	}

	cmp, err := estimation.Compare(results, baseline)
	if err != nil {
		return estimation.Comparison{}, err
	}

	s.logger.Debugw("comparison computed",
		"systems", systems,
		"baseline", baseline,
		"cheapest", cmp.Cheapest,
		"fastest", cmp.Fastest,
	)
	return cmp, nil
}

// EstimateGas computes the on-chain verification cost for a gas scenario.
func (s *EstimatorService) EstimateGas(req gascost.Request) (gascost.Result, error) {
	if err := s.validator.Struct(req); err != nil {
		return gascost.Result{}, mapValidationError(err)
	}

	res, err := gascost.Estimate(req)
	if err != nil {
		return gascost.Result{}, err
	}

	s.logger.Debugw("gas estimate computed",
		"num_proofs", res.NumProofs,
		"total_gas", res.TotalGas,
		"total_usd", res.TotalUsd,
	)
	return res, nil
}
