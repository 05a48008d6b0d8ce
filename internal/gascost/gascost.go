// Package gascost estimates the on-chain cost of verifying a batch of proofs
// from gas usage, gas price and ETH price.
package gascost

import (
	"github.com/zkcostlab/zkcost/internal/estimation"
)

const (
	// GweiPerEth converts gwei to ETH.
	GweiPerEth = 1e9

	// WarnProofCount is the proof count above which the estimate carries a
	// sanity warning.
	WarnProofCount = 10_000_000
)

// Request is one gas cost scenario. All fields must be positive.
type Request struct {
	NumProofs    int     `json:"numProofs" validate:"gt=0"`
	GasPerProof  int     `json:"gasPerProof" validate:"gt=0"`
	GasPriceGwei float64 `json:"gasPriceGwei" validate:"gt=0"`
	EthPriceUsd  float64 `json:"ethPriceUsd" validate:"gt=0"`
}

// Result is the computed on-chain cost estimate.
type Result struct {
	NumProofs    int     `json:"numProofs"`
	GasPerProof  int     `json:"gasPerProof"`
	TotalGas     int64   `json:"totalGas"`
	GasPriceGwei float64 `json:"gasPriceGwei"`
	EthPriceUsd  float64 `json:"ethPriceUsd"`
	TotalEth     float64 `json:"totalEth"`
	TotalUsd     float64 `json:"totalUsd"`
	Warning      string  `json:"warning,omitempty"`
}

// Estimate computes total gas, ETH and USD cost for the given scenario.
func Estimate(req Request) (Result, error) {
	if req.NumProofs <= 0 {
		return Result{}, estimation.NewErrInvalidParameter("numProofs", "must be positive")
	}
	if req.GasPerProof <= 0 {
		return Result{}, estimation.NewErrInvalidParameter("gasPerProof", "must be positive")
	}
	if req.GasPriceGwei <= 0 {
		return Result{}, estimation.NewErrInvalidParameter("gasPriceGwei", "must be positive")
	}
	if req.EthPriceUsd <= 0 {
		return Result{}, estimation.NewErrInvalidParameter("ethPriceUsd", "must be positive")
	}

	totalGas := int64(req.NumProofs) * int64(req.GasPerProof)
	totalEth := float64(totalGas) * req.GasPriceGwei / GweiPerEth
	totalUsd := totalEth * req.EthPriceUsd

	res := Result{
		NumProofs:    req.NumProofs,
		GasPerProof:  req.GasPerProof,
		TotalGas:     totalGas,
		GasPriceGwei: req.GasPriceGwei,
		EthPriceUsd:  req.EthPriceUsd,
		TotalEth:     totalEth,
		TotalUsd:     totalUsd,
	}
	if req.NumProofs > WarnProofCount {
		res.Warning = "proof count is very large; check that this is intentional"
	}
	return res, nil
}
