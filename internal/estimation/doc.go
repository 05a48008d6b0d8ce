// Package estimation implements the proving cost estimator core.
//
// The package is pure: given a validated Request and the static proving-system
// profile table it deterministically derives per-proof, per-transaction and
// aggregate cost/latency figures. Profile data never changes after process
// start, so concurrent estimations need no synchronization.
package estimation
