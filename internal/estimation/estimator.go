package estimation

const (
	// ReferenceTxVolume is the transaction volume at which the volume factor
	// is exactly 1.0.
	ReferenceTxVolume = 10_000

	// MinVolumeFactor and MaxVolumeFactor bound the volume curve.
	MinVolumeFactor = 0.80
	MaxVolumeFactor = 1.25
)

// Estimate derives a Result for the given Request.
//
// Validation is normally performed by the caller; Estimate still rejects
// out-of-domain values so that a division by zero can never be reached.
func Estimate(req Request) (Result, error) {
	if req.TxCount <= 0 {
		return Result{}, NewErrInvalidParameter("txCount", "must be positive")
	}
	if req.BatchSize <= 0 {
		return Result{}, NewErrInvalidParameter("batchSize", "must be positive")
	}
	if req.HardwareScale <= 0 {
		return Result{}, NewErrInvalidParameter("hardwareScale", "must be positive")
	}

	profile, err := LookupProfile(req.SystemKey)
	if err != nil {
		return Result{}, err
	}

	secFactor, ok := profile.SecurityScaling[req.SecurityBits]
	if !ok {
		return Result{}, NewErrUnsupportedSecurityLevel(req.SecurityBits)
	}

	// A partial final batch still consumes one full proof.
	batches := (req.TxCount + req.BatchSize - 1) / req.BatchSize

	volumeFactor := VolumeFactor(profile, req.TxCount)

	perProofMs := profile.BaseMsPerProof * secFactor * volumeFactor / req.HardwareScale
	perProofUsd := profile.BaseUsdPerProof * secFactor * volumeFactor / req.HardwareScale

	totalMs := perProofMs * float64(batches)
	totalUsd := perProofUsd * float64(batches)

	return Result{
		System:        profile.Key,
		SystemName:    profile.DisplayName,
		Family:        profile.Family,
		Description:   profile.Description,
		SecurityBits:  req.SecurityBits,
		TxCount:       req.TxCount,
		BatchSize:     req.BatchSize,
		Batches:       batches,
		HardwareScale: req.HardwareScale,
		PerProofMs:    perProofMs,
		PerProofUsd:   perProofUsd,
		TotalMs:       totalMs,
		TotalUsd:      totalUsd,
		PerTxMs:       totalMs / float64(req.TxCount),
		PerTxUsd:      totalUsd / float64(req.TxCount),
		VolumeFactor:  volumeFactor,
	}, nil
}

// VolumeFactor models how per-proof cost and latency shift with total
// transaction volume. The curve is linear in volume with a profile-specific
// slope, equal to 1.0 at ReferenceTxVolume and clamped to
// [MinVolumeFactor, MaxVolumeFactor]. A positive slope keeps it monotonic
// non-decreasing in txCount; clamping preserves that.
func VolumeFactor(profile SystemProfile, txCount int) float64 {
	relative := float64(txCount-ReferenceTxVolume) / float64(ReferenceTxVolume)
	return clamp(1.0+profile.VolumeSlope*relative, MinVolumeFactor, MaxVolumeFactor)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
