package estimation

import (
	"errors"
	"math"
	"testing"
)

func validRequest() Request {
	return Request{
		TxCount:       10000,
		SystemKey:     "aztec",
		BatchSize:     500,
		SecurityBits:  128,
		HardwareScale: 1.0,
	}
}

func TestEstimate_BatchCount(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		txCount   int
		batchSize int
		want      int
	}{
		{name: "exact division", txCount: 10000, batchSize: 500, want: 20},
		{name: "partial final batch", txCount: 8000, batchSize: 256, want: 32},
		{name: "batch larger than volume", txCount: 10, batchSize: 500, want: 1},
		{name: "single tx", txCount: 1, batchSize: 1, want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			req.TxCount = tc.txCount
			req.BatchSize = tc.batchSize
			res, err := Estimate(req)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if res.Batches != tc.want {
				t.Errorf("expected %d batches, got %d", tc.want, res.Batches)
			}
		})
	}
}

func TestEstimate_AggregatesConsistent(t *testing.T) {
	t.Parallel()
	req := validRequest()
	req.TxCount = 8000
	req.BatchSize = 256

	res, err := Estimate(req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if got, want := res.TotalMs, res.PerProofMs*float64(res.Batches); got != want {
		t.Errorf("TotalMs: expected %v, got %v", want, got)
	}
	if got, want := res.TotalUsd, res.PerProofUsd*float64(res.Batches); got != want {
		t.Errorf("TotalUsd: expected %v, got %v", want, got)
	}
	if got, want := res.PerTxMs, res.TotalMs/float64(res.TxCount); got != want {
		t.Errorf("PerTxMs: expected %v, got %v", want, got)
	}
	if got, want := res.PerTxUsd, res.TotalUsd/float64(res.TxCount); got != want {
		t.Errorf("PerTxUsd: expected %v, got %v", want, got)
	}
}

func TestEstimate_ReferencePoint(t *testing.T) {
	t.Parallel()
	// At 128-bit security and reference hardware, per-proof values reduce to
	// base * volumeFactor.
	for _, profile := range Profiles() {
		req := validRequest()
		req.SystemKey = profile.Key

		res, err := Estimate(req)
		if err != nil {
			t.Fatalf("%s: expected no error, got: %v", profile.Key, err)
		}

		vf := VolumeFactor(profile, req.TxCount)
		if got, want := res.PerProofMs, profile.BaseMsPerProof*vf; math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: PerProofMs expected %v, got %v", profile.Key, want, got)
		}
		if got, want := res.PerProofUsd, profile.BaseUsdPerProof*vf; math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: PerProofUsd expected %v, got %v", profile.Key, want, got)
		}
	}
}

func TestEstimate_HardwareScaleStrictlyDecreases(t *testing.T) {
	t.Parallel()
	req := validRequest()
	slow, err := Estimate(req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	req.HardwareScale = 2.0
	fast, err := Estimate(req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if fast.PerProofMs >= slow.PerProofMs {
		t.Errorf("expected PerProofMs to strictly decrease: %v >= %v", fast.PerProofMs, slow.PerProofMs)
	}
	if fast.PerProofUsd >= slow.PerProofUsd {
		t.Errorf("expected PerProofUsd to strictly decrease: %v >= %v", fast.PerProofUsd, slow.PerProofUsd)
	}
}

func TestEstimate_SecurityBitsNeverDecrease(t *testing.T) {
	t.Parallel()
	for _, profile := range Profiles() {
		prevMs, prevUsd := 0.0, 0.0
		for _, bits := range SupportedSecurityBits() {
			req := validRequest()
			req.SystemKey = profile.Key
			req.SecurityBits = bits

			res, err := Estimate(req)
			if err != nil {
				t.Fatalf("%s/%d: expected no error, got: %v", profile.Key, bits, err)
			}
			if res.PerProofMs < prevMs {
				t.Errorf("%s: PerProofMs decreased at %d bits: %v < %v", profile.Key, bits, res.PerProofMs, prevMs)
			}
			if res.PerProofUsd < prevUsd {
				t.Errorf("%s: PerProofUsd decreased at %d bits: %v < %v", profile.Key, bits, res.PerProofUsd, prevUsd)
			}
			prevMs, prevUsd = res.PerProofMs, res.PerProofUsd
		}
	}
}

func TestEstimate_Idempotent(t *testing.T) {
	t.Parallel()
	req := validRequest()
	req.TxCount = 12345
	req.BatchSize = 77
	req.SecurityBits = 192
	req.HardwareScale = 1.5

	first, err := Estimate(req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	second, err := Estimate(req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if first != second {
		t.Errorf("expected bit-identical results, got %+v vs %+v", first, second)
	}
}

func TestEstimate_InvalidInputs(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		mutate func(*Request)
		want   any
	}{
		{
			name:   "zero tx count",
			mutate: func(r *Request) { r.TxCount = 0 },
			want:   &ErrInvalidParameter{},
		},
		{
			name:   "negative tx count",
			mutate: func(r *Request) { r.TxCount = -5 },
			want:   &ErrInvalidParameter{},
		},
		{
			name:   "zero batch size",
			mutate: func(r *Request) { r.BatchSize = 0 },
			want:   &ErrInvalidParameter{},
		},
		{
			name:   "non-positive hardware scale",
			mutate: func(r *Request) { r.HardwareScale = 0 },
			want:   &ErrInvalidParameter{},
		},
		{
			name:   "unknown system",
			mutate: func(r *Request) { r.SystemKey = "unknown" },
			want:   &ErrUnknownSystem{},
		},
		{
			name:   "unsupported security level",
			mutate: func(r *Request) { r.SecurityBits = 100 },
			want:   &ErrUnsupportedSecurityLevel{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := Estimate(req)
			if err == nil {
				t.Fatal("expected error, got none")
			}
			switch tc.want.(type) {
			case *ErrInvalidParameter:
				var target *ErrInvalidParameter
				if !errors.As(err, &target) {
					t.Errorf("expected ErrInvalidParameter, got %T: %v", err, err)
				}
			case *ErrUnknownSystem:
				var target *ErrUnknownSystem
				if !errors.As(err, &target) {
					t.Errorf("expected ErrUnknownSystem, got %T: %v", err, err)
				}
			case *ErrUnsupportedSecurityLevel:
				var target *ErrUnsupportedSecurityLevel
				if !errors.As(err, &target) {
					t.Errorf("expected ErrUnsupportedSecurityLevel, got %T: %v", err, err)
				}
			}
		})
	}
}

func TestVolumeFactor_Properties(t *testing.T) {
	t.Parallel()
	for _, profile := range Profiles() {
		if got := VolumeFactor(profile, ReferenceTxVolume); got != 1.0 {
			t.Errorf("%s: expected volume factor 1.0 at reference volume, got %v", profile.Key, got)
		}

		// Monotonic non-decreasing across a broad sweep.
		prev := 0.0
		for _, tx := range []int{1, 100, 1000, 5000, 10000, 50000, 100000, 1000000} {
			vf := VolumeFactor(profile, tx)
			if vf < prev {
				t.Errorf("%s: volume factor decreased at tx=%d: %v < %v", profile.Key, tx, vf, prev)
			}
			if vf < MinVolumeFactor || vf > MaxVolumeFactor {
				t.Errorf("%s: volume factor out of bounds at tx=%d: %v", profile.Key, tx, vf)
			}
			prev = vf
		}
	}
}

func TestEstimate_ConcurrentUse(t *testing.T) {
	t.Parallel()
	req := validRequest()
	want, err := Estimate(req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	done := make(chan Result, 16)
	for i := 0; i < 16; i++ {
		go func() {
			res, err := Estimate(req)
			if err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
			done <- res
		}()
	}
	for i := 0; i < 16; i++ {
		if got := <-done; got != want {
			t.Errorf("concurrent result mismatch: %+v != %+v", got, want)
		}
	}
}
