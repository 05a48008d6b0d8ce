package estimation

import "sort"

// Supported security levels in bits.
const (
	SecurityBits128 = 128
	SecurityBits192 = 192
	SecurityBits256 = 256
)

// SystemProfile describes the baseline performance characteristics of one
// proving-system family. Profiles are plain data: differences between systems
// are entirely data-driven, not behavioral.
type SystemProfile struct {
	Key             string
	DisplayName     string
	Family          string
	Description     string
	BaseMsPerProof  float64
	BaseUsdPerProof float64
	// SecurityScaling maps a supported security-bit level to the multiplicative
	// factor applied to both latency and cost at that level.
	SecurityScaling map[int]float64
	// VolumeSlope controls how fast the volume factor grows per reference
	// volume of transactions. Must be positive.
	VolumeSlope float64
}

// profiles is the process-wide profile table. It is fully enumerated here and
// must never be mutated at runtime; extending the tool means extending this
// table, not adding behavior.
var profiles = map[string]SystemProfile{
	"aztec": {
		Key:             "aztec",
		DisplayName:     "Aztec-style zk SNARK System",
		Family:          "zk-snark",
		Description:     "Privacy-focused zk rollup proving for encrypted state and contracts.",
		BaseMsPerProof:  420.0,
		BaseUsdPerProof: 0.18,
		SecurityScaling: map[int]float64{
			SecurityBits128: 1.0,
			SecurityBits192: 1.35,
			SecurityBits256: 1.70,
		},
		VolumeSlope: 0.020,
	},
	"zama": {
		Key:             "zama",
		DisplayName:     "Zama-style FHE + Proof Hybrid",
		Family:          "fhe-hybrid",
		Description:     "FHE-heavy design where zk proofs attest to encrypted compute pipelines.",
		BaseMsPerProof:  780.0,
		BaseUsdPerProof: 0.35,
		SecurityScaling: map[int]float64{
			SecurityBits128: 1.0,
			SecurityBits192: 1.30,
			SecurityBits256: 1.62,
		},
		VolumeSlope: 0.035,
	},
	"soundness": {
		Key:             "soundness",
		DisplayName:     "Soundness-first Minimal Circuit System",
		Family:          "verified-zk",
		Description:     "Formally specified circuits tuned for clarity and soundness over raw speed.",
		BaseMsPerProof:  500.0,
		BaseUsdPerProof: 0.22,
		SecurityScaling: map[int]float64{
			SecurityBits128: 1.0,
			SecurityBits192: 1.40,
			SecurityBits256: 1.85,
		},
		VolumeSlope: 0.015,
	},
}

// LookupProfile returns the profile registered for key.
func LookupProfile(key string) (SystemProfile, error) {
	p, ok := profiles[key]
	if !ok {
		return SystemProfile{}, NewErrUnknownSystem(key)
	}
	return p, nil
}

// SystemKeys returns the sorted list of valid profile keys.
func SystemKeys() []string {
	keys := make([]string, 0, len(profiles))
	for k := range profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Profiles returns all registered profiles sorted by key.
func Profiles() []SystemProfile {
	out := make([]SystemProfile, 0, len(profiles))
	for _, k := range SystemKeys() {
		out = append(out, profiles[k])
	}
	return out
}

// SupportedSecurityBits returns the sorted list of supported security levels.
func SupportedSecurityBits() []int {
	return []int{SecurityBits128, SecurityBits192, SecurityBits256}
}
