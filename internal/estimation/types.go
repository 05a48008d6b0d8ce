package estimation

// Request is one validated estimation scenario.
//
// The validate tags describe the numeric domains; custom tags (system_key,
// security_bits) are registered by the validator package. Callers are
// expected to validate a Request before handing it to Estimate.
type Request struct {
	TxCount       int     `json:"txCount" validate:"gt=0"`
	SystemKey     string  `json:"system" validate:"required,system_key"`
	BatchSize     int     `json:"batchSize" validate:"gt=0"`
	SecurityBits  int     `json:"securityBits" validate:"security_bits"`
	HardwareScale float64 `json:"hardwareScale" validate:"gt=0"`
}

// Result is the fully computed estimate for one Request. It is derived
// entirely from the Request and the matching SystemProfile; once produced it
// is never modified.
type Result struct {
	System        string  `json:"system"`
	SystemName    string  `json:"systemName"`
	Family        string  `json:"family"`
	Description   string  `json:"description"`
	SecurityBits  int     `json:"securityBits"`
	TxCount       int     `json:"txCount"`
	BatchSize     int     `json:"batchSize"`
	Batches       int     `json:"batches"`
	HardwareScale float64 `json:"hardwareScale"`
	PerProofMs    float64 `json:"perProofMs"`
	PerProofUsd   float64 `json:"perProofUsd"`
	TotalMs       float64 `json:"totalMs"`
	TotalUsd      float64 `json:"totalUsd"`
	PerTxMs       float64 `json:"perTxMs"`
	PerTxUsd      float64 `json:"perTxUsd"`
	VolumeFactor  float64 `json:"volumeFactor"`
}
