package parameter

// Configuration surface bounds
const (
	MinFeatureLengthLow  = 1
	MinFeatureLengthHigh = 1000

	BatchSizeLow  = 1
	BatchSizeHigh = 100

	CapacityCapLow  = 100
	CapacityCapHigh = 10_000

	// SlowFeatureLength triggers the density warning in the menu
	SlowFeatureLength = 50
)

// Defaults restored by the menu reset action
const (
	DefaultBatchSize        = 28
	DefaultMinFeatureLength = 100
	DefaultCapacityCap      = 2000
)

// HUD layout
const (
	HUDHeight   = 1
	MenuWidth   = 60
	MenuPadding = 2
)
