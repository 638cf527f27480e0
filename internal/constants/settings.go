package constants

const (
	// Default settings values
	DefaultEmergencyFundTarget = 2000
	DefaultEmergencyFundName   = "Emergency Fund"
	DefaultNightShiftMode      = true

	// Currency used for display formatting
	DisplayCurrency = "GBP"

	// Environment overrides
	EnvDataDir = "LIFEHUB_DATA_DIR"
	EnvStorage = "LIFEHUB_STORAGE"
	EnvDebug   = "LIFEHUB_DEBUG"
)
