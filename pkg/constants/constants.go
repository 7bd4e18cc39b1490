// Package constants provides shared constants for the immoforecast application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// NotaryFeeRate is the default notary fee as a fraction of the purchase price
	NotaryFeeRate = 0.08

	// ProjectionYears is the fixed wealth-projection horizon
	ProjectionYears = 20

	// AppreciationRate is the assumed nominal annual asset appreciation (1%)
	AppreciationRate = 0.01
)

// Share token limits, enforced on untrusted input before any deep processing.
const (
	// MaxShareNameLength caps the simulation name carried in a share token
	MaxShareNameLength = 100

	// MaxShareArrayLength caps the loyers and charges arrays in a share token
	MaxShareArrayLength = 100

	// MaxShareValue bounds every numeric field in a share token
	MaxShareValue = 1e9

	// MinShareValue bounds every numeric field in a share token
	MinShareValue = -1e9

	// MaxShareTokenBytes caps the encoded token length accepted by the decoder
	MaxShareTokenBytes = 64 * 1024
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)
