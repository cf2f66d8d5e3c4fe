// Package constants provides shared constants for the business-calc application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Projection defaults
const (
	// DefaultHorizonMonths is the default projection horizon when the
	// configuration does not request one. The projection always runs at
	// least until loan payoff regardless of this value.
	DefaultHorizonMonths = 120
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
	DefaultConfigFile = "projects.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "projects.yaml.example"
)

// DateTimeLayout is the format for optional project start dates and is
// also the output date format.
const DateTimeLayout = "2006-01"

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Storage constants
const (
	// ProjectKeyPrefix is the Redis key prefix for stored projects
	ProjectKeyPrefix = "project:"

	// ProjectIndexKey is the Redis set holding all known project ids
	ProjectIndexKey = "projects"
)
