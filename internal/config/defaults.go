package config

const (
	// DefaultModuleDelimiter separates module-path levels in tabular cells.
	DefaultModuleDelimiter = "/"
	// DefaultRepeatCaseFields repeats case fields on every row by default.
	DefaultRepeatCaseFields = true
	// DefaultCaseDepthThreshold keeps the first topic level below the root
	// reserved for groups.
	DefaultCaseDepthThreshold = 1
	// DefaultSuiteName names suites read from sources that carry no name.
	DefaultSuiteName = "Test Suite"
	// DefaultWorkers is the worker count for directory conversions.
	DefaultWorkers = 4
	// DefaultConfigFile is the optional per-project configuration file.
	DefaultConfigFile = ".tcconvert.yaml"
	// DefaultEnvFile is loaded best-effort before reading TCC_* variables.
	DefaultEnvFile = ".env"
)

// DefaultIgnoreDirs are the directory names skipped during batch discovery.
var DefaultIgnoreDirs = []string{
	"vendor",
	"node_modules",
}
