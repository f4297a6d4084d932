package config

// Config holds all configuration for the converter.
type Config struct {
	// ModuleDelimiter separates levels inside a module-path cell.
	ModuleDelimiter string

	// RepeatCaseFields controls the table writer: when true the module path,
	// case name, precondition and priority are repeated on every row of a
	// case; when false continuation rows leave them blank.
	RepeatCaseFields bool

	// CaseDepthThreshold is the topic depth (root children are depth 1) at or
	// below which a mind-map topic is always read as a group, never a case.
	CaseDepthThreshold int

	// CaseMarker, when non-empty, is a title prefix that marks a mind-map
	// topic as a case regardless of its shape. The writer prepends it to
	// case topics so the classification survives a round trip.
	CaseMarker string

	// SuiteName names the suite when the source carries no name of its own
	// (tabular sources have none; the CLI overrides this with the file stem).
	SuiteName string

	// IgnoreDirs are directory names skipped during batch discovery.
	IgnoreDirs []string

	// Workers is the number of parallel workers for directory conversions.
	Workers int

	// Flags holds per-invocation command-line state.
	Flags Flags
}

// Flags holds command-line flag values after parsing.
type Flags struct {
	Output     string
	Direction  string
	NameFilter string
	Report     string
	Strict     bool
	StatsOnly  bool
	Steps      bool
	Cases      bool
	FailFast   bool
	Delimiter  string
	NoRepeat   bool
	Depth      int
	Marker     string
	Workers    int
}

// New creates a Config with defaults.
func New() *Config {
	cfg := &Config{
		ModuleDelimiter:    DefaultModuleDelimiter,
		RepeatCaseFields:   DefaultRepeatCaseFields,
		CaseDepthThreshold: DefaultCaseDepthThreshold,
		SuiteName:          DefaultSuiteName,
		Workers:            DefaultWorkers,
	}
	cfg.IgnoreDirs = make([]string, len(DefaultIgnoreDirs))
	copy(cfg.IgnoreDirs, DefaultIgnoreDirs)
	return cfg
}

// Load builds the effective configuration: defaults, then the optional
// config file, then environment variables. Flag overrides are applied later
// by ApplyFlags once cobra has parsed them.
func Load() (*Config, error) {
	cfg := New()
	if err := cfg.applyFile(DefaultConfigFile); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// ApplyFlags records the parsed flags and lets explicitly-set conversion
// options override the file/env configuration.
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Delimiter != "" {
		c.ModuleDelimiter = flags.Delimiter
	}
	if flags.NoRepeat {
		c.RepeatCaseFields = false
	}
	if flags.Depth > 0 {
		c.CaseDepthThreshold = flags.Depth
	}
	if flags.Marker != "" {
		c.CaseMarker = flags.Marker
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
}
