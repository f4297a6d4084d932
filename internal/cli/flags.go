package cli

import "github.com/misldy/testcase-converter/internal/config"

// Flags holds command-line flags
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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Output:     f.Output,
		Direction:  f.Direction,
		NameFilter: f.NameFilter,
		Report:     f.Report,
		Strict:     f.Strict,
		StatsOnly:  f.StatsOnly,
		Steps:      f.Steps,
		Cases:      f.Cases,
		FailFast:   f.FailFast,
		Delimiter:  f.Delimiter,
		NoRepeat:   f.NoRepeat,
		Depth:      f.Depth,
		Marker:     f.Marker,
		Workers:    f.Workers,
	}
}
