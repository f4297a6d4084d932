package domain

// ReportMeta aggregates a conversion run.
type ReportMeta struct {
	TotalInputs     int     `json:"total_inputs"`
	Converted       int     `json:"converted"`
	Failed          int     `json:"failed"`
	Groups          int     `json:"groups"`
	Cases           int     `json:"cases"`
	Steps           int     `json:"steps"`
	Warnings        int     `json:"warnings"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// ReportEntry records the outcome for one input file.
type ReportEntry struct {
	Input     string   `json:"input"`
	Output    string   `json:"output,omitempty"`
	Direction string   `json:"direction"`
	Groups    int      `json:"groups"`
	Cases     int      `json:"cases"`
	Steps     int      `json:"steps"`
	Warnings  []string `json:"warnings,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// Report is the JSON document written for convert --report.
type Report struct {
	Meta    ReportMeta    `json:"meta"`
	Details []ReportEntry `json:"details"`
}
