package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// applyEnv overlays TCC_* environment variables onto the config. A .env
// file in the working directory is loaded first; it is fine for it to be
// missing.
func (c *Config) applyEnv() {
	// No .env file is the common case.
	_ = godotenv.Load(DefaultEnvFile)

	if v := os.Getenv("TCC_MODULE_DELIMITER"); v != "" {
		c.ModuleDelimiter = v
	}
	if v := os.Getenv("TCC_REPEAT_CASE_FIELDS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.RepeatCaseFields = b
		}
	}
	if v := os.Getenv("TCC_CASE_DEPTH_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.CaseDepthThreshold = n
		}
	}
	if v := os.Getenv("TCC_CASE_MARKER"); v != "" {
		c.CaseMarker = v
	}
	if v := os.Getenv("TCC_SUITE_NAME"); v != "" {
		c.SuiteName = v
	}
	if v := os.Getenv("TCC_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Workers = n
		}
	}
}
