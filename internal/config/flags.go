package config

import (
	"github.com/pagekit/pagekit/internal/config/data"
)

// DefaultLogLevel is the default logging level.
const DefaultLogLevel = "info"

// NewFlags creates a new Flags instance with default values set.
func NewFlags() *data.Flags {
	logLevel := DefaultLogLevel
	logFile := ""
	configFile := ""
	stateFile := ""
	compare := ""
	highlight := ""
	infer := false
	patch := false
	out := ""

	return &data.Flags{
		LogLevel:  &logLevel,
		LogFile:   &logFile,
		Config:    &configFile,
		StateFile: &stateFile,
		Compare:   &compare,
		Highlight: &highlight,
		Infer:     &infer,
		Patch:     &patch,
		Out:       &out,
	}
}

// IsBoolSet returns true if a bool pointer is non-nil and true.
func IsBoolSet(b *bool) bool {
	return b != nil && *b
}

// IsStringSet returns true if a string pointer is non-nil and non-empty.
func IsStringSet(s *string) bool {
	return s != nil && *s != ""
}
