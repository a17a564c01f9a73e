// Package data provides configuration data types for the pagekit application.
package data

// Flags represents CLI command-line flags for the pagekit application.
type Flags struct {
	LogLevel  *string // Log level (e.g., debug, info, warn, error)
	LogFile   *string // Path to log file
	Config    *string // Path to config file
	StateFile *string // Path to view state file
	Compare   *string // Text compare policy (text, natural)
	Highlight *string // Default row highlight color
	Infer     *bool   // Infer selection and sort direction from the page
	Patch     *bool   // Print the view state patch
	Out       *string // Output path, "-" for stdout
}

// Page represents the element ids and style values the templates render.
type Page struct {
	AssignField     string            `yaml:"assignField"`
	AdminValue      string            `yaml:"adminValue"`
	ShownDisplay    string            `yaml:"shownDisplay"`
	SubmitDisplay   string            `yaml:"submitDisplay"`
	CompanionSuffix string            `yaml:"companionSuffix"`
	Companions      map[string]string `yaml:"companions,omitempty"`
	HighlightColor  string            `yaml:"highlightColor"`
	BaselineColor   string            `yaml:"baselineColor"`
	Compare         string            `yaml:"compare"`
}

// UI represents user interface configuration settings.
type UI struct {
	EnableMouse bool `yaml:"enableMouse"`
}

// Logger represents logging configuration settings.
type Logger struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// NewFlags creates a new Flags instance with all pointer fields initialized.
// All pointers are allocated but their values are not set.
func NewFlags() *Flags {
	return &Flags{
		LogLevel:  new(string),
		LogFile:   new(string),
		Config:    new(string),
		StateFile: new(string),
		Compare:   new(string),
		Highlight: new(string),
		Infer:     new(bool),
		Patch:     new(bool),
		Out:       new(string),
	}
}
