package config

import (
	"fmt"
	"sync"

	"github.com/pagekit/pagekit/internal/config/data"
	"github.com/pagekit/pagekit/internal/dom"
	"github.com/pagekit/pagekit/internal/model1"
	"github.com/pagekit/pagekit/internal/page"
)

// Pagekit represents the pagekit global configuration.
type Pagekit struct {
	Page   data.Page   `yaml:"page"`
	UI     data.UI     `yaml:"ui"`
	Logger data.Logger `yaml:"logger"`

	stateFile string
	infer     bool
	mx        sync.RWMutex
}

// NewPagekit creates a Pagekit with default settings.
func NewPagekit() *Pagekit {
	p := Pagekit{
		Logger: data.Logger{Level: DefaultLogLevel},
	}
	p.Validate()

	return &p
}

// Validate fills in defaults and resets invalid colors and policies.
func (p *Pagekit) Validate() {
	p.mx.Lock()
	defer p.mx.Unlock()

	pg := &p.Page
	if pg.AssignField == "" {
		pg.AssignField = page.DefaultAssignField
	}
	if pg.AdminValue == "" {
		pg.AdminValue = page.DefaultAdminValue
	}
	if pg.ShownDisplay == "" {
		pg.ShownDisplay = dom.DisplayBlock
	}
	if pg.SubmitDisplay == "" {
		pg.SubmitDisplay = dom.DisplayInitial
	}
	if pg.CompanionSuffix == "" {
		pg.CompanionSuffix = page.DefaultCompanionSuffix
	}
	if c, err := model1.NormalizeColor(pg.HighlightColor); err == nil {
		pg.HighlightColor = c
	} else {
		pg.HighlightColor = model1.HighlightColor
	}
	if c, err := model1.NormalizeColor(pg.BaselineColor); err == nil {
		pg.BaselineColor = c
	} else {
		pg.BaselineColor = model1.StdColor
	}
	if !model1.IsPolicy(pg.Compare) {
		pg.Compare = model1.PolicyText
	}
	if p.Logger.Level == "" {
		p.Logger.Level = DefaultLogLevel
	}
}

// Override applies CLI flag overrides to the configuration.
func (p *Pagekit) Override(flags *data.Flags) error {
	if flags == nil {
		return nil
	}

	p.mx.Lock()
	defer p.mx.Unlock()

	if IsStringSet(flags.LogLevel) {
		p.Logger.Level = *flags.LogLevel
	}
	if IsStringSet(flags.LogFile) {
		p.Logger.File = *flags.LogFile
	}
	if IsStringSet(flags.Compare) {
		if !model1.IsPolicy(*flags.Compare) {
			return fmt.Errorf("unknown compare policy %q", *flags.Compare)
		}
		p.Page.Compare = *flags.Compare
	}
	if IsStringSet(flags.Highlight) {
		c, err := model1.NormalizeColor(*flags.Highlight)
		if err != nil {
			return fmt.Errorf("highlight: %w", err)
		}
		p.Page.HighlightColor = c
	}
	if IsStringSet(flags.StateFile) {
		p.stateFile = *flags.StateFile
	}
	p.infer = IsBoolSet(flags.Infer)

	return nil
}

// Layout returns the page layout described by the configuration.
func (p *Pagekit) Layout() page.Layout {
	p.mx.RLock()
	defer p.mx.RUnlock()

	pg := p.Page
	companion := page.SuffixCompanion(pg.CompanionSuffix)
	if len(pg.Companions) > 0 {
		companion = page.TableCompanion(pg.Companions, companion)
	}

	return page.Layout{
		AssignField:    pg.AssignField,
		AdminValue:     pg.AdminValue,
		ShownDisplay:   pg.ShownDisplay,
		SubmitDisplay:  pg.SubmitDisplay,
		HighlightColor: pg.HighlightColor,
		BaselineColor:  pg.BaselineColor,
		Compare:        pg.Compare,
		Companion:      companion,
	}
}

// StateFile returns the view state file path.
func (p *Pagekit) StateFile() string {
	p.mx.RLock()
	defer p.mx.RUnlock()

	if p.stateFile != "" {
		return p.stateFile
	}
	return AppStateFile
}

// Infer returns true when selection and sort direction are read back from
// the page instead of the state file.
func (p *Pagekit) Infer() bool {
	p.mx.RLock()
	defer p.mx.RUnlock()
	return p.infer
}
