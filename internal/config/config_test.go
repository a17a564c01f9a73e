package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pagekit/pagekit/internal/config"
	"github.com/pagekit/pagekit/internal/dom"
	"github.com/pagekit/pagekit/internal/model1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pagekitYAML = `pagekit:
  page:
    assignField: owner
    adminValue: "9"
    highlightColor: Yellow
    baselineColor: zorg
    compare: natural
    companions:
      e1: pick-e1
  ui:
    enableMouse: true
  logger:
    level: debug
`

func TestConfigLoad(t *testing.T) {
	path := writeConfig(t, pagekitYAML)

	cfg := config.NewConfig()
	require.NoError(t, cfg.Load(path, true))

	pg := cfg.Pagekit.Page
	assert.Equal(t, "owner", pg.AssignField)
	assert.Equal(t, "9", pg.AdminValue)
	assert.Equal(t, "yellow", pg.HighlightColor)
	assert.Equal(t, model1.StdColor, pg.BaselineColor)
	assert.Equal(t, model1.PolicyNatural, pg.Compare)
	assert.Equal(t, dom.DisplayInitial, pg.SubmitDisplay)
	assert.Equal(t, "U", pg.CompanionSuffix)
	assert.True(t, cfg.Pagekit.UI.EnableMouse)
	assert.Equal(t, "debug", cfg.Pagekit.Logger.Level)
}

func TestConfigLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg := config.NewConfig()
	require.NoError(t, cfg.Load(path, false))
	assert.Equal(t, model1.HighlightColor, cfg.Pagekit.Page.HighlightColor)

	assert.Error(t, config.NewConfig().Load(path, true))
}

func TestConfigSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagekit.yaml")
	cfg := config.NewConfig()
	require.NoError(t, cfg.Load(path, false))
	cfg.Pagekit.Page.AdminValue = "7"

	require.NoError(t, cfg.Save(false))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, cfg.Save(true))
	got := config.NewConfig()
	require.NoError(t, got.Load(path, true))
	assert.Equal(t, "7", got.Pagekit.Page.AdminValue)
}

func TestConfigRefine(t *testing.T) {
	cfg := config.NewConfig()
	flags := config.NewFlags()
	*flags.Highlight = "Blue"
	*flags.Compare = model1.PolicyNatural
	*flags.StateFile = "/tmp/pk.msgpack"
	*flags.Infer = true
	*flags.LogLevel = "warn"

	require.NoError(t, cfg.Refine(flags))
	pk := cfg.Pagekit
	assert.Equal(t, "blue", pk.Page.HighlightColor)
	assert.Equal(t, model1.PolicyNatural, pk.Page.Compare)
	assert.Equal(t, "/tmp/pk.msgpack", pk.StateFile())
	assert.True(t, pk.Infer())
	assert.Equal(t, "warn", pk.Logger.Level)
}

func TestConfigRefineInvalid(t *testing.T) {
	uu := map[string]func(*string, *string){
		"color":  func(h, _ *string) { *h = "zorg" },
		"policy": func(_, c *string) { *c = model1.PolicyNumeric },
	}

	for k := range uu {
		set := uu[k]
		t.Run(k, func(t *testing.T) {
			flags := config.NewFlags()
			set(flags.Highlight, flags.Compare)
			assert.Error(t, config.NewConfig().Refine(flags))
		})
	}
}

func TestPagekitLayout(t *testing.T) {
	cfg := config.NewConfig()
	require.NoError(t, cfg.Load(writeConfig(t, pagekitYAML), true))

	l := cfg.Pagekit.Layout()
	assert.Equal(t, "owner", l.AssignField)
	assert.True(t, l.IsAdmin("9"))
	assert.False(t, l.IsAdmin("1"))
	assert.Equal(t, "pick-e1", l.Companion("e1"))
	assert.Equal(t, "e2U", l.Companion("e2"))
}

func TestNewLogger(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "pagekit.log")

	log, err := config.NewLogger("debug", file)
	require.NoError(t, err)
	log.Infow("fred", "blee", 1)
	_ = log.Sync()

	bb, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(bb), "fred")

	_, err = config.NewLogger("zorg", "")
	assert.Error(t, err)
}

func TestFlagHelpers(t *testing.T) {
	s, b := "", false
	assert.False(t, config.IsStringSet(nil))
	assert.False(t, config.IsStringSet(&s))
	assert.False(t, config.IsBoolSet(&b))

	s, b = "x", true
	assert.True(t, config.IsStringSet(&s))
	assert.True(t, config.IsBoolSet(&b))
}

// Helpers...

func writeConfig(t *testing.T, raw string) string {
	path := filepath.Join(t.TempDir(), "pagekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0600))
	return path
}
