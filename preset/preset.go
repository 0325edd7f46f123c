// Package preset loads declarative placeholder content from YAML. An app
// ships one small file describing what the empty state looks like per load
// status and attaches it to a wrapper; entries missing from the file fall
// back to built-in English defaults.
package preset

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2/widget"
	"gopkg.in/yaml.v3"

	"github.com/ytget/emptystate"
)

// YAML keys for the per-status entries
const (
	KeyNone    = "none"
	KeyLoading = "loading"
	KeyNoData  = "no_data"
	KeyError   = "error"
)

// Default entry values
var defaults = map[string]Entry{
	KeyNone:    {},
	KeyLoading: {Title: "Loading…"},
	KeyNoData:  {Title: "No data", Detail: "There is nothing to show here yet."},
	KeyError:   {Title: "Something went wrong", Detail: "The last load failed.", ButtonText: "Retry"},
}

// Entry describes the placeholder content for one load status.
type Entry struct {
	Title          string  `yaml:"title"`
	Detail         string  `yaml:"detail"`
	ButtonText     string  `yaml:"button_text"`
	VerticalOffset float32 `yaml:"vertical_offset"`
	FadeMillis     int     `yaml:"fade_ms"`
}

// Config is a parsed preset file.
type Config struct {
	States map[string]Entry `yaml:"states"`
}

// Parse reads a preset configuration from YAML data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse preset config: %w", err)
	}
	return &cfg, nil
}

// Load reads a preset configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset config: %w", err)
	}
	return Parse(data)
}

// statusKey maps a load status to its YAML key.
func statusKey(status emptystate.Status) string {
	switch status {
	case emptystate.StatusLoading:
		return KeyLoading
	case emptystate.StatusNoData:
		return KeyNoData
	case emptystate.StatusError:
		return KeyError
	default:
		return KeyNone
	}
}

// Entry returns the effective entry for a status: the configured one with
// empty text fields filled from the built-in defaults. A nil Config yields
// the defaults unchanged.
func (c *Config) Entry(status emptystate.Status) Entry {
	key := statusKey(status)
	fallback := defaults[key]
	if c == nil {
		return fallback
	}
	entry, ok := c.States[key]
	if !ok {
		return fallback
	}
	if entry.Title == "" {
		entry.Title = fallback.Title
	}
	if entry.Detail == "" {
		entry.Detail = fallback.Detail
	}
	if entry.ButtonText == "" {
		entry.ButtonText = fallback.ButtonText
	}
	return entry
}

// Source builds a content source that follows the given status; pass the
// wrapper's Status method so the placeholder tracks load state transitions.
func (c *Config) Source(status func() emptystate.Status) *emptystate.Source {
	return &emptystate.Source{
		Title: func() []widget.RichTextSegment {
			return emptystate.BoldText(c.Entry(status()).Title)
		},
		Detail: func() []widget.RichTextSegment {
			return emptystate.Text(c.Entry(status()).Detail)
		},
		ButtonText: func() string {
			return c.Entry(status()).ButtonText
		},
		VerticalOffset: func() float32 {
			return c.Entry(status()).VerticalOffset
		},
		FadeDuration: func() time.Duration {
			return time.Duration(c.Entry(status()).FadeMillis) * time.Millisecond
		},
	}
}

// Attach builds a status-following source from the config and attaches it to
// the wrapper.
func Attach(w *emptystate.Wrapper, cfg *Config) {
	w.SetSource(cfg.Source(w.Status))
}
