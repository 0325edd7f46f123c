package preset

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/emptystate"
)

const sampleConfig = `
states:
  no_data:
    title: "Nothing found"
    vertical_offset: -20
    fade_ms: 300
  error:
    detail: "Check your connection."
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	entry, ok := cfg.States[KeyNoData]
	if !ok {
		t.Fatal("no_data entry missing")
	}
	if entry.Title != "Nothing found" {
		t.Errorf("title = %q, expected Nothing found", entry.Title)
	}
	if entry.VerticalOffset != -20 {
		t.Errorf("vertical offset = %f, expected -20", entry.VerticalOffset)
	}
	if entry.FadeMillis != 300 {
		t.Errorf("fade_ms = %d, expected 300", entry.FadeMillis)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("states: [not a map")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestEntry_FallbackMerge(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// Configured title wins, missing detail falls back to the default.
	noData := cfg.Entry(emptystate.StatusNoData)
	if noData.Title != "Nothing found" {
		t.Errorf("title = %q, expected the configured one", noData.Title)
	}
	if noData.Detail != defaults[KeyNoData].Detail {
		t.Errorf("detail = %q, expected the default", noData.Detail)
	}

	// Configured detail wins, missing title and button fall back.
	errEntry := cfg.Entry(emptystate.StatusError)
	if errEntry.Detail != "Check your connection." {
		t.Errorf("error detail = %q, expected the configured one", errEntry.Detail)
	}
	if errEntry.Title != defaults[KeyError].Title {
		t.Errorf("error title = %q, expected the default", errEntry.Title)
	}
	if errEntry.ButtonText != defaults[KeyError].ButtonText {
		t.Errorf("error button = %q, expected the default", errEntry.ButtonText)
	}

	// A status absent from the file yields its defaults unchanged.
	loading := cfg.Entry(emptystate.StatusLoading)
	if loading.Title != defaults[KeyLoading].Title {
		t.Errorf("loading title = %q, expected the default", loading.Title)
	}

	// A nil config behaves like an empty file.
	var nilCfg *Config
	if nilCfg.Entry(emptystate.StatusNoData).Title != defaults[KeyNoData].Title {
		t.Error("nil config should fall back to defaults")
	}
}

func TestSource_FollowsStatus(t *testing.T) {
	test.NewApp()

	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	status := emptystate.StatusNoData
	source := cfg.Source(func() emptystate.Status { return status })

	segments := source.Title()
	if len(segments) != 1 {
		t.Fatalf("title has %d segments, expected 1", len(segments))
	}
	if text := segments[0].(*widget.TextSegment).Text; text != "Nothing found" {
		t.Errorf("title = %q, expected Nothing found", text)
	}
	if source.VerticalOffset() != -20 {
		t.Errorf("vertical offset = %f, expected -20", source.VerticalOffset())
	}
	if source.FadeDuration() != 300*time.Millisecond {
		t.Errorf("fade duration = %v, expected 300ms", source.FadeDuration())
	}

	status = emptystate.StatusError
	if text := source.Title()[0].(*widget.TextSegment).Text; text != defaults[KeyError].Title {
		t.Errorf("title after status change = %q, expected the error default", text)
	}
	if source.ButtonText() != defaults[KeyError].ButtonText {
		t.Errorf("button text = %q, expected the error default", source.ButtonText())
	}
}

func TestAttach(t *testing.T) {
	test.NewApp()

	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var count int
	list := widget.NewList(
		func() int { return count },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(widget.ListItemID, fyne.CanvasObject) {},
	)

	w := emptystate.WrapList(list, nil)
	Attach(w, cfg)
	w.SetStatus(emptystate.StatusNoData)

	if !w.IsVisible() {
		t.Error("placeholder should be visible for an empty wrapped list")
	}
}
