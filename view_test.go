package emptystate

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
)

func TestPlaceholderView_ReplaceOrCreate(t *testing.T) {
	test.NewApp()
	v := NewPlaceholderView()

	first := v.CreateButton(defaultLayout(KindButton))
	second := v.CreateButton(defaultLayout(KindButton))

	if first == second {
		t.Error("CreateButton should create a fresh button each time")
	}
	obj, ok := v.Element(KindButton)
	if !ok || obj != second {
		t.Error("button slot should hold the most recent button")
	}
	if v.ElementCount() != 1 {
		t.Errorf("ElementCount() = %d, expected 1", v.ElementCount())
	}
}

func TestPlaceholderView_PrepareForReuse(t *testing.T) {
	test.NewApp()
	v := NewPlaceholderView()

	v.CreateImage(defaultLayout(KindImage))
	v.CreateTitle(defaultLayout(KindTitle))
	v.CreateDetail(defaultLayout(KindDetail))
	v.CreateButton(defaultLayout(KindButton))

	if v.ElementCount() != 4 {
		t.Fatalf("ElementCount() = %d, expected 4", v.ElementCount())
	}

	v.PrepareForReuse()

	if v.ElementCount() != 0 {
		t.Errorf("ElementCount() after reuse = %d, expected 0", v.ElementCount())
	}
	renderer := test.WidgetRenderer(v.content)
	if len(renderer.Objects()) != 0 {
		t.Errorf("content still renders %d objects after reuse", len(renderer.Objects()))
	}
}

func TestContentLayout_VerticalWalk(t *testing.T) {
	test.NewApp()
	v := NewPlaceholderView()

	imgLayout := ElementLayout{Insets: Insets{Top: 4, Left: 10, Bottom: 0, Right: 10}, Height: 40}
	titleLayout := ElementLayout{Insets: Insets{Top: 8, Left: 16, Bottom: 12, Right: 16}}

	img := v.CreateImage(imgLayout)
	title := v.CreateTitle(titleLayout)
	title.Segments = BoldText("No results")

	renderer := test.WidgetRenderer(v.content)
	titleHeight := title.MinSize().Height

	// The column height chains top insets and element heights; the final
	// element's bottom inset closes it.
	expectedHeight := 4 + 40 + 8 + titleHeight + 12
	if got := renderer.MinSize().Height; !almostEqual(got, expectedHeight) {
		t.Errorf("content MinSize().Height = %f, expected %f", got, expectedHeight)
	}

	renderer.Layout(fyne.NewSize(200, 300))

	if img.Position() != fyne.NewPos(10, 4) {
		t.Errorf("image position = %v, expected (10, 4)", img.Position())
	}
	if img.Size() != fyne.NewSize(180, 40) {
		t.Errorf("image size = %v, expected (180, 40)", img.Size())
	}
	if title.Position() != fyne.NewPos(16, 4+40+8) {
		t.Errorf("title position = %v, expected (16, 52)", title.Position())
	}
	if title.Size().Width != 200-16-16 {
		t.Errorf("title width = %f, expected 168", title.Size().Width)
	}
}

func TestContentLayout_AbsentSlotsLeaveNoGap(t *testing.T) {
	test.NewApp()
	v := NewPlaceholderView()

	// Only a button: it starts right after its own top inset, not after
	// phantom image/title/detail slots.
	layout := ElementLayout{Insets: Insets{Top: 6, Left: 0, Bottom: 2, Right: 0}}
	button := v.CreateButton(layout)

	renderer := test.WidgetRenderer(v.content)
	renderer.Layout(fyne.NewSize(120, 100))

	if button.Position().Y != 6 {
		t.Errorf("button Y = %f, expected 6", button.Position().Y)
	}
	expected := 6 + button.MinSize().Height + 2
	if got := renderer.MinSize().Height; !almostEqual(got, expected) {
		t.Errorf("content MinSize().Height = %f, expected %f", got, expected)
	}
}

func TestContentLayout_CustomFillsColumn(t *testing.T) {
	test.NewApp()
	v := NewPlaceholderView()

	// A custom object evicts any occupied standard slots.
	v.CreateTitle(ElementLayout{}).Segments = Text("evicted")
	custom := canvas.NewRectangle(color.White)
	v.SetCustom(custom, ElementLayout{Insets: InsetsAll(5)})

	if v.ElementCount() != 1 {
		t.Fatalf("element count = %d, expected only the custom slot", v.ElementCount())
	}
	if _, ok := v.Element(KindTitle); ok {
		t.Error("title slot should be evicted by the custom object")
	}

	renderer := test.WidgetRenderer(v.content)
	objects := renderer.Objects()
	if len(objects) != 1 || objects[0] != custom {
		t.Fatalf("custom slot should render exclusively, got %d objects", len(objects))
	}

	renderer.Layout(fyne.NewSize(100, 80))
	if custom.Position() != fyne.NewPos(5, 5) {
		t.Errorf("custom position = %v, expected (5, 5)", custom.Position())
	}
	if custom.Size() != fyne.NewSize(90, 70) {
		t.Errorf("custom size = %v, expected (90, 70)", custom.Size())
	}
}

func TestContentLayout_CustomFixedHeight(t *testing.T) {
	test.NewApp()
	v := NewPlaceholderView()

	custom := canvas.NewRectangle(color.White)
	v.SetCustom(custom, ElementLayout{Insets: InsetsAll(4), Height: 30})

	renderer := test.WidgetRenderer(v.content)
	if got := renderer.MinSize().Height; got != 4+30+4 {
		t.Errorf("content MinSize().Height = %f, expected 38", got)
	}

	renderer.Layout(fyne.NewSize(100, 200))
	if custom.Size().Height != 30 {
		t.Errorf("custom height = %f, expected fixed 30", custom.Size().Height)
	}
}

func TestPlaceholderView_VerticalOffset(t *testing.T) {
	test.NewApp()
	v := NewPlaceholderView()
	title := v.CreateTitle(ElementLayout{})
	title.Segments = Text("centered?")
	v.SetVerticalOffset(25)

	renderer := test.WidgetRenderer(v)
	renderer.Layout(fyne.NewSize(200, 400))

	contentHeight := v.content.MinSize().Height
	expectedY := (400-contentHeight)/2 + 25
	if got := v.content.Position().Y; !almostEqual(got, expectedY) {
		t.Errorf("content Y = %f, expected %f", got, expectedY)
	}
	if v.content.Size().Width != 200 {
		t.Errorf("content width = %f, expected full host width 200", v.content.Size().Width)
	}
}

func TestPlaceholderView_FadeSetup(t *testing.T) {
	test.NewApp()
	v := NewPlaceholderView()
	v.CreateTitle(ElementLayout{}).Segments = Text("fade")

	// Zero duration shows the content immediately.
	v.SetFadeDuration(0)
	v.StartFadeIn()
	if v.cover.Visible() {
		t.Error("cover should be hidden with zero fade duration")
	}
	if v.fade != nil {
		t.Error("no animation should run with zero fade duration")
	}

	// A positive duration covers the content and starts the animation.
	v.SetFadeDuration(200 * time.Millisecond)
	v.StartFadeIn()
	if !v.cover.Visible() {
		t.Error("cover should be visible while fading in")
	}
	if v.fade == nil {
		t.Error("fade animation should be running")
	}

	v.StopAnimations()
	if v.fade != nil {
		t.Error("StopAnimations should drop the fade animation")
	}
}

func TestPlaceholderView_TapForwarding(t *testing.T) {
	test.NewApp()
	v := NewPlaceholderView()

	var tapped []fyne.CanvasObject
	v.SetTapForwarder(func(obj fyne.CanvasObject) { tapped = append(tapped, obj) })

	button := v.CreateButton(ElementLayout{})

	test.Tap(v.content)
	test.Tap(button)

	if len(tapped) != 2 {
		t.Fatalf("forwarded %d taps, expected 2", len(tapped))
	}
	if tapped[0] != v {
		t.Error("content tap should forward the placeholder view")
	}
	if tapped[1] != button {
		t.Error("button tap should forward the button")
	}

	// Touch permission off: nothing is forwarded any more.
	v.SetTapAllowed(false)
	test.Tap(v.content)
	test.Tap(button)
	if len(tapped) != 2 {
		t.Errorf("taps forwarded while disallowed: %d", len(tapped)-2)
	}
}

func TestPlaceholderView_ScrollPolicy(t *testing.T) {
	test.NewApp()
	v := NewPlaceholderView()

	host := &recordingHost{object: canvas.NewRectangle(color.Black), scrollable: true}

	// Blocked: the event is swallowed.
	v.SetScrollForward(host, false)
	v.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -30}})
	if len(host.scrolls) != 0 {
		t.Errorf("scroll forwarded while blocked: %v", host.scrolls)
	}

	// Allowed: the event reaches the host's scroller.
	v.SetScrollForward(host, true)
	v.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -30}})
	if len(host.scrolls) != 1 || host.scrolls[0].DY != -30 {
		t.Errorf("scrolls = %v, expected one delta with DY -30", host.scrolls)
	}

	// Allowed but the host cannot scroll: swallowed again.
	host.scrollable = false
	v.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 10}})
	if len(host.scrolls) != 1 {
		t.Error("scroll forwarded to a host that cannot scroll")
	}
}

// almostEqual compares sizes computed along different float32 summation
// orders.
func almostEqual(a, b float32) bool {
	d := a - b
	return d < 0.01 && d > -0.01
}

// recordingHost records scroll forwarding for view tests.
type recordingHost struct {
	object     fyne.CanvasObject
	count      int
	refreshes  int
	scrollable bool
	scrolls    []fyne.Delta
}

func (h *recordingHost) Object() fyne.CanvasObject { return h.object }
func (h *recordingHost) Count() int                { return h.count }
func (h *recordingHost) ReloadOps() []string       { return []string{OpRefresh} }
func (h *recordingHost) Refresh()                  { h.refreshes++ }
func (h *recordingHost) CanScroll() bool           { return h.scrollable }
func (h *recordingHost) ScrollBy(d fyne.Delta)     { h.scrolls = append(h.scrolls, d) }
