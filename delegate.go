package emptystate

import (
	"log"

	"fyne.io/fyne/v2"
)

// Delegate controls display policy and receives lifecycle notifications.
// Every field is optional; a nil callback falls back to the documented
// default, and a nil Delegate behaves as if all defaults were in place.
type Delegate struct {
	// ShouldDisplay reports whether the placeholder may be shown when the
	// host is empty. Default: true.
	ShouldDisplay func() bool

	// ForceDisplay reports whether the placeholder is shown even when the
	// host has items. Default: false.
	ForceDisplay func() bool

	// InsertionIndex returns the position of the placeholder in the
	// wrapper's object stack; 0 places it below the host. An out-of-range
	// value falls back to appending on top. Default: append.
	InsertionIndex func() int

	// ScrollAllowed reports whether the host keeps scrolling while the
	// placeholder is shown. Default: false.
	ScrollAllowed func() bool

	// ScrollRestore reports whether host scrolling is allowed again after
	// the placeholder is hidden. Default: true.
	ScrollRestore func() bool

	// TouchAllowed reports whether taps on the placeholder content are
	// recognized. Default: true.
	TouchAllowed func() bool

	// WillAppear is called before the placeholder is attached and populated
	WillAppear func()

	// DidAppear is called after the placeholder is attached and populated
	DidAppear func()

	// WillDisappear is called before the placeholder is torn down
	WillDisappear func()

	// DidDisappear is called after the placeholder was removed from the host
	DidDisappear func()

	// Tapped is called when the user taps the placeholder content or its
	// button; the tapped object is passed through.
	Tapped func(fyne.CanvasObject)
}

// Resolved accessors, nil-safe like the Source ones.

func (d *Delegate) shouldDisplay() bool {
	if d == nil || d.ShouldDisplay == nil {
		return true
	}
	return d.ShouldDisplay()
}

func (d *Delegate) forceDisplay() bool {
	return d != nil && d.ForceDisplay != nil && d.ForceDisplay()
}

// insertionIndex validates the delegate answer against the current object
// count and silently falls back to appending when it is out of range.
func (d *Delegate) insertionIndex(objectCount int) int {
	if d == nil || d.InsertionIndex == nil {
		return objectCount
	}
	idx := d.InsertionIndex()
	if idx < 0 || idx > objectCount {
		log.Printf("Warning: placeholder insertion index %d out of range [0, %d], appending", idx, objectCount)
		return objectCount
	}
	return idx
}

func (d *Delegate) scrollAllowed() bool {
	return d != nil && d.ScrollAllowed != nil && d.ScrollAllowed()
}

func (d *Delegate) scrollRestore() bool {
	if d == nil || d.ScrollRestore == nil {
		return true
	}
	return d.ScrollRestore()
}

func (d *Delegate) touchAllowed() bool {
	if d == nil || d.TouchAllowed == nil {
		return true
	}
	return d.TouchAllowed()
}

func (d *Delegate) willAppear() {
	if d != nil && d.WillAppear != nil {
		d.WillAppear()
	}
}

func (d *Delegate) didAppear() {
	if d != nil && d.DidAppear != nil {
		d.DidAppear()
	}
}

func (d *Delegate) willDisappear() {
	if d != nil && d.WillDisappear != nil {
		d.WillDisappear()
	}
}

func (d *Delegate) didDisappear() {
	if d != nil && d.DidDisappear != nil {
		d.DidDisappear()
	}
}

func (d *Delegate) tapped(obj fyne.CanvasObject) {
	if d != nil && d.Tapped != nil {
		d.Tapped(obj)
	}
}
