package emptystate

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Wrapper overlays a collection widget with its placeholder. It is the one
// long-lived owner: it holds the per-host State, the Controller and the
// object stack the placeholder is inserted into. Place the wrapper in the
// widget tree instead of the bare collection widget.
//
// Integration contract: reloads must go through Reload (or ReloadItem, or a
// SetStatus transition) rather than the collection widget's own Refresh.
// Those entry points run the native reload first and then fire the installed
// reload hook, which is what keeps the placeholder in step with the data
// without an explicit evaluation call at every site.
type Wrapper struct {
	widget.BaseWidget

	host  Host
	state *State
	ctrl  *Controller

	objects []fyne.CanvasObject
	blocker *scrollBlocker
}

// Wrap creates a wrapper around the given host with the given content
// source. A nil source is allowed; the placeholder stays hidden until one is
// attached with SetSource.
func Wrap(host Host, source *Source) *Wrapper {
	w := &Wrapper{
		host:    host,
		state:   newState(),
		objects: []fyne.CanvasObject{host.Object()},
	}
	w.ctrl = newController(host, w, w.state)
	w.ExtendBaseWidget(w)
	w.SetSource(source)
	return w
}

// WrapList wraps a widget.List
func WrapList(list *widget.List, source *Source) *Wrapper {
	return Wrap(NewListHost(list), source)
}

// WrapGridWrap wraps a widget.GridWrap
func WrapGridWrap(grid *widget.GridWrap, source *Source) *Wrapper {
	return Wrap(NewGridWrapHost(grid), source)
}

// WrapTable wraps a widget.Table
func WrapTable(table *widget.Table, source *Source) *Wrapper {
	return Wrap(NewTableHost(table), source)
}

// SetSource attaches (or, with nil, detaches) the content source. Attaching
// installs the host's reload hooks and immediately re-evaluates; detaching
// hides the placeholder.
func (w *Wrapper) SetSource(source *Source) {
	w.ctrl.source = source
	if source != nil {
		installReloadHooks(w.host, w.ctrl)
	} else {
		removeReloadTarget(w.host)
	}
	w.ctrl.Reevaluate()
}

// SetDelegate attaches the display policy delegate and re-evaluates so a
// changed policy takes effect immediately. A nil delegate restores all
// defaults.
func (w *Wrapper) SetDelegate(delegate *Delegate) {
	w.ctrl.delegate = delegate
	w.ctrl.Reevaluate()
}

// Reload runs the host's native full reload and then re-evaluates the
// placeholder through the reload hook.
func (w *Wrapper) Reload() {
	w.host.Refresh()
	fireReloadHook(w.host.Object(), OpRefresh)
}

// ReloadItem refreshes a single list item and then re-evaluates. For hosts
// other than a list it falls back to a full reload.
func (w *Wrapper) ReloadItem(id widget.ListItemID) {
	if lh, ok := w.host.(*ListHost); ok {
		lh.List.RefreshItem(id)
		fireReloadHook(w.host.Object(), OpRefreshItem)
		return
	}
	log.Printf("Warning: ReloadItem is only supported for list hosts, running a full reload")
	w.Reload()
}

// SetStatus attaches a load status to the host. Every status except
// StatusLoading triggers a host reload, which cascades into a placeholder
// re-evaluation.
func (w *Wrapper) SetStatus(status Status) {
	w.state.status = status
	if !status.IsLoading() {
		w.Reload()
	}
}

// Status returns the load status attached to the host.
func (w *Wrapper) Status() Status {
	return w.state.status
}

// State returns the per-host placeholder state.
func (w *Wrapper) State() *State {
	return w.state
}

// Host returns the wrapped host adapter.
func (w *Wrapper) Host() Host {
	return w.host
}

// Reevaluate forces the show/hide decision to run now.
func (w *Wrapper) Reevaluate() {
	w.ctrl.Reevaluate()
}

// Invalidate forces the placeholder to be torn down if shown.
func (w *Wrapper) Invalidate() {
	w.ctrl.Invalidate()
}

// IsVisible reports whether the placeholder is currently shown.
func (w *Wrapper) IsVisible() bool {
	return w.ctrl.IsVisible()
}

// surface implementation; the controller mutates the object stack only
// through these.

func (w *Wrapper) insertOverlay(obj fyne.CanvasObject, index int) {
	if index < 0 || index > len(w.objects) {
		index = len(w.objects)
	}
	w.objects = append(w.objects, nil)
	copy(w.objects[index+1:], w.objects[index:])
	w.objects[index] = obj
	w.Refresh()
}

func (w *Wrapper) removeOverlay(obj fyne.CanvasObject) {
	for i, o := range w.objects {
		if o == obj {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			break
		}
	}
	w.Refresh()
}

func (w *Wrapper) overlayCount() int {
	return len(w.objects)
}

func (w *Wrapper) overlaySize() fyne.Size {
	return w.Size()
}

// blockScroll disables host scrolling by floating a transparent scroll
// swallower above the object stack. It serves both the shown state (scroll
// not allowed by the delegate) and the hidden state (scroll not restored).
func (w *Wrapper) blockScroll(blocked bool) {
	if blocked {
		if w.blocker == nil {
			w.blocker = newScrollBlocker()
			w.insertOverlay(w.blocker, len(w.objects))
		}
		return
	}
	if w.blocker != nil {
		w.removeOverlay(w.blocker)
		w.blocker = nil
	}
}

// CreateRenderer creates the widget renderer
func (w *Wrapper) CreateRenderer() fyne.WidgetRenderer {
	return &wrapperRenderer{wrapper: w}
}

// wrapperRenderer stacks the host and whatever overlays are attached, all
// full size.
type wrapperRenderer struct {
	wrapper *Wrapper
}

// Layout arranges the components
func (r *wrapperRenderer) Layout(size fyne.Size) {
	for _, obj := range r.wrapper.objects {
		obj.Move(fyne.NewPos(0, 0))
		obj.Resize(size)
	}
}

// MinSize returns the minimum size
func (r *wrapperRenderer) MinSize() fyne.Size {
	return r.wrapper.host.Object().MinSize()
}

// Refresh refreshes the renderer
func (r *wrapperRenderer) Refresh() {
	r.Layout(r.wrapper.Size())
	for _, obj := range r.wrapper.objects {
		obj.Refresh()
	}
}

// Objects returns the current object stack
func (r *wrapperRenderer) Objects() []fyne.CanvasObject {
	return r.wrapper.objects
}

// Destroy drops the reload dispatch entry so a wrapper discarded with its
// canvas does not stay registered in the package-wide hook table.
func (r *wrapperRenderer) Destroy() {
	removeReloadTarget(r.wrapper.host)
}

// scrollBlocker is a transparent widget that swallows scroll events.
type scrollBlocker struct {
	widget.BaseWidget
}

func newScrollBlocker() *scrollBlocker {
	b := &scrollBlocker{}
	b.ExtendBaseWidget(b)
	return b
}

// Scrolled implements fyne.Scrollable and drops the event
func (b *scrollBlocker) Scrolled(*fyne.ScrollEvent) {}

// CreateRenderer creates the widget renderer
func (b *scrollBlocker) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
