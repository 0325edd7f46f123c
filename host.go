package emptystate

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Reload operation names recognized by the hook mechanism. They name real
// methods on the wrapped widget types; hook installation verifies that.
const (
	OpRefresh     = "Refresh"
	OpRefreshItem = "RefreshItem"
)

// Host is the capability surface the controller needs from a collection
// widget: the widget itself, its current item count, and its reload
// operations. Implement it to augment a widget kind this package does not
// know about; an unknown widget counts as permanently empty, so prefer the
// shipped adapters where they apply.
type Host interface {
	// Object returns the wrapped widget
	Object() fyne.CanvasObject

	// Count returns the current item count, 0 when unknown
	Count() int

	// ReloadOps returns the names of the reload operations that must
	// trigger a placeholder re-evaluation
	ReloadOps() []string

	// Refresh runs the widget's native full reload
	Refresh()

	// CanScroll reports whether scroll events can be forwarded to the
	// widget's own scroller
	CanScroll() bool

	// ScrollBy moves the widget's scroll position by the given delta
	ScrollBy(delta fyne.Delta)
}

// ListHost adapts a widget.List. The item count is the list's Length
// callback answer; both the full Refresh and the per-item RefreshItem
// operations trigger re-evaluation.
type ListHost struct {
	List *widget.List
}

// NewListHost creates a Host adapter for a widget.List
func NewListHost(list *widget.List) *ListHost {
	return &ListHost{List: list}
}

// Object returns the wrapped list
func (h *ListHost) Object() fyne.CanvasObject { return h.List }

// Count returns the list's reported item count
func (h *ListHost) Count() int {
	if h.List == nil || h.List.Length == nil {
		return 0
	}
	return h.List.Length()
}

// ReloadOps returns the list's reload-triggering operations
func (h *ListHost) ReloadOps() []string { return []string{OpRefresh, OpRefreshItem} }

// Refresh reloads the list
func (h *ListHost) Refresh() { h.List.Refresh() }

// CanScroll reports that the list exposes its scroll offset
func (h *ListHost) CanScroll() bool { return true }

// ScrollBy moves the list's scroll position by the given delta
func (h *ListHost) ScrollBy(delta fyne.Delta) {
	h.List.ScrollToOffset(h.List.GetScrollOffset() - delta.DY)
}

// GridWrapHost adapts a widget.GridWrap.
type GridWrapHost struct {
	Grid *widget.GridWrap
}

// NewGridWrapHost creates a Host adapter for a widget.GridWrap
func NewGridWrapHost(grid *widget.GridWrap) *GridWrapHost {
	return &GridWrapHost{Grid: grid}
}

// Object returns the wrapped grid
func (h *GridWrapHost) Object() fyne.CanvasObject { return h.Grid }

// Count returns the grid's reported item count
func (h *GridWrapHost) Count() int {
	if h.Grid == nil || h.Grid.Length == nil {
		return 0
	}
	return h.Grid.Length()
}

// ReloadOps returns the grid's reload-triggering operations
func (h *GridWrapHost) ReloadOps() []string { return []string{OpRefresh} }

// Refresh reloads the grid
func (h *GridWrapHost) Refresh() { h.Grid.Refresh() }

// CanScroll reports that the grid exposes its scroll offset
func (h *GridWrapHost) CanScroll() bool { return true }

// ScrollBy moves the grid's scroll position by the given delta
func (h *GridWrapHost) ScrollBy(delta fyne.Delta) {
	h.Grid.ScrollToOffset(h.Grid.GetScrollOffset() - delta.DY)
}

// TableHost adapts a widget.Table. The item count is the number of data
// rows; scroll forwarding is not supported because the table does not
// expose its scroll offset.
type TableHost struct {
	Table *widget.Table
}

// NewTableHost creates a Host adapter for a widget.Table
func NewTableHost(table *widget.Table) *TableHost {
	return &TableHost{Table: table}
}

// Object returns the wrapped table
func (h *TableHost) Object() fyne.CanvasObject { return h.Table }

// Count returns the table's reported row count
func (h *TableHost) Count() int {
	if h.Table == nil || h.Table.Length == nil {
		return 0
	}
	rows, _ := h.Table.Length()
	return rows
}

// ReloadOps returns the table's reload-triggering operations
func (h *TableHost) ReloadOps() []string { return []string{OpRefresh} }

// Refresh reloads the table
func (h *TableHost) Refresh() { h.Table.Refresh() }

// CanScroll reports that scroll forwarding is unsupported for tables
func (h *TableHost) CanScroll() bool { return false }

// ScrollBy is a no-op for tables
func (h *TableHost) ScrollBy(fyne.Delta) {}

// HostFor returns the shipped adapter matching the concrete widget type.
// An unrecognized widget is wrapped as permanently empty: it reports zero
// items and therefore never shows a placeholder on its own; only a
// force-display delegate can.
func HostFor(obj fyne.CanvasObject) Host {
	switch w := obj.(type) {
	case *widget.List:
		return NewListHost(w)
	case *widget.GridWrap:
		return NewGridWrapHost(w)
	case *widget.Table:
		return NewTableHost(w)
	default:
		return &genericHost{object: obj}
	}
}

// genericHost wraps an object this package has no counting logic for.
type genericHost struct {
	object fyne.CanvasObject
}

func (h *genericHost) Object() fyne.CanvasObject { return h.object }
func (h *genericHost) Count() int                { return 0 }
func (h *genericHost) ReloadOps() []string       { return []string{OpRefresh} }
func (h *genericHost) Refresh()                  { h.object.Refresh() }
func (h *genericHost) CanScroll() bool           { return false }
func (h *genericHost) ScrollBy(fyne.Delta)       {}
