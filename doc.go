// Package emptystate augments Fyne's scrollable collection widgets with an
// automatic "no data" placeholder. Wrap a widget.List, widget.GridWrap or
// widget.Table together with a Source of placeholder content; whenever the
// host reloads and reports zero items the placeholder (image, title, detail
// text, button, or a fully custom object) is laid out over the host, and it
// is removed again as soon as data reappears. Display policy and lifecycle
// notifications are controlled through an optional Delegate.
package emptystate
