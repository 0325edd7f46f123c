package emptystate

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// surface is what the controller needs from the object stack it attaches
// the placeholder to; the Wrapper implements it.
type surface interface {
	insertOverlay(obj fyne.CanvasObject, index int)
	removeOverlay(obj fyne.CanvasObject)
	overlayCount() int
	overlaySize() fyne.Size
	blockScroll(blocked bool)
}

// Controller is the per-host orchestrator. It owns the single placeholder
// view slot of its host: Reevaluate decides, from the host's item count and
// the delegate predicates, whether the placeholder is built (or rebuilt) or
// torn down. All calls are synchronous and expected on the main goroutine.
//
// The controller holds plain references to host, source and delegate; it
// owns none of them. The wrapper owns the controller and is the attachment
// point for everything else.
type Controller struct {
	host     Host
	surface  surface
	state    *State
	source   *Source
	delegate *Delegate

	view     *PlaceholderView
	attached bool
}

func newController(host Host, surf surface, state *State) *Controller {
	return &Controller{host: host, surface: surf, state: state}
}

// Reevaluate runs the central show/hide decision. The placeholder is shown
// when the delegate allows display and the host reports zero items, or when
// the delegate forces display; otherwise it is hidden if currently shown.
// Without a source the call degrades to Invalidate.
func (c *Controller) Reevaluate() {
	if c.source == nil {
		c.Invalidate()
		return
	}

	count := 0
	if c.host != nil {
		count = c.host.Count()
	}

	if (c.delegate.shouldDisplay() && count == 0) || c.delegate.forceDisplay() {
		c.show()
		return
	}
	if c.attached {
		c.Invalidate()
	}
}

// IsVisible reports whether an attached placeholder exists and is not
// hidden.
func (c *Controller) IsVisible() bool {
	return c.attached && c.view != nil && c.view.Visible()
}

// show builds or rebuilds the placeholder. The view is created lazily and
// attached at the delegate's insertion index only when not already attached;
// repopulation always starts from a clean slot registry so repeated calls
// never duplicate elements.
func (c *Controller) show() {
	if c.view == nil {
		c.view = NewPlaceholderView()
		c.view.Resize(c.surface.overlaySize())
	}
	view := c.view

	c.delegate.willAppear()

	newlyAttached := false
	if !c.attached {
		index := c.delegate.insertionIndex(c.surface.overlayCount())
		c.surface.insertOverlay(view, index)
		c.attached = true
		newlyAttached = true
	}

	view.PrepareForReuse()
	c.populate(view)

	view.SetBackground(c.source.backgroundColor())
	view.SetTapAllowed(c.delegate.touchAllowed())
	view.SetTapForwarder(func(obj fyne.CanvasObject) { c.delegate.tapped(obj) })

	c.state.verticalOffset = c.source.verticalOffset()
	view.SetVerticalOffset(c.state.verticalOffset)
	c.state.fadeDuration = c.source.fadeDuration()
	view.SetFadeDuration(c.state.fadeDuration)

	if view.ElementCount() == 0 {
		view.Hide()
	} else {
		view.Show()
	}

	view.SetScrollForward(c.host, c.delegate.scrollAllowed())
	// The blocker floats above the whole stack, so host scrolling stays
	// disabled even when the placeholder is inserted below the host.
	c.surface.blockScroll(!c.delegate.scrollAllowed())

	view.Refresh()
	if newlyAttached && view.Visible() {
		view.StartFadeIn()
	}

	c.state.visible = c.IsVisible()
	c.delegate.didAppear()
}

// populate fills the slots from the source. A custom object excludes the
// standard slots entirely; each standard slot is created only when the
// source supplies non-empty content for it.
func (c *Controller) populate(view *PlaceholderView) {
	if obj := c.source.custom(); obj != nil {
		view.SetCustom(obj, c.source.customLayout())
		return
	}

	if res := c.source.image(); res != nil {
		img := view.CreateImage(c.source.layoutFor(KindImage))
		if tint := c.source.imageTint(); tint != "" {
			res = theme.NewColoredResource(res, tint)
		}
		img.Resource = res
		alpha := c.source.imageAlpha()
		img.Translucency = 1 - alpha
		if c.source.imagePulse() {
			view.StartPulse(img, 1-alpha)
		}
	}

	if segments := c.source.title(); len(segments) > 0 {
		view.CreateTitle(c.source.layoutFor(KindTitle)).Segments = segments
	}

	if segments := c.source.detail(); len(segments) > 0 {
		view.CreateDetail(c.source.layoutFor(KindDetail)).Segments = segments
	}

	icon := c.source.buttonIcon()
	text := c.source.buttonText()
	if icon != nil || text != "" {
		button := view.CreateButton(c.source.layoutFor(KindButton))
		if icon != nil {
			// An icon takes precedence; the text variant is never created.
			button.Icon = icon
		} else {
			button.Text = text
		}
		c.source.configureButton(button)
	}
}

// Invalidate tears the placeholder down: delegate notification, element
// reset, detach, reference drop, scroll restore, closing notification.
// Calling it when nothing is attached does nothing and notifies nobody.
func (c *Controller) Invalidate() {
	if !c.attached && c.view == nil {
		return
	}

	c.delegate.willDisappear()

	if c.view != nil {
		c.view.StopAnimations()
		c.view.PrepareForReuse()
		if c.attached {
			c.surface.removeOverlay(c.view)
		}
	}
	c.view = nil
	c.attached = false
	c.state.visible = false

	c.surface.blockScroll(!c.delegate.scrollRestore())

	c.delegate.didDisappear()
}
