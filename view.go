package emptystate

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Default image slot size when neither the layout nor the resource dictate one
const (
	DefaultImageSide float32 = 64
)

// Pulse animation bounds (translucency, 0 = opaque)
const (
	pulseMaxTranslucency = 0.75
	pulsePeriod          = time.Second
)

// element is one occupied placeholder slot.
type element struct {
	object fyne.CanvasObject
	layout ElementLayout
}

// PlaceholderView is the visual container for the empty-state content. It is
// purely reactive: the controller creates it, fills its slots through the
// replace-or-create constructors, and tears it down again. The view renders
// an optional full-size background, a content column centered vertically
// (plus a configurable offset) spanning the full width, and a fade cover
// used for the attach transition.
//
// Hit-testing policy: only the content column and the button receive taps;
// the rest of the view claims nothing, so events outside the content fall
// through to whatever sits beneath. Scroll events over the view are
// swallowed while host scrolling is blocked, otherwise forwarded to the
// host's own scroller.
type PlaceholderView struct {
	widget.BaseWidget

	background *canvas.Rectangle
	content    *placeholderContent
	cover      *canvas.Rectangle

	elements map[ElementKind]element

	verticalOffset float32
	fadeDuration   time.Duration

	fade  *fyne.Animation
	pulse *fyne.Animation

	tapAllowed    bool
	onTap         func(fyne.CanvasObject)
	scrollAllowed bool
	scrollTarget  Host
}

// NewPlaceholderView creates an empty placeholder view
func NewPlaceholderView() *PlaceholderView {
	v := &PlaceholderView{
		background: canvas.NewRectangle(color.Transparent),
		cover:      canvas.NewRectangle(color.Transparent),
		elements:   make(map[ElementKind]element),
		tapAllowed: true,
	}
	v.background.Hide()
	v.cover.Hide()
	v.content = newPlaceholderContent(v)
	v.ExtendBaseWidget(v)
	return v
}

// CreateImage places a fresh image in the image slot, replacing any previous
// occupant, and returns it for configuration.
func (v *PlaceholderView) CreateImage(layout ElementLayout) *canvas.Image {
	v.stopPulse()
	img := canvas.NewImageFromResource(nil)
	img.FillMode = canvas.ImageFillContain
	if layout.Height <= 0 {
		img.SetMinSize(fyne.NewSize(DefaultImageSide, DefaultImageSide))
	}
	v.elements[KindImage] = element{object: img, layout: layout}
	return img
}

// CreateTitle places a fresh rich text in the title slot, replacing any
// previous occupant, and returns it for configuration.
func (v *PlaceholderView) CreateTitle(layout ElementLayout) *widget.RichText {
	return v.createText(KindTitle, layout)
}

// CreateDetail places a fresh rich text in the detail slot, replacing any
// previous occupant, and returns it for configuration.
func (v *PlaceholderView) CreateDetail(layout ElementLayout) *widget.RichText {
	return v.createText(KindDetail, layout)
}

func (v *PlaceholderView) createText(kind ElementKind, layout ElementLayout) *widget.RichText {
	text := widget.NewRichText()
	text.Wrapping = fyne.TextWrapWord
	v.elements[kind] = element{object: text, layout: layout}
	return text
}

// CreateButton places a fresh button in the button slot, replacing any
// previous occupant, and returns it for configuration. Taps are forwarded
// through the view's tap callback.
func (v *PlaceholderView) CreateButton(layout ElementLayout) *widget.Button {
	button := widget.NewButton("", nil)
	button.OnTapped = func() { v.forwardTap(button) }
	v.elements[KindButton] = element{object: button, layout: layout}
	return button
}

// SetCustom places the given object in the custom slot, replacing any
// previous occupant. The custom object occupies the column exclusively, so
// any occupied standard slots are evicted.
func (v *PlaceholderView) SetCustom(obj fyne.CanvasObject, layout ElementLayout) {
	for _, kind := range kindOrder {
		delete(v.elements, kind)
	}
	v.elements[KindCustom] = element{object: obj, layout: layout}
}

// Element returns the object occupying the given slot, if any.
func (v *PlaceholderView) Element(kind ElementKind) (fyne.CanvasObject, bool) {
	e, ok := v.elements[kind]
	if !ok {
		return nil, false
	}
	return e.object, true
}

// ElementCount returns the number of occupied slots.
func (v *PlaceholderView) ElementCount() int {
	return len(v.elements)
}

// PrepareForReuse detaches all element objects, clears the slot registry and
// stops running animations. It must run before any repopulation so a rebuild
// never piles new content onto stale geometry.
func (v *PlaceholderView) PrepareForReuse() {
	v.StopAnimations()
	v.elements = make(map[ElementKind]element)
}

// SetBackground sets the full-size background color; nil means transparent.
func (v *PlaceholderView) SetBackground(c color.Color) {
	if c == nil {
		v.background.FillColor = color.Transparent
		v.background.Hide()
		return
	}
	v.background.FillColor = c
	v.background.Show()
}

// SetVerticalOffset moves the content column away from the vertical center.
func (v *PlaceholderView) SetVerticalOffset(offset float32) {
	v.verticalOffset = offset
}

// SetFadeDuration sets how long the content fades in after attachment.
func (v *PlaceholderView) SetFadeDuration(d time.Duration) {
	v.fadeDuration = d
}

// SetTapForwarder sets the callback receiving forwarded taps.
func (v *PlaceholderView) SetTapForwarder(fn func(fyne.CanvasObject)) {
	v.onTap = fn
}

// SetTapAllowed controls whether taps on the content are recognized at all.
func (v *PlaceholderView) SetTapAllowed(allowed bool) {
	v.tapAllowed = allowed
}

// SetScrollForward wires scroll events over the placeholder: swallowed when
// not allowed, forwarded to the host's scroller otherwise.
func (v *PlaceholderView) SetScrollForward(host Host, allowed bool) {
	v.scrollTarget = host
	v.scrollAllowed = allowed
}

// StartFadeIn fades the content in over the configured duration by fading
// out a cover rectangle. A zero duration shows the content immediately. The
// animation is fire-and-forget; a teardown mid-animation just stops it.
func (v *PlaceholderView) StartFadeIn() {
	if v.fade != nil {
		v.fade.Stop()
		v.fade = nil
	}
	if v.fadeDuration <= 0 {
		v.cover.Hide()
		return
	}
	base := v.coverBase()
	v.cover.FillColor = base
	v.cover.Show()
	v.fade = fyne.NewAnimation(v.fadeDuration, func(p float32) {
		v.cover.FillColor = withAlpha(base, 1-p)
		if p >= 1 {
			v.cover.Hide()
		}
		canvas.Refresh(v.cover)
	})
	v.fade.Curve = fyne.AnimationLinear
	v.fade.Start()
}

// StartPulse runs a looping translucency pulse on the image slot, used as
// the image append animation. baseTranslucency is where the loop bottoms
// out, normally 1 minus the configured image alpha.
func (v *PlaceholderView) StartPulse(img *canvas.Image, baseTranslucency float64) {
	v.stopPulse()
	if baseTranslucency < 0 {
		baseTranslucency = 0
	}
	span := pulseMaxTranslucency - baseTranslucency
	if span <= 0 {
		return
	}
	v.pulse = fyne.NewAnimation(pulsePeriod, func(p float32) {
		img.Translucency = baseTranslucency + span*float64(p)
		canvas.Refresh(img)
	})
	v.pulse.AutoReverse = true
	v.pulse.RepeatCount = fyne.AnimationRepeatForever
	v.pulse.Start()
}

// StopAnimations stops the fade and pulse animations, if running.
func (v *PlaceholderView) StopAnimations() {
	if v.fade != nil {
		v.fade.Stop()
		v.fade = nil
	}
	v.stopPulse()
}

func (v *PlaceholderView) stopPulse() {
	if v.pulse != nil {
		v.pulse.Stop()
		v.pulse = nil
	}
}

// Scrolled implements fyne.Scrollable so the placeholder decides what
// happens to scroll events over the host while it is shown.
func (v *PlaceholderView) Scrolled(e *fyne.ScrollEvent) {
	if v.scrollAllowed && v.scrollTarget != nil && v.scrollTarget.CanScroll() {
		v.scrollTarget.ScrollBy(e.Scrolled)
	}
}

func (v *PlaceholderView) forwardTap(obj fyne.CanvasObject) {
	if !v.tapAllowed {
		return
	}
	if v.onTap != nil {
		v.onTap(obj)
	}
}

func (v *PlaceholderView) coverBase() color.Color {
	if v.background.Visible() {
		return v.background.FillColor
	}
	return theme.Color(theme.ColorNameBackground)
}

// CreateRenderer creates the widget renderer
func (v *PlaceholderView) CreateRenderer() fyne.WidgetRenderer {
	return &placeholderRenderer{view: v}
}

// withAlpha scales the alpha channel of a color by the given factor.
func withAlpha(c color.Color, factor float32) color.Color {
	if factor < 0 {
		factor = 0
	}
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	nrgba.A = uint8(float32(nrgba.A) * factor)
	return nrgba
}

// placeholderRenderer renders the placeholder view: background below, the
// content column centered, the fade cover on top of the content.
type placeholderRenderer struct {
	view *PlaceholderView
}

// Layout arranges the components
func (r *placeholderRenderer) Layout(size fyne.Size) {
	v := r.view
	v.background.Move(fyne.NewPos(0, 0))
	v.background.Resize(size)

	contentHeight := v.content.MinSize().Height
	if contentHeight > size.Height {
		contentHeight = size.Height
	}
	top := (size.Height-contentHeight)/2 + v.verticalOffset
	v.content.Move(fyne.NewPos(0, top))
	v.content.Resize(fyne.NewSize(size.Width, contentHeight))

	v.cover.Move(v.content.Position())
	v.cover.Resize(v.content.Size())
}

// MinSize returns the minimum size
func (r *placeholderRenderer) MinSize() fyne.Size {
	return r.view.content.MinSize()
}

// Refresh refreshes the renderer
func (r *placeholderRenderer) Refresh() {
	r.Layout(r.view.Size())
	canvas.Refresh(r.view.background)
	r.view.content.Refresh()
	canvas.Refresh(r.view.cover)
}

// Objects returns the renderer objects
func (r *placeholderRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.background, r.view.content, r.view.cover}
}

// Destroy cleans up the renderer
func (r *placeholderRenderer) Destroy() {
	r.view.StopAnimations()
}

// placeholderContent is the tappable content column. A tap anywhere on it is
// forwarded as a tap on the placeholder view itself.
type placeholderContent struct {
	widget.BaseWidget

	view *PlaceholderView
}

func newPlaceholderContent(view *PlaceholderView) *placeholderContent {
	c := &placeholderContent{view: view}
	c.ExtendBaseWidget(c)
	return c
}

// Tapped implements fyne.Tappable
func (c *placeholderContent) Tapped(*fyne.PointEvent) {
	c.view.forwardTap(c.view)
}

// CreateRenderer creates the widget renderer
func (c *placeholderContent) CreateRenderer() fyne.WidgetRenderer {
	return &contentRenderer{content: c}
}

// contentRenderer lays the occupied slots out as a vertical column. Each
// element's top inset separates it from the previous element (or the top of
// the column for the first), the side insets bind it to the column edges, an
// explicit layout height overrides the natural one, and the bottom inset of
// the final element closes the column. Absent slots are skipped without
// leaving a gap. A custom element instead fills the whole column inset by
// its own layout.
type contentRenderer struct {
	content *placeholderContent
}

// Layout arranges the components
func (r *contentRenderer) Layout(size fyne.Size) {
	v := r.content.view

	if e, ok := v.elements[KindCustom]; ok {
		width := size.Width - e.layout.Insets.Left - e.layout.Insets.Right
		height := e.layout.Height
		if height <= 0 {
			height = size.Height - e.layout.Insets.Top - e.layout.Insets.Bottom
		}
		e.object.Move(fyne.NewPos(e.layout.Insets.Left, e.layout.Insets.Top))
		e.object.Resize(fyne.NewSize(width, height))
		return
	}

	y := float32(0)
	for _, kind := range kindOrder {
		e, ok := v.elements[kind]
		if !ok {
			continue
		}
		y += e.layout.Insets.Top
		height := e.layout.Height
		if height <= 0 {
			height = e.object.MinSize().Height
		}
		e.object.Move(fyne.NewPos(e.layout.Insets.Left, y))
		e.object.Resize(fyne.NewSize(size.Width-e.layout.Insets.Left-e.layout.Insets.Right, height))
		y += height
	}
}

// MinSize returns the minimum size
func (r *contentRenderer) MinSize() fyne.Size {
	v := r.content.view

	if e, ok := v.elements[KindCustom]; ok {
		height := e.layout.Height
		if height <= 0 {
			height = e.object.MinSize().Height
		}
		return fyne.NewSize(
			e.layout.Insets.Left+e.object.MinSize().Width+e.layout.Insets.Right,
			e.layout.Insets.Top+height+e.layout.Insets.Bottom,
		)
	}

	var width, height, lastBottom float32
	for _, kind := range kindOrder {
		e, ok := v.elements[kind]
		if !ok {
			continue
		}
		h := e.layout.Height
		if h <= 0 {
			h = e.object.MinSize().Height
		}
		height += e.layout.Insets.Top + h
		lastBottom = e.layout.Insets.Bottom
		w := e.layout.Insets.Left + e.object.MinSize().Width + e.layout.Insets.Right
		if w > width {
			width = w
		}
	}
	return fyne.NewSize(width, height+lastBottom)
}

// Refresh refreshes the renderer
func (r *contentRenderer) Refresh() {
	r.Layout(r.content.Size())
	for _, obj := range r.Objects() {
		obj.Refresh()
	}
}

// Objects returns the occupied slot objects in stacking order
func (r *contentRenderer) Objects() []fyne.CanvasObject {
	v := r.content.view

	if e, ok := v.elements[KindCustom]; ok {
		return []fyne.CanvasObject{e.object}
	}

	objects := make([]fyne.CanvasObject, 0, len(v.elements))
	for _, kind := range kindOrder {
		if e, ok := v.elements[kind]; ok {
			objects = append(objects, e.object)
		}
	}
	return objects
}

// Destroy cleans up the renderer
func (r *contentRenderer) Destroy() {}
