package emptystate

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Source supplies the placeholder content for one host. Every field is
// optional: a nil callback means the corresponding slot is simply not
// created, and a nil Source hides the placeholder entirely. Callbacks are
// queried once per rebuild, on the main goroutine.
//
// If Custom returns a non-nil object it occupies the placeholder
// exclusively; the image, title, detail and button callbacks are then never
// consulted.
type Source struct {
	// Custom returns an object replacing all standard slots
	Custom func() fyne.CanvasObject

	// CustomLayout returns the spacing for the custom object
	CustomLayout func() ElementLayout

	// Image returns the illustration resource, nil for no image
	Image func() fyne.Resource

	// ImageTint returns the theme color the image is tinted with, empty for
	// no tint
	ImageTint func() fyne.ThemeColorName

	// ImageAlpha returns the image opacity in [0, 1]; nil means fully opaque
	ImageAlpha func() float64

	// ImagePulse reports whether the image runs a looping pulse animation
	// while the placeholder is shown
	ImagePulse func() bool

	// Title returns the rich text segments of the primary text slot
	Title func() []widget.RichTextSegment

	// Detail returns the rich text segments of the secondary text slot
	Detail func() []widget.RichTextSegment

	// ButtonIcon returns the button icon. A non-nil icon takes precedence:
	// the button text is then ignored.
	ButtonIcon func() fyne.Resource

	// ButtonText returns the button label
	ButtonText func() string

	// ConfigureButton is called with the freshly created button for
	// arbitrary extra configuration (importance, extra callbacks, ...)
	ConfigureButton func(*widget.Button)

	// BackgroundColor returns the placeholder background, nil for
	// transparent
	BackgroundColor func() color.Color

	// VerticalOffset returns the offset added to the vertically centered
	// content position
	VerticalOffset func() float32

	// FadeDuration returns how long the content fades in after attachment;
	// zero shows it immediately
	FadeDuration func() time.Duration

	// Layout returns the spacing directives for one standard slot; nil falls
	// back to the package defaults
	Layout func(ElementKind) ElementLayout
}

// Resolved accessors. All tolerate a nil receiver and nil callbacks so a
// partially filled Source never aborts a re-evaluation.

func (s *Source) custom() fyne.CanvasObject {
	if s == nil || s.Custom == nil {
		return nil
	}
	return s.Custom()
}

func (s *Source) customLayout() ElementLayout {
	if s == nil || s.CustomLayout == nil {
		return defaultLayout(KindCustom)
	}
	return s.CustomLayout()
}

func (s *Source) image() fyne.Resource {
	if s == nil || s.Image == nil {
		return nil
	}
	return s.Image()
}

func (s *Source) imageTint() fyne.ThemeColorName {
	if s == nil || s.ImageTint == nil {
		return ""
	}
	return s.ImageTint()
}

func (s *Source) imageAlpha() float64 {
	if s == nil || s.ImageAlpha == nil {
		return 1
	}
	a := s.ImageAlpha()
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

func (s *Source) imagePulse() bool {
	return s != nil && s.ImagePulse != nil && s.ImagePulse()
}

func (s *Source) title() []widget.RichTextSegment {
	if s == nil || s.Title == nil {
		return nil
	}
	return s.Title()
}

func (s *Source) detail() []widget.RichTextSegment {
	if s == nil || s.Detail == nil {
		return nil
	}
	return s.Detail()
}

func (s *Source) buttonIcon() fyne.Resource {
	if s == nil || s.ButtonIcon == nil {
		return nil
	}
	return s.ButtonIcon()
}

func (s *Source) buttonText() string {
	if s == nil || s.ButtonText == nil {
		return ""
	}
	return s.ButtonText()
}

func (s *Source) configureButton(b *widget.Button) {
	if s == nil || s.ConfigureButton == nil {
		return
	}
	s.ConfigureButton(b)
}

func (s *Source) backgroundColor() color.Color {
	if s == nil || s.BackgroundColor == nil {
		return nil
	}
	return s.BackgroundColor()
}

func (s *Source) verticalOffset() float32 {
	if s == nil || s.VerticalOffset == nil {
		return 0
	}
	return s.VerticalOffset()
}

func (s *Source) fadeDuration() time.Duration {
	if s == nil || s.FadeDuration == nil {
		return 0
	}
	return s.FadeDuration()
}

func (s *Source) layoutFor(kind ElementKind) ElementLayout {
	if s == nil || s.Layout == nil {
		return defaultLayout(kind)
	}
	return s.Layout(kind)
}

// Text returns a single plain rich text segment, centered, for use as a
// Source title or detail value.
func Text(s string) []widget.RichTextSegment {
	if s == "" {
		return nil
	}
	style := widget.RichTextStyleParagraph
	style.Alignment = fyne.TextAlignCenter
	return []widget.RichTextSegment{&widget.TextSegment{Text: s, Style: style}}
}

// BoldText returns a single bold rich text segment, centered.
func BoldText(s string) []widget.RichTextSegment {
	if s == "" {
		return nil
	}
	style := widget.RichTextStyleStrong
	style.Alignment = fyne.TextAlignCenter
	return []widget.RichTextSegment{&widget.TextSegment{Text: s, Style: style}}
}
