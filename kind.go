package emptystate

// ElementKind identifies one content slot of the placeholder.
type ElementKind int

const (
	// KindImage is the illustration shown above the text slots
	KindImage ElementKind = iota

	// KindTitle is the primary text slot
	KindTitle

	// KindDetail is the secondary text slot below the title
	KindDetail

	// KindButton is the action slot at the bottom of the column
	KindButton

	// KindCustom is a caller supplied object replacing all standard slots
	KindCustom
)

// kindOrder is the fixed top-to-bottom stacking order for the standard slots.
// A custom element bypasses this order entirely.
var kindOrder = [...]ElementKind{KindImage, KindTitle, KindDetail, KindButton}

// String returns the string representation of ElementKind
func (k ElementKind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindTitle:
		return "title"
	case KindDetail:
		return "detail"
	case KindButton:
		return "button"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Insets is the free space kept around one element, in the same units as
// Fyne sizes.
type Insets struct {
	Top    float32
	Left   float32
	Bottom float32
	Right  float32
}

// InsetsAll returns insets with the same value on every edge.
func InsetsAll(v float32) Insets {
	return Insets{Top: v, Left: v, Bottom: v, Right: v}
}

// ElementLayout carries the spacing directives for one element. A Height of
// zero means the element keeps its natural minimum height. Values are fixed
// for the lifetime of one placeholder rebuild.
type ElementLayout struct {
	Insets Insets
	Height float32
}

// Default element spacing
const (
	defaultElementGap    float32 = 8
	defaultElementMargin float32 = 16
)

// defaultLayout returns the layout used for a slot when the source supplies
// none.
func defaultLayout(kind ElementKind) ElementLayout {
	switch kind {
	case KindImage:
		return ElementLayout{Insets: Insets{Top: 0, Left: defaultElementMargin, Bottom: 0, Right: defaultElementMargin}}
	case KindButton:
		return ElementLayout{Insets: Insets{Top: defaultElementGap * 2, Left: defaultElementMargin, Bottom: 0, Right: defaultElementMargin}}
	case KindCustom:
		return ElementLayout{}
	default:
		return ElementLayout{Insets: Insets{Top: defaultElementGap, Left: defaultElementMargin, Bottom: 0, Right: defaultElementMargin}}
	}
}
