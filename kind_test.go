package emptystate

import "testing"

func TestElementKind_String(t *testing.T) {
	tests := []struct {
		kind     ElementKind
		expected string
	}{
		{KindImage, "image"},
		{KindTitle, "title"},
		{KindDetail, "detail"},
		{KindButton, "button"},
		{KindCustom, "custom"},
		{ElementKind(42), "unknown"},
	}

	for _, test := range tests {
		result := test.kind.String()
		if result != test.expected {
			t.Errorf("ElementKind(%d).String() = %s, expected %s", test.kind, result, test.expected)
		}
	}
}

func TestKindOrder(t *testing.T) {
	expected := []ElementKind{KindImage, KindTitle, KindDetail, KindButton}
	if len(kindOrder) != len(expected) {
		t.Fatalf("kindOrder has %d entries, expected %d", len(kindOrder), len(expected))
	}
	for i, kind := range kindOrder {
		if kind != expected[i] {
			t.Errorf("kindOrder[%d] = %s, expected %s", i, kind, expected[i])
		}
	}
}

func TestInsetsAll(t *testing.T) {
	insets := InsetsAll(12)
	if insets.Top != 12 || insets.Left != 12 || insets.Bottom != 12 || insets.Right != 12 {
		t.Errorf("InsetsAll(12) = %+v, expected all edges 12", insets)
	}
}

func TestDefaultLayout(t *testing.T) {
	for _, kind := range kindOrder {
		layout := defaultLayout(kind)
		if layout.Height != 0 {
			t.Errorf("defaultLayout(%s).Height = %f, expected 0", kind, layout.Height)
		}
	}
	if layout := defaultLayout(KindCustom); layout != (ElementLayout{}) {
		t.Errorf("defaultLayout(custom) = %+v, expected zero value", layout)
	}
}
