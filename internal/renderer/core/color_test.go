package core

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    Color
		wantErr bool
	}{
		{"six digit", "#8A8A8A", Color{R: 138, G: 138, B: 138}, false},
		{"no hash", "ff0000", Color{R: 255, G: 0, B: 0}, false},
		{"short form", "#f00", Color{R: 255, G: 0, B: 0}, false},
		{"empty", "", Color{}, true},
		{"bad length", "#ffff", Color{}, true},
		{"bad digits", "#zzzzzz", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColorFromHex(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ColorFromHex(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equals(tt.want) {
				t.Errorf("ColorFromHex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColorEquals(t *testing.T) {
	if !ColorDefault.Equals(Color{Default: true}) {
		t.Error("default colors should be equal")
	}
	if ColorFromIndex(3).Equals(ColorFromRGB(3, 0, 0)) {
		t.Error("indexed and RGB colors should not be equal")
	}
	if !ColorFromIndex(7).Equals(ColorFromIndex(7)) {
		t.Error("same index should be equal")
	}
}

func TestColorBlend(t *testing.T) {
	black := ColorFromRGB(0, 0, 0)
	white := ColorFromRGB(255, 255, 255)

	mid := black.Blend(white, 0.5)
	if mid.R < 120 || mid.R > 135 {
		t.Errorf("Blend midpoint R = %d, want near 127", mid.R)
	}

	// Endpoints are exact.
	if got := black.Blend(white, 0); !got.Equals(black) {
		t.Errorf("Blend(0) = %v, want %v", got, black)
	}
	if got := black.Blend(white, 1); !got.Equals(white) {
		t.Errorf("Blend(1) = %v, want %v", got, white)
	}

	// Non-blendable colors snap to the nearer side.
	if got := ColorDefault.Blend(white, 0.4); !got.Equals(ColorDefault) {
		t.Errorf("default Blend(0.4) = %v, want default", got)
	}
	if got := ColorDefault.Blend(white, 0.6); !got.Equals(white) {
		t.Errorf("default Blend(0.6) = %v, want %v", got, white)
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{ColorDefault, "default"},
		{ColorFromIndex(42), "idx(42)"},
		{ColorFromRGB(255, 0, 128), "#FF0080"},
	}
	for _, tt := range tests {
		if got := tt.color.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStyleMerge(t *testing.T) {
	base := NewStyle(ColorRed).WithBackground(ColorBlack)
	overlay := NewStyle(ColorGreen).Italic()

	merged := base.Merge(overlay)
	if !merged.Foreground.Equals(ColorGreen) {
		t.Errorf("merged foreground = %v, want green", merged.Foreground)
	}
	if !merged.Background.Equals(ColorBlack) {
		t.Errorf("merged background = %v, want black (overlay default)", merged.Background)
	}
	if !merged.Attributes.Has(AttrItalic) {
		t.Error("merged style should carry the italic attribute")
	}
}

func TestAttributeSet(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrDim)
	if !a.Has(AttrBold) || !a.Has(AttrDim) {
		t.Error("attributes not added")
	}
	a = a.Without(AttrBold)
	if a.Has(AttrBold) {
		t.Error("bold not removed")
	}
	if !a.Has(AttrDim) {
		t.Error("dim should remain")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'漢', 2},
		{'\t', 0},
		{0x7F, 0},
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestCellContinuation(t *testing.T) {
	wide := NewStyledCell('漢', DefaultStyle())
	if wide.Width != 2 {
		t.Errorf("wide cell width = %d, want 2", wide.Width)
	}
	if !ContinuationCell().IsContinuation() {
		t.Error("continuation cell should report IsContinuation")
	}
	if wide.IsContinuation() {
		t.Error("wide cell should not report IsContinuation")
	}
}
