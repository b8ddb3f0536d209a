package render

import "testing"

func TestNewPhosphor(t *testing.T) {
	p, err := NewPhosphor(DefaultPhosphor)
	if err != nil {
		t.Fatalf("NewPhosphor(%q): %v", DefaultPhosphor, err)
	}
	lit, glass := p.Hex()
	if lit != DefaultPhosphor {
		t.Errorf("lit = %s, want %s", lit, DefaultPhosphor)
	}
	if glass == lit || glass == "#000000" {
		t.Errorf("glass = %s, want a faint tint of %s", glass, lit)
	}
	if l, _, _ := p.Glass.Lab(); l >= 0.2 {
		t.Errorf("glass lightness = %v, want dark", l)
	}
}

func TestNewPhosphorInvalid(t *testing.T) {
	for _, hex := range []string{"", "white", "#gggggg"} {
		if _, err := NewPhosphor(hex); err == nil {
			t.Errorf("NewPhosphor(%q) returned no error", hex)
		}
	}
}

func TestHalfBlock(t *testing.T) {
	tests := []struct {
		top, bottom bool
		want        rune
	}{
		{false, false, ' '},
		{true, false, '▀'},
		{false, true, '▄'},
		{true, true, '█'},
	}
	for _, tt := range tests {
		if got := halfBlock(tt.top, tt.bottom); got != tt.want {
			t.Errorf("halfBlock(%v, %v) = %q, want %q", tt.top, tt.bottom, got, tt.want)
		}
	}
}
