package generator

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGB
		wantErr bool
	}{
		{"hex with hash", "#1b161c", RGB{27, 22, 28}, false},
		{"hex without hash", "1b161c", RGB{27, 22, 28}, false},
		{"upper case", "#FFFFFF", RGB{255, 255, 255}, false},
		{"surrounding space", " #000000 ", RGB{0, 0, 0}, false},
		{"too short", "#fff", RGB{}, true},
		{"too long", "#1b161c00", RGB{}, true},
		{"not hex", "#zz161c", RGB{}, true},
		{"empty", "", RGB{}, true},
		{"random is rejected", "random", RGB{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	if got, want := (RGB{27, 22, 28}).String(), "#1b161c"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewSolidImage(t *testing.T) {
	fill := RGB{27, 22, 28}
	img := NewSolidImage(200, 800, fill)

	if got := img.Bounds().Dx(); got != 200 {
		t.Errorf("width = %d, want 200", got)
	}
	if got := img.Bounds().Dy(); got != 800 {
		t.Errorf("height = %d, want 800", got)
	}
	if !img.Opaque() {
		t.Error("image is not opaque")
	}

	want := color.RGBA{R: 27, G: 22, B: 28, A: 255}
	for y := 0; y < 800; y++ {
		for x := 0; x < 200; x++ {
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
