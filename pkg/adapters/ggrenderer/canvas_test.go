package ggrenderer

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/user/pinchview/pkg/ports"
)

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestRenderer_CreateCanvas(t *testing.T) {
	bg := color.RGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff}
	img := New().CreateCanvas(40, 80, bg).ToImage()

	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 80 {
		t.Fatalf("expected 40x80, got %v", img.Bounds())
	}
	if got := color.RGBAModel.Convert(img.At(39, 79)); got != bg {
		t.Errorf("expected background %v, got %v", bg, got)
	}
}

func TestCanvas_DrawImageTransformed(t *testing.T) {
	red := filled(10, 10, color.RGBA{R: 255, A: 255})

	for _, name := range []string{"nearest", "bilinear", "catmull-rom"} {
		t.Run(name, func(t *testing.T) {
			interp, err := ParseInterpolator(name)
			if err != nil {
				t.Fatal(err)
			}
			canvas := New(WithInterpolator(interp)).CreateCanvas(100, 100, color.White)

			// Scale by 3 and move to (40, 40): covers 40..70.
			canvas.DrawImageTransformed(red, f64.Aff3{3, 0, 40, 0, 3, 40})
			img := canvas.ToImage()

			r, g, _, _ := img.At(55, 55).RGBA()
			if r>>8 < 250 || g>>8 > 5 {
				t.Errorf("expected red inside the mapped image, got %v", img.At(55, 55))
			}
			if !isWhite(img.At(20, 20)) || !isWhite(img.At(80, 80)) {
				t.Error("expected background outside the mapped image")
			}
		})
	}
}

func TestParseInterpolator(t *testing.T) {
	tests := []struct {
		name    string
		want    draw.Interpolator
		wantErr bool
	}{
		{"nearest", draw.NearestNeighbor, false},
		{"", draw.BiLinear, false},
		{"BiLinear", draw.BiLinear, false},
		{"catmull-rom", draw.CatmullRom, false},
		{"lanczos", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseInterpolator(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseInterpolator(%q) error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseInterpolator(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCanvas_Overlays(t *testing.T) {
	black := color.RGBA{A: 255}

	tests := []struct {
		name  string
		draw  func(c ports.Canvas)
		probe image.Point
	}{
		{"rect", func(c ports.Canvas) { c.DrawRect(10, 10, 30, 30, black) }, image.Pt(20, 20)},
		{"rounded rect", func(c ports.Canvas) { c.DrawRoundedRect(10, 10, 30, 30, 4, black) }, image.Pt(25, 25)},
		{"rect stroke", func(c ports.Canvas) { c.DrawRectStroke(10, 10, 30, 30, black, 2) }, image.Pt(10, 20)},
		{"circle", func(c ports.Canvas) { c.DrawCircle(25, 25, 5, black) }, image.Pt(25, 25)},
		{"line", func(c ports.Canvas) { c.DrawLine(0, 50, 100, 50, black, 2) }, image.Pt(50, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := New().CreateCanvas(100, 100, color.White)
			tt.draw(canvas)
			img := canvas.ToImage()

			if isWhite(img.At(tt.probe.X, tt.probe.Y)) {
				t.Errorf("expected ink at %v", tt.probe)
			}
			if !isWhite(img.At(90, 5)) {
				t.Error("expected untouched background far from the shape")
			}
		})
	}
}

func TestCanvas_Text(t *testing.T) {
	canvas := New().CreateCanvas(200, 40, color.White)
	style := ports.TextStyle{FontSize: 13, Color: color.Black, Align: ports.AlignRight}

	w1, h := canvas.MeasureText("scale", style)
	w2, _ := canvas.MeasureText("scale=2.000", style)
	if w1 <= 0 || h <= 0 {
		t.Errorf("expected positive size, got %fx%f", w1, h)
	}
	if w2 <= w1 {
		t.Errorf("longer text should measure wider: %f <= %f", w2, w1)
	}

	// Right-aligned at x=190: ink lands left of the anchor only.
	canvas.DrawText("scale=2.000", 190, 20, style)
	img := canvas.ToImage()
	inked := false
	for x := 100; x < 190; x++ {
		if !isWhite(img.At(x, 20)) {
			inked = true
			break
		}
	}
	if !inked {
		t.Error("expected text ink left of the anchor")
	}
	for x := 192; x < 200; x++ {
		if !isWhite(img.At(x, 20)) {
			t.Errorf("unexpected ink right of the anchor at x=%d", x)
		}
	}
}

func TestCanvas_MissingFontFallsBack(t *testing.T) {
	canvas := New().CreateCanvas(100, 30, color.White)
	w, _ := canvas.MeasureText("abc", ports.TextStyle{FontPath: "/nonexistent.ttf", FontSize: 40})
	if w != 21 {
		t.Errorf("expected bitmap face width 21, got %f", w)
	}
}
