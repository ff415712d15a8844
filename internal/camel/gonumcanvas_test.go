package camel

import (
	"bytes"
	"image/color"
	"path/filepath"
	"testing"
)

func TestPlotCanvas_RenderPNG(t *testing.T) {
	pc := NewPlotCanvas(DefaultStyle())
	sum, err := Render(renderTable(), pc, DefaultOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if sum.Mean == 0 {
		t.Fatal("summary not computed")
	}

	var buf bytes.Buffer
	n, err := pc.WriteTo(&buf, 12, 8, "png")
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n == 0 || buf.Len() == 0 {
		t.Fatal("rendered PNG is empty")
	}
}

func TestPlotCanvas_SaveSVG(t *testing.T) {
	pc := NewPlotCanvas(DefaultStyle())
	if _, err := Render(renderTable(), pc, DefaultOptions()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := filepath.Join(t.TempDir(), "camel.svg")
	if err := pc.Save(12, 8, out); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestPlotCanvas_ColorAssignment(t *testing.T) {
	style := DefaultStyle()
	pc := NewPlotCanvas(style)

	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 0}

	c1, err := pc.Line(xs, ys, DrawOpts{Label: "a"})
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	c2, err := pc.Line(xs, ys, DrawOpts{Label: "b"})
	if err != nil {
		t.Fatalf("Line: %v", err)
	}

	// Palette colors are assigned in order and returned opaque.
	if c1 != style.Palette[0] || c2 != style.Palette[1] {
		t.Errorf("palette cycling broken: got %v, %v", c1, c2)
	}

	// Explicit color passes through untouched.
	c3, err := pc.Line(xs, ys, DrawOpts{Label: "overall", Color: color.Black})
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	if c3 != color.Black {
		t.Errorf("explicit color = %v, want black", c3)
	}

	// Fill gets the style fill color.
	c4, err := pc.FillBetween(xs, ys, DrawOpts{Label: "blank"})
	if err != nil {
		t.Fatalf("FillBetween: %v", err)
	}
	if c4 != style.FillColor {
		t.Errorf("fill color = %v, want %v", c4, style.FillColor)
	}
}

func TestSciTicks(t *testing.T) {
	ticker := sciTicks{hi: 4, lo: -4}

	// Axis spanning tens of thousands: labels switch to scientific form.
	for _, tk := range ticker.Ticks(9000, 33000) {
		if tk.Label == "" {
			continue
		}
		if !containsE(tk.Label) {
			t.Errorf("tick %v label %q not scientific", tk.Value, tk.Label)
		}
	}

	// Small axis: labels stay plain.
	for _, tk := range ticker.Ticks(0, 100) {
		if tk.Label == "" {
			continue
		}
		if containsE(tk.Label) {
			t.Errorf("tick %v label %q unexpectedly scientific", tk.Value, tk.Label)
		}
	}
}

func containsE(s string) bool {
	for _, r := range s {
		if r == 'e' || r == 'E' {
			return true
		}
	}
	return false
}
