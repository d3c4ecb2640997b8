package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/render/rendertest"
)

var _ Canvas = (*rendertest.Recorder)(nil)

// placed returns a field whose particles sit exactly at the given positions.
func placed(s field.Settings, pos ...field.Vec) *field.Field {
	s.Count = len(pos)
	s.LabelChance = 0
	f := field.New(s, rand.New(rand.NewPCG(7, 7)))
	f.Init(800, 600, 1)
	for i := range f.Particles() {
		p := &f.Particles()[i]
		p.Pos, p.Base = pos[i], pos[i]
		p.Opacity = 0.2
		p.Radius = 1
		p.Phase = 0
	}
	return f
}

func TestConnectionsThreshold(t *testing.T) {
	s := field.Light()
	f := placed(s,
		field.Vec{X: 0, Y: 0},
		field.Vec{X: 100, Y: 0},   // 100 from the first: joined
		field.Vec{X: 0, Y: 120},   // exactly on the threshold from the first: not joined
		field.Vec{X: 700, Y: 500}, // far from everything
	)
	rec := &rendertest.Recorder{}
	Connections(rec, f, field.Vec{X: 400, Y: 300})

	// pairs under 120: (0,1) at 100 and (1,2) at ~156 is out, (0,2) at 120 is out
	if len(rec.Lines) != 1 {
		t.Fatalf("lines = %d, want 1: %+v", len(rec.Lines), rec.Lines)
	}
	l := rec.Lines[0]
	if l.X0 != 0 || l.Y0 != 0 || l.X1 != 100 || l.Y1 != 0 {
		t.Errorf("line = %+v, want (0,0)-(100,0)", l)
	}
	if l.Width != s.LineWidth {
		t.Errorf("width = %v, want %v", l.Width, s.LineWidth)
	}
	want := Accent(0.08 * (1 - 100.0/120))
	if l.Color != want {
		t.Errorf("color = %v, want %v", l.Color, want)
	}
}

func TestConnectionsBoostNearPointer(t *testing.T) {
	s := field.Rich()
	f := placed(s, field.Vec{X: 100, Y: 100}, field.Vec{X: 140, Y: 100})

	far := &rendertest.Recorder{}
	Connections(far, f, field.Vec{X: 700, Y: 500})
	near := &rendertest.Recorder{}
	Connections(near, f, field.Vec{X: 120, Y: 100})

	if len(far.Lines) != 1 || len(near.Lines) != 1 {
		t.Fatalf("lines far=%d near=%d, want 1 each", len(far.Lines), len(near.Lines))
	}
	if near.Lines[0].Color.A <= far.Lines[0].Color.A {
		t.Errorf("near alpha %d should exceed far alpha %d", near.Lines[0].Color.A, far.Lines[0].Color.A)
	}
	// avg pointer distance 20: boost (1 - 20/200) * 0.3 = 0.27
	want := Accent(0.08*(1-40.0/150) + 0.27)
	if near.Lines[0].Color != want {
		t.Errorf("near color = %v, want %v", near.Lines[0].Color, want)
	}
}

func TestParticlesGlowAndLabel(t *testing.T) {
	s := field.Rich()
	f := placed(s, field.Vec{X: 100, Y: 100}, field.Vec{X: 600, Y: 500})
	f.Particles()[0].Label = "3F"

	rec := &rendertest.Recorder{}
	Particles(rec, f, field.Vec{X: 100, Y: 100})

	// glow halo + disc for the first, disc only for the second
	if len(rec.Discs) != 3 {
		t.Fatalf("discs = %d, want 3", len(rec.Discs))
	}
	halo := rec.Discs[0]
	if halo.R != 4 {
		t.Errorf("halo radius = %v, want 4", halo.R)
	}
	if halo.Outer.A != 0 {
		t.Errorf("halo rim alpha = %d, want 0", halo.Outer.A)
	}
	if got, want := rec.Discs[1].Inner, Accent(0.2+0.4); got != want {
		t.Errorf("glowing disc inner = %v, want %v", got, want)
	}
	if got, want := rec.Discs[2].Inner, Accent(0.2); got != want {
		t.Errorf("far disc inner = %v, want %v", got, want)
	}

	if len(rec.Texts) != 1 {
		t.Fatalf("texts = %d, want 1", len(rec.Texts))
	}
	txt := rec.Texts[0]
	if txt.S != "3F" || txt.X != 103 || txt.Y != 101 || txt.Size != 6 {
		t.Errorf("label = %+v, want 3F at (103, 101) size 6", txt)
	}
}

func TestParticlesLightHasNoGlow(t *testing.T) {
	f := placed(field.Light(), field.Vec{X: 100, Y: 100})
	f.Particles()[0].Phase = 1.3
	rec := &rendertest.Recorder{}
	Particles(rec, f, field.Vec{X: 100, Y: 100})
	if len(rec.Discs) != 1 {
		t.Fatalf("discs = %d, want 1", len(rec.Discs))
	}
	if rec.Discs[0].R != 1 {
		t.Errorf("radius = %v, want unpulsed 1", rec.Discs[0].R)
	}
}

type countingLayer struct{ draws int }

func (l *countingLayer) Draw(c Canvas) { l.draws++ }

func TestDrawOrder(t *testing.T) {
	f := placed(field.Light(), field.Vec{X: 10, Y: 10}, field.Vec{X: 20, Y: 10})
	rec := &rendertest.Recorder{}
	layer := &countingLayer{}
	Draw(rec, f, field.Vec{}, layer)
	if rec.Clears != 1 || layer.draws != 1 {
		t.Errorf("clears = %d, layer draws = %d, want 1 and 1", rec.Clears, layer.draws)
	}
	if len(rec.Lines) != 1 || len(rec.Discs) != 2 {
		t.Errorf("lines = %d, discs = %d, want 1 and 2", len(rec.Lines), len(rec.Discs))
	}
	if rec.Commands() != 4 {
		t.Errorf("Commands() = %d, want 4", rec.Commands())
	}
	rec.Reset()
	if rec.Commands() != 0 {
		t.Errorf("Commands() after Reset = %d, want 0", rec.Commands())
	}
}

func TestAccentClamps(t *testing.T) {
	if got := Accent(1.7).A; got != 255 {
		t.Errorf("Accent(1.7).A = %d, want 255", got)
	}
	if got := Accent(-1).A; got != 0 {
		t.Errorf("Accent(-1).A = %d, want 0", got)
	}
	c := Accent(0.5)
	if c.R != 0 || c.G != 102 || c.B != 255 {
		t.Errorf("Accent rgb = %d,%d,%d, want 0,102,255", c.R, c.G, c.B)
	}
}

func TestSnapshotRejectsEmptySurface(t *testing.T) {
	if _, err := NewSnapshot(0, 100, nil); err != ErrEmptySurface {
		t.Errorf("NewSnapshot(0, 100) error = %v, want ErrEmptySurface", err)
	}
}

func TestSnapshotEncodesFrame(t *testing.T) {
	snap, err := NewSnapshot(64, 48, color.White)
	if err != nil {
		t.Fatal(err)
	}
	snap.Resize(128, 96)
	snap.SetScale(2)

	f := placed(field.Rich(), field.Vec{X: 10, Y: 10}, field.Vec{X: 30, Y: 20})
	f.Particles()[0].Label = "A0"
	Draw(snap, f, field.Vec{X: 10, Y: 10})

	var buf bytes.Buffer
	if err := snap.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 96 {
		t.Errorf("bounds = %v, want 128x96", b)
	}

	// Device pixel (20, 20) is the centre of the first particle.
	r, g, b, _ := snap.Image().At(20, 20).RGBA()
	if b>>8 <= r>>8 || b>>8 <= g>>8 {
		t.Errorf("pixel under particle = (%d,%d,%d), want accent-tinted", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = snap.Image().At(120, 90).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("empty corner = (%d,%d,%d), want white background", r>>8, g>>8, b>>8)
	}
}

// inkWidth counts the columns of img with any visible pixel.
func inkWidth(img image.Image) int {
	b := img.Bounds()
	n := 0
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				n++
				break
			}
		}
	}
	return n
}

func TestSnapshotLabelScalesOnce(t *testing.T) {
	width := func(ratio float64) int {
		snap, err := NewSnapshot(int(40*ratio), int(20*ratio), nil)
		if err != nil {
			t.Fatal(err)
		}
		snap.SetScale(ratio)
		snap.Text("88", 4, 14, 6, Accent(1))
		return inkWidth(snap.Image())
	}
	w1, w2 := width(1), width(2)
	if w1 == 0 {
		t.Fatal("label left no ink at ratio 1")
	}
	if r := float64(w2) / float64(w1); r < 1.5 || r > 2.6 {
		t.Errorf("ink width %d px at ratio 1, %d px at ratio 2 (x%.2f), want about x2", w1, w2, r)
	}
}

func TestRingColorsMatchGradient(t *testing.T) {
	tests := []struct {
		name         string
		inner, outer color.NRGBA
	}{
		{"glow halo", Accent(0.3), Accent(0)},
		{"particle disc", Accent(0.6), Accent(0.18)},
		{"opaque centre", Accent(1), Accent(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			composite := 0.0
			for i, c := range ringColors(tt.inner, tt.outer) {
				composite = over(composite, float64(c.A)/255)
				want := float64(lerpColor(tt.outer, tt.inner, float64(i)/gradientSteps).A) / 255
				if math.Abs(composite-want) > 2.0/255 {
					t.Errorf("band %d alpha = %.3f, want %.3f", i, composite, want)
				}
			}
			if composite > float64(tt.inner.A)/255+1.0/255 {
				t.Errorf("centre alpha %.3f exceeds inner %.3f", composite, float64(tt.inner.A)/255)
			}
		})
	}
}
