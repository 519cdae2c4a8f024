package emit

import (
	"testing"

	"github.com/inkwell-labs/pageflow/internal/geom"
	"github.com/inkwell-labs/pageflow/internal/ports"
	"github.com/inkwell-labs/pageflow/internal/solver"
	"github.com/inkwell-labs/pageflow/internal/tree"
)

type fakeMetrics struct{}

func (fakeMetrics) WidthOfString(faceID string, sizePt float64, text string) (float64, error) {
	return float64(len([]rune(text))) * 6, nil
}

func (fakeMetrics) LineHeight(faceID string, sizePt float64) (float64, error) {
	return sizePt * 1.2, nil
}

type fakeImages struct{ w, h float64 }

func (f fakeImages) Describe(string) (float64, float64, error) { return f.w, f.h, nil }

var testFonts = ports.FontConfig{Regular: "regular", Bold: "bold", Italic: "italic", BoldItalic: "boldItalic"}

func solve(a *tree.Arena, sizes map[string]geom.Size) []solver.Warning {
	s := solver.New(a, fakeMetrics{}, fakeImages{w: 40, h: 20}, testFonts, true, nil)
	return s.Solve(a.Roots(), sizes)
}

func TestEmitShapesAndImage(t *testing.T) {
	a := tree.NewArena()
	root := a.New(tree.Rectangle, "p1", -1, "")
	root.Layout = tree.LayoutConfig{Width: geom.Fixed(100), Height: geom.Fixed(50), Direction: tree.Row}
	red := geom.RGBA255(255, 0, 0, 255)
	root.FillColor = &red

	circle := a.New(tree.Circle, "p1", root.Index(), "")
	circle.Layout = tree.LayoutConfig{Width: geom.Fixed(20), Height: geom.Fixed(20)}

	img := a.New(tree.Image, "p1", root.Index(), "")
	img.Layout = tree.LayoutConfig{Width: geom.Fixed(30), Height: geom.Fixed(20)}
	img.Image = &tree.ImageConfig{Source: "logo.png", Fit: tree.FitContain}

	solve(a, map[string]geom.Size{"p1": {Width: 100, Height: 50}})

	cmds := Emit(a, a.Roots())
	if len(cmds) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(cmds))
	}

	rectCmd := cmds[0]
	if rectCmd.PageID != "p1" || rectCmd.ZIndex != 0 {
		t.Fatalf("root rect = %+v", rectCmd)
	}
	rp, ok := rectCmd.Payload.(RectanglePayload)
	if !ok || rp.Color != red {
		t.Fatalf("expected root rectangle payload with red fill, got %+v", rectCmd.Payload)
	}

	var sawCircle, sawImage bool
	for _, c := range cmds[1:] {
		if c.ZIndex != 1 {
			t.Fatalf("child zindex = %d, want 1", c.ZIndex)
		}
		switch p := c.Payload.(type) {
		case CirclePayload:
			sawCircle = true
			if c.BoundingBox.Width != 20 || c.BoundingBox.Height != 20 {
				t.Fatalf("circle box = %+v", c.BoundingBox)
			}
		case ImagePayload:
			sawImage = true
			if p.Source != "logo.png" || p.Fit != tree.FitContain {
				t.Fatalf("image payload = %+v", p)
			}
		}
	}
	if !sawCircle || !sawImage {
		t.Fatalf("expected both a circle and an image command, got %+v", cmds)
	}
}

func TestEmitTextLinesCenteredAlignment(t *testing.T) {
	a := tree.NewArena()
	root := a.New(tree.Text, "p1", -1, "")
	root.Layout = tree.LayoutConfig{Width: geom.Fixed(30), Height: geom.Fit()}
	center := tree.TextCenter
	root.Text = &tree.TextConfig{Content: "ab cd ef", FontSize: 10, LineSpacingFactor: 1.2, TextAlign: center}

	solve(a, map[string]geom.Size{"p1": {Width: 100, Height: 100}})

	cmds := Emit(a, a.Roots())
	if len(cmds) != 3 {
		t.Fatalf("expected 3 line commands, got %d", len(cmds))
	}
	lineHeight := root.Text.ResolvedLineHeight()
	for i, c := range cmds {
		tp, ok := c.Payload.(TextPayload)
		if !ok {
			t.Fatalf("command %d payload = %+v, want TextPayload", i, c.Payload)
		}
		wantX := (30 - c.BoundingBox.Width) / 2
		if diff := c.BoundingBox.X - wantX; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("line %d x = %v, want %v", i, c.BoundingBox.X, wantX)
		}
		wantY := float64(i) * lineHeight
		if diff := c.BoundingBox.Y - wantY; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("line %d y = %v, want %v", i, c.BoundingBox.Y, wantY)
		}
		if len(tp.Runs) == 0 {
			t.Fatalf("line %d has no runs", i)
		}
	}
}

func TestEmitPageGroupingAndSort(t *testing.T) {
	a := tree.NewArena()
	p2 := a.New(tree.Rectangle, "p2", -1, "")
	p2.Layout = tree.LayoutConfig{Width: geom.Fixed(10), Height: geom.Fixed(10)}
	p1 := a.New(tree.Rectangle, "p1", -1, "")
	p1.Layout = tree.LayoutConfig{Width: geom.Fixed(10), Height: geom.Fixed(10)}

	solve(a, map[string]geom.Size{"p1": {Width: 10, Height: 10}, "p2": {Width: 10, Height: 10}})

	cmds := Emit(a, a.Roots())
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	if cmds[0].PageID != "p1" || cmds[1].PageID != "p2" {
		t.Fatalf("expected p1 before p2, got %s then %s", cmds[0].PageID, cmds[1].PageID)
	}
}

func TestEmitClipsOverconstrainedChild(t *testing.T) {
	a := tree.NewArena()
	root := a.New(tree.Rectangle, "p1", -1, "")
	root.Layout = tree.LayoutConfig{Width: geom.Fixed(50), Height: geom.Fixed(20), Direction: tree.Row, ChildGap: 2}
	c1 := a.New(tree.Rectangle, "p1", root.Index(), "")
	c1.Layout = tree.LayoutConfig{Width: geom.Fixed(40), Height: geom.Grow()}
	c2 := a.New(tree.Rectangle, "p1", root.Index(), "")
	c2.Layout = tree.LayoutConfig{Width: geom.Fixed(40), Height: geom.Grow()}

	solve(a, map[string]geom.Size{"p1": {Width: 50, Height: 20}})

	cmds := Emit(a, a.Roots())
	var rootBox geom.BoundingBox
	for _, c := range cmds {
		if c.ZIndex == 0 {
			rootBox = c.BoundingBox
		}
	}
	for _, c := range cmds {
		if c.ZIndex != 1 {
			continue
		}
		if c.BoundingBox.Right() > rootBox.Right()+1e-9 {
			t.Fatalf("child box %+v not clipped to root %+v", c.BoundingBox, rootBox)
		}
	}
	_ = c2
}
