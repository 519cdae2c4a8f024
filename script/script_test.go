package script_test

import (
	"testing"

	"github.com/inkwell-labs/pageflow"
	"github.com/inkwell-labs/pageflow/script"
)

type fakeMetrics struct{}

func (fakeMetrics) WidthOfString(faceID string, sizePt float64, text string) (float64, error) {
	return float64(len([]rune(text))) * 6, nil
}

func (fakeMetrics) LineHeight(faceID string, sizePt float64) (float64, error) {
	return sizePt * 1.2, nil
}

const sample = `
page 100 100 {
  rect width: fit height: fit direction: column fill: #ff0000 {
    text "hello world" fontSize: 10 color: #333333 align: center
    circle width: 20 height: 20 {}
    image "logo.png" width: 30 height: 20 fit: contain opacity: 0.5
  }
}
`

func TestParseAndCompile(t *testing.T) {
	doc, err := script.Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
	if doc.Pages[0].Width != 100 || doc.Pages[0].Height != 100 {
		t.Fatalf("page size = %vx%v, want 100x100", doc.Pages[0].Width, doc.Pages[0].Height)
	}

	e, err := pageflow.NewEngine(
		pageflow.WithFontMetrics(fakeMetrics{}),
		pageflow.WithFonts(pageflow.FontConfig{Regular: "regular", Bold: "bold", Italic: "italic", BoldItalic: "boldItalic"}),
	)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if err := script.Compile(doc, e); err != nil {
		t.Fatalf("Compile: %v", err)
	}

	cmds, _, err := e.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var sawRect, sawCircle, sawText, sawImage bool
	for _, c := range cmds {
		switch p := c.Payload.(type) {
		case pageflow.RectanglePayload:
			sawRect = true
			_ = p
		case pageflow.CirclePayload:
			sawCircle = true
		case pageflow.TextPayload:
			sawText = true
		case pageflow.ImagePayload:
			sawImage = true
			if p.Source != "logo.png" || p.Fit != pageflow.FitContain {
				t.Fatalf("image payload = %+v", p)
			}
		}
	}
	if !sawRect || !sawCircle || !sawText || !sawImage {
		t.Fatalf("expected all four element kinds, got rect=%v circle=%v text=%v image=%v", sawRect, sawCircle, sawText, sawImage)
	}
}

func TestCompileUnknownAttrIsError(t *testing.T) {
	doc, err := script.Parse(`page 50 50 { rect direction: diagonal {} }`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	e, err := pageflow.NewEngine(pageflow.WithFontMetrics(fakeMetrics{}))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if err := script.Compile(doc, e); err == nil {
		t.Fatalf("expected an error for an unknown direction value")
	}
}
