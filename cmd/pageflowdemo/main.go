// Command pageflowdemo compiles a script document into a PDF, wiring the
// canvasfont/rasterimage adapters and github.com/tdewolff/canvas/renderers/pdf
// for final byte emission the way the teacher's own main.go wires its DSL
// parser to its canvas renderer.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/inkwell-labs/pageflow"
	"github.com/inkwell-labs/pageflow/adapters/canvasfont"
	"github.com/inkwell-labs/pageflow/adapters/rasterimage"
	"github.com/inkwell-labs/pageflow/script"
)

type stdLogger struct{ *log.Logger }

func (l stdLogger) Warn(msg string, kv ...any)  { l.Printf("WARN %s %v", msg, kv) }
func (l stdLogger) Debug(msg string, kv ...any) { l.Printf("DEBUG %s %v", msg, kv) }

func main() {
	in := flag.String("in", "examples/demo.flow", "script file to compile")
	out := flag.String("out", "output/demo.pdf", "PDF output path")
	regular := flag.String("font-regular", "", "path to the regular-weight TTF/OTF")
	bold := flag.String("font-bold", "", "path to the bold-weight TTF/OTF")
	italic := flag.String("font-italic", "", "path to the italic TTF/OTF")
	boldItalic := flag.String("font-bold-italic", "", "path to the bold-italic TTF/OTF")
	flag.Parse()

	if err := run(*in, *out, *regular, *bold, *italic, *boldItalic); err != nil {
		log.Fatalf("pageflowdemo: %v", err)
	}
	fmt.Printf("wrote %s\n", *out)
}

func run(inPath, outPath, regular, bold, italic, boldItalic string) error {
	if regular == "" {
		return fmt.Errorf("-font-regular is required")
	}
	source, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}
	doc, err := script.Parse(string(source))
	if err != nil {
		return err
	}

	fonts := canvasfont.New()
	fontConfig := pageflow.FontConfig{Regular: "regular"}
	if err := fonts.RegisterFontFile("regular", regular); err != nil {
		return err
	}
	if bold != "" {
		if err := fonts.RegisterFontFile("bold", bold); err != nil {
			return err
		}
		fontConfig.Bold = "bold"
	}
	if italic != "" {
		if err := fonts.RegisterFontFile("italic", italic); err != nil {
			return err
		}
		fontConfig.Italic = "italic"
	}
	if boldItalic != "" {
		if err := fonts.RegisterFontFile("boldItalic", boldItalic); err != nil {
			return err
		}
		fontConfig.BoldItalic = "boldItalic"
	}

	images := rasterimage.New(filepath.Dir(inPath))

	engine, err := pageflow.NewEngine(
		pageflow.WithFonts(fontConfig),
		pageflow.WithFontMetrics(fonts),
		pageflow.WithImageMetrics(images),
		pageflow.WithLogger(stdLogger{log.New(os.Stderr, "", 0)}),
	)
	if err != nil {
		return err
	}
	if err := script.Compile(doc, engine); err != nil {
		return err
	}

	commands, warnings, err := engine.Render()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Printf("warning: %s: %s", w.Kind, w.Message)
	}

	pageSizes := make(map[string][2]float64, len(doc.Pages))
	pageOrder := make([]string, len(doc.Pages))
	for i, p := range doc.Pages {
		id := fmt.Sprintf("page-%d", i+1)
		pageSizes[id] = [2]float64{p.Width, p.Height}
		pageOrder[i] = id
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	return writePDF(f, commands, fonts, fontConfig, pageOrder, pageSizes)
}
