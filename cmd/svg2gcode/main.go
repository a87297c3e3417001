package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	"github.com/quillvec/svg"
	"github.com/quillvec/svg/gcode"
	"github.com/quillvec/svg/viewer"
)

type Flags struct {
	InputPath      string
	OutputPath     string
	Scale          float64
	Profile        string
	NoLineComments bool
	View           bool
	Inkscape       bool
	ShowGCode      bool
}

func main() {
	var f Flags
	flag.StringVar(&f.InputPath, "i", "", "input .svg file or directory")
	flag.StringVar(&f.OutputPath, "o", "", "output file (single input) or directory")
	flag.Float64Var(&f.Scale, "s", 1.0, "scale factor")
	flag.StringVar(&f.Profile, "profile", "", "machine profile name")
	flag.BoolVar(&f.NoLineComments, "nlc", false, "no line comments")
	flag.BoolVar(&f.View, "v", false, "view the last converted file")
	flag.BoolVar(&f.Inkscape, "inkscape", false, "preprocess inputs with inkscape (object-to-path)")
	flag.BoolVar(&f.ShowGCode, "show-gcode", false, "print resulting G-code even if -o is set")
	flag.Parse()

	if f.InputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	var profile *gcode.Profile
	if f.Profile != "" {
		p, err := gcode.GetProfile(f.Profile)
		if err != nil {
			glg.Fatalf("Unknown profile %q: %v", f.Profile, err)
		}
		profile = p
	}

	inputs, err := discoverInputs(f.InputPath)
	if err != nil {
		glg.Fatalf("Cannot read input %s: %v", f.InputPath, err)
	}
	if len(inputs) == 0 {
		glg.Fatalf("No .svg files found under %s", f.InputPath)
	}

	if f.Inkscape {
		inputs = preprocess(inputs)
	}

	var last *gcode.Builder
	for _, input := range inputs {
		builder, err := convert(input, f.Scale, profile, f.NoLineComments)
		if err != nil {
			glg.Errorf("Cannot convert %s: %v", input, err)
			continue
		}
		last = builder

		out := outputPath(f, input)
		if out == "" || f.ShowGCode {
			fmt.Println(builder.String())
		}
		if out != "" {
			if err := os.WriteFile(out, []byte(builder.String()), 0644); err != nil {
				glg.Fatalf("Cannot write file %s: %v", out, err)
			}
			glg.Infof("wrote %s", out)
		}
	}

	if f.View && last != nil {
		ebiten.SetWindowSize(800, 600)
		if err := ebiten.RunGame(viewer.NewViewer(last)); err != nil {
			glg.Fatalf("Cannot run viewer: %v", err)
		}
	}
}

// convert parses one SVG file and streams its drawing instructions into a
// fresh G-code builder. Conversions are independent of each other.
func convert(path string, scale float64, profile *gcode.Profile, noComments bool) (*gcode.Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := svg.ParseSvg(string(data), filepath.Base(path), 0)
	if err != nil {
		return nil, err
	}

	builder := gcode.NewBuilder().SetScale(scale).SetProfile(profile)
	if noComments {
		builder.NoComments()
	}

	if err := doc.ParseDrawingInstructions(builder); err != nil {
		// failed elements were skipped; the rest converted
		glg.Warnf("%s: %v", path, err)
	}

	return builder, nil
}

func discoverInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var inputs []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".svg") {
			inputs = append(inputs, p)
		}
		return nil
	})
	return inputs, err
}

// preprocess runs inkscape's object-to-path conversion over every input
// so text and shape elements arrive as path descriptions.
func preprocess(inputs []string) []string {
	proxy := inkscape.NewProxy(inkscape.Verbose(false))
	if err := proxy.Run(); err != nil {
		glg.Fatalf("Cannot run inkscape: %v", err)
	}
	defer proxy.Close()

	converted := make([]string, 0, len(inputs))
	for _, input := range inputs {
		out := input + ".paths.svg"
		proxy.RawCommands(
			fmt.Sprintf("file-open:%s", input),
			fmt.Sprintf("export-filename:%s", out),
			"export-type:svg",
			"select-all",
			"object-to-path",
			"export-do",
		)
		converted = append(converted, out)
	}

	glg.Info("inkscape preprocessing done")
	return converted
}

func outputPath(f Flags, input string) string {
	if f.OutputPath == "" {
		return ""
	}

	info, err := os.Stat(f.OutputPath)
	if err == nil && info.IsDir() {
		base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		return filepath.Join(f.OutputPath, base+".gcode")
	}

	return f.OutputPath
}
