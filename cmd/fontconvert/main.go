/*
Command fontconvert converts TrueType and OpenType fonts to bitmap fonts for
the Adafruit GFX library.

Usage:

	fontconvert -s SIZE [options] font

The font is either a path to a font file, the name of a packaged Go font
("goregular", "gomono", …) or the name of a font installed on the system.
Codepoints are selected with one of --ascii, --onechar, --first/--last or
--ranges, e.g.

	fontconvert -s 12 -r "0x20-0x7E;0xA0-0xFF;0x20AC" DejaVuSans.ttf > dejavu12.h

Font sizes are in points unless a unit is given, as in "16px" or "4mm".

Output is C source, written to stdout unless --output is given. With
--binary, the font is written in a compact binary format for loading at
runtime. Glyphs missing from the font are reported as warnings; the font is
converted nevertheless.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bytes"
	"io"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/npillmayer/gfxfont"
	"github.com/npillmayer/gfxfont/backend/binfmt"
	"github.com/npillmayer/gfxfont/backend/cheader"
	"github.com/npillmayer/gfxfont/core"
	"github.com/npillmayer/gfxfont/core/dimen"
	"github.com/npillmayer/gfxfont/core/font"
	"github.com/npillmayer/gfxfont/core/locate/resources"
	"github.com/npillmayer/gfxfont/engine/convert"
	"github.com/npillmayer/gfxfont/engine/ranges"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'gfxfont.cli'
func tracer() tracing.Trace {
	return tracing.Select("gfxfont.cli")
}

// traceKeys are the tracers configured by --trace.
var traceKeys = []string{
	"gfxfont", "gfxfont.cli", "gfxfont.convert", "gfxfont.ranges", "gfxfont.glyphs",
	"gfxfont.fonts", "gfxfont.resources", "gfxfont.cheader", "gfxfont.binfmt",
}

// Options are the command line options.
type Options struct {
	Size    string         `short:"s" long:"size" description:"font size, e.g. 9, 9pt or 12px" required:"true" value-name:"SIZE"`
	First   string         `short:"f" long:"first" description:"first character" value-name:"CODE"`
	Last    string         `short:"l" long:"last" description:"last character" value-name:"CODE"`
	OneChar string         `short:"c" long:"onechar" description:"convert a single character only" value-name:"CODE"`
	ASCII   bool           `short:"a" long:"ascii" description:"ASCII mode: first=0x20, last=0x7E"`
	Ranges  string         `short:"r" long:"ranges" description:"codepoint ranges, e.g. \"0x20-0x7E,0xA0-0xFF\"" value-name:"RANGES"`
	DPI     float64        `short:"d" long:"dpi" description:"resolution in dots per inch" default:"96"`
	Hinting string         `short:"t" long:"hinting" description:"hinting mode" choice:"no" choice:"bytecode" choice:"auto" default:"no"`
	Progmem string         `short:"p" long:"progmem" description:"use PROGMEM for font data declarations" optional:"yes" optional-value:"yes" default:"no" value-name:"1|0|yes|no"`
	Name    string         `short:"n" long:"name" description:"C identifier of the font (derived from font file if empty)"`
	Output  flags.Filename `short:"o" long:"output" description:"output file (default: stdout)"`
	Binary  bool           `short:"b" long:"binary" description:"write binary font format instead of C source"`
	Trace   string         `long:"trace" description:"trace level" choice:"Debug" choice:"Info" choice:"Error" default:"Error"`
	Args    struct {
		Font string `positional-arg-name:"font" description:"font file or font name"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	initDisplay()
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if err := initTracing(opts.Trace); err != nil {
		pterm.Error.Println("cannot configure tracing")
		os.Exit(1)
	}
	if err := run(opts, os.Stdout); err != nil {
		core.UserError(err)
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output. Messages go to stderr, as
// stdout carries the converted font.
func initDisplay() {
	pterm.SetDefaultOutput(os.Stderr)
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " Warn",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// run converts a font as requested by opts. C source is written to stdout
// unless an output file is given.
func run(opts Options, stdout io.Writer) error {
	cfg, err := config(opts)
	if err != nil {
		return err
	}
	progmem, err := parseYesNo(opts.Progmem)
	if err != nil {
		return err
	}
	sf, err := resources.ResolveFont(opts.Args.Font)
	if err != nil {
		return err
	}
	tracer().Infof("converting font %s (%s)", sf.Fontname, sf.Filepath)
	result, err := convert.ConvertFont(cfg, sf)
	if err != nil {
		return err
	}
	for _, diag := range result.Diagnostics {
		pterm.Warning.Println(core.UserMessage(diag))
	}
	//
	var out bytes.Buffer
	if opts.Binary {
		err = binfmt.Write(&out, result.Font)
	} else {
		err = cheader.Write(&out, result.Font, cheader.Options{
			Name:     opts.Name,
			Progmem:  progmem,
			FontFile: sf.Filepath,
			Family:   sf.Family(),
			Size:     cfg.Size,
			DPI:      int(cfg.DPI),
			Hinting:  cfg.Hinting.String(),
		})
	}
	if err != nil {
		return err
	}
	if err = emit(out.Bytes(), string(opts.Output), stdout); err != nil {
		return err
	}
	report(result.Font, len(result.Diagnostics))
	return nil
}

func config(opts Options) (convert.Config, error) {
	hinting, err := font.ParseHinting(opts.Hinting)
	if err != nil {
		return convert.Config{}, err
	}
	size, err := dimen.ParseFontSize(opts.Size, opts.DPI)
	if err != nil {
		return convert.Config{}, err
	}
	cfg := convert.DefaultConfig()
	cfg.Size = size
	cfg.DPI = opts.DPI
	cfg.Hinting = hinting
	cfg.ASCII = opts.ASCII
	cfg.OneChar = opts.OneChar
	cfg.First = opts.First
	cfg.Last = opts.Last
	cfg.Ranges = opts.Ranges
	return cfg, nil
}

// emit writes the converted font to a file, or to stdout if no file name
// is given. Files are written only after a successful conversion.
func emit(data []byte, filename string, stdout io.Writer) error {
	if filename == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return core.WrapError(err, core.ECONNECTION, "cannot write output file %s", filename)
	}
	tracer().Infof("font written to %s", filename)
	return nil
}

func report(f *gfxfont.Font, skipped int) {
	pterm.Info.Printfln("%d ranges, %d glyphs, %d bytes of bitmaps, approx. %d bytes",
		len(f.Ranges), len(f.Glyphs), len(f.Bitmap), f.ApproxSize())
	if skipped > 0 {
		pterm.Warning.Printfln("%d codepoints have been skipped", skipped)
	}
	if len(f.Bitmap) > 0xFFFF || len(f.Ranges) > 0xFF || ranges.CharsCount(f.Ranges) > 0xFFFF {
		pterm.Warning.Println("font exceeds the 16-bit limits of the GFX format")
	}
}

// parseYesNo interprets the argument of --progmem.
func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "yes", "y", "true":
		return true, nil
	case "", "0", "no", "n", "false":
		return false, nil
	}
	return false, core.Error(core.EINVALID, "invalid progmem value %q, expected 1|0|yes|no", s)
}
