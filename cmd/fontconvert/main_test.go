package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	flags "github.com/jessevdk/go-flags"
	"github.com/npillmayer/gfxfont/backend/binfmt"
	"github.com/npillmayer/gfxfont/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options(font string) Options {
	opts := Options{Size: "9", DPI: 96, Hinting: "no", Progmem: "no"}
	opts.Args.Font = font
	return opts
}

func TestConvertToHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxfont.cli")
	defer teardown()
	//
	opts := options("goregular")
	opts.ASCII = true
	opts.Progmem = "yes"
	var out bytes.Buffer
	require.NoError(t, run(opts, &out))
	src := out.String()
	assert.Contains(t, src, "const uint8_t goregular9pt_ascii_Bitmaps[] PROGMEM = {")
	assert.Contains(t, src, "(GFXglyphRange *)goregular9pt_ascii_Ranges,")
	assert.Contains(t, src, "// 0x7E '~'")
	assert.Contains(t, src, "  1, 95, ")
}

func TestConvertToBinaryFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxfont.cli")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "font.bin")
	opts := options("gomono")
	opts.Ranges = "0x30-0x39;0x41-0x46"
	opts.Binary = true
	opts.Output = flags.Filename(path)
	var out bytes.Buffer
	require.NoError(t, run(opts, &out))
	assert.Zero(t, out.Len(), "nothing goes to stdout when writing a file")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	f, err := binfmt.Read(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, f.Glyphs, 16)
	assert.Equal(t, uint8(2), f.RangesCount)
}

func TestConversionErrorsLeaveNoOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxfont.cli")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "font.h")
	for _, opts := range []Options{
		func() Options { o := options("goregular"); o.ASCII = true; o.OneChar = "65"; return o }(),
		func() Options { o := options("goregular"); o.Ranges = "0x41-0x45,0x43"; return o }(),
		func() Options { o := options("goregular"); o.Size = "0"; return o }(),
		func() Options { o := options("goregular"); o.Progmem = "maybe"; return o }(),
		func() Options { o := options("no-such-font-4711"); return o }(),
	} {
		opts.Output = flags.Filename(path)
		err := run(opts, &bytes.Buffer{})
		assert.Error(t, err)
		assert.Contains(t, []int{core.EINVALID, core.EMISSING}, core.Code(err), "unexpected error %v", err)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	}
}

func TestParseYesNo(t *testing.T) {
	for s, expected := range map[string]bool{"yes": true, "1": true, "YES": true, "no": false, "0": false, "": false} {
		b, err := parseYesNo(s)
		require.NoError(t, err)
		assert.Equal(t, expected, b, s)
	}
	_, err := parseYesNo("2")
	assert.Error(t, err)
}
