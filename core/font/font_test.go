package font

import (
	"errors"
	"testing"

	"github.com/npillmayer/gfxfont/core"
	"github.com/npillmayer/gfxfont/engine/glyphtable"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type TypeCaseTestEnviron struct {
	suite.Suite
	tc *TypeCase
}

// listen for 'go test' command --> run test methods
func TestTypeCaseFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxfont.fonts")
	defer teardown()
	suite.Run(t, new(TypeCaseTestEnviron))
}

// run once, before test suite methods
func (env *TypeCaseTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("gfxfont.fonts").SetTraceLevel(tracing.LevelError)
	tc, err := FallbackFont().PrepareCase(12, 96, HintingNone)
	env.Require().NoError(err)
	env.tc = tc
	tracing.Select("gfxfont.fonts").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *TypeCaseTestEnviron) TestFallbackFont() {
	f := FallbackFont()
	env.Equal("Go Regular", f.Fontname)
	env.NotEmpty(f.Family())
	env.Same(f, FallbackFont(), "fallback font must be loaded once")
}

func (env *TypeCaseTestEnviron) TestRasterizeLetter() {
	bm, err := env.tc.Rasterize('A')
	env.Require().NoError(err)
	env.T().Logf("'A' = %d×%d, left=%d, top=%d, advance=%v", bm.Width, bm.Height, bm.Left, bm.Top, bm.Advance)
	env.Greater(bm.Width, 4)
	env.Less(bm.Width, 17)
	env.Greater(bm.Height, 7)
	env.Less(bm.Height, 17)
	env.InDelta(0, bm.Top-bm.Height, 1, "'A' is expected to sit on the baseline")
	env.Greater(int(bm.Advance), 0)
	// cropped: first and last row must contain set pixels
	for _, y := range []int{0, bm.Height - 1} {
		set := false
		for x := 0; x < bm.Width; x++ {
			set = set || bm.PixelAt(x, y)
		}
		env.True(set, "row %d of 'A' is expected to have pixels", y)
	}
}

func (env *TypeCaseTestEnviron) TestRasterizeSpace() {
	bm, err := env.tc.Rasterize(' ')
	env.Require().NoError(err)
	env.Equal(0, bm.Width)
	env.Equal(0, bm.Height)
	env.Equal(0, bm.Left)
	env.Equal(0, bm.Top)
	env.Greater(int(bm.Advance), 0, "space must advance the pen")
}

func (env *TypeCaseTestEnviron) TestMissingGlyph() {
	_, err := env.tc.Rasterize(0x4E00) // CJK ideograph, not part of Go fonts
	env.True(errors.Is(err, glyphtable.ErrGlyphMissing))
	env.Equal("", env.tc.GlyphName(0x4E00))
}

func (env *TypeCaseTestEnviron) TestLineHeight() {
	lh, ok := env.tc.LineHeight()
	env.True(ok)
	env.GreaterOrEqual(lh, 14)
	env.LessOrEqual(lh, 24)
}

func (env *TypeCaseTestEnviron) TestGlyphName() {
	env.T().Logf("glyph name of 'A' = %q", env.tc.GlyphName('A'))
}

func (env *TypeCaseTestEnviron) TestInvalidCase() {
	_, err := FallbackFont().PrepareCase(0, 96, HintingNone)
	env.Equal(core.EINVALID, core.Code(err))
	_, err = FallbackFont().PrepareCase(12, 0, HintingNone)
	env.Equal(core.EINVALID, core.Code(err))
}

func (env *TypeCaseTestEnviron) TestHinting() {
	for s, h := range map[string]Hinting{"": HintingNone, "no": HintingNone, "Bytecode": HintingBytecode, "auto": HintingAuto} {
		hinting, err := ParseHinting(s)
		env.NoError(err)
		env.Equal(h, hinting)
	}
	_, err := ParseHinting("full")
	env.Error(err)
	env.Equal("bytecode", HintingBytecode.String())
	tc, err := FallbackFont().PrepareCase(9, 141, HintingAuto)
	env.Require().NoError(err)
	env.Equal(HintingAuto, tc.Hinting())
	env.Equal(141.0, tc.DPI())
	env.Equal(9.0, tc.PtSize())
}

func (env *TypeCaseTestEnviron) TestLoadMissingFile() {
	_, err := LoadOpenTypeFont("testdata/no-such-font.ttf")
	env.Equal(core.EMISSING, core.Code(err))
}
