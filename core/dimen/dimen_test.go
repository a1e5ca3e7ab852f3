package dimen

import (
	"testing"

	"github.com/npillmayer/gfxfont/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxfont.core")
	defer teardown()
	//
	d, err := ParseDimen("12bp")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*BP {
		t.Errorf("(1) expected d to be 12bp (%d), is %d", 12*BP, d)
	}
	//
	d, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %d", d)
	}
	//
	d, err = ParseDimen("1.5in")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if d != 3*IN/2 {
		t.Errorf("(3) expected d to be 1.5in (%d), is %d", 3*IN/2, d)
	}
	//
	for _, s := range []string{"12px", "12", "pt", "12qq", "1.2.3pt", "100000in"} {
		if _, err = ParseDimen(s); err == nil && s != "12" {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestParseFontSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxfont.core")
	defer teardown()
	//
	size, err := ParseFontSize("9", 96)
	assert.NoError(t, err)
	assert.Equal(t, 9.0, size)
	size, err = ParseFontSize("16px", 96)
	assert.NoError(t, err)
	assert.Equal(t, 12.0, size)
	size, err = ParseFontSize("10 PT", 96)
	assert.NoError(t, err)
	assert.InDelta(t, 9.963, size, 0.001)
	size, err = ParseFontSize("1in", 72)
	assert.NoError(t, err)
	assert.Equal(t, 72.0, size)
	_, err = ParseFontSize("16px", 0)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = ParseFontSize("large", 96)
	assert.Equal(t, core.EINVALID, core.Code(err))
}
