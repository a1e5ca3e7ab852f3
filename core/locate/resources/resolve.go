package resources

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/gfxfont/core"
	"github.com/npillmayer/gfxfont/core/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// NotFound returns an application error for a missing font.
func NotFound(res string) error {
	e := fmt.Errorf("resource missing: %v", res)
	return core.WrapError(e, core.EMISSING, "font not found: %s", res)
}

// packaged are the Go fonts, which are always available.
var packaged = map[string][]byte{
	"go":                goregular.TTF,
	"goregular":         goregular.TTF,
	"gobold":            gobold.TTF,
	"gobolditalic":      gobolditalic.TTF,
	"goitalic":          goitalic.TTF,
	"gomedium":          gomedium.TTF,
	"gomediumitalic":    gomediumitalic.TTF,
	"gomono":            gomono.TTF,
	"gomonobold":        gomonobold.TTF,
	"gomonobolditalic":  gomonobolditalic.TTF,
	"gomonoitalic":      gomonoitalic.TTF,
	"gosmallcaps":       gosmallcaps.TTF,
	"gosmallcapsitalic": gosmallcapsitalic.TTF,
}

// PackagedFonts lists the names of the fonts which are always available.
func PackagedFonts() []string {
	names := make([]string, 0, len(packaged))
	for name := range packaged {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveFont loads a font, searching in this order:
//
// ▪︎ name is a path to an existing font file;
//
// ▪︎ name is one of the packaged Go fonts (see PackagedFonts);
//
// ▪︎ name is a font installed on the system, e.g. "DejaVuSans.ttf".
//
// If none of these succeeds, an error with code core.EMISSING is returned.
func ResolveFont(name string) (*font.ScalableFont, error) {
	if name == "" {
		return nil, core.Error(core.EINVALID, "no font specified")
	}
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		tracer().Debugf("%s is a font file", name)
		return font.LoadOpenTypeFont(name)
	}
	if bytez, ok := packaged[normalize(name)]; ok {
		tracer().Debugf("found font %s as packaged Go font", name)
		f, err := font.ParseOpenTypeFont(bytez)
		if err != nil {
			return nil, core.WrapError(err, core.EINTERNAL, "cannot parse packaged font %s", name)
		}
		f.Filepath = normalize(name) + ".ttf"
		return f, nil
	}
	fpath, err := findfont.Find(name) // try to find as system font
	if err == nil && fpath != "" {
		tracer().Debugf("%s is a system font at %s", name, fpath)
		return font.LoadOpenTypeFont(fpath)
	}
	tracer().Infof("cannot resolve font %s", name)
	return nil, NotFound(name)
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimSuffix(name, ".ttf")
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name)
}
