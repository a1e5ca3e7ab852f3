/*
Package resources resolves fonts for an application.

A font may be given as a path to a font file, as the name of one of the Go
fonts packaged with golang.org/x/image ("goregular", "gomono", …), or as
the name of a font installed on the system. System fonts are located with
the help of github.com/flopp/go-findfont.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'gfxfont.resources'.
func tracer() tracing.Trace {
	return tracing.Select("gfxfont.resources")
}
