package ranges

import (
	"errors"
	"strconv"
	"strings"

	"github.com/npillmayer/gfxfont"
	"github.com/npillmayer/gfxfont/core"
)

// Errors for range specifications. They are wrapped into core.AppErrors
// and may be checked with errors.Is.
var (
	ErrSyntax   = errors.New("range syntax error")
	ErrOverlap  = errors.New("ranges overlap")
	ErrCapacity = errors.New("too many ranges")
)

// DefaultCapacity is the maximum number of ranges a font record is able to
// count (rangesCount is an 8-bit field).
const DefaultCapacity = 255

// Parser parses range specifications into raw ranges. A Parser will not
// accept more than Capacity ranges; a zero Capacity selects DefaultCapacity.
type Parser struct {
	Capacity int
}

// Parse splits a range specification into raw (first, last) pairs, in the
// order of appearance. Duplicates and overlaps are not detected at this
// stage.
//
// consumed is the number of bytes of spec which have been parsed; it is
// len(spec) if and only if the whole specification has been processed.
// If spec holds more tokens than p.Capacity, Parse returns the first
// Capacity ranges together with an error wrapping ErrCapacity.
// Malformed tokens result in an error wrapping ErrSyntax.
func (p Parser) Parse(spec string) (raw []gfxfont.Range, consumed int, err error) {
	capacity := p.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	pos := 0
	for {
		token, next, final := spec[pos:], len(spec), true
		if end := strings.IndexAny(spec[pos:], ",;"); end >= 0 {
			token, next, final = spec[pos:pos+end], pos+end+1, false
		}
		if len(raw) == capacity {
			tracer().Errorf("range specification holds more than %d ranges", capacity)
			return raw, pos, core.WrapError(ErrCapacity, core.ELIMIT,
				"more than %d codepoint ranges specified", capacity)
		}
		r, err := parseToken(token)
		if err != nil {
			return nil, pos, err
		}
		raw = append(raw, r)
		tracer().Debugf("range token %q = %v", token, r)
		if final {
			return raw, len(spec), nil
		}
		pos = next
	}
}

// parseToken parses either a single codepoint or a pair of codepoints
// joined by '-'. An empty left side degrades to a single codepoint.
func parseToken(token string) (gfxfont.Range, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return gfxfont.Range{}, core.WrapError(ErrSyntax, core.EINVALID, "empty range token")
	}
	dash := strings.IndexByte(token, '-')
	if dash < 0 {
		cp, err := ParseCodepoint(token)
		return gfxfont.Range{First: cp, Last: cp}, err
	}
	last, err := ParseCodepoint(token[dash+1:])
	if err != nil {
		return gfxfont.Range{}, err
	}
	first := last
	if left := strings.TrimSpace(token[:dash]); left != "" {
		if first, err = ParseCodepoint(left); err != nil {
			return gfxfont.Range{}, err
		}
	}
	if last < first {
		return gfxfont.Range{}, core.WrapError(ErrSyntax, core.EINVALID,
			"range %q ends before it starts", token)
	}
	return gfxfont.Range{First: first, Last: last}, nil
}

// ParseCodepoint parses a single codepoint literal: decimal, hexadecimal
// with prefix '0x' or hexadecimal with suffix 'h'. The literal has to be
// consumed completely.
func ParseCodepoint(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	var n uint64
	var err error
	switch {
	case s == "":
		return 0, core.WrapError(ErrSyntax, core.EINVALID, "missing codepoint")
	case len(s) > 1 && s[len(s)-1] == 'h':
		n, err = strconv.ParseUint(s[:len(s)-1], 16, 32)
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		n, err = strconv.ParseUint(s[2:], 16, 32)
	default:
		n, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return 0, core.WrapError(ErrSyntax, core.EINVALID, "malformed codepoint %q", s)
	}
	return uint32(n), nil
}
