package ranges

import (
	"math"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/gfxfont"
	"github.com/npillmayer/gfxfont/core"
)

// Canonicalize transforms a list of raw ranges into canonical form:
// disjoint, ascending by first codepoint, with adjacent ranges merged.
//
// Overlapping or nested ranges are not merged silently, but result in an
// error wrapping ErrOverlap. The same holds for a range ending before it
// starts. raw is not modified.
func Canonicalize(raw []gfxfont.Range) ([]gfxfont.Range, error) {
	list := arraylist.New()
	for i := range raw {
		r := raw[i]
		if r.Last < r.First {
			return nil, core.WrapError(ErrOverlap, core.EINVALID,
				"range %v ends before it starts", r)
		}
		list.Add(&r)
	}
	list.Sort(byFirstThenLength)
	for i := 1; i < list.Size(); i++ {
		prev, cur := rangeAt(list, i-1), rangeAt(list, i)
		if prev.Contains(cur.First) || cur.Last < prev.Last {
			return nil, core.WrapError(ErrOverlap, core.EINVALID,
				"range %v overlaps range %v", *cur, *prev)
		}
	}
	// sorted and disjoint, thus a single backward sweep finds all the merges
	for i := list.Size() - 1; i > 0; i-- {
		prev, cur := rangeAt(list, i-1), rangeAt(list, i)
		if prev.Last < math.MaxUint32 && cur.First == prev.Last+1 {
			tracer().Debugf("merging ranges %v and %v", *prev, *cur)
			prev.Last = cur.Last
			list.Remove(i)
		}
	}
	canonical := make([]gfxfont.Range, list.Size())
	for i := range canonical {
		canonical[i] = *rangeAt(list, i)
	}
	tracer().Debugf("canonical ranges = %v", canonical)
	return canonical, nil
}

// Compile parses a range specification and canonicalizes it. A capacity
// of zero selects DefaultCapacity.
func Compile(spec string, capacity int) ([]gfxfont.Range, error) {
	raw, _, err := Parser{Capacity: capacity}.Parse(spec)
	if err != nil {
		return nil, err
	}
	return Canonicalize(raw)
}

// ASCII is the pre-canonical range list of printable 7-bit ASCII,
// from space to tilde.
func ASCII() []gfxfont.Range {
	return []gfxfont.Range{{First: 0x20, Last: 0x7E}}
}

// Single is the pre-canonical range list for a single codepoint.
func Single(cp uint32) []gfxfont.Range {
	return []gfxfont.Range{{First: cp, Last: cp}}
}

// Span is the pre-canonical range list for first…last.
func Span(first, last uint32) []gfxfont.Range {
	return []gfxfont.Range{{First: first, Last: last}}
}

// CharsCount is the number of codepoints covered by a list of disjoint ranges.
func CharsCount(ranges []gfxfont.Range) uint64 {
	var n uint64
	for _, r := range ranges {
		n += r.Len()
	}
	return n
}

func rangeAt(list *arraylist.List, i int) *gfxfont.Range {
	v, _ := list.Get(i)
	return v.(*gfxfont.Range)
}

// byFirstThenLength orders ranges by first codepoint; shorter ranges go
// first on ties.
var byFirstThenLength utils.Comparator = func(a, b interface{}) int {
	r1, r2 := a.(*gfxfont.Range), b.(*gfxfont.Range)
	switch {
	case r1.First < r2.First:
		return -1
	case r1.First > r2.First:
		return 1
	case r1.Last < r2.Last:
		return -1
	case r1.Last > r2.Last:
		return 1
	}
	return 0
}
