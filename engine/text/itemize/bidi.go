package itemize

import (
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// BidiIterator finds the boundaries of runs of equal bidi embedding level.
// It works on levels computed beforehand, one per UTF-16 code unit.
type BidiIterator struct {
	levels []uint8
	offset int
	level  uint8
	done   bool
}

// NewBidiIterator creates an iterator for runs of bidi levels.
func NewBidiIterator(levels []uint8) *BidiIterator {
	return &BidiIterator{levels: levels}
}

// Offset returns the end of the current run, in code units.
func (it *BidiIterator) Offset() int {
	return it.offset
}

// Level returns the embedding level of the current run.
func (it *BidiIterator) Level() uint8 {
	return it.level
}

// Done is true after the iterator has reached the end of the levels.
func (it *BidiIterator) Done() bool {
	return it.done
}

// Next advances to the end of the next level run. It returns false if there
// are no more runs.
func (it *BidiIterator) Next() bool {
	if it.done {
		return false
	}
	start := it.offset
	if it.offset < len(it.levels) {
		it.level = it.levels[it.offset]
		for it.offset < len(it.levels) && it.levels[it.offset] == it.level {
			it.offset++
		}
	}
	if it.offset >= len(it.levels) {
		it.done = true
	}
	return it.offset > start
}

// BidiLevels computes the bidi embedding level of every code unit of text.
// dir is the paragraph direction: bidi.LeftToRight and bidi.RightToLeft
// force the direction, any other value (usually bidi.Neutral) lets the first
// strong character decide, defaulting to left-to-right. Paragraph separators
// start a new paragraph.
//
// Characters in left-to-right runs get the lowest even level at or above the
// paragraph level, characters in right-to-left runs the lowest odd one.
// Explicit embeddings are not reflected in the levels.
func BidiLevels(text []uint16, dir bidi.Direction) []uint8 {
	levels := make([]uint8, len(text))
	if len(text) == 0 {
		return levels
	}
	runes := utf16.Decode(text)
	units := make([]int, len(runes)+1) // code unit offset of every rune
	for i, u := 0, 0; i < len(runes); i++ {
		units[i] = u
		_, n := codePointAt(text, u)
		u += n
	}
	units[len(runes)] = len(text)
	mark := 0
	if dir == bidi.LeftToRight {
		mark = 1 // a leading LRM makes x/text choose a left-to-right paragraph
	}
	var p bidi.Paragraph
	for start := 0; start < len(runes); {
		s := string(runes[start:])
		if mark > 0 {
			s = "\u200e" + s
		}
		n, err := p.SetString(s, bidi.DefaultDirection(dir))
		count := utf8.RuneCountInString(s[:n]) - mark
		if err != nil || count <= 0 {
			count = len(runes) - start
		}
		base := paragraphLevel(runes[start:start+count], dir)
		para := make([]uint8, count)
		for i := range para {
			para[i] = base
		}
		if ordering, err := p.Order(); err != nil {
			tracer().Errorf("bidi ordering failed: %v", err)
		} else {
			for i := 0; i < ordering.NumRuns(); i++ {
				run := ordering.Run(i)
				lvl := runLevel(base, run.Direction())
				from, to := run.Pos()
				for k := max(from-mark, 0); k <= to-mark && k < count; k++ {
					para[k] = lvl
				}
			}
		}
		if props, _ := bidi.LookupRune(runes[start+count-1]); props.Class() == bidi.B {
			para[count-1] = base // the last run of an ordering may extend over the separator
		}
		for i, lvl := range para {
			for u := units[start+i]; u < units[start+i+1]; u++ {
				levels[u] = lvl
			}
		}
		start += count
	}
	return levels
}

// paragraphLevel finds the paragraph embedding level as the bidi algorithm
// does: right-to-left if forced or if the first strong character outside of
// isolates is right-to-left.
func paragraphLevel(runes []rune, dir bidi.Direction) uint8 {
	switch dir {
	case bidi.RightToLeft:
		return 1
	case bidi.LeftToRight:
		return 0
	}
	isolates := 0
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.LRI, bidi.RLI, bidi.FSI:
			isolates++
		case bidi.PDI:
			if isolates > 0 {
				isolates--
			}
		case bidi.L:
			if isolates == 0 {
				return 0
			}
		case bidi.R, bidi.AL:
			if isolates == 0 {
				return 1
			}
		case bidi.B:
			return 0
		}
	}
	return 0
}

func runLevel(base uint8, dir bidi.Direction) uint8 {
	rtl := dir == bidi.RightToLeft
	if (base%2 == 1) == rtl {
		return base
	}
	return base + 1
}
