package itemize

import (
	"fmt"
	"unicode/utf16"

	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// Run is a piece of text of uniform script and bidi level. Start and End are
// offsets in UTF-16 code units, End is exclusive.
type Run struct {
	Start  int
	End    int
	Script language.Script
	Level  uint8
}

// Len returns the length of a run in code units.
func (r Run) Len() int {
	return r.End - r.Start
}

// IsRTL is true for runs set right-to-left, i.e. runs of odd level.
func (r Run) IsRTL() bool {
	return r.Level%2 == 1
}

func (r Run) String() string {
	return fmt.Sprintf("[%d,%d) %s level=%d", r.Start, r.End, r.Script, r.Level)
}

// Itemizer breaks text into runs by combining the boundaries found by a
// ScriptIterator and a BidiIterator. Runs are produced in logical order, are
// non-empty and cover the text without gaps.
//
// An Itemizer is single-pass and not safe for concurrent use.
type Itemizer struct {
	text   []uint16
	script *ScriptIterator
	bidi   *BidiIterator
	offset int
}

// NewItemizer creates an itemizer for text, with one bidi level per code unit.
// Missing levels are taken to be 0, surplus levels are ignored.
func NewItemizer(text []uint16, levels []uint8) *Itemizer {
	if len(levels) != len(text) {
		tracer().Infof("itemizer got %d bidi levels for %d code units", len(levels), len(text))
		norm := make([]uint8, len(text))
		copy(norm, levels)
		levels = norm
	}
	return &Itemizer{
		text:   text,
		script: NewScriptIterator(text),
		bidi:   NewBidiIterator(levels),
	}
}

// Itemize creates an itemizer for a string. Bidi levels are computed with
// dir as the paragraph direction, see BidiLevels.
func Itemize(s string, dir bidi.Direction) *Itemizer {
	text := utf16.Encode([]rune(s))
	return NewItemizer(text, BidiLevels(text, dir))
}

// Text returns the text of an itemizer as UTF-16 code units.
func (it *Itemizer) Text() []uint16 {
	return it.text
}

// Next returns the next run. It returns false if the text is exhausted.
func (it *Itemizer) Next() (Run, bool) {
	for !(it.script.Done() && it.bidi.Done()) {
		start := it.offset
		if it.bidi.Offset() == it.offset {
			it.bidi.Next()
		}
		if it.script.Offset() == it.offset {
			it.script.Next()
		}
		it.offset = min(it.bidi.Offset(), it.script.Offset(), len(it.text))
		if it.offset > start {
			return Run{
				Start:  start,
				End:    it.offset,
				Script: it.script.Script(),
				Level:  it.bidi.Level(),
			}, true
		}
	}
	return Run{}, false
}

// Runs drains the itemizer and returns all remaining runs.
func (it *Itemizer) Runs() []Run {
	var runs []Run
	for run, ok := it.Next(); ok; run, ok = it.Next() {
		runs = append(runs, run)
	}
	return runs
}
