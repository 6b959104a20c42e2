package itemize

import (
	"unicode/utf16"

	"github.com/go-text/typesetting/language"
)

// parenFrame records an opening paired character: its index in the table of
// paired characters and the script running when it was seen.
type parenFrame struct {
	index  int
	script language.Script
}

// ScriptIterator finds the boundaries of script runs in UTF-16 text.
//
// Characters of script Common or Inherited do not start a run of their own,
// but extend the run they occur in. Opening paired characters are remembered
// on a stack. A closing character takes the script of its opening
// counterpart, which makes both characters of a pair end up in the run of the
// enclosed text, if possible.
//
// A ScriptIterator is single-pass and not safe for concurrent use.
type ScriptIterator struct {
	text       []uint16
	offset     int
	script     language.Script
	done       bool
	parens     []parenFrame
	startParen int // frames above this index have not yet seen a real script
}

// NewScriptIterator creates an iterator for script runs of text.
func NewScriptIterator(text []uint16) *ScriptIterator {
	return &ScriptIterator{
		text:       text,
		script:     language.Common,
		startParen: -1,
	}
}

// Offset returns the end of the current run, in code units.
func (it *ScriptIterator) Offset() int {
	return it.offset
}

// Script returns the script of the current run. It is Common for runs
// without any character of a real script.
func (it *ScriptIterator) Script() language.Script {
	return it.script
}

// Done is true after the iterator has reached the end of the text.
func (it *ScriptIterator) Done() bool {
	return it.done
}

// Next advances to the end of the next script run. It returns false if there
// are no more runs.
func (it *ScriptIterator) Next() bool {
	if it.done {
		return false
	}
	start := it.offset
	it.script = language.Common
	for it.offset < len(it.text) {
		r, jump := codePointAt(it.text, it.offset)
		script := language.LookupScript(r)
		pair := -1
		if script == language.Common {
			pair = pairIndex(r)
		}
		if pair >= 0 {
			if isOpening(pair) {
				it.parens = append(it.parens, parenFrame{index: pair, script: it.script})
			} else if len(it.parens) > 0 {
				opening := pair &^ 1
				for len(it.parens) > 0 && it.top().index != opening {
					it.pop()
				}
				if len(it.parens) > 0 {
					script = it.top().script
				}
			}
		}
		runningReal, strong := isReal(it.script), isReal(script)
		if runningReal && strong && script != it.script {
			it.startParen = len(it.parens) - 1
			break
		}
		if !runningReal && strong {
			it.script = script
			// open pairs pushed before the script was known belong to it
			for it.startParen+1 < len(it.parens) {
				it.startParen++
				it.parens[it.startParen].script = script
			}
			if pair >= 0 && !isOpening(pair) && len(it.parens) > 0 {
				it.pop()
			}
		}
		it.offset += jump
	}
	if it.offset >= len(it.text) {
		it.done = true
	}
	tracer().Debugf("script run ends at %d: %s", it.offset, it.script)
	return it.offset > start
}

func (it *ScriptIterator) top() parenFrame {
	return it.parens[len(it.parens)-1]
}

// pop removes the topmost frame, keeping startParen within the stack.
func (it *ScriptIterator) pop() {
	it.parens = it.parens[:len(it.parens)-1]
	if len(it.parens)-1 < it.startParen {
		it.startParen = len(it.parens) - 1
	}
}

// isReal is false for the pseudo-scripts Common and Inherited. Unknown
// counts as a real script.
func isReal(script language.Script) bool {
	return script != language.Common && script != language.Inherited
}

// codePointAt decodes the code point at position i of text. Surrogate pairs
// are combined, unpaired surrogates are returned as they are.
func codePointAt(text []uint16, i int) (rune, int) {
	c := rune(text[i])
	if utf16.IsSurrogate(c) && i+1 < len(text) {
		if r := utf16.DecodeRune(c, rune(text[i+1])); r != 0xfffd {
			return r, 2
		}
	}
	return c, 1
}
