/*
Package itemize splits text into runs of uniform script and bidi level.

Before text can be shaped, it has to be broken up into items: pieces of text
which are set with a single font, in a single direction. Itemization considers
two properties of the characters of a text:

* The script of a character, e.g. Latin or Arabic. Characters of scripts
Common and Inherited (punctuation, digits, combining marks, …) join the script
of their neighbours. Paired punctuation like parentheses is assigned the script
of the text it encloses; in "(مرحبا)" both parentheses are Arabic.

* The bidi embedding level of a character, as computed by the Unicode
Bidirectional Algorithm (UAX #9).

An Itemizer walks a text and merges the boundaries of script runs and level
runs:

	items := itemize.Itemize("Hello مرحبا!", bidi.LeftToRight)
	for run, ok := items.Next(); ok; run, ok = items.Next() {
	    fmt.Printf("[%d…%d) %s level %d\n", run.Start, run.End, run.Script, run.Level)
	}

Text is handled as UTF-16 code units and all positions are offsets in
code units.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package itemize

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontrun.itemize'
func tracer() tracing.Trace {
	return tracing.Select("fontrun.itemize")
}
