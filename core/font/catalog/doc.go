/*
Package catalog knows about the fonts of a platform.

A font catalog provides three things to font queries:

* the list of fonts installed on the system,

* the families to try for a script, if none of the requested families
covers it, and

* the families for the CSS generic family keywords, e.g. "sans-serif".

Catalogs for macOS, Linux and Windows differ in their tables only; they share
the discovery of installed fonts (see package resources). The Embedded catalog
serves the Go fonts compiled into the binary and does not touch the file
system. It is suitable for testing and for environments without fonts.

	provider := catalog.System()
	families := provider.FallbackFamilies(language.Arabic)

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package catalog

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontrun.font'
func tracer() tracing.Trace {
	return tracing.Select("fontrun.font")
}
