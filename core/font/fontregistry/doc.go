/*
Package fontregistry manages a registry for fonts added by clients.

Clients add font faces, i.e. fonts given by a family name and a source, either
one at a time or by importing @font-face rules from a style sheet. A registry
keeps faces in insertion order. Deleting a face leaves a hole in the
registry; iterators handed out before the deletion continue to work.

Font queries (see package query) consult the registry before they consult the
fonts installed on the system.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontrun.font'
func tracer() tracing.Trace {
	return tracing.Select("fontrun.font")
}
