/*
Package query resolves CSS font requests to concrete fonts.

A request names a prioritized list of font families, together with a weight,
a style and a variant (see font.Properties). The query engine resolves every
family of a request to at most one font, following the CSS font matching
rules for style and weight:

* A family name is looked up in the client's font registry first, then in the
list of system fonts. Generic family names (serif, sans-serif, …) are expanded
by the platform's font catalog and looked up in the system fonts only.

* If more than one font of a family is found, the fonts with the best matching
style are kept. "Best" means exact, otherwise italic and oblique substitute
for each other, otherwise normal.

* From the remaining fonts, the one with the best matching weight is chosen.

Fallback families, e.g. from the catalog's per-script tables, are resolved
after the requested families.

The result of a query is a list of fonts, in order of preference. It may be
empty. Queries never fail.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package query

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontrun.font'
func tracer() tracing.Trace {
	return tracing.Select("fontrun.font")
}
