/*
Package resources locates fonts for an application.

Fonts are discovered from different places:

	ScanSystemFonts     font files in the platform's font directories
	FontConfigFonts     the output of fontconfig's fc-list
	GoogleFonts         the Google webfont directory
	EmbeddedFonts       the Go fonts, compiled into the binary

Each of these produces a list of font descriptors, suitable as the system font
list of a font catalog. Remote fonts are downloaded into an application
specific folder in the user's cache directory, see CacheDirPath.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'fontrun.resources'.
func tracer() tracing.Trace {
	return tracing.Select("fontrun.resources")
}
