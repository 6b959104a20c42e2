package catalog

import (
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/fontrun/core/font"
	"github.com/npillmayer/fontrun/core/locate/resources"
)

// The Go fonts cover Latin, Greek and Cyrillic only. There is no serif Go
// font, so serif requests resolve to Go Sans.
var embeddedTables = Tables{
	Generic: map[string][]string{
		"serif":      {resources.GoSans},
		"sans-serif": {resources.GoSans},
		"monospace":  {resources.GoMono},
		"cursive":    {resources.GoSans},
		"fantasy":    {resources.GoSmallcaps},
	},
	Scripts: map[language.Script][]string{
		language.Common:    {resources.GoSans},
		language.Inherited: {resources.GoSans},
		language.Latin:     {resources.GoSans},
		language.Cyrillic:  {resources.GoSans},
		language.Greek:     {resources.GoSans},
	},
	Tail: []string{resources.GoMono},
}

// Embedded creates a catalog serving the Go fonts, which are compiled into
// the binary. It never touches the file system.
func Embedded() *Catalog {
	return New("embedded", embeddedTables, embeddedLoader)
}

func embeddedLoader() ([]*font.Descriptor, error) {
	return resources.EmbeddedFonts(), nil
}
