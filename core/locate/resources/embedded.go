package resources

import (
	"sync"

	"github.com/npillmayer/fontrun/core/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// Families of the embedded Go fonts.
const (
	GoSans      = "Go"
	GoMono      = "Go Mono"
	GoSmallcaps = "Go Smallcaps"
)

// Weight and style of the Go fonts are read from their metadata.
type embeddedFont struct {
	family  string
	variant font.Variant
	data    []byte
}

var goFonts = []embeddedFont{
	{GoSans, font.VariantNormal, goregular.TTF},
	{GoSans, font.VariantNormal, goitalic.TTF},
	{GoSans, font.VariantNormal, gomedium.TTF},
	{GoSans, font.VariantNormal, gomediumitalic.TTF},
	{GoSans, font.VariantNormal, gobold.TTF},
	{GoSans, font.VariantNormal, gobolditalic.TTF},
	{GoMono, font.VariantNormal, gomono.TTF},
	{GoMono, font.VariantNormal, gomonoitalic.TTF},
	{GoMono, font.VariantNormal, gomonobold.TTF},
	{GoMono, font.VariantNormal, gomonobolditalic.TTF},
	{GoSmallcaps, font.VariantSmallCaps, gosmallcaps.TTF},
	{GoSmallcaps, font.VariantSmallCaps, gosmallcapsitalic.TTF},
}

var embeddedFontsCreation sync.Once
var embeddedFonts []*font.Descriptor

// EmbeddedFonts returns descriptors for the Go fonts, which are compiled into
// the binary. The descriptors are created once; every call returns the
// same descriptors.
func EmbeddedFonts() []*font.Descriptor {
	embeddedFontsCreation.Do(func() {
		embeddedFonts = make([]*font.Descriptor, len(goFonts))
		for i, f := range goFonts {
			desc := font.NewDescriptor(f.family, font.FromData(f.data))
			desc.Variant = f.variant
			var ok bool
			if desc.Weight, desc.Style, ok = describeData(f.data); !ok {
				tracer().Errorf("cannot read metadata of embedded font %s", f.family)
			}
			embeddedFonts[i] = desc
		}
	})
	list := make([]*font.Descriptor, len(embeddedFonts))
	copy(list, embeddedFonts)
	return list
}
