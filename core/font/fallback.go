package font

import (
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// FallbackFont returns a font to be used if everything else fails. It is
// always present. Currently we use Go Sans.
func FallbackFont() *Descriptor {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else fails.
var fallbackFont *Descriptor

func loadFallbackFont() *Descriptor {
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		name = "Go"
	}
	tracer().Debugf("fallback font is %s", name)
	return NewDescriptor(name, FromData(goregular.TTF))
}
