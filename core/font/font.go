package font

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/fontrun/core"
	"github.com/npillmayer/fontrun/core/dimen"
)

// Style is the slant of a font, as given by CSS font-style.
type Style uint8

// Font styles
const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

func (s Style) String() string {
	switch s {
	case StyleItalic:
		return "italic"
	case StyleOblique:
		return "oblique"
	}
	return "normal"
}

// Variant is the CSS font-variant of a font. Only small caps are supported.
type Variant uint8

// Font variants
const (
	VariantNormal Variant = iota
	VariantSmallCaps
)

func (v Variant) String() string {
	if v == VariantSmallCaps {
		return "small-caps"
	}
	return "normal"
}

// Weight is a CSS font weight in the range 1…1000.
type Weight uint16

// Common weights.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// Source is the location of a font's binary data. Exactly one of URL
// and Data is set. URL is either a file system path or an http(s) URL.
type Source struct {
	URL  string
	Data []byte
}

// FromURL creates a source referencing a file path or a URL.
func FromURL(url string) Source {
	return Source{URL: url}
}

// FromData creates a source for an in-memory font.
func FromData(data []byte) Source {
	return Source{Data: data}
}

// IsData is true if the font binary is held in memory.
func (src Source) IsData() bool {
	return src.Data != nil
}

// IsRemote is true if the source references an http(s) URL.
func (src Source) IsRemote() bool {
	return strings.HasPrefix(src.URL, "http://") || strings.HasPrefix(src.URL, "https://")
}

func (src Source) String() string {
	if src.IsData() {
		return fmt.Sprintf("<%d bytes>", len(src.Data))
	}
	return src.URL
}

// Descriptor describes a concrete font. Descriptors are produced either from
// the fonts installed on the system, or by clients registering fonts with a
// registry. They should be treated as immutable once handed out.
type Descriptor struct {
	Family  string
	Weight  Weight
	Style   Style
	Variant Variant
	Source  Source
}

// NewDescriptor creates a descriptor for a regular font of a family.
func NewDescriptor(family string, src Source) *Descriptor {
	return &Descriptor{
		Family: family,
		Weight: WeightNormal,
		Source: src,
	}
}

func (d *Descriptor) String() string {
	if d == nil {
		return "<no font>"
	}
	return fmt.Sprintf("%s[%d %s] @ %s", d.Family, d.Weight, d.Style, d.Source)
}

// Properties is a font request, as given by the CSS font properties.
// Families are in order of priority and may contain generic family names.
type Properties struct {
	Families []string
	Weight   Weight
	Style    Style
	Variant  Variant
	Size     dimen.Dimen
}

// DefaultProperties returns the initial values of the CSS font properties,
// without any font family.
func DefaultProperties() *Properties {
	return &Properties{
		Weight: WeightNormal,
		Size:   dimen.Medium,
	}
}

func (p *Properties) String() string {
	return fmt.Sprintf("%s %s %d %.1fpx %s", p.Style, p.Variant, p.Weight, p.Size.Pixels(),
		strings.Join(p.Families, ", "))
}

// --- Family names ----------------------------------------------------------

// SameFamily compares two family names. Leading and trailing white space is
// ignored and letters are compared case-insensitively (ASCII only).
// White space within a name is significant: "Ari al" is not "Arial".
func SameFamily(a, b string) bool {
	a, b = trimSpace(a), trimSpace(b)
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && isSpace(s[i]) {
		i++
	}
	for j > i && isSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// --- Parsing of property values --------------------------------------------

// ParseStyle parses a CSS font-style value. Oblique angles are accepted and
// ignored ("oblique 10deg").
func ParseStyle(s string) (Style, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "normal":
		return StyleNormal, nil
	case s == "italic":
		return StyleItalic, nil
	case s == "oblique", strings.HasPrefix(s, "oblique "):
		return StyleOblique, nil
	}
	return StyleNormal, core.Error(core.EINVALID, "not a font style: %q", s)
}

// ParseVariant parses a CSS font-variant value.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return VariantNormal, nil
	case "small-caps":
		return VariantSmallCaps, nil
	}
	return VariantNormal, core.Error(core.EINVALID, "not a font variant: %q", s)
}

// ParseWeight parses a CSS font-weight value. Relative weights `bolder` and
// `lighter` are resolved against the inherited weight, following the table in
// CSS Fonts Level 4, section 2.2.1.
func ParseWeight(s string, inherited Weight) (Weight, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "normal":
		return WeightNormal, nil
	case "bold":
		return WeightBold, nil
	case "bolder":
		switch {
		case inherited < 350:
			return WeightNormal, nil
		case inherited < 550:
			return WeightBold, nil
		case inherited < 900:
			return WeightBlack, nil
		}
		return inherited, nil
	case "lighter":
		switch {
		case inherited < 100:
			return inherited, nil
		case inherited < 550:
			return WeightThin, nil
		case inherited < 750:
			return WeightNormal, nil
		}
		return WeightBold, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return inherited, core.WrapError(err, core.EINVALID, "not a font weight: %q", s)
	}
	if n < 1 || n > 1000 {
		return inherited, core.Error(core.EINVALID, "font weight out of range 1…1000: %q", s)
	}
	return Weight(n + 0.5), nil
}
