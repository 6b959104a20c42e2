package resources

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	gtfont "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/fontrun/core"
	"github.com/npillmayer/fontrun/core/font"
	"golang.org/x/image/font/sfnt"
)

// ScanSystemFonts lists the font files in the platform's font directories
// and creates a font descriptor for each face found. Font collections result in
// one descriptor per face, all referencing the collection file.
//
// Scanning reads every font file on the system and may take a while. Clients
// should memoize the result.
func ScanSystemFonts() ([]*font.Descriptor, error) {
	paths := findfont.List()
	if len(paths) == 0 {
		return nil, core.Error(core.EMISSING, "no font files found in system font directories")
	}
	tracer().Infof("scanning %d system font files", len(paths))
	return ScanFonts(paths), nil
}

// ScanFonts creates font descriptors for a list of font files.
// Family, weight and style are taken from the fonts' metadata. For files we
// cannot parse, weight and style are guessed from the file name.
func ScanFonts(paths []string) []*font.Descriptor {
	var descs []*font.Descriptor
	var buffer []byte
	for _, fontpath := range paths {
		data, err := os.ReadFile(fontpath)
		if err != nil {
			tracer().Errorf("cannot read font file %s: %v", fontpath, err)
			continue
		}
		loaders, err := ot.NewLoaders(bytes.NewReader(data))
		if err != nil || len(loaders) == 0 {
			tracer().Debugf("cannot parse font file %s, guessing style and weight", fontpath)
			descs = append(descs, guessedDescriptor(fontpath))
			continue
		}
		for i, ld := range loaders {
			var d gtfont.Description
			d, buffer = gtfont.Describe(ld, buffer)
			if d.Family == "" {
				descs = append(descs, guessedDescriptor(fontpath))
				continue
			}
			desc := font.NewDescriptor(d.Family, font.FromURL(fontpath))
			desc.Weight, desc.Style = aspect(d, data, i, len(loaders) > 1)
			if strings.Contains(strings.ToLower(filepath.Base(fontpath)), "smallcaps") {
				desc.Variant = font.VariantSmallCaps
			}
			descs = append(descs, desc)
		}
	}
	tracer().Infof("found %d font faces", len(descs))
	return descs
}

// aspect converts the weight and style of a face's metadata to CSS values.
func aspect(d gtfont.Description, data []byte, index int, collection bool) (font.Weight, font.Style) {
	style := font.StyleNormal
	if d.Aspect.Style == gtfont.StyleItalic {
		style = font.StyleItalic
		if isOblique(data, index, collection) {
			style = font.StyleOblique
		}
	}
	return clampWeight(float32(d.Aspect.Weight)), style
}

// describeData reads weight and style of a single-face font from its metadata.
func describeData(data []byte) (font.Weight, font.Style, bool) {
	loaders, err := ot.NewLoaders(bytes.NewReader(data))
	if err != nil || len(loaders) != 1 {
		return font.WeightNormal, font.StyleNormal, false
	}
	d, _ := gtfont.Describe(loaders[0], nil)
	w, s := aspect(d, data, 0, false)
	return w, s, true
}

// isOblique checks the subfamily name of a font face. go-text reports oblique
// fonts as italic, but CSS distinguishes them.
func isOblique(data []byte, index int, collection bool) bool {
	var f *sfnt.Font
	var err error
	if collection {
		var c *sfnt.Collection
		if c, err = sfnt.ParseCollection(data); err == nil {
			f, err = c.Font(index)
		}
	} else {
		f, err = sfnt.Parse(data)
	}
	if err != nil {
		return false
	}
	for _, id := range []sfnt.NameID{sfnt.NameIDTypographicSubfamily, sfnt.NameIDSubfamily} {
		if name, err := f.Name(nil, id); err == nil && name != "" {
			name = strings.ToLower(name)
			return strings.Contains(name, "oblique") || strings.Contains(name, "slanted")
		}
	}
	return false
}

func guessedDescriptor(fontpath string) *font.Descriptor {
	base := filepath.Base(fontpath)
	family := strings.TrimSuffix(base, filepath.Ext(base))
	if i := strings.IndexAny(family, "-_"); i > 0 {
		family = family[:i]
	}
	desc := font.NewDescriptor(family, font.FromURL(fontpath))
	desc.Style, desc.Weight = font.GuessStyleAndWeight(base)
	return desc
}

func clampWeight(w float32) font.Weight {
	if w < 1 {
		return font.WeightNormal
	} else if w > 1000 {
		return font.Weight(1000)
	}
	return font.Weight(w + 0.5)
}
