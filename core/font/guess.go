package font

import (
	"path/filepath"
	"strings"
)

// GuessStyleAndWeight tries to guess a font's style and weight from the
// font's file name, e.g. "Gill Sans MT Bold Italic.ttf" or "Clarendon-bold.otf".
// It is used for font files whose metadata cannot be read.
func GuessStyleAndWeight(fontfilename string) (Style, Weight) {
	fontfilename = filepath.Base(fontfilename)
	ext := filepath.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	style := StyleNormal
	if strings.Contains(fontfilename, "italic") {
		style = StyleItalic
	} else if strings.Contains(fontfilename, "oblique") || strings.Contains(fontfilename, "slanted") {
		style = StyleOblique
	}
	s := strings.FieldsFunc(fontfilename, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	if len(s) > 1 {
		switch strings.TrimSuffix(strings.TrimSuffix(s[len(s)-1], "italic"), "oblique") {
		case "thin", "hairline":
			return style, WeightThin
		case "light", "xlight":
			return style, WeightLight
		case "normal", "regular", "r", "book":
			return style, WeightNormal
		case "medium", "m":
			return style, WeightMedium
		case "semibold", "demibold":
			return style, WeightSemiBold
		case "bold", "b", "bi":
			return style, WeightBold
		case "xbold", "extrabold":
			return style, WeightExtraBold
		case "black", "heavy":
			return style, WeightBlack
		}
	}
	weight := WeightNormal
	switch {
	case strings.Contains(fontfilename, "extralight"), strings.Contains(fontfilename, "ultralight"):
		weight = WeightExtraLight
	case strings.Contains(fontfilename, "light"):
		weight = WeightLight
	case strings.Contains(fontfilename, "semibold"), strings.Contains(fontfilename, "demibold"):
		weight = WeightSemiBold
	case strings.Contains(fontfilename, "extrabold"):
		weight = WeightExtraBold
	case strings.Contains(fontfilename, "bold"):
		weight = WeightBold
	case strings.Contains(fontfilename, "black"):
		weight = WeightBlack
	case strings.Contains(fontfilename, "medium"):
		weight = WeightMedium
	}
	return style, weight
}
