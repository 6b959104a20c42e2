package query

import (
	"math"
	"sort"

	"github.com/npillmayer/fontrun/core/font"
)

// NarrowByStyle keeps the candidates with the style closest to the requested
// one. The order of preference is
//
//	requested    candidates
//	normal       normal, oblique, italic
//	italic       italic, oblique, normal
//	oblique      oblique, italic, normal
//
// The result is a new slice; candidates is left untouched. NarrowByStyle is
// meant for at least two candidates; smaller sets are returned as a copy.
func NarrowByStyle(candidates []*font.Descriptor, requested font.Style) []*font.Descriptor {
	if len(candidates) < 2 {
		return append([]*font.Descriptor(nil), candidates...)
	}
	var count [3]int
	for _, c := range candidates {
		count[c.Style]++
	}
	var order [3]font.Style
	switch requested {
	case font.StyleItalic:
		order = [3]font.Style{font.StyleItalic, font.StyleOblique, font.StyleNormal}
	case font.StyleOblique:
		order = [3]font.Style{font.StyleOblique, font.StyleItalic, font.StyleNormal}
	default:
		order = [3]font.Style{font.StyleNormal, font.StyleOblique, font.StyleItalic}
	}
	choose := order[2]
	for _, s := range order[:2] {
		if count[s] > 0 {
			choose = s
			break
		}
	}
	narrowed := make([]*font.Descriptor, 0, count[choose])
	for _, c := range candidates {
		if c.Style == choose {
			narrowed = append(narrowed, c)
		}
	}
	tracer().Debugf("style %s: %d of %d candidates are %s", requested, len(narrowed), len(candidates), choose)
	return narrowed
}

// MatchWeight selects the candidate with the weight closest to the requested
// one, as described by the CSS font matching algorithm:
//
// An exact match wins. Otherwise weights are split at a divider, which is the
// requested weight itself, except for 400 (divider 500) and 500 (divider 400).
// From each side the closest candidate is taken. If both sides have one,
// lighter fonts are preferred for dividers up to 500 and bolder fonts for
// dividers above 500.
//
// Candidates with equal weights are visited in their original order. Among
// equidistant candidates, the last one visited wins below the divider and
// the first one visited wins above it.
//
// MatchWeight returns nil only if there are no candidates.
func MatchWeight(candidates []*font.Descriptor, requested font.Weight) *font.Descriptor {
	if len(candidates) == 0 {
		return nil
	}
	sorted := append([]*font.Descriptor(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})
	for _, c := range sorted {
		if c.Weight == requested {
			return c
		}
	}
	divider := requested
	if requested == font.WeightNormal {
		divider = font.WeightMedium
	} else if requested == font.WeightMedium {
		divider = font.WeightNormal
	}
	var below, above *font.Descriptor
	belowDist, aboveDist := math.MaxInt, math.MaxInt
	for _, c := range sorted {
		d := distance(c.Weight, requested)
		if c.Weight < divider {
			if d <= belowDist {
				below, belowDist = c, d
			}
		} else if d < aboveDist {
			above, aboveDist = c, d
		}
	}
	tracer().Debugf("weight %d: best below = %v, best above = %v", requested, below, above)
	if below != nil && above != nil {
		if divider <= font.WeightMedium {
			return below
		}
		return above
	}
	if below != nil {
		return below
	}
	return above
}

func distance(w, requested font.Weight) int {
	if w < requested {
		return int(requested) - int(w)
	}
	return int(w) - int(requested)
}
