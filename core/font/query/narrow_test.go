package query

import (
	"testing"

	"github.com/npillmayer/fontrun/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func face(family string, w font.Weight, s font.Style) *font.Descriptor {
	return &font.Descriptor{
		Family: family,
		Weight: w,
		Style:  s,
		Source: font.FromURL("/fonts/" + family + ".ttf"),
	}
}

func weights(ws ...font.Weight) []*font.Descriptor {
	var fonts []*font.Descriptor
	for _, w := range ws {
		fonts = append(fonts, face("Test", w, font.StyleNormal))
	}
	return fonts
}

func TestNarrowByStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.font")
	defer teardown()
	//
	normal := face("A", 400, font.StyleNormal)
	italic := face("A", 400, font.StyleItalic)
	oblique := face("A", 400, font.StyleOblique)
	for _, tc := range []struct {
		candidates []*font.Descriptor
		requested  font.Style
		expected   []*font.Descriptor
	}{
		{[]*font.Descriptor{normal, italic, oblique}, font.StyleItalic, []*font.Descriptor{italic}},
		{[]*font.Descriptor{normal, oblique}, font.StyleItalic, []*font.Descriptor{oblique}},
		{[]*font.Descriptor{normal, italic}, font.StyleOblique, []*font.Descriptor{italic}},
		{[]*font.Descriptor{italic, oblique}, font.StyleNormal, []*font.Descriptor{oblique}},
		{[]*font.Descriptor{italic, italic}, font.StyleNormal, []*font.Descriptor{italic, italic}},
		{[]*font.Descriptor{normal, italic}, font.StyleNormal, []*font.Descriptor{normal}},
		{[]*font.Descriptor{oblique}, font.StyleNormal, []*font.Descriptor{oblique}},
	} {
		assert.Equal(t, tc.expected, NarrowByStyle(tc.candidates, tc.requested),
			"%s out of %v", tc.requested, tc.candidates)
	}
}

func TestNarrowByStyleKeepsInput(t *testing.T) {
	in := []*font.Descriptor{face("A", 400, font.StyleItalic), face("A", 400, font.StyleNormal)}
	out := NarrowByStyle(in, font.StyleNormal)
	require.Len(t, out, 1)
	assert.Equal(t, font.StyleItalic, in[0].Style)
	assert.Len(t, in, 2)
	single := in[:1]
	copied := NarrowByStyle(single, font.StyleNormal)
	copied[0] = nil
	assert.NotNil(t, single[0])
}

func TestMatchWeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.font")
	defer teardown()
	//
	for _, tc := range []struct {
		available []font.Weight
		requested font.Weight
		expected  font.Weight
	}{
		{[]font.Weight{300, 600}, 400, 300},
		{[]font.Weight{350, 450}, 400, 450},
		{[]font.Weight{300, 600, 900}, 600, 600},
		{[]font.Weight{300, 900}, 600, 900},
		{[]font.Weight{200, 400}, 300, 200},
		{[]font.Weight{400, 600}, 500, 400},
		{[]font.Weight{100, 200}, 700, 200},
		{[]font.Weight{800, 900}, 300, 800},
		{[]font.Weight{700, 100, 500}, 400, 100},
		{[]font.Weight{900, 100}, 850, 900},
	} {
		best := MatchWeight(weights(tc.available...), tc.requested)
		require.NotNil(t, best)
		assert.Equal(t, tc.expected, best.Weight, "%d out of %v", tc.requested, tc.available)
	}
	assert.Nil(t, MatchWeight(nil, 400))
}

func TestMatchWeightTies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.font")
	defer teardown()
	//
	a, b := face("A", 300, font.StyleNormal), face("B", 300, font.StyleNormal)
	assert.Same(t, b, MatchWeight([]*font.Descriptor{a, b}, 400), "later one wins below")
	c, d := face("C", 800, font.StyleNormal), face("D", 800, font.StyleNormal)
	assert.Same(t, c, MatchWeight([]*font.Descriptor{c, d}, 700), "earlier one wins above")
	e, f := face("E", 600, font.StyleNormal), face("F", 600, font.StyleNormal)
	assert.Same(t, e, MatchWeight([]*font.Descriptor{e, f}, 600), "first exact match wins")
}
