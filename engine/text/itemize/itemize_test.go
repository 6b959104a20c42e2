package itemize

import (
	"sort"
	"testing"
	"unicode/utf16"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/bidi"
)

func TestPairTableSorted(t *testing.T) {
	require.True(t, len(pairedChars)%2 == 0)
	assert.True(t, sort.SliceIsSorted(pairedChars[:], func(i, j int) bool {
		return pairedChars[i] < pairedChars[j]
	}))
	assert.Equal(t, 0, pairIndex('('))
	assert.Equal(t, 1, pairIndex(')'))
	assert.True(t, isOpening(pairIndex('[')))
	assert.False(t, isOpening(pairIndex('»')))
	assert.Equal(t, -1, pairIndex('a'))
}

func TestScriptRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.itemize")
	defer teardown()
	//
	for _, tc := range []struct {
		text    string
		ends    []int
		scripts []language.Script
	}{
		{"Hello", []int{5}, []language.Script{language.Latin}},
		{"123 !", []int{5}, []language.Script{language.Common}},
		{"Hello мир", []int{6, 9}, []language.Script{language.Latin, language.Cyrillic}},
		{"(مرحبا)", []int{7}, []language.Script{language.Arabic}},
		{"a(бв)", []int{2, 4, 5}, []language.Script{language.Latin, language.Cyrillic, language.Latin}},
		{"«мир»", []int{5}, []language.Script{language.Cyrillic}},
		{"e\u0301a", []int{3}, []language.Script{language.Latin}},
		{"a\U00010300", []int{1, 3}, []language.Script{language.Latin, language.Old_Italic}},
		{"a😀b", []int{4}, []language.Script{language.Latin}},
	} {
		it := NewScriptIterator(utf16.Encode([]rune(tc.text)))
		var ends []int
		var scripts []language.Script
		for it.Next() {
			ends = append(ends, it.Offset())
			scripts = append(scripts, it.Script())
		}
		assert.True(t, it.Done())
		assert.Equal(t, tc.ends, ends, tc.text)
		assert.Equal(t, tc.scripts, scripts, tc.text)
	}
}

func TestScriptRunsOfEmptyText(t *testing.T) {
	it := NewScriptIterator(nil)
	assert.False(t, it.Next())
	assert.True(t, it.Done())
	assert.False(t, it.Next())
}

func TestBidiLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.itemize")
	defer teardown()
	//
	enc := func(s string) []uint16 { return utf16.Encode([]rune(s)) }
	assert.Empty(t, BidiLevels(nil, bidi.LeftToRight))
	assert.Equal(t, []uint8{0, 0, 0}, BidiLevels(enc("abc"), bidi.LeftToRight))
	assert.Equal(t, []uint8{0, 0, 0, 0, 1, 1, 1, 1},
		BidiLevels(enc("abc שלום"), bidi.LeftToRight))
	// the first strong character makes the paragraph right-to-left
	assert.Equal(t, []uint8{1, 1, 1, 1, 1, 2, 2, 2},
		BidiLevels(enc("שלום abc"), bidi.Neutral))
	assert.Equal(t, []uint8{0, 0, 0, 0, 1, 1, 1, 1},
		BidiLevels(enc("abc שלום"), bidi.Neutral))
	assert.Equal(t, []uint8{1, 1, 1, 1, 1, 2, 2, 2},
		BidiLevels(enc("שלום abc"), bidi.RightToLeft))
	assert.Equal(t, []uint8{2, 2, 2},
		BidiLevels(enc("abc"), bidi.RightToLeft))
	// surrogate pairs get one level for both code units
	levels := BidiLevels(enc("a\U0001D400"), bidi.LeftToRight)
	assert.Equal(t, []uint8{0, 0, 0}, levels)
}

func TestBidiLevelsForcedLeftToRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.itemize")
	defer teardown()
	//
	enc := func(s string) []uint16 { return utf16.Encode([]rune(s)) }
	assert.Equal(t, []uint8{1, 1, 1, 1, 0, 0, 0, 0},
		BidiLevels(enc("שלום abc"), bidi.LeftToRight))
	assert.Equal(t, []uint8{0, 1, 1, 1, 1, 1, 0},
		BidiLevels(enc("(مرحبا)"), bidi.LeftToRight))
	assert.Equal(t, []uint8{1, 1},
		BidiLevels(enc("של"), bidi.LeftToRight))
	// every paragraph is forced
	text := utf16.Encode([]rune("abc\nשלום"))
	assert.Equal(t, []uint8{0, 0, 0, 0, 1, 1, 1, 1}, BidiLevels(text, bidi.LeftToRight))
	text = utf16.Encode([]rune("ש\nשלום ab"))
	assert.Equal(t, []uint8{1, 0, 1, 1, 1, 1, 0, 0, 0}, BidiLevels(text, bidi.LeftToRight))
}

func TestBidiLevelsOfParagraphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.itemize")
	defer teardown()
	//
	text := utf16.Encode([]rune("abc\nשלום"))
	levels := BidiLevels(text, bidi.Neutral)
	require.Len(t, levels, 8)
	assert.Equal(t, []uint8{0, 0, 0, 0}, levels[:4])
	assert.Equal(t, []uint8{1, 1, 1, 1}, levels[4:])
	text = utf16.Encode([]rune("שלום\nabc"))
	levels = BidiLevels(text, bidi.Neutral)
	require.Len(t, levels, 8)
	assert.Equal(t, []uint8{1, 1, 1, 1, 1}, levels[:5])
	assert.Equal(t, []uint8{0, 0, 0}, levels[5:])
}

func TestBidiIterator(t *testing.T) {
	it := NewBidiIterator([]uint8{0, 0, 1, 1, 1, 0})
	var ends []int
	var levels []uint8
	for it.Next() {
		ends = append(ends, it.Offset())
		levels = append(levels, it.Level())
	}
	assert.Equal(t, []int{2, 5, 6}, ends)
	assert.Equal(t, []uint8{0, 1, 0}, levels)
	assert.True(t, it.Done())
	empty := NewBidiIterator(nil)
	assert.False(t, empty.Next())
	assert.True(t, empty.Done())
}

func TestItemizeMixedText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.itemize")
	defer teardown()
	//
	runs := Itemize("Hello مرحبا!", bidi.LeftToRight).Runs()
	assert.Equal(t, []Run{
		{Start: 0, End: 6, Script: language.Latin, Level: 0},
		{Start: 6, End: 11, Script: language.Arabic, Level: 1},
		{Start: 11, End: 12, Script: language.Arabic, Level: 0},
	}, runs)
	assert.True(t, runs[1].IsRTL())
	assert.Equal(t, 5, runs[1].Len())
}

func TestItemizeParenthesizedArabic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.itemize")
	defer teardown()
	//
	runs := Itemize("(مرحبا)", bidi.Neutral).Runs()
	require.Len(t, runs, 1)
	assert.Equal(t, Run{Start: 0, End: 7, Script: language.Arabic, Level: 1}, runs[0])
	// in a left-to-right paragraph the parentheses keep the script but not the level
	runs = Itemize("(مرحبا)", bidi.LeftToRight).Runs()
	assert.Equal(t, []Run{
		{Start: 0, End: 1, Script: language.Arabic, Level: 0},
		{Start: 1, End: 6, Script: language.Arabic, Level: 1},
		{Start: 6, End: 7, Script: language.Arabic, Level: 0},
	}, runs)
}

func TestItemizeLoneSurrogate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.itemize")
	defer teardown()
	//
	text := []uint16{'a', 0xd800, 'b'}
	runs := NewItemizer(text, BidiLevels(text, bidi.LeftToRight)).Runs()
	require.Len(t, runs, 3)
	assert.Equal(t, language.Latin, runs[0].Script)
	assert.Equal(t, language.Unknown, runs[1].Script)
	assert.Equal(t, language.Latin, runs[2].Script)
	for _, run := range runs {
		assert.Equal(t, uint8(0), run.Level)
	}
}

func TestItemizeEmptyText(t *testing.T) {
	items := Itemize("", bidi.LeftToRight)
	_, ok := items.Next()
	assert.False(t, ok)
	assert.Empty(t, items.Runs())
}

func TestItemizerNormalizesLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.itemize")
	defer teardown()
	//
	text := utf16.Encode([]rune("abcd"))
	runs := NewItemizer(text, []uint8{1, 1}).Runs()
	assert.Equal(t, []Run{
		{Start: 0, End: 2, Script: language.Latin, Level: 1},
		{Start: 2, End: 4, Script: language.Latin, Level: 0},
	}, runs)
	runs = NewItemizer(text, []uint8{0, 0, 0, 0, 1, 1}).Runs()
	assert.Equal(t, []Run{{Start: 0, End: 4, Script: language.Latin, Level: 0}}, runs)
}

func TestRunsCoverText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.itemize")
	defer teardown()
	//
	for _, s := range []string{
		"The quick brown fox",
		"Hello мир, γειά σου κόσμε!",
		"עברית (with English) inside",
		"日本語のテキスト and Latin",
		"a(b[мир]c)d «שלום» 😀 مرحبا 123.",
		"line one\nשורה שתיים\n",
	} {
		text := utf16.Encode([]rune(s))
		runs := Itemize(s, bidi.LeftToRight).Runs()
		require.NotEmpty(t, runs, s)
		assert.Equal(t, 0, runs[0].Start, s)
		assert.Equal(t, len(text), runs[len(runs)-1].End, s)
		var rebuilt []uint16
		for i, run := range runs {
			assert.Greater(t, run.End, run.Start, s)
			if i > 0 {
				prev := runs[i-1]
				assert.Equal(t, prev.End, run.Start, s)
				assert.True(t, prev.Script != run.Script || prev.Level != run.Level,
					"runs %v and %v should have been merged", prev, run)
			}
			rebuilt = append(rebuilt, text[run.Start:run.End]...)
		}
		assert.Equal(t, s, string(utf16.Decode(rebuilt)))
	}
}
