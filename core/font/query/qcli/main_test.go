package main

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/fontrun/core"
	"github.com/npillmayer/fontrun/core/font"
	"github.com/npillmayer/fontrun/core/locate/resources"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/bidi"
)

func TestQueryFallsBackToScriptFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.font")
	defer teardown()
	//
	intp, err := newIntp("embedded")
	require.NoError(t, err)
	assert.Equal(t, language.Latin, intp.script)
	props, err := font.ParseProperties("font-family: No Such Family")
	require.NoError(t, err)
	assert.Empty(t, intp.engine.Resolve(props, intp.registry, nil))
	fonts := intp.resolve(props)
	require.NotEmpty(t, fonts, "fallback fonts for Latin expected")
	assert.Equal(t, resources.GoSans, fonts[0].Family)
	//
	_, err = intp.execute("script", "Cyrl")
	require.NoError(t, err)
	assert.Equal(t, language.Cyrillic, intp.script)
	fonts = intp.resolve(props)
	require.NotEmpty(t, fonts)
	assert.Equal(t, resources.GoSans, fonts[0].Family)
	_, err = intp.execute("script", "xy")
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Equal(t, language.Cyrillic, intp.script)
}

func TestDirectionCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.font")
	defer teardown()
	//
	intp, err := newIntp("embedded")
	require.NoError(t, err)
	assert.Equal(t, bidi.Neutral, intp.dir)
	for _, tc := range []struct {
		arg string
		dir bidi.Direction
	}{
		{"ltr", bidi.LeftToRight},
		{"RTL", bidi.RightToLeft},
		{"auto", bidi.Neutral},
	} {
		_, err := intp.execute("dir", tc.arg)
		require.NoError(t, err)
		assert.Equal(t, tc.dir, intp.dir, tc.arg)
	}
	_, err = intp.execute("dir", "up")
	assert.Equal(t, core.EINVALID, core.Code(err))
}
