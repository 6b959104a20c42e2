package resources

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/fontrun/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goregular"
)

func TestScanFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.resources")
	defer teardown()
	//
	dir := t.TempDir()
	files := map[string][]byte{
		"Go-Regular.ttf":       goregular.TTF,
		"Go-BoldItalic.ttf":    gobolditalic.TTF,
		"Broken-SemiBold.ttf":  []byte("no font here"),
		"Unreadable-Light.otf": nil,
	}
	var paths []string
	for name, data := range files {
		if data == nil {
			paths = append(paths, filepath.Join(dir, name)) // not written
			continue
		}
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, data, 0644))
		paths = append(paths, p)
	}
	descs := ScanFonts(paths)
	require.Len(t, descs, 3)
	found := map[string]*font.Descriptor{}
	for _, d := range descs {
		found[filepath.Base(d.Source.URL)] = d
	}
	regular := found["Go-Regular.ttf"]
	require.NotNil(t, regular)
	assert.Equal(t, "Go", regular.Family)
	assert.Equal(t, font.WeightNormal, regular.Weight)
	assert.Equal(t, font.StyleNormal, regular.Style)
	bolditalic := found["Go-BoldItalic.ttf"]
	require.NotNil(t, bolditalic)
	assert.Equal(t, "Go", bolditalic.Family)
	assert.Equal(t, font.WeightSemiBold, bolditalic.Weight, "OS/2 weight class of Go Bold is 600")
	assert.Equal(t, font.StyleItalic, bolditalic.Style)
	broken := found["Broken-SemiBold.ttf"]
	require.NotNil(t, broken)
	assert.Equal(t, "Broken", broken.Family)
	assert.Equal(t, font.WeightSemiBold, broken.Weight)
}

func TestEmbeddedFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.resources")
	defer teardown()
	//
	fonts := EmbeddedFonts()
	require.Len(t, fonts, 12)
	again := EmbeddedFonts()
	for i := range fonts {
		assert.True(t, fonts[i] == again[i], "embedded descriptors must be created once")
		assert.True(t, fonts[i].Source.IsData())
	}
	again[0] = nil
	assert.NotNil(t, EmbeddedFonts()[0], "clients must not be able to modify the list")
	var smallcaps int
	for _, f := range fonts {
		if f.Variant == font.VariantSmallCaps {
			smallcaps++
			assert.Equal(t, GoSmallcaps, f.Family)
		}
	}
	assert.Equal(t, 2, smallcaps)
}

func TestScannedAndEmbeddedFontsAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.resources")
	defer teardown()
	//
	dir := t.TempDir()
	embedded := EmbeddedFonts()
	paths := make([]string, len(embedded))
	for i, f := range embedded {
		paths[i] = filepath.Join(dir, fmt.Sprintf("embedded-%02d.ttf", i))
		require.NoError(t, os.WriteFile(paths[i], f.Source.Data, 0644))
	}
	scanned := ScanFonts(paths)
	require.Len(t, scanned, len(embedded))
	for i, f := range embedded {
		assert.Equal(t, f.Weight, scanned[i].Weight, "weight of %s", f)
		assert.Equal(t, f.Style, scanned[i].Style, "style of %s", f)
	}
	for i, f := range embedded {
		if bytes.Equal(f.Source.Data, gobold.TTF) {
			assert.Equal(t, font.WeightSemiBold, f.Weight)
			assert.Equal(t, "Go", scanned[i].Family)
		}
	}
}
