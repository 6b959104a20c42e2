package resources

import (
	"strings"
	"testing"

	"github.com/npillmayer/fontrun/core"
	"github.com/npillmayer/fontrun/core/font"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fcListOutput = `
/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf: DejaVu Sans:style=Bold
/usr/share/fonts/truetype/dejavu/DejaVuSans-Oblique.ttf: DejaVu Sans:style=Oblique
/usr/share/fonts/truetype/dejavu/DejaVuSerif.ttf: DejaVu Serif:style=Book
/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc: Noto Sans CJK JP,Noto Sans CJK JP Regular:style=Regular
/usr/share/fonts/truetype/liberation/LiberationSans-BoldItalic.ttf: Liberation Sans:style=Bold Italic
/usr/share/fonts/truetype/hidden.ttf: .LastResort:style=Light
garbage line
`

func TestParseFontConfigList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.resources")
	defer teardown()
	//
	descs, err := parseFontConfigList(strings.NewReader(fcListOutput))
	require.NoError(t, err)
	require.Len(t, descs, 6)
	assert.Equal(t, "DejaVu Sans", descs[0].Family)
	assert.Equal(t, font.WeightBold, descs[0].Weight)
	assert.Equal(t, "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf", descs[0].Source.URL)
	assert.Equal(t, font.StyleOblique, descs[1].Style)
	assert.Equal(t, font.WeightNormal, descs[2].Weight)
	assert.Equal(t, "Noto Sans CJK JP", descs[3].Family)
	assert.Equal(t, font.StyleItalic, descs[4].Style)
	assert.Equal(t, font.WeightBold, descs[4].Weight)
	assert.Equal(t, "LastResort", descs[5].Family)
	assert.Equal(t, font.WeightLight, descs[5].Weight)
}

func TestFontConfigBinary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.resources")
	defer teardown()
	//
	_, err := findFontConfigBinary(testconfig.Conf{})
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = findFontConfigBinary(testconfig.Conf{"fontconfig": "fc-list"})
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = findFontConfigBinary(testconfig.Conf{"fontconfig": "/does/not/exist/fc-list"})
	assert.Equal(t, core.EINVALID, core.Code(err))
}
