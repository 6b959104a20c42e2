package resources

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/fontrun/core"
	"github.com/npillmayer/fontrun/core/font"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// GoogleFontInfo is an entry of the Google webfont directory.
type GoogleFontInfo struct {
	Family   string            `json:"family"`
	Version  string            `json:"version"`
	Variants []string          `json:"variants"`
	Subsets  []string          `json:"subsets"`
	Files    map[string]string `json:"files"`
}

type googleFontsList struct {
	Items []GoogleFontInfo `json:"items"`
}

var loadGoogleFontsDir sync.Once
var googleFontsDirectory googleFontsList
var googleFontsLoadError error
var googleFontsAPI string = `https://www.googleapis.com/webfonts/v1/webfonts?`

// SetupGoogleFontsDirectory downloads the directory of fonts from the Google
// webfont service, once. It needs an API key, either set as `google-api-key` in
// the global configuration or as GOOGLE_API_KEY in the environment.
func SetupGoogleFontsDirectory() error {
	loadGoogleFontsDir.Do(func() {
		apikey := gconf.GetString("google-api-key")
		if apikey == "" {
			apikey = os.Getenv("GOOGLE_API_KEY")
		}
		if apikey == "" {
			err := errors.New("Google API key not set")
			tracer().Errorf(err.Error())
			googleFontsLoadError = core.WrapError(err, core.EMISSING,
				`Google Fonts API-key must be set in global configuration or as GOOGLE_API_KEY in environment;
      please refer to https://developers.google.com/fonts/docs/developer_api`)
			return
		}
		values := url.Values{
			"sort": []string{"alpha"},
			"key":  []string{apikey},
		}
		resp, err := http.Get(googleFontsAPI + values.Encode())
		if err != nil {
			tracer().Errorf("Google Fonts API request not OK: %s", err.Error())
			googleFontsLoadError = core.WrapError(err, core.ECONNECTION,
				"could not get fonts-directory from Google font service")
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			tracer().Errorf("Google Fonts API request not OK: %v", resp.Status)
			err := errors.New(resp.Status)
			googleFontsLoadError = core.WrapError(err, core.ECONNECTION,
				"could not get fonts-directory from Google font service")
			return
		}
		dec := json.NewDecoder(resp.Body)
		if err = dec.Decode(&googleFontsDirectory); err != nil {
			googleFontsLoadError = core.WrapError(err, core.EINVALID,
				"could not decode fonts-list from Google font service")
		}
	})
	return googleFontsLoadError
}

// GoogleFonts returns descriptors for the fonts of the Google webfont service
// with family names matching a pattern (a regular expression, matched case
// insensitively). Every variant of a family results in a descriptor with a
// URL source. Loading such a font will download it to the cache directory.
//
// If not aleady done, the list of fonts will be downloaded from Google.
func GoogleFonts(pattern string) ([]*font.Descriptor, error) {
	if err := SetupGoogleFontsDirectory(); err != nil {
		return nil, err
	}
	return googleDescriptors(googleFontsDirectory, pattern)
}

func googleDescriptors(list googleFontsList, pattern string) ([]*font.Descriptor, error) {
	r, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid font name pattern %q", pattern)
	}
	var descs []*font.Descriptor
	for _, finfo := range list.Items {
		if !r.MatchString(finfo.Family) {
			continue
		}
		for _, variant := range finfo.Variants {
			fileurl, ok := finfo.Files[variant]
			if !ok {
				continue
			}
			style, weight, ok := parseGoogleVariant(variant)
			if !ok {
				tracer().Debugf("skipping variant %q of Google font %s", variant, finfo.Family)
				continue
			}
			desc := font.NewDescriptor(finfo.Family, font.FromURL(fileurl))
			desc.Style, desc.Weight = style, weight
			descs = append(descs, desc)
		}
	}
	tracer().Debugf("%d Google font variants match %q", len(descs), pattern)
	return descs, nil
}

// parseGoogleVariant decodes variant names like "regular", "italic", "700" or
// "300italic".
func parseGoogleVariant(variant string) (font.Style, font.Weight, bool) {
	style := font.StyleNormal
	if strings.HasSuffix(variant, "italic") {
		style = font.StyleItalic
		variant = strings.TrimSuffix(variant, "italic")
	}
	if variant == "" || variant == "regular" {
		return style, font.WeightNormal, true
	}
	w, err := strconv.Atoi(variant)
	if err != nil || w < 1 || w > 1000 {
		return style, font.WeightNormal, false
	}
	return style, font.Weight(w), true
}

// ---------------------------------------------------------------------------

// ListGoogleFonts produces a listing of available fonts from the Google webfont
// service, with font-family names matching a given pattern.
//
// If not aleady done, the list of fonts will be downloaded from Google.
func ListGoogleFonts(pattern string) {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	if err := SetupGoogleFontsDirectory(); err != nil {
		tracer().Errorf(core.UserMessage(err))
	} else {
		listGoogleFonts(googleFontsDirectory, pattern)
	}
	tracer().SetTraceLevel(level)
}

func listGoogleFonts(list googleFontsList, pattern string) {
	r, err := regexp.Compile(pattern)
	if err != nil {
		tracer().Errorf("cannot list Google fonts: invalid pattern: %v", err)
		return
	}
	tracer().Infof("%d fonts in list", len(list.Items))
	tracer().Infof("======================================")
	for i, finfo := range list.Items {
		if r.MatchString(finfo.Family) {
			tracer().Infof("[%4d] %-20s: %s", i, finfo.Family, finfo.Version)
			tracer().Infof("       subsets: %v", finfo.Subsets)
			for k, v := range finfo.Files {
				tracer().Infof("       - %-18s: %s", k, fileName(v))
			}
		}
	}
}

func fileName(u string) string {
	if i := strings.LastIndexByte(u, '/'); i >= 0 {
		return u[i+1:]
	}
	return u
}
