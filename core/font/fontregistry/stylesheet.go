package fontregistry

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/fontrun/core"
	"github.com/npillmayer/fontrun/core/font"
)

var srcURL = regexp.MustCompile(`url\(\s*(?:"([^"]*)"|'([^']*)'|([^)\s]*))\s*\)`)

// AddStylesheet registers a font face for every @font-face rule of a CSS
// style sheet. Relative source URLs are resolved against base, which may be a
// directory or a URL. Other rules are ignored.
//
//	@font-face {
//	    font-family: "Open Sans";
//	    src: url("/fonts/OpenSans-Bold.ttf") format("truetype");
//	    font-weight: bold;
//	}
//
// AddStylesheet returns the faces it has added, in order of appearance.
func (fr *Registry) AddStylesheet(stylesheet string, base string) ([]*FontFace, error) {
	sheet, err := parser.Parse(stylesheet)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse style sheet")
	}
	var faces []*FontFace
	for _, rule := range sheet.Rules {
		if rule.Kind != css.AtRule || !strings.EqualFold(rule.Name, "@font-face") {
			continue
		}
		face, err := faceFromRule(rule, base)
		if err != nil {
			return faces, err
		}
		fr.Add(face)
		faces = append(faces, face)
	}
	tracer().Infof("style sheet contained %d font faces", len(faces))
	return faces, nil
}

func faceFromRule(rule *css.Rule, base string) (*FontFace, error) {
	var family, src string
	var opts []FaceOption
	for _, decl := range rule.Declarations {
		switch strings.ToLower(decl.Property) {
		case "font-family":
			if f := font.ParseFamilies(decl.Value); len(f) > 0 {
				family = f[0]
			}
		case "src":
			if m := srcURL.FindStringSubmatch(decl.Value); m != nil {
				src = m[1] + m[2] + m[3]
			}
		case "font-weight":
			opts = append(opts, Weight(decl.Value))
		case "font-style":
			opts = append(opts, Style(decl.Value))
		case "font-variant":
			opts = append(opts, Variant(decl.Value))
		}
	}
	if family == "" || src == "" {
		return nil, core.Error(core.EINVALID, "@font-face rule needs font-family and src url")
	}
	return NewFace(family, font.FromURL(resolveURL(src, base)), opts...)
}

func resolveURL(src, base string) string {
	if base == "" {
		return src
	}
	if u, err := url.Parse(src); err == nil && u.IsAbs() {
		return src
	}
	if b, err := url.Parse(base); err == nil && (b.Scheme == "http" || b.Scheme == "https") {
		if ref, err := url.Parse(src); err == nil {
			return b.ResolveReference(ref).String()
		}
	}
	if filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(base, src)
}
