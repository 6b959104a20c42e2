package font

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/fontrun/core"
	"github.com/npillmayer/fontrun/core/dimen"
)

// ParseProperties creates a font request from a list of CSS declarations, e.g.
//
//	font: italic bold 12px "Helvetica Neue", sans-serif
//
// or
//
//	font-family: Georgia, serif; font-weight: 600
//
// Declarations are applied in order, on top of the CSS initial values.
// Unrelated properties are ignored.
func ParseProperties(declarations string) (*Properties, error) {
	decls, err := parser.ParseDeclarations(terminated(declarations))
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font declarations")
	}
	props := DefaultProperties()
	for _, decl := range decls {
		if err = props.Set(decl.Property, decl.Value); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("font request = %s", props)
	return props, nil
}

// douceur will drop the value of a final declaration without a terminator.
func terminated(s string) string {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasSuffix(s, ";") && !strings.HasSuffix(s, "}") {
		s += ";"
	}
	return s
}

// Set sets a single CSS font property from its textual value.
func (p *Properties) Set(property, value string) (err error) {
	switch strings.ToLower(strings.TrimSpace(property)) {
	case "font":
		err = p.setShorthand(value)
	case "font-family":
		p.Families = ParseFamilies(value)
	case "font-style":
		p.Style, err = ParseStyle(value)
	case "font-weight":
		p.Weight, err = ParseWeight(value, p.Weight)
	case "font-variant":
		p.Variant, err = ParseVariant(value)
	case "font-size":
		p.Size, err = dimen.ParseFontSize(value, p.Size)
	default:
		tracer().Debugf("ignoring property %s", property)
	}
	return
}

// setShorthand interprets the CSS `font` shorthand:
//
//	[ style || variant || weight ]? size [ / line-height ]? family [, family]*
//
// Omitted sub-properties are reset to their initial values.
func (p *Properties) setShorthand(value string) error {
	tokens := strings.Fields(value)
	initial := DefaultProperties()
	p.Style, p.Variant, p.Weight = initial.Style, initial.Variant, initial.Weight
	i := 0
	for ; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "normal" {
			continue
		}
		if s, err := ParseStyle(tok); err == nil {
			p.Style = s
		} else if v, err := ParseVariant(tok); err == nil {
			p.Variant = v
		} else if w, err := ParseWeight(tok, p.Weight); err == nil {
			p.Weight = w
		} else {
			break
		}
	}
	if i == len(tokens) {
		return core.Error(core.EINVALID, "font shorthand without size: %q", value)
	}
	size := tokens[i]
	if slash := strings.IndexByte(size, '/'); slash >= 0 {
		size = size[:slash] // line-height is not a font property
	} else if i+1 < len(tokens) && strings.HasPrefix(tokens[i+1], "/") {
		if tokens[i+1] == "/" {
			i++
		}
		i++
	}
	var err error
	if p.Size, err = dimen.ParseFontSize(size, p.Size); err != nil {
		return err
	}
	families := strings.Join(tokens[i+1:], " ")
	if p.Families = ParseFamilies(families); len(p.Families) == 0 {
		return core.Error(core.EINVALID, "font shorthand without family: %q", value)
	}
	return nil
}

// ParseFamilies splits a CSS font-family value into family names.
// Quotes are removed; unquoted names have runs of white space collapsed.
func ParseFamilies(value string) []string {
	var families []string
	var name strings.Builder
	var quote rune
	flush := func() {
		n := strings.Join(strings.Fields(name.String()), " ")
		if quote == 0 && n != "" {
			families = append(families, n)
		}
		name.Reset()
	}
	quoted := false
	for _, r := range value {
		switch {
		case quote != 0 && r == quote:
			families = append(families, name.String())
			name.Reset()
			quote, quoted = 0, true
		case quote != 0:
			name.WriteRune(r)
		case r == '"' || r == '\'':
			name.Reset()
			quote = r
		case r == ',':
			if !quoted {
				flush()
			}
			name.Reset()
			quoted = false
		default:
			if !quoted {
				name.WriteRune(r)
			}
		}
	}
	if quote != 0 { // unterminated string: take what we have
		quote = 0
	}
	if !quoted {
		flush()
	}
	return families
}
