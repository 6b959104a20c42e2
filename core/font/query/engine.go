package query

import (
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/fontrun/core/font"
	"github.com/npillmayer/fontrun/core/font/catalog"
	"github.com/npillmayer/fontrun/engine/text/itemize"
)

// Registry is a collection of fonts added by a client, e.g. a
// fontregistry.Registry. Descriptors returns the live entries in order
// of insertion.
type Registry interface {
	Descriptors() []*font.Descriptor
}

// Engine resolves font requests against a font catalog and, optionally, a
// registry of client fonts.
//
// An engine has no state of its own apart from the catalog, and queries may
// run concurrently. Clients must not modify a registry while a query is
// consulting it.
type Engine struct {
	provider catalog.Provider
}

// NewEngine creates a query engine for a font catalog. If provider is nil,
// the system catalog is used.
func NewEngine(provider catalog.Provider) *Engine {
	if provider == nil {
		provider = catalog.System()
	}
	return &Engine{provider: provider}
}

// Provider returns the font catalog of an engine.
func (e *Engine) Provider() catalog.Provider {
	return e.provider
}

// candidates is a set of fonts found for a family, de-duplicated by
// identity.
type candidates []*font.Descriptor

func (cs *candidates) maybeAdd(family string, desc *font.Descriptor) {
	if desc == nil || !font.SameFamily(family, desc.Family) {
		return
	}
	for _, c := range *cs {
		if c == desc {
			return
		}
	}
	*cs = append(*cs, desc)
}

func (cs *candidates) collect(family string, registry Registry, provider catalog.Provider) {
	if generics, ok := provider.GenericFamilies(family); ok {
		for _, g := range generics {
			for _, desc := range provider.SystemFonts() {
				cs.maybeAdd(g, desc)
			}
		}
		return
	}
	if registry != nil {
		for _, desc := range registry.Descriptors() {
			cs.maybeAdd(family, desc)
		}
	}
	for _, desc := range provider.SystemFonts() {
		cs.maybeAdd(family, desc)
	}
}

// Candidates returns all fonts of a family. Generic family keywords are
// expanded by the engine's catalog and matched against the system fonts only.
// Other names are matched against the registry's fonts first and the system
// fonts second. registry may be nil.
func (e *Engine) Candidates(family string, registry Registry) []*font.Descriptor {
	var cs candidates
	cs.collect(family, registry, e.provider)
	return cs
}

// Resolve finds the fonts for a font request, one per requested family
// found, in order of the request's families. Families for which no font
// exists are skipped.
//
// After the requested families, Resolve tries the fallback families, which
// are searched for in the system fonts only. Fonts found for fallback
// families accumulate until there are at least two of them, then the best
// one is selected. A fallback family with a single font therefore does not
// produce a result of its own, but competes with the fonts of the following
// fallback families. A single font left over at the end is dropped.
func (e *Engine) Resolve(props *font.Properties, registry Registry, fallbacks []string) []*font.Descriptor {
	if props == nil {
		props = font.DefaultProperties()
	}
	tracer().Debugf("resolving font request %s", props)
	var results []*font.Descriptor
	var cs candidates
	for _, family := range props.Families {
		cs.collect(family, registry, e.provider)
		switch len(cs) {
		case 0:
			tracer().Debugf("no font for family %q", family)
			continue
		case 1:
			results = append(results, cs[0])
		default:
			results = append(results, MatchWeight(NarrowByStyle(cs, props.Style), props.Weight))
		}
		tracer().Debugf("family %q resolved to %s", family, results[len(results)-1])
		cs = cs[:0]
	}
	for _, family := range fallbacks {
		for _, desc := range e.provider.SystemFonts() {
			cs.maybeAdd(family, desc)
		}
		if len(cs) > 1 {
			results = append(results, MatchWeight(NarrowByStyle(cs, props.Style), props.Weight))
			tracer().Debugf("fallback %q resolved to %s", family, results[len(results)-1])
			cs = cs[:0]
		}
	}
	if len(cs) == 1 {
		tracer().Debugf("dropping single pending fallback font %s", cs[0])
	}
	return results
}

// ResolveScript is like Resolve, taking the fallback families from the
// catalog's table for a script.
func (e *Engine) ResolveScript(props *font.Properties, registry Registry, script language.Script) []*font.Descriptor {
	return e.Resolve(props, registry, e.provider.FallbackFamilies(script))
}

// Item is a run of text together with the fonts resolved for its script.
type Item struct {
	Run   itemize.Run
	Fonts []*font.Descriptor
}

// ResolveItems drains an itemizer and resolves the fonts for every run,
// using the per-script fallback families of the catalog. Runs of the same
// script share the same font list.
func (e *Engine) ResolveItems(props *font.Properties, registry Registry, items *itemize.Itemizer) []Item {
	var result []Item
	cache := make(map[language.Script][]*font.Descriptor)
	for run, ok := items.Next(); ok; run, ok = items.Next() {
		fonts, found := cache[run.Script]
		if !found {
			fonts = e.ResolveScript(props, registry, run.Script)
			cache[run.Script] = fonts
		}
		result = append(result, Item{Run: run, Fonts: fonts})
	}
	return result
}
