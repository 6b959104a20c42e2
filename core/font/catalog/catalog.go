package catalog

import (
	"runtime"
	"strings"
	"sync"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/fontrun/core"
	"github.com/npillmayer/fontrun/core/font"
	"github.com/npillmayer/fontrun/core/locate/resources"
	"github.com/npillmayer/schuko/gconf"
)

// Provider is the interface font queries use to access platform fonts.
type Provider interface {
	// SystemFonts returns the fonts installed on the system. The descriptors
	// are the same for every call.
	SystemFonts() []*font.Descriptor
	// FallbackFamilies returns the families to try for a script, in order
	// of preference.
	FallbackFamilies(script language.Script) []string
	// GenericFamilies expands a CSS generic family keyword. Keywords are
	// matched exactly.
	GenericFamilies(keyword string) ([]string, bool)
}

// Loader discovers the fonts installed on a system.
type Loader func() ([]*font.Descriptor, error)

// Tables hold the family names a catalog knows about.
//
// Tail lists families appended to the fallback families of every script,
// usually fonts for symbols and emoji.
type Tables struct {
	Generic map[string][]string
	Scripts map[language.Script][]string
	Tail    []string
}

// Catalog is a Provider driven by tables. System fonts are loaded lazily,
// exactly once.
type Catalog struct {
	name    string
	tables  Tables
	loader  Loader
	loading sync.Once
	fonts   []*font.Descriptor
	err     error
}

var _ Provider = &Catalog{}

// New creates a catalog. If loader is nil, fonts are discovered by
// DefaultLoader.
func New(name string, tables Tables, loader Loader) *Catalog {
	if loader == nil {
		loader = DefaultLoader()
	}
	return &Catalog{name: name, tables: tables, loader: loader}
}

// Name returns the name of a catalog, e.g. "macos".
func (c *Catalog) Name() string {
	return c.name
}

// SystemFonts returns the fonts found by the catalog's loader. If loading
// fails, the list is empty and Err reports the error.
func (c *Catalog) SystemFonts() []*font.Descriptor {
	c.loading.Do(func() {
		c.fonts, c.err = c.loader()
		if c.err != nil {
			tracer().Errorf("catalog %s cannot load system fonts: %v", c.name, c.err)
		}
		tracer().Infof("catalog %s has %d system fonts", c.name, len(c.fonts))
	})
	return c.fonts
}

// Err returns the error of loading the system fonts, if any.
func (c *Catalog) Err() error {
	c.SystemFonts()
	return c.err
}

// FallbackFamilies returns the families for a script followed by the
// catalog's tail families. The result is a fresh slice.
func (c *Catalog) FallbackFamilies(script language.Script) []string {
	families := c.tables.Scripts[script]
	list := make([]string, 0, len(families)+len(c.tables.Tail))
	list = append(list, families...)
	return append(list, c.tables.Tail...)
}

// GenericFamilies expands "serif", "sans-serif", "monospace", "cursive" and
// "fantasy".
func (c *Catalog) GenericFamilies(keyword string) ([]string, bool) {
	families, ok := c.tables.Generic[keyword]
	return families, ok
}

// --- Platforms -------------------------------------------------------------

// MacOS creates a catalog with the tables for macOS.
func MacOS(loader Loader) *Catalog {
	return New("macos", macTables, loader)
}

// Linux creates a catalog with the tables for Linux and other systems using
// fontconfig.
func Linux(loader Loader) *Catalog {
	return New("linux", linuxTables, loader)
}

// Windows creates a catalog with the tables for Windows.
func Windows(loader Loader) *Catalog {
	return New("windows", windowsTables, loader)
}

// DefaultLoader returns resources.FontConfigFonts if the global configuration
// points to fontconfig, and resources.ScanSystemFonts otherwise.
func DefaultLoader() Loader {
	if gconf.GetString("fontconfig") != "" {
		return fontConfigLoader
	}
	return resources.ScanSystemFonts
}

func fontConfigLoader() ([]*font.Descriptor, error) {
	return resources.FontConfigFonts(globalConfig{})
}

// globalConfig makes the global configuration usable where a
// schuko.Configuration is expected.
type globalConfig struct{}

func (globalConfig) InitDefaults()               {}
func (globalConfig) IsSet(key string) bool       { return gconf.IsSet(key) }
func (globalConfig) GetString(key string) string { return gconf.GetString(key) }
func (globalConfig) GetInt(key string) int       { return gconf.GetInt(key) }
func (globalConfig) GetBool(key string) bool     { return gconf.GetBool(key) }
func (globalConfig) IsInteractive() bool         { return gconf.IsInteractive() }

// ForName creates a catalog by name: "macos", "linux", "windows",
// "embedded" or "fontconfig". The latter is a Linux catalog loading its fonts
// from fontconfig, regardless of the platform.
func ForName(name string) (Provider, error) {
	switch strings.ToLower(name) {
	case "macos", "darwin":
		return MacOS(nil), nil
	case "linux":
		return Linux(nil), nil
	case "windows":
		return Windows(nil), nil
	case "embedded":
		return Embedded(), nil
	case "fontconfig":
		return Linux(fontConfigLoader), nil
	}
	return nil, core.Error(core.EINVALID, "no font catalog named %q", name)
}

var systemCatalog Provider
var systemCatalogCreation sync.Once

// System returns the catalog for the platform we're running on. Clients may
// choose another catalog by setting `font-catalog` in the global configuration.
// Platforms without a catalog of their own use the Linux tables.
//
// System is an application-wide singleton.
func System() Provider {
	systemCatalogCreation.Do(func() {
		name := gconf.GetString("font-catalog")
		if name == "" {
			name = runtime.GOOS
		}
		var err error
		if systemCatalog, err = ForName(name); err != nil {
			tracer().Infof("%v, using Linux font catalog", err)
			systemCatalog = Linux(nil)
		}
	})
	return systemCatalog
}
