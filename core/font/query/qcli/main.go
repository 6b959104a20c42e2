package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/chzyer/readline"
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/fontrun/core"
	"github.com/npillmayer/fontrun/core/font"
	"github.com/npillmayer/fontrun/core/font/catalog"
	"github.com/npillmayer/fontrun/core/font/fontregistry"
	"github.com/npillmayer/fontrun/core/font/query"
	"github.com/npillmayer/fontrun/core/locate/resources"
	"github.com/npillmayer/fontrun/engine/text/itemize"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/bidi"
)

// tracer traces with key 'fontrun.font'
func tracer() tracing.Trace {
	return tracing.Select("fontrun.font")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	catname := flag.String("catalog", "", "Font catalog [macos|linux|windows|embedded|fontconfig]")
	fcbinary := flag.String("fontconfig", "", "Path of fc-list binary")
	stylesheet := flag.String("css", "", "Stylesheet with @font-face rules to register")
	flag.Parse()

	// set up configuration and logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.fontrun":      *tlevel,
		"trace.fontrun.font": *tlevel,
		"app-key":            "fontrun",
		"fontconfig":         *fcbinary,
		"font-catalog":       *catname,
		"google-api-key":     os.Getenv("GOOGLE_API_KEY"),
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	gconf.Initialize(conf)
	pterm.Info.Println("Welcome to the font query CLI")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp, err := newIntp(*catname)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		os.Exit(2)
	}
	if *stylesheet != "" {
		if err := intp.loadStylesheet(*stylesheet); err != nil {
			pterm.Error.Println(core.UserMessage(err))
			os.Exit(3)
		}
	}
	//
	// set up REPL
	repl, err := readline.New("query > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D, type 'help' for a list of commands")
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	engine   *query.Engine
	registry *fontregistry.Registry
	props    *font.Properties
	dir      bidi.Direction
	script   language.Script
}

func newIntp(catname string) (*Intp, error) {
	var provider catalog.Provider
	if catname != "" {
		var err error
		if provider, err = catalog.ForName(catname); err != nil {
			return nil, err
		}
	}
	props := font.DefaultProperties()
	props.Families = []string{"sans-serif"}
	return &Intp{
		engine:   query.NewEngine(provider),
		registry: fontregistry.GlobalRegistry(),
		props:    props,
		dir:      bidi.Neutral,
		script:   language.Latin,
	}, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		quit, err := intp.execute(strings.ToLower(cmd), strings.TrimSpace(arg))
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(cmd, arg string) (bool, error) {
	tracer().Debugf("command %q, argument %q", cmd, arg)
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "font":
		if arg == "" {
			pterm.Printfln("font request is %s", intp.props)
			return false, nil
		}
		props, err := font.ParseProperties(arg)
		if err != nil {
			return false, err
		}
		intp.props = props
		pterm.Printfln("font request is %s", intp.props)
	case "query":
		props := intp.props
		if arg != "" {
			var err error
			if props, err = font.ParseProperties(arg); err != nil {
				return false, err
			}
		}
		fonts := intp.resolve(props)
		if len(fonts) == 0 {
			pterm.Info.Printfln("no font matches, last resort is %s", font.FallbackFont())
			return false, nil
		}
		printFonts(fonts)
	case "script":
		if arg != "" {
			script, err := language.ParseScript(arg)
			if err != nil {
				return false, core.WrapError(err, core.EINVALID, "not a script tag: %q", arg)
			}
			intp.script = script
		}
		pterm.Printfln("queries fall back to fonts for %s", intp.script)
	case "candidates":
		printFonts(intp.engine.Candidates(arg, intp.registry))
	case "dir":
		switch strings.ToLower(arg) {
		case "rtl":
			intp.dir = bidi.RightToLeft
		case "ltr":
			intp.dir = bidi.LeftToRight
		case "auto", "":
			intp.dir = bidi.Neutral
		default:
			return false, core.Error(core.EINVALID, "unknown direction %q", arg)
		}
	case "itemize":
		items := itemize.Itemize(arg, intp.dir)
		printRuns(items.Text(), items.Runs())
	case "resolve":
		items := itemize.Itemize(arg, intp.dir)
		printItems(items.Text(), intp.engine.ResolveItems(intp.props, intp.registry, items))
	case "fallback":
		script, err := language.ParseScript(arg)
		if err != nil {
			return false, core.WrapError(err, core.EINVALID, "not a script tag: %q", arg)
		}
		pterm.Printfln("%s: %s", script, strings.Join(intp.engine.Provider().FallbackFamilies(script), ", "))
	case "generic":
		families, ok := intp.engine.Provider().GenericFamilies(arg)
		if !ok {
			return false, core.Error(core.EMISSING, "not a generic family: %q", arg)
		}
		pterm.Printfln("%s: %s", arg, strings.Join(families, ", "))
	case "fonts":
		var fonts []*font.Descriptor
		for _, desc := range intp.engine.Provider().SystemFonts() {
			if arg == "" || strings.Contains(strings.ToLower(desc.Family), strings.ToLower(arg)) {
				fonts = append(fonts, desc)
			}
		}
		printFonts(fonts)
	case "google":
		if strings.HasPrefix(arg, "-v ") {
			resources.ListGoogleFonts(strings.TrimSpace(arg[3:]))
			return false, nil
		}
		fonts, err := resources.GoogleFonts(arg)
		if err != nil {
			return false, err
		}
		printFonts(fonts)
	case "css":
		return false, intp.loadStylesheet(arg)
	case "load":
		intp.loadFaces()
	case "registry":
		intp.registry.LogFontList()
		printFonts(intp.registry.Descriptors())
	default:
		help()
	}
	return false, nil
}

// resolve queries the requested families, then the fallback families for the
// current script.
func (intp *Intp) resolve(props *font.Properties) []*font.Descriptor {
	return intp.engine.ResolveScript(props, intp.registry, intp.script)
}

func (intp *Intp) loadStylesheet(filename string) error {
	css, err := os.ReadFile(filename)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot read stylesheet %s", filename)
	}
	faces, err := intp.registry.AddStylesheet(string(css), filepath.Dir(filename))
	if err != nil {
		return err
	}
	pterm.Info.Printfln("registered %d font faces", len(faces))
	return nil
}

// loadFaces loads all registered faces concurrently and waits for them.
func (intp *Intp) loadFaces() {
	faces := intp.registry.Faces()
	promises := make([]fontregistry.FacePromise, len(faces))
	for i, face := range faces {
		promises[i] = intp.registry.Load(face)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, p := range promises {
		if face, err := p.Await(ctx); err != nil {
			pterm.Error.Println(core.UserMessage(err))
		} else {
			pterm.Println(face.String())
		}
	}
	pterm.Printfln("%d loaded, %d failed", len(intp.registry.Loaded()), len(intp.registry.Failed()))
}

func printFonts(fonts []*font.Descriptor) {
	if len(fonts) == 0 {
		pterm.Println("no fonts found")
		return
	}
	data := [][]string{
		{"#", "Family", "Weight", "Style", "Variant", "Source"},
	}
	for i, desc := range fonts {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			desc.Family,
			fmt.Sprintf("%d", desc.Weight),
			desc.Style.String(),
			desc.Variant.String(),
			desc.Source.String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printRuns(text []uint16, runs []itemize.Run) {
	data := [][]string{
		{"Start", "End", "Script", "Level", "Text"},
	}
	for _, run := range runs {
		data = append(data, []string{
			fmt.Sprintf("%d", run.Start),
			fmt.Sprintf("%d", run.End),
			run.Script.String(),
			fmt.Sprintf("%d", run.Level),
			string(utf16.Decode(text[run.Start:run.End])),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printItems(text []uint16, items []query.Item) {
	data := [][]string{
		{"Text", "Script", "Level", "Fonts"},
	}
	for _, item := range items {
		families := make([]string, len(item.Fonts))
		for i, desc := range item.Fonts {
			families[i] = fmt.Sprintf("%s %d %s", desc.Family, desc.Weight, desc.Style)
		}
		data = append(data, []string{
			string(utf16.Decode(text[item.Run.Start:item.Run.End])),
			item.Run.Script.String(),
			fmt.Sprintf("%d", item.Run.Level),
			strings.Join(families, ", "),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	font [declarations]    show or set the font request, e.g. font: bold 12pt Georgia, serif
	query [declarations]   resolve the font request, or the given declarations
	script [tag]           show or set the script for fallback fonts of queries, e.g. Cyrl
	candidates <family>    list all fonts of a family
	itemize <text>         split text into script and bidi runs
	resolve <text>         itemize text and resolve fonts for every run
	dir ltr|rtl|auto       set the paragraph direction, auto lets the text decide
	fallback <script>      list fallback families for a script tag, e.g. Arab
	generic <keyword>      list families for a generic family, e.g. monospace
	fonts [pattern]        list system fonts, optionally filtered by family
	google [-v] <pattern>  list fonts of the Google webfont service (needs an API key)
	css <file>             register @font-face rules of a stylesheet
	load                   load the data of all registered fonts
	registry               list registered fonts
	quit                   leave the CLI
	`)
}
