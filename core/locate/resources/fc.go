package resources

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"path"
	"strings"
	"sync"

	"github.com/npillmayer/fontrun/core"
	"github.com/npillmayer/fontrun/core/font"
	"github.com/npillmayer/schuko"
)

func findFontConfigBinary(conf schuko.Configuration) (string, error) {
	fcpath := conf.GetString("fontconfig")
	if fcpath == "" {
		tracer().Infof("fontconfig not configured: key 'fontconfig' should point location of 'fc-list' binary")
		return "", core.Error(core.EMISSING, "fontconfig not configured")
	}
	if !path.IsAbs(fcpath) {
		return "", core.Error(core.EINVALID, "fontconfig binary fc-list must point to absolute path: %s", fcpath)
	}
	if fi, err := os.Stat(fcpath); err != nil || (fi.Mode().Perm()&0100) == 0 {
		return "", core.WrapError(err, core.EINVALID,
			"fontconfig configuration points to an invalid binary: %s", fcpath)
	}
	return fcpath, nil
}

// cacheFontConfigList copies the output of fc-list to the user's config
// directory, if not already present or if update is set. It returns the path
// of the list file.
func cacheFontConfigList(conf schuko.Configuration, update bool) (string, error) {
	appkey := conf.GetString("app-key")
	tracer().Debugf("config[app-key] = %s", appkey)
	uconfdir, err := os.UserConfigDir()
	if appkey == "" || err != nil {
		return "", core.WrapError(err, core.EMISSING, "user config directory not set")
	}
	fcListFilename := path.Join(uconfdir, appkey, "fontlist.txt")
	if _, err := os.Stat(fcListFilename); err == nil {
		// fontlist already exists
		if !update {
			return fcListFilename, nil
		}
	} else { // create config sub-dir for this application
		dir := path.Join(uconfdir, appkey)
		if _, err = os.Stat(dir); os.IsNotExist(err) {
			if err = os.MkdirAll(dir, 0755); err != nil {
				return "", core.WrapError(err, core.EINVALID,
					"user configuration path cannot be created: %s", dir)
			}
		}
	}
	fcpath, err := findFontConfigBinary(conf)
	if err != nil {
		return "", err
	}
	fontlistFile, err := os.Create(fcListFilename)
	if err == nil {
		fccmd := exec.Command(fcpath)
		fccmd.Stdout = fontlistFile
		err = fccmd.Run()
		fontlistFile.Close()
	}
	if err != nil {
		os.Remove(fcListFilename)
		return "", core.WrapError(err, core.EINVALID,
			"fontconfig output file cannot be created: %s", fcListFilename)
	}
	return fcListFilename, nil
}

// parseFontConfigList reads lines of fc-list output, which look like this:
//
//	/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf: DejaVu Sans:style=Bold
//
// Family and style may be lists of localized names, separated by commas.
// We use the first family name. Weight and style are derived from the
// style names.
func parseFontConfigList(r io.Reader) ([]*font.Descriptor, error) {
	var descs []*font.Descriptor
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, ":", 3)
		if len(fields) < 2 {
			continue
		}
		fontpath := strings.TrimSpace(fields[0])
		families := strings.Split(fields[1], ",")
		family := strings.TrimPrefix(strings.TrimSpace(families[0]), ".")
		if fontpath == "" || family == "" {
			continue
		}
		desc := font.NewDescriptor(family, font.FromURL(fontpath))
		if len(fields) == 3 {
			stylenames := strings.TrimPrefix(strings.TrimSpace(fields[2]), "style=")
			desc.Style, desc.Weight = font.GuessStyleAndWeight(stylenames)
			if strings.Contains(strings.ToLower(stylenames), "small caps") {
				desc.Variant = font.VariantSmallCaps
			}
		}
		descs = append(descs, desc)
	}
	if err := scanner.Err(); err != nil {
		return descs, core.WrapError(err, core.EINVALID,
			"encountered a problem during reading of fontconfig font list")
	}
	return descs, nil
}

var loadFontConfigListTask sync.Once
var fontConfigLoadError error
var fontConfigDescriptors []*font.Descriptor

// FontConfigFonts lists the fonts known to the fontconfig system
// (https://www.freedesktop.org/wiki/Software/fontconfig/).
// fontconfig has to be configured in the global application configuration by
// setting the absolute path of the 'fc-list' binary.
//
// FontConfigFonts will copy the output of fc-list to the user's config
// directory once. Subsequent calls will use the cached entries.
//
// We call the binary instead of using the C library because of possible version
// issues. The list is loaded once per process; descriptors returned by
// different calls are identical.
func FontConfigFonts(conf schuko.Configuration) ([]*font.Descriptor, error) {
	loadFontConfigListTask.Do(func() {
		var fclist string
		if fclist, fontConfigLoadError = cacheFontConfigList(conf, false); fontConfigLoadError != nil {
			return
		}
		fc, err := os.Open(fclist)
		if err != nil {
			fontConfigLoadError = core.WrapError(err, core.EINVALID,
				"fontconfig font list cannot be opened: %s", fclist)
			return
		}
		defer fc.Close()
		fontConfigDescriptors, fontConfigLoadError = parseFontConfigList(fc)
		tracer().Infof("loaded fontconfig list with %d fonts", len(fontConfigDescriptors))
	})
	return fontConfigDescriptors, fontConfigLoadError
}
