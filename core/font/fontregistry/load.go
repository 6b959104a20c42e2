package fontregistry

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path"
	"path/filepath"

	"github.com/npillmayer/fontrun/core"
	"github.com/npillmayer/fontrun/core/locate/resources"
	"golang.org/x/image/font/sfnt"
)

// FacePromise is returned by Load. Clients call Face or Await to
// receive the face after loading has completed.
type FacePromise interface {
	Face() (*FontFace, error)
	Await(ctx context.Context) (*FontFace, error)
}

type faceLoader struct {
	await func(ctx context.Context) (*FontFace, error)
}

func (loader faceLoader) Face() (*FontFace, error) {
	return loader.await(context.Background())
}

func (loader faceLoader) Await(ctx context.Context) (*FontFace, error) {
	return loader.await(ctx)
}

// Load loads the binary data of a face in the background and checks that it
// is a font we can handle. Remote fonts are downloaded to the user's cache
// directory first. On completion the face will be in status Loaded or Error.
//
// Loading does not change the font descriptor of a face. If the face has been
// registered with fr, fr tracks its loading status.
func (fr *Registry) Load(face *FontFace) FacePromise {
	done := make(chan struct{})
	var err error
	fr.transition(face, StatusUnloaded, true)
	go func() {
		defer close(done)
		var data []byte
		if data, err = readFaceData(face); err == nil {
			err = validate(data)
		}
		if err != nil {
			err = core.WrapError(err, core.Code(err), "cannot load font face %q", face.Family())
			tracer().Errorf("font face #%d: %v", face.id, err)
			face.setStatus(StatusError, err)
			fr.transition(face, StatusError, false)
			return
		}
		tracer().Infof("font face #%d loaded (%s)", face.id, face.desc.Source)
		face.setStatus(StatusLoaded, nil)
		fr.transition(face, StatusLoaded, false)
	}()
	return faceLoader{
		await: func(ctx context.Context) (*FontFace, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-done:
				return face, err
			}
		},
	}
}

func readFaceData(face *FontFace) ([]byte, error) {
	src := face.desc.Source
	if src.IsData() {
		return src.Data, nil
	}
	filename := src.URL
	if src.IsRemote() {
		cachedir, err := resources.CacheDirPath("fonts")
		if err != nil {
			return nil, core.WrapError(err, core.EMISSING, "no cache directory for remote fonts")
		}
		h := sha1.Sum([]byte(src.URL))
		filename = filepath.Join(cachedir, hex.EncodeToString(h[:8])+path.Ext(src.URL))
		if _, err := os.Stat(filename); err != nil {
			if err = resources.DownloadCachedFile(filename, src.URL); err != nil {
				return nil, core.WrapError(err, core.ECONNECTION, "cannot download %s", src.URL)
			}
		}
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", filename)
	}
	return data, nil
}

// validate checks that data is an OpenType/TrueType font or collection.
func validate(data []byte) (err error) {
	switch {
	case bytes.HasPrefix(data, []byte("wOFF")), bytes.HasPrefix(data, []byte("wOF2")):
		return core.Error(core.EUNSUPPORTED, "WOFF fonts are not supported")
	case bytes.HasPrefix(data, []byte("ttcf")):
		var c *sfnt.Collection
		if c, err = sfnt.ParseCollection(data); err == nil && c.NumFonts() == 0 {
			return core.Error(core.EINVALID, "empty font collection")
		}
	default:
		_, err = sfnt.Parse(data)
	}
	if err != nil {
		return core.WrapError(err, core.EINVALID, "not a valid font")
	}
	return nil
}
