package fontregistry

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/npillmayer/fontrun/core"
	"github.com/npillmayer/fontrun/core/font"
)

// Status is the loading state of a font face.
type Status int8

// A face starts out unloaded. Loading will either succeed or fail.
const (
	StatusUnloaded Status = iota
	StatusLoaded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	}
	return "unloaded"
}

// lastID is the last face id handed out. Ids are never reused.
var lastID uint64

// FontFace is a font added by a client. It wraps a font descriptor and
// carries an identity, which is unique for the lifetime of the process.
type FontFace struct {
	id     uint64
	desc   *font.Descriptor
	mu     sync.Mutex
	status Status
	err    error
}

// FaceOption is an optional font descriptor for a face, as allowed for
// CSS @font-face rules.
type FaceOption func(*font.Descriptor) error

// Weight sets a face's font-weight from a CSS value. For weight ranges
// ("100 900") the lower bound is used.
func Weight(w string) FaceOption {
	return func(desc *font.Descriptor) (err error) {
		desc.Weight, err = font.ParseWeight(firstField(w), font.WeightNormal)
		return
	}
}

// Style sets a face's font-style from a CSS value.
func Style(s string) FaceOption {
	return func(desc *font.Descriptor) (err error) {
		desc.Style, err = font.ParseStyle(firstField(s))
		return
	}
}

// Variant sets a face's font-variant from a CSS value.
func Variant(v string) FaceOption {
	return func(desc *font.Descriptor) (err error) {
		desc.Variant, err = font.ParseVariant(v)
		return
	}
}

// NewFace creates a font face for a family. src must reference either a
// file/URL or in-memory font data, but not both.
// Faces are created in status Unloaded.
func NewFace(family string, src font.Source, opts ...FaceOption) (*FontFace, error) {
	if (src.URL == "") == (src.Data == nil) {
		return nil, core.Error(core.EINVALID, "font face %q needs exactly one source", family)
	}
	desc := font.NewDescriptor(family, src)
	for _, opt := range opts {
		if err := opt(desc); err != nil {
			return nil, core.WrapError(err, core.EINVALID, "invalid descriptor for font face %q", family)
		}
	}
	face := &FontFace{
		id:   atomic.AddUint64(&lastID, 1),
		desc: desc,
	}
	tracer().Debugf("new font face #%d = %s", face.id, desc)
	return face, nil
}

// ID returns the identity of a face.
func (face *FontFace) ID() uint64 {
	return face.id
}

// Family returns the family name of a face.
func (face *FontFace) Family() string {
	return face.desc.Family
}

// Descriptor returns the font descriptor of a face. Clients must not modify it.
func (face *FontFace) Descriptor() *font.Descriptor {
	return face.desc
}

// Status returns the loading state of a face.
func (face *FontFace) Status() Status {
	face.mu.Lock()
	defer face.mu.Unlock()
	return face.status
}

// Err returns the error of a failed loading attempt, if any.
func (face *FontFace) Err() error {
	face.mu.Lock()
	defer face.mu.Unlock()
	return face.err
}

func (face *FontFace) setStatus(s Status, err error) {
	face.mu.Lock()
	defer face.mu.Unlock()
	face.status, face.err = s, err
}

func (face *FontFace) String() string {
	return fmt.Sprintf("#%d %s (%s)", face.id, face.desc, face.Status())
}

func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return s
}
