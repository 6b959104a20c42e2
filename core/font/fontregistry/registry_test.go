package fontregistry

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/npillmayer/fontrun/core"
	"github.com/npillmayer/fontrun/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Test Suite Preparation ------------------------------------------------

type RegistryTestEnviron struct {
	suite.Suite
	reg *Registry
}

// listen for 'go test' command --> run test methods
func TestRegistryFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontrun.font")
	defer teardown()
	suite.Run(t, new(RegistryTestEnviron))
}

// run before each test method
func (env *RegistryTestEnviron) SetupTest() {
	env.reg = NewRegistry()
}

// --- Tests -----------------------------------------------------------------

func (env *RegistryTestEnviron) TestNewFaceNeedsOneSource() {
	_, err := NewFace("Go", font.Source{})
	env.Error(err)
	env.Equal(core.EINVALID, core.Code(err))
	_, err = NewFace("Go", font.Source{URL: "go.ttf", Data: goregular.TTF})
	env.Error(err)
	face, err := NewFace("Go", font.FromData(goregular.TTF), Weight("bold"), Style("italic"))
	env.Require().NoError(err)
	env.Equal(font.WeightBold, face.Descriptor().Weight)
	env.Equal(font.StyleItalic, face.Descriptor().Style)
	env.Equal(StatusUnloaded, face.Status())
}

func (env *RegistryTestEnviron) TestIdsAreMonotonic() {
	a := env.face("A")
	b := env.face("B")
	env.Less(a.ID(), b.ID())
	env.reg.Add(a)
	env.reg.Delete(a)
	c := env.face("C")
	env.Less(b.ID(), c.ID(), "ids must not be reused")
}

func (env *RegistryTestEnviron) TestAddDeleteClear() {
	a, b, c := env.face("A"), env.face("B"), env.face("C")
	env.True(env.reg.Add(a))
	env.True(env.reg.Add(b))
	env.False(env.reg.Add(a), "face added twice")
	env.True(env.reg.Add(c))
	env.Equal(3, env.reg.Size())
	env.True(env.reg.Delete(b))
	env.False(env.reg.Delete(b))
	env.False(env.reg.Has(b))
	env.True(env.reg.Has(c))
	env.Equal(2, env.reg.Size())
	descs := env.reg.Descriptors()
	env.Require().Len(descs, 2)
	env.True(descs[0] == a.Descriptor(), "descriptors must be the faces' own")
	env.True(descs[1] == c.Descriptor())
	env.reg.Clear()
	env.Equal(0, env.reg.Size())
	env.Empty(env.reg.Faces())
	env.True(env.reg.Add(b), "deleted face may be added again")
	env.Equal(1, env.reg.Size())
}

func (env *RegistryTestEnviron) TestIteratorSurvivesDelete() {
	a, b, c := env.face("A"), env.face("B"), env.face("C")
	env.reg.Add(a)
	env.reg.Add(b)
	env.reg.Add(c)
	it := env.reg.Iterator()
	env.Require().True(it.Next())
	env.Equal("A", it.Face().Family())
	env.reg.Delete(b)
	env.Require().True(it.Next())
	env.Equal("C", it.Face().Family())
	d := env.face("D")
	env.reg.Add(d)
	env.Require().True(it.Next())
	env.Equal("D", it.Face().Family())
	env.False(it.Next())
	env.Nil(it.Face())
}

func (env *RegistryTestEnviron) TestLoadData() {
	good := env.face("Go")
	bad, err := NewFace("Broken", font.FromData([]byte("definitely not a font")))
	env.Require().NoError(err)
	env.reg.Add(good)
	env.reg.Add(bad)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	f, err := env.reg.Load(good).Await(ctx)
	env.Require().NoError(err)
	env.Equal(StatusLoaded, f.Status())
	_, err = env.reg.Load(bad).Await(ctx)
	env.Error(err)
	env.Equal(core.EINVALID, core.Code(err))
	env.Equal(StatusError, bad.Status())
	env.Equal([]*FontFace{good}, env.reg.Loaded())
	env.Equal([]*FontFace{bad}, env.reg.Failed())
	env.Empty(env.reg.Loading())
	s, ok := env.reg.Status(bad)
	env.True(ok)
	env.Equal(StatusError, s)
}

func (env *RegistryTestEnviron) TestLoadFile() {
	dir := env.T().TempDir()
	fontfile := filepath.Join(dir, "GoBold.ttf")
	env.Require().NoError(os.WriteFile(fontfile, gobold.TTF, 0644))
	face, err := NewFace("Go", font.FromURL(fontfile), Weight("700"))
	env.Require().NoError(err)
	env.reg.Add(face)
	_, err = env.reg.Load(face).Face()
	env.NoError(err)
	env.Equal(StatusLoaded, face.Status())
	//
	missing, _ := NewFace("Go", font.FromURL(filepath.Join(dir, "missing.ttf")))
	_, err = env.reg.Load(missing).Face()
	env.Error(err)
	env.Equal(core.EMISSING, core.Code(err))
}

func (env *RegistryTestEnviron) TestStylesheet() {
	sheet := `
body { font-family: serif; }
@font-face {
  font-family: "Open Sans";
  src: local("Open Sans Bold"), url("fonts/OpenSans-Bold.ttf") format("truetype");
  font-weight: bold;
}
@font-face {
  font-family: Lato;
  src: url(https://example.com/lato-italic.ttf);
  font-style: italic;
  font-weight: 300 500;
}`
	faces, err := env.reg.AddStylesheet(sheet, "/usr/share")
	env.Require().NoError(err)
	env.Require().Len(faces, 2)
	env.Equal(2, env.reg.Size())
	open := faces[0].Descriptor()
	env.Equal("Open Sans", open.Family)
	env.Equal(font.WeightBold, open.Weight)
	env.Equal(filepath.Join("/usr/share", "fonts/OpenSans-Bold.ttf"), open.Source.URL)
	lato := faces[1].Descriptor()
	env.Equal("Lato", lato.Family)
	env.Equal(font.StyleItalic, lato.Style)
	env.Equal(font.WeightLight, lato.Weight)
	env.Equal("https://example.com/lato-italic.ttf", lato.Source.URL)
	env.True(lato.Source.IsRemote())
	//
	_, err = env.reg.AddStylesheet("@font-face { font-family: X; }", "")
	env.Error(err)
}

// --- Helpers ---------------------------------------------------------------

func (env *RegistryTestEnviron) face(family string) *FontFace {
	face, err := NewFace(family, font.FromData(goregular.TTF))
	env.Require().NoError(err)
	return face
}

func TestGlobalRegistryIsSingleton(t *testing.T) {
	if GlobalRegistry() != GlobalRegistry() {
		t.Errorf("expected global registry to be a singleton")
	}
}
