package resources

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"testing"

	"github.com/npillmayer/fontrun/core"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheDownload(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		"app-key": "fontrun-test",
	})
	defer teardown()
	//
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/font.ttf" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("font data"))
	}))
	defer srv.Close()
	cachedir, err := CacheDirPath("fonts", "test")
	require.NoError(t, err)
	assert.Contains(t, cachedir, "fontrun-test")
	target := path.Join(cachedir, "test.ttf")
	defer os.Remove(target)
	err = DownloadCachedFile(target, srv.URL+"/font.ttf")
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "font data", string(data))
	//
	err = DownloadCachedFile(path.Join(cachedir, "missing.ttf"), srv.URL+"/missing.ttf")
	assert.Equal(t, core.ECONNECTION, core.Code(err))
	_, err = os.Stat(path.Join(cachedir, "missing.ttf"))
	assert.True(t, os.IsNotExist(err))
}
