package server_test

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"fmh-devserver/core/server"
	"fmh-devserver/feature/static"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_MiddlewareChain(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644))

	app, err := server.New(zap.NewNop(), static.NewFeature(dir, zap.NewNop()))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// Ray id and the fixed headers ride on the same response
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestNew_FeatureLoadFailure(t *testing.T) {
	_, err := server.New(zap.NewNop(), static.NewFeature(filepath.Join(t.TempDir(), "gone"), zap.NewNop()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "static")
}
