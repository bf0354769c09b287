package panel_test

import (
	"os"
	"path/filepath"
	"testing"

	"fmh-devserver/feature/panel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writePanel(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("<html></html>"), 0o644))
}

func TestStartPage(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"NoPanels", nil, "/"},
		{"DiagnosticOnly", []string{panel.DiagnosticPage}, "/" + panel.DiagnosticPage},
		{"ManagementOnly", []string{panel.ManagementPage}, "/" + panel.ManagementPage},
		{"ManagementWins", []string{panel.ManagementPage, panel.DiagnosticPage}, "/" + panel.ManagementPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				writePanel(t, dir, f)
			}
			svc := panel.NewService(dir, zap.NewNop())
			assert.Equal(t, tt.want, svc.StartPage())
		})
	}
}

func TestStartPage_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	// A directory with the panel's name does not count as the panel
	require.NoError(t, os.Mkdir(filepath.Join(dir, panel.ManagementPage), 0o755))

	svc := panel.NewService(dir, zap.NewNop())
	assert.Equal(t, "/", svc.StartPage())
}

func TestMissing(t *testing.T) {
	dir := t.TempDir()
	svc := panel.NewService(dir, zap.NewNop())
	assert.Equal(t, []string{panel.ManagementPage, panel.DiagnosticPage}, svc.Missing())

	writePanel(t, dir, panel.DiagnosticPage)
	assert.Equal(t, []string{panel.ManagementPage}, svc.Missing())

	writePanel(t, dir, panel.ManagementPage)
	assert.Empty(t, svc.Missing())
}
