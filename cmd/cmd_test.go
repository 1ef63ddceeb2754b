package cmd

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONTENT_FILE", "")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestContentCheckBuiltIn(t *testing.T) {
	out, err := run(t, "content", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in content: ok (4 projects")
}

func TestContentCheckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	doc := "profile: {name: Someone}\nprojects:\n  - {id: only, title: Only}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := run(t, "content", "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (1 projects, 0 experiences, 0 artworks)")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("projects: []\n"), 0o644))
	_, err = run(t, "content", "check", bad)
	assert.Error(t, err)
}

func TestContentProjects(t *testing.T) {
	out, err := run(t, "content", "projects")
	require.NoError(t, err)
	assert.Contains(t, out, "01 prosperous")
	assert.Contains(t, out, "overview, problem-goals, research-ideation")
}

func TestContentCommandsDoNotWarn(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	var logged bytes.Buffer
	log.SetOutput(&logged)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	for _, args := range [][]string{{"content", "check"}, {"content", "projects"}} {
		out, err := run(t, args...)
		require.NoError(t, err)
		assert.NotContains(t, out, "WARNING")
	}
	assert.NotContains(t, logged.String(), "WARNING")
}
