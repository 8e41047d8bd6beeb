package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempDB(t *testing.T) {
	t.Helper()
	old := dbPath
	dbPath = filepath.Join(t.TempDir(), "badger")
	t.Cleanup(func() { dbPath = old })
}

func TestRunBuild(t *testing.T) {
	useTempDB(t)

	contentDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "site")
	writePost(t, contentDir, "2016-03-24-npm-left-pad.md", `---
title: "The Left-Pad Incident"
categories: nodejs npm
---
Eleven lines of code.
`)

	code := RunBuild([]string{contentDir, "--out", outDir})
	require.Equal(t, 0, code)

	for _, rel := range []string{
		"index.html",
		filepath.Join("posts", "npm-left-pad", "index.html"),
		filepath.Join("categories", "nodejs", "index.html"),
		"feed.xml",
	} {
		_, err := os.Stat(filepath.Join(outDir, rel))
		assert.NoError(t, err, "expected %s to exist", rel)
	}
}

func TestRunBuildAbortsOnLintErrors(t *testing.T) {
	useTempDB(t)

	contentDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "site")
	writePost(t, contentDir, "2016-03-24-bad.md", `---
title: "Bad"
---
`+"```madeuplang\nnope\n```\n")

	code := RunBuild([]string{contentDir, "--out", outDir})
	assert.Equal(t, 1, code)

	_, err := os.Stat(outDir)
	assert.True(t, os.IsNotExist(err), "lint errors must keep the site unwritten")
}

func TestCopyStatic(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "static")
	require.NoError(t, os.WriteFile(filepath.Join(src, "site.css"), []byte("body {}"), 0644))

	require.NoError(t, copyStatic(src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "site.css"))
	require.NoError(t, err)
	assert.Equal(t, "body {}", string(data))

	// A missing source directory is fine.
	assert.NoError(t, copyStatic(filepath.Join(src, "missing"), dst))
}
