package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/senseilua/lualint/internal/types"
)

func writeLuaFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestProcessPathSingleFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.lua")
	require.NoError(t, os.WriteFile(path, []byte("if true then"), 0o644))

	engine, err := New("", tt.DefaultOptions())
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), nil, engine, path, ProcessFile)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "Missing final newline", issues[0].Message)
	assert.Equal(t, "Unclosed block expecting 'end'", issues[1].Message)
	for _, issue := range issues {
		assert.Equal(t, path, issue.Filename)
	}
}

func TestProcessPathSkipsNonLuaFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("no newline"), 0o644))

	engine, err := New("", tt.DefaultOptions())
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), nil, engine, path, ProcessFile)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestProcessPathDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeLuaFiles(t, dir, map[string]string{
		"clean.lua":        "x = 1\n",
		"bad.lua":          "y = 2",
		"sub/also_bad.lua": "repeat\n",
		"ignored.txt":      "no newline",
	})

	engine, err := New("", tt.DefaultOptions())
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), nil, engine, dir, ProcessFile)
	require.NoError(t, err)

	byFile := make(map[string]int)
	for _, issue := range issues {
		byFile[filepath.Base(issue.Filename)]++
	}
	assert.Equal(t, map[string]int{"bad.lua": 1, "also_bad.lua": 1}, byFile)
}

func TestProcessPathMissing(t *testing.T) {
	t.Parallel()
	engine, err := New("", tt.DefaultOptions())
	require.NoError(t, err)

	_, err = ProcessPath(context.Background(), nil, engine, filepath.Join(t.TempDir(), "missing"), ProcessFile)
	assert.Error(t, err)
}

func TestProcessFilesMultiplePaths(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeLuaFiles(t, dir, map[string]string{
		"a.lua": "x = 1",
		"b.lua": "y = 2",
	})

	engine, err := New("", tt.DefaultOptions())
	require.NoError(t, err)

	paths := []string{filepath.Join(dir, "a.lua"), filepath.Join(dir, "b.lua")}
	issues, err := ProcessFiles(context.Background(), nil, engine, paths, ProcessFile)
	require.NoError(t, err)
	assert.Len(t, issues, 2)
}

func TestProcessPathContextCancellation(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	files := make(map[string]string, 50)
	for i := range 50 {
		files[fmt.Sprintf("file%02d.lua", i)] = "if true then\n"
	}
	writeLuaFiles(t, dir, files)

	engine, err := New("", tt.DefaultOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err = ProcessPath(ctx, nil, engine, dir, ProcessFile)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 5*time.Second)
}
