package rle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles(t *testing.T) {
	var (
		dir        = t.TempDir()
		original   = filepath.Join(dir, "original.txt")
		compressed = filepath.Join(dir, "compressed.txt")
		restored   = filepath.Join(dir, "restored.txt")
		text       = "aaab\nccccc\n\nd"
	)
	require.NoError(t, os.WriteFile(original, []byte(text), 0o644))

	tokens, err := EncodeFile(original, compressed)
	require.NoError(t, err)
	assert.Equal(t, 4, tokens)

	buf, err := os.ReadFile(compressed)
	require.NoError(t, err)
	assert.Equal(t, "a 3 b 1\nc 5\n\nd 1", string(buf))

	written, err := DecodeFile(compressed, restored)
	require.NoError(t, err)
	assert.Equal(t, int64(len(text)), written)

	buf, err = os.ReadFile(restored)
	require.NoError(t, err)
	assert.Equal(t, text, string(buf))
}

func TestFilesErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := EncodeFile(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.txt"))
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "open", ioErr.Op)

	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("a 1\nb\n"), 0o644))
	_, err = DecodeFile(in, filepath.Join(dir, "missing", "out.txt"))
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "create", ioErr.Op)

	out := filepath.Join(dir, "out.txt")
	_, err = DecodeFile(in, out)
	assert.ErrorIs(t, err, ErrFormat)
	assert.NoFileExists(t, out)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = EncodeFile(empty, out)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.NoFileExists(t, out)
}

func TestFilesKeepOutputOnError(t *testing.T) {
	var (
		dir   = t.TempDir()
		in    = filepath.Join(dir, "in.txt")
		out   = filepath.Join(dir, "out.txt")
		codec = New(&Config{BufferSize: 16})
	)
	require.NoError(t, os.WriteFile(in, []byte(strings.Repeat("ab", 40)+" "), 0o644))
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))

	_, err := codec.EncodeFile(in, out)
	assert.ErrorIs(t, err, ErrDisallowedSymbol)

	buf, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(buf))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, os.WriteFile(in, []byte("zz"), 0o644))
	_, err = codec.EncodeFile(in, out)
	require.NoError(t, err)

	buf, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "z 2", string(buf))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}
