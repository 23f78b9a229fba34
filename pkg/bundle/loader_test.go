package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoad_ValidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("héllo\n"), 0o644))

	text, err := Load(path, DecodeReplace, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "héllo\n", text)
}

func TestLoad_ReplacesInvalidBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("ok\xff\nbad\xfe\xfdend\n"), 0o644))

	text, err := Load(path, DecodeReplace, nil)

	require.NoError(t, err)
	assert.Equal(t, "ok\uFFFD\nbad\uFFFD\uFFFDend\n", text)
}

func TestLoad_StrictRejectsInvalidBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("ok\xff\n"), 0o644))

	_, err := Load(path, DecodeStrict, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestLoad_StrictAcceptsValidText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("fine\n"), 0o644))

	text, err := Load(path, DecodeStrict, nil)

	require.NoError(t, err)
	assert.Equal(t, "fine\n", text)
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), DecodeReplace, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_WarnsOnBinaryLookingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	require.NoError(t, os.WriteFile(path, []byte{'a', 0, 'b', 0}, 0o644))
	core, logs := observer.New(zapcore.WarnLevel)

	text, err := Load(path, DecodeReplace, zap.New(core))

	require.NoError(t, err)
	assert.Equal(t, "a\x00b\x00", text)
	assert.Equal(t, 1, logs.FilterMessage("File looks binary; bundling it as text anyway").Len())
}

func TestDecode_UnknownMode(t *testing.T) {
	_, err := Decode([]byte{0xff}, Decoding("latin1"))
	assert.ErrorIs(t, err, ErrUnknownDecoding)
}

func TestLooksBinary(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", nil, false},
		{"text", []byte("package main\n\nfunc main() {}\n"), false},
		{"utf8 text", []byte("grüße, 世界\n"), false},
		{"nul byte", []byte("abc\x00def"), true},
		{"control heavy", []byte("\x01\x02\x03\x04a"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, looksBinary(tt.data))
		})
	}
}
