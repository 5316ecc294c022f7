package pad

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var world = filepath.Join("testdata", "world")

func TestXOR(t *testing.T) {
	t.Run("truth table", func(t *testing.T) {
		got := slices.Collect(XOR(slices.Values([]byte{0, 0, 1, 1}), slices.Values([]byte{0, 1, 0, 1})))
		assert.Equal(t, []byte{0, 1, 1, 0}, got)
	})

	t.Run("hello world", func(t *testing.T) {
		got := slices.Collect(XOR(slices.Values([]byte("hello")), slices.Values([]byte("world"))))
		assert.Equal(t, []byte{31, 10, 30, 0, 11}, got)
	})

	t.Run("short message", func(t *testing.T) {
		got := slices.Collect(XOR(slices.Values([]byte("hell")), slices.Values([]byte("world"))))
		assert.Equal(t, []byte{31, 10, 30, 0}, got)

		got = slices.Collect(XOR(slices.Values([]byte{}), slices.Values([]byte("world"))))
		assert.Empty(t, got)
	})

	t.Run("short key stops early", func(t *testing.T) {
		got := slices.Collect(XOR(slices.Values([]byte("hello")), slices.Values([]byte("wo"))))
		assert.Equal(t, []byte{31, 10}, got)
	})

	t.Run("self inverse", func(t *testing.T) {
		a := []byte("attack at dawn")
		b := []byte("qwertyuiopasdf")
		once := slices.Collect(XOR(slices.Values(a), slices.Values(b)))
		twice := slices.Collect(XOR(slices.Values(once), slices.Values(b)))
		assert.Equal(t, a, twice)
	})

	t.Run("early break", func(t *testing.T) {
		var got []byte
		for b := range XOR(slices.Values([]byte("hello")), slices.Values([]byte("world"))) {
			got = append(got, b)
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []byte{31, 10}, got)
	})
}

func TestXORList(t *testing.T) {
	got, err := XORList([]byte("hello"), []byte("world"))
	require.NoError(t, err)
	assert.Equal(t, []byte{31, 10, 30, 0, 11}, got)

	t.Run("short pad", func(t *testing.T) {
		_, err := XORList([]byte("hello"), []byte("worl"))
		require.ErrorIs(t, err, ErrExhausted)

		var exhausted *ExhaustedError
		require.ErrorAs(t, err, &exhausted)
		assert.Empty(t, exhausted.Path)
		assert.Nil(t, exhausted.Stream)
		assert.Equal(t, 5, exhausted.Need)
		assert.Equal(t, 4, exhausted.Have)
	})
}

func TestXORStream(t *testing.T) {
	open := func(t *testing.T) *os.File {
		t.Helper()
		f, err := os.Open(world)
		require.NoError(t, err)
		t.Cleanup(func() { f.Close() })
		return f
	}

	t.Run("simple", func(t *testing.T) {
		seq, err := XORStream([]byte("hello"), open(t), 0)
		require.NoError(t, err)
		assert.Equal(t, []byte{31, 10, 30, 0, 11}, slices.Collect(seq))
	})

	t.Run("offset", func(t *testing.T) {
		seq, err := XORStream([]byte("lo"), open(t), 3)
		require.NoError(t, err)
		assert.Equal(t, []byte{'l' ^ 'l', 'o' ^ 'd'}, slices.Collect(seq))
	})

	t.Run("short pad", func(t *testing.T) {
		f := open(t)
		_, err := XORStream([]byte("hello there"), f, 0)
		require.ErrorIs(t, err, ErrExhausted)

		var exhausted *ExhaustedError
		require.ErrorAs(t, err, &exhausted)
		assert.Same(t, f, exhausted.Stream)
	})

	t.Run("offset past end", func(t *testing.T) {
		_, err := XORStream([]byte("h"), open(t), 50)
		assert.ErrorIs(t, err, ErrExhausted)
	})

	t.Run("negative offset", func(t *testing.T) {
		_, err := XORStream([]byte("whatever"), open(t), -2)
		require.ErrorIs(t, err, ErrInvalidOffset)

		var invalid *InvalidOffsetError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, int64(-2), invalid.Value)
	})

	t.Run("stream stays open for reuse", func(t *testing.T) {
		f := open(t)
		_, err := XORStream([]byte("he"), f, 0)
		require.NoError(t, err)

		seq, err := XORStream([]byte("lo"), f, 3)
		require.NoError(t, err)
		assert.Len(t, slices.Collect(seq), 2)
	})

	t.Run("in memory reader", func(t *testing.T) {
		seq, err := XORStream([]byte("hello"), bytes.NewReader([]byte("world")), 0)
		require.NoError(t, err)
		assert.Equal(t, []byte{31, 10, 30, 0, 11}, slices.Collect(seq))
	})
}

func TestXORPath(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		seq, err := XORPath([]byte("hello"), world, 0)
		require.NoError(t, err)
		assert.Equal(t, []byte{31, 10, 30, 0, 11}, slices.Collect(seq))
	})

	t.Run("negative offset", func(t *testing.T) {
		_, err := XORPath([]byte("whatever"), world, -2)
		assert.ErrorIs(t, err, ErrInvalidOffset)
	})

	t.Run("offset past end", func(t *testing.T) {
		_, err := XORPath([]byte("h"), world, 6)
		require.ErrorIs(t, err, ErrExhausted)

		var exhausted *ExhaustedError
		require.ErrorAs(t, err, &exhausted)
		assert.Equal(t, world, exhausted.Path)
	})

	t.Run("offset at end with empty message", func(t *testing.T) {
		seq, err := XORPath(nil, world, 5)
		require.NoError(t, err)
		assert.Empty(t, slices.Collect(seq))
	})

	t.Run("short pad", func(t *testing.T) {
		_, err := XORPath([]byte("hello"), world, 2)
		require.ErrorIs(t, err, ErrExhausted)

		var exhausted *ExhaustedError
		require.ErrorAs(t, err, &exhausted)
		assert.Equal(t, world, exhausted.Path)
		assert.Equal(t, 3, exhausted.Have)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := XORPath([]byte("h"), filepath.Join(t.TempDir(), "nope"), 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDecode_PointerSources(t *testing.T) {
	_, err := Decode([]byte("hello"), &File{Path: world}, 2)
	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, world, exhausted.Path)

	r := bytes.NewReader([]byte("world"))
	_, err = Decode([]byte("hello"), &Stream{R: r}, 2)
	require.ErrorAs(t, err, &exhausted)
	assert.Same(t, r, exhausted.Stream)
	assert.Empty(t, exhausted.Path)
}

func TestDecode_Bytes(t *testing.T) {
	src := Bytes("xxworld")

	seq, err := Decode([]byte("hello"), src, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{31, 10, 30, 0, 11}, slices.Collect(seq))

	_, err = Decode([]byte("hello"), src, 3)
	assert.ErrorIs(t, err, ErrExhausted)

	_, err = Decode([]byte("hello"), src, 100)
	assert.ErrorIs(t, err, ErrExhausted)
}

type failingSeeker struct{ io.Reader }

func (failingSeeker) Seek(int64, int) (int64, error) {
	return 0, io.ErrClosedPipe
}

func TestDecode_SeekError(t *testing.T) {
	_, err := XORStream([]byte("h"), failingSeeker{}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
	assert.NotErrorIs(t, err, ErrExhausted)
}

func TestOffset(t *testing.T) {
	off, err := Offset(intPtr(12))
	require.NoError(t, err)
	assert.Equal(t, int64(12), off)

	_, err = Offset(nil)
	assert.ErrorIs(t, err, ErrInvalidOffset)

	_, err = Offset(intPtr(-2))
	require.ErrorIs(t, err, ErrInvalidOffset)
	assert.Equal(t, "invalid pad offset: -2", err.Error())
}

func intPtr(v int) *int { return &v }
