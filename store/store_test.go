package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, kv.Set("commitLabelsConfig", []byte(`{"a":1}`)))
	v, ok, err := kv.Get("commitLabelsConfig")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"a":1}`, string(v))

	require.NoError(t, kv.Set("commitLabelsConfig", []byte(`{"a":2}`)))
	v, _, err = kv.Get("commitLabelsConfig")
	require.NoError(t, err)
	require.Equal(t, `{"a":2}`, string(v))
}

func TestMemory(t *testing.T) {
	exerciseKV(t, NewMemory())
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	buf := []byte("abc")
	require.NoError(t, m.Set("k", buf))
	buf[0] = 'x'

	v, _, _ := m.Get("k")
	require.Equal(t, "abc", string(v))
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "labels.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseKV(t, s)

	again, err := Open(path)
	require.NoError(t, err)
	require.Same(t, s, again)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", []byte("v")))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	v, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", string(v))
}
