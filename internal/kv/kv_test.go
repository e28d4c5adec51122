package kv

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T, quota int) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "local.json"), quota)
}

func TestSetGetRoundTrip(t *testing.T) {
	s := tempStore(t, 0)

	_, ok, err := s.Get("motoparts_products")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("motoparts_products", json.RawMessage(`[{"id":1}]`)))

	v, ok, err := s.Get("motoparts_products")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1}]`, string(v))
}

func TestSetQuotaExceededWritesNothing(t *testing.T) {
	s := tempStore(t, 64)
	require.NoError(t, s.Set("small", json.RawMessage(`1`)))

	big := make([]byte, 256)
	for i := range big {
		big[i] = 'a'
	}
	err := s.Set("big", json.RawMessage(`"`+string(big)+`"`))
	require.ErrorIs(t, err, ErrQuotaExceeded)

	// prior contents intact
	v, ok, err := s.Get("small")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1", string(v))
	_, ok, err = s.Get("big")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCorruptFileReportedNotRepaired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s := Open(path, 0)

	_, _, err := s.Get("anything")
	require.ErrorIs(t, err, ErrCorrupt)

	// a failed read must not clobber the file
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(b))

	// and neither may a write against a corrupt store
	require.ErrorIs(t, s.Set("k", json.RawMessage(`1`)), ErrCorrupt)
}

func TestDeleteMissingKeyIsNoop(t *testing.T) {
	s := tempStore(t, 0)
	require.NoError(t, s.Delete("absent"))
	require.NoError(t, s.Set("k", json.RawMessage(`true`)))
	require.NoError(t, s.Delete("k"))
	_, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}
