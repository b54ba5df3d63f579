package state_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplusmed/marketplace-api/internal/infrastructure/state"
)

type record struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

func newStore(t *testing.T) (*state.FileStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	st, err := state.NewFileStore(fs, "state")
	require.NoError(t, err)
	return st, fs
}

func TestSaveAndLoad_Roundtrip(t *testing.T) {
	st, _ := newStore(t)

	require.NoError(t, st.Save("auth-storage", record{Token: "abc", Count: 3}))

	var got record
	found, err := st.Load("auth-storage", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, record{Token: "abc", Count: 3}, got)
}

func TestSave_OverwritesThePreviousRecord(t *testing.T) {
	st, _ := newStore(t)

	require.NoError(t, st.Save("ns", record{Count: 1}))
	require.NoError(t, st.Save("ns", record{Count: 2}))

	var got record
	found, err := st.Load("ns", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, got.Count)
}

func TestLoad_MissingNamespaceIsAbsence(t *testing.T) {
	st, _ := newStore(t)

	var got record
	found, err := st.Load("never-written", &got)
	require.NoError(t, err, "a missing record must not be an error")
	assert.False(t, found)
}

func TestLoad_MalformedContentIsAbsence(t *testing.T) {
	st, fs := newStore(t)
	require.NoError(t, afero.WriteFile(fs, "state/ns.json", []byte("{broken"), 0o644))

	var got record
	found, err := st.Load("ns", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	st, _ := newStore(t)
	require.NoError(t, st.Save("ns", record{Count: 1}))

	require.NoError(t, st.Delete("ns"))
	var got record
	found, err := st.Load("ns", &got)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent namespace is fine.
	assert.NoError(t, st.Delete("ns"))
}

func TestNamespacesAreIndependent(t *testing.T) {
	st, _ := newStore(t)
	require.NoError(t, st.Save("auth-storage", record{Token: "a"}))
	require.NoError(t, st.Save("cart-storage", record{Token: "b"}))

	require.NoError(t, st.Delete("auth-storage"))

	var got record
	found, err := st.Load("cart-storage", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "b", got.Token)
}
