package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndLookup(t *testing.T) {
	store := NewStore()

	token := store.Create(7)
	require.NotEmpty(t, token)

	userID, ok := store.Lookup(token)
	require.True(t, ok)
	assert.Equal(t, int64(7), userID)

	_, ok = store.Lookup("bogus")
	assert.False(t, ok)
}

func TestTokensAreUnique(t *testing.T) {
	store := NewStore()
	a := store.Create(1)
	b := store.Create(1)
	assert.NotEqual(t, a, b)

	// Both tokens resolve while live.
	_, ok := store.Lookup(a)
	assert.True(t, ok)
	_, ok = store.Lookup(b)
	assert.True(t, ok)
}

func TestRevokeInvalidatesAllUserTokens(t *testing.T) {
	store := NewStore()
	a := store.Create(1)
	b := store.Create(1)
	other := store.Create(2)

	store.Revoke(1)

	_, ok := store.Lookup(a)
	assert.False(t, ok)
	_, ok = store.Lookup(b)
	assert.False(t, ok)

	// Other users keep their sessions.
	userID, ok := store.Lookup(other)
	require.True(t, ok)
	assert.Equal(t, int64(2), userID)
}

func TestConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			token := store.Create(id)
			_, ok := store.Lookup(token)
			assert.True(t, ok)
			store.Revoke(id)
		}(int64(i))
	}
	wg.Wait()
}
