package secure_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/lastword/internal/secure"
)

func TestNewBuffer(t *testing.T) {
	t.Parallel()
	b := secure.NewBuffer(32)
	defer b.Destroy()

	require.Len(t, b.Bytes(), 32)
	assert.Equal(t, 32, b.Len())
	assert.Equal(t, make([]byte, 32), b.Bytes())
}

func TestTake_ZeroesSource(t *testing.T) {
	t.Parallel()
	src := []byte("abandon about")
	b := secure.Take(src)
	defer b.Destroy()

	assert.Equal(t, "abandon about", string(b.Bytes()))
	assert.Equal(t, make([]byte, len(src)), src)
}

func TestDestroy_ZeroesAndReleases(t *testing.T) {
	t.Parallel()
	b := secure.Take([]byte("zoo zoo"))
	backing := b.Bytes()

	b.Destroy()
	assert.Nil(t, b.Bytes())
	assert.Zero(t, b.Len())
	assert.False(t, b.IsLocked())
	assert.Equal(t, make([]byte, 7), backing)

	b.Destroy()
}

func TestFields(t *testing.T) {
	t.Parallel()
	b := secure.Take([]byte("  wrap\tjar\nphys  "))
	fields := b.Fields()
	b.Destroy()

	assert.Equal(t, []string{"wrap", "jar", "phys"}, fields)
	assert.Empty(t, secure.NewBuffer(0).Fields())
}

func TestBuffer_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	b := secure.Take([]byte("legal winner thank"))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = b.Fields()
			_ = b.Len()
			_ = b.IsLocked()
		}()
	}
	wg.Wait()
	b.Destroy()
}
