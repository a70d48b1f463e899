package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/signrelay/signrelay/pkg/services"
)

func testSession(id string) SigningSession {
	return SigningSession{
		ID:                  id,
		ProviderRequestID:   "req_" + id,
		ProviderSignatureID: "sig_" + id,
		Status:              services.StatusPending,
		Signer:              services.SignerDetails{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-0100"},
		CreatedAt:           time.Now(),
	}
}

func TestStore_PutGet(t *testing.T) {
	t.Run("it returns a stored session", func(t *testing.T) {
		store := NewStore()
		store.Put(testSession("1"))

		found, ok := store.Get("1")
		assert.True(t, ok)
		assert.Equal(t, "req_1", found.ProviderRequestID)
		assert.Equal(t, services.StatusPending, found.Status)
	})

	t.Run("it does not find unknown sessions", func(t *testing.T) {
		store := NewStore()
		_, ok := store.Get("999999")
		assert.False(t, ok)
	})

	t.Run("it overwrites by id", func(t *testing.T) {
		store := NewStore()
		store.Put(testSession("1"))
		updated := testSession("1")
		updated.ProviderRequestID = "req_other"
		store.Put(updated)

		found, _ := store.Get("1")
		assert.Equal(t, "req_other", found.ProviderRequestID)
		assert.Equal(t, 1, store.Count())
	})
}

func TestStore_UpdateStatus(t *testing.T) {
	t.Run("it rewrites only the status field", func(t *testing.T) {
		store := NewStore()
		store.Put(testSession("1"))

		err := store.UpdateStatus("1", services.StatusSigned)
		assert.NoError(t, err)

		found, _ := store.Get("1")
		assert.Equal(t, services.StatusSigned, found.Status)
		assert.Equal(t, "req_1", found.ProviderRequestID)
		assert.Equal(t, "jane@example.com", found.Signer.Email)
	})

	t.Run("it returns ErrSessionNotFound for unknown ids", func(t *testing.T) {
		store := NewStore()
		err := store.UpdateStatus("999999", services.StatusSigned)
		assert.ErrorIs(t, err, services.ErrSessionNotFound)
	})

	t.Run("it is a value-wise no-op when the status is unchanged", func(t *testing.T) {
		store := NewStore()
		store.Put(testSession("1"))

		assert.NoError(t, store.UpdateStatus("1", services.StatusPending))
		found, _ := store.Get("1")
		assert.Equal(t, services.StatusPending, found.Status)
	})
}

func TestStore_List(t *testing.T) {
	t.Run("it returns a snapshot", func(t *testing.T) {
		store := NewStore()
		store.Put(testSession("1"))

		snapshot := store.List()
		store.Put(testSession("2"))

		assert.Len(t, snapshot, 1)
		assert.Equal(t, 2, store.Count())
	})

	t.Run("a stored copy is not aliased by the caller", func(t *testing.T) {
		store := NewStore()
		store.Put(testSession("1"))

		found, _ := store.Get("1")
		found.Status = services.StatusSigned

		again, _ := store.Get("1")
		assert.Equal(t, services.StatusPending, again.Status)
	})
}

func TestStore_ConcurrentCreates(t *testing.T) {
	store := NewStore()
	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Put(testSession(fmt.Sprintf("%d", i)))
		}(i)
	}
	wg.Wait()

	sessions := store.List()
	assert.Len(t, sessions, n)

	seen := map[string]bool{}
	for _, s := range sessions {
		assert.False(t, seen[s.ID], "duplicate session id %s", s.ID)
		seen[s.ID] = true
		assert.Equal(t, "Jane Doe", s.Signer.Name)
	}
}

func TestStore_ConcurrentStatusUpdates(t *testing.T) {
	store := NewStore()
	store.Put(testSession("1"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.UpdateStatus("1", services.StatusSigned))
			store.List()
		}()
	}
	wg.Wait()

	found, _ := store.Get("1")
	assert.Equal(t, services.StatusSigned, found.Status)
}
