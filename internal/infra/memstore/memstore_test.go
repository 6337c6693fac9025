//go:build unit

package memstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"library-service/internal/domain/checkable"
	"library-service/internal/domain/library"
	"library-service/internal/domain/staff"
	"library-service/internal/infra"
	"library-service/internal/infra/memstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMedia(t *testing.T, isbn string) checkable.Checkable {
	t.Helper()
	c, err := checkable.NewMedia(isbn, "Title "+isbn, "Author", checkable.MediaTypeBook)
	require.NoError(t, err)
	return c
}

func TestCheckableStore(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewCheckableStore()

	kit, err := checkable.NewScienceKit("2-0", "Kit")
	require.NoError(t, err)
	kit2, err := checkable.NewScienceKit("2-1", "Kit 2")
	require.NoError(t, err)

	for _, c := range []checkable.Checkable{mustMedia(t, "1-0"), kit, kit2} {
		require.NoError(t, store.Save(ctx, c))
	}

	t.Run("keeps insertion order", func(t *testing.T) {
		all, err := store.FindAll(ctx)
		require.NoError(t, err)

		got := make([]string, 0, len(all))
		for _, c := range all {
			got = append(got, c.ISBN())
		}
		assert.Equal(t, []string{"1-0", "2-0", "2-1"}, got)
	})

	t.Run("find by kind returns the first match", func(t *testing.T) {
		got, err := store.FindByKind(ctx, checkable.KindScienceKit)
		require.NoError(t, err)
		assert.Equal(t, "2-0", got.ISBN())

		_, err = store.FindByKind(ctx, checkable.KindTicket)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("rejects duplicate isbn", func(t *testing.T) {
		err := store.Save(ctx, mustMedia(t, "1-0"))
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("missing isbn", func(t *testing.T) {
		_, err := store.FindByISBN(ctx, "9-9")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCheckableStore_ConcurrentSaveOfSameISBN(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewCheckableStore()
	c := mustMedia(t, "1-0")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.Save(ctx, c) == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	all, _ := store.FindAll(ctx)
	assert.Len(t, all, 1)
}

func TestLibraryStore(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewLibraryStore()

	lib, err := library.NewLibrary("Central")
	require.NoError(t, err)
	amount, err := library.NewCheckableAmount(mustMedia(t, "1-0"), 3)
	require.NoError(t, err)
	require.NoError(t, lib.AddCheckable(amount))

	patron, err := library.NewPatron(uuid.New(), "Ada", "ada@example.com")
	require.NoError(t, err)
	co, err := library.NewCheckout(uuid.New(), mustMedia(t, "1-0"), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	card, err := library.NewLibraryCard(uuid.New(), patron, co)
	require.NoError(t, err)
	require.NoError(t, lib.AddCard(card))

	require.NoError(t, store.Save(ctx, lib))

	t.Run("round trips the aggregate", func(t *testing.T) {
		got, err := store.FindByName(ctx, "Central")
		require.NoError(t, err)
		if diff := cmp.Diff(lib, got); diff != "" {
			t.Errorf("library mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("mutating a returned library does not touch the store", func(t *testing.T) {
		got, err := store.FindByName(ctx, "Central")
		require.NoError(t, err)

		extra, err := library.NewCheckableAmount(mustMedia(t, "1-1"), 1)
		require.NoError(t, err)
		require.NoError(t, got.AddCheckable(extra))

		again, err := store.FindByName(ctx, "Central")
		require.NoError(t, err)
		assert.Len(t, again.Checkables(), 1)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		dup, err := library.NewLibrary("Central")
		require.NoError(t, err)
		assert.True(t, infra.IsKind(store.Save(ctx, dup), infra.KindDuplicateKey))
	})

	t.Run("lists in insertion order", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			l, err := library.NewLibrary(fmt.Sprintf("Branch %d", i))
			require.NoError(t, err)
			require.NoError(t, store.Save(ctx, l))
		}

		all, err := store.FindAll(ctx)
		require.NoError(t, err)
		names := make([]string, 0, len(all))
		for _, l := range all {
			names = append(names, l.Name())
		}
		assert.Equal(t, []string{"Central", "Branch 0", "Branch 1", "Branch 2"}, names)
	})
}

func TestLibraryStore_SharedPatrons(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewLibraryStore()
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	libraryWith := func(name string, patron library.Patron, cardID, checkoutID uuid.UUID) *library.Library {
		lib, err := library.NewLibrary(name)
		require.NoError(t, err)
		co, err := library.NewCheckout(checkoutID, mustMedia(t, "1-0"), due)
		require.NoError(t, err)
		card, err := library.NewLibraryCard(cardID, patron, co)
		require.NoError(t, err)
		require.NoError(t, lib.AddCard(card))
		return lib
	}

	ada, err := library.NewPatron(uuid.New(), "Ada", "")
	require.NoError(t, err)
	eastCard := uuid.New()
	eastCheckout := uuid.New()
	require.NoError(t, store.Save(ctx, libraryWith("Eastside", ada, eastCard, eastCheckout)))

	t.Run("latest patron details are visible from every library", func(t *testing.T) {
		renamed, err := library.NewPatron(ada.ID(), "Ada Lovelace", "ada@example.com")
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, libraryWith("Westside", renamed, uuid.New(), uuid.New())))

		east, err := store.FindByName(ctx, "Eastside")
		require.NoError(t, err)
		assert.Equal(t, renamed, east.Cards()[0].Patron())
	})

	t.Run("card id owned by another library", func(t *testing.T) {
		err := store.Save(ctx, libraryWith("Northside", ada, eastCard, uuid.New()))
		assert.True(t, infra.IsKind(err, infra.KindIDInUse))
	})

	t.Run("checkout id owned by another library", func(t *testing.T) {
		err := store.Save(ctx, libraryWith("Northside", ada, uuid.New(), eastCheckout))
		assert.True(t, infra.IsKind(err, infra.KindIDInUse))
	})

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStaffStore(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStaffStore()

	member, err := staff.NewStaff(uuid.Nil, "librarian1", "hash", staff.RoleLibrarian)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, member))

	got, err := store.FindByUsername(ctx, "librarian1")
	require.NoError(t, err)
	assert.Equal(t, member.ID(), got.ID())

	assert.True(t, infra.IsKind(store.Save(ctx, member), infra.KindDuplicateKey))

	_, err = store.FindByUsername(ctx, "nobody")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
