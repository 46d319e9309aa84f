package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoes-archive/feria-api/internal/domain"
)

func newStoredFair(id, title string) domain.Fair {
	return domain.NewFair(id, title, "Gracias", "Honduras", time.Now().Add(72*time.Hour),
		[]string{"Check infrastructure"}, []string{"Flyers"})
}

func TestFairStore_AppendAndList_PreservesOrder(t *testing.T) {
	store := NewFairStore()

	store.Append(newStoredFair("f1", "First"))
	store.Append(newStoredFair("f2", "Second"))
	store.Append(newStoredFair("f3", "Third"))

	fairs := store.List()

	require.Len(t, fairs, 3)
	assert.Equal(t, "f1", fairs[0].ID)
	assert.Equal(t, "f2", fairs[1].ID)
	assert.Equal(t, "f3", fairs[2].ID)
}

func TestFairStore_GetByID(t *testing.T) {
	store := NewFairStore()
	store.Append(newStoredFair("f1", "Feria"))

	fair, err := store.GetByID("f1")

	require.NoError(t, err)
	assert.Equal(t, "Feria", fair.Title)
}

func TestFairStore_GetByID_NotFound(t *testing.T) {
	store := NewFairStore()

	_, err := store.GetByID("missing")

	assert.ErrorIs(t, err, ErrFairNotFound)
}

func TestFairStore_Update_ReplacesWholesale(t *testing.T) {
	store := NewFairStore()
	store.Append(newStoredFair("f1", "Before"))

	fair, err := store.GetByID("f1")
	require.NoError(t, err)

	fair.Title = "After"
	fair = fair.WithContact(domain.Contact{ID: "c1", Name: "Ana"})
	store.Update(fair)

	got, err := store.GetByID("f1")
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
	require.Len(t, got.Contacts, 1)
}

func TestFairStore_Update_UnknownIDIsNoOp(t *testing.T) {
	store := NewFairStore()
	store.Append(newStoredFair("f1", "Kept"))

	store.Update(newStoredFair("ghost", "Never stored"))

	fairs := store.List()
	require.Len(t, fairs, 1)
	assert.Equal(t, "f1", fairs[0].ID)
	assert.Equal(t, "Kept", fairs[0].Title)
}

func TestFairStore_Update_Idempotent(t *testing.T) {
	store := NewFairStore()
	store.Append(newStoredFair("f1", "Feria"))

	fair, err := store.GetByID("f1")
	require.NoError(t, err)
	fair.Title = "Renamed"

	store.Update(fair)
	store.Update(fair)

	fairs := store.List()
	require.Len(t, fairs, 1)
	assert.Equal(t, "Renamed", fairs[0].Title)
}

func TestFairStore_ListAndGet_ReturnIsolatedCopies(t *testing.T) {
	store := NewFairStore()
	store.Append(newStoredFair("f1", "Feria"))

	fair, err := store.GetByID("f1")
	require.NoError(t, err)
	fair.FeasibilitySteps[0].Completed = true
	fair.Title = "local change"

	got, err := store.GetByID("f1")
	require.NoError(t, err)
	assert.False(t, got.FeasibilitySteps[0].Completed)
	assert.Equal(t, "Feria", got.Title)
}

func TestFairStore_Select_KnownID(t *testing.T) {
	store := NewFairStore()
	store.Append(newStoredFair("f1", "Feria"))

	store.Select("f1")

	selected, ok := store.Selected()
	require.True(t, ok)
	assert.Equal(t, "f1", selected.ID)
}

func TestFairStore_Select_EmptyClearsSelection(t *testing.T) {
	store := NewFairStore()
	store.Append(newStoredFair("f1", "Feria"))
	store.Select("f1")

	store.Select("")

	_, ok := store.Selected()
	assert.False(t, ok)
}

func TestFairStore_Select_UnknownIDClearsSelection(t *testing.T) {
	store := NewFairStore()
	store.Append(newStoredFair("f1", "Feria"))
	store.Select("f1")

	store.Select("ghost")

	_, ok := store.Selected()
	assert.False(t, ok)
}

func TestFairStore_Selected_EmptyStore(t *testing.T) {
	store := NewFairStore()

	_, ok := store.Selected()

	assert.False(t, ok)
}

func TestFairStore_Locale_DefaultsToSpanish(t *testing.T) {
	store := NewFairStore()

	assert.Equal(t, "es", store.Locale())
}

func TestFairStore_SetLocale(t *testing.T) {
	store := NewFairStore()

	require.NoError(t, store.SetLocale("en"))
	assert.Equal(t, "en", store.Locale())
}

func TestFairStore_SetLocale_Unsupported(t *testing.T) {
	store := NewFairStore()

	err := store.SetLocale("fr")

	assert.ErrorIs(t, err, ErrBadLocale)
	assert.Equal(t, "es", store.Locale())
}
