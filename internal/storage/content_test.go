package storage

import (
	"testing"

	"studio-backoffice/internal/models"

	"github.com/stretchr/testify/require"
)

func seedPortfolio(t *testing.T, s *Store, n int) []models.PortfolioItem {
	t.Helper()

	for i := 0; i < n; i++ {
		item := &models.PortfolioItem{
			Title: "Case study",
			Slug:  "case-" + string(rune('a'+i)),
		}
		require.NoError(t, s.CreatePortfolioItem(item))
	}
	items, err := s.ListPortfolio(false)
	require.NoError(t, err)
	require.Len(t, items, n)
	return items
}

func assertContiguousPositions(t *testing.T, items []models.PortfolioItem) {
	t.Helper()

	seen := map[int]bool{}
	for _, it := range items {
		require.False(t, seen[it.Position], "duplicate position %d", it.Position)
		require.GreaterOrEqual(t, it.Position, 0)
		require.Less(t, it.Position, len(items))
		seen[it.Position] = true
	}
}

func TestCreateAppendsAtEnd(t *testing.T) {
	s := openTestStore(t)
	items := seedPortfolio(t, s, 3)

	assertContiguousPositions(t, items)
	require.Equal(t, 0, items[0].Position)
	require.Equal(t, 2, items[2].Position)
}

func TestReorderRewritesPositions(t *testing.T) {
	s := openTestStore(t)
	items := seedPortfolio(t, s, 3)

	reversed := []uint{items[2].ID, items[1].ID, items[0].ID}
	require.NoError(t, s.ReorderPortfolio(reversed))

	got, err := s.ListPortfolio(false)
	require.NoError(t, err)
	assertContiguousPositions(t, got)
	require.Equal(t, items[2].ID, got[0].ID)
	require.Equal(t, items[0].ID, got[2].ID)
}

// A retried reorder with the same list must land on the same state.
func TestReorderIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	items := seedPortfolio(t, s, 4)

	order := []uint{items[1].ID, items[3].ID, items[0].ID, items[2].ID}
	require.NoError(t, s.ReorderPortfolio(order))
	require.NoError(t, s.ReorderPortfolio(order))

	got, err := s.ListPortfolio(false)
	require.NoError(t, err)
	assertContiguousPositions(t, got)
	require.Equal(t, items[1].ID, got[0].ID)
}

func TestReorderRejectsDuplicateIDs(t *testing.T) {
	s := openTestStore(t)
	items := seedPortfolio(t, s, 2)

	err := s.ReorderPortfolio([]uint{items[0].ID, items[0].ID})
	require.ErrorIs(t, err, ErrConflict)
}

func TestReorderRejectsIncompleteSet(t *testing.T) {
	s := openTestStore(t)
	items := seedPortfolio(t, s, 3)

	err := s.ReorderPortfolio([]uint{items[0].ID, items[1].ID})
	require.ErrorIs(t, err, ErrConflict)

	err = s.ReorderPortfolio([]uint{items[0].ID, items[1].ID, 9999})
	require.ErrorIs(t, err, ErrConflict)

	// nothing half-applied
	got, err := s.ListPortfolio(false)
	require.NoError(t, err)
	assertContiguousPositions(t, got)
}

// Deleting a middle item must not leave a position hole that a later
// create collides with.
func TestDeleteThenCreateKeepsPositionsUnique(t *testing.T) {
	s := openTestStore(t)
	items := seedPortfolio(t, s, 3)

	require.NoError(t, s.DeletePortfolioItem(items[1].ID))

	got, err := s.ListPortfolio(false)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assertContiguousPositions(t, got)

	fresh := &models.PortfolioItem{Title: "Case study", Slug: "case-fresh"}
	require.NoError(t, s.CreatePortfolioItem(fresh))

	got, err = s.ListPortfolio(false)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assertContiguousPositions(t, got)
	require.Equal(t, fresh.ID, got[2].ID)
}

func TestDeleteMissingPortfolioItem(t *testing.T) {
	s := openTestStore(t)
	require.ErrorIs(t, s.DeletePortfolioItem(9999), ErrNotFound)
}

func TestDuplicateSlugIsConflict(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.CreatePortfolioItem(&models.PortfolioItem{Title: "A", Slug: "same"}))
	err := s.CreatePortfolioItem(&models.PortfolioItem{Title: "B", Slug: "same"})
	require.ErrorIs(t, err, ErrConflict)

	require.NoError(t, s.CreateBlogPost(&models.BlogPost{Title: "A", Slug: "same-post"}))
	err = s.CreateBlogPost(&models.BlogPost{Title: "B", Slug: "same-post"})
	require.ErrorIs(t, err, ErrConflict)

	// renaming onto a taken slug conflicts the same way
	other := &models.PortfolioItem{Title: "C", Slug: "other"}
	require.NoError(t, s.CreatePortfolioItem(other))
	_, err = s.UpdatePortfolioItem(other.ID, func(i *models.PortfolioItem) { i.Slug = "same" })
	require.ErrorIs(t, err, ErrConflict)
}

func TestBlogSlugLookup(t *testing.T) {
	s := openTestStore(t)

	post := &models.BlogPost{Title: "Why redesigns fail", Slug: "why-redesigns-fail", Published: true}
	require.NoError(t, s.CreateBlogPost(post))

	got, err := s.GetBlogPostBySlug("why-redesigns-fail")
	require.NoError(t, err)
	require.Equal(t, post.ID, got.ID)

	_, err = s.GetBlogPostBySlug("nope")
	require.ErrorIs(t, err, ErrNotFound)
}
