package services

import (
	"testing"

	"github.com/alessander-dutra/DigitalMenuPro/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewService(t *testing.T) (*ReviewService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewReviewService(repository.NewReviewRepository(db), repository.NewMenuItemRepository(db)), db
}

func addReview(t *testing.T, svc *ReviewService, menuItemID uint, rating int) {
	t.Helper()
	_, err := svc.Create(&ReviewIn{
		MenuItemID:    menuItemID,
		CustomerName:  "João",
		CustomerEmail: "joao@example.com",
		Rating:        rating,
	})
	require.NoError(t, err)
}

func TestTopRatedMeanAndCount(t *testing.T) {
	svc, db := newReviewService(t)
	item := seedTestItem(t, db, "Salmão", "45.90", "principais")

	addReview(t, svc, item.ID, 5)
	addReview(t, svc, item.ID, 3)

	out, err := svc.TopRated()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, item.ID, out[0].ID)
	assert.Equal(t, 4.0, out[0].AverageRating)
	assert.Equal(t, int64(2), out[0].ReviewCount)
}

func TestTopRatedExcludesUnreviewedItems(t *testing.T) {
	svc, db := newReviewService(t)
	reviewed := seedTestItem(t, db, "Tiramisu", "14.90", "sobremesas")
	seedTestItem(t, db, "Suco de Laranja", "8.90", "bebidas")

	addReview(t, svc, reviewed.ID, 4)

	out, err := svc.TopRated()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, reviewed.ID, out[0].ID)
}

func TestTopRatedSortedByMeanDescending(t *testing.T) {
	svc, db := newReviewService(t)
	low := seedTestItem(t, db, "Caesar", "24.90", "entradas")
	high := seedTestItem(t, db, "Bife Ancho", "52.90", "principais")
	mid := seedTestItem(t, db, "Alfredo", "32.90", "massas")

	addReview(t, svc, low.ID, 2)
	addReview(t, svc, high.ID, 5)
	addReview(t, svc, mid.ID, 4)
	addReview(t, svc, mid.ID, 3)

	out, err := svc.TopRated()
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].AverageRating, out[i].AverageRating)
	}
	assert.Equal(t, high.ID, out[0].ID)
	assert.Equal(t, low.ID, out[2].ID)
}

func TestListByMenuItemFilters(t *testing.T) {
	svc, db := newReviewService(t)
	a := seedTestItem(t, db, "Antepastos", "32.90", "entradas")
	b := seedTestItem(t, db, "Vinho", "45.00", "bebidas")

	addReview(t, svc, a.ID, 5)
	addReview(t, svc, b.ID, 1)

	reviews, err := svc.ListByMenuItem(a.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, a.ID, reviews[0].MenuItemID)
	assert.Equal(t, 5, reviews[0].Rating)
}
