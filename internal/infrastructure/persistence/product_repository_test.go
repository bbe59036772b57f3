package persistence

import (
	"context"
	"testing"

	"github.com/shopeasy/backend/internal/domain/catalog"
	"github.com/shopeasy/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRepo(t *testing.T) *FileProductRepository {
	t.Helper()
	repo, err := NewFileProductRepository(t.TempDir())
	require.NoError(t, err)
	return repo
}

func sampleProduct(name string) *catalog.Product {
	return &catalog.Product{
		Name:     name,
		Price:    decimal.NewFromFloat(99.99),
		Quantity: 50,
		Category: "Electronics",
		Image:    catalog.DefaultImage,
	}
}

func TestProductRepositorySaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newProductRepo(t)

	p := sampleProduct("Wireless Headphones")
	require.NoError(t, repo.Save(ctx, p))
	assert.Equal(t, int64(1), p.ID)

	q := sampleProduct("Smart Watch")
	require.NoError(t, repo.Save(ctx, q))
	assert.Equal(t, int64(2), q.ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Wireless Headphones", all[0].Name)

	found, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Smart Watch", found.Name)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newProductRepo(t)

	p := sampleProduct("Wireless Headphones")
	require.NoError(t, repo.Save(ctx, p))

	p.Name = "Wireless Headphones v2"
	p.Price = decimal.NewFromFloat(89.99)
	require.NoError(t, repo.Update(ctx, p))

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones v2", found.Name)
	assert.True(t, found.Price.Equal(decimal.NewFromFloat(89.99)))

	ghost := sampleProduct("Ghost")
	ghost.ID = 42
	err = repo.Update(ctx, ghost)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := newProductRepo(t)

	p := sampleProduct("Wireless Headphones")
	require.NoError(t, repo.Save(ctx, p))

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err := repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// Deleting a non-existent id is a no-op
	before, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, 999))
	after, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestProductRepositoryIDsSurviveDeletion(t *testing.T) {
	ctx := context.Background()
	repo := newProductRepo(t)

	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Save(ctx, sampleProduct(name)))
	}
	require.NoError(t, repo.Delete(ctx, 2))

	d := sampleProduct("D")
	require.NoError(t, repo.Save(ctx, d))
	assert.Equal(t, int64(4), d.ID, "ids are monotonic, never derived from collection length")
}

func TestProductRepositorySeedsSequenceFromExistingFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := NewFileProductRepository(dir)
	require.NoError(t, err)
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Save(ctx, sampleProduct(name)))
	}

	// Reopen over the same directory
	reopened, err := NewFileProductRepository(dir)
	require.NoError(t, err)

	d := sampleProduct("D")
	require.NoError(t, reopened.Save(ctx, d))
	assert.Equal(t, int64(4), d.ID)
}

func TestProductRepositoryResetNumbersFromOne(t *testing.T) {
	ctx := context.Background()
	repo := newProductRepo(t)

	// Consume ids on the live sequence first
	for _, name := range []string{"Old A", "Old B"} {
		require.NoError(t, repo.Save(ctx, sampleProduct(name)))
	}

	samples := []catalog.Product{
		*sampleProduct("Wireless Headphones"),
		*sampleProduct("Smart Watch"),
		*sampleProduct("Python Programming Book"),
	}
	require.NoError(t, repo.Reset(ctx, samples))

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	for i, p := range products {
		assert.Equal(t, int64(i+1), p.ID)
	}

	first, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones", first.Name)

	// The next save continues from the reseeded catalog
	d := sampleProduct("D")
	require.NoError(t, repo.Save(ctx, d))
	assert.Equal(t, int64(4), d.ID)
}
