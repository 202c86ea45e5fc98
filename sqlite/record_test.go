package sqlite_test

import (
	"context"
	"testing"

	"github.com/stefw/cardex"
	"github.com/stefw/cardex/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func testProduct(identity, title string) *cardex.Product {
	return &cardex.Product{
		Identity:   identity,
		Title:      title,
		Brand:      cardex.Unknown,
		Price:      "$9.99",
		Rating:     "4.5/5",
		Inventory:  cardex.Unknown,
		Seller:     cardex.Unknown,
		ExternalID: cardex.Unknown,
	}
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)

		var count int
		err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM products").Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		require.Error(t, db.Open())
	})
}

func TestRecordService(t *testing.T) {
	t.Parallel()

	t.Run("append then read identities and count", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(mustOpenDB(t))
		ctx := context.Background()

		err := svc.AppendRecords(ctx, []*cardex.Product{
			testProduct("https://example.com/p/a/-/A-1", "A"),
			testProduct("https://example.com/p/b/-/A-2", "B"),
		})
		require.NoError(t, err)

		identities, err := svc.Identities(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"https://example.com/p/a/-/A-1",
			"https://example.com/p/b/-/A-2",
		}, identities)

		count, err := svc.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("identity uniqueness is enforced", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, svc.AppendRecords(ctx, []*cardex.Product{
			testProduct("https://example.com/p/a/-/A-1", "A"),
		}))
		err := svc.AppendRecords(ctx, []*cardex.Product{
			testProduct("https://example.com/p/a/-/A-1", "A again"),
		})
		require.Error(t, err)
	})

	t.Run("rejects invalid records", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(mustOpenDB(t))
		err := svc.AppendRecords(context.Background(), []*cardex.Product{
			{Identity: "https://example.com/p/a", Price: "$1.00"}, // no title
		})

		require.Error(t, err)
		assert.Equal(t, cardex.EINVALID, cardex.ErrorCode(err))
	})

	t.Run("empty store has no identities", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(mustOpenDB(t))

		identities, err := svc.Identities(context.Background())
		require.NoError(t, err)
		assert.Empty(t, identities)
	})
}
