package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/todoswamp"
	"github.com/fwojciec/todoswamp/fuzzy"
	"github.com/fwojciec/todoswamp/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkCreateItem compares insert cost across index strategies. Most
// of the subsequence cost is enumerating subsequences of each word.
func BenchmarkCreateItem(b *testing.B) {
	b.Run("scan", func(b *testing.B) {
		benchmarkItemInserts(b, func() todoswamp.Index { return fuzzy.NewScanIndex() })
	})

	b.Run("subsequence", func(b *testing.B) {
		benchmarkItemInserts(b, func() todoswamp.Index {
			return fuzzy.NewSubsequenceIndex(fuzzy.DefaultMaxTokenLength)
		})
	})
}

func benchmarkItemInserts(b *testing.B, newIndex func() todoswamp.Index) {
	b.Helper()

	db := sqlite.NewDB(sqlite.MemoryPath)
	require.NoError(b, db.Open())
	defer db.Close()

	ctx := context.Background()
	svc := sqlite.NewItemService(db, newIndex(), newIndex())

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		item := &todoswamp.Item{
			Description: fmt.Sprintf("water the plants in room %d before leaving", i),
			Tags:        []string{"home", fmt.Sprintf("room%d", i%16)},
		}
		if err := svc.CreateItem(ctx, item); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMarkItemDone measures the done transition on a populated store.
func BenchmarkMarkItemDone(b *testing.B) {
	db := sqlite.NewDB(sqlite.MemoryPath)
	require.NoError(b, db.Open())
	defer db.Close()

	ctx := context.Background()
	svc := sqlite.NewItemService(db, fuzzy.NewScanIndex(), fuzzy.NewScanIndex())

	const n = 1000
	for i := range n {
		require.NoError(b, svc.CreateItem(ctx, &todoswamp.Item{Description: fmt.Sprintf("item %d", i)}))
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := svc.MarkItemDone(ctx, todoswamp.ID(i%n)); err != nil {
			b.Fatal(err)
		}
	}
}
