package fuzzy_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/todoswamp"
	"github.com/fwojciec/todoswamp/fuzzy"
)

func BenchmarkLookup(b *testing.B) {
	indexes := map[string]func() todoswamp.Index{
		"scan":        func() todoswamp.Index { return fuzzy.NewScanIndex() },
		"subsequence": func() todoswamp.Index { return fuzzy.NewSubsequenceIndex(fuzzy.DefaultMaxTokenLength) },
	}

	for name, newIndex := range indexes {
		b.Run(name, func(b *testing.B) {
			x := newIndex()
			for i := range 5000 {
				x.Insert(todoswamp.ID(i), fmt.Sprintf("token%dword", i))
			}

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = x.Lookup("t4w")
			}
		})
	}
}
