package todoswamp_test

import (
	"testing"

	"github.com/fwojciec/todoswamp"
	"github.com/stretchr/testify/assert"
)

func TestItem_Words(t *testing.T) {
	t.Parallel()

	t.Run("splits description on any whitespace", func(t *testing.T) {
		t.Parallel()

		item := &todoswamp.Item{Description: "  buy\tmilk \n and eggs "}

		assert.Equal(t, []string{"buy", "milk", "and", "eggs"}, item.Words())
	})

	t.Run("empty description has no words", func(t *testing.T) {
		t.Parallel()

		item := &todoswamp.Item{}

		assert.Empty(t, item.Words())
	})
}

func TestQuery_IsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, todoswamp.Query{}.IsEmpty())
	assert.False(t, todoswamp.Query{Words: []string{"a"}}.IsEmpty())
	assert.False(t, todoswamp.Query{Tags: []string{"a"}}.IsEmpty())
}
