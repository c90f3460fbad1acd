package set_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evanwon/setops/set"
)

func TestOrdered_Add(t *testing.T) {
	t.Run("first insertion wins the position", func(t *testing.T) {
		s := set.NewOrdered[string]()
		assert.True(t, s.Add("foo"))
		assert.True(t, s.Add("bar"))
		assert.False(t, s.Add("foo"))

		assert.Equal(t, []string{"foo", "bar"}, s.Items())
		assert.Equal(t, 2, s.Len())
	})

	t.Run("add slice reports any modification", func(t *testing.T) {
		s := set.NewOrdered[int]()
		s.Add(3)

		assert.True(t, s.AddSlice([]int{3, 9}))
		assert.False(t, s.AddSlice([]int{3, 9}))
		assert.Equal(t, []int{3, 9}, s.Items())
	})
}

func TestOrdered_Delete(t *testing.T) {
	t.Run("delete existing item from the middle", func(t *testing.T) {
		s := set.NewOrdered[string]()
		s.AddSlice([]string{"foo", "bar", "baz", "123"})

		assert.True(t, s.Delete("bar"))

		assert.Equal(t, []string{"foo", "baz", "123"}, s.Items())
	})

	t.Run("delete existing item from the beginning", func(t *testing.T) {
		s := set.NewOrdered[string]()
		s.AddSlice([]string{"foo", "bar", "baz", "123"})

		assert.True(t, s.Delete("foo"))

		assert.Equal(t, []string{"bar", "baz", "123"}, s.Items())
		assert.False(t, s.Has("foo"))
		assert.True(t, s.Has("123"))
	})

	t.Run("delete existing item from the end", func(t *testing.T) {
		s := set.NewOrdered[string]()
		s.AddSlice([]string{"foo", "bar", "baz", "123"})

		assert.True(t, s.Delete("123"))

		assert.Equal(t, []string{"foo", "bar", "baz"}, s.Items())
		assert.False(t, s.Has("123"))
	})

	t.Run("delete missing item reports false", func(t *testing.T) {
		s := set.NewOrdered[string]()
		s.Add("foo")

		assert.False(t, s.Delete("bar"))
		assert.Equal(t, 1, s.Len())
	})
}

func TestOrdered_Each(t *testing.T) {
	t.Run("walks in insertion order", func(t *testing.T) {
		s := set.NewOrdered[string]()
		s.AddSlice([]string{"foo", "bar", "baz"})

		var items []string
		var orders []int
		s.Each(func(item string, order int) {
			items = append(items, item)
			orders = append(orders, order)
		})

		assert.Equal(t, []string{"foo", "bar", "baz"}, items)
		assert.Equal(t, []int{0, 1, 2}, orders)
	})
}

func TestOrdered_Clear(t *testing.T) {
	s := set.NewOrdered[int]()
	s.AddSlice([]int{1, 2, 3})

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(1))
	assert.True(t, s.Add(1))
}
