package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/observer"
)

func counter(s *Store) *int {
	n := 0
	s.AddObserver(observer.Func(func() error { n++; return nil }))
	return &n
}

func TestAddDuplicateKeepsOneItem(t *testing.T) {
	s := New()
	calls := counter(s)

	require.NoError(t, s.Add(model.NewItem("buy milk")))
	require.NoError(t, s.Add(model.NewItem("buy milk")))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, *calls, "duplicate add must not notify")
}

func TestAddBlankIsNoop(t *testing.T) {
	s := New()
	calls := counter(s)

	require.NoError(t, s.Add(model.Item{}))
	require.NoError(t, s.Add(model.Item{Text: ""}))

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, *calls)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := New()
	for _, text := range []string{"c", "a", "b"} {
		require.NoError(t, s.Add(model.NewItem(text)))
	}
	assert.Equal(t, []string{"c", "a", "b"}, s.Items().Texts())
}

func TestDeleteMissingIsNoop(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(model.NewItem("a")))
	calls := counter(s)
	before := s.Items()

	require.NoError(t, s.Delete(model.NewItem("nope")))

	assert.Equal(t, 0, *calls)
	assert.True(t, before.Equal(s.Items()))
	assert.Equal(t, 1, s.Len())
}

func TestDeleteRemovesAndNotifies(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(model.NewItem("a")))
	require.NoError(t, s.Add(model.NewItem("b")))
	calls := counter(s)

	require.NoError(t, s.Delete(model.NewItem("a")))

	assert.Equal(t, 1, *calls)
	assert.Equal(t, []string{"b"}, s.Items().Texts())
}

func TestFindOnEmptyStore(t *testing.T) {
	s := New()
	calls := counter(s)

	_, ok := s.Find(model.NewItem("anything"))

	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, *calls)
}

func TestFindReturnsStoredItem(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(model.NewItem("eggs")))

	got, ok := s.Find(model.Item{Text: "eggs"})
	require.True(t, ok)
	assert.Equal(t, "eggs", got.Text)
}

func TestReplaceListNotifiesAndDedupes(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(model.NewItem("old")))
	calls := counter(s)

	snap := model.NewSnapshot([]model.Item{{Text: "x"}, {Text: "y"}, {Text: "x"}})
	require.NoError(t, s.ReplaceList(snap))

	assert.Equal(t, 1, *calls)
	assert.Equal(t, []string{"x", "y"}, s.Items().Texts())
}

func TestItemsIsDetachedFromStore(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(model.NewItem("a")))
	snap := s.Items()
	require.NoError(t, s.Add(model.NewItem("b")))

	assert.Equal(t, []string{"a"}, snap.Texts())
}

func TestObserverErrorPropagatesAndStopsChain(t *testing.T) {
	s := New()
	boom := errors.New("disk full")
	rendered := 0
	s.AddObserver(observer.Func(func() error { return boom }))
	s.AddObserver(observer.Func(func() error { rendered++; return nil }))

	err := s.Add(model.NewItem("a"))

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, rendered)
	assert.Equal(t, 1, s.Len(), "mutation itself is kept")
}

type callback func() error

func (c callback) Notify() error { return c() }

func TestFuncTypedObservers(t *testing.T) {
	s := New()
	a, b := 0, 0
	require.NotPanics(t, func() {
		s.AddObserver(callback(func() error { a++; return nil }))
		s.AddObserver(callback(func() error { b++; return nil }))
	})

	require.NoError(t, s.Add(model.NewItem("x")))

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestRemoveObserver(t *testing.T) {
	s := New()
	n := 0
	o := observer.Func(func() error { n++; return nil })
	s.AddObserver(o)
	require.NoError(t, s.Add(model.NewItem("a")))
	s.RemoveObserver(o)
	s.RemoveObserver(o)
	require.NoError(t, s.Add(model.NewItem("b")))

	assert.Equal(t, 1, n)
}
