package command_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todo/internal/command"
	"github.com/idilsaglam/todo/internal/history"
	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/observer"
	"github.com/idilsaglam/todo/internal/store"
)

type fixture struct {
	store   *store.Store
	history *history.Manager
	input   *command.StaticInput
	d       *command.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := store.New()
	h := history.New(s)
	s.AddObserver(h)
	in := &command.StaticInput{}
	return &fixture{store: s, history: h, input: in, d: command.NewDispatcher(s, h, in)}
}

func (f *fixture) add(t *testing.T, text string) {
	t.Helper()
	f.input.Text = text
	require.NoError(t, f.d.Execute(command.Add()))
}

func texts(items ...string) model.Snapshot {
	out := make([]model.Item, 0, len(items))
	for _, s := range items {
		out = append(out, model.Item{Text: s})
	}
	return model.NewSnapshot(out)
}

func TestParseName(t *testing.T) {
	for in, want := range map[string]command.Name{"add": command.NameAdd, " Delete ": command.NameDelete, "UNDO": command.NameUndo} {
		got, err := command.ParseName(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := command.ParseName("redo")
	require.ErrorIs(t, err, command.ErrUnknownCommand)
}

func TestAddTrimsAndClearsInput(t *testing.T) {
	f := newFixture(t)
	f.input.Text = "  buy milk  "

	require.NoError(t, f.d.Execute(command.Add()))

	assert.Equal(t, []string{"buy milk"}, f.store.Items().Texts())
	assert.Empty(t, f.input.Value())
}

func TestAddBlankInputIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.input.Text = "   "

	require.NoError(t, f.d.Execute(command.Add()))

	assert.Equal(t, 0, f.store.Len())
	assert.Equal(t, 0, f.history.Len())
	assert.Equal(t, "   ", f.input.Value(), "rejected input is left for the user to fix")
}

func TestAddDuplicateKeepsInputAndSize(t *testing.T) {
	f := newFixture(t)
	f.add(t, "buy milk")
	f.input.Text = "buy milk"

	require.NoError(t, f.d.Execute(command.Add()))

	assert.Equal(t, 1, f.store.Len())
	assert.Equal(t, "buy milk", f.input.Value())
	assert.Equal(t, 1, f.history.Len())
}

func TestAddWithoutInputSource(t *testing.T) {
	s := store.New()
	d := command.NewDispatcher(s, history.New(s), nil)
	require.Error(t, d.Execute(command.Add()))
}

func TestDeleteMissingDoesNotNotify(t *testing.T) {
	f := newFixture(t)
	f.add(t, "a")
	calls := 0
	f.store.AddObserver(observer.Func(func() error { calls++; return nil }))

	require.NoError(t, f.d.Execute(command.Delete("nope")))
	require.NoError(t, f.d.Execute(command.Command{Name: command.NameDelete}))

	assert.Equal(t, 0, calls)
	assert.Equal(t, []string{"a"}, f.store.Items().Texts())
}

func TestDeleteExisting(t *testing.T) {
	f := newFixture(t)
	f.add(t, "a")
	f.add(t, "b")

	require.NoError(t, f.d.Execute(command.Delete("a")))

	assert.Equal(t, []string{"b"}, f.store.Items().Texts())
}

func TestUndoRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.add(t, "a")
	f.add(t, "b")
	before := f.store.Items()
	f.add(t, "c")

	require.NoError(t, f.d.Execute(command.Undo()))

	assert.True(t, before.Equal(f.store.Items()), "got %v", f.store.Items().Texts())
	assert.True(t, texts("b", "a").Equal(f.store.Items()))
}

func TestUndoRestoresStateBeforeDelete(t *testing.T) {
	f := newFixture(t)
	f.add(t, "x")
	f.add(t, "y")
	require.NoError(t, f.d.Execute(command.Delete("x")))

	snaps := f.history.Snapshots()
	require.Len(t, snaps, 3)
	beforeDelete := snaps[len(snaps)-2]

	require.NoError(t, f.d.Execute(command.Undo()))

	assert.True(t, beforeDelete.Equal(f.store.Items()))
	assert.True(t, texts("x", "y").Equal(f.store.Items()))
}

func TestRepeatedUndoWalksBackwards(t *testing.T) {
	f := newFixture(t)
	f.add(t, "a")
	f.add(t, "b")
	f.add(t, "c")

	require.NoError(t, f.d.Execute(command.Undo()))
	assert.True(t, texts("a", "b").Equal(f.store.Items()))

	require.NoError(t, f.d.Execute(command.Undo()))
	assert.True(t, texts("a").Equal(f.store.Items()))

	// one snapshot left: nothing more to undo
	require.NoError(t, f.d.Execute(command.Undo()))
	assert.True(t, texts("a").Equal(f.store.Items()))
}

func TestUndoWithNothingToUndo(t *testing.T) {
	f := newFixture(t)
	calls := 0
	f.store.AddObserver(observer.Func(func() error { calls++; return nil }))

	require.NoError(t, f.d.Execute(command.Undo()))

	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, f.store.Len())
}

func TestUnknownCommand(t *testing.T) {
	f := newFixture(t)
	err := f.d.Execute(command.Command{Name: "REDO"})
	require.ErrorIs(t, err, command.ErrUnknownCommand)
}

func TestObserverFailureReachesCaller(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("storage unavailable")
	f.store.AddObserver(observer.Func(func() error { return boom }))
	f.input.Text = "a"

	err := f.d.Execute(command.Add())

	require.ErrorIs(t, err, boom)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "UNDO", command.Undo().String())
	assert.Equal(t, `DELETE ["milk"]`, command.Delete("milk").String())
}
