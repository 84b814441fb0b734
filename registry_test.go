package immediate

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(runner SourceRunner) *registry {
	return newRegistry(runner, slog.Default())
}

func TestRegistry_Register(t *testing.T) {
	t.Run("handles start at 1 and strictly increase", func(t *testing.T) {
		reg := newTestRegistry(nil)

		for i := 1; i <= 10; i++ {
			h := reg.register(task{cb: func(...any) {}})
			assert.Equal(t, Handle(i), h)
		}
		assert.Equal(t, 10, reg.count())
	})

	t.Run("handles are not reused after run or remove", func(t *testing.T) {
		reg := newTestRegistry(nil)

		h1 := reg.register(task{cb: func(...any) {}})
		reg.runIfPresent(h1)
		reg.remove(h1)

		h2 := reg.register(task{cb: func(...any) {}})
		assert.Greater(t, h2, h1)
	})
}

func TestRegistry_RunIfPresent(t *testing.T) {
	t.Run("runs the task at most once", func(t *testing.T) {
		reg := newTestRegistry(nil)

		calls := 0
		h := reg.register(task{cb: func(...any) { calls++ }})

		reg.runIfPresent(h)
		reg.runIfPresent(h)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 0, reg.count())
	})

	t.Run("absent handle is a silent no-op", func(t *testing.T) {
		reg := newTestRegistry(nil)

		assert.NotPanics(t, func() {
			reg.runIfPresent(42)
		})
	})

	t.Run("forwards captured arguments exactly", func(t *testing.T) {
		reg := newTestRegistry(nil)

		var got []any
		h := reg.register(task{
			cb:   func(args ...any) { got = args },
			args: []any{"a", 2, true},
		})
		reg.runIfPresent(h)

		assert.Equal(t, []any{"a", 2, true}, got)
	})

	t.Run("no arguments means empty invocation", func(t *testing.T) {
		reg := newTestRegistry(nil)

		var got []any
		called := false
		h := reg.register(task{cb: func(args ...any) {
			called = true
			got = args
		}})
		reg.runIfPresent(h)

		assert.True(t, called)
		assert.Empty(t, got)
	})

	t.Run("entry is removed even when the callback panics", func(t *testing.T) {
		reg := newTestRegistry(nil)

		h := reg.register(task{cb: func(...any) { panic("boom") }})

		require.Panics(t, func() {
			reg.runIfPresent(h)
		})
		assert.Equal(t, 0, reg.count())

		// Second delivery after the panic must be a no-op.
		assert.NotPanics(t, func() {
			reg.runIfPresent(h)
		})
	})

	t.Run("textual source goes to the runner with no arguments", func(t *testing.T) {
		var gotSrc string
		reg := newTestRegistry(func(src string) error {
			gotSrc = src
			return nil
		})

		h := reg.register(task{src: "print('hi')", args: []any{"ignored"}})
		reg.runIfPresent(h)

		assert.Equal(t, "print('hi')", gotSrc)
	})

	t.Run("runner failure does not panic and removes the entry", func(t *testing.T) {
		reg := newTestRegistry(func(string) error {
			return assert.AnError
		})

		h := reg.register(task{src: "bad"})
		assert.NotPanics(t, func() {
			reg.runIfPresent(h)
		})
		assert.Equal(t, 0, reg.count())
	})
}

func TestRegistry_Remove(t *testing.T) {
	t.Run("removed task never runs", func(t *testing.T) {
		reg := newTestRegistry(nil)

		calls := 0
		h := reg.register(task{cb: func(...any) { calls++ }})

		reg.remove(h)
		reg.runIfPresent(h)

		assert.Equal(t, 0, calls)
	})

	t.Run("remove of unknown handle is a no-op", func(t *testing.T) {
		reg := newTestRegistry(nil)

		assert.NotPanics(t, func() {
			reg.remove(7)
			reg.remove(0)
		})
	})
}
