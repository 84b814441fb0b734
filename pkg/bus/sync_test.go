package bus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncBus(t *testing.T) {
	t.Run("delivery completes inside Publish", func(t *testing.T) {
		b := NewSyncBus()
		defer b.Close()

		fired := false
		_, err := b.Subscribe(func(m Message) {
			fired = true
			assert.Equal(t, b.Origin(), m.Origin)
			assert.Equal(t, "now", m.Data)
		})
		require.NoError(t, err)

		require.NoError(t, b.Publish(context.Background(), "now"))
		assert.True(t, fired, "handler must have run before Publish returned")
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		b := NewSyncBus()
		defer b.Close()

		calls := 0
		unsubscribe, err := b.Subscribe(func(Message) { calls++ })
		require.NoError(t, err)

		require.NoError(t, b.Publish(context.Background(), "one"))
		unsubscribe()
		require.NoError(t, b.Publish(context.Background(), "two"))

		assert.Equal(t, 1, calls)
	})

	t.Run("nil handler is rejected", func(t *testing.T) {
		b := NewSyncBus()
		defer b.Close()

		_, err := b.Subscribe(nil)
		assert.ErrorIs(t, err, ErrNilHandler)
	})

	t.Run("publish after close fails", func(t *testing.T) {
		b := NewSyncBus()
		require.NoError(t, b.Close())

		assert.ErrorIs(t, b.Publish(context.Background(), "late"), ErrBusClosed)
	})
}
