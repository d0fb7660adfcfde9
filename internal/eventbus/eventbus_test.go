package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type pingEvent struct{ N int }
type otherEvent struct{}

func TestPublishReachesSubscribers(t *testing.T) {
	Use(New())
	defer Use(nil)

	var got []int
	unsub := Subscribe(func(_ context.Context, e pingEvent) {
		got = append(got, e.N)
	})
	defer unsub()

	Publish(context.Background(), pingEvent{N: 1})
	Publish(context.Background(), pingEvent{N: 2})
	Publish(context.Background(), otherEvent{})

	require.Equal(t, []int{1, 2}, got)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	Use(New())
	defer Use(nil)

	calls := 0
	unsub := Subscribe(func(context.Context, pingEvent) { calls++ })
	Publish(context.Background(), pingEvent{})
	unsub()
	Publish(context.Background(), pingEvent{})

	require.Equal(t, 1, calls)
}

func TestSubscriptionOrderPreserved(t *testing.T) {
	Use(New())
	defer Use(nil)

	var order []string
	defer Subscribe(func(context.Context, pingEvent) { order = append(order, "a") })()
	defer Subscribe(func(context.Context, pingEvent) { order = append(order, "b") })()

	Publish(context.Background(), pingEvent{})
	require.Equal(t, []string{"a", "b"}, order)
}

func TestNoBusDropsEvents(t *testing.T) {
	Use(nil)
	// Must not panic and must return a usable no-op unsubscribe.
	unsub := Subscribe(func(context.Context, pingEvent) {})
	Publish(context.Background(), pingEvent{})
	unsub()
}
