package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/petcare-service/internal/domain"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventCareRequestCreated, func(ctx context.Context, e Event) error {
		got = append(got, e)
		return nil
	})
	d.Subscribe(EventActivityLogged, func(ctx context.Context, e Event) error {
		t.Fatal("handler for another event type must not fire")
		return nil
	})

	event := Event{
		ID:        "evt-1",
		Type:      EventCareRequestCreated,
		SubjectID: "req-1",
		Actor:     Actor{UserID: "owner-1", Role: domain.RoleOwner},
		Timestamp: time.Now(),
	}
	require.NoError(t, d.Publish(context.Background(), event))

	require.Len(t, got, 1)
	assert.Equal(t, "evt-1", got[0].ID)
	assert.Equal(t, "req-1", got[0].SubjectID)
}

func TestDispatcherHandlerErrorsDoNotStopDelivery(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls int
	d.Subscribe(EventCaretakerVerified, func(ctx context.Context, e Event) error {
		calls++
		return errors.New("boom")
	})
	d.Subscribe(EventCaretakerVerified, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventCaretakerVerified}))
	assert.Equal(t, 2, calls)
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventActivityLogged}))
}
