package pubsub

import (
	"context"
	"testing"
	"time"

	"patrol/internal/domain/service"
	mockService "patrol/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAsyncPublisher_DeliversInBackground(t *testing.T) {
	next := mockService.NewMockEventPublisher(t)
	delivered := make(chan string, 1)
	next.EXPECT().PublishLocationSyncEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.LocationSyncEvent) {
			delivered <- event.EventID
		}).
		Return(nil).Once()
	next.EXPECT().Close().Return(nil).Once()

	publisher := newAsyncPublisher(next, 4, discardLogger())

	require.NoError(t, publisher.PublishLocationSyncEvent(t.Context(), &service.LocationSyncEvent{EventID: "evt-1"}))

	select {
	case id := <-delivered:
		assert.Equal(t, "evt-1", id)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}

	require.NoError(t, publisher.Close())
}

func TestAsyncPublisher_ProviderFailureIsNotReturned(t *testing.T) {
	next := mockService.NewMockEventPublisher(t)
	next.EXPECT().PublishLocationSyncEvent(mock.Anything, mock.Anything).
		Return(errors.New("topic unavailable")).Once()
	next.EXPECT().Close().Return(nil).Once()

	publisher := newAsyncPublisher(next, 4, discardLogger())

	assert.NoError(t, publisher.PublishLocationSyncEvent(t.Context(), &service.LocationSyncEvent{EventID: "evt-1"}))
	require.NoError(t, publisher.Close())
}

func TestAsyncPublisher_QueueFull(t *testing.T) {
	next := mockService.NewMockEventPublisher(t)
	release := make(chan struct{})
	started := make(chan struct{})
	next.EXPECT().PublishLocationSyncEvent(mock.Anything, mock.Anything).
		Run(func(context.Context, *service.LocationSyncEvent) {
			select {
			case started <- struct{}{}:
			default:
			}
			<-release
		}).
		Return(nil)
	next.EXPECT().Close().Return(nil).Once()

	publisher := newAsyncPublisher(next, 1, discardLogger())

	// First event occupies the sender, second fills the queue.
	require.NoError(t, publisher.PublishLocationSyncEvent(t.Context(), &service.LocationSyncEvent{EventID: "a"}))
	<-started
	require.NoError(t, publisher.PublishLocationSyncEvent(t.Context(), &service.LocationSyncEvent{EventID: "b"}))

	err := publisher.PublishLocationSyncEvent(t.Context(), &service.LocationSyncEvent{EventID: "c"})
	assert.ErrorIs(t, err, errPublishQueueFull)

	close(release)
	require.NoError(t, publisher.Close())
}

func TestAsyncPublisher_CloseDrainsQueue(t *testing.T) {
	next := mockService.NewMockEventPublisher(t)
	next.EXPECT().PublishLocationSyncEvent(mock.Anything, mock.Anything).Return(nil).Times(3)
	next.EXPECT().Close().Return(nil).Once()

	publisher := newAsyncPublisher(next, 8, discardLogger())
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, publisher.PublishLocationSyncEvent(t.Context(), &service.LocationSyncEvent{EventID: id}))
	}

	require.NoError(t, publisher.Close())

	err := publisher.PublishLocationSyncEvent(t.Context(), &service.LocationSyncEvent{EventID: "late"})
	assert.ErrorIs(t, err, errPublisherClosed)
}

func TestAsyncPublisher_ShutdownTimeoutLeavesProviderOpen(t *testing.T) {
	next := mockService.NewMockEventPublisher(t)
	release := make(chan struct{})
	started := make(chan struct{})
	next.EXPECT().PublishLocationSyncEvent(mock.Anything, mock.Anything).
		Run(func(context.Context, *service.LocationSyncEvent) {
			close(started)
			<-release
		}).
		Return(nil).Once()

	publisher := newAsyncPublisher(next, 2, discardLogger())
	require.NoError(t, publisher.PublishLocationSyncEvent(t.Context(), &service.LocationSyncEvent{EventID: "slow"}))
	<-started

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := publisher.Shutdown(ctx)

	require.ErrorIs(t, err, context.Canceled)
	next.AssertNotCalled(t, "Close")

	close(release)
	<-publisher.done
}
