package status

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/annolab/labelctl/internal/api"
	"github.com/annolab/labelctl/internal/errors"
)

type stubFetcher struct {
	mu      sync.Mutex
	status  *api.SystemStatus
	err     error
	calls   int
	fetched chan struct{}
}

func newStubFetcher(status *api.SystemStatus, err error) *stubFetcher {
	return &stubFetcher{status: status, err: err, fetched: make(chan struct{}, 16)}
}

func (s *stubFetcher) GetStatus(ctx context.Context) (*api.SystemStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	select {
	case s.fetched <- struct{}{}:
	default:
	}
	return s.status, s.err
}

func (s *stubFetcher) set(status *api.SystemStatus, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.err = err
}

func (s *stubFetcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func waitForFetch(t *testing.T, fetcher *stubFetcher) {
	t.Helper()
	select {
	case <-fetcher.fetched:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for poll")
	}
}

func TestPoller_ImmediateFetchThenTicks(t *testing.T) {
	defer goleak.VerifyNone(t)

	fetcher := newStubFetcher(&api.SystemStatus{IsBusy: false}, nil)
	poller := NewPoller(fetcher, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		poller.Start(ctx)
	}()

	// First fetch happens before the first tick.
	waitForFetch(t, fetcher)
	// At least one tick-driven fetch follows.
	waitForFetch(t, fetcher)

	cancel()
	<-done

	assert.GreaterOrEqual(t, fetcher.callCount(), 2)
	require.NotNil(t, poller.Current())
	assert.False(t, poller.Current().IsBusy)
}

func TestPoller_ReplacesValueOnSuccess(t *testing.T) {
	defer goleak.VerifyNone(t)

	fetcher := newStubFetcher(&api.SystemStatus{IsBusy: false}, nil)
	poller := NewPoller(fetcher, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		poller.Start(ctx)
	}()

	waitForFetch(t, fetcher)

	user := "bob"
	fetcher.set(&api.SystemStatus{IsBusy: true, CurrentUser: &user, ProcessingTime: 3.2}, nil)
	waitForFetch(t, fetcher)
	waitForFetch(t, fetcher)

	cancel()
	<-done

	current := poller.Current()
	require.NotNil(t, current)
	assert.True(t, current.IsBusy)
	require.NotNil(t, current.CurrentUser)
	assert.Equal(t, "bob", *current.CurrentUser)
}

func TestPoller_KeepsLastValueOnFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	fetcher := newStubFetcher(&api.SystemStatus{IsBusy: true}, nil)
	poller := NewPoller(fetcher, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		poller.Start(ctx)
	}()

	waitForFetch(t, fetcher)

	fetcher.set(nil, errors.NewStd("poll failed"))
	waitForFetch(t, fetcher)
	waitForFetch(t, fetcher)

	cancel()
	<-done

	current := poller.Current()
	require.NotNil(t, current, "failed polls must not clear the last value")
	assert.True(t, current.IsBusy)
}

func TestPoller_NilBeforeFirstSuccess(t *testing.T) {
	fetcher := newStubFetcher(nil, errors.NewStd("down"))
	poller := NewPoller(fetcher, time.Minute)

	assert.Nil(t, poller.Current())
}
