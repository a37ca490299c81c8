package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annolab/labelctl/internal/errors"
)

type stubFetcher struct {
	labels []string
	err    error
	calls  int
}

func (s *stubFetcher) GetLabels(ctx context.Context) ([]string, error) {
	s.calls++
	return s.labels, s.err
}

func TestService_Labels_CachesFetch(t *testing.T) {
	fetcher := &stubFetcher{labels: []string{"a", "b"}}
	svc := NewService(fetcher)

	first, err := svc.Labels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, first)

	second, err := svc.Labels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, 1, fetcher.calls, "second call must come from cache")
}

func TestService_Labels_FetchErrorNotCached(t *testing.T) {
	fetcher := &stubFetcher{err: errors.NewStd("boom")}
	svc := NewService(fetcher)

	_, err := svc.Labels(context.Background())
	require.Error(t, err)

	// Recovery after the fetcher starts working again.
	fetcher.err = nil
	fetcher.labels = []string{"a"}

	labels, err := svc.Labels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, labels)
	assert.Equal(t, 2, fetcher.calls)
}

func TestService_Contains(t *testing.T) {
	fetcher := &stubFetcher{labels: []string{"Research - Equity research"}}
	svc := NewService(fetcher)

	assert.True(t, svc.Contains(context.Background(), "Research - Equity research"))
	assert.False(t, svc.Contains(context.Background(), "finance"))

	empty := NewService(&stubFetcher{err: errors.NewStd("down")})
	assert.False(t, empty.Contains(context.Background(), "anything"))
}
