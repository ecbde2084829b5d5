package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poultry360/internal/domain"
)

type item struct {
	ID   int
	Name string
}

func pageOf(items ...item) *domain.Page[item] {
	return &domain.Page[item]{
		Data:       items,
		Pagination: domain.Pagination{Page: 1, Limit: 20, HasMore: false},
	}
}

func TestCollection_RefreshReplacesCache(t *testing.T) {
	c := NewCollection("items", func(ctx context.Context) (*domain.Page[item], error) {
		return pageOf(item{1, "a"}, item{2, "b"}), nil
	})

	c.Refresh(context.Background())

	assert.False(t, c.Loading())
	assert.Empty(t, c.ErrorMessage())
	if diff := cmp.Diff([]item{{1, "a"}, {2, "b"}}, c.Items()); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestCollection_RefreshEmptyPageClearsCache(t *testing.T) {
	pages := []*domain.Page[item]{pageOf(item{1, "a"}), pageOf()}
	c := NewCollection("items", func(ctx context.Context) (*domain.Page[item], error) {
		p := pages[0]
		pages = pages[1:]
		return p, nil
	})

	c.Refresh(context.Background())
	require.Len(t, c.Items(), 1)

	// A legitimately empty result still replaces the cache.
	c.Refresh(context.Background())
	assert.Empty(t, c.Items())
	assert.Empty(t, c.ErrorMessage())
}

func TestCollection_FailedRefreshKeepsStaleCache(t *testing.T) {
	fail := false
	c := NewCollection("items", func(ctx context.Context) (*domain.Page[item], error) {
		if fail {
			return nil, errors.New("boom")
		}
		return pageOf(item{1, "a"}), nil
	})

	c.Refresh(context.Background())
	require.Len(t, c.Items(), 1)

	fail = true
	c.Refresh(context.Background())

	assert.Len(t, c.Items(), 1, "stale cache survives a failed load")
	assert.Equal(t, "Failed to fetch items", c.ErrorMessage())
	assert.False(t, c.Loading())
}

func TestCollection_SupersededRefreshDiscarded(t *testing.T) {
	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})
	calls := 0

	c := NewCollection("items", func(ctx context.Context) (*domain.Page[item], error) {
		calls++
		if calls == 1 {
			close(slowStarted)
			<-slowRelease
			return pageOf(item{1, "old"}), nil
		}
		return pageOf(item{2, "new"}), nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Refresh(context.Background())
	}()

	<-slowStarted
	c.Refresh(context.Background())
	require.Equal(t, []item{{2, "new"}}, c.Items())

	// The first load finishes late; its response must be dropped.
	close(slowRelease)
	<-done
	assert.Equal(t, []item{{2, "new"}}, c.Items())
	assert.False(t, c.Loading())
}

func TestCollection_MutationRecordsAndReturnsError(t *testing.T) {
	c := NewCollection("items", func(ctx context.Context) (*domain.Page[item], error) {
		return pageOf(item{1, "a"}), nil
	})
	c.Refresh(context.Background())

	wantErr := errors.New("rejected")
	err := c.mutate("Failed to create item", func() error { return wantErr })

	require.ErrorIs(t, err, wantErr)
	assert.Equal(t, "Failed to create item", c.ErrorMessage())
	assert.Len(t, c.Items(), 1, "mutations never touch the cache")
}

func TestCollection_SuccessfulMutationLeavesCacheAlone(t *testing.T) {
	c := NewCollection("items", func(ctx context.Context) (*domain.Page[item], error) {
		return pageOf(item{1, "a"}), nil
	})
	c.Refresh(context.Background())

	require.NoError(t, c.mutate("Failed to create item", func() error { return nil }))
	assert.Len(t, c.Items(), 1, "new record appears only after a refresh")
	assert.Empty(t, c.ErrorMessage())
}

func TestCollection_ClearError(t *testing.T) {
	c := NewCollection("items", func(ctx context.Context) (*domain.Page[item], error) {
		return nil, errors.New("boom")
	})
	c.Refresh(context.Background())
	require.NotEmpty(t, c.ErrorMessage())

	c.ClearError()
	assert.Empty(t, c.ErrorMessage())
}

func TestCollection_NotifiesListeners(t *testing.T) {
	c := NewCollection("items", func(ctx context.Context) (*domain.Page[item], error) {
		return pageOf(), nil
	})

	fired := 0
	c.OnChange(func() { fired++ })
	c.Refresh(context.Background())

	// One notification entering the load, one leaving it.
	assert.Equal(t, 2, fired)
}
