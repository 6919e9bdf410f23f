package aggregator_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"hn-radar/aggregator"
	"hn-radar/hackernews"
)

// fetcherFunc adapts a function to aggregator.ItemFetcher.
type fetcherFunc func(ctx context.Context, id int64) (*hackernews.Item, error)

func (f fetcherFunc) Item(ctx context.Context, id int64) (*hackernews.Item, error) {
	return f(ctx, id)
}

func fixedFetcher(items map[int64]hackernews.Item) fetcherFunc {
	return func(ctx context.Context, id int64) (*hackernews.Item, error) {
		item, ok := items[id]
		if !ok {
			return nil, fmt.Errorf("item %d not found", id)
		}
		return &item, nil
	}
}

func TestFetchAll_SortsByScoreDescending(t *testing.T) {
	fetcher := fixedFetcher(map[int64]hackernews.Item{
		8863:    {ID: 8863, Title: "My YC app: Dropbox", Score: 111, By: "dhouston"},
		2921983: {ID: 2921983, Title: "Ask HN: Who is hiring?", Score: 260},
		121003:  {ID: 121003, Title: "Ask HN: The Arc Effect", Score: 25},
	})

	items := aggregator.FetchAll(context.Background(), fetcher, []int64{8863, 2921983, 121003})

	assert.Equal(t, 3, len(items))
	assert.Equal(t, int64(2921983), items[0].ID)
	assert.Equal(t, int64(8863), items[1].ID)
	assert.Equal(t, int64(121003), items[2].ID)
}

func TestFetchAll_DropsFailedFetches(t *testing.T) {
	var calls int64
	fetcher := fetcherFunc(func(ctx context.Context, id int64) (*hackernews.Item, error) {
		atomic.AddInt64(&calls, 1)
		if id%2 == 0 {
			return nil, fmt.Errorf("timeout fetching %d", id)
		}
		return &hackernews.Item{ID: id, Title: fmt.Sprintf("story %d", id), Score: int(id)}, nil
	})

	ids := make([]int64, 30)
	for i := range ids {
		ids[i] = int64(i + 1)
	}

	items := aggregator.FetchAll(context.Background(), fetcher, ids)

	assert.Equal(t, int64(30), atomic.LoadInt64(&calls))
	assert.Equal(t, 15, len(items))
	for i := 1; i < len(items); i++ {
		assert.True(t, items[i-1].Score >= items[i].Score)
	}
}

func TestFetchAll_AllFail(t *testing.T) {
	fetcher := fetcherFunc(func(ctx context.Context, id int64) (*hackernews.Item, error) {
		return nil, fmt.Errorf("connection refused")
	})

	items := aggregator.FetchAll(context.Background(), fetcher, []int64{1, 2, 3})
	assert.Equal(t, 0, len(items))
}

func TestFetchAll_MissingScoreSortsLast(t *testing.T) {
	fetcher := fixedFetcher(map[int64]hackernews.Item{
		1: {ID: 1, Title: "scored", Score: 10},
		2: {ID: 2, Title: "unscored"},
		3: {ID: 3, Title: "low", Score: 1},
	})

	items := aggregator.FetchAll(context.Background(), fetcher, []int64{2, 1, 3})

	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(3), items[1].ID)
	assert.Equal(t, int64(2), items[2].ID)
}

func TestFetchAll_TiesKeepInputOrder(t *testing.T) {
	fetcher := fixedFetcher(map[int64]hackernews.Item{
		7: {ID: 7, Score: 50},
		8: {ID: 8, Score: 50},
		9: {ID: 9, Score: 50},
	})

	for i := 0; i < 5; i++ {
		items := aggregator.FetchAll(context.Background(), fetcher, []int64{9, 7, 8})
		assert.Equal(t, int64(9), items[0].ID)
		assert.Equal(t, int64(7), items[1].ID)
		assert.Equal(t, int64(8), items[2].ID)
	}
}

func TestFetchAll_Idempotent(t *testing.T) {
	fetcher := fixedFetcher(map[int64]hackernews.Item{
		1: {ID: 1, Score: 3},
		2: {ID: 2, Score: 9},
		3: {ID: 3, Score: 6},
	})

	first := aggregator.FetchAll(context.Background(), fetcher, []int64{1, 2, 3})
	second := aggregator.FetchAll(context.Background(), fetcher, []int64{1, 2, 3})
	assert.Equal(t, first, second)
}

func TestFetchAll_CancelledContextDropsEverything(t *testing.T) {
	fetcher := fetcherFunc(func(ctx context.Context, id int64) (*hackernews.Item, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := aggregator.FetchAll(ctx, fetcher, []int64{1, 2, 3})
	assert.Equal(t, 0, len(items))
}

func TestFetchAll_EmptyInput(t *testing.T) {
	fetcher := fixedFetcher(nil)
	items := aggregator.FetchAll(context.Background(), fetcher, nil)
	assert.Equal(t, 0, len(items))
}
