package aggregator

import (
	"context"
	"sort"
	"sync"

	"hn-radar/hackernews"
	"hn-radar/logger"
)

// ItemFetcher is the single-item lookup the aggregator fans out over.
// *hackernews.Client satisfies it.
type ItemFetcher interface {
	Item(ctx context.Context, id int64) (*hackernews.Item, error)
}

// FetchAll fetches every ID concurrently and returns the items sorted by
// descending score once all fetches have settled. Items whose fetch fails
// are dropped from the result; the only partial-failure signal is a result
// shorter than the input. Ties keep the order of the input ID list.
//
// Results flow through one channel drained by the calling goroutine, so no
// slice is appended to concurrently. Cancelling ctx cancels every in-flight
// fetch.
func FetchAll(ctx context.Context, fetcher ItemFetcher, ids []int64) []hackernews.Item {
	type indexed struct {
		pos  int
		item hackernews.Item
	}

	results := make(chan indexed, len(ids))
	var wg sync.WaitGroup

	for pos, id := range ids {
		wg.Add(1)
		go func(pos int, id int64) {
			defer wg.Done()
			item, err := fetcher.Item(ctx, id)
			if err != nil {
				logger.Log.Debugf("drop story %d: %v", id, err)
				return
			}
			results <- indexed{pos: pos, item: *item}
		}(pos, id)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]indexed, 0, len(ids))
	for r := range results {
		collected = append(collected, r)
	}

	// restore input order first so the score sort is stable across runs
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].pos < collected[j].pos
	})
	sort.SliceStable(collected, func(i, j int) bool {
		return collected[i].item.Score > collected[j].item.Score
	})

	items := make([]hackernews.Item, 0, len(collected))
	for _, r := range collected {
		items = append(items, r.item)
	}
	return items
}
