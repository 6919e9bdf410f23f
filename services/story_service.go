package services

import (
	"context"
	"fmt"

	"hn-radar/aggregator"
	"hn-radar/dto"
	"hn-radar/hackernews"
)

// StoryFetcher is the upstream surface the live story flow needs.
// *hackernews.Client satisfies it; tests plug in fakes.
type StoryFetcher interface {
	TopStories(ctx context.Context, limit int) ([]int64, error)
	Item(ctx context.Context, id int64) (*hackernews.Item, error)
}

// StoryService serves live stories straight from the upstream API. Nothing
// here is cached or persisted; every invocation fetches fresh.
type StoryService struct {
	fetcher  StoryFetcher
	maxLimit int
}

// NewStoryService builds the service. maxLimit bounds how many top-story
// IDs one request may fan out over.
func NewStoryService(fetcher StoryFetcher, maxLimit int) *StoryService {
	if maxLimit <= 0 {
		maxLimit = 30
	}
	return &StoryService{fetcher: fetcher, maxLimit: maxLimit}
}

// MaxLimit reports the configured fan-out bound.
func (s *StoryService) MaxLimit() int {
	return s.maxLimit
}

// TopStories loads the ranked ID list, fans out over it and returns the
// stories sorted by descending score. A failed ID-list fetch is the only
// error path; per-item failures just shrink the result. There is no
// automatic retry, a retry is the caller invoking this again.
func (s *StoryService) TopStories(ctx context.Context, limit int) ([]dto.StorySummary, error) {
	if limit <= 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}

	ids, err := s.fetcher.TopStories(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load top stories: %w", err)
	}

	items := aggregator.FetchAll(ctx, s.fetcher, ids)
	return dto.NewStorySummaries(items), nil
}

// StoryByID fetches one story fresh from upstream.
func (s *StoryService) StoryByID(ctx context.Context, id int64) (*dto.StoryDetail, error) {
	item, err := s.fetcher.Item(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.NewStoryDetail(*item)
	return &d, nil
}
