package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hn-radar/aggregator"
	"hn-radar/cmd/collector/dispatcher"
	"hn-radar/config"
	"hn-radar/db"
	"hn-radar/eventbus"
	"hn-radar/feeder"
	"hn-radar/hackernews"
	"hn-radar/logger"
	"hn-radar/models"
	"hn-radar/repositories"
)

type collector struct {
	client     *hackernews.Client
	storyRepo  *repositories.StoryRepository
	dispatcher *dispatcher.EventDispatcher
	rssURL     string
	limit      int
}

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	if cfg.Kafka.BootstrapServers == "" {
		logger.Log.Error("KAFKA_BOOTSTRAP_SERVERS is not set")
		os.Exit(1)
	}
	bus, err := eventbus.NewKafkaEventBus(cfg.Kafka.BootstrapServers)
	if err != nil {
		logger.Log.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	c := &collector{
		client: hackernews.NewClient(
			cfg.HackerNews.BaseURL,
			time.Duration(cfg.HackerNews.RequestTimeoutSeconds)*time.Second,
		),
		storyRepo:  repositories.NewStoryRepository(db.Database()),
		dispatcher: dispatcher.NewEventDispatcher(bus),
		rssURL:     cfg.HackerNews.FrontPageRSSURL,
		limit:      cfg.HackerNews.TopStoriesLimit,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	interval := time.Duration(cfg.Collector.IntervalMinutes) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Log.Infof("collector starting, cycle interval %s", interval)
	if err := c.runOnce(ctx); err != nil {
		logger.Log.Errorf("collector cycle error: %v", err)
	}

	for {
		select {
		case <-ticker.C:
			if err := c.runOnce(ctx); err != nil {
				logger.Log.Errorf("collector cycle error: %v", err)
			}
		case <-sigChan:
			logger.Log.Info("received shutdown signal, stopping collector...")
			cancel()
			return
		}
	}
}

// runOnce executes one archive cycle: fetch the current top stories, upsert
// them into the archive and announce the ones seen for the first time.
func (c *collector) runOnce(ctx context.Context) error {
	ids, err := c.client.TopStories(ctx, c.limit)
	if err != nil {
		return err
	}

	items := aggregator.FetchAll(ctx, c.client, ids)
	logger.Log.Infof("collector cycle: %d of %d top stories fetched", len(items), len(ids))

	for i := range items {
		item := &items[i]
		s := &models.Story{
			HNID:         item.ID,
			Title:        item.Title,
			URL:          item.URL,
			By:           item.By,
			Score:        item.Score,
			CommentCount: item.Descendants,
			SubmittedAt:  item.SubmittedAt(),
		}
		if err := c.archiveStory(ctx, s); err != nil {
			logger.Log.Errorf("failed to archive story %d: %v", item.ID, err)
		}
	}

	c.collectFrontPage(ctx)
	return nil
}

// archiveStory upserts one story and publishes StoryDiscovered when the
// upsert inserted a new document.
func (c *collector) archiveStory(ctx context.Context, s *models.Story) error {
	res, err := c.storyRepo.UpsertByHNID(ctx, s)
	if err != nil {
		return err
	}
	if res.UpsertedID == nil {
		return nil
	}

	saved, err := c.storyRepo.FindByHNID(ctx, s.HNID)
	if err != nil {
		return err
	}
	if err := c.dispatcher.PublishStoryDiscovered(ctx, saved); err != nil {
		logger.Log.Errorf("failed to publish StoryDiscovered for %d: %v", s.HNID, err)
		return err
	}
	logger.Log.Infof("discovered story %d: %s", saved.HNID, saved.Title)
	return nil
}

// collectFrontPage is the secondary discovery source: the hnrss front-page
// feed surfaces stories that rank on the front page without reaching the
// top-stories list. Failures here never fail the cycle.
func (c *collector) collectFrontPage(ctx context.Context) {
	if c.rssURL == "" {
		return
	}

	feedItems, err := feeder.FetchFrontPage(c.rssURL, c.limit)
	if err != nil {
		logger.Log.Warnf("front page feed fetch failed: %v", err)
		return
	}

	for _, fi := range feedItems {
		if fi.StoryID == 0 {
			continue
		}
		if _, err := c.storyRepo.FindByHNID(ctx, fi.StoryID); err == nil {
			continue // already archived
		}

		item, err := c.client.Item(ctx, fi.StoryID)
		if err != nil {
			logger.Log.Debugf("front page item %d fetch failed: %v", fi.StoryID, err)
			continue
		}
		s := &models.Story{
			HNID:         item.ID,
			Title:        item.Title,
			URL:          item.URL,
			By:           item.By,
			Score:        item.Score,
			CommentCount: item.Descendants,
			SubmittedAt:  item.SubmittedAt(),
		}
		if err := c.archiveStory(ctx, s); err != nil {
			logger.Log.Errorf("failed to archive front page story %d: %v", fi.StoryID, err)
		}
	}
}
