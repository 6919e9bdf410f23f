package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"hn-radar/cmd/processor/dispatcher"
	"hn-radar/cmd/processor/handlers"
	"hn-radar/cmd/processor/quota"
	"hn-radar/config"
	"hn-radar/db"
	"hn-radar/eventbus"
	"hn-radar/events"
	"hn-radar/logger"
	"hn-radar/repositories"
	"hn-radar/summarizer"
)

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

	if cfg.Kafka.BootstrapServers == "" || cfg.Kafka.GroupID == "" {
		logger.Log.Error("KAFKA_BOOTSTRAP_SERVERS and KAFKA_GROUP_ID must be set")
		os.Exit(1)
	}
	bus, err := eventbus.NewKafkaEventBus(cfg.Kafka.BootstrapServers)
	if err != nil {
		logger.Log.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	storyHandlers := handlers.NewStoryHandlers(
		repositories.NewStoryRepository(db.Database()),
		repositories.NewStoryTextRepository(db.Database()),
		repositories.NewAILogRepository(db.Database()),
		summarizer.New(cfg.GeminiApiKey, cfg.GeminiModel),
		quota.NewSummaryQuotaLimiterFromConfig(cfg),
		dispatcher.NewEventDispatcher(bus),
	)

	groupID := cfg.Kafka.GroupID

	subscribeRunner := func() error {
		return bus.Subscribe(ctx, groupID, eventbus.TopicStoryEvents, func(ctx context.Context, ev eventbus.Event) error {
			// Peek at the type before a full decode; events for other
			// consumers are ignored and committed.
			var peek struct {
				Type string `json:"type"`
			}
			if err := json.Unmarshal(ev.Payload, &peek); err != nil {
				return err
			}
			switch events.EventType(peek.Type) {
			case events.StoryDiscovered:
				v, err := eventbus.DecodeJSON[events.StoryDiscoveredEvent](ev)
				if err != nil {
					return err
				}
				return storyHandlers.HandleStoryDiscovered(ctx, &v)
			default:
				return nil
			}
		})
	}

	logger.Log.Info("starting processor service...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := subscribeRunner(); err != nil && err != context.Canceled {
			logger.Log.Errorf("eventbus subscribe error: %v", err)
		}
	}()

	// Re-inject delayed retries back onto the base topic.
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := bus.StartRetryReinjector(ctx, groupID+".retry", eventbus.TopicStoryEvents); err != nil && err != context.Canceled {
			logger.Log.Errorf("retry reinjector error: %v", err)
		}
	}()

	<-sigChan
	logger.Log.Info("received shutdown signal, shutting down processor service...")

	cancel()
	wg.Wait()

	logger.Log.Info("processor service stopped")
}
