package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hn-radar/config"
)

func TestInitApp_KafkaFromEnv(t *testing.T) {
	t.Setenv("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092")
	t.Setenv("KAFKA_GROUP_ID", "hn-radar-test")

	config.InitApp()
	cfg := config.GetConfig()

	assert.Equal(t, "localhost:9092", cfg.Kafka.BootstrapServers)
	assert.Equal(t, "hn-radar-test", cfg.Kafka.GroupID)
}

func TestInitApp_KafkaUnsetStaysEmpty(t *testing.T) {
	t.Setenv("KAFKA_BOOTSTRAP_SERVERS", "")
	t.Setenv("KAFKA_GROUP_ID", "")

	config.InitApp()
	cfg := config.GetConfig()

	assert.Empty(t, cfg.Kafka.BootstrapServers)
	assert.Empty(t, cfg.Kafka.GroupID)
}

func TestApplyDefaults(t *testing.T) {
	config.InitApp()
	cfg := config.GetConfig()

	assert.Equal(t, "https://hacker-news.firebaseio.com", cfg.HackerNews.BaseURL)
	assert.Equal(t, 30, cfg.HackerNews.TopStoriesLimit)
	assert.Equal(t, 10, cfg.HackerNews.RequestTimeoutSeconds)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}
