package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging      LoggingConfig      `yaml:"logging"`
	HackerNews   HackerNewsConfig   `yaml:"hackernews"`
	Server       ServerConfig       `yaml:"server"`
	Mongo        MongoConfig        `yaml:"mongo"`
	Collector    CollectorConfig    `yaml:"collector"`
	Kafka        KafkaConfig        `yaml:"-"`
	GeminiModel  string             `yaml:"gemini_model"`
	GeminiApiKey string             `yaml:"-"`
	SummaryQuota SummaryQuotaConfig `yaml:"summary_quota"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// HackerNewsConfig holds the upstream API settings for the live story flow.
type HackerNewsConfig struct {
	// BaseURL is the Firebase API root, e.g. https://hacker-news.firebaseio.com
	BaseURL string `yaml:"base_url"`

	// TopStoriesLimit bounds how many IDs of the top-stories list are fetched
	// per invocation. Defaults to 30 when 0.
	TopStoriesLimit int `yaml:"top_stories_limit"`

	// RequestTimeoutSeconds applies to each upstream request. Defaults to 10.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`

	// FrontPageRSSURL is the hnrss.org feed used by the collector as a
	// secondary discovery source. Empty disables it.
	FrontPageRSSURL string `yaml:"front_page_rss_url"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr"`
	FrontendURL string `yaml:"frontend_url"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type CollectorConfig struct {
	// IntervalMinutes is the archive cycle period. Defaults to 30 when 0.
	IntervalMinutes int `yaml:"interval_minutes"`
}

// KafkaConfig carries the event bus connection settings. Both values come
// from the environment (.env or deployment), never from config.yaml, since
// they differ per environment.
type KafkaConfig struct {
	BootstrapServers string `yaml:"-"`
	GroupID          string `yaml:"-"`
}

// SummaryQuotaConfig defines rate/day limits for summarization LLM calls.
type SummaryQuotaConfig struct {
	// RequestsPerMinute caps summarization calls per minute. <=0 means no limit.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestsPerDay caps summarization calls per day. <=0 means no limit.
	RequestsPerDay int `yaml:"requests_per_day"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	applyDefaults(&c)
	c.GeminiApiKey = os.Getenv("GEMINI_API_KEY")
	c.Kafka.BootstrapServers = os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	c.Kafka.GroupID = os.Getenv("KAFKA_GROUP_ID")

	config = &c
}

func applyDefaults(c *AppConfig) {
	if c.HackerNews.BaseURL == "" {
		c.HackerNews.BaseURL = "https://hacker-news.firebaseio.com"
	}
	if c.HackerNews.TopStoriesLimit <= 0 {
		c.HackerNews.TopStoriesLimit = 30
	}
	if c.HackerNews.RequestTimeoutSeconds <= 0 {
		c.HackerNews.RequestTimeoutSeconds = 10
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Collector.IntervalMinutes <= 0 {
		c.Collector.IntervalMinutes = 30
	}
	if c.Mongo.URI == "" {
		c.Mongo.URI = os.Getenv("MONGO_URI")
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "hnradar"
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
