package handlers

import (
	"context"
	"fmt"
	"time"

	"hn-radar/cmd/processor/quota"
	"hn-radar/events"
	"hn-radar/logger"
	"hn-radar/models"
	"hn-radar/parser"
	"hn-radar/renderer"
	"hn-radar/repositories"
	"hn-radar/summarizer"
)

// eventPublisher is the dispatch surface the pipeline needs for its
// stage-completion events.
type eventPublisher interface {
	PublishStoryTextParsed(ctx context.Context, story *models.Story, wordCount int, thumbnailURL string) error
	PublishStorySummarized(ctx context.Context, story *models.Story, summary models.AISummary) error
}

// StoryHandlers processes story pipeline events: render the linked article,
// extract text and thumbnail, then summarize within the quota. Each
// completed stage is announced on the bus.
type StoryHandlers struct {
	storyRepo  *repositories.StoryRepository
	textRepo   *repositories.StoryTextRepository
	aiLogRepo  *repositories.AILogRepository
	summarizer *summarizer.Summarizer
	quota      *quota.SummaryQuotaLimiter
	events     eventPublisher
}

func NewStoryHandlers(
	storyRepo *repositories.StoryRepository,
	textRepo *repositories.StoryTextRepository,
	aiLogRepo *repositories.AILogRepository,
	sum *summarizer.Summarizer,
	quotaLimiter *quota.SummaryQuotaLimiter,
	events eventPublisher,
) *StoryHandlers {
	return &StoryHandlers{
		storyRepo:  storyRepo,
		textRepo:   textRepo,
		aiLogRepo:  aiLogRepo,
		summarizer: sum,
		quota:      quotaLimiter,
		events:     events,
	}
}

// HandleStoryDiscovered runs the full enrichment pipeline for a newly
// archived story. Text-only submissions (Ask HN etc.) carry no URL and are
// marked processed without rendering.
func (h *StoryHandlers) HandleStoryDiscovered(ctx context.Context, event *events.StoryDiscoveredEvent) error {
	logger.Log.Infof("handling StoryDiscovered for %d: %s", event.HNID, event.Title)

	story, err := h.storyRepo.FindByHNID(ctx, event.HNID)
	if err != nil {
		return fmt.Errorf("failed to load story %d: %w", event.HNID, err)
	}
	flags := story.Status

	if flags.TextParsed && flags.AISummarized {
		logger.Log.Infof("story %d already processed, skipping", event.HNID)
		return nil
	}

	if event.URL == "" {
		// Nothing to render; leave the flags so the archive shows the
		// story as text-less rather than pending.
		flags.TextParsed = true
		flags.AISummarized = true
		return h.storyRepo.UpdateStatusFlags(ctx, story.ID, flags)
	}

	var plainText string
	if !flags.TextParsed {
		parsed, err := h.parseStory(ctx, story, event.URL)
		if err != nil {
			return err
		}
		plainText = parsed.plainText
		flags.TextParsed = true
		if err := h.storyRepo.UpdateStatusFlags(ctx, story.ID, flags); err != nil {
			return err
		}
		if err := h.events.PublishStoryTextParsed(ctx, story, parsed.wordCount, parsed.thumbnailURL); err != nil {
			// the stored text is the source of truth, the event is a trail
			logger.Log.Warnf("failed to publish StoryTextParsed for %d: %v", story.HNID, err)
		}
	} else {
		txt, err := h.textRepo.FindByStoryID(ctx, story.ID)
		if err != nil {
			return fmt.Errorf("text flag set but story_texts missing for %d: %w", event.HNID, err)
		}
		plainText = txt.PlainText
	}

	if flags.AISummarized {
		return nil
	}

	allowed, err := h.quota.WaitAndReserve(ctx)
	if err != nil {
		return err
	}
	if !allowed {
		logger.Log.Warnf("summary daily quota exceeded, skipping summarization for %d", event.HNID)
		return nil
	}

	summary, err := h.summarizeStory(ctx, story, plainText)
	if err != nil {
		return err
	}
	flags.AISummarized = true
	if err := h.storyRepo.UpdateStatusFlags(ctx, story.ID, flags); err != nil {
		return err
	}
	if err := h.events.PublishStorySummarized(ctx, story, *summary); err != nil {
		logger.Log.Warnf("failed to publish StorySummarized for %d: %v", story.HNID, err)
	}
	return nil
}

// parsedStory is what one parse stage produced.
type parsedStory struct {
	plainText    string
	wordCount    int
	thumbnailURL string
}

// parseStory renders the article page, extracts plain text and thumbnail
// and stores both.
func (h *StoryHandlers) parseStory(ctx context.Context, story *models.Story, url string) (*parsedStory, error) {
	htmlStr, err := renderer.RenderHTML(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to render HTML for %s: %w", url, err)
	}

	parsed, err := parser.ParseArticleOfHTML(htmlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse article for %s: %w", url, err)
	}

	wordCount := len([]rune(parsed.PlainTextContent))
	if _, err := h.textRepo.UpsertByStory(ctx, &models.StoryText{
		StoryID:   story.ID,
		PlainText: parsed.PlainTextContent,
		WordCount: wordCount,
		ParsedAt:  time.Now(),
	}); err != nil {
		return nil, fmt.Errorf("failed to upsert story_text: %w", err)
	}

	thumbnailURL := parsed.TopImage
	if thumbnailURL == "" {
		// Thumbnail failures are non-fatal.
		if thumb, err := parser.ParseTopImageFromHTML(htmlStr, url); err == nil {
			thumbnailURL = thumb
		}
	}
	if thumbnailURL != "" {
		if err := h.storyRepo.UpdateThumbnailURL(ctx, story.ID, thumbnailURL); err != nil {
			logger.Log.Warnf("failed to update thumbnail for %d: %v", story.HNID, err)
		}
	}

	logger.Log.Infof("parsed article text for %d: %s", story.HNID, url)
	return &parsedStory{
		plainText:    parsed.PlainTextContent,
		wordCount:    wordCount,
		thumbnailURL: thumbnailURL,
	}, nil
}

// summarizeStory calls the LLM and stores the summary snapshot plus an
// audit log entry. It returns the stored summary.
func (h *StoryHandlers) summarizeStory(ctx context.Context, story *models.Story, plainText string) (*models.AISummary, error) {
	requestedAt := time.Now()
	result, err := h.summarizer.SummarizeText(ctx, plainText)
	completedAt := time.Now()

	aiLog := models.AILog{
		StoryID:     story.ID,
		Model:       h.summarizer.ModelName(),
		DurationMs:  completedAt.Sub(requestedAt).Milliseconds(),
		Success:     err == nil && result != nil && !result.IsFailure,
		RequestedAt: requestedAt,
		CompletedAt: completedAt,
	}
	if result != nil {
		aiLog.ResponseExcerpt = result.SummaryShort
	}
	if _, logErr := h.aiLogRepo.Insert(ctx, aiLog); logErr != nil {
		logger.Log.Warnf("failed to insert AI log for %d: %v", story.HNID, logErr)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to summarize story %d: %w", story.HNID, err)
	}
	if result.IsFailure {
		return nil, fmt.Errorf("summarization refused for story %d (blocked content)", story.HNID)
	}

	summary := models.AISummary{
		Tags:         result.Tags,
		SummaryShort: result.SummaryShort,
		SummaryLong:  result.SummaryLong,
		ModelName:    h.summarizer.ModelName(),
		GeneratedAt:  completedAt,
	}
	if err := h.storyRepo.UpdateAISummary(ctx, story.ID, summary); err != nil {
		return nil, fmt.Errorf("failed to update AI summary for %d: %w", story.HNID, err)
	}

	logger.Log.Infof("summarized story %d with %s", story.HNID, summary.ModelName)
	return &summary, nil
}
