package services

import (
	"context"

	"hn-radar/dto"
	"hn-radar/models"
	"hn-radar/repositories"
)

// storyLister is the repository surface the archive listing needs.
type storyLister interface {
	List(ctx context.Context, in repositories.ListStoriesOptions) ([]models.Story, error)
	FindByHNID(ctx context.Context, hnID int64) (*models.Story, error)
}

// storyTextFinder loads extracted article text for the detail view.
type storyTextFinder interface {
	FindByStoryID(ctx context.Context, storyID interface{}) (*models.StoryText, error)
}

// ArchiveService reads archived stories from Mongo and maps them to DTOs.
type ArchiveService struct {
	stories storyLister
	texts   storyTextFinder
}

func NewArchiveService(stories storyLister, texts storyTextFinder) *ArchiveService {
	return &ArchiveService{stories: stories, texts: texts}
}

// ListArchiveInput controls archive pagination.
type ListArchiveInput struct {
	Page     int
	PageSize int
}

// List returns one page of archived stories ordered by descending score.
func (s *ArchiveService) List(ctx context.Context, in ListArchiveInput) ([]dto.ArchivedStory, error) {
	stories, err := s.stories.List(ctx, repositories.ListStoriesOptions{
		Page:     in.Page,
		PageSize: in.PageSize,
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.ArchivedStory, 0, len(stories))
	for _, st := range stories {
		out = append(out, dto.NewArchivedStory(st))
	}
	return out, nil
}

// GetByHNID returns one archived story with its extracted text attached
// when available.
func (s *ArchiveService) GetByHNID(ctx context.Context, hnID int64) (*dto.ArchivedStory, error) {
	st, err := s.stories.FindByHNID(ctx, hnID)
	if err != nil {
		return nil, err
	}

	d := dto.NewArchivedStory(*st)
	if st.Status.TextParsed {
		if txt, err := s.texts.FindByStoryID(ctx, st.ID); err == nil {
			d.PlainText = txt.PlainText
		}
	}
	return &d, nil
}
