package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"hn-radar/cmd/api/handlers"
	"hn-radar/dto"
	"hn-radar/services"
)

type fakeLiveService struct {
	stories []dto.StorySummary
	detail  *dto.StoryDetail
	err     error
}

func (f *fakeLiveService) TopStories(ctx context.Context, limit int) ([]dto.StorySummary, error) {
	return f.stories, f.err
}

func (f *fakeLiveService) StoryByID(ctx context.Context, id int64) (*dto.StoryDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

func (f *fakeLiveService) MaxLimit() int { return 30 }

type fakeArchive struct {
	items []dto.ArchivedStory
	one   *dto.ArchivedStory
	err   error
}

func (f *fakeArchive) List(ctx context.Context, in services.ListArchiveInput) ([]dto.ArchivedStory, error) {
	return f.items, f.err
}

func (f *fakeArchive) GetByHNID(ctx context.Context, hnID int64) (*dto.ArchivedStory, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.one, nil
}

func newTestRouter(live handlers.LiveStoryService, archive handlers.ArchiveReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/stories/top", handlers.TopStoriesHandler(live))
	api.GET("/stories/:id", handlers.GetStoryHandler(live))
	api.GET("/archive", handlers.ListArchiveHandler(archive))
	api.GET("/archive/:id", handlers.GetArchivedStoryHandler(archive))
	return r
}

func TestTopStoriesHandler_OK(t *testing.T) {
	live := &fakeLiveService{stories: []dto.StorySummary{
		{ID: 2921983, Title: "Ask HN: Who is hiring?", Score: 260},
		{ID: 8863, Title: "My YC app: Dropbox", Score: 111, By: "dhouston"},
	}}
	r := newTestRouter(live, &fakeArchive{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/stories/top?limit=30", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res []dto.StorySummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 2, len(res))
	assert.Equal(t, int64(2921983), res[0].ID)
	assert.Equal(t, "dhouston", res[1].By)
}

func TestTopStoriesHandler_UpstreamError(t *testing.T) {
	live := &fakeLiveService{err: errors.New("load top stories: connection refused")}
	r := newTestRouter(live, &fakeArchive{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/stories/top", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var res map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, res["error"], "connection refused")
}

func TestGetStoryHandler(t *testing.T) {
	live := &fakeLiveService{detail: &dto.StoryDetail{
		StorySummary: dto.StorySummary{ID: 8863, Title: "My YC app: Dropbox", Score: 111},
	}}
	r := newTestRouter(live, &fakeArchive{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/stories/8863", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res dto.StoryDetail
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, int64(8863), res.ID)
}

func TestGetStoryHandler_BadID(t *testing.T) {
	r := newTestRouter(&fakeLiveService{}, &fakeArchive{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/stories/not-a-number", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStoryHandler_NotFound(t *testing.T) {
	r := newTestRouter(&fakeLiveService{err: errors.New("not found")}, &fakeArchive{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/stories/99999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListArchiveHandler(t *testing.T) {
	archive := &fakeArchive{items: []dto.ArchivedStory{
		{HNID: 8863, Title: "My YC app: Dropbox", Score: 111},
	}}
	r := newTestRouter(&fakeLiveService{}, archive)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/archive?page=1&page_size=20", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res []dto.ArchivedStory
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 1, len(res))
	assert.Equal(t, int64(8863), res[0].HNID)
}

func TestGetArchivedStoryHandler_NotFound(t *testing.T) {
	r := newTestRouter(&fakeLiveService{}, &fakeArchive{err: errors.New("mongo: no documents in result")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/archive/123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
