package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hn-radar/dto"
	"hn-radar/services"
)

// LiveStoryService is the live story surface the handlers depend on.
type LiveStoryService interface {
	TopStories(ctx context.Context, limit int) ([]dto.StorySummary, error)
	StoryByID(ctx context.Context, id int64) (*dto.StoryDetail, error)
	MaxLimit() int
}

// ArchiveReader is the archive surface the handlers depend on.
type ArchiveReader interface {
	List(ctx context.Context, in services.ListArchiveInput) ([]dto.ArchivedStory, error)
	GetByHNID(ctx context.Context, hnID int64) (*dto.ArchivedStory, error)
}

// TopStoriesHandler godoc
// @Summary      List top stories
// @Description  Fetches the current top stories live from Hacker News, sorted by descending score
// @Tags         stories
// @Param        limit  query  int  false  "Number of stories (<= configured max, default max)"
// @Produce      json
// @Success      200  {array}  dto.StorySummary
// @Failure      502  {object}  map[string]string
// @Router       /stories/top [get]
func TopStoriesHandler(svc LiveStoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

		stories, err := svc.TopStories(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stories)
	}
}

// GetStoryHandler godoc
// @Summary      Get story by id
// @Description  Fetches a single story live from Hacker News
// @Tags         stories
// @Param        id   path   int  true  "Hacker News story ID"
// @Produce      json
// @Success      200  {object}  dto.StoryDetail
// @Failure      404  {object}  map[string]string
// @Router       /stories/{id} [get]
func GetStoryHandler(svc LiveStoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story id"})
			return
		}

		story, err := svc.StoryByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, story)
	}
}

// ListArchiveHandler godoc
// @Summary      List archived stories
// @Description  Lists archived stories with pagination, sorted by descending score
// @Tags         archive
// @Param        page       query  int  false  "Page number (1-based)"
// @Param        page_size  query  int  false  "Page size (<=100)"
// @Produce      json
// @Success      200  {array}  dto.ArchivedStory
// @Router       /archive [get]
func ListArchiveHandler(svc ArchiveReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListArchiveInput
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

		items, err := svc.List(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetArchivedStoryHandler godoc
// @Summary      Get archived story
// @Description  Returns one archived story by Hacker News ID, including extracted article text when present
// @Tags         archive
// @Param        id   path   int  true  "Hacker News story ID"
// @Produce      json
// @Success      200  {object}  dto.ArchivedStory
// @Failure      404  {object}  map[string]string
// @Router       /archive/{id} [get]
func GetArchivedStoryHandler(svc ArchiveReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid story id"})
			return
		}

		story, err := svc.GetByHNID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, story)
	}
}
