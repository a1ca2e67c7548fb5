package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List articles
// @Tags Articles
// @Produce json
// @Security ApiKeyAuth
// @Param category query string false "Article category"
// @Success 200 {array} ArticleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /articles [get]
func (h *Handler) listArticles(c *gin.Context) {
	log := h.logger.WithField("method", "listArticles")

	articles, err := h.articleService.ListArticles(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.fail(c, log, err, "Failed to list articles")
		return
	}
	c.JSON(http.StatusOK, ModelsToArticleResponses(articles))
}

// @Summary Fetch and correlate news now
// @Description Run one news ingestion pass outside the schedule. Requires API key.
// @Tags Articles
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} FetchResultResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /articles/fetch [post]
func (h *Handler) fetchArticles(c *gin.Context) {
	log := h.logger.WithField("method", "fetchArticles")

	saved, err := h.articleService.FetchAndMatch(c.Request.Context())
	if err != nil {
		h.fail(c, log, err, "Failed to fetch news")
		return
	}
	c.JSON(http.StatusOK, FetchResultResponse{
		Saved:    len(saved),
		Articles: ModelsToArticleResponses(saved),
	})
}

// @Summary Articles linked to an incident
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} ArticleResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/articles [get]
func (h *Handler) incidentArticles(c *gin.Context) {
	id, ok := pathID(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "incidentArticles").WithField("id", id)

	articles, err := h.articleService.IncidentArticles(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err, "Failed to list incident articles")
		return
	}
	c.JSON(http.StatusOK, ModelsToArticleResponses(articles))
}
