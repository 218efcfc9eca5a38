package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/docmarket/docmarket_backend/internal/core/ports/services"
	"github.com/docmarket/docmarket_backend/internal/dto"
	"github.com/docmarket/docmarket_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// communityHandler handles HTTP requests for the community feed.
type communityHandler struct {
	communityService portssvc.CommunitySvcFacade
}

func newCommunityHandler(cs portssvc.CommunitySvcFacade) *communityHandler {
	return &communityHandler{communityService: cs}
}

// registerCommunityRoutes registers the community feed routes.
func registerCommunityRoutes(rg *gin.RouterGroup, cs portssvc.CommunitySvcFacade) {
	h := newCommunityHandler(cs)

	community := rg.Group("/community")
	{
		community.POST("/posts", h.createPost)
		community.GET("/posts", h.listRecentPosts)
	}
}

// createPost godoc
// @Summary Post to the community feed
// @Description Records a post. Content matching a demand keyword also spawns a demand want-ad.
// @Tags community
// @Accept json
// @Produce json
// @Param post body dto.CreatePostRequest true "Post content"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create post"
// @Security BearerAuth
// @Router /community/posts [post]
func (h *communityHandler) createPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	post, demandCreated, err := h.communityService.CreatePost(c.Request.Context(), req, userID)
	if err != nil {
		logger.Error("Failed to create post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create post"})
		return
	}

	if demandCreated {
		logger.Info("Post spawned a demand", slog.String("post_id", post.PostID))
	}
	c.JSON(http.StatusCreated, dto.PostResponse{
		PostID:        post.PostID,
		UserID:        post.UserID,
		Content:       post.Content,
		CreatedAt:     post.CreatedAt,
		DemandCreated: demandCreated,
	})
}

// listRecentPosts godoc
// @Summary List recent community posts
// @Description Retrieves the latest posts, newest first.
// @Tags community
// @Produce json
// @Success 200 {array} dto.PostResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list posts"
// @Security BearerAuth
// @Router /community/posts [get]
func (h *communityHandler) listRecentPosts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	posts, err := h.communityService.ListRecentPosts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list posts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list posts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponses(posts))
}
