package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"shelter-dashboard/pkg/logger"
	"shelter-dashboard/pkg/middleware"
	"shelter-dashboard/services/adminapi/internal/entity"
	"shelter-dashboard/services/adminapi/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// formatPostResponse writes the record shape dashboard clients decode. Status travels as view.
func formatPostResponse(post *entity.Post) gin.H {
	response := gin.H{
		"id":           post.ID,
		"topic":        post.Topic,
		"htmlContent":  post.HTMLContent,
		"deltaContent": post.DeltaContent,
		"stamp":        post.CreatedAt.UTC().Format(time.RFC3339),
		"view":         post.View(),
		"thumbnail":    post.Thumbnail,
		"author_id":    post.AuthorID,
	}
	if post.CategoryID != "" {
		response["category_id"] = post.CategoryID
	}
	if post.Category != nil {
		response["categoryBlog"] = post.Category
	}
	return response
}

func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return n
}

// ListPosts godoc
// @Summary      List posts for moderation
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Zero-based page" default(0)
// @Param        size query int false "Page size (1-100)" default(20)
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /admin/posts [get]
func (h *AdminHandler) ListPosts(c *gin.Context) {
	page, err := h.adminUseCase.ListPosts(queryInt(c, "page", 0), queryInt(c, "size", usecase.DefaultPageSize))
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	content := make([]gin.H, len(page.Posts))
	for i, p := range page.Posts {
		content[i] = formatPostResponse(p)
	}

	c.JSON(http.StatusOK, gin.H{
		"content": content,
		"page":    page.Page,
		"size":    page.Size,
		"total":   page.Total,
	})
}

type ModerationRequest struct {
	Message string `json:"message"`
}

// ApprovePost godoc
// @Summary      Approve a post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body ModerationRequest false "Moderation message"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/posts/{id}/approve [put]
func (h *AdminHandler) ApprovePost(c *gin.Context) {
	var req ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.adminUseCase.ApprovePost(c.Param("id"), req.Message)
	if err != nil {
		h.respondError(c, err, "Failed to approve post")
		return
	}
	c.JSON(http.StatusOK, formatPostResponse(post))
}

// RejectPost godoc
// @Summary      Reject a post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body ModerationRequest false "Moderation message"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/posts/{id}/reject [put]
func (h *AdminHandler) RejectPost(c *gin.Context) {
	var req ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.adminUseCase.RejectPost(c.Param("id"), req.Message)
	if err != nil {
		h.respondError(c, err, "Failed to reject post")
		return
	}
	c.JSON(http.StatusOK, formatPostResponse(post))
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.NewPost true "Post"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /post/create [post]
func (h *AdminHandler) CreatePost(c *gin.Context) {
	var req entity.NewPost
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.adminUseCase.CreatePost(c.GetString(middleware.ContextUserID), req)
	if err != nil {
		h.respondError(c, err, "Failed to create post")
		return
	}
	c.JSON(http.StatusCreated, formatPostResponse(post))
}

// ListCategories godoc
// @Summary      List blog categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Category
// @Router       /category-blog [get]
func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.adminUseCase.ListCategories()
	if err != nil {
		h.logger.Error("Failed to list categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory godoc
// @Summary      Create a blog category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CategoryRequest true "Category"
// @Success      201  {object}  entity.Category
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /category-blog [post]
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.adminUseCase.CreateCategory(req.Name)
	if err != nil {
		h.respondError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *AdminHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, usecase.ErrCategoryNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrCategoryExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
	default:
		h.logger.Error("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// Register mounts moderation routes on admin and authoring routes on authors.
func (h *AdminHandler) Register(admin, authors *gin.RouterGroup) {
	admin.GET("/admin/posts", h.ListPosts)
	admin.PUT("/admin/posts/:id/approve", h.ApprovePost)
	admin.PUT("/admin/posts/:id/reject", h.RejectPost)

	authors.POST("/post/create", h.CreatePost)
	authors.GET("/category-blog", h.ListCategories)
	authors.POST("/category-blog", h.CreateCategory)
}
