package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"shelter-dashboard/pkg/httpclient"
	"shelter-dashboard/pkg/logger"
	"shelter-dashboard/pkg/middleware"
	"shelter-dashboard/services/dashboard/internal/entity"
	"shelter-dashboard/services/dashboard/internal/repo/remote"
	"shelter-dashboard/services/dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

// requestContext carries the caller's token and request id to the admin API.
func requestContext(c *gin.Context) context.Context {
	ctx := remote.WithToken(c.Request.Context(), c.GetString(middleware.ContextToken))
	return httpclient.WithRequestID(ctx, c.GetString(middleware.HeaderRequestID))
}

func formatPostResponse(post entity.Post) gin.H {
	return gin.H{
		"id":           post.ID,
		"topic":        post.Topic,
		"htmlContent":  post.HTMLContent,
		"deltaContent": post.DeltaContent,
		"stamp":        post.Stamp,
		"status":       post.Status.String(),
		"view":         post.WireView(),
		"thumbnail":    post.Thumbnail,
		"authorId":     post.AuthorID,
		"categoryBlog": post.Category,
	}
}

func formatPosts(posts []entity.Post) []gin.H {
	out := make([]gin.H, len(posts))
	for i, p := range posts {
		out[i] = formatPostResponse(p)
	}
	return out
}

func formatView(v usecase.View) gin.H {
	surface := gin.H{"kind": v.Surface.Kind.String()}
	switch v.Surface.Kind {
	case entity.SurfaceDetail:
		surface["post"] = formatPostResponse(v.Surface.Post)
	case entity.SurfaceApproval:
		surface["post"] = formatPostResponse(v.Surface.Post)
		surface["action"] = v.Surface.Action
	}
	return gin.H{
		"surface":           surface,
		"phase":             v.Phase.String(),
		"notice":            v.Notice,
		"creating_category": v.CreatingCategory,
	}
}

func formatDraft(st usecase.DraftState) gin.H {
	categoryID, _ := st.Draft.Category.ID()
	return gin.H{
		"draft": gin.H{
			"topic":        st.Draft.Topic,
			"htmlContent":  st.Draft.HTMLContent,
			"deltaContent": st.Draft.DeltaContent,
			"categoryId":   categoryID,
			"thumbnail":    st.Draft.ThumbnailURL,
		},
		"creating_category": st.CreatingCategory,
		"categories":        st.Categories,
	}
}

// respondError maps usecase errors onto status codes.
func (h *DashboardHandler) respondError(c *gin.Context, err error) {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": verr.Fields})
	case errors.Is(err, usecase.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, usecase.ErrActionInFlight), errors.Is(err, usecase.ErrNoActionChosen), errors.Is(err, usecase.ErrSessionClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrBackend):
		h.logger.Error("Admin API failure: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Unexpected dashboard error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// StartSession godoc
// @Summary      Mount the dashboard
// @Description  Fetch the first page of posts into a fresh session and return counters
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.Stats
// @Failure      502  {object}  map[string]string
// @Router       /dashboard/session [post]
func (h *DashboardHandler) StartSession(c *gin.Context) {
	stats, err := h.dashboardUseCase.StartSession(requestContext(c), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// EndSession godoc
// @Summary      Unmount the dashboard
// @Tags         dashboard
// @Security     BearerAuth
// @Success      204
// @Router       /dashboard/session [delete]
func (h *DashboardHandler) EndSession(c *gin.Context) {
	h.dashboardUseCase.EndSession(c.GetString(middleware.ContextUserID))
	c.Status(http.StatusNoContent)
}

// ListPosts godoc
// @Summary      List posts
// @Description  Filter the loaded posts by text and status
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        q query string false "Search text (topic, category, author)"
// @Param        status query string false "all, approved or pending" Enums(all, approved, pending)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /dashboard/posts [get]
func (h *DashboardHandler) ListPosts(c *gin.Context) {
	filter, ok := entity.ParseStatusFilter(c.Query("status"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	posts, err := h.dashboardUseCase.ListPosts(requestContext(c), c.GetString(middleware.ContextUserID), c.Query("q"), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": formatPosts(posts),
		"count": len(posts),
	})
}

// GetStats godoc
// @Summary      Post counters
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.Stats
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardUseCase.GetStats(requestContext(c), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// OpenPost godoc
// @Summary      Open post detail
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /dashboard/posts/{id} [get]
func (h *DashboardHandler) OpenPost(c *gin.Context) {
	view, err := h.dashboardUseCase.OpenPost(requestContext(c), c.GetString(middleware.ContextUserID), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, formatView(view))
}

type ChooseActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// ChooseAction godoc
// @Summary      Choose approve or reject
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body ChooseActionRequest true "approve or reject"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /dashboard/posts/{id}/actions [post]
func (h *DashboardHandler) ChooseAction(c *gin.Context) {
	var req ChooseActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	action, ok := entity.ParseAction(req.Action)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Action must be approve or reject"})
		return
	}

	view, err := h.dashboardUseCase.ChooseAction(requestContext(c), c.GetString(middleware.ContextUserID), c.Param("id"), action)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, formatView(view))
}

type ConfirmActionRequest struct {
	Message string `json:"message"`
}

// ConfirmAction godoc
// @Summary      Confirm the chosen action
// @Description  Sends the action to the admin API. An empty message uses the default text.
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ConfirmActionRequest false "Moderation message"
// @Success      200  {object}  entity.Notice
// @Failure      409  {object}  map[string]string
// @Failure      502  {object}  map[string]interface{}
// @Router       /dashboard/actions/confirm [post]
func (h *DashboardHandler) ConfirmAction(c *gin.Context) {
	var req ConfirmActionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notice, err := h.dashboardUseCase.ConfirmAction(requestContext(c), c.GetString(middleware.ContextUserID), req.Message)
	if err != nil {
		if errors.Is(err, usecase.ErrBackend) {
			h.logger.Error("Moderation failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": notice.Message, "notice": notice})
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notice)
}

// CancelAction godoc
// @Summary      Cancel the pending confirmation
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]string
// @Router       /dashboard/actions/cancel [post]
func (h *DashboardHandler) CancelAction(c *gin.Context) {
	view, err := h.dashboardUseCase.CancelAction(requestContext(c), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, formatView(view))
}

// GetSurface godoc
// @Summary      Current surface
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /dashboard/surface [get]
func (h *DashboardHandler) GetSurface(c *gin.Context) {
	view, err := h.dashboardUseCase.GetSurface(requestContext(c), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, formatView(view))
}

// CloseSurface godoc
// @Summary      Close the open surface
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]string
// @Router       /dashboard/surface [delete]
func (h *DashboardHandler) CloseSurface(c *gin.Context) {
	view, err := h.dashboardUseCase.CloseSurface(requestContext(c), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, formatView(view))
}

// OpenCreation godoc
// @Summary      Open the creation form
// @Description  Shows the creation surface and returns the cached or freshly fetched categories
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /dashboard/categories [get]
func (h *DashboardHandler) OpenCreation(c *gin.Context) {
	st, err := h.dashboardUseCase.OpenCreation(requestContext(c), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, formatDraft(st))
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CreateCategory godoc
// @Summary      Create a category inline
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCategoryRequest true "Category name"
// @Success      201  {object}  entity.CategoryBlog
// @Failure      400  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /dashboard/categories [post]
func (h *DashboardHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.dashboardUseCase.CreateCategory(requestContext(c), c.GetString(middleware.ContextUserID), req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

type SelectCategoryRequest struct {
	CategoryID string `json:"categoryId"`
}

// SelectCategory godoc
// @Summary      Select the draft category
// @Description  "__create_new__" opens the inline category form
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SelectCategoryRequest true "Category id"
// @Success      200  {object}  map[string]interface{}
// @Router       /dashboard/draft/category [put]
func (h *DashboardHandler) SelectCategory(c *gin.Context) {
	var req SelectCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := h.dashboardUseCase.SelectCategory(requestContext(c), c.GetString(middleware.ContextUserID), entity.ParseCategorySelection(req.CategoryID))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, formatDraft(st))
}

type CreatePostRequest struct {
	Topic        string `form:"topic" json:"topic"`
	HTMLContent  string `form:"htmlContent" json:"htmlContent"`
	DeltaContent string `form:"deltaContent" json:"deltaContent"`
	CategoryID   string `form:"categoryId" json:"categoryId"`
	Thumbnail    string `form:"thumbnail" json:"thumbnail"`
}

// CreatePost godoc
// @Summary      Submit a new post
// @Description  Accepts JSON or multipart form. A thumbnailFile upload replaces the thumbnail URL.
// @Tags         dashboard
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        topic formData string true "Topic"
// @Param        htmlContent formData string true "HTML content"
// @Param        deltaContent formData string false "Editor delta"
// @Param        categoryId formData string true "Category id"
// @Param        thumbnail formData string false "Thumbnail URL"
// @Param        thumbnailFile formData file false "Thumbnail image"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /dashboard/posts [post]
func (h *DashboardHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := usecase.Draft{
		Topic:        req.Topic,
		HTMLContent:  req.HTMLContent,
		DeltaContent: req.DeltaContent,
		Category:     entity.ParseCategorySelection(req.CategoryID),
		ThumbnailURL: req.Thumbnail,
	}

	if file, err := c.FormFile("thumbnailFile"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open thumbnail file"})
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read thumbnail file"})
			return
		}
		draft.ThumbnailFile = &usecase.Upload{Filename: file.Filename, Data: data}
	}

	post, err := h.dashboardUseCase.CreatePost(requestContext(c), c.GetString(middleware.ContextUserID), draft)
	if err != nil {
		if errors.Is(err, usecase.ErrBackend) {
			h.logger.Error("Failed to create post: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create post"})
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, formatPostResponse(post))
}

// Register mounts the dashboard routes on an authenticated group.
func (h *DashboardHandler) Register(g *gin.RouterGroup) {
	g.POST("/session", h.StartSession)
	g.DELETE("/session", h.EndSession)
	g.GET("/posts", h.ListPosts)
	g.POST("/posts", h.CreatePost)
	g.GET("/stats", h.GetStats)
	g.GET("/posts/:id", h.OpenPost)
	g.POST("/posts/:id/actions", h.ChooseAction)
	g.POST("/actions/confirm", h.ConfirmAction)
	g.POST("/actions/cancel", h.CancelAction)
	g.GET("/surface", h.GetSurface)
	g.DELETE("/surface", h.CloseSurface)
	g.GET("/categories", h.OpenCreation)
	g.POST("/categories", h.CreateCategory)
	g.PUT("/draft/category", h.SelectCategory)
}
