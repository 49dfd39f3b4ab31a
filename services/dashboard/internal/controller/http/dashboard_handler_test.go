package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"shelter-dashboard/pkg/logger"
	"shelter-dashboard/pkg/middleware"
	"shelter-dashboard/services/dashboard/internal/entity"
	"shelter-dashboard/services/dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDashboardUseCase is a mock implementation of DashboardUseCase
type MockDashboardUseCase struct {
	mock.Mock
}

func (m *MockDashboardUseCase) StartSession(ctx context.Context, reviewerID string) (usecase.Stats, error) {
	args := m.Called(reviewerID)
	return args.Get(0).(usecase.Stats), args.Error(1)
}

func (m *MockDashboardUseCase) EndSession(reviewerID string) bool {
	args := m.Called(reviewerID)
	return args.Bool(0)
}

func (m *MockDashboardUseCase) ListPosts(ctx context.Context, reviewerID, query string, filter entity.StatusFilter) ([]entity.Post, error) {
	args := m.Called(reviewerID, query, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Post), args.Error(1)
}

func (m *MockDashboardUseCase) GetStats(ctx context.Context, reviewerID string) (usecase.Stats, error) {
	args := m.Called(reviewerID)
	return args.Get(0).(usecase.Stats), args.Error(1)
}

func (m *MockDashboardUseCase) OpenPost(ctx context.Context, reviewerID, postID string) (usecase.View, error) {
	args := m.Called(reviewerID, postID)
	return args.Get(0).(usecase.View), args.Error(1)
}

func (m *MockDashboardUseCase) ChooseAction(ctx context.Context, reviewerID, postID string, action entity.Action) (usecase.View, error) {
	args := m.Called(reviewerID, postID, action)
	return args.Get(0).(usecase.View), args.Error(1)
}

func (m *MockDashboardUseCase) ConfirmAction(ctx context.Context, reviewerID, message string) (entity.Notice, error) {
	args := m.Called(reviewerID, message)
	return args.Get(0).(entity.Notice), args.Error(1)
}

func (m *MockDashboardUseCase) CancelAction(ctx context.Context, reviewerID string) (usecase.View, error) {
	args := m.Called(reviewerID)
	return args.Get(0).(usecase.View), args.Error(1)
}

func (m *MockDashboardUseCase) GetSurface(ctx context.Context, reviewerID string) (usecase.View, error) {
	args := m.Called(reviewerID)
	return args.Get(0).(usecase.View), args.Error(1)
}

func (m *MockDashboardUseCase) CloseSurface(ctx context.Context, reviewerID string) (usecase.View, error) {
	args := m.Called(reviewerID)
	return args.Get(0).(usecase.View), args.Error(1)
}

func (m *MockDashboardUseCase) ListCategories(ctx context.Context, reviewerID string) ([]entity.CategoryBlog, error) {
	args := m.Called(reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CategoryBlog), args.Error(1)
}

func (m *MockDashboardUseCase) CreateCategory(ctx context.Context, reviewerID, name string) (entity.CategoryBlog, error) {
	args := m.Called(reviewerID, name)
	return args.Get(0).(entity.CategoryBlog), args.Error(1)
}

func (m *MockDashboardUseCase) OpenCreation(ctx context.Context, reviewerID string) (usecase.DraftState, error) {
	args := m.Called(reviewerID)
	return args.Get(0).(usecase.DraftState), args.Error(1)
}

func (m *MockDashboardUseCase) SelectCategory(ctx context.Context, reviewerID string, sel entity.CategorySelection) (usecase.DraftState, error) {
	args := m.Called(reviewerID, sel)
	return args.Get(0).(usecase.DraftState), args.Error(1)
}

func (m *MockDashboardUseCase) CreatePost(ctx context.Context, reviewerID string, draft usecase.Draft) (entity.Post, error) {
	args := m.Called(reviewerID, draft)
	return args.Get(0).(entity.Post), args.Error(1)
}

var _ usecase.DashboardUseCase = (*MockDashboardUseCase)(nil)

const reviewerID = "reviewer-123"

func setupTestRouter(uc usecase.DashboardUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewDashboardHandler(uc, logger.NewNop())
	g := r.Group("/api/v1/dashboard", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, reviewerID)
		c.Set(middleware.ContextToken, "token-abc")
		c.Next()
	})
	handler.Register(g)
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestListPosts_EncodesWireView(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	posts := []entity.Post{
		{ID: "p1", Topic: "Biscuit", Status: entity.StatusPending, Category: entity.CategoryBlog{ID: "c1", Name: "Adoption"}},
		{ID: "p2", Topic: "Fair", Status: entity.StatusApproved, Views: 7},
	}
	mockUseCase.On("ListPosts", reviewerID, "bis", entity.FilterPending).Return(posts, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/dashboard/posts?q=bis&status=pending", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, float64(2), resp["count"])
	items := resp["posts"].([]interface{})
	first := items[0].(map[string]interface{})
	second := items[1].(map[string]interface{})
	assert.Equal(t, float64(0), first["view"])
	assert.Equal(t, "pending", first["status"])
	assert.Equal(t, "Adoption", first["categoryBlog"].(map[string]interface{})["name"])
	assert.Equal(t, float64(7), second["view"])
	assert.Equal(t, "approved", second["status"])
	mockUseCase.AssertExpectations(t)
}

func TestListPosts_InvalidStatus(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	w := doJSON(router, http.MethodGet, "/api/v1/dashboard/posts?status=archived", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "ListPosts", mock.Anything, mock.Anything, mock.Anything)
}

func TestStartSession(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	mockUseCase.On("StartSession", reviewerID).Return(usecase.Stats{Total: 3, Approved: 1, Pending: 2}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/dashboard/session", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":3,"approved":1,"pending":2}`, w.Body.String())
}

func TestStartSession_BackendDown(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	mockUseCase.On("StartSession", reviewerID).Return(usecase.Stats{}, fmt.Errorf("%w: boom", usecase.ErrBackend))

	w := doJSON(router, http.MethodPost, "/api/v1/dashboard/session", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestEndSession(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	mockUseCase.On("EndSession", reviewerID).Return(true)

	w := doJSON(router, http.MethodDelete, "/api/v1/dashboard/session", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestOpenPost_NotFound(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	mockUseCase.On("OpenPost", reviewerID, "missing").Return(usecase.View{}, usecase.ErrPostNotFound)

	w := doJSON(router, http.MethodGet, "/api/v1/dashboard/posts/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChooseAction(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	post := entity.Post{ID: "p1", Topic: "Biscuit"}
	view := usecase.View{Surface: entity.ApprovalSurface(post, entity.ActionApprove), Phase: entity.PhaseAwaitingConfirmation}
	mockUseCase.On("ChooseAction", reviewerID, "p1", entity.ActionApprove).Return(view, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/dashboard/posts/p1/actions", gin.H{"action": "Approve"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "awaiting_confirmation", resp["phase"])
	surface := resp["surface"].(map[string]interface{})
	assert.Equal(t, "approval", surface["kind"])
	assert.Equal(t, "approve", surface["action"])
}

func TestChooseAction_InvalidAction(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	w := doJSON(router, http.MethodPost, "/api/v1/dashboard/posts/p1/actions", gin.H{"action": "archive"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmAction_EmptyBody(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	notice := entity.Notice{Level: entity.NoticeSuccess, Message: "Post approved", PostID: "p1", Action: entity.ActionApprove}
	mockUseCase.On("ConfirmAction", reviewerID, "").Return(notice, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/dashboard/actions/confirm", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", decode(t, w)["level"])
}

func TestConfirmAction_InFlight(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	mockUseCase.On("ConfirmAction", reviewerID, "ok").Return(entity.Notice{}, usecase.ErrActionInFlight)

	w := doJSON(router, http.MethodPost, "/api/v1/dashboard/actions/confirm", gin.H{"message": "ok"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestConfirmAction_BackendFailure(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	notice := entity.Notice{Level: entity.NoticeError, Message: "Failed to reject post", PostID: "p1", Action: entity.ActionReject}
	mockUseCase.On("ConfirmAction", reviewerID, "").Return(notice, fmt.Errorf("%w: 500", usecase.ErrBackend))

	w := doJSON(router, http.MethodPost, "/api/v1/dashboard/actions/confirm", gin.H{})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Failed to reject post", decode(t, w)["error"])
}

func TestCancelAction_NothingChosen(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	mockUseCase.On("CancelAction", reviewerID).Return(usecase.View{}, usecase.ErrNoActionChosen)

	w := doJSON(router, http.MethodPost, "/api/v1/dashboard/actions/cancel", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetSurface_Closed(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	mockUseCase.On("GetSurface", reviewerID).Return(usecase.View{Surface: entity.ClosedSurface()}, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/dashboard/surface", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "idle", resp["phase"])
	assert.Equal(t, map[string]interface{}{"kind": "closed"}, resp["surface"])
}

func TestCreateCategory_Validation(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	verr := &usecase.ValidationError{Fields: map[string]string{"name": "Category name is required"}}
	mockUseCase.On("CreateCategory", reviewerID, "").Return(entity.CategoryBlog{}, verr)

	w := doJSON(router, http.MethodPost, "/api/v1/dashboard/categories", gin.H{"name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Category name is required", resp["fields"].(map[string]interface{})["name"])
}

func TestSelectCategory_CreateNew(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	mockUseCase.On("SelectCategory", reviewerID, entity.CreateNewCategory()).
		Return(usecase.DraftState{CreatingCategory: true}, nil)

	w := doJSON(router, http.MethodPut, "/api/v1/dashboard/draft/category", gin.H{"categoryId": entity.CreateNewCategoryValue})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, true, resp["creating_category"])
	assert.Equal(t, "", resp["draft"].(map[string]interface{})["categoryId"])
}

func TestCreatePost_JSON(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	draft := usecase.Draft{
		Topic:        "Kittens",
		HTMLContent:  "<p>hi</p>",
		Category:     entity.ExistingCategory("c1"),
		ThumbnailURL: "https://img.example.org/k.png",
	}
	created := entity.Post{ID: "new-1", Topic: "Kittens", Status: entity.StatusPending}
	mockUseCase.On("CreatePost", reviewerID, draft).Return(created, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/dashboard/posts", gin.H{
		"topic":       "Kittens",
		"htmlContent": "<p>hi</p>",
		"categoryId":  "c1",
		"thumbnail":   "https://img.example.org/k.png",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "new-1", resp["id"])
	assert.Equal(t, float64(0), resp["view"])
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_MultipartWithThumbnail(t *testing.T) {
	mockUseCase := new(MockDashboardUseCase)
	router := setupTestRouter(mockUseCase)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("topic", "Kittens")
	_ = mw.WriteField("htmlContent", "<p>hi</p>")
	_ = mw.WriteField("categoryId", "c1")
	fw, err := mw.CreateFormFile("thumbnailFile", "k.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("png-bytes"))
	require.NoError(t, mw.Close())

	mockUseCase.On("CreatePost", reviewerID, mock.MatchedBy(func(d usecase.Draft) bool {
		return d.ThumbnailFile != nil && d.ThumbnailFile.Filename == "k.png" && string(d.ThumbnailFile.Data) == "png-bytes"
	})).Return(entity.Post{ID: "new-2"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/posts", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_Failures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", &usecase.ValidationError{Fields: map[string]string{"topic": "Topic is required"}}, http.StatusBadRequest},
		{"backend", fmt.Errorf("%w: down", usecase.ErrBackend), http.StatusBadGateway},
		{"unexpected", errors.New("weird"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := new(MockDashboardUseCase)
			router := setupTestRouter(mockUseCase)
			mockUseCase.On("CreatePost", reviewerID, mock.Anything).Return(entity.Post{}, tt.err)

			w := doJSON(router, http.MethodPost, "/api/v1/dashboard/posts", gin.H{"topic": ""})
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
