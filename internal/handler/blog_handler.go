package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/glinthive/site-backend/internal/model"
	"github.com/glinthive/site-backend/internal/response"
	"github.com/glinthive/site-backend/internal/service"
)

// BlogHandler handles public and admin blog endpoints.
type BlogHandler struct {
	blogService *service.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// blogResult is the acknowledgement returned by writes.
type blogResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Blog    *model.BlogPost `json:"blog,omitempty"`
}

// CreateBlog godoc
// POST /api/blog/create
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var req model.CreateBlogRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.blogService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, blogResult{Success: true, Message: "Blog created", Blog: post})
}

// ListPublished godoc
// GET /api/blog
// Returns every published post, newest first.
func (h *BlogHandler) ListPublished(c *gin.Context) {
	posts, err := h.blogService.ListPublished(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts)
}

// GetBySlug godoc
// GET /api/blog/:slug
// Returns a published post. Drafts and unknown slugs are 404.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.blogService.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// GetByID godoc
// GET /api/blog/id/:id
// Returns a post in any status for the admin editor.
func (h *BlogHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	post, err := h.blogService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// UpdateBlog godoc
// PUT /api/blog/:id
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateBlogRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.blogService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, blogResult{Success: true, Message: "Blog updated", Blog: post})
}

// DeleteBlog godoc
// DELETE /api/blog/:id
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, blogResult{Success: true})
}

// ListAll godoc
// GET /api/admin/blogs?page=1&per_page=20
// Returns posts in every status for the admin dashboard.
func (h *BlogHandler) ListAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))

	result, err := h.blogService.ListAll(c.Request.Context(), page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"blogs":      result.Blogs,
		"pagination": response.NewPagination(result.Page, result.PerPage, result.Total),
	})
}
