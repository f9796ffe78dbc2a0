package handlers

import (
	"net/http"
	"strings"

	"studio-backoffice/internal/middleware"
	"studio-backoffice/internal/models"
	"studio-backoffice/internal/storage"
	"studio-backoffice/internal/validate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler covers the portfolio and blog collections shown on the
// public site and edited from the admin panel.
type ContentHandler struct {
	Store *storage.Store
	Log   *zap.Logger
}

func NewContentHandler(store *storage.Store, log *zap.Logger) *ContentHandler {
	return &ContentHandler{Store: store, Log: log}
}

// ---- portfolio ----

type portfolioRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Summary   string `json:"summary"`
	ImageURL  string `json:"image_url"`
	Published bool   `json:"published"`
}

func (r portfolioRequest) validate() validate.Errors {
	var errs validate.Errors
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, validate.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(r.Slug) == "" {
		errs = append(errs, validate.FieldError{Field: "slug", Message: "required"})
	}
	return errs
}

func (h *ContentHandler) ListPortfolio(c *gin.Context) {
	items, err := h.Store.ListPortfolio(c.Query("published") == "true")
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, items)
}

func (h *ContentHandler) CreatePortfolioItem(c *gin.Context) {
	var req portfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if errs := req.validate(); errs != nil {
		respondValidation(c, errs)
		return
	}

	item := &models.PortfolioItem{
		Title:     strings.TrimSpace(req.Title),
		Slug:      strings.TrimSpace(req.Slug),
		Summary:   req.Summary,
		ImageURL:  req.ImageURL,
		Published: req.Published,
	}
	if err := h.Store.CreatePortfolioItem(item); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, item)
}

func (h *ContentHandler) UpdatePortfolioItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req portfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if errs := req.validate(); errs != nil {
		respondValidation(c, errs)
		return
	}

	item, err := h.Store.UpdatePortfolioItem(id, func(i *models.PortfolioItem) {
		i.Title = strings.TrimSpace(req.Title)
		i.Slug = strings.TrimSpace(req.Slug)
		i.Summary = req.Summary
		i.ImageURL = req.ImageURL
		i.Published = req.Published
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, item)
}

func (h *ContentHandler) DeletePortfolioItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Store.DeletePortfolioItem(id); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

type reorderRequest struct {
	IDs []uint `json:"ids"`
}

// ReorderPortfolio takes the complete ordered id list from the drag-and-drop
// UI and persists it atomically.
func (h *ContentHandler) ReorderPortfolio(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	if err := h.Store.ReorderPortfolio(req.IDs); err != nil {
		respondStoreError(c, err)
		return
	}

	if actor, ok := middleware.ActorFrom(c); ok {
		h.Store.Audit(actor.ID, "portfolio", 0, "reorder", "portfolio reordered")
	}
	respondOK(c, http.StatusOK, gin.H{"reordered": true})
}

// ---- blog ----

type blogPostRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Summary   string `json:"summary"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

func (r blogPostRequest) validate() validate.Errors {
	var errs validate.Errors
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, validate.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(r.Slug) == "" {
		errs = append(errs, validate.FieldError{Field: "slug", Message: "required"})
	}
	return errs
}

// GetBlogPost is the public detail endpoint; unpublished drafts stay
// invisible here and answer 404.
func (h *ContentHandler) GetBlogPost(c *gin.Context) {
	post, err := h.Store.GetBlogPostBySlug(c.Param("slug"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if !post.Published {
		respondError(c, http.StatusNotFound, "not_found", "record not found")
		return
	}
	respondOK(c, http.StatusOK, post)
}

func (h *ContentHandler) ListBlogPosts(c *gin.Context) {
	posts, err := h.Store.ListBlogPosts(c.Query("published") == "true")
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, posts)
}

func (h *ContentHandler) CreateBlogPost(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if errs := req.validate(); errs != nil {
		respondValidation(c, errs)
		return
	}

	post := &models.BlogPost{
		Title:     strings.TrimSpace(req.Title),
		Slug:      strings.TrimSpace(req.Slug),
		Summary:   req.Summary,
		Body:      req.Body,
		AuthorID:  actor.ID,
		Published: req.Published,
	}
	if err := h.Store.CreateBlogPost(post); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, post)
}

func (h *ContentHandler) UpdateBlogPost(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if errs := req.validate(); errs != nil {
		respondValidation(c, errs)
		return
	}

	post, err := h.Store.UpdateBlogPost(id, func(p *models.BlogPost) {
		p.Title = strings.TrimSpace(req.Title)
		p.Slug = strings.TrimSpace(req.Slug)
		p.Summary = req.Summary
		p.Body = req.Body
		p.Published = req.Published
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, post)
}

func (h *ContentHandler) DeleteBlogPost(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteBlogPost(id); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *ContentHandler) ReorderBlogPosts(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	if err := h.Store.ReorderBlogPosts(req.IDs); err != nil {
		respondStoreError(c, err)
		return
	}

	if actor, ok := middleware.ActorFrom(c); ok {
		h.Store.Audit(actor.ID, "blog", 0, "reorder", "blog posts reordered")
	}
	respondOK(c, http.StatusOK, gin.H{"reordered": true})
}
