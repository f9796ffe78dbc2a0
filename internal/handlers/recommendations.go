package handlers

import (
	"net/http"
	"strings"

	"studio-backoffice/internal/adsapi"
	"studio-backoffice/internal/middleware"
	"studio-backoffice/internal/models"
	"studio-backoffice/internal/storage"
	"studio-backoffice/internal/validate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RecommendationHandler struct {
	Store   *storage.Store
	Applier adsapi.Applier
	Log     *zap.Logger

	// AutoApplyEnabled gates the pending -> auto_applied path; even when
	// on, critical-priority items always wait for a human.
	AutoApplyEnabled bool
}

func NewRecommendationHandler(store *storage.Store, applier adsapi.Applier, autoApply bool, log *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{Store: store, Applier: applier, AutoApplyEnabled: autoApply, Log: log}
}

func (h *RecommendationHandler) List(c *gin.Context) {
	recs, err := h.Store.ListRecommendations(storage.RecommendationFilter{
		Status:   models.RecStatus(c.Query("status")),
		Priority: models.RecPriority(c.Query("priority")),
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, recs)
}

func (h *RecommendationHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	rec, err := h.Store.GetRecommendation(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, http.StatusOK, rec)
}

// Approve resolves the recommendation, then pushes the mutation to the ads
// platform. The resolution is committed before the push: an upstream failure
// is reported but never un-approves the record.
func (h *RecommendationHandler) Approve(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	rec, err := h.Store.ResolveRecommendation(id, models.RecApproved, &actor.ID, "")
	if err != nil {
		respondStoreError(c, err)
		return
	}
	h.Store.Audit(actor.ID, "recommendation", rec.ID, "approve", "approved: "+rec.Type)

	if err := h.Applier.Apply(c.Request.Context(), rec); err != nil {
		h.Log.Error("ads apply failed after approval",
			zap.Uint("recommendation_id", rec.ID),
			zap.Error(err))
		respondStoreError(c, err)
		return
	}

	respondOK(c, http.StatusOK, rec)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *RecommendationHandler) Reject(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	actor, _ := middleware.ActorFrom(c)

	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Reason) == "" {
		respondValidation(c, validate.Errors{{Field: "reason", Message: "required"}})
		return
	}

	rec, err := h.Store.ResolveRecommendation(id, models.RecRejected, &actor.ID, strings.TrimSpace(req.Reason))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	h.Store.Audit(actor.ID, "recommendation", rec.ID, "reject", "rejected: "+req.Reason)
	respondOK(c, http.StatusOK, rec)
}

// SubmitFromAnalyzer is the automation entry point (service token, not a
// session). Auto-applicable submissions go straight to auto_applied when
// policy allows.
func (h *RecommendationHandler) SubmitFromAnalyzer(c *gin.Context) {
	var req validate.RecommendationSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	rec, errs := validate.Recommendation(req)
	if errs != nil {
		respondValidation(c, errs)
		return
	}

	if err := h.Store.CreateRecommendation(rec); err != nil {
		respondStoreError(c, err)
		return
	}

	service := c.GetString("service")
	h.Log.Info("recommendation submitted",
		zap.String("service", service),
		zap.String("type", rec.Type),
		zap.String("priority", string(rec.Priority)))

	if h.shouldAutoApply(rec) {
		applied, err := h.Store.ResolveRecommendation(rec.ID, models.RecAutoApplied, nil, "")
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if err := h.Applier.Apply(c.Request.Context(), applied); err != nil {
			h.Log.Error("ads auto-apply failed",
				zap.Uint("recommendation_id", applied.ID),
				zap.Error(err))
			respondStoreError(c, err)
			return
		}
		respondOK(c, http.StatusCreated, applied)
		return
	}

	respondOK(c, http.StatusCreated, rec)
}

func (h *RecommendationHandler) shouldAutoApply(rec *models.Recommendation) bool {
	return h.AutoApplyEnabled && rec.AutoApplicable && rec.Priority != models.RecCritical
}
