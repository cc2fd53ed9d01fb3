package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reviewRepo "quickmed/database/repository/review"
	"quickmed/models"
	"quickmed/utils"
)

// latestReviewCount is how many reviews the teaser endpoint returns.
const latestReviewCount = 3

// ReviewHandler serves testimonials.
type ReviewHandler struct {
	Repo reviewRepo.ReviewRepository
}

// NewReviewHandler wires the review handler.
func NewReviewHandler(repo reviewRepo.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{Repo: repo}
}

// Upsert writes the review of one account (PUT /reviews/:email).
func (h *ReviewHandler) Upsert(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		utils.RespondError(c, utils.Errorf(utils.KindInvalidArgument, "invalid review payload"))
		return
	}

	if err := h.Repo.Upsert(c.Request.Context(), c.Param("email"), &review); err != nil {
		utils.RespondError(c, utils.InfraError("review write", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// ListAll returns every review, newest first (GET /reviews).
func (h *ReviewHandler) ListAll(c *gin.Context) {
	h.list(c, 0)
}

// ListLatest returns the newest reviews (GET /reviews_3).
func (h *ReviewHandler) ListLatest(c *gin.Context) {
	h.list(c, latestReviewCount)
}

func (h *ReviewHandler) list(c *gin.Context, limit int64) {
	reviews, err := h.Repo.List(c.Request.Context(), limit)
	if err != nil {
		utils.RespondError(c, utils.InfraError("review read", err))
		return
	}
	c.JSON(http.StatusOK, reviews)
}
