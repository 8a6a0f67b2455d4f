package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rohits-web03/usefulutilities/internal/services"
	"github.com/rohits-web03/usefulutilities/internal/utils"
)

// ReviewHandler exposes review submission and listing.
type ReviewHandler struct {
	reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type ReviewRequest struct {
	UserID      uint   `json:"userId"`
	UtilityName string `json:"utilityName"`
	Rating      int    `json:"rating"`
	Review      string `json:"review"`
}

// SubmitReview godoc
// @Summary Submit a review for a utility
// @Description Stores a rating and review text against an existing utility. Utilities only exist once they have been downloaded at least once.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param input body ReviewRequest true "Review input"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Utility not found"
// @Failure 500 {object} map[string]string
// @Router /api/review [post]
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var input ReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	err := h.reviews.Submit(input.UserID, input.UtilityName, input.Rating, input.Review)
	switch {
	case err == nil:
		// stored
	case errors.Is(err, services.ErrUtilityNotFound):
		utils.JSONError(w, http.StatusBadRequest, "Utility not found")
		return
	default:
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{"success": true})
}

// ListReviews godoc
// @Summary List reviews for a utility
// @Description Returns every review for the named utility with the reviewer's username. Unknown utilities yield an empty list.
// @Tags Reviews
// @Produce json
// @Param utility path string true "Utility name"
// @Success 200 {object} map[string][]services.ReviewEntry
// @Failure 500 {object} map[string]string
// @Router /api/reviews/{utility} [get]
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	utility := r.PathValue("utility")

	entries, err := h.reviews.List(utility)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONResponse(w, http.StatusOK, map[string]any{"reviews": entries})
}
