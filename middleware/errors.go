// ABOUTME: JSON error bodies written by middleware
// ABOUTME: Keeps 429 responses in the same {error, code} shape the handlers use

package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/markalston/assetdex-dcim/models"
)

// RateLimitResponse is the body of a 429 response.
type RateLimitResponse struct {
	models.ErrorResponse
	RetryAfter int `json:"retry_after"`
}

// writeRateLimited answers 429 with a Retry-After header in whole seconds.
func writeRateLimited(w http.ResponseWriter, retrySeconds int) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", strconv.Itoa(retrySeconds))
	w.WriteHeader(http.StatusTooManyRequests)
	json.NewEncoder(w).Encode(RateLimitResponse{
		ErrorResponse: models.ErrorResponse{
			Error: "Rate limit exceeded",
			Code:  http.StatusTooManyRequests,
		},
		RetryAfter: retrySeconds,
	})
}
