// ABOUTME: Handler for serving the OpenAPI description of the rack-space API
// ABOUTME: Embeds openapi.yaml at compile time and answers conditional requests by ETag

package handlers

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"net/http"
	"time"
)

//go:embed openapi.yaml
var openapiSpec []byte

var openapiETag = func() string {
	sum := sha256.Sum256(openapiSpec)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}()

// OpenAPISpec serves the embedded OpenAPI description. Clients that send
// the current ETag in If-None-Match get 304.
func (h *Handler) OpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("ETag", openapiETag)
	w.Header().Set("Cache-Control", "public, max-age=300")
	http.ServeContent(w, r, "openapi.yaml", time.Time{}, bytes.NewReader(openapiSpec))
}
