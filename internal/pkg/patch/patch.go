package patch

import (
	"bytes"
	"encoding/json"
	"net/http"

	"hotelbooking/internal/pkg/apperror"
)

// ErrMalformed is returned when the change-set is not a JSON object.
var ErrMalformed = apperror.New(http.StatusBadRequest, "malformed patch document")

// Apply merges a sparse JSON change-set into dst. dst must be a pointer to a
// document struct pre-filled from the stored entity, so that fields absent
// from the change-set keep their current values. Pointer fields that are
// explicitly null in the change-set are cleared; value fields ignore null.
func Apply(doc json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrMalformed
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return apperror.Wrap(err, http.StatusBadRequest, "malformed patch document")
	}
	return nil
}
