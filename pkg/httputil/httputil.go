// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

package httputil

import (
	"encoding/json"
	"net/http"
)

// ErrorJSON is returned with "application/json" content type and non-2XX status code.
type ErrorJSON struct {
	Message string `json:"message"`
}

// WriteJSON writes v as JSON with the status code ec.
func WriteJSON(w http.ResponseWriter, v any, ec int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ec)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorJSON with the status code ec.
func WriteError(w http.ResponseWriter, message string, ec int) {
	WriteJSON(w, ErrorJSON{Message: message}, ec)
}
