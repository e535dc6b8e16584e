// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-slide-form/internal/utils"
)

// CheckHTTPMethod is registered as both the NotFound and the MethodNotAllowed
// handler of the router. chi answers 405 when a path matches but the method
// does not; here such requests get 404 with the usual JSON error body, so
// owner-only methods of a form route are not advertised.
//
//	router.NotFound(CheckHTTPMethod)
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
