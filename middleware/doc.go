// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, client IP) and completion (status,
duration_ms). Each request carries an ID taken from the X-Request-ID header
or generated with google/uuid, echoed back in the response header and
attached to both log lines.

# Text Responses

Write plain-text responses (used for server errors on the read path):

	middleware.TextResponse(w, http.StatusInternalServerError, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
