// Copyright (C) 2023-2026 Jure Cerar. Licensed under the GNU GPL v3.

// Package httputil builds the HTTP client shared by the database hosts.
package httputil

import (
	"crypto/tls"
	"net/http"
	"time"
)

// NewClient returns the client used for the whole run: per-request timeout
// set, redirects followed, and TLS verification optionally disabled for
// use behind intercepting proxies.
func NewClient(timeout time.Duration, insecureSkipVerify bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecureSkipVerify {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{}
		}
		transport.TLSClientConfig.InsecureSkipVerify = true
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
