// Copyright (C) 2023-2026 Jure Cerar. Licensed under the GNU GPL v3.

package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientTimeout(t *testing.T) {
	client := NewClient(42*time.Second, false)
	assert.Equal(t, 42*time.Second, client.Timeout)
}

func TestNewClientVerifiesTLSByDefault(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	// The httptest certificate is self-signed, so a verifying client
	// must refuse it.
	client := NewClient(5*time.Second, false)
	_, err := client.Get(ts.URL)
	require.Error(t, err)
}

func TestNewClientInsecureSkipVerify(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(5*time.Second, true)
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
