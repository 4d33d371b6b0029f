// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(data)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name                 string
		acceptEncoding       string
		contentEncoding      string
		requestBody          []byte
		compressRequestBody  bool
		expectedStatus       int
		checkResponseGzipped bool
		checkRequestDecoded  bool
	}{
		{
			name:                 "compress response when client accepts gzip",
			acceptEncoding:       "gzip",
			expectedStatus:       http.StatusOK,
			checkResponseGzipped: true,
		},
		{
			name:           "no compression when client doesn't accept gzip",
			acceptEncoding: "",
			expectedStatus: http.StatusOK,
		},
		{
			name:                 "accept-encoding with multiple values including gzip",
			acceptEncoding:       "deflate, gzip, br",
			expectedStatus:       http.StatusOK,
			checkResponseGzipped: true,
		},
		{
			name:                "decompress gzipped request body",
			contentEncoding:     "gzip",
			requestBody:         []byte(`{"title": "buy milk"}`),
			compressRequestBody: true,
			expectedStatus:      http.StatusOK,
			checkRequestDecoded: true,
		},
		{
			name:            "invalid gzip request body is rejected",
			contentEncoding: "gzip",
			requestBody:     []byte("definitely not gzip"),
			expectedStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenBody []byte
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Body != nil {
					seenBody, _ = io.ReadAll(r.Body)
					r.Body.Close()
				}
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("Hello, World!"))
			})

			body := tt.requestBody
			if tt.compressRequestBody {
				body = gzipCompress(t, tt.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(body))
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			if tt.checkRequestDecoded {
				assert.Equal(t, tt.requestBody, seenBody)
			}

			if tt.expectedStatus != http.StatusOK {
				return
			}

			if tt.checkResponseGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				gr, err := gzip.NewReader(rr.Body)
				require.NoError(t, err)
				decoded, err := io.ReadAll(gr)
				require.NoError(t, err)
				assert.Equal(t, "Hello, World!", string(decoded))
			} else {
				assert.Equal(t, "Hello, World!", rr.Body.String())
			}
		})
	}
}

// TestGZip_RoundTrip verifies gzip request decoding and response encoding
// in a single call, the way a compressing API client behaves.
func TestGZip_RoundTrip(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		w.Write(bytes.ToUpper(body))
	})

	payload := gzipCompress(t, []byte("round trip"))
	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(payload))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	gr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	decoded, err := io.ReadAll(gr)
	require.NoError(t, err)
	assert.Equal(t, "ROUND TRIP", string(decoded))
	assert.False(t, strings.Contains(rr.Header().Get("Content-Encoding"), "identity"))
}
