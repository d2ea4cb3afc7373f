// Copyright 2025 RepurposeAI, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package api_test contains end-to-end tests of the HTTP transport: real
// multipart requests against the assembled router, assertions on status
// codes, headers, and response bodies.
package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/repurposeai/content-repurposer/internal/api"
	"github.com/repurposeai/content-repurposer/internal/config"
	"github.com/repurposeai/content-repurposer/internal/core/services"
	"github.com/repurposeai/content-repurposer/internal/core/workflow"
	"github.com/repurposeai/content-repurposer/internal/storage"
	test "github.com/repurposeai/content-repurposer/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestRouter assembles the router the same way the server binary does,
// on a fresh memory store. The returned store allows tests to look behind
// the transport.
func newTestRouter(cfg *config.Config) (*gin.Engine, storage.ResultStore) {
	store := storage.NewMemoryStore()
	synth := services.NewQuotaAwareSynthesizer(services.NewMockSynthesizer(cfg.Synthesizer), cfg.Synthesizer)
	wf := workflow.NewTranscribeWorkflow(cfg, synth, store)
	return api.NewRouter(cfg, wf, store), store
}

// multipartBody builds a multipart form with one file part named "file".
func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func assertCORSHeaders(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

// TestTranscribeEndpointSuccess uploads a two-megabyte video file and checks
// the full response envelope.
func TestTranscribeEndpointSuccess(t *testing.T) {
	router, store := newTestRouter(test.GetConfig())
	defer store.Close()

	body, contentType := multipartBody(t, "demo.mp4", make([]byte, 2*1024*1024))

	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assertCORSHeaders(t, w)

	var result map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.Equal(t, "completed", result["status"])
	assert.NotEmpty(t, result["project_id"])
	assert.NotEmpty(t, result["processing_time"])

	fileInfo := result["file_info"].(map[string]interface{})
	assert.Equal(t, "demo.mp4", fileInfo["filename"])
	assert.Equal(t, "MP4", fileInfo["format"])
	assert.Equal(t, "2.0 MB", fileInfo["estimated_size"])

	transcription := result["transcription"].(map[string]interface{})
	assert.Equal(t, "fr", transcription["language"])
	assert.Contains(t, transcription["text"], "demo.mp4")
	socialPosts := transcription["socialPosts"].(map[string]interface{})
	assert.Len(t, socialPosts, 3)
	assert.Contains(t, socialPosts, "twitter")
	assert.Contains(t, socialPosts, "linkedin")
	assert.Contains(t, socialPosts, "facebook")

	analysis := result["ai_analysis"].(map[string]interface{})
	assert.Equal(t, "educational", analysis["content_type"])
	assert.Equal(t, 8.7, analysis["engagement_score"])
	assert.Len(t, result["next_steps"], 4)
}

// TestTranscribeEndpointUnsupportedFormat checks the rejection of a text
// file, including the format enumeration in the error message.
func TestTranscribeEndpointUnsupportedFormat(t *testing.T) {
	router, store := newTestRouter(test.GetConfig())
	defer store.Close()

	body, contentType := multipartBody(t, "demo.txt", []byte("just text"))
	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertCORSHeaders(t, w)

	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Contains(t, envelope["error"], "Format de fichier non supporté")
	assert.Contains(t, envelope["error"], "MP4")
}

// TestTranscribeEndpointFileTooLarge runs the size gate with a lowered
// limit so the test does not need to allocate a hundred megabytes.
func TestTranscribeEndpointFileTooLarge(t *testing.T) {
	cfg := *test.GetConfig()
	cfg.Upload.MaxFileSizeBytes = 1024 * 1024
	router, store := newTestRouter(&cfg)
	defer store.Close()

	body, contentType := multipartBody(t, "big.mp4", make([]byte, 2*1024*1024))
	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Contains(t, envelope["error"], "Fichier trop volumineux")
	assert.Contains(t, envelope["error"], "1 MB")
}

// TestTranscribeEndpointFieldNameFallback posts file parts under field names
// other than "file" and checks that the part under the alphabetically first
// field is the one processed, on every attempt.
func TestTranscribeEndpointFieldNameFallback(t *testing.T) {
	router, store := newTestRouter(test.GetConfig())
	defer store.Close()

	for i := 0; i < 5; i++ {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("zeta", "second.mp4")
		assert.NoError(t, err)
		_, err = part.Write([]byte("b"))
		assert.NoError(t, err)
		part, err = writer.CreateFormFile("alpha", "first.mp4")
		assert.NoError(t, err)
		_, err = part.Write([]byte("a"))
		assert.NoError(t, err)
		assert.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var result map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		fileInfo := result["file_info"].(map[string]interface{})
		assert.Equal(t, "first.mp4", fileInfo["filename"])
	}
}

// TestTranscribeEndpointDeclaredNonVideoType posts a part whose declared
// content type names a non-video format.
func TestTranscribeEndpointDeclaredNonVideoType(t *testing.T) {
	router, store := newTestRouter(test.GetConfig())
	defer store.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="notes.mp4"`)
	header.Set("Content-Type", "text/plain")
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write([]byte("plain text"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Contains(t, envelope["error"], "Format de fichier non supporté")
}

// TestTranscribeEndpointMissingFile posts a multipart form with no file
// part.
func TestTranscribeEndpointMissingFile(t *testing.T) {
	router, store := newTestRouter(test.GetConfig())
	defer store.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	assert.NoError(t, writer.WriteField("note", "no file here"))
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Contains(t, envelope["error"], "Aucun fichier fourni")
}

// TestTranscribeEndpointInvalidContentType posts a JSON body instead of a
// multipart form.
func TestTranscribeEndpointInvalidContentType(t *testing.T) {
	router, store := newTestRouter(test.GetConfig())
	defer store.Close()

	req := httptest.NewRequest(http.MethodPost, "/transcribe", bytes.NewBufferString(`{"file":"demo.mp4"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Contains(t, envelope["error"], "Invalid content type")
}

// TestTranscribeEndpointWrongVerb checks the 405 answer and its message.
func TestTranscribeEndpointWrongVerb(t *testing.T) {
	router, store := newTestRouter(test.GetConfig())
	defer store.Close()

	req := httptest.NewRequest(http.MethodGet, "/transcribe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assertCORSHeaders(t, w)

	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Method not allowed. Use POST to upload files.", envelope["error"])
}

// TestTranscribeEndpointPreflight checks the OPTIONS answer: success, empty
// body, CORS headers present.
func TestTranscribeEndpointPreflight(t *testing.T) {
	router, store := newTestRouter(test.GetConfig())
	defer store.Close()

	req := httptest.NewRequest(http.MethodOptions, "/transcribe", nil)
	req.Header.Set("Origin", "https://example.org")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assertCORSHeaders(t, w)
}

// TestHealthEndpoint checks the liveness payload.
func TestHealthEndpoint(t *testing.T) {
	cfg := test.GetConfig()
	router, store := newTestRouter(cfg)
	defer store.Close()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assertCORSHeaders(t, w)

	var health map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, cfg.Application.Name, health["service"])
	assert.Equal(t, cfg.Application.Version, health["version"])
	assert.NotEmpty(t, health["timestamp"])
	assert.ElementsMatch(t, []interface{}{"health", "transcribe"}, health["functions"])
}

// TestResultsEndpoint uploads one file and fetches its cached result by job
// id, then checks the 404 answer for an unknown id.
func TestResultsEndpoint(t *testing.T) {
	router, store := newTestRouter(test.GetConfig())
	defer store.Close()

	body, contentType := multipartBody(t, "demo.webm", []byte("content"))
	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	jobID := result["project_id"].(string)

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/results/%s", jobID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var cached map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cached))
	assert.Equal(t, jobID, cached["project_id"])

	req = httptest.NewRequest(http.MethodGet, "/results/no-such-job", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
