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

// This file defines the route handlers and the router assembly.
//
// HTTP contract:
//
//	POST    /transcribe   multipart upload -> 200 AnalysisResult JSON,
//	                      400 validation, 405 wrong verb, 500 synthesis/internal
//	OPTIONS /transcribe   preflight -> 200, empty body
//	GET     /health       liveness -> 200 health JSON
//	GET     /results/:id  cached result by job id -> 200 or 404
//
// Failures use the envelope {"error": string, "details"?: string}; details
// appear only in development mode.
package api

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/repurposeai/content-repurposer/internal/config"
	"github.com/repurposeai/content-repurposer/internal/core/model"
	"github.com/repurposeai/content-repurposer/internal/core/workflow"
	"github.com/repurposeai/content-repurposer/internal/storage"
)

// sniffLength is how many leading bytes of the upload are read for the
// magic-number check. 261 bytes covers every signature the matcher knows.
const sniffLength = 261

// Handler carries the dependencies of the HTTP endpoints.
type Handler struct {
	cfg       *config.Config
	workflow  *workflow.TranscribeWorkflow
	store     storage.ResultStore
	startedAt time.Time
}

// NewRouter builds the gin engine with the full middleware stack and route
// table. It is used by both the server binary and the transport tests, so
// the two always exercise the same router.
func NewRouter(cfg *config.Config, wf *workflow.TranscribeWorkflow, store storage.ResultStore) *gin.Engine {
	h := &Handler{cfg: cfg, workflow: wf, store: store, startedAt: time.Now()}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.Application.Name))
	r.Use(EnvelopeHeaders())

	// Wrong verbs on a known route must answer 405, not 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(h.MethodNotAllowed)

	r.POST("/transcribe", h.Transcribe)
	r.OPTIONS("/transcribe", h.Preflight)
	r.GET("/health", h.Health)
	r.OPTIONS("/health", h.Preflight)
	r.GET("/results/:id", h.GetResult)

	return r
}

// Transcribe handles the upload-to-result cycle for one file. It parses the
// multipart body into an UploadRequest, runs the pipeline, and serializes
// either the result or the error envelope.
func (h *Handler) Transcribe(c *gin.Context) {
	if !strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
		h.writeError(c, model.NewInvalidContentTypeError())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		// The reference client posts the part as "file", but accept a file
		// part under any field name, as the original service did. Field
		// names are sorted so the same request always selects the same part.
		if form, formErr := c.MultipartForm(); formErr == nil {
			names := make([]string, 0, len(form.File))
			for name, headers := range form.File {
				if len(headers) > 0 {
					names = append(names, name)
				}
			}
			sort.Strings(names)
			if len(names) > 0 {
				fileHeader = form.File[names[0]][0]
			}
		}
		if fileHeader == nil {
			h.writeError(c, model.NewMissingFileError())
			return
		}
	}

	req := &model.UploadRequest{
		Filename:         fileHeader.Filename,
		DeclaredMimeType: fileHeader.Header.Get("Content-Type"),
		ByteSize:         fileHeader.Size,
		Head:             readHead(fileHeader),
	}

	result, err := h.workflow.Run(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, model.AsPipelineError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// readHead returns up to sniffLength leading bytes of the upload, or nil
// when the part cannot be read. A missing head only disables the
// magic-number check; it never fails the request.
func readHead(fileHeader *multipart.FileHeader) []byte {
	part, err := fileHeader.Open()
	if err != nil {
		return nil
	}
	defer part.Close()

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(part, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil
	}
	return head[:n]
}

// Health reports process identity and liveness. It does no pipeline work.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"service":     h.cfg.Application.Name,
		"version":     h.cfg.Application.Version,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.cfg.Application.Environment,
		"functions":   []string{"health", "transcribe"},
		"uptime":      time.Since(h.startedAt).Seconds(),
	})
}

// GetResult serves a cached analysis result by job id.
func (h *Handler) GetResult(c *gin.Context) {
	result, err := h.store.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Résultat introuvable"})
			return
		}
		slog.ErrorContext(c.Request.Context(), "result lookup failed", "error", err)
		h.writeError(c, model.NewInternalError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// Preflight answers cross-origin preflight requests: success, empty body.
// The envelope middleware has already attached the CORS headers.
func (h *Handler) Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

// MethodNotAllowed answers requests that hit a known path with the wrong
// verb.
func (h *Handler) MethodNotAllowed(c *gin.Context) {
	if c.Request.URL.Path == "/transcribe" {
		h.writeError(c, model.NewMethodNotAllowedError())
		return
	}
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}

// writeError serializes a pipeline error as the uniform envelope. Internal
// diagnostic detail is attached only in development mode; production callers
// only ever see the locale-appropriate message.
func (h *Handler) writeError(c *gin.Context, pe *model.PipelineError) {
	if pe.Kind == model.ErrKindSynthesisFailed || pe.Kind == model.ErrKindInternal {
		slog.ErrorContext(c.Request.Context(), "pipeline failure", "error", pe.Error())
	}
	body := gin.H{"error": pe.Message}
	if h.cfg.IsDevelopment() && pe.Err != nil {
		body["details"] = pe.Err.Error()
	}
	c.JSON(pe.HTTPStatus(), body)
}
