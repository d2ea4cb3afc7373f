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

// This file defines the pipeline's error taxonomy. Every failure path in the
// pipeline is terminal and maps to exactly one ErrorKind, which the transport
// boundary converts into the uniform error envelope with the right HTTP
// status. User-facing messages follow the deployment locale of the reference
// system (French), except the two transport guards, which keep the exact
// historical English wording of the public contract.
package model

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind enumerates the terminal failure classes of the pipeline.
type ErrorKind int

const (
	// ErrKindMissingFile - no file part was found in the multipart body.
	ErrKindMissingFile ErrorKind = iota
	// ErrKindFileTooLarge - the declared or actual size exceeds the policy maximum.
	ErrKindFileTooLarge
	// ErrKindUnsupportedFormat - the extension is not in the allow-list.
	ErrKindUnsupportedFormat
	// ErrKindInvalidContentType - the request body is not multipart/form-data.
	ErrKindInvalidContentType
	// ErrKindMethodNotAllowed - wrong HTTP verb for the route.
	ErrKindMethodNotAllowed
	// ErrKindSynthesisFailed - the analysis backend raised an error or was unreachable.
	ErrKindSynthesisFailed
	// ErrKindInternal - any other unexpected failure.
	ErrKindInternal
)

// PipelineError is the error type produced by every pipeline stage. Message
// is safe to show to callers; Err carries the internal diagnostic cause and
// is only exposed in development mode.
type PipelineError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to the response status of the HTTP contract:
// 400 for validation failures, 405 for a wrong verb, 500 otherwise.
func (e *PipelineError) HTTPStatus() int {
	switch e.Kind {
	case ErrKindMissingFile, ErrKindFileTooLarge, ErrKindUnsupportedFormat, ErrKindInvalidContentType:
		return http.StatusBadRequest
	case ErrKindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// AsPipelineError extracts a *PipelineError from err, wrapping unknown errors
// as internal ones with the generic user-facing message so no internal detail
// leaks by accident.
func AsPipelineError(err error) *PipelineError {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe
	}
	return NewInternalError(err)
}

// NewMissingFileError reports an upload with no file part.
func NewMissingFileError() *PipelineError {
	return &PipelineError{
		Kind:    ErrKindMissingFile,
		Message: "Aucun fichier fourni. Veuillez joindre un fichier vidéo.",
	}
}

// NewFileTooLargeError reports an upload above the policy maximum. The
// message carries the configured limit, rounded to whole megabytes.
func NewFileTooLargeError(maxBytes int64) *PipelineError {
	return &PipelineError{
		Kind:    ErrKindFileTooLarge,
		Message: fmt.Sprintf("Fichier trop volumineux. Taille maximale: %d MB", maxBytes/(1024*1024)),
	}
}

// NewUnsupportedFormatError reports a file extension outside the allow-list.
// The message enumerates the accepted formats by their display names.
func NewUnsupportedFormatError(acceptedFormats string) *PipelineError {
	return &PipelineError{
		Kind:    ErrKindUnsupportedFormat,
		Message: fmt.Sprintf("Format de fichier non supporté. Formats acceptés: %s", acceptedFormats),
	}
}

// NewInvalidContentTypeError reports a request body that is not
// multipart/form-data.
func NewInvalidContentTypeError() *PipelineError {
	return &PipelineError{
		Kind:    ErrKindInvalidContentType,
		Message: "Invalid content type. Please upload a video file using multipart/form-data.",
	}
}

// NewMethodNotAllowedError reports a wrong HTTP verb on the transcribe route.
func NewMethodNotAllowedError() *PipelineError {
	return &PipelineError{
		Kind:    ErrKindMethodNotAllowed,
		Message: "Method not allowed. Use POST to upload files.",
	}
}

// NewSynthesisFailedError wraps a failure of the analysis backend.
func NewSynthesisFailedError(err error) *PipelineError {
	return &PipelineError{
		Kind:    ErrKindSynthesisFailed,
		Message: "Erreur lors du traitement du fichier. Veuillez réessayer.",
		Err:     err,
	}
}

// NewInternalError wraps any unexpected failure behind the generic
// user-facing message.
func NewInternalError(err error) *PipelineError {
	return &PipelineError{
		Kind:    ErrKindInternal,
		Message: "Erreur lors du traitement du fichier. Veuillez réessayer.",
		Err:     err,
	}
}
