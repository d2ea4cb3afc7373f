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

// This file defines the upload validation gate. It is the first command of
// the pipeline and the only one allowed to inspect an unvalidated request:
// nothing downstream (allocation, synthesis, assembly) runs until the upload
// has passed the policy here.
//
// Validation order, cheapest first:
//  1. A file part must be present.
//  2. The declared size must not exceed the configured maximum.
//  3. The extension, matched case-insensitively against the allow-list,
//     must be one of the accepted video formats.
//  4. A declared part content type, when present and specific, must be a
//     video type. The generic application/octet-stream passes.
//  5. When leading bytes of the file are available, their magic number must
//     not identify a non-video type. Unknown content passes; the validator
//     never decodes the file.
package commands

import (
	"strings"

	"github.com/h2non/filetype"

	"github.com/repurposeai/content-repurposer/internal/config"
	"github.com/repurposeai/content-repurposer/internal/core/cor"
	"github.com/repurposeai/content-repurposer/internal/core/model"
)

// displayNames maps allow-listed extensions to the names used in the
// user-facing format enumeration.
var displayNames = map[string]string{
	"mp4":  "MP4",
	"avi":  "AVI",
	"mov":  "MOV",
	"webm": "WebM",
	"mkv":  "MKV",
	"flv":  "FLV",
}

// FormatDisplayName returns the user-facing name for an allow-listed
// extension, falling back to the uppercased extension for values without a
// dedicated spelling.
func FormatDisplayName(ext string) string {
	if name, ok := displayNames[ext]; ok {
		return name
	}
	return strings.ToUpper(ext)
}

// acceptedFormats renders the allow-list as the comma-separated enumeration
// embedded in the UnsupportedFormat message, e.g. "MP4, AVI, MOV, WebM, MKV, FLV".
func acceptedFormats(policy config.Upload) string {
	names := make([]string, 0, len(policy.AllowedExtensions))
	for _, ext := range policy.AllowedExtensions {
		names = append(names, FormatDisplayName(ext))
	}
	return strings.Join(names, ", ")
}

// ValidateUpload applies the upload policy to a request and returns the
// validated form, or a *model.PipelineError describing the first rule the
// request broke. It inspects declared metadata and the optional sniff bytes
// only; it never buffers or decodes file content.
func ValidateUpload(req *model.UploadRequest, policy config.Upload) (*model.ValidatedUpload, error) {
	if req == nil || req.Filename == "" {
		return nil, model.NewMissingFileError()
	}

	if req.ByteSize > policy.MaxFileSizeBytes {
		return nil, model.NewFileTooLargeError(policy.MaxFileSizeBytes)
	}

	ext := normalizeExtension(req.Filename)
	allowed := false
	for _, e := range policy.AllowedExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, model.NewUnsupportedFormatError(acceptedFormats(policy))
	}

	// Declared content type: browsers send video/* for video files and the
	// generic application/octet-stream when they cannot tell. Only a part
	// that declares a specific non-video type is rejected.
	if mt := strings.ToLower(strings.TrimSpace(req.DeclaredMimeType)); mt != "" &&
		mt != "application/octet-stream" && !strings.HasPrefix(mt, "video/") {
		return nil, model.NewUnsupportedFormatError(acceptedFormats(policy))
	}

	// Magic-number check: only reject content positively identified as
	// something other than video. Unrecognized bytes stay accepted because
	// absence of a known signature proves nothing.
	if len(req.Head) > 0 {
		if kind, err := filetype.Match(req.Head); err == nil && kind != filetype.Unknown && !filetype.IsVideo(req.Head) {
			return nil, model.NewUnsupportedFormatError(acceptedFormats(policy))
		}
	}

	return &model.ValidatedUpload{
		Filename:  req.Filename,
		Extension: ext,
		ByteSize:  req.ByteSize,
	}, nil
}

// normalizeExtension extracts the lowercase extension without the leading
// dot from a filename. A name without a dot yields "".
func normalizeExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// UploadValidator is the command wrapper around ValidateUpload. It reads the
// *model.UploadRequest from the chain input and publishes the validated
// upload under ValidatedUploadParam.
type UploadValidator struct {
	cor.BaseCommand
	policy config.Upload
}

// NewUploadValidator constructs the validation command with the given policy.
func NewUploadValidator(name string, policy config.Upload) *UploadValidator {
	out := &UploadValidator{BaseCommand: *cor.NewBaseCommand(name), policy: policy}
	out.OutputParamName = ValidatedUploadParam
	return out
}

// Execute validates the request and either publishes the validated upload or
// records the validation error, stopping the chain.
func (v *UploadValidator) Execute(context cor.Context) {
	req, ok := context.Get(v.GetInputParam()).(*model.UploadRequest)
	if !ok {
		v.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(v.GetName(), model.NewMissingFileError())
		return
	}

	validated, err := ValidateUpload(req, v.policy)
	if err != nil {
		v.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(v.GetName(), err)
		return
	}

	v.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(v.GetOutputParam(), validated)
	context.Add(cor.CtxOut, validated)
}
