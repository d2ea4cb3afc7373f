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

// Package model defines the core data structures of the pipeline. This file
// contains the request-scoped, in-memory types that exist only while a single
// upload travels through the workflow. They are never serialized to a caller
// and never outlive the request that created them.
package model

// UploadRequest describes one incoming file part as declared by the client.
// It is created by the transport boundary when the multipart body is parsed
// and discarded when the pipeline completes or fails. Nothing in it is
// trusted until the validator has run.
type UploadRequest struct {
	Filename         string // Name from the part's content-disposition header.
	DeclaredMimeType string // Content type declared on the part header, e.g. "video/mp4".
	ByteSize         int64  // Size of the part in bytes, >= 0.
	Head             []byte // Optional leading bytes of the file for magic-number sniffing. May be empty.
}

// ValidatedUpload is the output of the upload validator: the same request
// metadata after it has passed the policy gate, with the extension normalized
// to its lowercase, dot-free form.
type ValidatedUpload struct {
	Filename  string // The original filename, unchanged.
	Extension string // Normalized extension, e.g. "mp4". Always a member of the allow-list.
	ByteSize  int64  // Declared size in bytes.
}
