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

// Package api implements the HTTP transport boundary of the pipeline: the
// transcribe endpoint, the health and results endpoints, and the uniform
// response envelope rules shared by all of them.
package api

import "github.com/gin-gonic/gin"

// EnvelopeHeaders stamps the cross-origin headers of the public contract on
// every response, success or failure, preflight included. The contract
// requires them unconditionally - also on same-origin requests that carry no
// Origin header - which is why this is a plain middleware rather than an
// Origin-reflecting CORS handler.
func EnvelopeHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Next()
	}
}
