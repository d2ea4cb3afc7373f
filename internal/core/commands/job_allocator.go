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

package commands

import (
	"github.com/google/uuid"

	"github.com/repurposeai/content-repurposer/internal/core/cor"
)

// JobAllocator assigns the opaque job identifier that names the result of an
// accepted upload. Identifiers are random 128-bit UUID strings: statistically
// unique within the process lifetime, safe to allocate concurrently, and
// never reused. The allocator runs after validation so that rejected uploads
// never consume an identifier.
type JobAllocator struct {
	cor.BaseCommand
}

// NewJobAllocator constructs the allocation command.
func NewJobAllocator(name string) *JobAllocator {
	out := &JobAllocator{BaseCommand: *cor.NewBaseCommand(name)}
	out.OutputParamName = JobIDParam
	return out
}

// IsExecutable only requires a live Go context; allocation has no data
// dependency on earlier commands.
func (j *JobAllocator) IsExecutable(context cor.Context) bool {
	return context != nil && context.GetContext() != nil
}

// Execute publishes a fresh job id under JobIDParam.
func (j *JobAllocator) Execute(context cor.Context) {
	j.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(j.GetOutputParam(), AllocateJobID())
}

// AllocateJobID returns a new opaque job identifier.
func AllocateJobID() string {
	return uuid.NewString()
}
