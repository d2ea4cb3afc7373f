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

// Package cor (Chain of Responsibility) provides the building blocks for
// request workflows. A workflow is a Chain of Commands; each Command reads its
// input from a shared Context, does one unit of work, and writes its output
// back for the next Command. The interfaces here keep the framework open to
// alternative implementations of commands, chains, and contexts.
package cor

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CtxIn and CtxOut are the keys used for the primary data flow in a chain.
const (
	// CtxIn is the default key for a command's primary input. The chain
	// populates it with the output of the previous command.
	CtxIn = "__IN__"
	// CtxOut is the default key where a command places its primary output.
	// The chain moves the value to CtxIn before the next command runs.
	CtxOut = "__OUT__"
)

// Context is the shared state object passed through a chain of commands. It
// carries data, errors, and the request-scoped Go context for one workflow
// execution.
type Context interface {
	// SetContext sets the standard Go context, used for cancellation and
	// trace propagation.
	SetContext(context context.Context)

	// GetContext retrieves the standard Go context.
	GetContext() context.Context

	// Add stores a key-value pair. It returns the Context for fluent chaining.
	Add(key string, value interface{}) Context

	// AddError records an error, keyed by the command name that produced it.
	AddError(key string, err error)

	// GetErrors returns all errors collected during the workflow.
	GetErrors() map[string]error

	// FirstError returns one of the recorded errors, or nil when the
	// workflow succeeded. With fail-fast chains there is at most one.
	FirstError() error

	// Get retrieves a value by its key, or nil when absent.
	Get(key string) interface{}

	// Remove deletes a key-value pair.
	Remove(key string)

	// HasErrors reports whether any error has been recorded.
	HasErrors() bool
}

// Executable is implemented by anything with a core execution step.
type Executable interface {
	// Execute runs the business logic, reading inputs from and writing
	// outputs to the given Context.
	Execute(context Context)
}

// Command is an atomic, testable, thread-safe unit of work and the
// fundamental building block of a workflow.
type Command interface {
	Executable

	// GetName returns the unique name of the command, used for logging,
	// error keys, and telemetry.
	GetName() string

	// GetInputParam returns the context key holding the command's input.
	GetInputParam() string

	// GetOutputParam returns the context key receiving the command's output.
	GetOutputParam() string

	// IsExecutable is the precondition check run before Execute.
	IsExecutable(context Context) bool

	// GetTracer returns the OpenTelemetry tracer for this command.
	GetTracer() trace.Tracer

	// GetMeter returns the OpenTelemetry meter for this command.
	GetMeter() metric.Meter

	// GetSuccessCounter returns the counter incremented on success.
	GetSuccessCounter() metric.Int64Counter

	// GetErrorCounter returns the counter incremented on failure.
	GetErrorCounter() metric.Int64Counter
}

// Chain is a sequence of commands. A Chain is itself a Command, so chains can
// be nested inside other chains.
type Chain interface {
	Command

	// ContinueOnFailure configures whether the chain keeps executing after
	// a command records an error. The default is to stop.
	ContinueOnFailure(bool) Chain

	// AddCommand appends a command to the execution sequence.
	AddCommand(command Command) Chain
}
