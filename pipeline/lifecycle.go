// Copyright 2026 The NLP Odyssey Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pipeline

import (
	"context"

	"github.com/nlpodyssey/research-pipeline-go/report"
)

// Hooks is implemented by an object that receives callbacks on various
// lifecycle events in a pipeline run. A non-nil error returned by any hook
// aborts the run.
type Hooks interface {
	// OnPipelineStart is called once, before the first stage runs.
	OnPipelineStart(ctx context.Context, topic string) error

	// OnStageStart is called before each stage invokes the model.
	OnStageStart(ctx context.Context, stage Stage) error

	// OnStageEnd is called after a stage's model invocation succeeds.
	OnStageEnd(ctx context.Context, stage Stage, output string) error

	// OnPipelineEnd is called once, after the last stage, with the assembled
	// report.
	OnPipelineEnd(ctx context.Context, report *report.Report) error
}

type NoOpHooks struct{}

func (NoOpHooks) OnPipelineStart(context.Context, string) error {
	return nil
}
func (NoOpHooks) OnStageStart(context.Context, Stage) error {
	return nil
}
func (NoOpHooks) OnStageEnd(context.Context, Stage, string) error {
	return nil
}
func (NoOpHooks) OnPipelineEnd(context.Context, *report.Report) error {
	return nil
}
