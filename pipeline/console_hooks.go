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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nlpodyssey/research-pipeline-go/report"
)

// ConsoleHooks narrates pipeline progress to a writer, one line per event.
type ConsoleHooks struct {
	w io.Writer
}

// NewConsoleHooks returns hooks narrating to stdout.
func NewConsoleHooks() *ConsoleHooks {
	return NewConsoleHooksW(os.Stdout)
}

// NewConsoleHooksW returns hooks narrating to w.
func NewConsoleHooksW(w io.Writer) *ConsoleHooks {
	return &ConsoleHooks{w: w}
}

func (h *ConsoleHooks) OnPipelineStart(_ context.Context, topic string) error {
	_, err := fmt.Fprintf(h.w, "Starting research pipeline for: %s\n", topic)
	return err
}

func (h *ConsoleHooks) OnStageStart(_ context.Context, stage Stage) error {
	_, err := fmt.Fprintf(h.w, "%s agent working...\n", stageTitle(stage))
	return err
}

func (h *ConsoleHooks) OnStageEnd(context.Context, Stage, string) error {
	return nil
}

func (h *ConsoleHooks) OnPipelineEnd(_ context.Context, _ *report.Report) error {
	_, err := fmt.Fprintln(h.w, "Pipeline completed")
	return err
}

// stageTitle capitalizes the stage name for narration.
// Stage names are plain ASCII.
func stageTitle(stage Stage) string {
	s := string(stage)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
