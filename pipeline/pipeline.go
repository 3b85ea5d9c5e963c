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
	"log/slog"

	"github.com/nlpodyssey/research-pipeline-go/model"
	"github.com/nlpodyssey/research-pipeline-go/report"
)

// Pipeline chains the research, analysis and summary agents over a single
// model. Stages run strictly in order, each consuming the outputs of the
// previous ones.
type Pipeline struct {
	hooks    Hooks
	research *ResearchAgent
	analysis *AnalysisAgent
	summary  *SummaryAgent
}

// New returns a Pipeline whose three agents all invoke m.
func New(m model.Model) *Pipeline {
	return &Pipeline{
		hooks:    NoOpHooks{},
		research: NewResearchAgent(m),
		analysis: NewAnalysisAgent(m),
		summary:  NewSummaryAgent(m),
	}
}

// WithHooks sets the lifecycle hooks and returns the pipeline.
// Nil hooks are ignored.
func (p *Pipeline) WithHooks(hooks Hooks) *Pipeline {
	if hooks != nil {
		p.hooks = hooks
	}
	return p
}

// Run executes the three stages for topic and assembles the report.
// The first failing stage or hook aborts the run, and its error is returned
// unchanged. No report is produced for an aborted run.
func (p *Pipeline) Run(ctx context.Context, topic string) (*report.Report, error) {
	Logger().Debug("Running research pipeline", slog.String("topic", topic))

	if err := p.hooks.OnPipelineStart(ctx, topic); err != nil {
		return nil, err
	}

	researchData, err := p.runStage(ctx, StageResearch, func(ctx context.Context) (string, error) {
		return p.research.ResearchTopic(ctx, topic)
	})
	if err != nil {
		return nil, err
	}

	analysis, err := p.runStage(ctx, StageAnalysis, func(ctx context.Context) (string, error) {
		return p.analysis.AnalyzeResearch(ctx, researchData, topic)
	})
	if err != nil {
		return nil, err
	}

	summary, err := p.runStage(ctx, StageSummary, func(ctx context.Context) (string, error) {
		return p.summary.CreateSummary(ctx, researchData, analysis, topic)
	})
	if err != nil {
		return nil, err
	}

	rep := &report.Report{
		Topic:        topic,
		ResearchData: researchData,
		Analysis:     analysis,
		FinalSummary: summary,
	}

	if err := p.hooks.OnPipelineEnd(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (p *Pipeline) runStage(ctx context.Context, stage Stage, invoke func(context.Context) (string, error)) (string, error) {
	if err := p.hooks.OnStageStart(ctx, stage); err != nil {
		return "", err
	}

	output, err := invoke(ctx)
	if err != nil {
		return "", err
	}

	if err := p.hooks.OnStageEnd(ctx, stage, output); err != nil {
		return "", err
	}
	return output, nil
}
