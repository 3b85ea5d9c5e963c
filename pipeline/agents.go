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

	"github.com/nlpodyssey/research-pipeline-go/model"
)

// Stage identifies one of the pipeline's three sequential stages.
type Stage string

const (
	StageResearch Stage = "research"
	StageAnalysis Stage = "analysis"
	StageSummary  Stage = "summary"
)

// ResearchAgent gathers comprehensive information about a topic.
type ResearchAgent struct {
	model model.Model
}

func NewResearchAgent(m model.Model) *ResearchAgent {
	return &ResearchAgent{model: m}
}

// ResearchTopic asks the model for detailed factual information about topic.
func (a *ResearchAgent) ResearchTopic(ctx context.Context, topic string) (string, error) {
	return a.model.Invoke(ctx, BuildResearchPrompt(topic))
}

// AnalysisAgent extracts themes, insights and gaps from research data.
type AnalysisAgent struct {
	model model.Model
}

func NewAnalysisAgent(m model.Model) *AnalysisAgent {
	return &AnalysisAgent{model: m}
}

// AnalyzeResearch asks the model for a critical analysis of the research
// stage output.
func (a *AnalysisAgent) AnalyzeResearch(ctx context.Context, researchData, topic string) (string, error) {
	return a.model.Invoke(ctx, BuildAnalysisPrompt(topic, researchData))
}

// SummaryAgent produces the final structured summary report.
type SummaryAgent struct {
	model model.Model
}

func NewSummaryAgent(m model.Model) *SummaryAgent {
	return &SummaryAgent{model: m}
}

// CreateSummary asks the model for the final report combining the research
// and analysis stage outputs.
func (a *SummaryAgent) CreateSummary(ctx context.Context, researchData, analysis, topic string) (string, error) {
	return a.model.Invoke(ctx, BuildSummaryPrompt(topic, researchData, analysis))
}
