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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildResearchPrompt(t *testing.T) {
	expected := `You are a research agent. Your job is to gather comprehensive information about: quantum computing

Provide detailed factual information, key concepts, and important aspects of this topic.
Focus on accuracy and comprehensiveness.

Research findings:`
	assert.Equal(t, expected, BuildResearchPrompt("quantum computing"))
}

func TestBuildAnalysisPrompt(t *testing.T) {
	expected := `You are an analysis agent. Analyze the following research data about "quantum computing":

Research Data:
first line
second line

Your task:
1. Identify key themes and patterns
2. Extract the most important insights
3. Highlight any contradictions or gaps
4. Provide critical analysis

Analysis:`
	assert.Equal(t, expected, BuildAnalysisPrompt("quantum computing", "first line\nsecond line"))
}

func TestBuildSummaryPrompt(t *testing.T) {
	expected := `You are a summary agent. Create a comprehensive summary report about "quantum computing".

Research Data:
the data

Analysis:
the analysis

Create a well-structured summary that includes:
1. Executive Summary
2. Key Findings
3. Main Insights
4. Conclusions
5. Recommendations (if applicable)

Final Report:`
	assert.Equal(t, expected, BuildSummaryPrompt("quantum computing", "the data", "the analysis"))
}

func TestBuildPromptsEmbedVerbatim(t *testing.T) {
	// Topics and stage outputs are embedded without quoting or escaping,
	// even when they contain quotes or format verbs.
	topic := `Go & "concurrency" 100%`

	assert.Contains(t, BuildResearchPrompt(topic), "information about: "+topic+"\n")
	assert.Contains(t, BuildAnalysisPrompt(topic, "data %d"), `about "`+topic+`":`)
	assert.Contains(t, BuildAnalysisPrompt(topic, "data %d"), "Research Data:\ndata %d\n")
	assert.Contains(t, BuildSummaryPrompt(topic, "d", "a %v"), "Analysis:\na %v\n")
}
