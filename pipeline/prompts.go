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

import "fmt"

// Prompt templates for the three stages. Topic and stage outputs are
// embedded verbatim, without quoting or escaping.

const researchPromptTemplate = `You are a research agent. Your job is to gather comprehensive information about: %s

Provide detailed factual information, key concepts, and important aspects of this topic.
Focus on accuracy and comprehensiveness.

Research findings:`

const analysisPromptTemplate = `You are an analysis agent. Analyze the following research data about "%s":

Research Data:
%s

Your task:
1. Identify key themes and patterns
2. Extract the most important insights
3. Highlight any contradictions or gaps
4. Provide critical analysis

Analysis:`

const summaryPromptTemplate = `You are a summary agent. Create a comprehensive summary report about "%s".

Research Data:
%s

Analysis:
%s

Create a well-structured summary that includes:
1. Executive Summary
2. Key Findings
3. Main Insights
4. Conclusions
5. Recommendations (if applicable)

Final Report:`

// BuildResearchPrompt returns the research stage prompt for topic.
func BuildResearchPrompt(topic string) string {
	return fmt.Sprintf(researchPromptTemplate, topic)
}

// BuildAnalysisPrompt returns the analysis stage prompt for topic and the
// research stage output.
func BuildAnalysisPrompt(topic, researchData string) string {
	return fmt.Sprintf(analysisPromptTemplate, topic, researchData)
}

// BuildSummaryPrompt returns the summary stage prompt for topic and the two
// previous stage outputs.
func BuildSummaryPrompt(topic, researchData, analysis string) string {
	return fmt.Sprintf(summaryPromptTemplate, topic, researchData, analysis)
}
