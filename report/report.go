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

package report

import (
	"cmp"
	"fmt"
	"os"
	"strings"
)

// Report is the result of a complete pipeline run: the research topic and
// the text produced by each of the three stages. It is assembled once per
// run and not modified afterwards.
type Report struct {
	// The topic the pipeline was run for, exactly as supplied by the caller.
	Topic string

	// Raw output of the research stage.
	ResearchData string

	// Raw output of the analysis stage.
	Analysis string

	// Raw output of the summary stage.
	FinalSummary string
}

// separator is the line dividing report sections in the persisted layout.
// Consumers of report files depend on its exact length.
var separator = strings.Repeat("=", 50)

// Render serializes the report in its fixed plain-text layout: a title line,
// then the three stage sections divided by lines of fifty '=' characters.
// Stage text is embedded verbatim and the result carries no trailing newline.
func (r *Report) Render() string {
	var sb strings.Builder
	sb.WriteString("RESEARCH REPORT: ")
	sb.WriteString(r.Topic)
	sb.WriteString("\n")
	sb.WriteString(separator)
	sb.WriteString("\n\n")
	sb.WriteString("RESEARCH DATA:\n")
	sb.WriteString(r.ResearchData)
	sb.WriteString("\n\n")
	sb.WriteString(separator)
	sb.WriteString("\n\n")
	sb.WriteString("ANALYSIS:\n")
	sb.WriteString(r.Analysis)
	sb.WriteString("\n\n")
	sb.WriteString(separator)
	sb.WriteString("\n\n")
	sb.WriteString("FINAL SUMMARY:\n")
	sb.WriteString(r.FinalSummary)
	return sb.String()
}

// DefaultFilename derives the report's file name from its topic: every space
// becomes an underscore, with a fixed "research_report_" prefix and ".txt"
// suffix. Case is preserved and no other character is sanitized, so a topic
// containing path separators yields a path outside the current directory.
// Callers accepting untrusted topics should pass their own name to WriteFile.
func (r *Report) DefaultFilename() string {
	return "research_report_" + strings.ReplaceAll(r.Topic, " ", "_") + ".txt"
}

// WriteFile renders the report and writes it to filename, fully overwriting
// any existing file at that path. An empty filename means DefaultFilename.
func (r *Report) WriteFile(filename string) error {
	filename = cmp.Or(filename, r.DefaultFilename())
	if err := os.WriteFile(filename, []byte(r.Render()), 0644); err != nil {
		return fmt.Errorf("error writing report file: %w", err)
	}
	return nil
}
