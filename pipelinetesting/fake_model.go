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

package pipelinetesting

import (
	"context"
	"reflect"

	"github.com/nlpodyssey/research-pipeline-go/usage"
)

// FakeModel is a scripted Model implementation for tests. Each Invoke
// consumes the next queued output and records the prompt it was given.
// It is not safe for concurrent use.
type FakeModel struct {
	Outputs        []FakeModelOutput
	Prompts        []string
	HardcodedUsage *usage.Usage
}

type FakeModelOutput struct {
	Value string
	Error error
}

func NewFakeModel(initialOutput *FakeModelOutput) *FakeModel {
	var outputs []FakeModelOutput
	if initialOutput != nil && !reflect.ValueOf(*initialOutput).IsZero() {
		outputs = []FakeModelOutput{*initialOutput}
	}

	return &FakeModel{
		Outputs: outputs,
	}
}

func (m *FakeModel) SetHardcodedUsage(u usage.Usage) {
	m.HardcodedUsage = &u
}

func (m *FakeModel) SetNextOutput(output FakeModelOutput) {
	m.Outputs = append(m.Outputs, output)
}

func (m *FakeModel) AddMultipleOutputs(outputs []FakeModelOutput) {
	m.Outputs = append(m.Outputs, outputs...)
}

func (m *FakeModel) GetNextOutput() FakeModelOutput {
	if len(m.Outputs) == 0 {
		return FakeModelOutput{}
	}
	v := m.Outputs[0]
	m.Outputs = m.Outputs[1:]
	return v
}

// LastPrompt returns the most recent prompt passed to Invoke, or the empty
// string if Invoke was never called.
func (m *FakeModel) LastPrompt() string {
	if len(m.Prompts) == 0 {
		return ""
	}
	return m.Prompts[len(m.Prompts)-1]
}

func (m *FakeModel) Invoke(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)

	output := m.GetNextOutput()
	if output.Error != nil {
		return "", output.Error
	}

	if m.HardcodedUsage != nil {
		if u, ok := usage.FromContext(ctx); ok {
			u.Add(m.HardcodedUsage)
		}
	}

	return output.Value, nil
}
