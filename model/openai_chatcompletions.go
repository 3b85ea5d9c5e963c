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

package model

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/nlpodyssey/research-pipeline-go/usage"
	"github.com/openai/openai-go/v3"
)

type OpenAIChatCompletionsModel struct {
	Model    openai.ChatModel
	Settings Settings
	client   OpenaiClient
}

func NewOpenAIChatCompletionsModel(model openai.ChatModel, client OpenaiClient, settings Settings) OpenAIChatCompletionsModel {
	return OpenAIChatCompletionsModel{
		Model:    model,
		Settings: settings,
		client:   client,
	}
}

// Invoke sends the prompt as a single user message and returns the text
// content of the first choice. Token usage is accumulated into the Usage
// value carried by ctx, if any.
func (m OpenAIChatCompletionsModel) Invoke(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: m.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: m.Settings.Temperature,
		TopP:        m.Settings.TopP,
		MaxTokens:   m.Settings.MaxTokens,
	}

	if DontLogModelData {
		slog.Debug("Calling LLM")
	} else {
		slog.Debug(
			"Calling LLM",
			slog.String("Model", string(m.Model)),
			slog.String("Prompt", prompt),
		)
	}

	response, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("model %q returned a completion without choices", m.Model)
	}
	message := response.Choices[0].Message

	if DontLogModelData {
		slog.Debug("LLM responded")
	} else {
		slog.Debug("LLM responded", slog.String("Message", message.Content))
	}

	if u, ok := usage.FromContext(ctx); ok && !reflect.ValueOf(response.Usage).IsZero() {
		u.Add(&usage.Usage{
			Requests:              1,
			InputTokens:           uint64(response.Usage.PromptTokens),
			CachedInputTokens:     uint64(response.Usage.PromptTokensDetails.CachedTokens),
			OutputTokens:          uint64(response.Usage.CompletionTokens),
			ReasoningOutputTokens: uint64(response.Usage.CompletionTokensDetails.ReasoningTokens),
			TotalTokens:           uint64(response.Usage.TotalTokens),
		})
	}

	return message.Content, nil
}
