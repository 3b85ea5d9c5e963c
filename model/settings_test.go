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
	"testing"

	"github.com/openai/openai-go/v3/packages/param"
	"github.com/stretchr/testify/assert"
)

func TestSettingsResolve(t *testing.T) {
	base := Settings{
		Temperature: param.NewOpt(0.7),
		MaxTokens:   param.NewOpt(int64(100)),
	}

	t.Run("empty override keeps base values", func(t *testing.T) {
		assert.Equal(t, base, base.Resolve(Settings{}))
	})

	t.Run("override replaces only present values", func(t *testing.T) {
		resolved := base.Resolve(Settings{
			Temperature: param.NewOpt(0.2),
			TopP:        param.NewOpt(0.9),
		})
		assert.Equal(t, Settings{
			Temperature: param.NewOpt(0.2),
			TopP:        param.NewOpt(0.9),
			MaxTokens:   param.NewOpt(int64(100)),
		}, resolved)
	})

	t.Run("zero base adopts override", func(t *testing.T) {
		assert.Equal(t, base, Settings{}.Resolve(base))
	})
}
