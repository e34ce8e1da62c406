// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package suggest

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"

	"github.com/curioswitch/lutongbahay/server/internal/llm"
	"github.com/curioswitch/lutongbahay/server/internal/service"
)

// NewOpenAI returns a suggester calling the OpenAI chat completions API.
func NewOpenAI(client *openai.Client, model string) *OpenAI {
	return &OpenAI{client: client, model: model}
}

// OpenAI implements service.Suggester as a fallback backend when Gemini is
// not configured for the deployment.
type OpenAI struct {
	client *openai.Client
	model  string
}

var _ service.Suggester = (*OpenAI)(nil)

func (o *OpenAI) SuggestCategory(ctx context.Context, seed service.SuggestionSeed) (string, error) {
	res, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(llm.SuggestCategoryPrompt(seed.Language) +
				"\n\nAnswer with the category name only."),
			openai.UserMessage(seedText(seed)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("suggest: chat completion: %w", err)
	}
	if len(res.Choices) == 0 || res.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("suggest: unexpected response from chat completion: %v", res)
	}
	return res.Choices[0].Message.Content, nil
}
