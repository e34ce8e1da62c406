// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package suggest implements the category-name suggestion backends. Each
// backend is a single request with no retry and no streaming; the output is
// advisory and never written to storage here.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/curioswitch/lutongbahay/server/internal/llm"
	"github.com/curioswitch/lutongbahay/server/internal/service"
)

var categorySchema = &genai.Schema{
	Type:        "object",
	Description: "A suggested recipe category.",
	Required:    []string{"suggestedCategory"},
	Properties: map[string]*genai.Schema{
		"suggestedCategory": {
			Type:        "string",
			Description: "The suggested recipe category.",
		},
	},
}

type categoryResponse struct {
	SuggestedCategory string `json:"suggestedCategory"`
}

// NewGemini returns a suggester calling the Gemini API.
func NewGemini(client *genai.Client, model string) *Gemini {
	return &Gemini{client: client, model: model}
}

// Gemini implements service.Suggester on the Gemini API with structured
// output.
type Gemini struct {
	client *genai.Client
	model  string
}

var _ service.Suggester = (*Gemini)(nil)

func (g *Gemini) SuggestCategory(ctx context.Context, seed service.SuggestionSeed) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(seedText(seed), genai.RoleUser),
	}, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(llm.SuggestCategoryPrompt(seed.Language), genai.RoleModel),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    categorySchema,
	})
	if err != nil {
		return "", fmt.Errorf("suggest: generating content: %w", err)
	}
	if len(res.Candidates) != 1 || len(res.Candidates[0].Content.Parts) != 1 || res.Candidates[0].Content.Parts[0].Text == "" {
		return "", fmt.Errorf("suggest: unexpected response from generate ai: %v", res)
	}
	var suggestion categoryResponse
	if err := json.Unmarshal([]byte(res.Candidates[0].Content.Parts[0].Text), &suggestion); err != nil {
		return "", fmt.Errorf("suggest: unmarshalling suggestion: %w", err)
	}
	return suggestion.SuggestedCategory, nil
}

// seedText renders the suggestion seed as the user message.
func seedText(seed service.SuggestionSeed) string {
	var sb strings.Builder
	sb.WriteString("The name is: ")
	sb.WriteString(seed.Name)
	if len(seed.Ingredients) > 0 {
		sb.WriteString("\nThe ingredients are: ")
		sb.WriteString(strings.Join(seed.Ingredients, ", "))
	}
	return sb.String()
}
