// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package llm holds the prompt templates for the text-suggestion backends.
package llm

import "fmt"

// DefaultSuggestionLanguage is used when neither the request nor the
// configuration chooses an output language.
const DefaultSuggestionLanguage = "Tagalog"

// SuggestCategoryPrompt returns the system instruction for normalizing a
// free-text name into a canonical recipe category, answered in language.
func SuggestCategoryPrompt(language string) string {
	if language == "" {
		language = DefaultSuggestionLanguage
	}
	return fmt.Sprintf(suggestCategoryPrompt, language)
}

const suggestCategoryPrompt = `You are a helpful assistant that suggests a recipe category based on a recipe or category name, and optionally its ingredients.

Make sure the suggested category is related to food or cooking, is not vulgar, and is a general, common category name, not too specific. For example, instead of "Adobo sa Gata", answer "Ulam". Respond in %s.`
