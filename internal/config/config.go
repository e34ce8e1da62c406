// Copyright (c) Choko (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

type Suggestion struct {
	// Backend selects the text-suggestion backend, "gemini" or "openai".
	Backend string `koanf:"backend"`

	// Model is the Gemini model used for category suggestions.
	Model string `koanf:"model"`

	// OpenAIModel is the model used when the backend is "openai".
	OpenAIModel string `koanf:"openaimodel"`

	// Language is the human-readable default output language for
	// suggestions, e.g. "Tagalog".
	Language string `koanf:"language"`
}

type Config struct {
	config.Common

	// Suggestion is the configuration for category suggestions.
	Suggestion Suggestion `koanf:"suggestion"`
}
