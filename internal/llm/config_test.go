package llm

import (
	"errors"
	"testing"
)

// clearKeyEnv blanks every env var the config layer reads so tests are
// hermetic regardless of the developer's shell.
func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"WONDERWHIZ_LLM_PROVIDER",
		"WONDERWHIZ_GEMINI_API_KEY", "WONDERWHIZ_GEMINI_MODEL", "WONDERWHIZ_GEMINI_IMAGE_MODEL",
		"WONDERWHIZ_OPENAI_API_KEY", "WONDERWHIZ_OPENAI_MODEL", "WONDERWHIZ_OPENAI_IMAGE_MODEL", "WONDERWHIZ_OPENAI_BASE_URL",
		"WONDERWHIZ_ANTHROPIC_API_KEY", "WONDERWHIZ_ANTHROPIC_MODEL",
		"WONDERWHIZ_OPENROUTER_API_KEY", "WONDERWHIZ_OPENROUTER_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(v, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "gemini" {
		t.Errorf("expected default provider gemini, got %q", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("expected default model gemini-flash, got %q", cfg.Gemini.Model)
	}
	if cfg.Gemini.ImageModel != "imagen-3" {
		t.Errorf("expected default image model imagen-3, got %q", cfg.Gemini.ImageModel)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("WONDERWHIZ_LLM_PROVIDER", "anthropic")
	t.Setenv("WONDERWHIZ_ANTHROPIC_API_KEY", "test-key")
	t.Setenv("WONDERWHIZ_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("expected provider anthropic, got %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "test-key" {
		t.Errorf("expected API key from env, got %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("expected model claude-sonnet, got %q", cfg.Anthropic.Model)
	}
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()

	var missing *ErrMissingCredentials
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if missing.Provider != "gemini" {
		t.Errorf("expected provider gemini, got %q", missing.Provider)
	}
	if missing.EnvVar != "WONDERWHIZ_GEMINI_API_KEY" {
		t.Errorf("expected env var hint, got %q", missing.EnvVar)
	}
}

func TestValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "skynet"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("ANTHROPIC_API_KEY", "anthropic-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "openai" {
		t.Errorf("expected openai to win over anthropic, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "openai-key" {
		t.Errorf("expected discovered key, got %q", cfg.OpenAI.APIKey)
	}
}

func TestDiscoverConfig_NothingSet(t *testing.T) {
	clearKeyEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}

func TestProviderConstructors_RejectMissingKey(t *testing.T) {
	var missing *ErrMissingCredentials

	if _, err := NewAnthropicProvider(AnthropicConfig{}); !errors.As(err, &missing) {
		t.Errorf("anthropic: expected ErrMissingCredentials, got %v", err)
	}
	if _, err := NewOpenAIProvider(OpenAIConfig{}); !errors.As(err, &missing) {
		t.Errorf("openai: expected ErrMissingCredentials, got %v", err)
	}
	if _, err := NewGeminiProvider(t.Context(), GeminiConfig{}); !errors.As(err, &missing) {
		t.Errorf("gemini: expected ErrMissingCredentials, got %v", err)
	}
}
