package config

import "testing"

func TestValidate_InvalidBudgetAction(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Embedding: EmbeddingConfig{
			APIKey: "test-key",
			Budget: BudgetConfig{
				DailyTokenLimit: 1000000,
				Action:          "invalid_action",
			},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid budget action")
	}

	expected := `embedding.budget.action must be "warn" or "reject", got "invalid_action"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_ValidBudgetActions(t *testing.T) {
	validActions := []string{"", "warn", "reject"}

	for _, action := range validActions {
		t.Run("action="+action, func(t *testing.T) {
			cfg := Config{
				HTTP: HTTPConfig{Port: 8080},
				Embedding: EmbeddingConfig{
					APIKey: "test-key",
					Budget: BudgetConfig{
						Action: action,
					},
				},
			}

			err := cfg.Validate()
			if err != nil {
				t.Fatalf("unexpected error for valid action %q: %v", action, err)
			}
		})
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 0},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_NoDatabase_OK(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty database.addrs should be allowed: %v", err)
	}
}

func TestValidate_NegativeExplainBudget(t *testing.T) {
	cfg := Config{
		HTTP:      HTTPConfig{Port: 8080},
		Explainer: ExplainerConfig{MonthlyBudgetUSD: -1},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for negative explain budget")
	}
}

func TestValidate_ChunkOverlapTooLarge(t *testing.T) {
	cfg := Config{
		HTTP:    HTTPConfig{Port: 8080},
		Scoring: ScoringConfig{ChunkWords: 100, ChunkOverlap: 100},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for overlap >= chunk words")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 30 {
		t.Errorf("expected WriteTimeoutSec=30, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Embedding.Provider != "openai" {
		t.Errorf("expected Provider=openai, got %q", cfg.Embedding.Provider)
	}
	if cfg.Embedding.Model != "text-embedding-3-small" {
		t.Errorf("expected default embedding model, got %q", cfg.Embedding.Model)
	}
	if cfg.Explainer.Model == "" {
		t.Error("expected default explainer model")
	}
	if cfg.Explainer.InputCostPerMTok != 3.0 {
		t.Errorf("expected InputCostPerMTok=3.0, got %v", cfg.Explainer.InputCostPerMTok)
	}
	if cfg.Explainer.OutputCostPerMTok != 15.0 {
		t.Errorf("expected OutputCostPerMTok=15.0, got %v", cfg.Explainer.OutputCostPerMTok)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database: DatabaseConfig{ReadinessTimeout: 15},
		Embedding: EmbeddingConfig{
			Provider: "nebius",
			Model:    "custom-embed",
		},
		Explainer: ExplainerConfig{
			Model:             "custom-chat",
			InputCostPerMTok:  1.0,
			OutputCostPerMTok: 2.0,
		},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Embedding.Provider != "nebius" {
		t.Errorf("expected Provider=nebius, got %q", cfg.Embedding.Provider)
	}
	if cfg.Embedding.Model != "custom-embed" {
		t.Errorf("expected Model=custom-embed, got %q", cfg.Embedding.Model)
	}
	if cfg.Explainer.InputCostPerMTok != 1.0 {
		t.Errorf("expected InputCostPerMTok=1.0, got %v", cfg.Explainer.InputCostPerMTok)
	}
}
