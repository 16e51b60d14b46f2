package openai

import (
	"context"
	"fmt"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/hireloop/matchd/internal/domain"
	"github.com/hireloop/matchd/internal/metrics"
)

const (
	maxPromptChunks     = 3
	maxCompletionTokens = 500
	maxStrengths        = 3
	maxGaps             = 2
)

// Explainer generates match explanations via an OpenAI-compatible chat API.
type Explainer struct {
	client   *openai.Client
	model    string
	provider string
	// USD per million tokens; micro-USD per token numerically.
	inputCostPerMTok  float64
	outputCostPerMTok float64
	logger            *zap.Logger
}

// ExplainerConfig holds the chat provider settings.
type ExplainerConfig struct {
	APIKey            string
	BaseURL           string
	Model             string
	Provider          string
	InputCostPerMTok  float64
	OutputCostPerMTok float64
	Logger            *zap.Logger
}

// NewExplainer creates an OpenAI-compatible chat explainer.
func NewExplainer(cfg *ExplainerConfig) *Explainer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Explainer{
		client:            openai.NewClientWithConfig(clientCfg),
		model:             cfg.Model,
		provider:          cfg.Provider,
		inputCostPerMTok:  cfg.InputCostPerMTok,
		outputCostPerMTok: cfg.OutputCostPerMTok,
		logger:            cfg.Logger,
	}
}

// Generate asks the chat model for a structured match analysis and returns
// the parsed explanation together with the call cost in micro-USD.
func (e *Explainer) Generate(ctx context.Context, req domain.ExplainRequest) (domain.Explanation, int64, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     e.model,
		MaxTokens: maxCompletionTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
	})
	if err != nil {
		return domain.Explanation{}, 0, fmt.Errorf("chat completion: %s: %w", err, domain.ErrExplainerUnavailable)
	}
	if len(resp.Choices) == 0 {
		return domain.Explanation{}, 0, fmt.Errorf("empty chat response: %w", domain.ErrExplainerUnavailable)
	}

	cost := e.callCost(resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	metrics.ExplainCostMicroUSD.WithLabelValues(e.provider, e.model).Add(float64(cost))

	expl := parseExplanation(resp.Choices[0].Message.Content)

	e.logger.Debug("Explanation generated",
		zap.String("provider", e.provider),
		zap.String("model", e.model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Int64("cost_microusd", cost),
	)

	return expl, cost, nil
}

// callCost converts token usage to micro-USD. Price is configured in USD per
// million tokens, which is numerically micro-USD per token.
func (e *Explainer) callCost(promptTokens, completionTokens int) int64 {
	cost := float64(promptTokens)*e.inputCostPerMTok + float64(completionTokens)*e.outputCostPerMTok
	return int64(math.Ceil(cost))
}

func buildPrompt(req domain.ExplainRequest) string {
	chunks := req.TopChunks
	if len(chunks) > maxPromptChunks {
		chunks = chunks[:maxPromptChunks]
	}

	var b strings.Builder
	b.WriteString("Analyze this resume-job match:\n\n")
	b.WriteString("JOB DESCRIPTION:\n")
	b.WriteString(req.JobText)
	b.WriteString("\n\nTOP MATCHING RESUME SECTIONS:\n")
	b.WriteString(strings.Join(chunks, "\n\n---\n\n"))
	fmt.Fprintf(&b, "\n\nMATCH SCORE: %.1f%%\n\n", req.MatchScore*100)
	b.WriteString(`Provide a concise analysis in this format:

EXPLANATION:
[2-3 sentences explaining why this candidate matches]

STRENGTHS:
- [Key strength 1]
- [Key strength 2]
- [Key strength 3]

SKILL GAPS:
- [Gap 1]
- [Gap 2]

Keep it professional and specific.`)
	return b.String()
}

// parseExplanation extracts the EXPLANATION / STRENGTHS / SKILL GAPS blocks
// from the model output. Unparseable output degrades to a text prefix.
func parseExplanation(raw string) domain.Explanation {
	var (
		explanation []string
		strengths   []string
		gaps        []string
		current     string
	)

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "EXPLANATION:"):
			current = "explanation"
			if rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "EXPLANATION:")); rest != "" {
				explanation = append(explanation, rest)
			}
		case strings.HasPrefix(trimmed, "STRENGTHS:"):
			current = "strengths"
		case strings.HasPrefix(trimmed, "SKILL GAPS:") || strings.HasPrefix(trimmed, "GAPS:"):
			current = "gaps"
		case strings.HasPrefix(trimmed, "-"):
			item := strings.TrimSpace(strings.TrimLeft(trimmed, "- "))
			if item == "" {
				continue
			}
			switch current {
			case "strengths":
				strengths = append(strengths, item)
			case "gaps":
				gaps = append(gaps, item)
			}
		case trimmed != "" && current == "explanation":
			explanation = append(explanation, trimmed)
		}
	}

	text := strings.Join(explanation, " ")
	if text == "" {
		text = raw
		if len(text) > 200 {
			text = text[:200]
		}
	}
	if len(strengths) > maxStrengths {
		strengths = strengths[:maxStrengths]
	}
	if len(gaps) > maxGaps {
		gaps = gaps[:maxGaps]
	}

	return domain.Explanation{
		Text:      text,
		Strengths: strengths,
		Gaps:      gaps,
	}
}
