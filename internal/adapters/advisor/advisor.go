// Package advisor asks a chat-completion model for short financial advice.
package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/utils/accounting"
	"github.com/sashabaranov/go-openai"
)

const (
	// MissingKeyMessage is returned without any network call when no API key is configured.
	MissingKeyMessage = "Chave de API não configurada. Por favor, configure sua API Key para receber insights."
	// EmptyResponseMessage is returned when the model answers with no text.
	EmptyResponseMessage = "Não foi possível gerar conselhos no momento."
	// FailureMessage is returned when the request to the model fails.
	FailureMessage = "Erro ao conectar com a inteligência artificial. Tente novamente mais tarde."

	recentLimit = 20
	otherLabel  = "Outros"
)

// Config configures the chat-completion client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client is a single-shot advice client. It never retries and never caches.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

var _ portssvc.Advisor = (*Client)(nil)

// New creates a Client. With an empty API key the client stays disabled.
func New(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{model: cfg.Model, timeout: cfg.Timeout, logger: logger}
	if cfg.APIKey == "" {
		return c
	}
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	c.api = openai.NewClientWithConfig(apiCfg)
	return c
}

// Enabled reports whether an API key was configured.
func (c *Client) Enabled() bool {
	return c.api != nil
}

// Advise summarizes the most recent transactions and returns the model's advice.
// It always returns displayable text.
func (c *Client) Advise(ctx context.Context, transactions []domain.Transaction, categories []domain.Category) string {
	if !c.Enabled() {
		return MissingKeyMessage
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(transactions, categories)},
		},
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "Advice request failed", slog.String("model", c.model), slog.String("error", err.Error()))
		return FailureMessage
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return EmptyResponseMessage
	}
	return resp.Choices[0].Message.Content
}

// BuildPrompt renders the advisor prompt for the last transactions of the list.
func BuildPrompt(transactions []domain.Transaction, categories []domain.Category) string {
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	recent := transactions
	if len(recent) > recentLimit {
		recent = recent[len(recent)-recentLimit:]
	}

	lines := make([]string, 0, len(recent))
	for _, t := range recent {
		lines = append(lines, summaryLine(t, names))
	}

	var b strings.Builder
	b.WriteString("Atue como um consultor financeiro pessoal experiente.\n")
	b.WriteString("Analise as seguintes transações recentes de um usuário brasileiro:\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nForneça 3 conselhos curtos, práticos e acionáveis em formato de lista (Markdown) para melhorar a saúde financeira deste usuário.\n")
	b.WriteString("Seja direto e encorajador.\n")
	return b.String()
}

func summaryLine(t domain.Transaction, names map[string]string) string {
	kind := "Renda"
	if t.Type == domain.Expense {
		kind = "Gasto"
	}
	name, ok := names[t.CategoryID]
	if !ok || name == "" {
		name = otherLabel
	}
	return fmt.Sprintf("- %s: %s de R$%s em %s (%s)", t.Date, kind, accounting.FormatAmount(t.Amount), name, t.Description)
}
