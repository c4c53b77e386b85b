// Package groq adapts the Groq chat-completions API to the brief
// generator port. Requests are made with the end user's own API key; the
// service holds no provider credentials of its own.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/planlane/task_board_app/internal/apperrors"
	"github.com/planlane/task_board_app/internal/core/domain"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel   = "llama-3.1-8b-instant"

	requestTemperature = 0.2
	requestMaxTokens   = 700
)

// Client calls the Groq chat-completions endpoint and parses the model's
// answer into a domain.Brief.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Groq client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    defaultBaseURL,
		model:      defaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ portssvc.BriefGenerator = (*Client)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func systemPrompt() string {
	return strings.Join([]string{
		"Eres un asistente que convierte requerimientos de clientes en un brief claro para un manager no tecnico.",
		"Responde SOLO con JSON valido (sin markdown, sin texto extra).",
		"Usa solo caracteres ASCII (sin acentos).",
		"Todo debe estar en espanol.",
		"El objetivo es explicar que se debe hacer y como resolverlo de forma simple.",
		"Cuando sea posible, incluye instrucciones concretas de donde configurar y que cambiar.",
		"Si no hay certeza, dilo y pide el dato faltante.",
		"Siempre sugiere un rol responsable y el motivo.",
		"Mantén frases cortas y concretas.",
	}, " ")
}

func userPrompt(inputText, boardContext string) string {
	lines := []string{
		"Analiza el siguiente requerimiento y devuelve un JSON con esta forma exacta:",
		"{",
		`  "title": "titulo sugerido (opcional)",`,
		`  "summary": "resumen corto en 1-2 frases",`,
		`  "friendlyExplanation": "explicacion simple para alguien no tecnico",`,
		`  "implementationNotes": "como se implementa con pasos concretos (panel, setting, archivo, etc.)",`,
		`  "taskType": "dev | contenido | seo | diseno | ops | otro",`,
		`  "role": "rol sugerido (ej: manager, dev, contenido, seo, diseno)",`,
		`  "roleReason": "por que ese rol es el adecuado",`,
		`  "steps": ["paso 1 con lugar + accion", "paso 2 con lugar + accion"],`,
		`  "acceptanceCriteria": ["criterio 1", "criterio 2"],`,
		`  "questions": ["pregunta 1", "pregunta 2"]`,
		"}",
	}
	if trimmed := strings.TrimSpace(boardContext); trimmed != "" {
		lines = append(lines, "Contexto del proyecto: "+trimmed)
	}
	lines = append(lines, "Requerimiento:", strings.TrimSpace(inputText))
	return strings.Join(lines, "\n")
}

// extractJSON returns the first top-level {...} block of the model output.
// Models occasionally wrap the JSON in prose or code fences despite the
// prompt.
func extractJSON(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object in model output")
	}
	return trimmed[start : end+1], nil
}

var (
	controlChars = regexp.MustCompile(`[\x00-\x1f]+`)
	multiSpace   = regexp.MustCompile(`\s{2,}`)
)

func sanitizeJSON(value string) string {
	value = controlChars.ReplaceAllString(value, " ")
	value = multiSpace.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Generate calls the provider and normalizes its answer. Provider failures
// and unparseable output map to apperrors.ErrUpstream.
func (c *Client) Generate(ctx context.Context, apiKey, inputText, boardContext string) (*domain.Brief, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt()},
			{Role: "user", Content: userPrompt(inputText, boardContext)},
		},
		Temperature: requestTemperature,
		MaxTokens:   requestMaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("AI provider request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, apperrors.NewUpstreamError(
			fmt.Sprintf("AI provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(errBody))), nil)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, apperrors.NewUpstreamError("failed to decode AI provider response", err)
	}
	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return nil, apperrors.NewUpstreamError("AI provider returned no content", nil)
	}

	rawJSON, err := extractJSON(chatResp.Choices[0].Message.Content)
	if err != nil {
		return nil, apperrors.NewUpstreamError("invalid JSON payload from AI", err)
	}

	var brief domain.Brief
	if err := json.Unmarshal([]byte(sanitizeJSON(rawJSON)), &brief); err != nil {
		return nil, apperrors.NewUpstreamError("failed to parse AI brief", err)
	}

	brief.Title = strings.TrimSpace(brief.Title)
	brief.Summary = strings.TrimSpace(brief.Summary)
	brief.FriendlyExplanation = strings.TrimSpace(brief.FriendlyExplanation)
	brief.ImplementationNotes = strings.TrimSpace(brief.ImplementationNotes)
	brief.TaskType = strings.TrimSpace(brief.TaskType)
	brief.Role = strings.TrimSpace(brief.Role)
	brief.RoleReason = strings.TrimSpace(brief.RoleReason)
	if brief.TaskType == "" {
		brief.TaskType = "otro"
	}
	if brief.Role == "" {
		brief.Role = "otro"
	}
	brief.Steps = normalizeList(brief.Steps)
	brief.AcceptanceCriteria = normalizeList(brief.AcceptanceCriteria)
	brief.Questions = normalizeList(brief.Questions)

	if brief.Summary == "" || brief.FriendlyExplanation == "" || brief.Role == "" {
		return nil, apperrors.NewUpstreamError("AI response missing required fields", nil)
	}
	return &brief, nil
}
