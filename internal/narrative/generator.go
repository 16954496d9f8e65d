// ABOUTME: Free-text pools for generated records, written by OpenAI or taken from static fallbacks.
// ABOUTME: Each pool is fetched once per generator and cached for the rest of the run.

package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/sashabaranov/go-openai"
)

// Kind names a family of text.
type Kind string

const (
	// CallSummary pools are keyed by nothing; one pool serves every intent.
	CallSummary Kind = "call_summary"
	// CampaignSubject pools are keyed by campaign type.
	CampaignSubject Kind = "campaign_subject"
)

// Source hands out text pools. Pools are never empty.
type Source interface {
	Pool(ctx context.Context, kind Kind, key string) []string
}

// Generator fills pools from OpenAI when a client is configured and falls
// back to static text otherwise, or when the API call fails.
type Generator struct {
	client *openai.Client
	model  string

	mu    sync.Mutex
	cache map[string][]string
}

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-5-mini"

// NewGenerator returns an AI-backed generator when apiKey is set and a
// static one otherwise.
func NewGenerator(apiKey, model string) *Generator {
	if apiKey == "" {
		log.Println("No OPENAI_API_KEY found, using static narrative text")
		return Static()
	}
	return NewGeneratorWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewGeneratorWithConfig builds an AI-backed generator from a client config,
// which lets tests point it at a local server.
func NewGeneratorWithConfig(cfg openai.ClientConfig, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	log.Printf("OpenAI API key found, using AI-written narrative text with model: %s", model)
	return &Generator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		cache:  map[string][]string{},
	}
}

// Static returns a generator that only uses the built-in text.
func Static() *Generator {
	return &Generator{cache: map[string][]string{}}
}

// UsesAI reports whether pools are fetched from OpenAI.
func (g *Generator) UsesAI() bool {
	return g.client != nil
}

// Pool returns the text pool for kind and key.
func (g *Generator) Pool(ctx context.Context, kind Kind, key string) []string {
	cacheKey := string(kind) + "/" + key

	g.mu.Lock()
	defer g.mu.Unlock()
	if p, ok := g.cache[cacheKey]; ok {
		return p
	}

	pool := staticPool(kind, key)
	if g.client != nil {
		generated, err := callOpenAI[[]string](ctx, g.client, g.model, prompt(kind, key, len(pool)))
		switch {
		case err != nil:
			log.Printf("narrative %s: %v, falling back to static text", cacheKey, err)
		case len(generated) == 0:
			log.Printf("narrative %s: empty response, falling back to static text", cacheKey)
		default:
			pool = generated
		}
	}
	g.cache[cacheKey] = pool
	return pool
}

func prompt(kind Kind, key string, count int) string {
	switch kind {
	case CallSummary:
		return fmt.Sprintf(`Generate %d one-sentence summaries of phone calls to a dental practice that were handled by an AI receptionist.
Cover scheduling, billing questions, insurance checks, prescription refills, post-op follow-ups, and the occasional emergency.
Return as a JSON array of strings.`, count)
	case CampaignSubject:
		return fmt.Sprintf(`Generate %d short email subject lines for a dental practice's %q patient outreach campaign.
Keep each under 50 characters and friendly in tone.
Return as a JSON array of strings.`, count, key)
	default:
		return fmt.Sprintf("Generate %d short phrases for %s %s. Return as a JSON array of strings.", count, kind, key)
	}
}

func callOpenAI[T any](ctx context.Context, client *openai.Client, model, prompt string) (T, error) {
	var result T

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a data generator. Always respond with valid JSON only, no markdown or explanation.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return result, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return result, fmt.Errorf("no response from OpenAI")
	}

	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return result, nil
}
