// Package gemini wraps the Google GenAI chat API as the assistant's
// conversational gateway.
package gemini

import (
	"context"
	"fmt"

	"github.com/nileshvk/adhikar/internal/domain"
	"github.com/nileshvk/adhikar/internal/ports"
	"google.golang.org/genai"
)

const systemInstruction = `You are a specialized AI assistant with deep expertise in the constitutional law of India. Your primary function is to provide informative and educational answers to questions about the Constitution of India.

When responding, adhere to the following guidelines:
1. **Disclaimer First:** Always begin every response with the disclaimer: "This is not legal advice and I am not a lawyer."
2. **Cite Sources:** When appropriate, cite relevant constitutional Articles, Schedules, or landmark Supreme Court of India cases to support your answer. For example, mention Kesavananda Bharati v. State of Kerala when discussing the basic structure doctrine.
3. **Maintain Neutrality:** Present information in a neutral, objective, and professional tone.
4. **Clarity and Structure:** Structure your answers clearly for easy understanding.
5. **Scope:** Strictly limit your responses to matters of Indian constitutional law. Do not provide opinions or advice on personal legal situations.`

const DefaultModel = "gemini-2.5-flash"

type Config struct {
	APIKey string
	Model  string
}

type Gateway struct {
	client *genai.Client
	model  string
}

var _ ports.Gateway = (*Gateway)(nil)

func New(ctx context.Context, cfg Config) (*Gateway, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gateway{client: client, model: model}, nil
}

// NewConversation opens a fresh dialogue context seeded with the system
// instruction. Prior turns of the handle are carried on every send.
func (g *Gateway) NewConversation(ctx context.Context) (ports.Conversation, error) {
	chat, err := g.client.Chats.Create(ctx, g.model, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}

	return &conversation{chat: chat}, nil
}

type conversation struct {
	chat *genai.Chat
}

func (c *conversation) Send(ctx context.Context, message string, mode domain.ChatMode) (string, error) {
	prompt, err := BuildPrompt(mode, message)
	if err != nil {
		return "", err
	}

	resp, err := c.chat.SendMessage(ctx, genai.Part{Text: prompt})
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}

	return resp.Text(), nil
}
