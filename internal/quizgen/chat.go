package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wordling/wordling/internal/llm"
)

const chatSystemPromptFormat = `You are a friendly language practice partner.

Rules:
- Respond ONLY in %s, never in any other language.
- Keep every reply under 30 words.
- Ask a short follow-up question when it keeps the conversation going.
- Gently rephrase the learner's mistakes in your reply instead of lecturing about them.`

// Conversation is a running language-practice chat. It keeps the message
// history so the provider sees the full exchange on every turn.
type Conversation struct {
	provider llm.Provider
	config   Config
	language string
	topic    string
	messages []llm.Message
}

// NewConversation starts an empty chat in the given language. Topic is
// optional conversation framing; pass "" for free-form practice.
func NewConversation(provider llm.Provider, cfg Config, language, topic string) *Conversation {
	return &Conversation{
		provider: provider,
		config:   cfg,
		language: language,
		topic:    topic,
	}
}

// Greet asks the model for an opening message and records it as the first
// assistant turn. The greeting instruction itself is not kept in history.
func (c *Conversation) Greet(ctx context.Context) (string, error) {
	instruction := fmt.Sprintf("Greet the learner in %s and ask what they would like to talk about. Keep it under 20 words.", c.language)
	if c.topic != "" {
		instruction = fmt.Sprintf("Greet the learner in %s and invite them to talk about %s. Keep it under 20 words.", c.language, c.topic)
	}

	reply, err := c.generate(ctx, []llm.Message{{Role: llm.RoleUser, Content: instruction}})
	if err != nil {
		return "", fmt.Errorf("chat greeting failed: %w", err)
	}
	c.messages = append(c.messages, llm.Message{Role: llm.RoleAssistant, Content: reply})
	return reply, nil
}

// Send submits a learner message and returns the model's reply. Both turns
// are appended to history only when the provider call succeeds, so a failed
// turn can simply be retried.
func (c *Conversation) Send(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty chat message")
	}

	turn := llm.Message{Role: llm.RoleUser, Content: text}
	reply, err := c.generate(ctx, append(append([]llm.Message{}, c.messages...), turn))
	if err != nil {
		return "", fmt.Errorf("chat reply failed: %w", err)
	}

	c.messages = append(c.messages, turn, llm.Message{Role: llm.RoleAssistant, Content: reply})
	return reply, nil
}

// History returns the conversation so far, oldest first.
func (c *Conversation) History() []llm.Message {
	return c.messages
}

func (c *Conversation) generate(ctx context.Context, messages []llm.Message) (string, error) {
	ctx = llm.WithPurpose(ctx, "chat")

	system := fmt.Sprintf(chatSystemPromptFormat, c.language)
	if c.topic != "" {
		system += fmt.Sprintf("\n- The conversation topic is: %s.", c.topic)
	}

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    messages,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	})
	if err != nil {
		return "", err
	}

	// Without a schema the provider wraps the raw text as a JSON string.
	var reply string
	if err := json.Unmarshal(resp.Content, &reply); err != nil {
		return "", fmt.Errorf("failed to parse chat response: %w", err)
	}
	return strings.TrimSpace(reply), nil
}
