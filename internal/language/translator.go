package language

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Translator converts Thai text to English.
type Translator interface {
	TranslateThai(ctx context.Context, text string) (string, error)
}

const translateInstruction = "Translate the following Thai text to English. Reply only with the translation."

// OpenAITranslator translates via a chat completion call.
type OpenAITranslator struct {
	client *openai.Client
	model  string
}

func NewOpenAITranslator(client *openai.Client, model string) *OpenAITranslator {
	return &OpenAITranslator{client: client, model: model}
}

func (t *OpenAITranslator) TranslateThai(ctx context.Context, text string) (string, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: translateInstruction},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
