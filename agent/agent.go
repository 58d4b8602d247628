// Package agent provides the AI listing assistant: a single expert chat that
// writes marketplace descriptions for thrifted items. It is a Pro feature
// and an optional upgrade over the offline description template.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Lister is the listing copywriter expert.
type Lister struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// NewLister creates the listing expert with its system instruction.
func NewLister() *Lister {
	return &Lister{
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You write short marketplace listing descriptions for secondhand
			and thrifted items.

			Always lead with the item and its condition, mention flaws
			honestly, close with a one-line shipping note. Plain text,
			under 80 words, no hashtags.
		`}}},
		},
	}
}

// Start creates the underlying chat session.
func (l *Lister) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, l.ModelName, l.Config, nil)
	if err != nil {
		return err
	}
	l.chat = chat
	return nil
}

// Describe asks the expert for a listing description of an item in a given
// condition.
func (l *Lister) Describe(ctx context.Context, item, condition string) (string, error) {
	if l.chat == nil {
		return "", fmt.Errorf("lister not started")
	}
	prompt := fmt.Sprintf("Write the listing description for: %s. Condition: %s.", item, condition)
	resp, err := l.chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from lister")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
