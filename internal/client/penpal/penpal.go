// Package penpal generates the PostBot reply to a letter using the Gemini
// API, with fixed friendly fallbacks when generation is unavailable.
package penpal

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/postmeapp/postme/internal/logging"
)

// Fallback replies. EmptyReplyFallback covers a successful call that
// produced no text, ErrorFallback covers any generation failure.
const (
	EmptyReplyFallback = "Hello! Your letter warmed my heart. Sending you lots of love! 💌✨"
	ErrorFallback      = "I'm a bit overwhelmed by how lovely your letter was, but please know I read it and it made my day! 🌸✨"
)

const promptTemplate = "You are a heartwarming and slightly whimsical pen pal named PostBot. " +
	"A friend named %s sent you this letter: %q. " +
	"Write a short, charming, and sweet reply (max 50 words). " +
	"Use cute emojis and a friendly, supportive tone."

func buildPrompt(senderName, letterContent string) string {
	return fmt.Sprintf(promptTemplate, senderName, letterContent)
}

// Generator produces the pen-pal reply text for a letter. Implementations
// never fail: when generation is impossible they return a fallback reply.
type Generator interface {
	GenerateReply(ctx context.Context, senderName, letterContent string) string
}

// GeminiGenerator generates replies via the Gemini API.
type GeminiGenerator struct {
	apiKey string
	model  string
	logger logging.Logger
}

func NewGeminiGenerator(apiKey, model string, logger logging.Logger) *GeminiGenerator {
	return &GeminiGenerator{apiKey: apiKey, model: model, logger: logger}
}

// GenerateReply asks the model for a reply to the letter. Any failure,
// including a missing API key, degrades to a fixed fallback so the pen pal
// always answers.
func (g *GeminiGenerator) GenerateReply(ctx context.Context, senderName, letterContent string) string {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: g.apiKey})
	if err != nil {
		g.logger.Warn(ctx, "gemini client init failed", "error", err.Error())
		return ErrorFallback
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(senderName, letterContent)), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.8),
		TopP:        genai.Ptr[float32](0.95),
	})
	if err != nil {
		g.logger.Warn(ctx, "gemini generation failed", "error", err.Error())
		return ErrorFallback
	}

	if text := resp.Text(); text != "" {
		return text
	}
	return EmptyReplyFallback
}
