package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"

	"ukmprhub/internal/config"
)

// Generator is the completion call the content helpers depend on.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	Ping(ctx context.Context, model string) error
	HasKey() bool
}

type NewsItem struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Image    string `json:"image"`
}

type Status struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type Service interface {
	Greeting(ctx context.Context) string
	Tips(ctx context.Context) string
	News(ctx context.Context) []NewsItem
	Status(ctx context.Context) Status
	BrainstormInitiate(ctx context.Context, nickname, topic, problem, location string) (string, error)
	BrainstormContinue(ctx context.Context, message string, history []Turn) (string, error)
}

type service struct {
	gen       Generator
	model     string
	chatModel string
	pick      func(n int) int
}

func NewService(gen Generator, cfg config.AI) Service {
	return &service{
		gen:       gen,
		model:     cfg.Model,
		chatModel: cfg.ChatModel,
		pick:      rand.IntN,
	}
}

func (s *service) Greeting(ctx context.Context) string {
	theme := greetingThemes[s.pick(len(greetingThemes))]

	text, err := s.complete(ctx, "greeting", Request{
		Model:  s.model,
		Prompt: fmt.Sprintf(greetingPrompt, theme),
	})
	if err != nil || strings.TrimSpace(text) == "" {
		return fallbackGreetings[s.pick(len(fallbackGreetings))]
	}
	return strings.TrimSpace(text)
}

func (s *service) Tips(ctx context.Context) string {
	topic := tipTopics[s.pick(len(tipTopics))]

	text, err := s.complete(ctx, "tips", Request{
		Model:  s.model,
		Prompt: fmt.Sprintf(tipsPrompt, topic),
	})
	if err != nil || strings.TrimSpace(text) == "" {
		return fallbackTips[s.pick(len(fallbackTips))]
	}
	return strings.TrimSpace(text)
}

// News returns generated articles, or the fixed fallback set when the call
// fails or the answer is not a complete JSON array of articles.
func (s *service) News(ctx context.Context) []NewsItem {
	text, err := s.complete(ctx, "news", Request{
		Model:  s.model,
		Prompt: newsPrompt,
		JSON:   true,
	})
	if err != nil {
		return fallbackNews()
	}

	items, err := parseNews(text)
	if err != nil {
		log.Printf("AI news: discarding response: %v", err)
		return fallbackNews()
	}
	return items
}

func (s *service) Status(ctx context.Context) Status {
	err := s.gen.Ping(ctx, s.model)
	switch {
	case err == nil:
		return Status{Available: true}
	case errors.Is(err, ErrNoAPIKey):
		return Status{Reason: "missing API key"}
	case IsKeyRejected(err):
		return Status{Reason: "API key rejected or reported as leaked"}
	default:
		log.Printf("AI status: %v", err)
		return Status{Reason: "provider unreachable"}
	}
}

func (s *service) BrainstormInitiate(ctx context.Context, nickname, topic, problem, location string) (string, error) {
	text, err := s.gen.Generate(ctx, Request{
		Model:  s.chatModel,
		Prompt: fmt.Sprintf(brainstormPrompt, nickname, topic, problem, location),
	})
	if err != nil {
		return "", fmt.Errorf("brainstorm initiate: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "Gagal menghasilkan analisa.", nil
	}
	return text, nil
}

func (s *service) BrainstormContinue(ctx context.Context, message string, history []Turn) (string, error) {
	text, err := s.gen.Generate(ctx, Request{
		Model:   s.chatModel,
		System:  mentorInstruction,
		History: history,
		Prompt:  message,
	})
	if err != nil {
		return "", fmt.Errorf("brainstorm message: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "Gagal menghasilkan respon.", nil
	}
	return text, nil
}

// complete wraps Generate for the fallback-backed helpers and logs why a
// fallback will be used.
func (s *service) complete(ctx context.Context, what string, req Request) (string, error) {
	if !s.gen.HasKey() {
		return "", ErrNoAPIKey
	}

	text, err := s.gen.Generate(ctx, req)
	if err != nil {
		if IsKeyRejected(err) {
			log.Printf("AI %s: API key reported as leaked or invalid, using fallback", what)
		} else {
			log.Printf("AI %s error: %v", what, err)
		}
		return "", err
	}
	return text, nil
}

func parseNews(text string) ([]NewsItem, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var items []NewsItem
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("empty article list")
	}
	for i, item := range items {
		if item.Title == "" || item.Content == "" {
			return nil, fmt.Errorf("article %d is incomplete", i)
		}
	}
	return items, nil
}

func fallbackNews() []NewsItem {
	return append([]NewsItem(nil), fallbackNewsItems...)
}
