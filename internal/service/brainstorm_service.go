package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ukmprhub/internal/ai"
	"ukmprhub/internal/apperr"
	"ukmprhub/internal/models"
	"ukmprhub/internal/repository"
)

const initialQueryFormat = "Initial Brainstorm:\n- Topik: %s\n- Masalah: %s\n- Lokasi: %s"

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user model"`
	Content string `json:"content" validate:"required"`
}

type SaveChatInput struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

type InitiateInput struct {
	Nickname string `json:"nickname" validate:"required,max=60"`
	Topic    string `json:"topic" validate:"required,max=300"`
	Problem  string `json:"problem" validate:"required,max=2000"`
	Location string `json:"location" validate:"required,max=200"`
}

type MessageInput struct {
	Message string `json:"message" validate:"required,max=4000"`
}

type BrainstormService interface {
	History(ctx context.Context, userID int64) ([]models.BrainstormChat, error)
	Save(ctx context.Context, userID int64, messages []ChatMessage) error
	Initiate(ctx context.Context, userID int64, in InitiateInput) (string, error)
	Message(ctx context.Context, userID int64, message string) (string, error)
}

type brainstormService struct {
	chats   repository.BrainstormRepository
	content ai.Service
}

func NewBrainstormService(chats repository.BrainstormRepository, content ai.Service) BrainstormService {
	return &brainstormService{chats: chats, content: content}
}

func (s *brainstormService) History(ctx context.Context, userID int64) ([]models.BrainstormChat, error) {
	history, err := s.chats.History(ctx, userID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return history, nil
}

func (s *brainstormService) Save(ctx context.Context, userID int64, messages []ChatMessage) error {
	now := nowMillis()

	batch := make([]models.BrainstormChat, len(messages))
	for i, msg := range messages {
		batch[i] = models.BrainstormChat{
			UserID:    userID,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: now,
		}
	}

	if err := s.chats.Append(ctx, batch); err != nil {
		return apperr.Store(err)
	}
	return nil
}

// Initiate runs the structured first analysis and stores it together with
// a synthesized user turn describing the request.
func (s *brainstormService) Initiate(ctx context.Context, userID int64, in InitiateInput) (string, error) {
	text, err := s.content.BrainstormInitiate(ctx, in.Nickname, in.Topic, in.Problem, in.Location)
	if err != nil {
		return "", apperr.Upstream("AI unavailable", err)
	}

	query := fmt.Sprintf(initialQueryFormat, in.Topic, in.Problem, in.Location)
	s.persistTurn(ctx, userID, query, text)

	return text, nil
}

// Message continues the stored conversation.
func (s *brainstormService) Message(ctx context.Context, userID int64, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", apperr.Validation("message cannot be empty")
	}

	history, err := s.chats.History(ctx, userID)
	if err != nil {
		return "", apperr.Store(err)
	}

	turns := make([]ai.Turn, len(history))
	for i, chat := range history {
		turns[i] = ai.Turn{Role: chat.Role, Text: chat.Content}
	}

	text, err := s.content.BrainstormContinue(ctx, message, turns)
	if err != nil {
		return "", apperr.Upstream("AI unavailable", err)
	}

	s.persistTurn(ctx, userID, message, text)

	return text, nil
}

// persistTurn stores a question and its answer. The answer was already
// produced, so a store failure is only logged.
func (s *brainstormService) persistTurn(ctx context.Context, userID int64, question, answer string) {
	now := nowMillis()

	err := s.chats.Append(ctx, []models.BrainstormChat{
		{UserID: userID, Role: models.ChatRoleUser, Content: question, CreatedAt: now},
		{UserID: userID, Role: models.ChatRoleModel, Content: answer, CreatedAt: now},
	})
	if err != nil {
		log.Printf("Failed to save brainstorm turn for member %d: %v", userID, err)
	}
}
