package service

import (
	"context"
	"fmt"
	"strings"

	"ukmprhub/internal/apperr"
	"ukmprhub/internal/models"
	"ukmprhub/internal/repository"
	"ukmprhub/internal/storage"
)

type PostInput struct {
	Content       *string      `json:"content" validate:"omitempty,max=5000"`
	Image         *string      `json:"image"`
	Poll          *models.Poll `json:"poll"`
	Note          *string      `json:"note" validate:"omitempty,max=500"`
	ActivityLabel *string      `json:"activityLabel" validate:"omitempty,max=120"`
}

type FeedService interface {
	List(ctx context.Context) ([]models.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Post, error)
	Create(ctx context.Context, author *models.Member, in PostInput) (int64, error)
	Edit(ctx context.Context, actor *models.Member, postID int64, in PostInput) error
	Delete(ctx context.Context, actor *models.Member, postID int64) error
	ToggleLike(ctx context.Context, actor *models.Member, postID int64, emoji string) (bool, error)
	Vote(ctx context.Context, actor *models.Member, postID int64, optionIndex int) error
	Comment(ctx context.Context, actor *models.Member, postID int64, content string) (int64, error)
}

type feedService struct {
	posts         repository.PostRepository
	engagement    repository.EngagementRepository
	notifications NotificationService
	media         *storage.Media
}

func NewFeedService(posts repository.PostRepository, engagement repository.EngagementRepository, notifications NotificationService, media *storage.Media) FeedService {
	return &feedService{
		posts:         posts,
		engagement:    engagement,
		notifications: notifications,
		media:         media,
	}
}

func (s *feedService) List(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return s.enrich(ctx, posts)
}

func (s *feedService) ListByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	posts, err := s.posts.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return s.enrich(ctx, posts)
}

// enrich attaches likes, comments and poll tallies with one query per
// relation for the whole page.
func (s *feedService) enrich(ctx context.Context, posts []models.Post) ([]models.Post, error) {
	if len(posts) == 0 {
		return posts, nil
	}

	ids := make([]int64, len(posts))
	for i, post := range posts {
		ids[i] = post.ID
	}

	likes, err := s.engagement.LikesFor(ctx, ids)
	if err != nil {
		return nil, apperr.Store(err)
	}
	comments, err := s.engagement.CommentsFor(ctx, ids)
	if err != nil {
		return nil, apperr.Store(err)
	}
	counts, err := s.engagement.VoteCountsFor(ctx, ids)
	if err != nil {
		return nil, apperr.Store(err)
	}

	likesByPost := make(map[int64][]models.PostLike)
	for _, like := range likes {
		likesByPost[like.PostID] = append(likesByPost[like.PostID], like)
	}
	commentsByPost := make(map[int64][]models.PostComment)
	for _, comment := range comments {
		commentsByPost[comment.PostID] = append(commentsByPost[comment.PostID], comment)
	}
	votesByPost := make(map[int64]map[int]int)
	for _, count := range counts {
		if votesByPost[count.PostID] == nil {
			votesByPost[count.PostID] = make(map[int]int)
		}
		votesByPost[count.PostID][count.OptionIndex] = count.Votes
	}

	for i := range posts {
		post := &posts[i]

		post.Likes = likesByPost[post.ID]
		if post.Likes == nil {
			post.Likes = []models.PostLike{}
		}
		post.Comments = commentsByPost[post.ID]
		if post.Comments == nil {
			post.Comments = []models.PostComment{}
		}

		post.Poll = models.ParsePoll(post.PollJSON)
		if post.Poll != nil {
			post.Poll.ApplyCounts(votesByPost[post.ID])
		}
	}

	return posts, nil
}

func (s *feedService) Create(ctx context.Context, author *models.Member, in PostInput) (int64, error) {
	poll, err := cleanPoll(in.Poll)
	if err != nil {
		return 0, err
	}

	post := &models.Post{
		UserID:        author.ID,
		Content:       trimmed(in.Content),
		Note:          trimmed(in.Note),
		ActivityLabel: trimmed(in.ActivityLabel),
		CreatedAt:     nowMillis(),
	}

	if post.Content == nil && trimmed(in.Image) == nil && poll == nil && post.Note == nil {
		return 0, apperr.Validation("post needs content, an image, a poll or a note")
	}

	if poll != nil {
		encoded, err := models.EncodePoll(poll)
		if err != nil {
			return 0, apperr.Store(fmt.Errorf("failed to encode poll: %w", err))
		}
		post.PollJSON = &encoded
	}

	post.Image, err = s.media.Normalize(ctx, "posts", trimmed(in.Image))
	if err != nil {
		return 0, err
	}

	id, err := s.posts.Create(ctx, post)
	if err != nil {
		return 0, apperr.Store(err)
	}

	return id, nil
}

// Edit replaces every field present in the input. Only the author may edit.
// A replaced poll keeps the votes whose option still exists.
func (s *feedService) Edit(ctx context.Context, actor *models.Member, postID int64, in PostInput) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return storeError(err, "post not found")
	}

	if post.UserID != actor.ID {
		return apperr.Forbidden("only the author can edit this post")
	}

	if in.Content != nil {
		post.Content = trimmed(in.Content)
	}
	if in.Note != nil {
		post.Note = trimmed(in.Note)
	}
	if in.ActivityLabel != nil {
		post.ActivityLabel = trimmed(in.ActivityLabel)
	}

	var previousImage *string
	if in.Image != nil {
		image, err := s.media.Normalize(ctx, "posts", trimmed(in.Image))
		if err != nil {
			return err
		}
		if !samePtr(image, post.Image) {
			previousImage = post.Image
		}
		post.Image = image
	}

	optionCount := -1
	if in.Poll != nil {
		poll, err := cleanPoll(in.Poll)
		if err != nil {
			return err
		}

		post.PollJSON = nil
		optionCount = 0
		if poll != nil {
			encoded, err := models.EncodePoll(poll)
			if err != nil {
				return apperr.Store(fmt.Errorf("failed to encode poll: %w", err))
			}
			post.PollJSON = &encoded
			optionCount = len(poll.Options)
		}
	}

	if post.Content == nil && post.Image == nil && post.PollJSON == nil && post.Note == nil {
		return apperr.Validation("post needs content, an image, a poll or a note")
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return storeError(err, "post not found")
	}

	if optionCount >= 0 {
		if err := s.engagement.DropVotesFrom(ctx, postID, optionCount); err != nil {
			return apperr.Store(err)
		}
	}

	s.media.Remove(ctx, previousImage)
	return nil
}

// Delete is allowed for the author and for admins.
func (s *feedService) Delete(ctx context.Context, actor *models.Member, postID int64) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return storeError(err, "post not found")
	}

	if post.UserID != actor.ID && !actor.IsAdmin() {
		return apperr.Forbidden("not allowed to delete this post")
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return storeError(err, "post not found")
	}

	s.media.Remove(ctx, post.Image)
	return nil
}

func (s *feedService) ToggleLike(ctx context.Context, actor *models.Member, postID int64, emoji string) (bool, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return false, storeError(err, "post not found")
	}

	emoji = strings.TrimSpace(emoji)
	if emoji == "" {
		emoji = models.DefaultEmoji
	}

	liked, err := s.engagement.ToggleLike(ctx, postID, actor.ID, emoji)
	if err != nil {
		return false, apperr.Store(err)
	}

	if liked {
		s.notifications.Notify(ctx, models.Notification{
			UserID:     post.UserID,
			FromUserID: actor.ID,
			Type:       models.NotificationLike,
			PostID:     &postID,
			Content:    &emoji,
		})
	}

	return liked, nil
}

func (s *feedService) Vote(ctx context.Context, actor *models.Member, postID int64, optionIndex int) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return storeError(err, "post not found")
	}

	poll := models.ParsePoll(post.PollJSON)
	if poll == nil {
		return apperr.Validation("post has no poll")
	}
	if optionIndex < 0 || optionIndex >= len(poll.Options) {
		return apperr.Validation("invalid poll option")
	}

	inserted, err := s.engagement.AddVote(ctx, models.PostVote{
		PostID:      postID,
		UserID:      actor.ID,
		OptionIndex: optionIndex,
	})
	if err != nil {
		return apperr.Store(err)
	}
	if !inserted {
		return apperr.Validation("already voted")
	}

	return nil
}

func (s *feedService) Comment(ctx context.Context, actor *models.Member, postID int64, content string) (int64, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return 0, apperr.Validation("comment cannot be empty")
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return 0, storeError(err, "post not found")
	}

	comment := &models.PostComment{
		PostID:    postID,
		UserID:    actor.ID,
		Content:   content,
		CreatedAt: nowMillis(),
	}

	id, err := s.engagement.AddComment(ctx, comment)
	if err != nil {
		return 0, apperr.Store(err)
	}

	s.notifications.Notify(ctx, models.Notification{
		UserID:     post.UserID,
		FromUserID: actor.ID,
		Type:       models.NotificationComment,
		PostID:     &postID,
		Content:    &content,
	})

	return id, nil
}

// cleanPoll trims the poll and drops blank options. A poll with neither a
// question nor options counts as no poll.
func cleanPoll(poll *models.Poll) (*models.Poll, error) {
	if poll == nil {
		return nil, nil
	}

	clean := &models.Poll{Question: strings.TrimSpace(poll.Question)}
	for _, opt := range poll.Options {
		if text := strings.TrimSpace(opt.Text); text != "" {
			clean.Options = append(clean.Options, models.PollOption{Text: text})
		}
	}

	if clean.Question == "" && len(clean.Options) == 0 {
		return nil, nil
	}
	if clean.Question == "" {
		return nil, apperr.Validation("poll question is required")
	}
	if len(clean.Options) < 2 {
		return nil, apperr.Validation("poll needs at least two options")
	}

	return clean, nil
}

func samePtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
