package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"ukmprhub/internal/models"
	"ukmprhub/internal/repository"
	"ukmprhub/internal/storage"
)

// memStore is an in-memory stand-in for the post, engagement and
// notification tables used by the scenario tests.
type memStore struct {
	mu            sync.Mutex
	nextID        int64
	members       map[int64]models.Member
	posts         map[int64]models.Post
	likes         map[[2]int64]string
	comments      []models.PostComment
	votes         map[[2]int64]int
	notifications []models.Notification
}

func newMemStore(members ...models.Member) *memStore {
	store := &memStore{
		members: make(map[int64]models.Member),
		posts:   make(map[int64]models.Post),
		likes:   make(map[[2]int64]string),
		votes:   make(map[[2]int64]int),
	}
	for _, m := range members {
		store.members[m.ID] = m
	}
	return store
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) withAuthor(post models.Post) models.Post {
	if m, ok := s.members[post.UserID]; ok {
		post.AuthorName = m.Name
		post.AuthorRole = m.Role
		if m.Username != nil {
			post.AuthorUsername = *m.Username
		}
	}
	return post
}

type memPosts struct{ *memStore }

func (r memPosts) Create(ctx context.Context, post *models.Post) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post.ID = r.id()
	r.posts[post.ID] = *post
	return post.ID, nil
}

func (r memPosts) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %d: %w", id, repository.ErrNotFound)
	}
	post = r.withAuthor(post)
	return &post, nil
}

func (r memPosts) List(ctx context.Context) ([]models.Post, error) {
	return r.list(func(models.Post) bool { return true }), nil
}

func (r memPosts) ListByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	return r.list(func(p models.Post) bool { return p.UserID == userID }), nil
}

func (r memPosts) list(keep func(models.Post) bool) []models.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := []models.Post{}
	for _, p := range r.posts {
		if keep(p) {
			posts = append(posts, r.withAuthor(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt != posts[j].CreatedAt {
			return posts[i].CreatedAt > posts[j].CreatedAt
		}
		return posts[i].ID > posts[j].ID
	})
	return posts
}

func (r memPosts) Update(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[post.ID]; !ok {
		return repository.ErrNotFound
	}
	r.posts[post.ID] = *post
	return nil
}

func (r memPosts) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.likes {
		if key[0] == id {
			delete(r.likes, key)
		}
	}
	for key := range r.votes {
		if key[0] == id {
			delete(r.votes, key)
		}
	}
	comments := r.comments[:0]
	for _, c := range r.comments {
		if c.PostID != id {
			comments = append(comments, c)
		}
	}
	r.comments = comments
	notifications := r.notifications[:0]
	for _, n := range r.notifications {
		if n.PostID == nil || *n.PostID != id {
			notifications = append(notifications, n)
		}
	}
	r.notifications = notifications
	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

type memEngagement struct{ *memStore }

func in(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (r memEngagement) LikesFor(ctx context.Context, postIDs []int64) ([]models.PostLike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	likes := []models.PostLike{}
	for key, emoji := range r.likes {
		if in(postIDs, key[0]) {
			likes = append(likes, models.PostLike{PostID: key[0], UserID: key[1], Emoji: emoji})
		}
	}
	sort.Slice(likes, func(i, j int) bool { return likes[i].UserID < likes[j].UserID })
	return likes, nil
}

func (r memEngagement) CommentsFor(ctx context.Context, postIDs []int64) ([]models.PostComment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comments := []models.PostComment{}
	for _, c := range r.comments {
		if in(postIDs, c.PostID) {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (r memEngagement) VoteCountsFor(ctx context.Context, postIDs []int64) ([]models.VoteCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tally := make(map[[2]int64]int)
	for key, option := range r.votes {
		if in(postIDs, key[0]) {
			tally[[2]int64{key[0], int64(option)}]++
		}
	}
	counts := []models.VoteCount{}
	for key, n := range tally {
		counts = append(counts, models.VoteCount{PostID: key[0], OptionIndex: int(key[1]), Votes: n})
	}
	return counts, nil
}

func (r memEngagement) ToggleLike(ctx context.Context, postID, userID int64, emoji string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]int64{postID, userID}
	if _, ok := r.likes[key]; ok {
		delete(r.likes, key)
		return false, nil
	}
	r.likes[key] = emoji
	return true, nil
}

func (r memEngagement) AddComment(ctx context.Context, comment *models.PostComment) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.ID = r.id()
	r.comments = append(r.comments, *comment)
	return comment.ID, nil
}

func (r memEngagement) AddVote(ctx context.Context, vote models.PostVote) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]int64{vote.PostID, vote.UserID}
	if _, ok := r.votes[key]; ok {
		return false, nil
	}
	r.votes[key] = vote.OptionIndex
	return true, nil
}

func (r memEngagement) DropVotesFrom(ctx context.Context, postID int64, optionCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, option := range r.votes {
		if key[0] == postID && option >= optionCount {
			delete(r.votes, key)
		}
	}
	return nil
}

type memNotifications struct{ *memStore }

func (r memNotifications) Create(ctx context.Context, notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification.ID = r.id()
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r memNotifications) ListForUser(ctx context.Context, userID int64, limit int) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := []models.Notification{}
	for i := len(r.notifications) - 1; i >= 0 && len(list) < limit; i-- {
		if r.notifications[i].UserID == userID {
			list = append(list, r.notifications[i])
		}
	}
	return list, nil
}

func (r memNotifications) MarkAllRead(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].UserID == userID {
			r.notifications[i].IsRead = 1
		}
	}
	return nil
}

func (s *memStore) feed() (FeedService, NotificationService) {
	notifications := NewNotificationService(memNotifications{s})
	return NewFeedService(memPosts{s}, memEngagement{s}, notifications, storage.NewMedia(nil, 0)), notifications
}
