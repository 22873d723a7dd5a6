package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	RoleAnggota  = "Anggota"
	RolePengurus = "Pengurus"
	RoleAlumni   = "Alumni"
	RoleAdmin    = "Admin"
)

const DefaultEmoji = "❤️"

type Member struct {
	ID        int64   `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Username  *string `json:"username,omitempty" db:"username"`
	Password  string  `json:"-" db:"password"`
	Major     string  `json:"major" db:"major"`
	Program   string  `json:"program" db:"program"`
	EntryYear int     `json:"entryYear" db:"entry_year"`
	GradYear  *int    `json:"gradYear,omitempty" db:"grad_year"`
	Role      string  `json:"role" db:"role"`
	Wa        *string `json:"wa,omitempty" db:"wa"`
	Nim       *string `json:"nim,omitempty" db:"nim"`
	Photo     *string `json:"photo,omitempty" db:"photo"`
	Email     *string `json:"email,omitempty" db:"email"`
	Bio       *string `json:"bio,omitempty" db:"bio"`
}

func (m *Member) IsAdmin() bool {
	return m != nil && m.Role == RoleAdmin
}

type Session struct {
	ID        string `json:"id" db:"id"`
	UserID    int64  `json:"userId" db:"user_id"`
	ExpiresAt int64  `json:"expiresAt" db:"expires_at"`
}

// Expired compares against wall-clock milliseconds.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt <= now.UnixMilli()
}

type PollOption struct {
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type Poll struct {
	Question string       `json:"question"`
	Options  []PollOption `json:"options"`
}

type Post struct {
	ID             int64         `json:"id" db:"id"`
	UserID         int64         `json:"userId" db:"user_id"`
	Content        *string       `json:"content,omitempty" db:"content"`
	Image          *string       `json:"image,omitempty" db:"image"`
	PollJSON       *string       `json:"-" db:"poll_json"`
	Note           *string       `json:"note,omitempty" db:"note"`
	ActivityLabel  *string       `json:"activityLabel,omitempty" db:"activity_label"`
	CreatedAt      int64         `json:"createdAt" db:"created_at"`
	AuthorName     string        `json:"authorName" db:"author_name"`
	AuthorUsername string        `json:"authorUsername" db:"author_username"`
	AuthorPhoto    string        `json:"authorPhoto" db:"author_photo"`
	AuthorRole     string        `json:"authorRole" db:"author_role"`
	Poll           *Poll         `json:"poll" db:"-"`
	Likes          []PostLike    `json:"likes" db:"-"`
	Comments       []PostComment `json:"comments" db:"-"`
}

type PostLike struct {
	PostID int64  `json:"postId" db:"post_id"`
	UserID int64  `json:"userId" db:"user_id"`
	Emoji  string `json:"emoji" db:"emoji"`
}

type PostComment struct {
	ID             int64  `json:"id" db:"id"`
	PostID         int64  `json:"postId" db:"post_id"`
	UserID         int64  `json:"userId" db:"user_id"`
	Content        string `json:"content" db:"content"`
	CreatedAt      int64  `json:"createdAt" db:"created_at"`
	AuthorName     string `json:"authorName" db:"author_name"`
	AuthorUsername string `json:"authorUsername" db:"author_username"`
	AuthorPhoto    string `json:"authorPhoto" db:"author_photo"`
}

type PostVote struct {
	PostID      int64 `json:"postId" db:"post_id"`
	UserID      int64 `json:"userId" db:"user_id"`
	OptionIndex int   `json:"optionIndex" db:"option_index"`
}

// VoteCount is one row of the per-option tally.
type VoteCount struct {
	PostID      int64 `db:"post_id"`
	OptionIndex int   `db:"option_index"`
	Votes       int   `db:"votes"`
}

// IntBool is a boolean stored as an INTEGER 0/1 column.
type IntBool bool

func (b IntBool) Value() (driver.Value, error) {
	if b {
		return int64(1), nil
	}
	return int64(0), nil
}

func (b *IntBool) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*b = false
	case int64:
		*b = v != 0
	case int:
		*b = v != 0
	case bool:
		*b = IntBool(v)
	case []byte:
		*b = len(v) > 0 && string(v) != "0" && string(v) != "f" && string(v) != "false"
	default:
		return fmt.Errorf("unsupported type %T for IntBool", src)
	}
	return nil
}

// UnmarshalJSON accepts true/false as well as the 0/1 the admin panel sends,
// bare or quoted.
func (b *IntBool) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	switch raw {
	case "true", "1":
		*b = true
	case "false", "0", "", "null":
		*b = false
	default:
		return fmt.Errorf("invalid boolean %s", data)
	}
	return nil
}

// FlexInt is an integer that also decodes from a numeric string, since
// HTML forms serialize every field as text. An empty string or null is 0.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
		if len(data) == 0 {
			*n = 0
			return nil
		}
	}

	v, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid integer %q", data)
	}
	*n = FlexInt(v)
	return nil
}

// IntPtr returns nil for a nil or zero value.
func (n *FlexInt) IntPtr() *int {
	if n == nil || *n == 0 {
		return nil
	}
	v := int(*n)
	return &v
}
