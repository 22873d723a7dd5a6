package models

var (
	ResearchCategories = []string{"PKM", "Essay", "Jurnal", "Modul"}
	StatIcons          = []string{"Award", "TrendingUp", "Users", "BookOpen", "Search"}
)

type Research struct {
	ID        int64  `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	Category  string `json:"category" db:"category"`
	Author    string `json:"author" db:"author"`
	Year      int    `json:"year" db:"year"`
	Downloads int    `json:"downloads" db:"downloads"`
}

type Announcement struct {
	ID         int64   `json:"id" db:"id"`
	Project    string  `json:"project" db:"project"`
	RoleNeeded string  `json:"roleNeeded" db:"role_needed"`
	Initiator  string  `json:"initiator" db:"initiator"`
	Status     string  `json:"status" db:"status"`
	Deadline   string  `json:"deadline" db:"deadline"`
	Wa         *string `json:"wa,omitempty" db:"wa"`
}

type Mentor struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Expertise    string  `json:"expertise" db:"expertise"`
	Rating       float64 `json:"rating" db:"rating"`
	Available    IntBool `json:"available" db:"available"`
	Experience   *string `json:"experience,omitempty" db:"experience"`
	Education    *string `json:"education,omitempty" db:"education"`
	Achievements *string `json:"achievements,omitempty" db:"achievements"`
	Photo        *string `json:"photo,omitempty" db:"photo"`
}

type Banner struct {
	ID    int64   `json:"id" db:"id"`
	Title string  `json:"title" db:"title"`
	Image string  `json:"image" db:"image"`
	Link  *string `json:"link,omitempty" db:"link"`
}

type Stat struct {
	ID          int64  `json:"id" db:"id"`
	Label       string `json:"label" db:"label"`
	Value       string `json:"value" db:"value"`
	Icon        string `json:"icon" db:"icon"`
	Color       string `json:"color" db:"color"`
	Bg          string `json:"bg" db:"bg"`
	SortOrder   int    `json:"sort_order" db:"sort_order"`
	DetailsJSON string `json:"details_json" db:"details_json"`
}

// StatDetail is one entry of a stat's drill-down list. Either Date or
// Count is set depending on the stat.
type StatDetail struct {
	Title string `json:"title"`
	Date  string `json:"date,omitempty"`
	Count any    `json:"count,omitempty"`
	Desc  string `json:"desc"`
}

type Notification struct {
	ID           int64   `json:"id" db:"id"`
	UserID       int64   `json:"userId" db:"user_id"`
	FromUserID   int64   `json:"fromUserId" db:"from_user_id"`
	Type         string  `json:"type" db:"type"`
	PostID       *int64  `json:"postId,omitempty" db:"post_id"`
	Content      *string `json:"content,omitempty" db:"content"`
	IsRead       int     `json:"isRead" db:"is_read"`
	CreatedAt    int64   `json:"createdAt" db:"created_at"`
	FromUsername string  `json:"fromUsername" db:"from_username"`
	FromPhoto    string  `json:"fromPhoto" db:"from_photo"`
}

const (
	NotificationLike    = "like"
	NotificationComment = "comment"
)

type BrainstormChat struct {
	ID        int64  `json:"id" db:"id"`
	UserID    int64  `json:"userId" db:"user_id"`
	Role      string `json:"role" db:"role"`
	Content   string `json:"content" db:"content"`
	CreatedAt int64  `json:"createdAt" db:"created_at"`
}

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)
