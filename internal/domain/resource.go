package domain

import "time"

// Post is a club bulletin entry.
type Post struct {
	ID        string    `json:"id"`
	ClubID    string    `json:"club_id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
}

// PostUpdate is the allowlist of mutable post fields. Club, author and
// creation time never change after the fact.
type PostUpdate struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsPublic *bool   `json:"is_public"`
}

// Apply copies the set fields onto the post.
func (u PostUpdate) Apply(p *Post) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Content != nil {
		p.Content = *u.Content
	}
	if u.IsPublic != nil {
		p.IsPublic = *u.IsPublic
	}
}

// Award records a prize the club took at a competition.
type Award struct {
	ID       string    `json:"id"`
	ClubID   string    `json:"club_id"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Level    string    `json:"level"`
	Date     time.Time `json:"date"`
}

// Budget is one purchase line of a club's budget.
type Budget struct {
	ID        string    `json:"id"`
	ClubID    string    `json:"club_id"`
	Item      string    `json:"item"`
	Size      string    `json:"size"`
	Price     int32     `json:"price"`
	Quantity  int32     `json:"quantity"`
	Shipping  int32     `json:"shipping"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// CalendarEntry is a scheduled club event.
type CalendarEntry struct {
	ID      string    `json:"id"`
	ClubID  string    `json:"club_id"`
	Content string    `json:"content"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}
