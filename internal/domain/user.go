package domain

import "time"

// Alarm is one entry of a user's append-only notification log.
type Alarm struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// User is an account. A withdrawn user is logically dead but not purged;
// the flag only blocks login.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Message      string    `json:"message"`
	ImgPath      string    `json:"img_path"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	PushToken    string    `json:"-"`
	LastLogin    time.Time `json:"last_login"`
	CreatedAt    time.Time `json:"created_at"`
	IsWithdrawn  bool      `json:"is_withdrawn"`
	ClubIDs      []string  `json:"clubs,omitempty"` // populated when needed
}

// UserUpdate is the explicit allowlist of mutable profile fields.
// Email, password, salt and id are excluded and change only through
// their dedicated operations.
type UserUpdate struct {
	Name    *string `json:"name"`
	Message *string `json:"message"`
	ImgPath *string `json:"img_path"`
}

// Apply copies the set fields onto the user.
func (u UserUpdate) Apply(user *User) {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Message != nil {
		user.Message = *u.Message
	}
	if u.ImgPath != nil {
		user.ImgPath = *u.ImgPath
	}
}
