package domain

import "time"

// Applicant is a pending membership request. It exists only between
// Apply and the terminal Accept/Reject, both of which delete it.
type Applicant struct {
	ID           string    `json:"id"`
	ClubID       string    `json:"club_id"`
	OwnerID      string    `json:"owner_id"`
	Introduction string    `json:"introduction"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `json:"created_at"`
}

// ApplicantUpdate is the allowlist of fields an applicant may revise
// while the application is pending.
type ApplicantUpdate struct {
	Introduction *string `json:"introduction"`
	Note         *string `json:"note"`
}

// Apply copies the set fields onto the applicant.
func (u ApplicantUpdate) Apply(a *Applicant) {
	if u.Introduction != nil {
		a.Introduction = *u.Introduction
	}
	if u.Note != nil {
		a.Note = *u.Note
	}
}
