package models

import "time"

// Birthday is a single stored record. Year and Note are optional; the pair
// (Name, Creator) is unique per user, enforced by the database.
type Birthday struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Day       int       `json:"day"`
	Month     int       `json:"month"`
	Year      *int      `json:"year"`
	Note      *string   `json:"note"`
	Creator   string    `json:"creator"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BirthdayRequest is the JSON body of create and update calls. Day and
// Month are pointers so that a missing field is distinguishable from zero.
type BirthdayRequest struct {
	Name  string  `json:"name" binding:"required"`
	Day   *int    `json:"day" binding:"required"`
	Month *int    `json:"month" binding:"required"`
	Year  *int    `json:"year"`
	Note  *string `json:"note"`
}

// AdminBirthday pairs a birthday with its owner's public fields for the
// privileged scans.
type AdminBirthday struct {
	Birthday
	Owner User `json:"owner"`
}

// IncomingBirthday is an AdminBirthday annotated with the scan offset that
// matched it: 0 (today), 1 (tomorrow) or 7 (in a week).
type IncomingBirthday struct {
	AdminBirthday
	IncomingInDays int `json:"incoming_in_days"`
}
