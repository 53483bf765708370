package models

import "time"

// Admin is the privilege allow-list entry keyed by caller uid.
type Admin struct {
	UID       string    `json:"uid" gorm:"primaryKey;size:64"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Admin) TableName() string {
	return "admins"
}
