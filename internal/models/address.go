// Package models contains data models for the contact management service.
package models

import "time"

// Address belongs to exactly one contact. Ownership is transitive: an
// address is reachable only via a contact that belongs to the requesting
// user.
type Address struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	ContactID  int64     `json:"contact_id" gorm:"index;not null"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	Province   string    `json:"province"`
	Country    string    `json:"country" gorm:"not null"`
	PostalCode string    `json:"postal_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Contact    Contact   `json:"-" gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the Address model.
func (Address) TableName() string {
	return "addresses"
}
