// Package models contains data models for the todo service.
package models

import "time"

// User represents a registered account. The password hash is never
// serialized to JSON.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
