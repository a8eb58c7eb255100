package model

import "time"

// User represents an account of the festival platform.  Users are
// owned by the entity store; other components refer to them only by
// ID.
//
// Fields:
//  ID           – opaque identifier (uuid).
//  Email        – unique login name, stored lower-cased.
//  PasswordHash – bcrypt hash of the user's password; never serialized.
//  Role         – one of admin, submitter or buyer.
//  Name         – display name.
//  CreatedAt    – when the account was created.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}
