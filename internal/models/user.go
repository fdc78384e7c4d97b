package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultDescription is stored when an entry is added without a description.
const DefaultDescription = "No description specified"

// User owns an append-only exercise log. Count mirrors len(Log) after every append.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username string             `bson:"username" json:"username"`
	Count    int                `bson:"count" json:"count"`
	Log      []Entry            `bson:"log" json:"log"`
}

// Entry is one logged activity. Entries have no identity of their own.
type Entry struct {
	Description string    `bson:"description" json:"description"`
	Duration    Duration  `bson:"duration" json:"duration"`
	Date        time.Time `bson:"date" json:"date"`
}

// UserSummary is the public {username, _id} pair returned by listings.
type UserSummary struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// Summary returns the identity fields of u.
func (u *User) Summary() UserSummary {
	return UserSummary{Username: u.Username, ID: u.ID.Hex()}
}

// Clone returns a copy of u that shares no log storage with it.
func (u *User) Clone() *User {
	c := *u
	if u.Log != nil {
		c.Log = make([]Entry, len(u.Log))
		copy(c.Log, u.Log)
	}
	return &c
}
