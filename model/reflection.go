package model

import "time"

// Reflection is a dated journal entry, optionally linked to a class.
type Reflection struct {
	ReflectionID string    `bson:"_id,omitempty" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	ClassID      string    `bson:"class_id,omitempty" json:"class_id,omitempty"`
	Title        string    `bson:"title" json:"title" binding:"required"`
	Content      string    `bson:"content" json:"content"`
	Mood         string    `bson:"mood,omitempty" json:"mood,omitempty"`
	Tags         []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Date         time.Time `bson:"date" json:"date"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
