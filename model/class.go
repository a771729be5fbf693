package model

import "time"

type Class struct {
	ClassID     string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Name        string    `bson:"name" json:"name" binding:"required"`
	Code        string    `bson:"code,omitempty" json:"code,omitempty"`
	Instructor  string    `bson:"instructor,omitempty" json:"instructor,omitempty"`
	Color       string    `bson:"color,omitempty" json:"color,omitempty"`
	CreditHours int       `bson:"credit_hours,omitempty" json:"credit_hours,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
