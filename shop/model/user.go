package model

import (
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Photo     string    `json:"photo"`
	Role      Role      `json:"role"`
	Gender    Gender    `json:"gender"`
	DOB       time.Time `json:"dob"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) GetCreatedAt() time.Time {
	return u.CreatedAt
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)
