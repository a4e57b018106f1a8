package models

import "time"

type Usuario struct {
	ID         string    `json:"id" db:"id"`
	Username   string    `json:"username" db:"username"`
	Password   string    `json:"-" db:"password"`
	Name       *string   `json:"name,omitempty" db:"name"`
	Email      *string   `json:"email,omitempty" db:"email"`
	Role       string    `json:"role" db:"role"`
	Active     bool      `json:"active" db:"active"`
	Inicial    bool      `json:"inicial" db:"inicial"`
	DateCreate time.Time `json:"date_create" db:"date_create"`
	DateUpdate time.Time `json:"date_update" db:"date_update"`
}
