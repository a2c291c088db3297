package domain

import "time"

type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ReleaseDate time.Time `json:"release_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Actor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MovieUpdate carries a partial update; nil fields are left unchanged.
type MovieUpdate struct {
	Title       *string    `json:"title"`
	ReleaseDate *time.Time `json:"release_date"`
}

// ActorUpdate carries a partial update; nil fields are left unchanged.
type ActorUpdate struct {
	Name   *string `json:"name"`
	Age    *int    `json:"age"`
	Gender *string `json:"gender"`
}
