package ports

import (
	"context"

	"casting-agency/internal/domain"
)

type MovieRepository interface {
	Create(ctx context.Context, movie domain.Movie) error
	Update(ctx context.Context, movie domain.Movie) error
	GetByID(ctx context.Context, movieID string) (domain.Movie, error)
	List(ctx context.Context) ([]domain.Movie, error)
	Delete(ctx context.Context, movieID string) error
}

type ActorRepository interface {
	Create(ctx context.Context, actor domain.Actor) error
	Update(ctx context.Context, actor domain.Actor) error
	GetByID(ctx context.Context, actorID string) (domain.Actor, error)
	List(ctx context.Context) ([]domain.Actor, error)
	Delete(ctx context.Context, actorID string) error
}

type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Debug(ctx context.Context, msg string, args ...any)
}
