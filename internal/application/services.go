package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"casting-agency/internal/domain"
	"casting-agency/internal/ports"
)

type MovieService struct {
	repo ports.MovieRepository
}

func NewMovieService(repo ports.MovieRepository) *MovieService {
	return &MovieService{repo: repo}
}

func (s *MovieService) Create(ctx context.Context, movie domain.Movie) (domain.Movie, error) {
	if movie.Title == "" || movie.ReleaseDate.IsZero() {
		return domain.Movie{}, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	movie.ID = uuid.NewString()
	movie.CreatedAt = now
	movie.UpdatedAt = now
	if err := s.repo.Create(ctx, movie); err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}

func (s *MovieService) Update(ctx context.Context, movieID string, update domain.MovieUpdate) (domain.Movie, error) {
	if movieID == "" {
		return domain.Movie{}, domain.ErrInvalidInput
	}
	if update.Title == nil && update.ReleaseDate == nil {
		return domain.Movie{}, domain.ErrInvalidInput
	}
	movie, err := s.repo.GetByID(ctx, movieID)
	if err != nil {
		return domain.Movie{}, err
	}
	if update.Title != nil {
		if *update.Title == "" {
			return domain.Movie{}, domain.ErrInvalidInput
		}
		movie.Title = *update.Title
	}
	if update.ReleaseDate != nil {
		if update.ReleaseDate.IsZero() {
			return domain.Movie{}, domain.ErrInvalidInput
		}
		movie.ReleaseDate = *update.ReleaseDate
	}
	movie.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, movie); err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}

func (s *MovieService) GetByID(ctx context.Context, movieID string) (domain.Movie, error) {
	if movieID == "" {
		return domain.Movie{}, domain.ErrInvalidInput
	}
	return s.repo.GetByID(ctx, movieID)
}

func (s *MovieService) List(ctx context.Context) ([]domain.Movie, error) {
	return s.repo.List(ctx)
}

func (s *MovieService) Delete(ctx context.Context, movieID string) error {
	if movieID == "" {
		return domain.ErrInvalidInput
	}
	return s.repo.Delete(ctx, movieID)
}

type ActorService struct {
	repo ports.ActorRepository
}

func NewActorService(repo ports.ActorRepository) *ActorService {
	return &ActorService{repo: repo}
}

func (s *ActorService) Create(ctx context.Context, actor domain.Actor) (domain.Actor, error) {
	if actor.Name == "" || actor.Gender == "" || actor.Age <= 0 {
		return domain.Actor{}, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	actor.ID = uuid.NewString()
	actor.CreatedAt = now
	actor.UpdatedAt = now
	if err := s.repo.Create(ctx, actor); err != nil {
		return domain.Actor{}, err
	}
	return actor, nil
}

func (s *ActorService) Update(ctx context.Context, actorID string, update domain.ActorUpdate) (domain.Actor, error) {
	if actorID == "" {
		return domain.Actor{}, domain.ErrInvalidInput
	}
	if update.Name == nil && update.Age == nil && update.Gender == nil {
		return domain.Actor{}, domain.ErrInvalidInput
	}
	actor, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return domain.Actor{}, err
	}
	if update.Name != nil {
		if *update.Name == "" {
			return domain.Actor{}, domain.ErrInvalidInput
		}
		actor.Name = *update.Name
	}
	if update.Age != nil {
		if *update.Age <= 0 {
			return domain.Actor{}, domain.ErrInvalidInput
		}
		actor.Age = *update.Age
	}
	if update.Gender != nil {
		if *update.Gender == "" {
			return domain.Actor{}, domain.ErrInvalidInput
		}
		actor.Gender = *update.Gender
	}
	actor.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, actor); err != nil {
		return domain.Actor{}, err
	}
	return actor, nil
}

func (s *ActorService) GetByID(ctx context.Context, actorID string) (domain.Actor, error) {
	if actorID == "" {
		return domain.Actor{}, domain.ErrInvalidInput
	}
	return s.repo.GetByID(ctx, actorID)
}

func (s *ActorService) List(ctx context.Context) ([]domain.Actor, error) {
	return s.repo.List(ctx)
}

func (s *ActorService) Delete(ctx context.Context, actorID string) error {
	if actorID == "" {
		return domain.ErrInvalidInput
	}
	return s.repo.Delete(ctx, actorID)
}
