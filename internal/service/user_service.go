package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"poppys/internal/auth"
	"poppys/internal/errors"
	"poppys/internal/model"
	"poppys/internal/repository"
)

// RegisterInput carries the profile fields accepted at registration.
type RegisterInput struct {
	Email    string
	Name     string
	PhotoURL string
}

// UserService exposes registration and profile operations.
type UserService interface {
	// Register issues a credential for the email and creates the user record
	// unless one already exists. It is idempotent per email: the second call
	// reports existed=true and still returns a fresh credential.
	Register(ctx context.Context, input RegisterInput) (token string, existed bool, err error)
	// Profile returns the record for a verified identity email. Callers must
	// pass the email from the token claim, never from a request parameter.
	Profile(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateProfile(ctx context.Context, id bson.ObjectID, params repository.UpdateUserParams) (*model.User, error)
	UpdateRole(ctx context.Context, id bson.ObjectID, role string) (*model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	tokens *auth.TokenService
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, tokens *auth.TokenService) UserService {
	return &userService{repo: repo, tokens: tokens}
}

func (s *userService) Register(ctx context.Context, input RegisterInput) (string, bool, error) {
	token, err := s.tokens.Generate(input.Email)
	if err != nil {
		return "", false, fmt.Errorf("issue token: %w", err)
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !stderrors.Is(err, errors.ErrNotFound) {
		return "", false, fmt.Errorf("check user existence: %w", err)
	}
	if existing != nil {
		return token, true, nil
	}

	user := &model.User{
		Email:    input.Email,
		Name:     input.Name,
		PhotoURL: input.PhotoURL,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// lost the race against a concurrent registration; the unique index
		// on email is the authoritative guard and the outcome is the same
		if stderrors.Is(err, errors.ErrUserExists) {
			return token, true, nil
		}
		return "", false, fmt.Errorf("create user: %w", err)
	}
	return token, false, nil
}

func (s *userService) Profile(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *userService) GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) UpdateProfile(ctx context.Context, id bson.ObjectID, params repository.UpdateUserParams) (*model.User, error) {
	return s.repo.UpdateProfile(ctx, id, params)
}

func (s *userService) UpdateRole(ctx context.Context, id bson.ObjectID, role string) (*model.User, error) {
	return s.repo.UpdateRole(ctx, id, role)
}
