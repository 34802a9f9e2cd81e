package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iho/nexusbank/internal/domain"
)

// UserUseCase handles user registration and lookup.
type UserUseCase struct {
	userLoader LoadUserPort
	userSaver  SaveUserPort
	hasher     PasswordHasher
	idGen      IDGenerator
	metrics    MetricsRecorder
}

// NewUserUseCase creates a new UserUseCase. A nil recorder disables metrics.
func NewUserUseCase(
	userLoader LoadUserPort,
	userSaver SaveUserPort,
	hasher PasswordHasher,
	idGen IDGenerator,
	metrics MetricsRecorder,
) *UserUseCase {
	return &UserUseCase{
		userLoader: userLoader,
		userSaver:  userSaver,
		hasher:     hasher,
		idGen:      idGen,
		metrics:    recorderOrNop(metrics),
	}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// CreateUser registers a user and returns its ID. Nothing is saved when the
// email is already taken.
func (uc *UserUseCase) CreateUser(ctx context.Context, input CreateUserInput) (string, error) {
	if err := domain.ValidateUserName(input.Name); err != nil {
		return "", err
	}
	if err := domain.ValidateEmail(input.Email); err != nil {
		return "", err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return "", err
	}

	existing, err := uc.userLoader.FindUserByEmail(ctx, input.Email)
	switch {
	case err == nil && existing != nil:
		return "", fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, input.Email)
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return "", fmt.Errorf("find user by email: %w", err)
	}

	id := uc.idGen.Generate()

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user, err := domain.NewUser(id, strings.TrimSpace(input.Name), input.Email, hash)
	if err != nil {
		return "", err
	}

	if err := uc.userSaver.SaveUser(ctx, user); err != nil {
		return "", err
	}

	uc.metrics.RecordUserCreated()
	return user.ID, nil
}

// GetUser retrieves a user by ID. The password hash is never returned.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userLoader.LoadUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}
