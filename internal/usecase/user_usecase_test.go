package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/iho/nexusbank/internal/domain"
	"github.com/iho/nexusbank/internal/usecase"
	"github.com/iho/nexusbank/internal/usecase/mocks"
)

type userMocks struct {
	loader  *mocks.MockLoadUserPort
	saver   *mocks.MockSaveUserPort
	hasher  *mocks.MockPasswordHasher
	idGen   *mocks.MockIDGenerator
	metrics *mocks.MockMetricsRecorder
}

func newUserUseCase(t *testing.T) (*usecase.UserUseCase, userMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := userMocks{
		loader:  mocks.NewMockLoadUserPort(ctrl),
		saver:   mocks.NewMockSaveUserPort(ctrl),
		hasher:  mocks.NewMockPasswordHasher(ctrl),
		idGen:   mocks.NewMockIDGenerator(ctrl),
		metrics: mocks.NewMockMetricsRecorder(ctrl),
	}
	return usecase.NewUserUseCase(m.loader, m.saver, m.hasher, m.idGen, m.metrics), m
}

func TestUserUseCase_CreateUser(t *testing.T) {
	uc, m := newUserUseCase(t)
	input := usecase.CreateUserInput{Name: "Jane", Email: "jane@example.com", Password: "password123"}

	m.loader.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(nil, domain.ErrUserNotFound)
	m.idGen.EXPECT().Generate().Return("user-1")
	m.hasher.EXPECT().Hash("password123").Return("$2a$hash", nil)
	m.saver.EXPECT().SaveUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) error {
		if u.ID != "user-1" || u.Email != "jane@example.com" || u.PasswordHash != "$2a$hash" {
			t.Errorf("unexpected user saved: %+v", u)
		}
		if !u.Active {
			t.Error("expected saved user to be active")
		}
		return nil
	})
	m.metrics.EXPECT().RecordUserCreated()

	id, err := uc.CreateUser(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "user-1" {
		t.Errorf("expected id user-1, got %q", id)
	}
}

func TestUserUseCase_CreateUser_DuplicateEmail(t *testing.T) {
	uc, m := newUserUseCase(t)

	existing, _ := domain.NewUser("user-0", "Jane", "jane@example.com", "hash")
	m.loader.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(existing, nil)
	// no SaveUser expectation: any save fails the test

	_, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if domain.KindOf(err) != domain.KindDuplicateEmail {
		t.Errorf("expected duplicate email kind, got %s", domain.KindOf(err))
	}
}

func TestUserUseCase_CreateUser_Validation(t *testing.T) {
	tests := []struct {
		name   string
		input  usecase.CreateUserInput
		expect error
	}{
		{
			name:   "blank name",
			input:  usecase.CreateUserInput{Name: " ", Email: "jane@example.com", Password: "password123"},
			expect: domain.ErrEmptyName,
		},
		{
			name:   "malformed email",
			input:  usecase.CreateUserInput{Name: "Jane", Email: "invalid-email", Password: "password123"},
			expect: domain.ErrInvalidEmail,
		},
		{
			name:   "blank password",
			input:  usecase.CreateUserInput{Name: "Jane", Email: "jane@example.com", Password: ""},
			expect: domain.ErrEmptyPassword,
		},
		{
			name:   "short password",
			input:  usecase.CreateUserInput{Name: "Jane", Email: "jane@example.com", Password: "short"},
			expect: domain.ErrPasswordTooWeak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newUserUseCase(t)

			_, err := uc.CreateUser(context.Background(), tt.input)
			if !errors.Is(err, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, err)
			}
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Errorf("expected invalid argument kind, got %v", err)
			}
		})
	}
}

func TestUserUseCase_CreateUser_LookupFailure(t *testing.T) {
	uc, m := newUserUseCase(t)
	dbErr := errors.New("connection refused")

	m.loader.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected lookup error to propagate, got %v", err)
	}
}

func TestUserUseCase_CreateUser_HashFailure(t *testing.T) {
	uc, m := newUserUseCase(t)

	m.loader.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound)
	m.idGen.EXPECT().Generate().Return("user-1")
	m.hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("cost out of range"))

	if _, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	}); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestUserUseCase_GetUser(t *testing.T) {
	uc, m := newUserUseCase(t)

	stored, _ := domain.NewUser("user-1", "Jane", "jane@example.com", "secret-hash")
	m.loader.EXPECT().LoadUser(gomock.Any(), "user-1").Return(stored, nil)

	user, err := uc.GetUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.PasswordHash != "" {
		t.Error("expected password hash to be cleared")
	}

	m.loader.EXPECT().LoadUser(gomock.Any(), "missing").Return(nil, domain.ErrUserNotFound)
	if _, err := uc.GetUser(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
