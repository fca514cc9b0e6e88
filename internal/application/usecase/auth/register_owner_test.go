// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// fakeUserRepository is an in-memory UserRepository for auth tests.
type fakeUserRepository struct {
	usersByEmail map[string]*entity.User
	usersByID    map[uuid.UUID]*entity.User
	createErr    error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		usersByEmail: make(map[string]*entity.User),
		usersByID:    make(map[uuid.UUID]*entity.User),
	}
}

func (f *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.usersByEmail[user.Email] = user
	f.usersByID[user.ID] = user
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if user, ok := f.usersByID[id]; ok {
		return user, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if user, ok := f.usersByEmail[email]; ok {
		return user, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.usersByEmail[email]
	return ok, nil
}

func (f *fakeUserRepository) ListOperatorsByGym(ctx context.Context, gymID uuid.UUID) ([]*entity.User, error) {
	var operators []*entity.User
	for _, user := range f.usersByID {
		if user.GymID == gymID && user.IsOperator() {
			operators = append(operators, user)
		}
	}
	return operators, nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if user, ok := f.usersByID[id]; ok {
		delete(f.usersByEmail, user.Email)
		delete(f.usersByID, id)
		return nil
	}
	return domainerror.ErrUserNotFound
}

// fakeGymRepository is an in-memory GymRepository for auth tests.
type fakeGymRepository struct {
	gyms      map[uuid.UUID]*entity.Gym
	createErr error
}

func newFakeGymRepository() *fakeGymRepository {
	return &fakeGymRepository{gyms: make(map[uuid.UUID]*entity.Gym)}
}

func (f *fakeGymRepository) Create(ctx context.Context, gym *entity.Gym) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.gyms[gym.ID] = gym
	return nil
}

func (f *fakeGymRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Gym, error) {
	if gym, ok := f.gyms[id]; ok {
		return gym, nil
	}
	return nil, errors.New("gym not found")
}

// fakePasswordService hashes by prefixing, good enough for use case tests.
type fakePasswordService struct {
	weak bool
}

func (f *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (f *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (f *fakePasswordService) ValidatePasswordStrength(password string) error {
	if f.weak || len(password) < 8 {
		return errors.New("password too weak")
	}
	return nil
}

// fakeTokenService issues predictable tokens keyed by user ID.
type fakeTokenService struct {
	invalidated map[string]bool
	usersByRef  map[string]*entity.User
	generateErr error
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		invalidated: make(map[string]bool),
		usersByRef:  make(map[string]*entity.User),
	}
}

func (f *fakeTokenService) GenerateTokenPair(ctx context.Context, user *entity.User) (*adapter.TokenPair, error) {
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	refresh := "refresh-" + user.ID.String()
	f.usersByRef[refresh] = user
	return &adapter.TokenPair{
		AccessToken:  "access-" + user.ID.String(),
		RefreshToken: refresh,
	}, nil
}

func (f *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if f.invalidated[token] {
		return nil, errors.New("token revoked")
	}
	user, ok := f.usersByRef[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return &adapter.TokenClaims{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		GymID:     user.GymID,
		BranchID:  user.BranchID,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}, nil
}

func (f *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	f.invalidated[token] = true
	return nil
}

func assertAuthErrorCode(t *testing.T, err error, code domainerror.AuthErrorCode) {
	t.Helper()

	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %T: %v", err, err)
	}
	if authErr.Code != code {
		t.Errorf("expected code %s, got %s", code, authErr.Code)
	}
}

func TestRegisterOwnerUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	validInput := func() RegisterOwnerInput {
		return RegisterOwnerInput{
			GymName:  "Iron Temple",
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "SecurePass123!",
		}
	}

	t.Run("provisions gym and owner and issues tokens", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		gymRepo := newFakeGymRepository()
		uc := NewRegisterOwnerUseCase(userRepo, gymRepo, &fakePasswordService{}, newFakeTokenService())

		out, err := uc.Execute(ctx, validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Gym == nil || out.Gym.Name != "Iron Temple" {
			t.Fatalf("expected gym to be created, got %+v", out.Gym)
		}
		if out.User == nil {
			t.Fatal("expected user in output")
		}
		if out.User.Role != entity.RoleOwner {
			t.Errorf("expected role owner, got %s", out.User.Role)
		}
		if out.User.GymID != out.Gym.ID {
			t.Error("expected owner to belong to the new gym")
		}
		if out.User.BranchID != nil {
			t.Error("expected owner to have no branch assignment")
		}
		if out.User.PasswordHash != "hashed:SecurePass123!" {
			t.Error("expected password to be hashed before persisting")
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Error("expected tokens in output")
		}
		if _, ok := gymRepo.gyms[out.Gym.ID]; !ok {
			t.Error("expected gym to be persisted")
		}
	})

	t.Run("missing gym name is rejected", func(t *testing.T) {
		uc := NewRegisterOwnerUseCase(newFakeUserRepository(), newFakeGymRepository(), &fakePasswordService{}, newFakeTokenService())

		input := validInput()
		input.GymName = ""
		_, err := uc.Execute(ctx, input)
		assertAuthErrorCode(t, err, domainerror.ErrCodeMissingFields)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		uc := NewRegisterOwnerUseCase(newFakeUserRepository(), newFakeGymRepository(), &fakePasswordService{}, newFakeTokenService())

		input := validInput()
		input.Email = "not-an-email"
		_, err := uc.Execute(ctx, input)
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidEmail)
	})

	t.Run("weak password is rejected", func(t *testing.T) {
		uc := NewRegisterOwnerUseCase(newFakeUserRepository(), newFakeGymRepository(), &fakePasswordService{weak: true}, newFakeTokenService())

		_, err := uc.Execute(ctx, validInput())
		assertAuthErrorCode(t, err, domainerror.ErrCodeWeakPassword)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		uc := NewRegisterOwnerUseCase(userRepo, newFakeGymRepository(), &fakePasswordService{}, newFakeTokenService())

		if _, err := uc.Execute(ctx, validInput()); err != nil {
			t.Fatalf("unexpected error on first registration: %v", err)
		}

		input := validInput()
		input.GymName = "Second Gym"
		_, err := uc.Execute(ctx, input)
		assertAuthErrorCode(t, err, domainerror.ErrCodeEmailExists)
	})
}
