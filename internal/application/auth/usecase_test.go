package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/farhanzaidann/paw-12/internal/application/auth"
	"github.com/farhanzaidann/paw-12/internal/application/dto"
	"github.com/farhanzaidann/paw-12/internal/domain"
	"github.com/farhanzaidann/paw-12/internal/domain/entity"
)

// MockUserRepository mock repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockSessionStore mock repository.SessionStore.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Put(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_UsernameTidakDikenal(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := new(MockSessionStore)
	uc := auth.NewUseCase(userRepo, sessions, time.Hour)

	userRepo.On("GetByUsername", mock.Anything, "hantu").Return(nil, nil)

	sess, err := uc.Login(context.Background(), dto.LoginRequest{Username: "hantu", Password: "apapun"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, sess)
	sessions.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestLogin_PasswordSalah(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := new(MockSessionStore)
	uc := auth.NewUseCase(userRepo, sessions, time.Hour)

	userRepo.On("GetByUsername", mock.Anything, "budi").Return(&entity.User{
		ID:           "u-1",
		Username:     "budi",
		PasswordHash: hashOf(t, "benar"),
		Role:         entity.RoleUser,
	}, nil)

	sess, err := uc.Login(context.Background(), dto.LoginRequest{Username: "budi", Password: "salah"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"password salah dan username asing harus menghasilkan error yang sama persis")
	assert.Nil(t, sess)
	sessions.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestLogin_Sukses_RoleIkutUserTersimpan(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := new(MockSessionStore)
	uc := auth.NewUseCase(userRepo, sessions, 30*time.Minute)

	userRepo.On("GetByUsername", mock.Anything, "admin").Return(&entity.User{
		ID:           "u-9",
		Username:     "admin",
		PasswordHash: hashOf(t, "rahasia"),
		Role:         entity.RoleAdmin,
	}, nil)
	sessions.On("Put", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil)

	mulai := time.Now()
	sess, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "rahasia"})
	require.NoError(t, err)
	require.NotNil(t, sess)

	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "u-9", sess.UserID)
	assert.Equal(t, "admin", sess.Username)
	assert.Equal(t, entity.RoleAdmin, sess.Role, "role sesi harus persis role user tersimpan")
	assert.WithinDuration(t, mulai.Add(30*time.Minute), sess.ExpiresAt, 5*time.Second)
	sessions.AssertCalled(t, "Put", mock.Anything, sess)
}

func TestLogout_Idempoten(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := new(MockSessionStore)
	uc := auth.NewUseCase(userRepo, sessions, time.Hour)

	sessions.On("Delete", mock.Anything, "tok-1").Return(nil)
	assert.NoError(t, uc.Logout(context.Background(), "tok-1"))
	assert.NoError(t, uc.Logout(context.Background(), "tok-1"), "logout ulang bukan error")

	// Token kosong tidak menyentuh store sama sekali.
	assert.NoError(t, uc.Logout(context.Background(), ""))
	sessions.AssertNumberOfCalls(t, "Delete", 2)
}

func TestRegister_UsernameSudahDipakai(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := new(MockSessionStore)
	uc := auth.NewUseCase(userRepo, sessions, time.Hour)

	userRepo.On("GetByUsername", mock.Anything, "budi").Return(&entity.User{ID: "u-1", Username: "budi"}, nil)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "budi", Password: "x12345"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_Sukses(t *testing.T) {
	userRepo := new(MockUserRepository)
	sessions := new(MockSessionStore)
	uc := auth.NewUseCase(userRepo, sessions, time.Hour)

	userRepo.On("GetByUsername", mock.Anything, "siti").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "siti", Password: "rahasia", Role: "admin",
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("rahasia")),
		"password harus tersimpan sebagai hash bcrypt yang valid")
	assert.NotEqual(t, "rahasia", user.PasswordHash)
}
