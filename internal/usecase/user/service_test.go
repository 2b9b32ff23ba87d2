package user

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/vidstream/domain"
)

type memoryUserRepo struct {
	domain.UserRepository
	nextID int64
	byID   map[int64]domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byID: make(map[int64]domain.User)}
}

func (r *memoryUserRepo) Insert(ctx context.Context, u *domain.User) error {
	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = *u
	return nil
}

func (r *memoryUserRepo) Update(ctx context.Context, u *domain.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[u.ID] = *u
	return nil
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *memoryUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo, []byte("test-secret"))
	ctx := context.Background()

	name := faker.Name()
	username := faker.Username()
	password := faker.Password()

	require.NoError(t, svc.Register(ctx, name, username, password))

	stored, err := repo.GetByUsername(ctx, username)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, stored.Role)
	// 库里只能存散列
	assert.NotEqual(t, password, stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(password)))

	tokenStr, err := svc.Login(ctx, username, password)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, username, claims["username"])
	assert.Equal(t, string(domain.RoleUser), claims["role"])
	assert.Equal(t, float64(stored.ID), claims["user_id"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo, []byte("test-secret"))
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "a", "taken", "pass1234"))
	assert.ErrorIs(t, svc.Register(ctx, "b", "taken", "pass5678"), domain.ErrConflict)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo, []byte("test-secret"))
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "a", "alice", "right-password"))

	_, err := svc.Login(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	_, err = svc.Login(ctx, "nobody", "whatever")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetProfileHidesPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo, []byte("test-secret"))
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "a", "alice", "pass1234"))

	got, err := svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, got.Password)
	assert.Equal(t, "alice", got.Username)
}

func TestEditPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo, []byte("test-secret"))
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "a", "alice", "old-password"))

	assert.ErrorIs(t, svc.EditPassword(ctx, 1, "bad-guess", "new-password"), domain.ErrBadParamInput)
	require.NoError(t, svc.EditPassword(ctx, 1, "old-password", "new-password"))

	_, err := svc.Login(ctx, "alice", "new-password")
	assert.NoError(t, err)
	_, err = svc.Login(ctx, "alice", "old-password")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}
