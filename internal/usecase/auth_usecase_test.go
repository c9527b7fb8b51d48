package usecase

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rafidhms/jobtrail/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type fakeUserRepo struct {
	byEmail map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(id string) (*model.User, error) {
	for _, user := range f.byEmail {
		if user.ID.String() == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func TestRegister(t *testing.T) {
	t.Run("token decodes to the created user id", func(t *testing.T) {
		uc := NewAuthUsecase(newFakeUserRepo(), testSecret)

		user, token, err := uc.Register("Jane", "Jane@Example.com", "secret123")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "jane@example.com", user.Email)

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, user.ID.String(), claims["userId"])

		exp, err := claims.GetExpirationTime()
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp.Time, time.Minute)
	})

	t.Run("password is hashed, never stored raw", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewAuthUsecase(repo, testSecret)

		_, _, err := uc.Register("Jane", "jane@example.com", "secret123")
		require.NoError(t, err)

		stored := repo.byEmail["jane@example.com"]
		assert.NotEqual(t, "secret123", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
	})

	t.Run("duplicate email is rejected case-insensitively", func(t *testing.T) {
		uc := NewAuthUsecase(newFakeUserRepo(), testSecret)

		_, _, err := uc.Register("Jane", "jane@example.com", "secret123")
		require.NoError(t, err)

		_, _, err = uc.Register("Other Jane", "JANE@EXAMPLE.COM", "different456")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testSecret)
	_, _, err := uc.Register("Jane", "jane@example.com", "secret123")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, token, err := uc.Login("jane@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "jane@example.com", user.Email)
	})

	t.Run("uppercase email still matches", func(t *testing.T) {
		_, _, err := uc.Login("Jane@Example.COM", "secret123")
		assert.NoError(t, err)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, _, wrongPass := uc.Login("jane@example.com", "not-the-password")
		_, _, unknown := uc.Login("nobody@example.com", "secret123")

		assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
		assert.ErrorIs(t, unknown, ErrInvalidCredentials)
		assert.Equal(t, wrongPass.Error(), unknown.Error())
	})
}

func TestProfile(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testSecret)
	user, _, err := uc.Register("Jane", "jane@example.com", "secret123")
	require.NoError(t, err)

	found, err := uc.Profile(user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	_, err = uc.Profile(uuid.NewString())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
