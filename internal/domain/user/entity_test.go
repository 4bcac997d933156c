//go:build unit

package user_test

import (
	"testing"
	"time"

	"course-checkout/internal/domain/user"
	"course-checkout/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Test User", actual.Name())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleUser, actual.Role())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsVerified())
		assert.Nil(t, actual.CreditID())
		assert.Nil(t, actual.PasswordChangedAt())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "user", mutate: func(b *builder.UserBuilder) { b.WithRole("user") }},
			{name: "manager", mutate: func(b *builder.UserBuilder) { b.WithRole("manager") }},
			{name: "admin", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }},
			{name: "super-admin", mutate: func(b *builder.UserBuilder) { b.WithRole("super-admin") }},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("owner") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrInvalidName,
			},
		})
	})

	t.Run("email is lowercased", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithEmail("Mixed.Case@Example.COM").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "mixed.case@example.com", actual.Email().Value())
	})
}

func TestRoleAtLeast(t *testing.T) {
	testCases := []struct {
		have user.Role
		min  user.Role
		want bool
	}{
		{user.RoleUser, user.RoleUser, true},
		{user.RoleUser, user.RoleManager, false},
		{user.RoleManager, user.RoleUser, true},
		{user.RoleAdmin, user.RoleManager, true},
		{user.RoleAdmin, user.RoleSuperAdmin, false},
		{user.RoleSuperAdmin, user.RoleAdmin, true},
		{user.Role("ghost"), user.RoleUser, false},
		{user.RoleSuperAdmin, user.Role("ghost"), false},
	}
	for _, tc := range testCases {
		t.Run(string(tc.have)+">="+string(tc.min), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.have.AtLeast(tc.min))
		})
	}
}

func TestChangedPasswordAfter(t *testing.T) {
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("never changed", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildPersisted()
		assert.False(t, u.ChangedPasswordAfter(issuedAt))
	})

	t.Run("changed before issuance", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildPersisted()
		u.ChangePassword("new_hash", issuedAt.Add(-time.Hour))
		assert.False(t, u.ChangedPasswordAfter(issuedAt))
	})

	t.Run("token issued in the same second as the change stays valid", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildPersisted()
		u.ChangePassword("new_hash", issuedAt)
		assert.False(t, u.ChangedPasswordAfter(issuedAt))
	})

	t.Run("changed after issuance", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildPersisted()
		u.ChangePassword("new_hash", issuedAt.Add(10*time.Second))
		assert.True(t, u.ChangedPasswordAfter(issuedAt))
		assert.Equal(t, "new_hash", u.PasswordHash())
	})
}

func TestMarkVerified(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	u := builder.NewUserBuilder().AsUnverified().BuildPersisted()
	u.SetVerificationToken("hashed-token")
	creditID := uuid.New()

	u.MarkVerified(creditID, now)

	assert.True(t, u.IsVerified())
	assert.Nil(t, u.VerificationToken())
	if diff := cmp.Diff(&creditID, u.CreditID()); diff != "" {
		t.Errorf("credit id mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, now, u.UpdatedAt())
}

func TestNewCredentials(t *testing.T) {
	_, err := user.NewCredentials("test@example.com", "short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	c, err := user.NewCredentials(" Test@Example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", c.Email().Value())
	assert.Equal(t, "password123", c.Password().Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
