//go:build unit

package commands_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"course-checkout/internal/domain/user"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/pkg/password"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/shared"
	"course-checkout/tests/common/builder"
	"course-checkout/tests/common/fake"
	commandsmock "course-checkout/tests/mock/commands"
	sharedmock "course-checkout/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testPassword = "password123"

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	uow    *fake.UnitOfWork
	tokens *commandsmock.MockTokenIssuer
	mailer *sharedmock.MockMailer
	clock  *clock.MockClock
	cmds   commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = fake.NewUnitOfWork()
	s.tokens = commandsmock.NewMockTokenIssuer(s.ctrl)
	s.mailer = sharedmock.NewMockMailer(s.ctrl)
	s.clock = clock.NewMockClock(testNow)
	s.cmds = commands.NewAuthCommands(s.uow, s.tokens, s.mailer, commands.IdentitySettings{
		CreditAmount:   decimal.NewFromInt(500),
		CreditValidity: 60 * 24 * time.Hour,
		VerifyURL:      "https://courses.example.com/verify",
		TeamName:       "The Course Team",
	}, s.clock)
}

func (s *AuthCommandsTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) storedUser(mutate ...func(*builder.UserBuilder)) *user.User {
	hash, err := password.HashPasswordWithCost(testPassword, 4)
	s.Require().NoError(err)
	b := builder.NewUserBuilder().WithPasswordHash(hash)
	for _, m := range mutate {
		b.With(m)
	}
	u := b.BuildPersisted()
	s.uow.PutUser(u)
	return u
}

// tokenFromMail pulls the raw verification token out of the mailed link.
func (s *AuthCommandsTestSuite) tokenFromMail(msg shared.Message) string {
	idx := strings.Index(msg.Text, "https://")
	s.Require().GreaterOrEqual(idx, 0)
	link := strings.Fields(msg.Text[idx:])[0]
	u, err := url.Parse(link)
	s.Require().NoError(err)
	return u.Query().Get("token")
}

func (s *AuthCommandsTestSuite) TestSignupAndVerify() {
	ctx := context.Background()

	s.Run("success: verification grants the sign-up credit once", func() {
		var mailed shared.Message
		s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg shared.Message) error {
				mailed = msg
				return nil
			})

		id, err := s.cmds.Signup(ctx, commands.SignupRequest{Name: "Ada", Email: "Ada@Example.com", Password: testPassword})
		s.Require().NoError(err)

		u := s.uow.User(id)
		s.Require().NotNil(u)
		s.Equal("ada@example.com", u.Email().Value())
		s.False(u.IsVerified())
		s.Equal("ada@example.com", mailed.To)

		token := s.tokenFromMail(mailed)
		s.Require().NotEmpty(token)
		s.NotEqual(token, *u.VerificationToken(), "only the hash is stored")

		s.Require().NoError(s.cmds.VerifyEmail(ctx, token))

		u = s.uow.User(id)
		s.True(u.IsVerified())
		s.Nil(u.VerificationToken())
		s.Require().NotNil(u.CreditID())
		cr := s.uow.Credit(*u.CreditID())
		s.Require().NotNil(cr)
		s.True(decimal.NewFromInt(500).Equal(cr.Amount()))
		s.Equal(testNow.Add(60*24*time.Hour), cr.ExpiresAt())

		err = s.cmds.VerifyEmail(ctx, token)
		s.ErrorIs(err, commands.ErrInvalidVerificationToken)
	})

	s.Run("mail failure does not fail signup", func() {
		s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		_, err := s.cmds.Signup(ctx, commands.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: testPassword})

		s.NoError(err)
	})

	s.Run("error: duplicate email", func() {
		s.storedUser()

		_, err := s.cmds.Signup(ctx, commands.SignupRequest{Name: "Ada", Email: "TEST@example.com", Password: testPassword})

		s.ErrorIs(err, commands.ErrEmailTaken)
		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("error: weak password", func() {
		_, err := s.cmds.Signup(ctx, commands.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "short"})

		s.ErrorIs(err, user.ErrPasswordTooWeak)
	})

	s.Run("error: unknown verification token", func() {
		s.ErrorIs(s.cmds.VerifyEmail(ctx, "deadbeef"), commands.ErrInvalidVerificationToken)
		s.ErrorIs(s.cmds.VerifyEmail(ctx, ""), commands.ErrInvalidVerificationToken)
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()

	s.Run("success", func() {
		u := s.storedUser()
		s.tokens.EXPECT().GenerateToken(u.ID(), user.RoleUser).Return("signed-token", nil)

		res, err := s.cmds.Login(ctx, commands.LoginRequest{Email: "TEST@example.com", Password: testPassword})

		s.Require().NoError(err)
		s.Equal("signed-token", res.Token)
		s.Equal(u.ID(), res.UserID)
	})

	cases := []struct {
		name    string
		req     commands.LoginRequest
		inactive bool
		wantErr error
	}{
		{name: "wrong password", req: commands.LoginRequest{Email: "test@example.com", Password: "wrong-password"}, wantErr: commands.ErrInvalidCredentials},
		{name: "unknown email", req: commands.LoginRequest{Email: "nobody@example.com", Password: testPassword}, wantErr: commands.ErrInvalidCredentials},
		{name: "malformed email", req: commands.LoginRequest{Email: "not-an-email", Password: testPassword}, wantErr: commands.ErrInvalidCredentials},
		{name: "inactive account", req: commands.LoginRequest{Email: "test@example.com", Password: testPassword}, inactive: true, wantErr: commands.ErrUserInactive},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.storedUser(func(b *builder.UserBuilder) { b.IsActive = !tc.inactive })

			_, err := s.cmds.Login(ctx, tc.req)

			s.ErrorIs(err, tc.wantErr)
		})
	}

	s.Run("error: token signing failure", func() {
		s.storedUser()
		s.tokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("", errors.New("no key"))

		_, err := s.cmds.Login(ctx, commands.LoginRequest{Email: "test@example.com", Password: testPassword})

		s.True(errs.Is(err, commands.ErrTokenGeneration))
	})
}

func (s *AuthCommandsTestSuite) TestChangePassword() {
	ctx := context.Background()

	s.Run("success: stores the new hash and revokes older tokens", func() {
		u := s.storedUser()
		issuedBefore := testNow.Add(-time.Hour)
		s.tokens.EXPECT().GenerateToken(u.ID(), user.RoleUser).Return("fresh-token", nil)

		res, err := s.cmds.ChangePassword(ctx, u.ID(), testPassword, "new-password-456")

		s.Require().NoError(err)
		s.Equal("fresh-token", res.Token)
		stored := s.uow.User(u.ID())
		s.NoError(password.ComparePassword(stored.PasswordHash(), "new-password-456"))
		s.True(stored.ChangedPasswordAfter(issuedBefore))
	})

	s.Run("error: wrong current password", func() {
		u := s.storedUser()

		_, err := s.cmds.ChangePassword(ctx, u.ID(), "wrong-password", "new-password-456")

		s.ErrorIs(err, commands.ErrInvalidCredentials)
		s.NoError(password.ComparePassword(s.uow.User(u.ID()).PasswordHash(), testPassword))
	})

	s.Run("error: weak new password", func() {
		u := s.storedUser()

		_, err := s.cmds.ChangePassword(ctx, u.ID(), testPassword, "short")

		s.ErrorIs(err, user.ErrPasswordTooWeak)
	})
}
