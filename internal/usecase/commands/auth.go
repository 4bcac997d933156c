package commands

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html"
	"log/slog"
	"net/url"
	"time"

	"course-checkout/internal/domain/credit"
	"course-checkout/internal/domain/user"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/pkg/password"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUserNotFound             = errs.NotFound("user not found")
	ErrInvalidCredentials       = errs.Unauthorized("Incorrect email or password")
	ErrUserInactive             = errs.Forbidden("user account is inactive")
	ErrEmailTaken               = errs.Conflict("email already registered")
	ErrInvalidVerificationToken = errs.Validation("verification token is invalid or already used")
	ErrTokenGeneration          = errs.New("token generation failed")
)

const verificationTokenBytes = 32

// TokenIssuer signs access tokens for an authenticated user.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
}

type IdentitySettings struct {
	CreditAmount   decimal.Decimal
	CreditValidity time.Duration
	VerifyURL      string
	TeamName       string
}

type SignupRequest struct {
	Name     string
	Email    string
	Password string
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID uuid.UUID
	Role   user.Role
	Token  string
}

type AuthCommands interface {
	Signup(ctx context.Context, req SignupRequest) (uuid.UUID, error)
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	// ChangePassword invalidates every token issued before the change and
	// returns a fresh one.
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow      shared.UnitOfWork
	tokens   TokenIssuer
	mailer   shared.Mailer
	settings IdentitySettings
	clock    clock.Clock
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	tokens TokenIssuer,
	mailer shared.Mailer,
	settings IdentitySettings,
	clk clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		uow:      uow,
		tokens:   tokens,
		mailer:   mailer,
		settings: settings,
		clock:    clk,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, req SignupRequest) (uuid.UUID, error) {
	credentials, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash password")
	}

	u, err := user.NewUser(req.Name, credentials.Email(), hash, user.RoleUser, a.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	token, err := newVerificationToken()
	if err != nil {
		return uuid.Nil, err
	}
	u.SetVerificationToken(hashToken(token))

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if errs.Is(err, errs.ErrConflict) {
		return uuid.Nil, ErrEmailTaken
	}
	if err != nil {
		return uuid.Nil, err
	}

	if err := a.mailer.Send(ctx, a.verificationMessage(u, token)); err != nil {
		slog.Warn("verification email failed", "user_id", u.ID(), "error", err.Error())
	}
	return u.ID(), nil
}

// VerifyEmail consumes the token and grants the sign-up credit in the same transaction.
func (a *authCommandsImpl) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidVerificationToken
	}
	now := a.clock.Now()

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByVerificationToken(ctx, hashToken(token))
		if err != nil {
			return notFoundAs(err, ErrInvalidVerificationToken)
		}
		if u.IsVerified() {
			return ErrInvalidVerificationToken
		}

		grant, err := credit.Grant(u.ID(), a.settings.CreditAmount, a.settings.CreditValidity, now)
		if err != nil {
			return err
		}
		if err := tx.Credits().Create(ctx, grant); err != nil {
			return err
		}

		u.MarkVerified(grant.ID(), now)
		return tx.Users().Update(ctx, u)
	})
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := a.uow.CommandReads().UserByEmail(ctx, email.Value())
	if err != nil {
		// Same error as a password mismatch so accounts cannot be enumerated.
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.ComparePassword(u.PasswordHash(), req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	return a.issue(u)
}

func (a *authCommandsImpl) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) (*LoginResult, error) {
	pw, err := user.NewPassword(next)
	if err != nil {
		return nil, err
	}

	var changed *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		if err := password.ComparePassword(u.PasswordHash(), current); err != nil {
			return ErrInvalidCredentials
		}

		hash, err := password.HashPassword(pw.Value())
		if err != nil {
			return errs.Wrap(err, "hash password")
		}
		u.ChangePassword(hash, a.clock.Now())
		if err := tx.Users().Update(ctx, u); err != nil {
			return err
		}
		changed = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.issue(changed)
}

func (a *authCommandsImpl) issue(u *user.User) (*LoginResult, error) {
	token, err := a.tokens.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{UserID: u.ID(), Role: u.Role(), Token: token}, nil
}

func (a *authCommandsImpl) verificationMessage(u *user.User, token string) shared.Message {
	link := a.settings.VerifyURL + "?token=" + url.QueryEscape(token)
	return shared.Message{
		To:      u.Email().Value(),
		Subject: "Verify your email address",
		Text: fmt.Sprintf(
			"Hi %s,\n\nPlease confirm your email address by opening the link below:\n%s\n\n%s",
			u.Name(), link, a.settings.TeamName,
		),
		HTML: fmt.Sprintf(
			`<p>Hi %s,</p><p>Please confirm your email address by clicking <a href="%s">here</a>.</p><p>%s</p>`,
			html.EscapeString(u.Name()), html.EscapeString(link), html.EscapeString(a.settings.TeamName),
		),
	}
}

func newVerificationToken() (string, error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "generate verification token")
	}
	return hex.EncodeToString(buf), nil
}

// hashToken is what gets stored; the raw token only ever travels in the email.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
