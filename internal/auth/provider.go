package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PaulBabatuyi/campusnet-gRPC/internal/apperr"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/badge"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/data"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/logger"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/normalize"
	"github.com/PaulBabatuyi/campusnet-gRPC/internal/validation"
)

type AccountStore interface {
	CreateAccount(ctx context.Context, email, hashedPassword string) (*data.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*data.Account, error)
	GetAccountByID(ctx context.Context, id bson.ObjectID) (*data.Account, error)
}

type SessionStore interface {
	CreateSession(ctx context.Context, sess *data.Session) error
	GetSession(ctx context.Context, id string) (*data.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

type RoleStore interface {
	GrantRole(ctx context.Context, userID bson.ObjectID, role string) error
	HasRole(ctx context.Context, userID bson.ObjectID, role string) (bool, error)
}

type ProfileStore interface {
	CreateProfile(ctx context.Context, prof *data.Profile) error
	GetProfile(ctx context.Context, id bson.ObjectID) (*data.Profile, error)
}

// Stores groups the stores the provider reads and writes.
type Stores struct {
	Accounts AccountStore
	Sessions SessionStore
	Roles    RoleStore
	Profiles ProfileStore
}

// Provider issues, loads and ends sessions.
type Provider struct {
	st     Stores
	jwt    *JWTManager
	admins map[string]bool
	log    logger.Logger
}

// NewProvider returns a Provider. Accounts whose email is in adminEmails get
// an admin grant at sign-up.
func NewProvider(st Stores, jwt *JWTManager, adminEmails []string, log logger.Logger) *Provider {
	admins := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		if e = normalize.Email(e); e != "" {
			admins[e] = true
		}
	}
	return &Provider{st: st, jwt: jwt, admins: admins, log: log}
}

// SignUpInput is the sign-up form. Year applies to students and Subject to
// professors.
type SignUpInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	FullName   string `json:"full_name" validate:"notblank,max=100"`
	Role       string `json:"role" validate:"required,oneof=student professor"`
	Department string `json:"department" validate:"omitempty,oneof=civil comp mech entc mba"`
	Year       string `json:"year" validate:"omitempty,oneof=FE SE TE BE"`
	Subject    string `json:"subject" validate:"omitempty,max=100"`
}

func (in SignUpInput) validate() error {
	in.Email = normalize.Email(in.Email)
	if err := validation.Struct(in); err != nil {
		return err
	}
	return CheckRoleFields(in.Role, in.Year, in.Subject)
}

// CheckRoleFields enforces that only students have a year and only
// professors have a subject.
func CheckRoleFields(role, year, subject string) error {
	switch {
	case year != "" && role != string(badge.RoleStudent):
		return apperr.NewValidationError("invalid year", apperr.FieldError{Field: "year", Error: "only students have a year"})
	case subject != "" && role != string(badge.RoleProfessor):
		return apperr.NewValidationError("invalid subject", apperr.FieldError{Field: "subject", Error: "only professors have a subject"})
	}
	return nil
}

// SignUp creates the account, its profile and role grants, then signs the
// user in.
func (p *Provider) SignUp(ctx context.Context, in SignUpInput) (*Session, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	acc, err := p.st.Accounts.CreateAccount(ctx, in.Email, hash)
	if err != nil {
		return nil, err
	}

	prof := &data.Profile{
		ID:         acc.ID,
		FullName:   strings.TrimSpace(in.FullName),
		Role:       in.Role,
		Department: in.Department,
		Year:       in.Year,
		Subject:    strings.TrimSpace(in.Subject),
	}
	if err := p.st.Profiles.CreateProfile(ctx, prof); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	if err := p.st.Roles.GrantRole(ctx, acc.ID, in.Role); err != nil {
		return nil, fmt.Errorf("grant role: %w", err)
	}
	if p.admins[acc.Email] {
		if err := p.st.Roles.GrantRole(ctx, acc.ID, string(badge.RoleAdmin)); err != nil {
			return nil, fmt.Errorf("grant admin: %w", err)
		}
		p.log.Info("admin role granted", "user_id", acc.ID.Hex())
	}

	return p.issue(ctx, acc)
}

type signInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignIn checks the credentials and opens a new session.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	if err := validation.Struct(signInInput{Email: normalize.Email(email), Password: password}); err != nil {
		return nil, err
	}
	acc, err := p.st.Accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := CheckPassword(acc.Password, password); err != nil {
		return nil, apperr.Forbidden("invalid credentials")
	}
	return p.issue(ctx, acc)
}

func (p *Provider) issue(ctx context.Context, acc *data.Account) (*Session, error) {
	token, claims, err := p.jwt.GenerateToken(acc.ID, acc.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	row := &data.Session{
		ID:        claims.ID,
		UserID:    acc.ID,
		CreatedAt: claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := p.st.Sessions.CreateSession(ctx, row); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return p.hydrate(ctx, token, claims, acc.ID)
}

// Load rebuilds the session a token stands for. Invalid or expired tokens,
// signed-out sessions and sessions of removed accounts are unauthenticated.
func (p *Provider) Load(ctx context.Context, token string) (*Session, error) {
	claims, err := p.jwt.VerifyToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUnauthenticated, err)
	}
	userID, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", apperr.ErrUnauthenticated)
	}

	row, err := p.st.Sessions.GetSession(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("%w: session ended", apperr.ErrUnauthenticated)
		}
		return nil, err
	}
	if row.UserID != userID {
		return nil, fmt.Errorf("%w: session mismatch", apperr.ErrUnauthenticated)
	}

	if _, err := p.st.Accounts.GetAccountByID(ctx, userID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("%w: account removed", apperr.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("load account: %w", err)
	}
	return p.hydrate(ctx, token, claims, userID)
}

func (p *Provider) hydrate(ctx context.Context, token string, claims *Claims, userID bson.ObjectID) (*Session, error) {
	sess := &Session{
		Token:     token,
		ID:        claims.ID,
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}

	prof, err := p.st.Profiles.GetProfile(ctx, userID)
	switch {
	case err == nil:
		sess.Profile = prof
	case !errors.Is(err, apperr.ErrNotFound):
		return nil, fmt.Errorf("load profile: %w", err)
	}

	if sess.IsAdmin, err = p.st.Roles.HasRole(ctx, userID, string(badge.RoleAdmin)); err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	return sess, nil
}

// SignOut deletes the session row; the token stops working immediately.
func (p *Provider) SignOut(ctx context.Context, sess *Session) error {
	if sess == nil {
		return nil
	}
	return p.st.Sessions.DeleteSession(ctx, sess.ID)
}
