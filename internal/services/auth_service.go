package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
	"github.com/WebFlexrr/vendorsphere-sub000/internal/repos"
)

var (
	ErrBadCreds = errors.New("invalid email or password")
	ErrBadToken = errors.New("invalid or expired token")
)

type AuthService struct {
	Users  *repos.UserRepo
	Secret []byte
	TTL    time.Duration
}

// Login verifies credentials and issues a signed HS256 access token carrying
// the user's role.
func (s *AuthService) Login(email, password string) (string, *domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return "", nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", nil, ErrBadCreds
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.TTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.Secret)
	if err != nil {
		return "", nil, err
	}
	return signed, u, nil
}

// CurrentUser resolves a bearer token to its account.
func (s *AuthService) CurrentUser(token string) (*domain.User, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return s.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrBadToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrBadToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrBadToken
	}
	return s.Users.ByID(sub)
}

func (s *AuthService) UpdateProfile(userID, name, email string) (*domain.User, error) {
	if err := s.Users.UpdateProfile(userID, name, email); err != nil {
		return nil, err
	}
	return s.Users.ByID(userID)
}
