package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/top-system/light-news/constants"
	apperrors "github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
	"github.com/top-system/light-news/models/dto"
)

const defaultTokenExpired = 24 * 60 * 60

type options struct {
	issuer        string
	signingMethod jwt.SigningMethod
	signingKey    interface{}
	keyfunc       jwt.Keyfunc
	expired       int
	tokenType     string
}

// AuthService issues and validates bearer tokens.
// Every issued token id is kept in the cache until expiry so that logout can revoke it.
type AuthService struct {
	opts  *options
	cache lib.Cache
}

func NewAuthService(cache lib.Cache, config lib.Config) AuthService {
	signingKey := []byte(config.Auth.Secret)
	expired := config.Auth.TokenExpired
	if expired <= 0 {
		expired = defaultTokenExpired
	}

	opts := &options{
		issuer:        config.Name,
		tokenType:     "Bearer",
		expired:       expired,
		signingMethod: jwt.SigningMethodHS256,
		signingKey:    signingKey,
		keyfunc: func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, apperrors.AuthTokenInvalid
			}
			return signingKey, nil
		},
	}

	return AuthService{cache: cache, opts: opts}
}

func wrapperTokenKey(tokenID string) string {
	return fmt.Sprintf("%s:%s", constants.TokenKeyPrefix, tokenID)
}

func (a AuthService) GenerateToken(user *cms.User) (*dto.LoginResponse, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(a.opts.expired) * time.Second)
	claims := &dto.JwtClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			Issuer:    a.opts.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	accessToken, err := jwt.NewWithClaims(a.opts.signingMethod, claims).SignedString(a.opts.signingKey)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.AuthTokenGenerateFail, err.Error())
	}

	if err := a.cache.Set(wrapperTokenKey(claims.ID), user.ID, time.Until(expiresAt)); err != nil {
		return nil, apperrors.Wrap(apperrors.AuthTokenGenerateFail, err.Error())
	}

	return &dto.LoginResponse{
		Token:     accessToken,
		TokenType: a.opts.tokenType,
		ExpiresIn: a.opts.expired,
	}, nil
}

func (a AuthService) ParseToken(tokenString string) (*dto.JwtClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.JwtClaims{}, a.opts.keyfunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, apperrors.AuthTokenMalformed
		} else if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.AuthTokenExpired
		} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, apperrors.AuthTokenNotValidYet
		} else {
			return nil, apperrors.AuthTokenInvalid
		}
	}

	claims, ok := token.Claims.(*dto.JwtClaims)
	if !ok || !token.Valid || claims.UserID() == "" || claims.ID == "" {
		return nil, apperrors.AuthTokenInvalid
	}

	active, err := a.cache.Check(wrapperTokenKey(claims.ID))
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, apperrors.AuthTokenRevoked
	}

	return claims, nil
}

// DestroyToken revokes the token identified by claims
func (a AuthService) DestroyToken(claims *dto.JwtClaims) error {
	_, err := a.cache.Delete(wrapperTokenKey(claims.ID))
	return err
}
