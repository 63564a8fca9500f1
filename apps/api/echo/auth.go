package echoapi

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/tshims/potea/core"
	"github.com/tshims/potea/core/admin"
	"github.com/tshims/potea/core/user"
)

// Role tags indicating which credential set authenticated the caller.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const tokenContextKey = "token"

// Claims represents the authorization claims transmitted via a JWT.
// Subject holds the user/admin id; Role says which table it points into.
type Claims struct {
	jwt.StandardClaims
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
}

// CallerID returns the authenticated account id.
func (c Claims) CallerID() (int, error) {
	id, err := strconv.Atoi(c.Subject)
	if err != nil {
		return 0, errUnauthorized
	}
	return id, nil
}

func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    tokenContextKey,
		Claims:        new(Claims),
	}
}

func newClaims(conf *core.Config, subject int, fullName, role string) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			Issuer:    conf.AppName,
			Subject:   strconv.Itoa(subject),
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		FullName: fullName,
		Role:     role,
	}
}

func GetUserClaims(conf *core.Config, usr user.User) *Claims {
	return newClaims(conf, usr.ID, usr.FullName, RoleUser)
}

func GetAdminClaims(conf *core.Config, adm admin.Admin) *Claims {
	return newClaims(conf, adm.ID, adm.FullName, RoleAdmin)
}

// GenerateToken generates a signed JWT token string representing the Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(middleware.AlgorithmHS256)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(tokenContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// authenticateUser checks a user's credentials. Unknown name and wrong
// password are indistinguishable to the caller.
func authenticateUser(ctx context.Context, fullName, pwd string, svc *user.Service) (user.User, error) {
	usr, err := svc.GetByFullName(ctx, fullName)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return user.User{}, errAuthenticationFailed
		}
		return user.User{}, errors.Wrap(err, "finding user by full name")
	}
	if err = usr.CheckPassword(pwd); err != nil {
		return user.User{}, errAuthenticationFailed
	}
	return usr, nil
}

// authenticateAdmin checks an admin's credentials, keyed by username.
func authenticateAdmin(ctx context.Context, username, pwd string, svc *admin.Service) (admin.Admin, error) {
	adm, err := svc.GetByUsername(ctx, username)
	if err != nil {
		if errors.Cause(err) == admin.ErrNotFound {
			return admin.Admin{}, errAuthenticationFailed
		}
		return admin.Admin{}, errors.Wrap(err, "finding admin by username")
	}
	if err = adm.CheckPassword(pwd); err != nil {
		return admin.Admin{}, errAuthenticationFailed
	}
	return adm, nil
}
