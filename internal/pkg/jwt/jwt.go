package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Token issuance belongs to the platform's auth service; this backend only
// verifies bearer tokens and reads their claims. Encode exists for tests
// and local tooling.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	Encode(claims map[string]interface{}, ttl time.Duration) (string, error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) Encode(claims map[string]interface{}, ttl time.Duration) (string, error) {
	all := make(map[string]interface{}, len(claims)+1)
	for k, v := range claims {
		all[k] = v
	}
	if _, ok := all["exp"]; !ok {
		all["exp"] = time.Now().Add(ttl).Unix()
	}
	_, tokenString, err := j.tokenAuth.Encode(all)
	return tokenString, err
}
