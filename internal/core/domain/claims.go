package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the self-contained identity proof carried by every access
// token: subject id, email and role plus the standard issued-at and
// expiry timestamps. Role reflects the identity's role at issuance time
// only — there is no revocation list, so a later role change never
// affects tokens already in the wild. The expiry bound is the sole
// invalidation mechanism.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// NewClaims builds token claims for user, valid for ttl from now.
func NewClaims(user *User, ttl time.Duration, now time.Time) *Claims {
	return &Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}
