package auth

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified payload of a bearer credential. Permissions stays
// nil when the issuer omitted the claim entirely, which is distinct from an
// empty grant list.
type Claims struct {
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// Gate decides whether a request may proceed: the credential must be
// present, verifiable against the provider's key set, unexpired, and carry
// the exact permission the operation requires. It holds no per-request
// state, so concurrent use needs no coordination.
type Gate struct {
	keys     KeyProvider
	issuer   string
	audience string
}

// NewGate builds a gate for an OIDC provider domain, e.g.
// "tenant.auth0.com". Keys are fetched from the provider's JWKS endpoint
// and cached for 15 minutes.
func NewGate(providerDomain, audience string) *Gate {
	issuer := "https://" + providerDomain + "/"
	return &Gate{
		keys:     NewJWKCache(issuer+".well-known/jwks.json", 15*time.Minute),
		issuer:   issuer,
		audience: audience,
	}
}

// NewGateWithKeys wires an explicit key provider; used by tests and by
// deployments that distribute keys out of band.
func NewGateWithKeys(keys KeyProvider, issuer, audience string) *Gate {
	return &Gate{keys: keys, issuer: issuer, audience: audience}
}

// Authorize implements the per-request decision. authorizationHeader is the
// raw Authorization header value, possibly empty. On failure the returned
// error is always an *Error carrying the rejection kind.
func (g *Gate) Authorize(authorizationHeader string, required Permission) (*Claims, error) {
	tokenString, err := bearerToken(authorizationHeader)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, parseErr := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, errors.New("missing kid")
		}
		return g.keys.KeyForKid(kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(g.issuer),
		jwt.WithAudience(g.audience),
		jwt.WithExpirationRequired(),
	)
	if parseErr != nil || !token.Valid {
		return nil, classifyParseError(parseErr)
	}

	if claims.Permissions == nil {
		return nil, newError(KindMissingPermissionsClaim, errors.New("permissions claim not present"))
	}
	if !slices.Contains(claims.Permissions, string(required)) {
		return nil, newError(KindInsufficientScope, errors.New("permission "+string(required)+" not granted"))
	}
	return claims, nil
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", newError(KindMissingCredential, errors.New("authorization header not supplied"))
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", newError(KindMalformedCredential, errors.New("authorization header must be a bearer token"))
	}
	return parts[1], nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return newError(KindMalformedCredential, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return newError(KindExpired, err)
	default:
		// Signature mismatch, untrusted key, wrong audience or issuer:
		// the credential cannot be trusted against this provider.
		return newError(KindInvalidSignature, err)
	}
}
