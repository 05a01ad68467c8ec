package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"around/config"
	"around/internal/domain/service"
)

// devSecret is the fixed fallback signing key for non-production runs.
// Production refuses to start without an explicit secret.
const devSecret = "dev-secret-key"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing identity tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	secret := cfg.SecretKey.JWT
	if secret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("jwt signing secret must be provided in production")
		}
		logger.Warn("SECRETKEY_JWT is not set; using the insecure development signing secret",
			slog.String("env", cfg.Env.Env),
		)
		secret = devSecret
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    cfg.Auth.TokenTTL, // 7 days by default
	}, nil
}

// Issue creates a signed token whose subject is the given account id.
func (s *jwtService) Issue(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.Hex(),          // Subject (who the token is for)
		"iat": now.Unix(),            // Issued At
		"exp": now.Add(s.ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the signature and expiry of a token string and returns the
// subject account id. Every failure mode maps to service.ErrTokenInvalid:
// the caller must not be able to tell an expired token from a forged one.
func (s *jwtService) Verify(tokenString string) (primitive.ObjectID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return primitive.NilObjectID, service.ErrTokenInvalid
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return primitive.NilObjectID, service.ErrTokenInvalid
	}

	userID, err := primitive.ObjectIDFromHex(subject)
	if err != nil {
		return primitive.NilObjectID, service.ErrTokenInvalid
	}

	return userID, nil
}
