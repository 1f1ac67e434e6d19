package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/storage"
)

// Claims are issued by the identity provider. Subject is the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type identity struct {
	userID string
	role   lifecycle.Role
}

type ctxKey int

const (
	identityKey ctxKey = iota
	actorKey
)

var errUnauthorized = errors.New("unauthorized")

// IssueToken signs claims for userID. The service only verifies tokens; this is used by
// tooling and tests.
func IssueToken(secret []byte, userID string, role lifecycle.Role, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = userID
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: role.String(), RegisteredClaims: claims})
	return token.SignedString(secret)
}

func (s *Server) parseToken(raw string) (identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return identity{}, fmt.Errorf("%w: invalid or expired token", errUnauthorized)
	}
	if claims.Subject == "" {
		return identity{}, fmt.Errorf("%w: token has no subject", errUnauthorized)
	}
	role, err := lifecycle.ParseRole(claims.Role)
	if err != nil {
		return identity{}, fmt.Errorf("%w: token has no valid role", errUnauthorized)
	}
	return identity{userID: claims.Subject, role: role}, nil
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="smartplate"`)
			respondError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}
		id, err := s.parseToken(strings.TrimSpace(raw))
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Bearer realm="smartplate", error="invalid_token"`)
			respondError(w, http.StatusUnauthorized, "unauthorized", err.Error())
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, id)))
	})
}

// actorMiddleware loads the caller's profile. Callers without one are told to register.
func (s *Server) actorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := identityFrom(r.Context())
		actor, err := s.service.ResolveActor(r.Context(), id.userID, id.role)
		if err != nil {
			s.writeActorError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
	})
}

func (s *Server) writeActorError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		respondError(w, http.StatusForbidden, "profile_required", "create a profile first")
		return
	}
	s.writeError(w, r, err)
}

func requireRole(role lifecycle.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if actorFrom(r.Context()).Role != role {
				respondError(w, http.StatusForbidden, "forbidden", role.String()+" accounts only")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func identityFrom(ctx context.Context) identity {
	id, _ := ctx.Value(identityKey).(identity)
	return id
}

func actorFrom(ctx context.Context) lifecycle.Actor {
	actor, _ := ctx.Value(actorKey).(lifecycle.Actor)
	return actor
}
