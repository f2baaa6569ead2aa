package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
)

// sessionClaims are the identity fields carried by an access token.
type sessionClaims struct {
	UserID     string
	EmployeeID string
	Name       string
	Role       string
	SessionID  string
}

// claimsFromRequest reads the verified access token placed in the context
// by jwtauth.Verifier.
func claimsFromRequest(r *http.Request) (sessionClaims, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || claims == nil {
		return sessionClaims{}, false
	}

	var c sessionClaims
	c.UserID, _ = claims["user_id"].(string)
	c.EmployeeID, _ = claims["employee_id"].(string)
	c.Name, _ = claims["name"].(string)
	c.Role, _ = claims["role"].(string)
	c.SessionID, _ = claims["session_id"].(string)

	if c.EmployeeID == "" {
		return sessionClaims{}, false
	}
	return c, true
}

// optionalQuery returns nil for an absent or empty query parameter.
func optionalQuery(r *http.Request, key string) *string {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil
	}
	return &val
}

// getBoolQueryParam gets a bool query parameter with a default value
func getBoolQueryParam(r *http.Request, key string, defaultVal bool) bool {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
