// internal/auth/roles.go
package auth

import "smpj_backend/internal/models"

// RoleAllowed reports whether role is in the whitelist. Pure check, no side
// effects; the middleware maps a false result to 403.
func RoleAllowed(role models.Role, allowed ...models.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
