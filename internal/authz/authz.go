// Package authz holds the single ownership/role predicate used by every
// resource that belongs to a user.
package authz

import "github.com/BruksfildServices01/event-catering/internal/models"

type Principal struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

func PrincipalOf(u *models.User) Principal {
	return Principal{ID: u.ID, Email: u.Email, Role: u.Role}
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// Allow reports whether p may act on a resource owned by ownerID.
// Holders of a privileged role bypass the ownership check.
func Allow(p Principal, ownerID string, privileged ...models.Role) bool {
	for _, r := range privileged {
		if p.Role == r {
			return true
		}
	}
	return p.ID != "" && p.ID == ownerID
}

// OwnerScope returns the owner filter for list queries; empty means no filter.
func OwnerScope(p Principal) string {
	if p.IsAdmin() {
		return ""
	}
	return p.ID
}
