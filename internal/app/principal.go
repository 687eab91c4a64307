package app

// Principal is the authenticated identity derived from a validated token.
// It is never persisted; authorization checks are computed over it.
type Principal struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// HasRole reports whether the principal carries exactly the given role.
// A nil principal (unauthenticated request) never holds any role.
func (p *Principal) HasRole(role string) bool {
	return p != nil && p.Role == role
}

// IsSelf reports whether the principal is the user with the given id.
func (p *Principal) IsSelf(userID uint) bool {
	return p != nil && p.UserID == userID
}
