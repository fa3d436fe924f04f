// Package tenant implements farm-level record visibility.
package tenant

// Scope describes which farm's records a requester may see. Admins see every
// farm. A user with no farm assigned also sees everything — that mirrors the
// system this replaces (scoping simply became a no-op for farm-less accounts)
// and is kept deliberately rather than silently tightened.
type Scope struct {
	FarmID *uint
	Admin  bool
}

// All reports whether the scope grants full cross-farm visibility.
func (s Scope) All() bool {
	return s.Admin || s.FarmID == nil
}

// CanSee reports whether a row owned by farmID is visible to this scope.
func (s Scope) CanSee(farmID *uint) bool {
	if s.All() {
		return true
	}
	return farmID != nil && *farmID == *s.FarmID
}
