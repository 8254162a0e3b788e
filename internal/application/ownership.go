package application

import "github.com/google/uuid"

// OwnedBy reports whether actorID and ownerID name the same account. The two
// ids can arrive in different shapes (case, urn: prefix, braces), so both go
// through uuid.Parse before comparing; ids that are not UUIDs fall back to
// exact string equality. Every mutating handler calls this fresh against the
// resource it just loaded; the result is never cached.
func OwnedBy(actorID, ownerID string) bool {
	if actorID == "" || ownerID == "" {
		return false
	}
	a, errA := uuid.Parse(actorID)
	o, errO := uuid.Parse(ownerID)
	if errA != nil || errO != nil {
		return actorID == ownerID
	}
	return a == o
}
