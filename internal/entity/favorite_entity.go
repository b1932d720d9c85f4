package entity

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteKind tags which entity a favorite references.
type FavoriteKind string

const (
	FavoriteMachine   FavoriteKind = "machine"
	FavoriteComponent FavoriteKind = "component"
)

// ValidFavoriteKind reports whether s names a known favorite kind.
func ValidFavoriteKind(s string) bool {
	switch FavoriteKind(s) {
	case FavoriteMachine, FavoriteComponent:
		return true
	}
	return false
}

// FavoriteRef is a tagged reference with exactly one payload: the id of a
// machine or of a component, never both. The schema stores two nullable
// columns; this type is the only shape the domain layer sees, so the
// "id agrees with kind" invariant holds by construction.
type FavoriteRef struct {
	Kind FavoriteKind
	Id   uuid.UUID
}

func MachineRef(id uuid.UUID) FavoriteRef {
	return FavoriteRef{Kind: FavoriteMachine, Id: id}
}

func ComponentRef(id uuid.UUID) FavoriteRef {
	return FavoriteRef{Kind: FavoriteComponent, Id: id}
}

type Favorite struct {
	Id        uuid.UUID
	UserKey   string
	Ref       FavoriteRef
	CreatedAt time.Time
}
