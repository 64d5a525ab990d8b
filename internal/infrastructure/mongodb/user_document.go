package mongodb

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
)

// userDocument is the stored shape of a user. updatedAt is omitted until the
// first mutation.
type userDocument struct {
	ID        string     `bson:"_id"`
	Email     string     `bson:"email"`
	Name      string     `bson:"name"`
	Role      string     `bson:"role"`
	IsActive  bool       `bson:"isActive"`
	CreatedAt time.Time  `bson:"createdAt"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty"`
}

var errCorruptDocument = errors.New("corrupt user document")

func toDocument(u *entity.User) userDocument {
	doc := userDocument{
		ID:        u.ID(),
		Email:     u.Email().String(),
		Name:      u.Name(),
		Role:      u.Role().String(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt().UTC(),
	}
	if t, ok := u.UpdatedAt(); ok {
		t = t.UTC()
		doc.UpdatedAt = &t
	}
	return doc
}

// toDomain rehydrates a stored user. unknownRole is true when the stored role
// did not parse and the default was used instead.
func toDomain(doc userDocument) (u *entity.User, unknownRole bool, err error) {
	switch {
	case strings.TrimSpace(doc.ID) == "":
		return nil, false, fmt.Errorf("%w: empty id", errCorruptDocument)
	case strings.TrimSpace(doc.Name) == "":
		return nil, false, fmt.Errorf("%w: id %s: empty name", errCorruptDocument, doc.ID)
	}
	email, err := entity.NewEmail(doc.Email)
	if err != nil {
		return nil, false, fmt.Errorf("%w: id %s: %v", errCorruptDocument, doc.ID, err)
	}
	role, ok := entity.ParseRole(doc.Role)
	return entity.ReconstructUser(doc.ID, email, doc.Name, role, doc.IsActive, doc.CreatedAt, doc.UpdatedAt), !ok, nil
}
