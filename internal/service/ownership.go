package service

import (
	"strings"

	"github.com/google/uuid"

	"course-api/internal/domain"
)

// AuthorizeOwner permite la operacion solo si el curso pertenece a la identidad.
// Ambos ids se comparan en su forma canonica de string.
func AuthorizeOwner(identity domain.User, course domain.Course) error {
	owner := canonicalID(course.UserID)
	if owner == "" || owner != canonicalID(identity.ID) {
		return ErrForbidden
	}
	return nil
}

func canonicalID(id string) string {
	id = strings.TrimSpace(id)
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return id
}
