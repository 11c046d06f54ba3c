package domain

import (
	"fmt"
	"strings"
	"time"
)

// Course es un recurso con duenio. UserID guarda el id del duenio en forma canonica de string.
type Course struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EstimatedTime   string    `json:"estimatedTime,omitempty"`
	MaterialsNeeded string    `json:"materialsNeeded,omitempty"`
	UserID          string    `json:"user"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CourseDetail es la respuesta de GET /courses/:id.
type CourseDetail struct {
	Course Course `json:"course"`
	User   *Owner `json:"user"`
}

func (c Course) MissingFields() []string {
	return collectMissing(
		requiredField{"title", c.Title},
		requiredField{"description", c.Description},
	)
}

type requiredField struct {
	name  string
	value string
}

func collectMissing(fields ...requiredField) []string {
	var messages []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			messages = append(messages, RequiredFieldMessage(f.name))
		}
	}
	return messages
}

// RequiredFieldMessage arma el mensaje de validacion para un campo requerido.
func RequiredFieldMessage(field string) string {
	return fmt.Sprintf("Please provide a value for '%s'", field)
}
