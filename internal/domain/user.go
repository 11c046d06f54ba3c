package domain

import "time"

// User es el registro de identidad; EmailAddress actua como clave natural de login.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	EmailAddress string    `json:"emailAddress"`
	PasswordHash string    `json:"-"`
	Courses      string    `json:"courses,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Owner es la proyeccion publica del duenio de un curso.
type Owner struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (u User) AsOwner() Owner {
	return Owner{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}

// MissingFields devuelve un mensaje por cada campo requerido vacio, en orden de declaracion.
// El password se valida en texto plano antes de hashearlo.
func (u User) MissingFields(password string) []string {
	return collectMissing(
		requiredField{"firstName", u.FirstName},
		requiredField{"lastName", u.LastName},
		requiredField{"emailAddress", u.EmailAddress},
		requiredField{"password", password},
	)
}
