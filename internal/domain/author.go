package domain

// Author is a book author. Wire names follow the public API.
type Author struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Biografia string `json:"biografia"`
}

// AuthorPatch carries the fields of a partial author update.
// Nil fields are left untouched.
type AuthorPatch struct {
	Nombre    *string
	Apellido  *string
	Biografia *string
}

// IsZero reports whether the patch carries no fields.
func (p AuthorPatch) IsZero() bool {
	return p.Nombre == nil && p.Apellido == nil && p.Biografia == nil
}

// Apply merges the patch into a. The ID is never modified.
func (p AuthorPatch) Apply(a *Author) {
	if p.Nombre != nil {
		a.Nombre = *p.Nombre
	}
	if p.Apellido != nil {
		a.Apellido = *p.Apellido
	}
	if p.Biografia != nil {
		a.Biografia = *p.Biografia
	}
}
