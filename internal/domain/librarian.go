package domain

// Librarian is a staff member who registers loans.
type Librarian struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
}

// LibrarianPatch carries the fields of a partial librarian update.
type LibrarianPatch struct {
	Nombre   *string
	Apellido *string
	Correo   *string
}

// IsZero reports whether the patch carries no fields.
func (p LibrarianPatch) IsZero() bool {
	return p.Nombre == nil && p.Apellido == nil && p.Correo == nil
}

// Apply merges the patch into l. The ID is never modified.
func (p LibrarianPatch) Apply(l *Librarian) {
	if p.Nombre != nil {
		l.Nombre = *p.Nombre
	}
	if p.Apellido != nil {
		l.Apellido = *p.Apellido
	}
	if p.Correo != nil {
		l.Correo = *p.Correo
	}
}
