package domain

// Reader is a library member who can take out loans.
type Reader struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
}

// ReaderPatch carries the fields of a partial reader update.
type ReaderPatch struct {
	Nombre   *string
	Apellido *string
	Correo   *string
}

// IsZero reports whether the patch carries no fields.
func (p ReaderPatch) IsZero() bool {
	return p.Nombre == nil && p.Apellido == nil && p.Correo == nil
}

// Apply merges the patch into r. The ID is never modified.
func (p ReaderPatch) Apply(r *Reader) {
	if p.Nombre != nil {
		r.Nombre = *p.Nombre
	}
	if p.Apellido != nil {
		r.Apellido = *p.Apellido
	}
	if p.Correo != nil {
		r.Correo = *p.Correo
	}
}
