package domain

// Book is a catalog entry. Inventario is the sole availability signal:
// true means the book can be loaned out, false means it currently is.
type Book struct {
	ID            int64  `json:"id"`
	Titulo        string `json:"titulo"`
	AutorID       int64  `json:"autor_id"`
	Descripcion   string `json:"descripcion"`
	ImagenPortada string `json:"imagen_portada"`
	Inventario    bool   `json:"inventario"`
}

// BookPatch carries the fields of a partial book update.
type BookPatch struct {
	Titulo        *string
	AutorID       *int64
	Descripcion   *string
	ImagenPortada *string
	Inventario    *bool
}

// IsZero reports whether the patch carries no fields.
func (p BookPatch) IsZero() bool {
	return p.Titulo == nil && p.AutorID == nil && p.Descripcion == nil &&
		p.ImagenPortada == nil && p.Inventario == nil
}

// Apply merges the patch into b. The ID is never modified.
func (p BookPatch) Apply(b *Book) {
	if p.Titulo != nil {
		b.Titulo = *p.Titulo
	}
	if p.AutorID != nil {
		b.AutorID = *p.AutorID
	}
	if p.Descripcion != nil {
		b.Descripcion = *p.Descripcion
	}
	if p.ImagenPortada != nil {
		b.ImagenPortada = *p.ImagenPortada
	}
	if p.Inventario != nil {
		b.Inventario = *p.Inventario
	}
}
