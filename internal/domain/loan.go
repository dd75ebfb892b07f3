package domain

import "time"

// LoanPeriod is the fixed borrowing window. The due date is always the
// loan date plus this offset; there is no renewal or overdue state.
const LoanPeriod = 3 * 24 * time.Hour

// Loan links one reader, one book, and one librarian for a fixed
// borrowing window. Deleting the loan is the only terminus.
type Loan struct {
	ID              int64     `json:"id"`
	LectorID        int64     `json:"lector_id"`
	LibroID         int64     `json:"libro_id"`
	FechaPrestamo   time.Time `json:"fecha_prestamo"`
	FechaDevolucion time.Time `json:"fecha_devolucion"`
	BibliotecarioID int64     `json:"bibliotecario_id"`
	FotoCredencial  string    `json:"foto_credencial"`
}

// NewLoan builds an active loan starting now.
func NewLoan(lectorID, libroID, bibliotecarioID int64, fotoCredencial string, now time.Time) *Loan {
	return &Loan{
		LectorID:        lectorID,
		LibroID:         libroID,
		FechaPrestamo:   now,
		FechaDevolucion: now.Add(LoanPeriod),
		BibliotecarioID: bibliotecarioID,
		FotoCredencial:  fotoCredencial,
	}
}

// LoanPatch carries the fields of a partial loan update.
type LoanPatch struct {
	LectorID        *int64
	LibroID         *int64
	FechaPrestamo   *time.Time
	BibliotecarioID *int64
	FotoCredencial  *string
}

// IsZero reports whether the patch carries no fields.
func (p LoanPatch) IsZero() bool {
	return p.LectorID == nil && p.LibroID == nil && p.FechaPrestamo == nil &&
		p.BibliotecarioID == nil && p.FotoCredencial == nil
}

// Apply merges the patch into l. Supplying a new loan date recomputes the
// due date from it, overwriting whatever was stored. The ID is never modified.
func (p LoanPatch) Apply(l *Loan) {
	if p.LectorID != nil {
		l.LectorID = *p.LectorID
	}
	if p.LibroID != nil {
		l.LibroID = *p.LibroID
	}
	if p.FechaPrestamo != nil {
		l.FechaPrestamo = *p.FechaPrestamo
		l.FechaDevolucion = p.FechaPrestamo.Add(LoanPeriod)
	}
	if p.BibliotecarioID != nil {
		l.BibliotecarioID = *p.BibliotecarioID
	}
	if p.FotoCredencial != nil {
		l.FotoCredencial = *p.FotoCredencial
	}
}
