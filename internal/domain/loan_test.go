package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewLoanDueDate(t *testing.T) {
	now := time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC)

	l := NewLoan(1, 2, 3, "https://example.com/foto.jpg", now)

	assert.Equal(t, now, l.FechaPrestamo)
	assert.Equal(t, now.Add(72*time.Hour), l.FechaDevolucion)
	assert.Zero(t, l.ID)
}

func TestLoanPatchApplyRecomputesDueDate(t *testing.T) {
	now := time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC)
	l := NewLoan(1, 2, 3, "foto", now)

	newDate := now.AddDate(0, 0, 5)
	patch := LoanPatch{FechaPrestamo: &newDate}
	patch.Apply(l)

	assert.Equal(t, newDate, l.FechaPrestamo)
	assert.Equal(t, newDate.Add(LoanPeriod), l.FechaDevolucion)
	// Unchanged fields stay put.
	assert.Equal(t, int64(1), l.LectorID)
	assert.Equal(t, "foto", l.FotoCredencial)
}

func TestLoanPatchApplyWithoutDateKeepsDueDate(t *testing.T) {
	now := time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC)
	l := NewLoan(1, 2, 3, "foto", now)

	lector := int64(7)
	patch := LoanPatch{LectorID: &lector}
	patch.Apply(l)

	assert.Equal(t, int64(7), l.LectorID)
	assert.Equal(t, now.Add(LoanPeriod), l.FechaDevolucion)
}

func TestLoanPatchIsZero(t *testing.T) {
	assert.True(t, LoanPatch{}.IsZero())

	v := int64(1)
	assert.False(t, LoanPatch{LibroID: &v}.IsZero())
}
