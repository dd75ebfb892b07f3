package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedLibrary creates the entities a loan needs: author 1, reader 1,
// librarian 1 and book 1 with inventory available.
func seedLibrary(t *testing.T, ts *testServer) {
	t.Helper()

	ts.createAuthor(t, "Julio", "Cortázar")
	ts.createReader(t, "Ana", "ana@example.com")
	ts.createLibrarian(t, "Luis", "luis@example.com")
	ts.createBook(t, "Rayuela", "1")
}

func TestLoanCreate(t *testing.T) {
	ts := setupTestServer(t)
	seedLibrary(t, ts)

	loan := ts.createLoan(t, "1", "1", "1")

	assert.Equal(t, int64(1), loan.ID)
	assert.Equal(t, int64(1), loan.LectorID)
	assert.Equal(t, int64(1), loan.LibroID)
	assert.Equal(t, int64(1), loan.BibliotecarioID)
	assert.Equal(t, 72*time.Hour, loan.FechaDevolucion.Sub(loan.FechaPrestamo))
	assert.True(t, strings.HasPrefix(loan.FotoCredencial, "https://biblioteca.s3.amazonaws.com/credenciales/"))

	resp := ts.api.Get("/libro/1")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.False(t, decode[BookResponse](t, resp).Inventario, "book should leave inventory on loan")
}

func TestLoanCreateValidationOrder(t *testing.T) {
	ts := setupTestServer(t)
	seedLibrary(t, ts)

	cases := []struct {
		name    string
		fields  map[string]string
		status  int
		message string
	}{
		{
			name:    "unknown reader reported first",
			fields:  map[string]string{"lector_id": "9", "libro_id": "9", "bibliotecario_id": "9"},
			status:  http.StatusNotFound,
			message: "El lector no existe",
		},
		{
			name:    "unknown book",
			fields:  map[string]string{"lector_id": "1", "libro_id": "9", "bibliotecario_id": "9"},
			status:  http.StatusNotFound,
			message: "El libro no existe",
		},
		{
			name:    "unknown librarian",
			fields:  map[string]string{"lector_id": "1", "libro_id": "1", "bibliotecario_id": "9"},
			status:  http.StatusNotFound,
			message: "El bibliotecario no existe",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := ts.multipartRequest(t, http.MethodPost, "/prestamo/", tc.fields,
				"file", "credencial.jpg", []byte("foto"))
			assert.Equal(t, tc.status, resp.Code)
			assert.Equal(t, tc.message, decode[APIError](t, resp).Message)
		})
	}

	// None of the rejected attempts should have stored a loan.
	resp := ts.api.Get("/prestamos/")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, decode[[]LoanResponse](t, resp))
}

func TestLoanCreateBookUnavailable(t *testing.T) {
	ts := setupTestServer(t)
	seedLibrary(t, ts)
	ts.createReader(t, "Berta", "berta@example.com")
	ts.createLoan(t, "1", "1", "1")

	resp := ts.multipartRequest(t, http.MethodPost, "/prestamo/", map[string]string{
		"lector_id":        "2",
		"libro_id":         "1",
		"bibliotecario_id": "1",
	}, "file", "credencial.jpg", []byte("foto"))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "El libro no está disponible en inventario", decode[APIError](t, resp).Message)
}

func TestLoanCreateMissingFile(t *testing.T) {
	ts := setupTestServer(t)
	seedLibrary(t, ts)

	resp := ts.multipartRequest(t, http.MethodPost, "/prestamo/", map[string]string{
		"lector_id":        "1",
		"libro_id":         "1",
		"bibliotecario_id": "1",
	}, "", "", nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLoanGetNotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/prestamo/5")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "El prestamo no se encontró", decode[APIError](t, resp).Message)
}

func TestLoanUpdateFechaPrestamoRecomputesDueDate(t *testing.T) {
	ts := setupTestServer(t)
	seedLibrary(t, ts)
	ts.createLoan(t, "1", "1", "1")

	resp := ts.multipartRequest(t, http.MethodPut, "/prestamo/1", map[string]string{
		"fecha_prestamo": "2026-08-01T10:00:00Z",
	}, "", "", nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	updated := decode[LoanResponse](t, resp)
	assert.Equal(t, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), updated.FechaPrestamo)
	assert.Equal(t, time.Date(2026, 8, 4, 10, 0, 0, 0, time.UTC), updated.FechaDevolucion)
}

func TestLoanUpdateNewCredential(t *testing.T) {
	ts := setupTestServer(t)
	seedLibrary(t, ts)
	loan := ts.createLoan(t, "1", "1", "1")

	resp := ts.multipartRequest(t, http.MethodPut, "/prestamo/1", map[string]string{},
		"foto_credencial", "nueva.jpg", []byte("nueva foto"))
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	updated := decode[LoanResponse](t, resp)
	assert.NotEqual(t, loan.FotoCredencial, updated.FotoCredencial)
	assert.True(t, strings.HasSuffix(updated.FotoCredencial, "_nueva.jpg"))
}

func TestLoanUpdateEmptyForm(t *testing.T) {
	ts := setupTestServer(t)
	seedLibrary(t, ts)
	ts.createLoan(t, "1", "1", "1")

	resp := ts.multipartRequest(t, http.MethodPut, "/prestamo/1", map[string]string{}, "", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "No hay datos para actualizar", decode[APIError](t, resp).Message)
}

func TestLoanUpdateNotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.multipartRequest(t, http.MethodPut, "/prestamo/9", map[string]string{
		"lector_id": "1",
	}, "", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "El préstamo no se encontró", decode[APIError](t, resp).Message)
}

func TestLoanDeleteRestoresInventory(t *testing.T) {
	ts := setupTestServer(t)
	seedLibrary(t, ts)
	ts.createLoan(t, "1", "1", "1")

	resp := ts.api.Delete("/prestamo/1")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "El préstamo se eliminó correctamente", decode[MessageResponse](t, resp).Message)

	resp = ts.api.Get("/libro/1")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, decode[BookResponse](t, resp).Inventario)
}

// TestLoanLifecycle walks a full circulation cycle: a book is loaned
// out, a second loan for it is rejected, the loan is returned and the
// book can be borrowed again.
func TestLoanLifecycle(t *testing.T) {
	ts := setupTestServer(t)
	ts.createAuthor(t, "Jorge Luis", "Borges")
	ts.createReader(t, "Ana", "ana@example.com")
	ts.createReader(t, "Berta", "berta@example.com")
	ts.createLibrarian(t, "Luis", "luis@example.com")
	ts.createBook(t, "Ficciones", "1")

	first := ts.createLoan(t, "1", "1", "1")
	assert.Equal(t, int64(1), first.ID)

	resp := ts.api.Get("/libro/1")
	require.Equal(t, http.StatusOK, resp.Code)
	require.False(t, decode[BookResponse](t, resp).Inventario)

	resp = ts.multipartRequest(t, http.MethodPost, "/prestamo/", map[string]string{
		"lector_id":        "2",
		"libro_id":         "1",
		"bibliotecario_id": "1",
	}, "file", "credencial.jpg", []byte("foto"))
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, "El libro no está disponible en inventario", decode[APIError](t, resp).Message)

	resp = ts.api.Delete("/prestamo/1")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/libro/1")
	require.Equal(t, http.StatusOK, resp.Code)
	require.True(t, decode[BookResponse](t, resp).Inventario)

	second := ts.createLoan(t, "2", "1", "1")
	assert.Equal(t, int64(1), second.ID, "lowest free loan ID is reused after deleting the highest")
	assert.Equal(t, int64(2), second.LectorID)

	resp = ts.api.Get("/prestamos/")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decode[[]LoanResponse](t, resp), 1)
}
