package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/bibliodigital/biblioteca-server/internal/config"
	"github.com/bibliodigital/biblioteca-server/internal/objectstore"
	"github.com/bibliodigital/biblioteca-server/internal/service"
	"github.com/bibliodigital/biblioteca-server/internal/store"
)

// testServer wraps the API server for handler testing.
type testServer struct {
	*Server
	api humatest.TestAPI
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	st, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, st.Close())
	})

	objects, err := objectstore.New(t.TempDir(), "biblioteca", "s3.amazonaws.com")
	require.NoError(t, err)

	services := service.New(st, objects, logger)

	cfg := &config.Config{
		App:    config.AppConfig{Environment: "development"},
		Server: config.ServerConfig{Port: "0", ReadTimeout: 15 * time.Second, WriteTimeout: 15 * time.Second, IdleTimeout: time.Minute},
	}

	s := NewServer(cfg, st, services, logger)

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, s.api),
	}
}

// decode unmarshals a recorded response body.
func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out), "body: %s", resp.Body.String())
	return out
}

// createAuthor creates an author through the API and fails the test on error.
func (ts *testServer) createAuthor(t *testing.T, nombre, apellido string) AuthorResponse {
	t.Helper()

	resp := ts.api.Post("/autor/", map[string]any{
		"nombre":    nombre,
		"apellido":  apellido,
		"biografia": "Biografía de " + nombre,
	})
	require.Equal(t, http.StatusOK, resp.Code, "create author failed: %s", resp.Body.String())
	return decode[AuthorResponse](t, resp)
}

// createReader creates a reader through the API.
func (ts *testServer) createReader(t *testing.T, nombre, correo string) ReaderResponse {
	t.Helper()

	resp := ts.api.Post("/lector", map[string]any{
		"nombre":   nombre,
		"apellido": "Prueba",
		"correo":   correo,
	})
	require.Equal(t, http.StatusOK, resp.Code, "create reader failed: %s", resp.Body.String())
	return decode[ReaderResponse](t, resp)
}

// createLibrarian creates a librarian through the API.
func (ts *testServer) createLibrarian(t *testing.T, nombre, correo string) LibrarianResponse {
	t.Helper()

	resp := ts.api.Post("/bibliotecario", map[string]any{
		"nombre":   nombre,
		"apellido": "Prueba",
		"correo":   correo,
	})
	require.Equal(t, http.StatusOK, resp.Code, "create librarian failed: %s", resp.Body.String())
	return decode[LibrarianResponse](t, resp)
}

// multipartRequest performs a multipart request against the chi router.
// File fields map a form field to a filename; data is the file content.
func (ts *testServer) multipartRequest(t *testing.T, method, path string, fields map[string]string, fileField, filename string, fileData []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	ts.Router().ServeHTTP(w, req)

	return w
}

// createBook creates a book with a cover through the multipart endpoint.
func (ts *testServer) createBook(t *testing.T, titulo string, autorID string) BookResponse {
	t.Helper()

	resp := ts.multipartRequest(t, http.MethodPost, "/libro", map[string]string{
		"titulo":      titulo,
		"autor_id":    autorID,
		"descripcion": "Descripción de " + titulo,
	}, "file", "portada.jpg", []byte("portada"))
	require.Equal(t, http.StatusOK, resp.Code, "create book failed: %s", resp.Body.String())

	return decode[BookResponse](t, resp)
}

// createLoan registers a loan with a credential photo.
func (ts *testServer) createLoan(t *testing.T, lectorID, libroID, bibliotecarioID string) LoanResponse {
	t.Helper()

	resp := ts.multipartRequest(t, http.MethodPost, "/prestamo/", map[string]string{
		"lector_id":        lectorID,
		"libro_id":         libroID,
		"bibliotecario_id": bibliotecarioID,
	}, "file", "credencial.jpg", []byte("foto"))
	require.Equal(t, http.StatusOK, resp.Code, "create loan failed: %s", resp.Body.String())

	return decode[LoanResponse](t, resp)
}
