package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
	"github.com/bibliodigital/biblioteca-server/internal/http/response"
	"github.com/bibliodigital/biblioteca-server/internal/service"
)

func (s *Server) registerBookRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listLibros",
		Method:      http.MethodGet,
		Path:        "/libros/",
		Summary:     "List books",
		Description: "Returns all books in ID order",
		Tags:        []string{"Libros"},
	}, s.handleListBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "getLibro",
		Method:      http.MethodGet,
		Path:        "/libro/{id}",
		Summary:     "Get book",
		Description: "Returns a book by ID",
		Tags:        []string{"Libros"},
	}, s.handleGetBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteLibro",
		Method:      http.MethodDelete,
		Path:        "/libro/{id}",
		Summary:     "Delete book",
		Description: "Deletes a book",
		Tags:        []string{"Libros"},
	}, s.handleDeleteBook)

	// Create and update take the cover image as a multipart upload, so
	// they're registered on chi directly.
	s.router.Post("/libro", s.handleCreateBook)
	s.router.Put("/libro/{id}", s.handleUpdateBook)
}

// === DTOs ===

type BookResponse struct {
	ID            int64  `json:"id" doc:"Book ID"`
	Titulo        string `json:"titulo" doc:"Title"`
	AutorID       int64  `json:"autor_id" doc:"Author ID"`
	Descripcion   string `json:"descripcion" doc:"Description"`
	ImagenPortada string `json:"imagen_portada" doc:"Cover image URL"`
	Inventario    bool   `json:"inventario" doc:"Whether the book is available for loan"`
}

type BookOutput struct {
	Body BookResponse
}

type ListBooksOutput struct {
	Body []BookResponse
}

type GetBookInput struct {
	ID int64 `path:"id" doc:"Book ID"`
}

// createBookForm carries the non-file fields of a book creation.
type createBookForm struct {
	Titulo  string `json:"titulo" validate:"required"`
	AutorID int64  `json:"autor_id" validate:"required,gt=0"`
}

// === Huma handlers ===

func (s *Server) handleListBooks(ctx context.Context, _ *struct{}) (*ListBooksOutput, error) {
	books, err := s.services.Books.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]BookResponse, len(books))
	for i, b := range books {
		resp[i] = mapBookResponse(b)
	}

	return &ListBooksOutput{Body: resp}, nil
}

func (s *Server) handleGetBook(ctx context.Context, input *GetBookInput) (*BookOutput, error) {
	b, err := s.services.Books.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &BookOutput{Body: mapBookResponse(b)}, nil
}

func (s *Server) handleDeleteBook(ctx context.Context, input *GetBookInput) (*MessageOutput, error) {
	msg, err := s.services.Books.Delete(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: msg}}, nil
}

// === Chi handlers (multipart) ===

// handleCreateBook creates a book from a multipart form with a
// required cover image. This is a chi handler (not Huma) because Huma
// doesn't easily support multipart forms.
func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "invalid multipart form", s.logger)
		return
	}

	cover, err := formUpload(r, "file")
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}
	if cover == nil {
		response.BadRequest(w, "file is required", s.logger)
		return
	}

	autorID, _, err := formInt64(r, "autor_id")
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	form := createBookForm{AutorID: autorID}
	form.Titulo, _ = formString(r, "titulo")
	if err := s.validator.Validate(form); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	descripcion, _ := formString(r, "descripcion")

	// Books enter the catalog available unless stated otherwise.
	inventario, ok, err := formBool(r, "inventario")
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}
	if !ok {
		inventario = true
	}

	book, err := s.services.Books.Create(r.Context(), service.CreateBookParams{
		Titulo:      form.Titulo,
		AutorID:     form.AutorID,
		Descripcion: descripcion,
		Inventario:  inventario,
		Cover:       *cover,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, mapBookResponse(book), s.logger)
}

// handleUpdateBook applies a partial update from a multipart form,
// optionally replacing the cover image.
func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "id must be an integer", s.logger)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "invalid multipart form", s.logger)
		return
	}

	cover, err := formUpload(r, "file")
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	var patch domain.BookPatch
	if v, ok := formString(r, "titulo"); ok {
		patch.Titulo = &v
	}
	if v, ok := formString(r, "descripcion"); ok {
		patch.Descripcion = &v
	}
	if v, ok, ferr := formInt64(r, "autor_id"); ferr != nil {
		response.BadRequest(w, ferr.Error(), s.logger)
		return
	} else if ok {
		patch.AutorID = &v
	}
	if v, ok, ferr := formBool(r, "inventario"); ferr != nil {
		response.BadRequest(w, ferr.Error(), s.logger)
		return
	} else if ok {
		patch.Inventario = &v
	}

	book, err := s.services.Books.Update(r.Context(), id, patch, cover)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, mapBookResponse(book), s.logger)
}

// === Mappers ===

func mapBookResponse(b *domain.Book) BookResponse {
	return BookResponse{
		ID:            b.ID,
		Titulo:        b.Titulo,
		AutorID:       b.AutorID,
		Descripcion:   b.Descripcion,
		ImagenPortada: b.ImagenPortada,
		Inventario:    b.Inventario,
	}
}
