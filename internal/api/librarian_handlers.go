package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
)

func (s *Server) registerLibrarianRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBibliotecarios",
		Method:      http.MethodGet,
		Path:        "/bibliotecarios/",
		Summary:     "List librarians",
		Description: "Returns all librarians in ID order",
		Tags:        []string{"Bibliotecarios"},
	}, s.handleListLibrarians)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBibliotecario",
		Method:      http.MethodGet,
		Path:        "/bibliotecario/{id}",
		Summary:     "Get librarian",
		Description: "Returns a librarian by ID",
		Tags:        []string{"Bibliotecarios"},
	}, s.handleGetLibrarian)

	huma.Register(s.api, huma.Operation{
		OperationID: "createBibliotecario",
		Method:      http.MethodPost,
		Path:        "/bibliotecario",
		Summary:     "Create librarian",
		Description: "Creates a new librarian with the next free ID",
		Tags:        []string{"Bibliotecarios"},
	}, s.handleCreateLibrarian)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateBibliotecario",
		Method:      http.MethodPut,
		Path:        "/bibliotecario/{id}",
		Summary:     "Update librarian",
		Description: "Applies a partial update to a librarian",
		Tags:        []string{"Bibliotecarios"},
	}, s.handleUpdateLibrarian)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteBibliotecario",
		Method:      http.MethodDelete,
		Path:        "/bibliotecario/{id}",
		Summary:     "Delete librarian",
		Description: "Deletes a librarian",
		Tags:        []string{"Bibliotecarios"},
	}, s.handleDeleteLibrarian)
}

// === DTOs ===

type LibrarianResponse struct {
	ID       int64  `json:"id" doc:"Librarian ID"`
	Nombre   string `json:"nombre" doc:"First name"`
	Apellido string `json:"apellido" doc:"Last name"`
	Correo   string `json:"correo" doc:"Email address"`
}

type LibrarianOutput struct {
	Body LibrarianResponse
}

type ListLibrariansOutput struct {
	Body []LibrarianResponse
}

type CreateLibrarianRequest struct {
	Nombre   string `json:"nombre" doc:"First name"`
	Apellido string `json:"apellido" doc:"Last name"`
	Correo   string `json:"correo" doc:"Email address"`
}

type CreateLibrarianInput struct {
	Body CreateLibrarianRequest
}

type GetLibrarianInput struct {
	ID int64 `path:"id" doc:"Librarian ID"`
}

type UpdateLibrarianRequest struct {
	Nombre   *string `json:"nombre,omitempty" doc:"First name"`
	Apellido *string `json:"apellido,omitempty" doc:"Last name"`
	Correo   *string `json:"correo,omitempty" doc:"Email address"`
}

type UpdateLibrarianInput struct {
	ID   int64 `path:"id" doc:"Librarian ID"`
	Body UpdateLibrarianRequest
}

// === Handlers ===

func (s *Server) handleListLibrarians(ctx context.Context, _ *struct{}) (*ListLibrariansOutput, error) {
	librarians, err := s.services.Librarians.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]LibrarianResponse, len(librarians))
	for i, l := range librarians {
		resp[i] = mapLibrarianResponse(l)
	}

	return &ListLibrariansOutput{Body: resp}, nil
}

func (s *Server) handleGetLibrarian(ctx context.Context, input *GetLibrarianInput) (*LibrarianOutput, error) {
	l, err := s.services.Librarians.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &LibrarianOutput{Body: mapLibrarianResponse(l)}, nil
}

func (s *Server) handleCreateLibrarian(ctx context.Context, input *CreateLibrarianInput) (*LibrarianOutput, error) {
	l, err := s.services.Librarians.Create(ctx, &domain.Librarian{
		Nombre:   input.Body.Nombre,
		Apellido: input.Body.Apellido,
		Correo:   input.Body.Correo,
	})
	if err != nil {
		return nil, err
	}

	return &LibrarianOutput{Body: mapLibrarianResponse(l)}, nil
}

func (s *Server) handleUpdateLibrarian(ctx context.Context, input *UpdateLibrarianInput) (*LibrarianOutput, error) {
	l, err := s.services.Librarians.Update(ctx, input.ID, domain.LibrarianPatch{
		Nombre:   input.Body.Nombre,
		Apellido: input.Body.Apellido,
		Correo:   input.Body.Correo,
	})
	if err != nil {
		return nil, err
	}

	return &LibrarianOutput{Body: mapLibrarianResponse(l)}, nil
}

func (s *Server) handleDeleteLibrarian(ctx context.Context, input *GetLibrarianInput) (*MessageOutput, error) {
	msg, err := s.services.Librarians.Delete(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: msg}}, nil
}

// === Mappers ===

func mapLibrarianResponse(l *domain.Librarian) LibrarianResponse {
	return LibrarianResponse{
		ID:       l.ID,
		Nombre:   l.Nombre,
		Apellido: l.Apellido,
		Correo:   l.Correo,
	}
}
