package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
)

func (s *Server) registerAuthorRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listAutores",
		Method:      http.MethodGet,
		Path:        "/autores/",
		Summary:     "List authors",
		Description: "Returns all authors in ID order",
		Tags:        []string{"Autores"},
	}, s.handleListAuthors)

	huma.Register(s.api, huma.Operation{
		OperationID: "getAutor",
		Method:      http.MethodGet,
		Path:        "/autor/{id}",
		Summary:     "Get author",
		Description: "Returns an author by ID",
		Tags:        []string{"Autores"},
	}, s.handleGetAuthor)

	huma.Register(s.api, huma.Operation{
		OperationID: "createAutor",
		Method:      http.MethodPost,
		Path:        "/autor/",
		Summary:     "Create author",
		Description: "Creates a new author with the next free ID",
		Tags:        []string{"Autores"},
	}, s.handleCreateAuthor)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateAutor",
		Method:      http.MethodPut,
		Path:        "/autor/{id}",
		Summary:     "Update author",
		Description: "Applies a partial update to an author",
		Tags:        []string{"Autores"},
	}, s.handleUpdateAuthor)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteAutor",
		Method:      http.MethodDelete,
		Path:        "/autor/{id}",
		Summary:     "Delete author",
		Description: "Deletes an author",
		Tags:        []string{"Autores"},
	}, s.handleDeleteAuthor)
}

// === DTOs ===

type AuthorResponse struct {
	ID        int64  `json:"id" doc:"Author ID"`
	Nombre    string `json:"nombre" doc:"First name"`
	Apellido  string `json:"apellido" doc:"Last name"`
	Biografia string `json:"biografia" doc:"Biography"`
}

type AuthorOutput struct {
	Body AuthorResponse
}

type ListAuthorsOutput struct {
	Body []AuthorResponse
}

type CreateAuthorRequest struct {
	Nombre    string `json:"nombre" doc:"First name"`
	Apellido  string `json:"apellido" doc:"Last name"`
	Biografia string `json:"biografia" doc:"Biography"`
}

type CreateAuthorInput struct {
	Body CreateAuthorRequest
}

type GetAuthorInput struct {
	ID int64 `path:"id" doc:"Author ID"`
}

type UpdateAuthorRequest struct {
	Nombre    *string `json:"nombre,omitempty" doc:"First name"`
	Apellido  *string `json:"apellido,omitempty" doc:"Last name"`
	Biografia *string `json:"biografia,omitempty" doc:"Biography"`
}

type UpdateAuthorInput struct {
	ID   int64 `path:"id" doc:"Author ID"`
	Body UpdateAuthorRequest
}

// === Handlers ===

func (s *Server) handleListAuthors(ctx context.Context, _ *struct{}) (*ListAuthorsOutput, error) {
	authors, err := s.services.Authors.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]AuthorResponse, len(authors))
	for i, a := range authors {
		resp[i] = mapAuthorResponse(a)
	}

	return &ListAuthorsOutput{Body: resp}, nil
}

func (s *Server) handleGetAuthor(ctx context.Context, input *GetAuthorInput) (*AuthorOutput, error) {
	a, err := s.services.Authors.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &AuthorOutput{Body: mapAuthorResponse(a)}, nil
}

func (s *Server) handleCreateAuthor(ctx context.Context, input *CreateAuthorInput) (*AuthorOutput, error) {
	a, err := s.services.Authors.Create(ctx, &domain.Author{
		Nombre:    input.Body.Nombre,
		Apellido:  input.Body.Apellido,
		Biografia: input.Body.Biografia,
	})
	if err != nil {
		return nil, err
	}

	return &AuthorOutput{Body: mapAuthorResponse(a)}, nil
}

func (s *Server) handleUpdateAuthor(ctx context.Context, input *UpdateAuthorInput) (*AuthorOutput, error) {
	a, err := s.services.Authors.Update(ctx, input.ID, domain.AuthorPatch{
		Nombre:    input.Body.Nombre,
		Apellido:  input.Body.Apellido,
		Biografia: input.Body.Biografia,
	})
	if err != nil {
		return nil, err
	}

	return &AuthorOutput{Body: mapAuthorResponse(a)}, nil
}

func (s *Server) handleDeleteAuthor(ctx context.Context, input *GetAuthorInput) (*MessageOutput, error) {
	msg, err := s.services.Authors.Delete(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: msg}}, nil
}

// === Mappers ===

func mapAuthorResponse(a *domain.Author) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		Nombre:    a.Nombre,
		Apellido:  a.Apellido,
		Biografia: a.Biografia,
	}
}
