package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
)

func (s *Server) registerReaderRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listLectores",
		Method:      http.MethodGet,
		Path:        "/lectores/",
		Summary:     "List readers",
		Description: "Returns all readers in ID order",
		Tags:        []string{"Lectores"},
	}, s.handleListReaders)

	huma.Register(s.api, huma.Operation{
		OperationID: "getLector",
		Method:      http.MethodGet,
		Path:        "/lector/{id}",
		Summary:     "Get reader",
		Description: "Returns a reader by ID",
		Tags:        []string{"Lectores"},
	}, s.handleGetReader)

	huma.Register(s.api, huma.Operation{
		OperationID: "createLector",
		Method:      http.MethodPost,
		Path:        "/lector",
		Summary:     "Create reader",
		Description: "Creates a new reader with the next free ID",
		Tags:        []string{"Lectores"},
	}, s.handleCreateReader)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateLector",
		Method:      http.MethodPut,
		Path:        "/lector/{id}",
		Summary:     "Update reader",
		Description: "Applies a partial update to a reader",
		Tags:        []string{"Lectores"},
	}, s.handleUpdateReader)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteLector",
		Method:      http.MethodDelete,
		Path:        "/lector/{id}",
		Summary:     "Delete reader",
		Description: "Deletes a reader",
		Tags:        []string{"Lectores"},
	}, s.handleDeleteReader)
}

// === DTOs ===

type ReaderResponse struct {
	ID       int64  `json:"id" doc:"Reader ID"`
	Nombre   string `json:"nombre" doc:"First name"`
	Apellido string `json:"apellido" doc:"Last name"`
	Correo   string `json:"correo" doc:"Email address"`
}

type ReaderOutput struct {
	Body ReaderResponse
}

type ListReadersOutput struct {
	Body []ReaderResponse
}

type CreateReaderRequest struct {
	Nombre   string `json:"nombre" doc:"First name"`
	Apellido string `json:"apellido" doc:"Last name"`
	Correo   string `json:"correo" doc:"Email address"`
}

type CreateReaderInput struct {
	Body CreateReaderRequest
}

type GetReaderInput struct {
	ID int64 `path:"id" doc:"Reader ID"`
}

type UpdateReaderRequest struct {
	Nombre   *string `json:"nombre,omitempty" doc:"First name"`
	Apellido *string `json:"apellido,omitempty" doc:"Last name"`
	Correo   *string `json:"correo,omitempty" doc:"Email address"`
}

type UpdateReaderInput struct {
	ID   int64 `path:"id" doc:"Reader ID"`
	Body UpdateReaderRequest
}

// === Handlers ===

func (s *Server) handleListReaders(ctx context.Context, _ *struct{}) (*ListReadersOutput, error) {
	readers, err := s.services.Readers.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ReaderResponse, len(readers))
	for i, r := range readers {
		resp[i] = mapReaderResponse(r)
	}

	return &ListReadersOutput{Body: resp}, nil
}

func (s *Server) handleGetReader(ctx context.Context, input *GetReaderInput) (*ReaderOutput, error) {
	r, err := s.services.Readers.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &ReaderOutput{Body: mapReaderResponse(r)}, nil
}

func (s *Server) handleCreateReader(ctx context.Context, input *CreateReaderInput) (*ReaderOutput, error) {
	r, err := s.services.Readers.Create(ctx, &domain.Reader{
		Nombre:   input.Body.Nombre,
		Apellido: input.Body.Apellido,
		Correo:   input.Body.Correo,
	})
	if err != nil {
		return nil, err
	}

	return &ReaderOutput{Body: mapReaderResponse(r)}, nil
}

func (s *Server) handleUpdateReader(ctx context.Context, input *UpdateReaderInput) (*ReaderOutput, error) {
	r, err := s.services.Readers.Update(ctx, input.ID, domain.ReaderPatch{
		Nombre:   input.Body.Nombre,
		Apellido: input.Body.Apellido,
		Correo:   input.Body.Correo,
	})
	if err != nil {
		return nil, err
	}

	return &ReaderOutput{Body: mapReaderResponse(r)}, nil
}

func (s *Server) handleDeleteReader(ctx context.Context, input *GetReaderInput) (*MessageOutput, error) {
	msg, err := s.services.Readers.Delete(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: msg}}, nil
}

// === Mappers ===

func mapReaderResponse(r *domain.Reader) ReaderResponse {
	return ReaderResponse{
		ID:       r.ID,
		Nombre:   r.Nombre,
		Apellido: r.Apellido,
		Correo:   r.Correo,
	}
}
