package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/bibliodigital/biblioteca-server/internal/domain"
	"github.com/bibliodigital/biblioteca-server/internal/http/response"
	"github.com/bibliodigital/biblioteca-server/internal/service"
)

func (s *Server) registerLoanRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listPrestamos",
		Method:      http.MethodGet,
		Path:        "/prestamos/",
		Summary:     "List loans",
		Description: "Returns all loans in ID order",
		Tags:        []string{"Prestamos"},
	}, s.handleListLoans)

	huma.Register(s.api, huma.Operation{
		OperationID: "getPrestamo",
		Method:      http.MethodGet,
		Path:        "/prestamo/{id}",
		Summary:     "Get loan",
		Description: "Returns a loan by ID",
		Tags:        []string{"Prestamos"},
	}, s.handleGetLoan)

	huma.Register(s.api, huma.Operation{
		OperationID: "deletePrestamo",
		Method:      http.MethodDelete,
		Path:        "/prestamo/{id}",
		Summary:     "Delete loan",
		Description: "Deletes a loan and returns the book to inventory",
		Tags:        []string{"Prestamos"},
	}, s.handleDeleteLoan)

	// Create and update take the credential photo as a multipart
	// upload, so they're registered on chi directly.
	s.router.Post("/prestamo/", s.handleCreateLoan)
	s.router.Put("/prestamo/{id}", s.handleUpdateLoan)
}

// === DTOs ===

type LoanResponse struct {
	ID              int64     `json:"id" doc:"Loan ID"`
	LectorID        int64     `json:"lector_id" doc:"Reader ID"`
	LibroID         int64     `json:"libro_id" doc:"Book ID"`
	FechaPrestamo   time.Time `json:"fecha_prestamo" doc:"Loan date"`
	FechaDevolucion time.Time `json:"fecha_devolucion" doc:"Due date, three days after the loan date"`
	BibliotecarioID int64     `json:"bibliotecario_id" doc:"Librarian ID"`
	FotoCredencial  string    `json:"foto_credencial" doc:"Credential photo URL"`
}

type LoanOutput struct {
	Body LoanResponse
}

type ListLoansOutput struct {
	Body []LoanResponse
}

type GetLoanInput struct {
	ID int64 `path:"id" doc:"Loan ID"`
}

// createLoanForm carries the non-file fields of a loan creation.
type createLoanForm struct {
	LectorID        int64 `json:"lector_id" validate:"required,gt=0"`
	LibroID         int64 `json:"libro_id" validate:"required,gt=0"`
	BibliotecarioID int64 `json:"bibliotecario_id" validate:"required,gt=0"`
}

// === Huma handlers ===

func (s *Server) handleListLoans(ctx context.Context, _ *struct{}) (*ListLoansOutput, error) {
	loans, err := s.services.Loans.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]LoanResponse, len(loans))
	for i, l := range loans {
		resp[i] = mapLoanResponse(l)
	}

	return &ListLoansOutput{Body: resp}, nil
}

func (s *Server) handleGetLoan(ctx context.Context, input *GetLoanInput) (*LoanOutput, error) {
	l, err := s.services.Loans.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &LoanOutput{Body: mapLoanResponse(l)}, nil
}

func (s *Server) handleDeleteLoan(ctx context.Context, input *GetLoanInput) (*MessageOutput, error) {
	msg, err := s.services.Loans.Delete(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: msg}}, nil
}

// === Chi handlers (multipart) ===

// handleCreateLoan registers a loan from a multipart form with a
// required credential photo. This is a chi handler (not Huma) because
// Huma doesn't easily support multipart forms.
func (s *Server) handleCreateLoan(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "invalid multipart form", s.logger)
		return
	}

	credencial, err := formUpload(r, "file")
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}
	if credencial == nil {
		response.BadRequest(w, "file is required", s.logger)
		return
	}

	var form createLoanForm
	if v, _, ferr := formInt64(r, "lector_id"); ferr != nil {
		response.BadRequest(w, ferr.Error(), s.logger)
		return
	} else {
		form.LectorID = v
	}
	if v, _, ferr := formInt64(r, "libro_id"); ferr != nil {
		response.BadRequest(w, ferr.Error(), s.logger)
		return
	} else {
		form.LibroID = v
	}
	if v, _, ferr := formInt64(r, "bibliotecario_id"); ferr != nil {
		response.BadRequest(w, ferr.Error(), s.logger)
		return
	} else {
		form.BibliotecarioID = v
	}

	if err := s.validator.Validate(form); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	loan, err := s.services.Loans.Create(r.Context(), service.CreateLoanParams{
		LectorID:        form.LectorID,
		LibroID:         form.LibroID,
		BibliotecarioID: form.BibliotecarioID,
		Credencial:      *credencial,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, mapLoanResponse(loan), s.logger)
}

// handleUpdateLoan applies a partial update from a multipart form,
// optionally replacing the credential photo. Changing fecha_prestamo
// recomputes fecha_devolucion.
func (s *Server) handleUpdateLoan(w http.ResponseWriter, r *http.Request) {
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

	credencial, err := formUpload(r, "foto_credencial")
	if err != nil {
		response.BadRequest(w, err.Error(), s.logger)
		return
	}

	var patch domain.LoanPatch
	if v, ok, ferr := formInt64(r, "lector_id"); ferr != nil {
		response.BadRequest(w, ferr.Error(), s.logger)
		return
	} else if ok {
		patch.LectorID = &v
	}
	if v, ok, ferr := formInt64(r, "libro_id"); ferr != nil {
		response.BadRequest(w, ferr.Error(), s.logger)
		return
	} else if ok {
		patch.LibroID = &v
	}
	if v, ok, ferr := formInt64(r, "bibliotecario_id"); ferr != nil {
		response.BadRequest(w, ferr.Error(), s.logger)
		return
	} else if ok {
		patch.BibliotecarioID = &v
	}
	if v, ok, ferr := formTime(r, "fecha_prestamo"); ferr != nil {
		response.BadRequest(w, ferr.Error(), s.logger)
		return
	} else if ok {
		patch.FechaPrestamo = &v
	}

	loan, err := s.services.Loans.Update(r.Context(), id, patch, credencial)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, mapLoanResponse(loan), s.logger)
}

// === Mappers ===

func mapLoanResponse(l *domain.Loan) LoanResponse {
	return LoanResponse{
		ID:              l.ID,
		LectorID:        l.LectorID,
		LibroID:         l.LibroID,
		FechaPrestamo:   l.FechaPrestamo,
		FechaDevolucion: l.FechaDevolucion,
		BibliotecarioID: l.BibliotecarioID,
		FotoCredencial:  l.FotoCredencial,
	}
}
