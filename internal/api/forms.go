package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bibliodigital/biblioteca-server/internal/service"
)

// maxUploadSize limits multipart request bodies. Covers and credential
// photos are small; anything bigger is a client mistake.
const maxUploadSize = 10 << 20 // 10 MB

// formUpload reads an uploaded file from a parsed multipart form.
// Returns nil when the field is absent.
func formUpload(r *http.Request, field string) (*service.Upload, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read form file %q: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %q: %w", field, err)
	}

	return &service.Upload{
		Filename: header.Filename,
		Data:     data,
	}, nil
}

// formString returns a form value and whether it was present.
func formString(r *http.Request, field string) (string, bool) {
	if r.Form == nil {
		return "", false
	}
	vs, ok := r.Form[field]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// formInt64 parses an optional integer form value.
func formInt64(r *http.Request, field string) (int64, bool, error) {
	v, ok := formString(r, field)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%s must be an integer", field)
	}
	return n, true, nil
}

// formBool parses an optional boolean form value.
func formBool(r *http.Request, field string) (bool, bool, error) {
	v, ok := formString(r, field)
	if !ok {
		return false, false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false, fmt.Errorf("%s must be a boolean", field)
	}
	return b, true, nil
}

// formTime parses an optional ISO-8601 timestamp form value. A bare
// local timestamp without zone offset is accepted as UTC.
func formTime(r *http.Request, field string) (time.Time, bool, error) {
	v, ok := formString(r, field)
	if !ok {
		return time.Time{}, false, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true, nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", v)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%s must be an ISO-8601 timestamp", field)
	}
	return t.UTC(), true, nil
}
