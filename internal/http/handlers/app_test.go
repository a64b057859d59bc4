package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"vibecraft/internal/domain"
)

func TestFailMapsDomainErrors(t *testing.T) {
	app := &App{Logger: zerolog.Nop()}
	tests := []struct {
		err      error
		wantCode int
		wantErr  string
	}{
		{err: fmt.Errorf("get: %w", domain.ErrNotFound), wantCode: http.StatusNotFound, wantErr: "not_found"},
		{err: domain.ErrGoalRequired, wantCode: http.StatusBadRequest, wantErr: "bad_request"},
		{err: fmt.Errorf("%w: unknown intent", domain.ErrInvalidChoices), wantCode: http.StatusBadRequest, wantErr: "bad_request"},
		{err: domain.ErrDuplicateBlueprint, wantCode: http.StatusConflict, wantErr: "conflict"},
		{err: errors.New("connection reset"), wantCode: http.StatusInternalServerError, wantErr: "internal"},
	}
	for _, tc := range tests {
		t.Run(tc.wantErr, func(t *testing.T) {
			rec := httptest.NewRecorder()
			app.fail(rec, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			var body errorBody
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error.Code != tc.wantErr {
				t.Fatalf("code = %q, want %q", body.Error.Code, tc.wantErr)
			}
		})
	}
}

func TestFailHidesInternalDetails(t *testing.T) {
	app := &App{Logger: zerolog.Nop()}
	rec := httptest.NewRecorder()
	app.fail(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("password=hunter2"))
	if strings.Contains(rec.Body.String(), "hunter2") {
		t.Fatalf("internal error leaked: %s", rec.Body.String())
	}
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	app := &App{Logger: zerolog.Nop()}
	var v map[string]any

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"goal":"image"} {"goal":"video"}`))
	if app.decode(rec, req, &v) {
		t.Fatalf("expected trailing data to be rejected")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"goal":"image"}`))
	if !app.decode(rec, req, &v) || v["goal"] != "image" {
		t.Fatalf("valid body rejected: %v", v)
	}
}
