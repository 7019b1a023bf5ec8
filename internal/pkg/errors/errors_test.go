package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without wrapped error",
			err:  New("PACKAGE_NOT_FOUND", "import package not found", http.StatusNotFound),
			want: "PACKAGE_NOT_FOUND: import package not found",
		},
		{
			name: "with wrapped error",
			err:  Wrap(fmt.Errorf("db error"), "DB_ERROR", "database failure", http.StatusInternalServerError),
			want: "DB_ERROR: database failure: db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap(inner, "CODE", "msg", 500)

	if !errors.Is(appErr, inner) {
		t.Error("errors.Is should match inner error")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := NotFound("NOT_FOUND", "resource not found")
	wrapped := fmt.Errorf("wrapped: %w", appErr)

	got, ok := IsAppError(wrapped)
	if !ok {
		t.Fatal("IsAppError should return true for wrapped AppError")
	}
	if got.Code != "NOT_FOUND" {
		t.Errorf("Code = %q, want NOT_FOUND", got.Code)
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
	}{
		{"NotFound", NotFound("NF", "not found"), http.StatusNotFound},
		{"BadRequest", BadRequest("BR", "bad request"), http.StatusBadRequest},
		{"Unauthorized", Unauthorized("UA", "unauthorized"), http.StatusUnauthorized},
		{"Forbidden", Forbidden("FB", "forbidden"), http.StatusForbidden},
		{"Conflict", Conflict("CF", "conflict"), http.StatusConflict},
		{"UnprocessableEntity", UnprocessableEntity("UE", "unprocessable"), http.StatusUnprocessableEntity},
		{"Internal", Internal("IE", "internal"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", tt.err.HTTPStatus, tt.wantStatus)
			}
		})
	}
}

func TestIntakeConstructors(t *testing.T) {
	busy := ErrPackageBusy("0198c5f0-5f2b-7c11-a2e5-3d4f6a7b8c9d")
	if busy.Code != CodePackageBusy {
		t.Errorf("Code = %q, want %q", busy.Code, CodePackageBusy)
	}
	if busy.HTTPStatus != http.StatusConflict {
		t.Errorf("HTTPStatus = %d, want 409", busy.HTTPStatus)
	}
	if busy.Params["packageId"] == nil {
		t.Error("ErrPackageBusy should carry packageId param")
	}

	trans := ErrStateTransition("completed", "validating")
	if trans.Code != CodeStateTransitionInvalid || trans.HTTPStatus != http.StatusConflict {
		t.Errorf("unexpected transition error: %+v", trans)
	}

	if got := ErrNotAuthenticated(); got.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("ErrNotAuthenticated status = %d, want 401", got.HTTPStatus)
	}
}
