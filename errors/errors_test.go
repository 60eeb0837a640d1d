package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseMarshal,
				Kind:   KindTypeMismatch,
				Path:   []string{"arg", "3"},
				Op:     "glViewport",
				Detail: "cannot convert",
			},
			contains: []string{"[marshal]", "type_mismatch", "arg.3", "glViewport", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRoute,
				Kind:  KindUnsupportedAPI,
			},
			contains: []string{"[route]", "unsupported_api"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseCapture,
				Kind:   KindInvalidData,
				Detail: "bad frame",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[capture]", "invalid_data", "bad frame", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseConfig, KindInvalidData, cause, "decode")

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find cause through chain")
	}
}

func TestError_Is(t *testing.T) {
	err := UnsupportedFunction(160, "glBlendColor")

	if !errors.Is(err, ErrUnsupportedFunction) {
		t.Error("expected match on kind sentinel")
	}
	if errors.Is(err, ErrUnsupportedAPI) {
		t.Error("unsupported function must not match unsupported API")
	}
	if !errors.Is(err, &Error{Phase: PhaseRoute, Kind: KindUnsupportedFunction}) {
		t.Error("expected match on phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseDispatch, Kind: KindUnsupportedFunction}) {
		t.Error("different phase must not match")
	}
}

func TestUnsupportedDistinctMessages(t *testing.T) {
	api := UnsupportedAPI(7200).Error()
	fn := UnsupportedFunction(160, "glBlendColor").Error()
	if api == fn {
		t.Fatal("messages must differ")
	}
	if !strings.Contains(api, "unsupported_api") || !strings.Contains(fn, "unsupported_function") {
		t.Errorf("unexpected messages: %q / %q", api, fn)
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseResolve, KindTypeMismatch).
		Op("glClearColor").
		Path("param", "0").
		Value(3).
		Detail("want %s, got %s", "f32", "int").
		Build()

	if err.Op != "glClearColor" || err.Value != 3 {
		t.Errorf("builder lost fields: %+v", err)
	}
	if err.Detail != "want f32, got int" {
		t.Errorf("detail = %q", err.Detail)
	}
}

func TestMissingSymbol(t *testing.T) {
	err := MissingSymbol([]string{"eglGetDisplay", "glFlush"})
	if !errors.Is(err, ErrMissingSymbol) {
		t.Fatal("expected missing symbol kind")
	}
	if !strings.Contains(err.Error(), "eglGetDisplay, glFlush") {
		t.Errorf("names missing from %q", err.Error())
	}
}
