package errors

import (
	"errors"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindPermission, "permission denied"},
		{KindIO, "I/O error"},
		{KindNetwork, "network error"},
		{KindAuth, "authentication error"},
		{KindConfig, "configuration error"},
		{KindGit, "git error"},
		{KindTimeout, "timeout"},
		{Kind(999), "unknown error"}, // Unknown kind
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{Op: "test.Op", Err: underlying}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find the underlying error")
	}
}

func TestE_Composition(t *testing.T) {
	underlying := errors.New("boom")
	err := E(Op("git.Commit"), KindGit, "commit failed", underlying)

	var structured *Error
	if !errors.As(err, &structured) {
		t.Fatal("E should return an *Error")
	}
	if structured.Op != "git.Commit" {
		t.Errorf("Op = %q, want git.Commit", structured.Op)
	}
	if structured.Kind != KindGit {
		t.Errorf("Kind = %v, want KindGit", structured.Kind)
	}
	if !errors.Is(err, underlying) {
		t.Error("underlying error should be wrapped")
	}
}

func TestE_NoUnderlyingError(t *testing.T) {
	err := E(Op("hub.Login"), KindAuth, "no token supplied")
	if err.Error() != "hub.Login: no token supplied" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIs_Kind(t *testing.T) {
	err := LoginFailed(errors.New("401"))
	if !Is(err, KindAuth) {
		t.Error("LoginFailed should have KindAuth")
	}
	if Is(err, KindGit) {
		t.Error("LoginFailed should not have KindGit")
	}
	if Is(errors.New("plain"), KindAuth) {
		t.Error("plain errors should not match any kind")
	}
}

func TestGetKind(t *testing.T) {
	if got := GetKind(GitNotInstalled()); got != KindNotFound {
		t.Errorf("GetKind = %v, want KindNotFound", got)
	}
	if got := GetKind(errors.New("plain")); got != KindUnknown {
		t.Errorf("GetKind = %v, want KindUnknown", got)
	}
}
