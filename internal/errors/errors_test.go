package errors

import (
	stderrors "errors"
	"testing"
)

func TestWrapPreservesCode(t *testing.T) {
	base := WithCode("STORAGE_FAILURE", stderrors.New("connection reset"))
	wrapped := Wrap(base, "failed to store analysis")

	if GetCode(wrapped) != "STORAGE_FAILURE" {
		t.Errorf("code = %q, want STORAGE_FAILURE", GetCode(wrapped))
	}
	if !stderrors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to its cause")
	}
}

func TestWithCode(t *testing.T) {
	if WithCode("ANY", nil) != nil {
		t.Error("WithCode(nil) should stay nil")
	}

	err := WithCode("STORAGE_FAILURE", stderrors.New("boom"))
	if GetCode(err) != "STORAGE_FAILURE" {
		t.Errorf("code = %q", GetCode(err))
	}
}

func TestGetCodeDefaults(t *testing.T) {
	if GetCode(stderrors.New("plain")) != "INTERNAL_ERROR" {
		t.Error("plain errors should map to INTERNAL_ERROR")
	}
	if GetCode(ConfigInvalid("missing DATABASE_URL")) != "CONFIG_INVALID" {
		t.Error("config errors should map to CONFIG_INVALID")
	}
}
