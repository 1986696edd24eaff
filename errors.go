package l10n

import "fmt"

// UnsupportedLanguageError indicates a switch to a language that is neither
// the source language nor a configured target.
type UnsupportedLanguageError struct {
	Lang Lang
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q", string(e.Lang))
}

// StoreError indicates a language-preference persistence failure. The
// session logs it and degrades to the source language; it never interrupts
// the page.
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store error: %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("store error: %s", e.Op)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// ImportError indicates a malformed catalog export payload.
type ImportError struct {
	Message string
	Cause   error
}

func (e *ImportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog import: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog import: %s", e.Message)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}
