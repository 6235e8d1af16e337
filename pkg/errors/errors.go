package errors

import (
	"errors"
	"fmt"
)

var (
	ErrDatasetEmpty    = errors.New("dataset is empty")
	ErrColumnMissing   = errors.New("required column missing")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNegativeFeature = errors.New("negative feature value")
	ErrVocabularyEmpty = errors.New("empty vocabulary")
	ErrInternal        = errors.New("internal error")
)

// Process exit codes reported by the selector binary.
const (
	ExitOK       = 0
	ExitConfig   = 2
	ExitDataset  = 3
	ExitPipeline = 4
	ExitInternal = 5
)

type AppError struct {
	Err      error
	Message  string
	ExitCode int
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(sentinel error, exitCode int, message string) *AppError {
	return &AppError{
		Err:      sentinel,
		Message:  message,
		ExitCode: exitCode,
	}
}

func Newf(sentinel error, exitCode int, format string, args ...any) *AppError {
	return &AppError{
		Err:      sentinel,
		Message:  fmt.Sprintf(format, args...),
		ExitCode: exitCode,
	}
}

// ExitCode maps an error to the process exit code the binary should report.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.ExitCode
	}

	switch {
	case errors.Is(err, ErrDatasetEmpty), errors.Is(err, ErrColumnMissing):
		return ExitDataset
	case errors.Is(err, ErrInvalidInput):
		return ExitConfig
	case errors.Is(err, ErrNegativeFeature), errors.Is(err, ErrVocabularyEmpty):
		return ExitPipeline
	default:
		return ExitInternal
	}
}
