package errors

import "fmt"

var (
	ErrOnlyCensoredFiles = fmt.Errorf("censored directory contains directories")
	ErrEmptyWords        = fmt.Errorf("no words have been found")
	ErrNotJSON           = fmt.Errorf("export is not a valid json document")
	ErrMissingMessages   = fmt.Errorf("export has no messages array")
	ErrEmptyCorpus       = fmt.Errorf("corpus is empty after filtering")
	ErrOutputDirMissing  = fmt.Errorf("output directory does not exist")
	ErrOutputNotDir      = fmt.Errorf("output path is not a directory")
	ErrNoWordPlaced      = fmt.Errorf("no word fits in the canvas")
	ErrInvalidFont       = fmt.Errorf("invalid font resource")
	ErrInvalidColor      = fmt.Errorf("invalid color")
	ErrInvalidConfig     = fmt.Errorf("invalid render configuration")
	ErrHistoryDisabled   = fmt.Errorf("run history is not configured")
)

// DataLoadError reports an input document that is missing, unreadable or malformed.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("data load failed for %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// RenderError reports a word cloud that could not be laid out or written.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("render failed: %v", e.Err)
	}
	return fmt.Sprintf("render failed for %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
