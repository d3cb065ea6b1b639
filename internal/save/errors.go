package save

import "fmt"

// IOError indicates the save file could not be read at all: missing path,
// permission denied, or content that is not decodable text. The previous
// system list, if any, should be left untouched by the caller.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read save %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError indicates the save file was readable but is not well-formed
// XML. This is a hard failure; the loader does not attempt partial
// recovery of malformed documents.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse save: %v", e.Err)
	}
	return fmt.Sprintf("parse save %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
