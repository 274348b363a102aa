package confset

import "errors"

var (
	// ErrNotFound indicates a document could neither be resolved nor created
	// because no candidate directory exists.
	ErrNotFound = errors.New("config not found")
	// ErrBackup indicates the backup copy could not be taken. No write happens
	// after this error.
	ErrBackup = errors.New("failed to backup config")
	// ErrWriteConfig indicates a config file could not be written.
	ErrWriteConfig = errors.New("failed to write config")
	// ErrReadConfig indicates an existing config file could not be read.
	ErrReadConfig = errors.New("failed to read config")
	// ErrMalformedFilter indicates a filter argument that is not of the form
	// name, name.key or name.key=value.
	ErrMalformedFilter = errors.New("malformed filter")
)

var (
	// ErrInvalidKey indicates a key that can not be written as a single
	// key=value line.
	ErrInvalidKey = errors.New("invalid key")
	// ErrInvalidValue indicates a value spanning multiple lines.
	ErrInvalidValue = errors.New("invalid value")
)
