package session

import "errors"

var (
	// ErrMissingConfig indicates the application settings carry no session block
	ErrMissingConfig = errors.New("session.missing_config")

	// ErrNilHandler indicates New was called without a request handler
	ErrNilHandler = errors.New("session.nil_handler")

	// ErrUnsupportedBackend indicates an unknown storage type in the settings
	ErrUnsupportedBackend = errors.New("session.unsupported_backend")

	// ErrUnsupportedCodec indicates an unknown serialization format in the settings
	ErrUnsupportedCodec = errors.New("session.unsupported_codec")

	// ErrNotFound indicates the backend holds no data for the session id
	ErrNotFound = errors.New("session.not_found")

	// ErrInvalidID indicates an id that is not a 40 character lowercase hex digest
	ErrInvalidID = errors.New("session.invalid_id")

	ErrReadFailed   = errors.New("session.read_failed")
	ErrWriteFailed  = errors.New("session.write_failed")
	ErrDeleteFailed = errors.New("session.delete_failed")
	ErrEncodeFailed = errors.New("session.encode_failed")
	ErrDecodeFailed = errors.New("session.decode_failed")
)
