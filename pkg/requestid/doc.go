// Package requestid tags every HTTP request with a correlation id.
//
// Middleware keeps a well-formed X-Request-ID sent by the client and otherwise
// generates a UUIDv7. The id is stored in the request context and echoed in
// the response header. LoggerExtractor feeds it to the logger so that session
// diagnostics of one request can be grouped:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor))
//	r.Use(requestid.Middleware)
package requestid
