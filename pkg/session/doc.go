// Package session keeps server-side state for web clients in files.
//
// A signed cookie carries an opaque session id: the hex SHA-1 digest of the
// client address, its User-Agent and the creation time. The id names a file
// holding the session values. A Session is built for every request, read and
// written through Get / Set / Delete, and persisted with Save.
//
// # Life-cycle
//
//	no cookie              -> id minted, cookie set, {started} written
//	cookie, data loads     -> values restored
//	cookie, data missing   -> same id, {started} written again
//	Save                   -> values written, errors only logged
//	Clear                  -> cookie cleared, file removed, id dropped
//
// Storage failures never reach the caller; a session that cannot be loaded
// behaves as a new one. The only construction errors are a missing session
// block in the settings (ErrMissingConfig) and an unknown storage type or
// codec.
//
// # Protected keys
//
// The keys id, handler, path, protected, settings and values address the
// session's own fields and are never stored among the values:
//
//	s.Get("id")     // the session id
//	s.Delete("id")  // forget the id, as Clear does
//
// # Usage
//
//	cookies, _ := cookie.New([]string{secret})
//	settings := session.Settings{
//	    BasePath: "/var/app",
//	    Session: &session.Config{
//	        Type:       "file",
//	        Directory:  "__base_path__/sessions",
//	        CookieName: "sid",
//	        Duration:   30,
//	    },
//	}
//
//	r := chi.NewRouter()
//	r.Use(session.Middleware(settings, cookies, session.WithLogger(log)))
//	r.Post("/cart", func(w http.ResponseWriter, r *http.Request) {
//	    s := session.MustFromContext(r.Context())
//	    s.Set("cart_total", 42)
//	})
//
// The middleware saves the session after the handler returns. Code that builds
// sessions itself with New must call Save before the response completes.
//
// # Storage
//
// Backend is the storage capability; FileBackend is the one implementation,
// selected by Type "file". Files are written through a temporary file and a
// rename. Requests racing on the same id are not coordinated: the last Save
// wins. The file format is chosen by Codec: gob (default, keeps Go types),
// json or bson.
package session
