package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/alekangelov/planetscale-go/auth"
	"github.com/alekangelov/planetscale-go/pkg/session"
	"github.com/alekangelov/planetscale-go/pkg/wire"
	sqlcommon "github.com/alekangelov/planetscale-go/server/datasource/sql"
)

// Handlers carries the request pipeline's dependencies: the credential gate
// and the shared connection pool. Both are read-only after startup.
type Handlers struct {
	creds auth.Credentials
	pool  *sqlcommon.Pool
}

// NewHandlers creates the endpoint handlers.
func NewHandlers(creds auth.Credentials, pool *sqlcommon.Pool) *Handlers {
	return &Handlers{creds: creds, pool: pool}
}

// Root handles GET / with a plain status body.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, StatusResponse{Status: "not found"})
		return
	}
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, StatusResponse{Status: "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// Health handles POST /health. The body is optional; a supplied session id
// round-trips, otherwise a fresh one is issued. Health never fails and is
// the one envelope carrying neither result nor error.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	var body RequestBody
	// An absent or malformed body falls back to defaults.
	_ = json.NewDecoder(r.Body).Decode(&body)

	writeEnvelope(w, wire.SessionResponse(session.Derive(body.Session)))
}

// CreateSession handles POST /psdb.v1alpha1.Database/CreateSession: runs
// the credential gate and issues a fresh session token.
func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := session.New()

	username, password, _ := r.BasicAuth()
	if !h.creds.Check(username, password) {
		writeEnvelope(w, wire.ErrorResponse(sess, wire.Error{
			Message: "Invalid credentials",
			Code:    http.StatusUnauthorized,
		}))
		return
	}

	writeEnvelope(w, wire.SessionResponse(sess))
}

// Execute handles POST /psdb.v1alpha1.Database/Execute. Pipeline per
// request: decode → authenticate → acquire connection → execute → marshal →
// respond. Every non-success step terminates the request with an error
// envelope that still carries a session id; the leased connection is
// released on every exit path.
func (h *Handlers) Execute(w http.ResponseWriter, r *http.Request) {
	var body RequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeEnvelope(w, wire.ErrorResponse(session.New(), wire.Error{
			Message: "invalid request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		}))
		return
	}

	sess := session.Derive(body.Session)

	username, password, _ := r.BasicAuth()
	if !h.creds.Check(username, password) {
		writeEnvelope(w, wire.ErrorResponse(sess, wire.Error{
			Message: "Invalid credentials",
			Code:    http.StatusUnauthorized,
		}))
		return
	}

	if body.Query == nil {
		writeEnvelope(w, wire.ErrorResponse(sess, wire.Error{
			Message: "query is required",
			Code:    http.StatusBadRequest,
		}))
		return
	}

	conn, err := h.pool.Acquire(r.Context())
	if err != nil {
		writeEnvelope(w, wire.ErrorResponse(sess, wire.Error{
			Message: err.Error(),
			Code:    http.StatusServiceUnavailable,
		}))
		return
	}
	defer h.pool.Release(conn)

	start := time.Now()
	result, err := sqlcommon.Execute(r.Context(), conn, h.pool.Dialect(), *body.Query)
	if err != nil {
		writeEnvelope(w, wire.ErrorResponse(sess, wire.Error{
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		}))
		return
	}

	timing := uint32(time.Since(start).Milliseconds())
	writeEnvelope(w, wire.ResultResponse(sess, wire.MarshalResult(result), timing))
}
