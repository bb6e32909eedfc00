// internal/controller/rpc.go
package controller

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	appErrors "github.com/appdotbuilder/influencer-sponsor-connect/internal/errors"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/logger"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/validation"
)

const maxBodyBytes = 1 << 20

type procedureKind int

const (
	kindQuery procedureKind = iota
	kindMutation
)

type callFunc func(ctx context.Context, raw []byte) (any, error)

type procedure struct {
	kind procedureKind
	call callFunc
}

// RPC dispatches /trpc/{procedure}. Queries are GET with ?input=<json>,
// mutations are POST with a JSON body.
type RPC struct {
	procs map[string]procedure
}

func NewRPC() *RPC {
	return &RPC{procs: map[string]procedure{}}
}

func (rpc *RPC) Query(name string, call callFunc) {
	rpc.procs[name] = procedure{kind: kindQuery, call: call}
}

func (rpc *RPC) Mutation(name string, call callFunc) {
	rpc.procs[name] = procedure{kind: kindMutation, call: call}
}

// Procedures lists registered names, used by tests and the startup log.
func (rpc *RPC) Procedures() []string {
	names := make([]string, 0, len(rpc.procs))
	for name := range rpc.procs {
		names = append(names, name)
	}
	return names
}

func (rpc *RPC) Mount(r chi.Router) {
	r.HandleFunc("/trpc/{procedure}", rpc.ServeHTTP)
}

func (rpc *RPC) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "procedure")
	proc, ok := rpc.procs[name]
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", `No procedure found on path "`+name+`"`)
		return
	}

	var raw []byte
	switch {
	case proc.kind == kindQuery && r.Method == http.MethodGet:
		if input := r.URL.Query().Get("input"); input != "" {
			raw = []byte(input)
		}
	case proc.kind == kindMutation && r.Method == http.MethodPost:
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "failed to read request body")
			return
		}
		raw = body
	default:
		w.Header().Set("Allow", allowedMethod(proc.kind))
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_SUPPORTED",
			"Unsupported "+r.Method+" request to "+name)
		return
	}

	data, err := proc.call(r.Context(), raw)
	if err != nil {
		status, code := classify(err)
		if status >= http.StatusInternalServerError {
			logger.FromContext(r.Context()).Error("procedure failed", "procedure", name, "err", err)
		}
		writeError(w, status, code, err.Error())
		return
	}
	writeResult(w, data)
}

func allowedMethod(kind procedureKind) string {
	if kind == kindQuery {
		return http.MethodGet
	}
	return http.MethodPost
}

func classify(err error) (int, string) {
	switch {
	case appErrors.IsValidation(err):
		return http.StatusBadRequest, "BAD_REQUEST"
	case appErrors.IsNotFound(err):
		return http.StatusNotFound, "NOT_FOUND"
	case appErrors.IsOwnership(err):
		return http.StatusBadRequest, "BAD_REQUEST"
	case appErrors.IsUniqueViolation(err):
		return http.StatusConflict, "CONFLICT"
	default:
		return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
	}
}

type resultEnvelope struct {
	Result struct {
		Data any `json:"data"`
	} `json:"result"`
}

type errorBody struct {
	Message  string `json:"message"`
	Code     string `json:"code"`
	HTTPCode int    `json:"httpStatus"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func writeResult(w http.ResponseWriter, data any) {
	var env resultEnvelope
	env.Result.Data = data
	writeJSON(w, http.StatusOK, env)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Message: msg, Code: code, HTTPCode: status}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// bind decodes and validates the input before calling fn.
func bind[In any, Out any](fn func(context.Context, In) (Out, error)) callFunc {
	return func(ctx context.Context, raw []byte) (any, error) {
		var in In
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, &appErrors.ValidationError{Field: "input", Rule: "json", Msg: "invalid input: " + err.Error()}
			}
		}
		if err := validation.Struct(in); err != nil {
			return nil, err
		}
		return fn(ctx, in)
	}
}

// bindNoInput ignores any supplied input.
func bindNoInput[Out any](fn func(context.Context) (Out, error)) callFunc {
	return func(ctx context.Context, _ []byte) (any, error) {
		return fn(ctx)
	}
}
