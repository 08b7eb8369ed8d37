package router

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// ServeHTTP dispatches an HTTP request through Run.
//
// Errors returned by Run are turned into responses when the handlers have
// not written one yet: ErrNotFound becomes 404 Not Found, ErrAppDown
// becomes 503 Service Unavailable and any other error 500 Internal Server
// Error.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	sw := &statusWriter{ResponseWriter: w}

	c := &Context{
		Writer:  sw,
		Request: req,
		method:  strings.ToUpper(req.Method),
		path:    normalizePath(req.URL.Path, r.config.PathPrefix),
	}

	_, err := r.Run(c)
	if err == nil {
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrAppDown):
		status = http.StatusServiceUnavailable
	default:
		r.logger.Error("router: dispatch failed",
			zap.String("method", c.method),
			zap.String("path", c.path),
			zap.Error(err))
	}

	if sw.wroteHeader {
		return
	}

	http.Error(sw, http.StatusText(status), status)
}

// statusWriter records whether a response has been started.
type statusWriter struct {
	http.ResponseWriter
	wroteHeader bool
	status      int
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap returns the wrapped writer for http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Status returns the status code written so far, or 0.
func (w *statusWriter) Status() int {
	return w.status
}

// ResponseStatus returns the status code written to the context's response
// so far, or 0 when nothing was written or the context has no HTTP writer.
func ResponseStatus(c *Context) int {
	if sw, ok := c.Writer.(*statusWriter); ok {
		return sw.Status()
	}
	return 0
}
