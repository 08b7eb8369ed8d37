package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// JSON encodes v as JSON and writes it with the given status code and an
// "application/json" Content-Type. Nothing is written when encoding fails;
// the encoding error is returned so the caller's error path answers it.
func (c *Context) JSON(code int, v any) error {
	if c.Writer == nil {
		return ErrNoResponseWriter
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("router: encode json: %w", err)
	}

	c.Writer.Header().Set("Content-Type", "application/json")
	c.Writer.WriteHeader(code)
	_, err := c.Writer.Write(buf.Bytes())

	return err
}

// Text writes s with the given status code and content type. An empty
// contentType means "text/plain; charset=utf-8".
func (c *Context) Text(code int, contentType, s string) error {
	if c.Writer == nil {
		return ErrNoResponseWriter
	}

	if contentType == "" {
		contentType = "text/plain; charset=utf-8"
	}

	c.Writer.Header().Set("Content-Type", contentType)
	c.Writer.WriteHeader(code)
	_, err := io.WriteString(c.Writer, s)

	return err
}
