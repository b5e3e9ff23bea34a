// Package remote implementa los colaboradores del servicio de órdenes sobre JSON/HTTP.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/pkg/requestid"
)

// NewHTTPClient cliente compartido por los adaptadores. timeout acota cada llamada saliente completa.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	}
}

// StatusError respuesta no 2xx de un servicio colaborador.
// errors.Is(err, domain.ErrNotFound) es verdadero solo para 404.
type StatusError struct {
	Service string
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s %s: HTTP %d: %s", e.Service, e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s %s: HTTP %d", e.Service, e.Method, e.Path, e.Status)
}

// Is permite comparar contra domain.ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == domain.ErrNotFound && e.Status == http.StatusNotFound
}

type errorBody struct {
	Error string `json:"error"`
}

// client base común: URL del servicio y http.Client.
type client struct {
	service    string
	baseURL    string
	httpClient *http.Client
}

// do envía in como JSON (si no es nil) y decodifica la respuesta 2xx en out (si no es nil).
func (c *client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: serializar request: %w", c.service, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: crear HTTP request: %w", c.service, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s: timeout o cancelación: %w", c.service, ctx.Err())
		}
		return fmt.Errorf("%s: llamada HTTP fallida: %w", c.service, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%s: leer respuesta: %w", c.service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		return &StatusError{
			Service: c.service,
			Method:  method,
			Path:    path,
			Status:  resp.StatusCode,
			Message: eb.Error,
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decodificar respuesta: %w", c.service, err)
	}
	return nil
}
