// Package restapi implementa los puertos de collaborator contra el backend
// HTTP real. Todas las llamadas llevan el token bearer leído del SessionStore
// en el momento de la llamada; el cliente jamás inspecciona el contenido del
// token, solo su presencia.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/maxhelp-console/internal/domain"
	"github.com/tu-usuario/maxhelp-console/internal/domain/entity"
	"github.com/tu-usuario/maxhelp-console/pkg/logger"
)

// SessionReader lo que el cliente necesita del SessionStore: la sesión
// vigente, consultada en cada llamada.
type SessionReader interface {
	Get() *entity.Session
}

// StatusError respuesta no exitosa del backend, con el detalle que este haya
// incluido. Unwrap lo clasifica dentro de la taxonomía de dominio: 401/403
// como ErrUnauthenticated, el resto como ErrCollaboratorRejected.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend respondió %d", e.Status)
	}
	return fmt.Sprintf("backend respondió %d: %s", e.Status, e.Detail)
}

func (e *StatusError) Unwrap() error {
	if e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden {
		return domain.ErrUnauthenticated
	}
	return domain.ErrCollaboratorRejected
}

// Client base HTTP compartida por los clientes de recurso. Usa net/http de la
// stdlib con timeout fijo; no hay cancelación de peticiones en vuelo más allá
// del context del llamador.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions SessionReader
	log      *logger.Logger
}

// NewClient construye la base HTTP.
func NewClient(baseURL string, timeout time.Duration, sessions SessionReader, log *logger.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
		log:      log,
	}
}

// errorBody cuerpo de error del backend (formato {"detail": ...}).
type errorBody struct {
	Detail string `json:"detail"`
}

// doJSON ejecuta una petición con cuerpo JSON opcional y decodifica la
// respuesta en out (si out no es nil). Con auth=true adjunta el bearer.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any, auth bool) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out, auth)
}

// doForm ejecuta un POST con cuerpo form-encoded (el login de admin del
// backend espera exactamente eso) y decodifica la respuesta en out.
func (c *Client) doForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out, false)
}

func (c *Client) do(req *http.Request, out any, auth bool) error {
	req.Header.Set("X-Request-ID", uuid.NewString())
	if auth {
		sess := c.sessions.Get()
		if sess == nil {
			return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, domain.ErrUnauthenticated)
		}
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrCollaboratorRejected, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("llamada al backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(data, &eb)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, &StatusError{Status: resp.StatusCode, Detail: eb.Detail})
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decodificar respuesta: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

// parseTime acepta timestamps con y sin zona horaria; el backend original
// emite datetimes naive.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
