// Package remote implementa los puertos del gateway de datos contra el API JSON de la institución.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/pkg/config"
	"github.com/jhoicas/Inventario-consola/pkg/logger"
)

const (
	maxResponseBytes = 16 << 20
	maxPages         = 10000
)

// Client transporte JSON sobre HTTP. Todas las respuestas llegan como {data, message};
// los errores como {message} con el status HTTP correspondiente.
type Client struct {
	baseURL    string
	token      string
	pageSize   int
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. El timeout aplica a cada llamada.
func NewClient(cfg config.GatewayConfig, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("gateway"),
	}
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do ejecuta method path y decodifica el campo data de la respuesta en out (si out != nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("gateway: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrUnavailable, ctx.Err())
		}
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("gateway: llamada HTTP fallida")
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", domain.ErrUnavailable, err)
	}
	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).Msg("gateway")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	data := unwrap(raw)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("gateway: deserializar %s %s: %w", method, path, err)
	}
	return nil
}

// unwrap devuelve el contenido de "data"; si el cuerpo no es un sobre {data}, el cuerpo entero.
func unwrap(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return trimmed
	}
	if data, ok := probe["data"]; ok {
		return data
	}
	return trimmed
}

// statusError traduce el status HTTP del gateway al error de dominio.
func statusError(status int, raw []byte) error {
	var env envelope
	_ = json.Unmarshal(raw, &env)
	msg := strings.TrimSpace(env.Message)

	var sentinel error
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if msg == "" {
			msg = "datos rechazados por el servidor"
		}
		return domain.Invalid(msg)
	case status == http.StatusUnauthorized:
		sentinel = domain.ErrUnauthorized
	case status == http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case status == http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case status == http.StatusConflict:
		sentinel = domain.ErrConflict
	default:
		sentinel = domain.ErrUnavailable
	}
	if msg == "" {
		return fmt.Errorf("%w (HTTP %d)", sentinel, status)
	}
	return fmt.Errorf("%w: %s", sentinel, msg)
}

// ── Listados ──────────────────────────────────────────────────────────────────

type pageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

type pageWrapper struct {
	Data json.RawMessage `json:"data"`
	pageMeta
}

// listPage pide una página. Acepta tanto la envoltura paginada {data:[...], last_page}
// como un arreglo plano (se trata como página única).
func listPage[W any](ctx context.Context, c *Client, path string, query url.Values) ([]W, pageMeta, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, pageMeta{}, err
	}
	raw = json.RawMessage(bytes.TrimSpace(raw))
	var items []W
	if len(raw) == 0 || string(raw) == "null" {
		return items, pageMeta{CurrentPage: 1, LastPage: 1}, nil
	}
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, pageMeta{}, fmt.Errorf("gateway: deserializar listado %s: %w", path, err)
		}
		return items, pageMeta{CurrentPage: 1, LastPage: 1, PerPage: len(items), Total: len(items)}, nil
	}
	var page pageWrapper
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, pageMeta{}, fmt.Errorf("gateway: deserializar página %s: %w", path, err)
	}
	if len(page.Data) > 0 && string(page.Data) != "null" {
		if err := json.Unmarshal(page.Data, &items); err != nil {
			return nil, pageMeta{}, fmt.Errorf("gateway: deserializar página %s: %w", path, err)
		}
	}
	meta := page.pageMeta
	if meta.CurrentPage <= 0 {
		meta.CurrentPage = 1
	}
	if meta.LastPage < meta.CurrentPage {
		meta.LastPage = meta.CurrentPage
	}
	if meta.Total == 0 && meta.LastPage == 1 {
		meta.Total = len(items)
	}
	return items, meta, nil
}

// listAll recorre page=1..last_page con el tamaño de página configurado.
func listAll[W any](ctx context.Context, c *Client, path string, query url.Values) ([]W, error) {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("per_page", strconv.Itoa(c.pageSize))

	var all []W
	for page := 1; page <= maxPages; page++ {
		q.Set("page", strconv.Itoa(page))
		items, meta, err := listPage[W](ctx, c, path, q)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) == 0 || page >= meta.LastPage {
			return all, nil
		}
	}
	return nil, errors.New("gateway: demasiadas páginas en " + path)
}

func pagingQuery(page, perPage int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	return q
}

func idPath(base string, id int64) string {
	return base + "/" + strconv.FormatInt(id, 10)
}
