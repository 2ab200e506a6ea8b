package supabase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/seu-usuario/farmacia-api/pkg/config"
)

// Client fala com a API de tabelas do Supabase (PostgREST). Cada operação
// dos repositórios vira uma chamada REST com filtros na query string, o
// mesmo modelo do client supabase-js da versão original.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
}

// NewClient constrói o client a partir da configuração.
func NewClient(cfg config.DBConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.SupabaseURL, "/"),
		key:     cfg.SupabaseKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// apiError resposta de erro do PostgREST.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IsUniqueViolation informa se o erro veio do constraint único do banco (23505).
func IsUniqueViolation(err error) bool {
	var e *RequestError
	return errors.As(err, &e) && e.Code == "23505"
}

// IsInvalidID informa se o erro veio de um valor que não casta para a
// coluna uuid (22P02); para as leituras equivale a linha inexistente.
func IsInvalidID(err error) bool {
	var e *RequestError
	return errors.As(err, &e) && e.Code == "22P02"
}

// RequestError erro de uma chamada à API de tabelas.
type RequestError struct {
	Status  int
	Code    string
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("supabase: status %d code %s: %s", e.Status, e.Code, e.Message)
}

// do executa uma chamada contra /rest/v1/<table>?<query>, decodifica a
// resposta em out (quando não nil) e devolve o total do Content-Range
// quando Prefer inclui count=exact.
func (c *Client) do(method, table string, query url.Values, body any, out any, prefer string) (int, error) {
	endpoint := c.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &apiErr)
		return 0, &RequestError{Status: resp.StatusCode, Code: apiErr.Code, Message: apiErr.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return 0, fmt.Errorf("decode response: %w", err)
		}
	}

	return parseContentRangeTotal(resp.Header.Get("Content-Range")), nil
}

// Select lista linhas; com count=true o total vem do header Content-Range.
func (c *Client) Select(table string, query url.Values, out any, count bool) (int, error) {
	prefer := ""
	if count {
		prefer = "count=exact"
	}
	return c.do(http.MethodGet, table, query, nil, out, prefer)
}

// Insert insere uma linha e decodifica a representação retornada.
func (c *Client) Insert(table string, body, out any) error {
	_, err := c.do(http.MethodPost, table, nil, body, out, "return=representation")
	return err
}

// Update aplica um patch nas linhas que casam a query.
func (c *Client) Update(table string, query url.Values, body any) error {
	_, err := c.do(http.MethodPatch, table, query, body, nil, "")
	return err
}

// parseContentRangeTotal extrai o total de "items 0-9/25" (ou "*/25").
func parseContentRangeTotal(header string) int {
	idx := strings.LastIndex(header, "/")
	if idx < 0 {
		return 0
	}
	total, err := strconv.Atoi(header[idx+1:])
	if err != nil {
		return 0
	}
	return total
}

// rangeQuery anexa paginação limit/offset à query PostgREST.
func rangeQuery(q url.Values, limit, offset int) url.Values {
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	return q
}

// ilikePattern padrão de busca por substring, case-insensitive.
func ilikePattern(s string) string {
	return "*" + s + "*"
}
