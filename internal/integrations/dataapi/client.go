package dataapi

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

	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
)

// restPath префикс REST-интерфейса data API
const restPath = "/rest/v1/"

// Client клиент hosted data API (PostgREST-совместимый протокол).
// Реализует gateway.Gateway.
type Client struct {
	baseURL    string
	apiKey     string
	schema     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента data API
func NewClient(baseURL, apiKey, schema string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		schema:  schema,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Configured возвращает true, если заданы адрес и ключ
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

// Select читает строки таблицы или представления
func (c *Client) Select(ctx context.Context, resource string, q gateway.Query) ([]gateway.Row, error) {
	if err := gateway.CheckReadable(resource); err != nil {
		return nil, err
	}
	if !c.Configured() {
		return nil, gateway.ErrNotConfigured
	}

	req, err := c.newRequest(ctx, http.MethodGet, resource, encodeQuery(q), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(headerAcceptProfile, c.schema)

	var rows []gateway.Row
	if err := c.do(req, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []gateway.Row{}
	}
	return rows, nil
}

// Insert вставляет строки одним запросом и возвращает первичные ключи
func (c *Client) Insert(ctx context.Context, table string, rows []gateway.Row) ([]string, error) {
	key, err := gateway.CheckWritable(table)
	if err != nil {
		return nil, err
	}
	if !c.Configured() {
		return nil, gateway.ErrNotConfigured
	}
	if len(rows) == 0 {
		return []string{}, nil
	}

	values := url.Values{}
	values.Set("select", key)

	req, err := c.newRequest(ctx, http.MethodPost, table, values, rows)
	if err != nil {
		return nil, err
	}
	req.Header.Set(headerContentProfile, c.schema)
	req.Header.Set(headerPrefer, preferRepresentation)

	var inserted []gateway.Row
	if err := c.do(req, &inserted); err != nil {
		return nil, err
	}
	return collectKeys(inserted, key), nil
}

// Update обновляет строки по фильтру и возвращает ключи затронутых строк.
// Пустой результат означает, что ни одна строка не изменилась (в том числе из-за RLS).
func (c *Client) Update(ctx context.Context, table string, filters []gateway.Filter, patch gateway.Row) ([]string, error) {
	key, err := gateway.CheckWritable(table)
	if err != nil {
		return nil, err
	}
	if len(filters) == 0 {
		return nil, gateway.ErrEmptyFilter
	}
	if !c.Configured() {
		return nil, gateway.ErrNotConfigured
	}

	values := url.Values{}
	values.Set("select", key)
	addFilters(values, filters)

	req, err := c.newRequest(ctx, http.MethodPatch, table, values, patch)
	if err != nil {
		return nil, err
	}
	req.Header.Set(headerContentProfile, c.schema)
	req.Header.Set(headerPrefer, preferRepresentation)

	var updated []gateway.Row
	if err := c.do(req, &updated); err != nil {
		return nil, err
	}
	return collectKeys(updated, key), nil
}

// Delete удаляет строки по фильтру
func (c *Client) Delete(ctx context.Context, table string, filters []gateway.Filter) error {
	if _, err := gateway.CheckWritable(table); err != nil {
		return err
	}
	if len(filters) == 0 {
		return gateway.ErrEmptyFilter
	}
	if !c.Configured() {
		return gateway.ErrNotConfigured
	}

	values := url.Values{}
	addFilters(values, filters)

	req, err := c.newRequest(ctx, http.MethodDelete, table, values, nil)
	if err != nil {
		return err
	}
	req.Header.Set(headerContentProfile, c.schema)
	req.Header.Set(headerPrefer, preferMinimal)

	return c.do(req, nil)
}

func (c *Client) newRequest(ctx context.Context, method, resource string, values url.Values, body interface{}) (*http.Request, error) {
	endpoint := c.baseURL + restPath + resource
	if encoded := values.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerAuthorization, "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do выполняет запрос и декодирует ответ в dest (если dest не nil)
func (c *Client) do(req *http.Request, dest interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("DataAPI: %s %s failed: %v", req.Method, req.URL.Path, err)
		return fmt.Errorf("%w: %s %s: %v", gateway.ErrTransport, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		var apiErr errorBody
		if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		c.log.Warn("DataAPI: %s %s rejected with status %d: %s", req.Method, req.URL.Path, resp.StatusCode, apiErr.Message)
		return apiErr.toBackendError(resp.StatusCode)
	}

	if dest == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(dest); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func collectKeys(rows []gateway.Row, key string) []string {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, gateway.KeyString(row[key]))
	}
	return ids
}
