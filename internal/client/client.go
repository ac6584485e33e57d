// Package client реализует HTTP адаптер к сервису участников команды.
//
// Клиент выполняет ровно один запрос на операцию: без повторов, без backoff и
// без собственного таймаута. Ожидание ограничивается только переданным context.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/aidar/dsc-roster/internal/domain"
)

const (
	membersPath = "/api/team-members"
	memberPath  = "/api/team-members/{id}"
	clubPath    = "/api/club-info"
)

// ErrMissingID возвращается при попытке адресовать участника без ID
var ErrMissingID = errors.New("team member id is required")

// StatusError описывает ответ сервиса с кодом вне диапазона 2xx
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Client выполняет запросы к API участников по базовому URL
type Client struct {
	http *resty.Client
}

// New создает клиента для сервиса, доступного по baseURL
func New(baseURL string) *Client {
	return NewWithResty(resty.New(), baseURL)
}

// NewWithResty создает клиента поверх заранее настроенного resty клиента
func NewWithResty(rc *resty.Client, baseURL string) *Client {
	rc.SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")

	return &Client{http: rc}
}

// List выполняет GET /api/team-members
func (c *Client) List(ctx context.Context) ([]domain.TeamMember, error) {
	resp, err := c.http.R().SetContext(ctx).Get(membersPath)
	if err := check(resp, err); err != nil {
		return nil, err
	}

	var members []domain.TeamMember
	if err := decode(resp, &members); err != nil {
		return nil, err
	}
	if members == nil {
		members = []domain.TeamMember{}
	}
	return members, nil
}

// Create выполняет POST /api/team-members и возвращает участника с присвоенным ID
func (c *Client) Create(ctx context.Context, draft domain.Draft) (*domain.TeamMember, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Post(membersPath)
	if err := check(resp, err); err != nil {
		return nil, err
	}

	var member domain.TeamMember
	if err := decode(resp, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Update выполняет PUT /api/team-members/{id}; тело ответа игнорируется
func (c *Client) Update(ctx context.Context, id string, draft domain.Draft) error {
	if id == "" {
		return ErrMissingID
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(draft).
		Put(memberPath)
	return check(resp, err)
}

// Delete выполняет DELETE /api/team-members/{id}; тело ответа игнорируется
func (c *Client) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete(memberPath)
	return check(resp, err)
}

// ClubInfo выполняет GET /api/club-info
func (c *Client) ClubInfo(ctx context.Context) (*domain.ClubInfo, error) {
	resp, err := c.http.R().SetContext(ctx).Get(clubPath)
	if err := check(resp, err); err != nil {
		return nil, err
	}

	var info domain.ClubInfo
	if err := decode(resp, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// check превращает транспортную ошибку или не-2xx ответ в error
func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return &StatusError{
			Method:     resp.Request.Method,
			URL:        resp.Request.URL,
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(resp.String()),
		}
	}
	return nil
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("decode %s %s response: %w", resp.Request.Method, resp.Request.URL, err)
	}
	return nil
}

// IsNotFound сообщает, что сервис ответил 404
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}
