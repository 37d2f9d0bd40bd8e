package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/decomizer/storefront/model"
	"github.com/go-resty/resty/v2"
)

const dashboardPath = "/api/admin/dashboard"

// Fetcher loads one dashboard snapshot.
type Fetcher interface {
	Fetch(ctx context.Context) (*model.DashboardData, error)
}

// Client fetches the admin dashboard over HTTP with a bearer token.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if token != "" {
		c.SetAuthToken(token)
	}
	return &Client{http: c}
}

// the failure envelope carries message next to error
type fetchResponse struct {
	model.DashboardResponse
	Message string `json:"message"`
}

func (c *Client) Fetch(ctx context.Context) (*model.DashboardData, error) {
	resp, err := c.http.R().SetContext(ctx).Get(dashboardPath)
	if err != nil {
		return nil, err
	}

	var body fetchResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("dashboard returned status %d", resp.StatusCode())
	}
	if !body.Success || body.Data == nil {
		msg := body.Error
		if msg == "" {
			msg = body.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("dashboard returned status %d", resp.StatusCode())
		}
		return nil, fmt.Errorf("%s", msg)
	}
	return body.Data, nil
}
