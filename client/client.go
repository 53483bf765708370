// Package client is a typed HTTP client for the LaptopZoneLB API.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Kariqs/laptopzone-api/admin"
	"github.com/Kariqs/laptopzone-api/catalog"
	"github.com/Kariqs/laptopzone-api/models"
	"github.com/go-resty/resty/v2"
)

var ErrConflict = errors.New("conflict")

// APIError is a non-2xx response.
type APIError struct {
	Status        int      `json:"-"`
	Message       string   `json:"message"`
	Detail        string   `json:"error"`
	MissingFields []string `json:"missingFields"`
	InvalidFields []string `json:"invalidFields"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrConflict && e.Status == http.StatusConflict
}

type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second).
			SetHeader("Accept", "application/json").
			SetError(&APIError{}),
	}
}

// SetToken authenticates subsequent admin calls.
func (c *Client) SetToken(token string) *Client {
	c.http.SetAuthToken(token)
	return c
}

func (c *Client) do(req *resty.Request, method, url string) error {
	resp, err := req.Execute(method, url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		apiErr, ok := resp.Error().(*APIError)
		if !ok || apiErr == nil {
			apiErr = &APIError{Message: string(resp.Body())}
		}
		apiErr.Status = resp.StatusCode()
		return apiErr
	}
	return nil
}

type LoginResult struct {
	Token string `json:"token"`
	UID   string `json:"uid"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	req := c.http.R().SetContext(ctx).
		SetBody(models.LoginData{Email: email, Password: password}).
		SetResult(&out)
	if err := c.do(req, resty.MethodPost, "/auth/login"); err != nil {
		return LoginResult{}, err
	}
	c.SetToken(out.Token)
	return out, nil
}

type productsResponse struct {
	Products []models.Product `json:"products"`
}

func (c *Client) Products(ctx context.Context, search, brand string) ([]models.Product, error) {
	var out productsResponse
	req := c.http.R().SetContext(ctx).SetResult(&out)
	if search != "" {
		req.SetQueryParam("search", search)
	}
	if brand != "" {
		req.SetQueryParam("brand", brand)
	}
	if err := c.do(req, resty.MethodGet, "/product"); err != nil {
		return nil, err
	}
	return out.Products, nil
}

type ProductDetail struct {
	Product models.Product `json:"product"`
	Pricing catalog.Quote  `json:"pricing"`
}

// Product fetches one listing; zero sizes leave the selection at its default.
func (c *Client) Product(ctx context.Context, slug string, ramSizeGB, storageSizeGB int) (ProductDetail, error) {
	var out ProductDetail
	req := c.http.R().SetContext(ctx).SetPathParam("slug", slug).SetResult(&out)
	if ramSizeGB > 0 {
		req.SetQueryParam("ram", strconv.Itoa(ramSizeGB))
	}
	if storageSizeGB > 0 {
		req.SetQueryParam("storage", strconv.Itoa(storageSizeGB))
	}
	if err := c.do(req, resty.MethodGet, "/product/{slug}"); err != nil {
		return ProductDetail{}, err
	}
	return out, nil
}

type recommendResponse struct {
	Results []catalog.Scored `json:"results"`
}

func (c *Client) Recommend(ctx context.Context, prefs catalog.Preferences) ([]catalog.Scored, error) {
	var out recommendResponse
	req := c.http.R().SetContext(ctx).SetResult(&out).SetQueryParams(map[string]string{
		"minBudget":  strconv.FormatFloat(prefs.MinBudget, 'f', -1, 64),
		"maxBudget":  strconv.FormatFloat(prefs.MaxBudget, 'f', -1, 64),
		"cpu":        prefs.CPUPref,
		"gpu":        prefs.GPUPref,
		"ramMin":     strconv.Itoa(prefs.RAMMin),
		"storageMin": strconv.Itoa(prefs.StorageMin),
	})
	if err := c.do(req, resty.MethodGet, "/advisor"); err != nil {
		return nil, err
	}
	return out.Results, nil
}

type submitResponse struct {
	ID string `json:"id"`
}

// SubmitProduct creates a listing and returns its id.
func (c *Client) SubmitProduct(ctx context.Context, form admin.ProductForm) (string, error) {
	var out submitResponse
	req := c.http.R().SetContext(ctx).SetBody(form).SetResult(&out)
	if err := c.do(req, resty.MethodPost, "/admin/product"); err != nil {
		return "", err
	}
	return out.ID, nil
}
