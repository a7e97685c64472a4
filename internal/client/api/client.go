package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/finkeeper/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetAccessToken устанавливает bearer token для защищенных запросов
func (c *Client) SetAccessToken(token string) {
	c.accessToken = token
}

// Signup регистрирует нового пользователя
func (c *Client) Signup(ctx context.Context, req api.SignupRequest) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doRequest(ctx, "POST", "/auth/signup", req, &resp); err != nil {
		return nil, fmt.Errorf("signup request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	if err := c.doRequest(ctx, "POST", "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обменивает refresh token на новый access token
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.RefreshResponse, error) {
	var resp api.RefreshResponse
	req := api.RefreshRequest{Refresh: refreshToken}
	if err := c.doRequest(ctx, "POST", "/auth/refresh", req, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout отзывает refresh token на сервере
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	req := api.LogoutRequest{Refresh: refreshToken}
	if err := c.doRequest(ctx, "POST", "/auth/logout", req, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// GetProfile получает профиль пользователя
func (c *Client) GetProfile(ctx context.Context, userID string) (*api.UserResponse, error) {
	var resp api.UserResponse
	url := fmt.Sprintf("/auth/user/%s/profile/", userID)
	if err := c.doRequest(ctx, "GET", url, nil, &resp); err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile полностью обновляет профиль пользователя
func (c *Client) UpdateProfile(ctx context.Context, userID string, req api.ProfileUpdateRequest) (*api.UserResponse, error) {
	var resp api.UserResponse
	url := fmt.Sprintf("/auth/user/%s/profile/", userID)
	if err := c.doRequest(ctx, "PUT", url, req, &resp); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &resp, nil
}

// CreateExpenditure создает новую запись расхода
func (c *Client) CreateExpenditure(ctx context.Context, req api.ExpenditureRequest) (*api.ExpenditureResponse, error) {
	var resp api.ExpenditureResponse
	if err := c.doRequest(ctx, "POST", "/expenditure/user/", req, &resp); err != nil {
		return nil, fmt.Errorf("create expenditure request failed: %w", err)
	}
	return &resp, nil
}

// ListExpenditures возвращает все записи расходов пользователя
func (c *Client) ListExpenditures(ctx context.Context) ([]api.ExpenditureResponse, error) {
	var resp []api.ExpenditureResponse
	if err := c.doRequest(ctx, "GET", "/expenditure/user/", nil, &resp); err != nil {
		return nil, fmt.Errorf("list expenditures request failed: %w", err)
	}
	return resp, nil
}

// GetExpenditure возвращает одну запись расхода
func (c *Client) GetExpenditure(ctx context.Context, id string) (*api.ExpenditureResponse, error) {
	var resp api.ExpenditureResponse
	url := fmt.Sprintf("/expenditure/user/%s/", id)
	if err := c.doRequest(ctx, "GET", url, nil, &resp); err != nil {
		return nil, fmt.Errorf("get expenditure request failed: %w", err)
	}
	return &resp, nil
}

// UpdateExpenditure полностью обновляет запись расхода
func (c *Client) UpdateExpenditure(ctx context.Context, id string, req api.ExpenditureRequest) (*api.ExpenditureResponse, error) {
	var resp api.ExpenditureResponse
	url := fmt.Sprintf("/expenditure/user/%s/", id)
	if err := c.doRequest(ctx, "PUT", url, req, &resp); err != nil {
		return nil, fmt.Errorf("update expenditure request failed: %w", err)
	}
	return &resp, nil
}

// PatchExpenditure частично обновляет запись расхода
func (c *Client) PatchExpenditure(ctx context.Context, id string, req api.ExpenditureRequest) (*api.ExpenditureResponse, error) {
	var resp api.ExpenditureResponse
	url := fmt.Sprintf("/expenditure/user/%s/", id)
	if err := c.doRequest(ctx, "PATCH", url, req, &resp); err != nil {
		return nil, fmt.Errorf("patch expenditure request failed: %w", err)
	}
	return &resp, nil
}

// DeleteExpenditure удаляет запись расхода
func (c *Client) DeleteExpenditure(ctx context.Context, id string) error {
	url := fmt.Sprintf("/expenditure/user/%s/", id)
	if err := c.doRequest(ctx, "DELETE", url, nil, nil); err != nil {
		return fmt.Errorf("delete expenditure request failed: %w", err)
	}
	return nil
}

// CreateIncome создает новую запись дохода
func (c *Client) CreateIncome(ctx context.Context, req api.IncomeRequest) (*api.IncomeResponse, error) {
	var resp api.IncomeResponse
	if err := c.doRequest(ctx, "POST", "/income/user/", req, &resp); err != nil {
		return nil, fmt.Errorf("create income request failed: %w", err)
	}
	return &resp, nil
}

// ListIncomes возвращает все записи доходов пользователя
func (c *Client) ListIncomes(ctx context.Context) ([]api.IncomeResponse, error) {
	var resp []api.IncomeResponse
	if err := c.doRequest(ctx, "GET", "/income/user/", nil, &resp); err != nil {
		return nil, fmt.Errorf("list incomes request failed: %w", err)
	}
	return resp, nil
}

// GetIncome возвращает одну запись дохода
func (c *Client) GetIncome(ctx context.Context, id string) (*api.IncomeResponse, error) {
	var resp api.IncomeResponse
	url := fmt.Sprintf("/income/user/%s/", id)
	if err := c.doRequest(ctx, "GET", url, nil, &resp); err != nil {
		return nil, fmt.Errorf("get income request failed: %w", err)
	}
	return &resp, nil
}

// UpdateIncome полностью обновляет запись дохода
func (c *Client) UpdateIncome(ctx context.Context, id string, req api.IncomeRequest) (*api.IncomeResponse, error) {
	var resp api.IncomeResponse
	url := fmt.Sprintf("/income/user/%s/", id)
	if err := c.doRequest(ctx, "PUT", url, req, &resp); err != nil {
		return nil, fmt.Errorf("update income request failed: %w", err)
	}
	return &resp, nil
}

// DeleteIncome удаляет запись дохода
func (c *Client) DeleteIncome(ctx context.Context, id string) error {
	url := fmt.Sprintf("/income/user/%s/", id)
	if err := c.doRequest(ctx, "DELETE", url, nil, nil); err != nil {
		return fmt.Errorf("delete income request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
