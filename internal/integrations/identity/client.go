package identity

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	pathSignIn = "/accounts:signInWithPassword"
	pathSignUp = "/accounts:signUp"
)

// Client клиент внешнего провайдера аутентификации (протокол Identity Toolkit)
type Client struct {
	http   *resty.Client
	apiKey string
	log    Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewClient создает клиент провайдера
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Повторяем только сетевые ошибки и 5xx
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:   httpClient,
		apiKey: apiKey,
		log:    log,
	}
}

// SignIn проверяет email и пароль
func (c *Client) SignIn(ctx context.Context, email, password string) (*User, error) {
	return c.passwordCall(ctx, pathSignIn, email, password)
}

// SignUp создает пользователя
func (c *Client) SignUp(ctx context.Context, email, password string) (*User, error) {
	return c.passwordCall(ctx, pathSignUp, email, password)
}

func (c *Client) passwordCall(ctx context.Context, path, email, password string) (*User, error) {
	var result authResponse
	var apiErr ErrorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(passwordRequest{Email: email, Password: password, ReturnSecureToken: true}).
		SetResult(&result).
		SetError(&apiErr).
		Post(path)
	if err != nil {
		c.log.Error("Identity %s: request failed: %v", path, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	// Обработка статус-кодов
	switch {
	case resp.StatusCode() == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode() >= http.StatusBadRequest && resp.StatusCode() < http.StatusInternalServerError:
		return nil, mapProviderError(apiErr.Error.Message)
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode(), resp.String())
	}

	if result.LocalID == "" {
		return nil, fmt.Errorf("%w: empty user id", ErrInvalidResponse)
	}

	userEmail := result.Email
	if userEmail == "" {
		userEmail = email
	}

	return &User{ID: result.LocalID, Email: userEmail}, nil
}

// mapProviderError переводит коды ошибок провайдера в ошибки клиента
// Сообщение может иметь вид "WEAK_PASSWORD : Password should be at least 6 characters"
func mapProviderError(message string) error {
	code := strings.TrimSpace(strings.SplitN(message, ":", 2)[0])

	switch code {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED":
		return ErrInvalidCredentials
	case "EMAIL_EXISTS":
		return ErrEmailExists
	case "WEAK_PASSWORD":
		return ErrWeakPassword
	case "INVALID_EMAIL", "MISSING_EMAIL":
		return ErrInvalidEmail
	case "MISSING_PASSWORD":
		return ErrInvalidCredentials
	default:
		return fmt.Errorf("%w: provider error %q", ErrInvalidResponse, message)
	}
}
