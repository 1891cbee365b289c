package botgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для отправки уведомлений через BotGateway
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента BotGateway
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Notify отправляет пользователю сообщение в Telegram через шлюз бота
func (c *Client) Notify(ctx context.Context, telegramID int64, message string) error {
	url := fmt.Sprintf("%s/internal/notifications", c.baseURL)

	payload, err := json.Marshal(notifyRequest{
		TelegramID: telegramID,
		Message:    message,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	case http.StatusNotFound:
		return ErrRecipientNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// NotifyWithGracefulDegradation отправляет уведомление с graceful degradation.
// Недоступность шлюза не должна ломать бизнес-операцию: ошибка логируется
// и возвращается ErrServiceDegraded, вызывающий код продолжает работу
func (c *Client) NotifyWithGracefulDegradation(ctx context.Context, telegramID int64, message string) error {
	err := c.Notify(ctx, telegramID, message)
	if err != nil {
		if err == ErrRecipientNotFound {
			c.log.Info("No telegram recipient for telegram_id=%d", telegramID)
			return err
		}

		c.log.Error("BotGateway unavailable, notification dropped for telegram_id=%d: %v", telegramID, err)
		return fmt.Errorf("%w: telegram_id=%d, error=%v", ErrServiceDegraded, telegramID, err)
	}

	c.log.Info("Notification delivered to telegram_id=%d", telegramID)
	return nil
}
