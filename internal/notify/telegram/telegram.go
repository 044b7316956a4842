package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const apiBaseURL = "https://api.telegram.org"

type Config struct {
	Token  string
	ChatID string
}

// Notifier posts messages to a Telegram chat via the Bot API. With an empty
// token it degrades to a logging no-op so local setups work without a bot.
type Notifier struct {
	client  *http.Client
	baseURL string
	cfg     Config
	logger  *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Notifier {
	return &Notifier{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: apiBaseURL,
		cfg:     cfg,
		logger:  logger,
	}
}

func (n *Notifier) Send(ctx context.Context, text string) error {
	if n.cfg.Token == "" {
		n.logger.Debug("telegram notifications disabled", zap.String("text", text))
		return nil
	}

	body, err := json.Marshal(map[string]string{
		"chat_id": n.cfg.ChatID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.cfg.Token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram api responded with status %d", resp.StatusCode)
	}

	return nil
}
