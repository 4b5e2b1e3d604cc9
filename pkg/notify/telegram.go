package notify

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Sender pushes one message to one chat. Implementations must be safe
// for concurrent use; delivery is best effort.
type Sender interface {
	Send(chatID, text string, buttons []Button) error
}

// Button is one inline-keyboard control attached to a message.
type Button struct {
	Text string `json:"text"`
	Data string `json:"callback_data"`
}

// Telegram sends via the bot API sendMessage method.
type Telegram struct {
	client *resty.Client
	token  string
}

func NewTelegram(apiURL, token string) *Telegram {
	return &Telegram{
		client: resty.New().SetBaseURL(apiURL),
		token:  token,
	}
}

func (t *Telegram) Send(chatID, text string, buttons []Button) error {
	body := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	if len(buttons) > 0 {
		rows := make([][]Button, 0, len(buttons))
		for _, b := range buttons {
			rows = append(rows, []Button{b})
		}
		body["reply_markup"] = map[string]any{"inline_keyboard": rows}
	}

	res, err := t.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(fmt.Sprintf("/bot%s/sendMessage", t.token))
	if err != nil {
		return err
	}
	if res.IsError() {
		return fmt.Errorf("telegram sendMessage: status %d: %s", res.StatusCode(), res.String())
	}
	return nil
}

// Dispatcher fans messages out after the surrounding transaction has
// committed. Failures are logged and swallowed: a lost notification
// never rolls back or retries the state change that triggered it.
type Dispatcher struct {
	sender Sender
	log    *zap.Logger
}

func NewDispatcher(sender Sender, log *zap.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, log: log}
}

func (d *Dispatcher) Dispatch(chatID, text string, buttons ...Button) {
	if d == nil || d.sender == nil || chatID == "" {
		return
	}
	go func() {
		if err := d.sender.Send(chatID, text, buttons); err != nil {
			d.log.Warn("notification dropped",
				zap.String("chatId", chatID),
				zap.Error(err),
			)
		}
	}()
}

// Broadcast sends the same text to every chat in the list.
func (d *Dispatcher) Broadcast(chatIDs []string, text string, buttons ...Button) {
	for _, id := range chatIDs {
		d.Dispatch(id, text, buttons...)
	}
}
