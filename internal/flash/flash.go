// Package flash carries one-shot status messages from a mutation to the page
// the client is redirected to.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the cookie holding pending messages between two requests.
const CookieName = "flash"

// Severity is the display level of a message.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Message is a single status line shown to the user.
type Message struct {
	Severity Severity `json:"severity"`
	Text     string   `json:"message"`
}

func Info(text string) Message    { return Message{Severity: SeverityInfo, Text: text} }
func Success(text string) Message { return Message{Severity: SeveritySuccess, Text: text} }
func Warning(text string) Message { return Message{Severity: SeverityWarning, Text: text} }
func Danger(text string) Message  { return Message{Severity: SeverityDanger, Text: text} }

// Redirect is the outcome of a mutation: where to send the client next and
// what to tell it once it gets there.
type Redirect struct {
	Location string
	Messages []Message
}

// To builds a Redirect to location with the given messages.
func To(location string, msgs ...Message) Redirect {
	return Redirect{Location: location, Messages: msgs}
}

// Write stores r's messages in the flash cookie and answers 303 See Other.
func Write(c *gin.Context, r Redirect) {
	if len(r.Messages) > 0 {
		if value, err := encode(r.Messages); err == nil {
			setCookie(c, value, 0)
		}
	}
	c.Redirect(http.StatusSeeOther, r.Location)
}

// Pop returns the pending messages and clears the cookie. A missing or
// unreadable cookie yields an empty list.
func Pop(c *gin.Context) []Message {
	value, err := c.Cookie(CookieName)
	if err != nil || value == "" {
		return []Message{}
	}
	setCookie(c, "", -1)

	msgs, err := decode(value)
	if err != nil {
		return []Message{}
	}
	return msgs
}

func setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", c.Request.TLS != nil, true)
}

func encode(msgs []Message) (string, error) {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decode(value string) ([]Message, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, err
	}
	var msgs []Message
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []Message{}
	}
	return msgs, nil
}
