package flash

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ikkim/fyyur/pkg/logger"
)

const sessionKey = "flash_session_id"

// Flasher attaches flash messages to the browser session identified by a
// cookie.
type Flasher struct {
	store  Store
	cookie string
}

func New(store Store, cookieName string) *Flasher {
	return &Flasher{store: store, cookie: cookieName}
}

// Add queues a message for the next rendered page.
func (f *Flasher) Add(c *gin.Context, category, text string) {
	f.AddAll(c, category, text)
}

// AddAll queues several messages of one category.
func (f *Flasher) AddAll(c *gin.Context, category string, texts ...string) {
	if len(texts) == 0 {
		return
	}
	msgs := make([]Message, 0, len(texts))
	for _, t := range texts {
		msgs = append(msgs, Message{Category: category, Text: t})
	}
	if err := f.store.Push(c.Request.Context(), f.sessionID(c), msgs...); err != nil {
		logger.Error("Failed to store flash messages", err, map[string]interface{}{
			"count": len(msgs),
		})
	}
}

// Pop returns the pending messages and clears them. A session without a
// cookie has none.
func (f *Flasher) Pop(c *gin.Context) []Message {
	id, ok := f.existingSessionID(c)
	if !ok {
		return nil
	}
	msgs, err := f.store.Pop(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to load flash messages", err)
		return nil
	}
	return msgs
}

func (f *Flasher) existingSessionID(c *gin.Context) (string, bool) {
	if id := c.GetString(sessionKey); id != "" {
		return id, true
	}
	id, err := c.Cookie(f.cookie)
	if err != nil || id == "" {
		return "", false
	}
	c.Set(sessionKey, id)
	return id, true
}

func (f *Flasher) sessionID(c *gin.Context) string {
	if id, ok := f.existingSessionID(c); ok {
		return id
	}
	id := uuid.New().String()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(f.cookie, id, 0, "/", "", false, true)
	c.Set(sessionKey, id)
	return id
}
