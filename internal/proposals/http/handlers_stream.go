package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// streamEvents pushes proposal change notifications to the dashboard
// over Server-Sent Events. The signal is undifferentiated; the
// dashboard re-fetches the full list on every event.
func (h *Handler) streamEvents(c *gin.Context) {
	if h.feed == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "change feed unavailable"})
		return
	}

	ctx := c.Request.Context()

	events, err := h.feed.Subscribe(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "subscribe failed"})
		return
	}

	// Set SSE headers
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx: disable buffering

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "streaming unsupported"})
		return
	}

	// Send the current list as the initial state, mirroring the fetch
	// the dashboard does on activation. Without it the dashboard would
	// render a live stream over an empty table, so a failed read ends
	// the stream instead of hiding the outage.
	items, err := h.svc.List(ctx)
	if err != nil {
		fmt.Fprint(c.Writer, "event: error\ndata: {\"error\":\"initial state unavailable\"}\n\n")
		flusher.Flush()
		return
	}
	initial, _ := json.Marshal(gin.H{"proposals": items})
	fmt.Fprintf(c.Writer, "event: initial\ndata: %s\n\n", initial)
	flusher.Flush()

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Client disconnected
			return

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": keep-alive\n\n")
			flusher.Flush()

		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "event: change\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
