package client

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/simcoaches/trackpro/pkg/events"
)

// SubscribeEvents opens the daemon's event stream and delivers decoded
// events until ctx is cancelled or the connection drops. The returned
// channel is closed when the stream ends.
func (c *Client) SubscribeEvents(ctx context.Context) <-chan events.Event {
	out := make(chan events.Event, 16)

	go func() {
		defer close(out)

		req, err := http.NewRequestWithContext(ctx, "GET", "http://unix/events", nil)
		if err != nil {
			logrus.WithError(err).Error("failed to create event stream request")
			return
		}
		req.Header.Set("Accept", "text/event-stream")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logrus.WithError(err).Debug("event stream connection failed")
			return
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logrus.Errorf("failed to close event stream body: %v", err)
			}
		}()

		if resp.StatusCode != http.StatusOK {
			logrus.Errorf("event stream returned %d", resp.StatusCode)
			return
		}

		var name string
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case strings.HasPrefix(line, "event: "):
				name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				data := strings.TrimPrefix(line, "data: ")
				ev := events.Event{Name: name, Data: json.RawMessage(data)}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
