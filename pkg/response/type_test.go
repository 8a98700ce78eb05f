package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"lifeplanner/pkg/response"
)

func TestDateTimeMarshaling(t *testing.T) {
	t.Run("renders RFC 3339", func(t *testing.T) {
		ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

		b, err := json.Marshal(response.DateTime(ts))
		if err != nil {
			t.Fatalf("marshal error: %v", err)
		}
		if string(b) != `"2026-03-14T09:30:00Z"` {
			t.Errorf("unexpected datetime format: %s", b)
		}
	})

	t.Run("converts to UTC before rendering", func(t *testing.T) {
		loc := time.FixedZone("UTC+7", 7*3600)
		ts := time.Date(2026, 3, 14, 16, 30, 0, 0, loc)

		b, err := json.Marshal(response.DateTime(ts))
		if err != nil {
			t.Fatalf("marshal error: %v", err)
		}
		if string(b) != `"2026-03-14T09:30:00Z"` {
			t.Errorf("local time leaked onto the wire: %s", b)
		}
	})
}
