package feed

import "time"

const feedTimestampLayout = "2006-01-02 15:04:05"

// ItemsResponse mirrors the payload returned by /api/items.
type ItemsResponse struct {
	Items []Item `json:"items"`
}

// Item is one entry of the feed.
type Item struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"`
}

// DisplayTitle returns the title, or a placeholder when it is empty.
func (i Item) DisplayTitle() string {
	if i.Title != "" {
		return i.Title
	}
	return "untitled"
}

// ParsedUpdatedAt returns the parsed UpdatedAt timestamp.
func (i Item) ParsedUpdatedAt() time.Time {
	return parseTime(i.UpdatedAt)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(feedTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
