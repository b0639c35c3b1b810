package models

// Session is the authenticated identity. It is the only entity the
// client persists; the JSON keys match the stored record layout.
type Session struct {
	UserID   int    `json:"id"`
	Username string `json:"username"`
}
