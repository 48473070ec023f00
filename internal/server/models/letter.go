// Package models defines the rows the PostMe storage service persists.
package models

// Letter is a single addressed message record. Only IsRead mutates after
// creation; everything else is written once.
type Letter struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
	Color     string `json:"color"`
	IsRead    bool   `json:"isRead"`
	IsMagic   bool   `json:"isMagic"`
}
