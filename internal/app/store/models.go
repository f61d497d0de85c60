/*
Package store implements the typed query layer over the PostgreSQL connection pool.

Every handler-visible read and write goes through a method on Store. The message
append is the only multi-statement transaction; everything else is a single
auto-committed statement, with concurrency safety delegated to the database.
*/
package store

import "time"

// AnonymousUser is a row of the anonymous_users table.
type AnonymousUser struct {
	ID           int32
	Username     string
	AvatarLetter string
	SessionToken string
	LastActive   time.Time
	IsOnline     bool
}

// MessageRow is a messages row joined with its author's display fields.
type MessageRow struct {
	ID           int32
	Content      string
	CreatedAt    time.Time
	Username     string
	AvatarLetter string
}

// UserStats carries the user aggregates computed in a single scan of anonymous_users.
type UserStats struct {
	TotalUsers  int
	OnlineUsers int
	ActiveToday int
}

// Server is a row of the servers table, shaped for the catalog response.
type Server struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Members     int    `json:"members"`
	Online      int    `json:"online"`
}

// Channel is a channels row joined with its server's name, shaped for the catalog response.
type Channel struct {
	ID         int32  `json:"id"`
	Name       string `json:"name"`
	Topic      string `json:"topic"`
	Messages   int    `json:"messages"`
	Type       string `json:"type"`
	ServerName string `json:"server_name"`
}
