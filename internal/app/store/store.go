package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store executes all SQL against the connection pool. It is safe for concurrent use;
// each method acquires and releases a pooled connection on every exit path.
type Store struct {
	pool *pgxpool.Pool
}

// New wraps the given connection pool in a Store.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// ErrNoRows is re-exported so callers can distinguish a miss from a database failure
// without importing pgx themselves.
var ErrNoRows = pgx.ErrNoRows

// GetUserBySessionToken looks up the anonymous user bound to the given session token.
// It returns ErrNoRows when the token is unknown.
func (s *Store) GetUserBySessionToken(ctx context.Context, token string) (AnonymousUser, error) {
	var u AnonymousUser
	err := s.pool.QueryRow(ctx, `
		SELECT id, username, avatar_letter, session_token, last_active, is_online
		FROM anonymous_users
		WHERE session_token = $1
	`, token).Scan(&u.ID, &u.Username, &u.AvatarLetter, &u.SessionToken, &u.LastActive, &u.IsOnline)
	if err != nil {
		return AnonymousUser{}, err
	}
	return u, nil
}

// CreateUser inserts a new anonymous user and returns its generated id.
// A duplicate session token surfaces as a unique-violation error.
func (s *Store) CreateUser(ctx context.Context, username, avatarLetter, token string) (int32, error) {
	var id int32
	err := s.pool.QueryRow(ctx, `
		INSERT INTO anonymous_users (username, avatar_letter, session_token)
		VALUES ($1, $2, $3)
		RETURNING id
	`, username, avatarLetter, token).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// TouchUser refreshes the user's last-active timestamp and marks it online.
func (s *Store) TouchUser(ctx context.Context, id int32) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE anonymous_users
		SET last_active = now(), is_online = true
		WHERE id = $1
	`, id)
	return err
}

// TouchUserBySessionToken refreshes the user bound to the token and returns its
// identity and new last-active timestamp. It returns ErrNoRows for an unknown token;
// it never creates a user.
func (s *Store) TouchUserBySessionToken(ctx context.Context, token string) (AnonymousUser, error) {
	var u AnonymousUser
	err := s.pool.QueryRow(ctx, `
		UPDATE anonymous_users
		SET last_active = now(), is_online = true
		WHERE session_token = $1
		RETURNING id, username, avatar_letter, session_token, last_active, is_online
	`, token).Scan(&u.ID, &u.Username, &u.AvatarLetter, &u.SessionToken, &u.LastActive, &u.IsOnline)
	if err != nil {
		return AnonymousUser{}, err
	}
	return u, nil
}

// MarkStaleOffline flips is_online off for every user whose last activity predates
// the cutoff. It returns the number of demoted users.
func (s *Store) MarkStaleOffline(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE anonymous_users
		SET is_online = false
		WHERE last_active < $1 AND is_online = true
	`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// GetUserStats computes the total, online, and recently-active user counts in one pass.
func (s *Store) GetUserStats(ctx context.Context, activeCutoff time.Time) (UserStats, error) {
	var st UserStats
	err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*) AS total_users,
			COUNT(*) FILTER (WHERE is_online = true) AS online_users,
			COUNT(*) FILTER (WHERE last_active > $1) AS active_today
		FROM anonymous_users
	`, activeCutoff).Scan(&st.TotalUsers, &st.OnlineUsers, &st.ActiveToday)
	if err != nil {
		return UserStats{}, err
	}
	return st, nil
}

// CountMessagesToday counts messages created since the start of the current
// calendar day, server-local.
func (s *Store) CountMessagesToday(ctx context.Context) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM messages
		WHERE created_at >= CURRENT_DATE
	`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// SetServerOnlineCount overwrites the denormalized online counter of the named server.
// Servers with other names are left untouched.
func (s *Store) SetServerOnlineCount(ctx context.Context, name string, online int) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE servers SET online_count = $2 WHERE name = $1
	`, name, online)
	return err
}

// ListMessages returns the newest limit messages of a channel joined with their
// authors, newest first. Callers reverse the slice for chat-scrollback order.
func (s *Store) ListMessages(ctx context.Context, channelID int32, limit int) ([]MessageRow, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT m.id, m.content, m.created_at,
		       au.username, au.avatar_letter
		FROM messages m
		JOIN anonymous_users au ON m.user_id = au.id
		WHERE m.channel_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2
	`, channelID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []MessageRow
	for rows.Next() {
		var m MessageRow
		if err := rows.Scan(&m.ID, &m.Content, &m.CreatedAt, &m.Username, &m.AvatarLetter); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// AppendMessage inserts a message row and bumps the channel's denormalized message
// counter as a single transaction. If either statement fails the whole unit is
// rolled back and nothing is persisted.
func (s *Store) AppendMessage(ctx context.Context, channelID, userID int32, content string) (int32, time.Time, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var (
		id        int32
		createdAt time.Time
	)
	err = tx.QueryRow(ctx, `
		INSERT INTO messages (channel_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, channelID, userID, content).Scan(&id, &createdAt)
	if err != nil {
		return 0, time.Time{}, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE channels SET message_count = message_count + 1
		WHERE id = $1
	`, channelID)
	if err != nil {
		return 0, time.Time{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, createdAt, nil
}

// ListServers returns every server ordered by member count, largest first.
func (s *Store) ListServers(ctx context.Context) ([]Server, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, emoji, description, member_count, online_count
		FROM servers
		ORDER BY member_count DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var servers []Server
	for rows.Next() {
		var sv Server
		if err := rows.Scan(&sv.ID, &sv.Name, &sv.Emoji, &sv.Description, &sv.Members, &sv.Online); err != nil {
			return nil, err
		}
		servers = append(servers, sv)
	}
	return servers, rows.Err()
}

// ListChannels returns every channel joined with its server name, busiest first.
func (s *Store) ListChannels(ctx context.Context) ([]Channel, error) {
	return s.queryChannels(ctx, `
		SELECT c.id, c.name, c.topic, c.message_count, c.channel_type,
		       s.name AS server_name
		FROM channels c
		JOIN servers s ON c.server_id = s.id
		ORDER BY c.message_count DESC
	`)
}

// ListServerChannels returns the channels of one server, ordered by name.
func (s *Store) ListServerChannels(ctx context.Context, serverID int32) ([]Channel, error) {
	return s.queryChannels(ctx, `
		SELECT c.id, c.name, c.topic, c.message_count, c.channel_type,
		       s.name AS server_name
		FROM channels c
		JOIN servers s ON c.server_id = s.id
		WHERE c.server_id = $1
		ORDER BY c.name
	`, serverID)
}

func (s *Store) queryChannels(ctx context.Context, sql string, args ...any) ([]Channel, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var channels []Channel
	for rows.Next() {
		var c Channel
		if err := rows.Scan(&c.ID, &c.Name, &c.Topic, &c.Messages, &c.Type, &c.ServerName); err != nil {
			return nil, err
		}
		channels = append(channels, c)
	}
	return channels, rows.Err()
}
