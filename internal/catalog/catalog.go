// Package catalog keeps the classified conversations of one run in an
// in-memory SQLite database.
package catalog

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Zuo-Peng/chat-recap/internal/chat"
	"github.com/Zuo-Peng/chat-recap/internal/stats"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS conversations (
    id           TEXT PRIMARY KEY,
    kind         TEXT NOT NULL,
    display_name TEXT NOT NULL DEFAULT '',
    position     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS participants (
    conversation_id TEXT NOT NULL,
    position        INTEGER NOT NULL,
    name            TEXT NOT NULL,
    email           TEXT NOT NULL,
    PRIMARY KEY (conversation_id, position)
);

CREATE INDEX IF NOT EXISTS conversations_kind ON conversations(kind, position);
`

type Kind string

const (
	KindDM    Kind = "dm"
	KindGroup Kind = "group"
)

type Catalog struct {
	db *sql.DB
}

type Entry struct {
	ID           string
	Kind         Kind
	DisplayName  string
	Participants []chat.Participant
}

// Open creates an empty catalog. Nothing is written to disk.
func Open() (*Catalog, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	// every pooled connection would otherwise get its own empty database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// Load replaces the catalog contents with a classification.
func (c *Catalog) Load(cls stats.Classification) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM participants"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM conversations"); err != nil {
		return err
	}

	convStmt, err := tx.Prepare(
		`INSERT INTO conversations (id, kind, display_name, position) VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer convStmt.Close()

	partStmt, err := tx.Prepare(
		`INSERT INTO participants (conversation_id, position, name, email) VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer partStmt.Close()

	insert := func(id string, kind Kind, name string, pos int, ps []chat.Participant) error {
		if _, err := convStmt.Exec(id, string(kind), name, pos); err != nil {
			return fmt.Errorf("insert conversation %s: %w", id, err)
		}
		for i, p := range ps {
			if _, err := partStmt.Exec(id, i, p.Name, p.Email); err != nil {
				return fmt.Errorf("insert participant %s/%d: %w", id, i, err)
			}
		}
		return nil
	}

	for i, dm := range cls.DMs {
		if err := insert(dm.ID, KindDM, strings.Join(dm.ParticipantIDs(), ", "), i, dm.Participants); err != nil {
			return err
		}
	}
	for i, g := range cls.Groups {
		if err := insert(g.ID, KindGroup, g.DisplayName, i, g.Participants); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Get returns a conversation, or nil when the id is unknown.
func (c *Catalog) Get(id string) (*Entry, error) {
	var e Entry
	var kind string
	err := c.db.QueryRow(
		"SELECT id, kind, display_name FROM conversations WHERE id = ?", id,
	).Scan(&e.ID, &kind, &e.DisplayName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e.Kind = Kind(kind)

	e.Participants, err = c.participants(id)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns the conversations of one kind in classification order.
func (c *Catalog) List(kind Kind) ([]Entry, error) {
	rows, err := c.db.Query(
		"SELECT id, display_name FROM conversations WHERE kind = ? ORDER BY position", string(kind),
	)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for rows.Next() {
		e := Entry{Kind: kind}
		if err := rows.Scan(&e.ID, &e.DisplayName); err != nil {
			rows.Close()
			return nil, err
		}
		entries = append(entries, e)
	}
	// single connection: finish reading before issuing the participant queries
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range entries {
		if entries[i].Participants, err = c.participants(entries[i].ID); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// DirectMessages returns the DMs in classification order.
func (c *Catalog) DirectMessages() ([]stats.DirectMessage, error) {
	entries, err := c.List(KindDM)
	if err != nil {
		return nil, err
	}
	dms := make([]stats.DirectMessage, len(entries))
	for i, e := range entries {
		dms[i] = stats.DirectMessage{ID: e.ID, Participants: e.Participants}
	}
	return dms, nil
}

// Groups returns the group conversations in classification order.
func (c *Catalog) Groups() ([]stats.Group, error) {
	entries, err := c.List(KindGroup)
	if err != nil {
		return nil, err
	}
	groups := make([]stats.Group, len(entries))
	for i, e := range entries {
		groups[i] = stats.Group{ID: e.ID, DisplayName: e.DisplayName, Participants: e.Participants}
	}
	return groups, nil
}

// Count returns the number of conversations of one kind.
func (c *Catalog) Count(kind Kind) (int, error) {
	var n int
	err := c.db.QueryRow("SELECT COUNT(*) FROM conversations WHERE kind = ?", string(kind)).Scan(&n)
	return n, err
}

func (c *Catalog) participants(id string) ([]chat.Participant, error) {
	rows, err := c.db.Query(
		"SELECT name, email FROM participants WHERE conversation_id = ? ORDER BY position", id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps []chat.Participant
	for rows.Next() {
		var p chat.Participant
		if err := rows.Scan(&p.Name, &p.Email); err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, rows.Err()
}
