package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/roach88/ordkey/internal/position"
)

// List is an ordered collection of items. Lists with a ParentID are ordered
// among the other children of that parent (columns of a board); lists
// without one are ordered among the top-level lists.
type List struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"`
	Name     string `json:"name"`
	OrderKey string `json:"order_key"`
}

// CreateList appends a new list after the last sibling under parentID.
// An empty parentID creates a top-level list.
func (s *Store) CreateList(ctx context.Context, parentID, name string) (List, error) {
	name = normalize(name)
	if name == "" {
		return List{}, fmt.Errorf("create list: %w", ErrEmptyName)
	}

	l := List{ID: s.ids.Generate(), ParentID: parentID, Name: name}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if parentID != "" {
			if _, err := getList(ctx, tx, parentID); err != nil {
				return err
			}
		}
		keys, err := listKeys(ctx, tx, parentID)
		if err != nil {
			return err
		}
		l.OrderKey, err = position.InsertOne(keys, len(keys))
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO lists (id, parent_id, name, order_key)
			VALUES (?, ?, ?, ?)
		`, l.ID, nullable(parentID), l.Name, l.OrderKey)
		return err
	})
	if err != nil {
		return List{}, fmt.Errorf("create list: %w", err)
	}

	s.logger.Debug("list created", "id", l.ID, "parent", parentID, "key", l.OrderKey)
	return l, nil
}

// List returns the list with the given ID.
func (s *Store) List(ctx context.Context, id string) (List, error) {
	l, err := getList(ctx, s.db, id)
	if err != nil {
		return List{}, fmt.Errorf("get list: %w", err)
	}
	return l, nil
}

// Lists returns the children of parentID in order.
func (s *Store) Lists(ctx context.Context, parentID string) ([]List, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, COALESCE(parent_id, ''), name, order_key
		FROM lists
		WHERE COALESCE(parent_id, '') = ?
		ORDER BY order_key
	`, parentID)
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	defer rows.Close()

	lists := []List{}
	for rows.Next() {
		var l List
		if err := rows.Scan(&l.ID, &l.ParentID, &l.Name, &l.OrderKey); err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lists: %w", err)
	}
	return lists, nil
}

// MoveList repositions a list among its siblings so it ends at toIndex.
func (s *Store) MoveList(ctx context.Context, id string, toIndex int) (List, error) {
	var l List
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		l, err = getList(ctx, tx, id)
		if err != nil {
			return err
		}
		keys, err := listKeys(ctx, tx, l.ParentID)
		if err != nil {
			return err
		}
		from := slices.Index(keys, l.OrderKey)
		key, err := position.Move(keys, from, toIndex)
		if err != nil {
			return err
		}
		if key == l.OrderKey {
			return nil
		}
		l.OrderKey = key
		_, err = tx.ExecContext(ctx, `UPDATE lists SET order_key = ? WHERE id = ?`, key, id)
		return err
	})
	if err != nil {
		return List{}, fmt.Errorf("move list: %w", err)
	}

	s.logger.Debug("list moved", "id", id, "index", toIndex, "key", l.OrderKey)
	return l, nil
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getList(ctx context.Context, q queryer, id string) (List, error) {
	var l List
	err := q.QueryRowContext(ctx, `
		SELECT id, COALESCE(parent_id, ''), name, order_key
		FROM lists WHERE id = ?
	`, id).Scan(&l.ID, &l.ParentID, &l.Name, &l.OrderKey)
	if errors.Is(err, sql.ErrNoRows) {
		return List{}, fmt.Errorf("list %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return List{}, fmt.Errorf("query list %q: %w", id, err)
	}
	return l, nil
}

func listKeys(ctx context.Context, q queryer, parentID string) ([]string, error) {
	return queryKeys(ctx, q, `
		SELECT order_key FROM lists
		WHERE COALESCE(parent_id, '') = ?
		ORDER BY order_key
	`, parentID)
}

func queryKeys(ctx context.Context, q queryer, query string, args ...any) ([]string, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
