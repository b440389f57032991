package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/roach88/ordkey/internal/position"
	"github.com/roach88/ordkey/orderkey"
)

// Item is an entry in a list, positioned by its order key.
type Item struct {
	ID       string `json:"id"`
	ListID   string `json:"list_id"`
	Title    string `json:"title"`
	OrderKey string `json:"order_key"`
}

// AddItem appends an item to the end of a list.
func (s *Store) AddItem(ctx context.Context, listID, title string) (Item, error) {
	items, err := s.insertItems(ctx, listID, -1, []string{title})
	if err != nil {
		return Item{}, fmt.Errorf("add item: %w", err)
	}
	return items[0], nil
}

// InsertItem inserts an item so it ends at index within its list.
func (s *Store) InsertItem(ctx context.Context, listID string, index int, title string) (Item, error) {
	items, err := s.insertItems(ctx, listID, index, []string{title})
	if err != nil {
		return Item{}, fmt.Errorf("insert item: %w", err)
	}
	return items[0], nil
}

// InsertItems inserts several items as a block starting at index.
// Keys come from one batch call so they stay short and evenly spread.
func (s *Store) InsertItems(ctx context.Context, listID string, index int, titles ...string) ([]Item, error) {
	items, err := s.insertItems(ctx, listID, index, titles)
	if err != nil {
		return nil, fmt.Errorf("insert items: %w", err)
	}
	return items, nil
}

// insertItems inserts titles at index; a negative index appends.
func (s *Store) insertItems(ctx context.Context, listID string, index int, titles []string) ([]Item, error) {
	items := make([]Item, len(titles))
	for i, title := range titles {
		title = normalize(title)
		if title == "" {
			return nil, ErrEmptyName
		}
		items[i] = Item{ID: s.ids.Generate(), ListID: listID, Title: title}
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := getList(ctx, tx, listID); err != nil {
			return err
		}
		keys, err := itemKeys(ctx, tx, listID)
		if err != nil {
			return err
		}
		if index < 0 {
			index = len(keys)
		}
		newKeys, err := position.Insert(keys, index, len(items))
		if err != nil {
			return err
		}
		for i := range items {
			items[i].OrderKey = newKeys[i]
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO items (id, list_id, title, order_key)
				VALUES (?, ?, ?, ?)
			`, items[i].ID, listID, items[i].Title, items[i].OrderKey); err != nil {
				return fmt.Errorf("insert %q: %w", items[i].ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		s.logger.Debug("item inserted", "id", it.ID, "list", listID, "key", it.OrderKey)
	}
	return items, nil
}

// MoveItem moves an item to toIndex in toListID, which may be its own list.
//
// Within the same list toIndex is the item's final index. Across lists it is
// the insertion slot in the target, from 0 to the target's length.
func (s *Store) MoveItem(ctx context.Context, itemID, toListID string, toIndex int) (Item, error) {
	var it Item
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		it, err = getItem(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if toListID == "" {
			toListID = it.ListID
		}
		if _, err := getList(ctx, tx, toListID); err != nil {
			return err
		}
		keys, err := itemKeys(ctx, tx, toListID)
		if err != nil {
			return err
		}

		var key string
		if toListID == it.ListID {
			key, err = position.Move(keys, slices.Index(keys, it.OrderKey), toIndex)
		} else {
			key, err = position.InsertOne(keys, toIndex)
		}
		if err != nil {
			return err
		}
		if key == it.OrderKey && toListID == it.ListID {
			return nil
		}

		it.ListID, it.OrderKey = toListID, key
		_, err = tx.ExecContext(ctx, `
			UPDATE items SET list_id = ?, order_key = ? WHERE id = ?
		`, it.ListID, it.OrderKey, it.ID)
		return err
	})
	if err != nil {
		return Item{}, fmt.Errorf("move item: %w", err)
	}

	s.logger.Debug("item moved", "id", itemID, "list", it.ListID, "index", toIndex, "key", it.OrderKey)
	return it, nil
}

// Item returns the item with the given ID.
func (s *Store) Item(ctx context.Context, id string) (Item, error) {
	it, err := getItem(ctx, s.db, id)
	if err != nil {
		return Item{}, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// Items returns the items of a list in order.
func (s *Store) Items(ctx context.Context, listID string) ([]Item, error) {
	if _, err := getList(ctx, s.db, listID); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	items, err := listItems(ctx, s.db, listID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// DeleteItem removes an item. Remaining keys are untouched.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete item %q: %w", id, ErrNotFound)
	}
	s.logger.Debug("item deleted", "id", id)
	return nil
}

// Rebalance assigns every item in a list a fresh, evenly spaced key while
// preserving order. Use it when repeated inserts at one spot have made keys
// long.
func (s *Store) Rebalance(ctx context.Context, listID string) ([]Item, error) {
	var items []Item
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := getList(ctx, tx, listID); err != nil {
			return err
		}
		var err error
		items, err = listItems(ctx, tx, listID)
		if err != nil {
			return err
		}
		keys, err := orderkey.NKeysBetween("", "", len(items))
		if err != nil {
			return err
		}

		// Park every row on a key no valid key can equal, so the final
		// updates cannot collide with a not-yet-updated sibling.
		if _, err := tx.ExecContext(ctx, `
			UPDATE items SET order_key = '~' || id WHERE list_id = ?
		`, listID); err != nil {
			return fmt.Errorf("park keys: %w", err)
		}
		for i := range items {
			items[i].OrderKey = keys[i]
			if _, err := tx.ExecContext(ctx, `
				UPDATE items SET order_key = ? WHERE id = ?
			`, keys[i], items[i].ID); err != nil {
				return fmt.Errorf("rekey %q: %w", items[i].ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rebalance: %w", err)
	}

	s.logger.Info("list rebalanced", "list", listID, "items", len(items))
	return items, nil
}

func getItem(ctx context.Context, q queryer, id string) (Item, error) {
	var it Item
	err := q.QueryRowContext(ctx, `
		SELECT id, list_id, title, order_key FROM items WHERE id = ?
	`, id).Scan(&it.ID, &it.ListID, &it.Title, &it.OrderKey)
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Item{}, fmt.Errorf("query item %q: %w", id, err)
	}
	return it, nil
}

func listItems(ctx context.Context, q queryer, listID string) ([]Item, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, list_id, title, order_key
		FROM items WHERE list_id = ?
		ORDER BY order_key
	`, listID)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.ListID, &it.Title, &it.OrderKey); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

func itemKeys(ctx context.Context, q queryer, listID string) ([]string, error) {
	return queryKeys(ctx, q, `
		SELECT order_key FROM items WHERE list_id = ? ORDER BY order_key
	`, listID)
}
