package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fwojciec/todoswamp"
)

// Compile-time interface verification.
var _ todoswamp.ItemService = (*ItemService)(nil)

// ItemService implements todoswamp.ItemService using SQLite.
// Indexing stays in memory; SQLite holds the items and their done flags.
type ItemService struct {
	db    *DB
	words todoswamp.Index
	tags  todoswamp.Index
}

// NewItemService creates a new ItemService.
func NewItemService(db *DB, words, tags todoswamp.Index) *ItemService {
	return &ItemService{db: db, words: words, tags: tags}
}

// CreateItem inserts the item under the next dense ID and indexes it once
// the insert has committed.
func (s *ItemService) CreateItem(ctx context.Context, item *todoswamp.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id todoswamp.ID
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id) + 1, 0) FROM items`).Scan(&id); err != nil {
		return fmt.Errorf("failed to allocate item id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO items (id, description, done)
		VALUES (?, ?, 0)
	`, int(id), item.Description); err != nil {
		return err
	}

	for pos, tag := range item.Tags {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO item_tags (item_id, position, tag)
			VALUES (?, ?, ?)
		`, int(id), pos, tag); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	item.ID = id
	item.Done = false
	for _, word := range item.Words() {
		s.words.Insert(id, word)
	}
	for _, tag := range item.Tags {
		s.tags.Insert(id, tag)
	}
	return nil
}

// MarkItemDone flags the item as done.
func (s *ItemService) MarkItemDone(ctx context.Context, id todoswamp.ID) error {
	result, err := s.db.ExecContext(ctx, "UPDATE items SET done = 1 WHERE id = ?", int(id))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return todoswamp.Errorf(todoswamp.ENOTFOUND, "item %d does not exist", id)
	}

	return nil
}

// FindActiveItem retrieves an item that is not done.
func (s *ItemService) FindActiveItem(ctx context.Context, id todoswamp.ID) (*todoswamp.Item, error) {
	item := todoswamp.Item{ID: id}

	err := s.db.QueryRowContext(ctx, `
		SELECT description
		FROM items
		WHERE id = ? AND done = 0
	`, int(id)).Scan(&item.Description)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, todoswamp.Errorf(todoswamp.ENOTFOUND, "no active item %d", id)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT tag
		FROM item_tags
		WHERE item_id = ?
		ORDER BY position
	`, int(id))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		item.Tags = append(item.Tags, tag)
	}

	return &item, rows.Err()
}

// CountItems returns the number of items ever stored.
func (s *ItemService) CountItems(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM items").Scan(&n)
	return n, err
}
