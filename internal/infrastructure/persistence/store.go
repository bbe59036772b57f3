package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/shopspring/decimal"
)

// Backing file names for the three persisted collections
const (
	ProductsFile = "products.json"
	UsersFile    = "users.json"
	OrdersFile   = "orders.json"
)

func init() {
	// The collection files store prices and totals as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Collection is an ordered collection of JSON records backed by a single file.
// Every operation reads or rewrites the whole file; a mutex serializes
// read-modify-write cycles within the process. There is no cross-process
// locking: the store is intended for a single server instance.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// OpenCollection opens the named collection file under dir, creating the
// directory and an empty collection file when missing.
func OpenCollection[T any](dir, name string) (*Collection[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("initialize collection %s: %w", name, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat collection %s: %w", name, err)
	}

	return &Collection[T]{path: path}, nil
}

// Path returns the backing file path
func (c *Collection[T]) Path() string {
	return c.path
}

// ReadAll returns every record in file order
func (c *Collection[T]) ReadAll() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLocked()
}

// WriteAll overwrites the backing file with the full record set
func (c *Collection[T]) WriteAll(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(records)
}

// Update runs fn on the current records and persists whatever it returns.
// The whole read-modify-write cycle holds the collection mutex, so two
// concurrent updates cannot observe the same pre-mutation state.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.readLocked()
	if err != nil {
		return err
	}
	next, err := fn(records)
	if err != nil {
		return err
	}
	return c.writeLocked(next)
}

func (c *Collection[T]) readLocked() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", c.path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse collection %s: %w", c.path, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c *Collection[T]) writeLocked(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.path, err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", c.path, err)
	}
	return nil
}
