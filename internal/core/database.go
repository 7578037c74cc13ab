package core

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vskvj3/dllist/datastructures"
)

var (
	ErrEmptyKey     = errors.New("key cannot be empty")
	ErrEmptyValue   = errors.New("value cannot be empty")
	ErrTooManyLists = errors.New("list limit reached")
)

// Database holds named string lists. Every call takes the database lock,
// so the lists themselves are never touched concurrently.
type Database struct {
	mu       sync.Mutex
	lists    map[string]*datastructures.List[string]
	maxLists int
}

// Create a new database instance. maxLists <= 0 means no limit.
func NewDatabase(maxLists int) *Database {
	return &Database{
		lists:    make(map[string]*datastructures.List[string]),
		maxLists: maxLists,
	}
}

// Push appends value to the list at key, creating the list if needed.
func (db *Database) Push(key, value string) (int, error) {
	if err := validate(key, value); err != nil {
		return 0, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	l, ok := db.lists[key]
	if !ok {
		if db.maxLists > 0 && len(db.lists) >= db.maxLists {
			return 0, fmt.Errorf("%w (%d)", ErrTooManyLists, db.maxLists)
		}
		l = datastructures.NewList[string]()
		db.lists[key] = l
	}
	if err := l.Append(value); err != nil {
		return 0, err
	}
	return l.Size(), nil
}

// Insert places value in front of the element at index.
func (db *Database) Insert(key string, index int, value string) (int, error) {
	if err := validate(key, value); err != nil {
		return 0, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	l := db.list(key)
	if err := l.InsertBefore(index, value); err != nil {
		return 0, err
	}
	return l.Size(), nil
}

// Get returns the value at index.
func (db *Database) Get(key string, index int) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	return db.list(key).Get(index)
}

// Head returns the first value of the list at key.
func (db *Database) Head(key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	v, ok := db.list(key).Head()
	return v, ok, nil
}

// Tail returns the last value of the list at key.
func (db *Database) Tail(key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	v, ok := db.list(key).Tail()
	return v, ok, nil
}

// Len returns the size of the list at key.
func (db *Database) Len(key string) (int, error) {
	if key == "" {
		return 0, ErrEmptyKey
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	return db.list(key).Size(), nil
}

// Contains returns the first value equal to value.
func (db *Database) Contains(key, value string) (string, bool, error) {
	if err := validate(key, value); err != nil {
		return "", false, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	return db.list(key).Contains(value)
}

// IndexOf returns the position of the first value equal to value, or -1.
func (db *Database) IndexOf(key, value string) (int, error) {
	if err := validate(key, value); err != nil {
		return -1, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	return db.list(key).IndexOf(value)
}

// RemoveAt removes the value at index. An emptied list is dropped.
func (db *Database) RemoveAt(key string, index int) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	l := db.list(key)
	v, err := l.RemoveAt(index)
	if err != nil {
		return "", err
	}
	db.dropIfEmpty(key, l)
	return v, nil
}

// RemoveValue removes the first value equal to value. An emptied list is dropped.
func (db *Database) RemoveValue(key, value string) (string, bool, error) {
	if err := validate(key, value); err != nil {
		return "", false, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	l := db.list(key)
	v, found, err := l.Remove(value)
	if err != nil || !found {
		return "", false, err
	}
	db.dropIfEmpty(key, l)
	return v, true, nil
}

// Range returns every value of the list at key, head first.
func (db *Database) Range(key string) ([]string, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	values := []string{}
	for v := range db.list(key).All() {
		values = append(values, v)
	}
	return values, nil
}

// Render formats the list at key, optionally with neighbour details.
func (db *Database) Render(key string, detailed bool) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if detailed {
		return db.list(key).DetailedString(), nil
	}
	return db.list(key).String(), nil
}

// Delete drops the list at key and reports whether it existed.
func (db *Database) Delete(key string) bool {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, ok := db.lists[key]
	delete(db.lists, key)
	return ok
}

// Keys returns the names of all lists in sorted order.
func (db *Database) Keys() []string {
	db.mu.Lock()
	defer db.mu.Unlock()

	keys := make([]string, 0, len(db.lists))
	for k := range db.lists {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// list returns the list at key, or an empty detached list for missing keys.
// Callers must hold db.mu.
func (db *Database) list(key string) *datastructures.List[string] {
	if l, ok := db.lists[key]; ok {
		return l
	}
	return datastructures.NewList[string]()
}

func (db *Database) dropIfEmpty(key string, l *datastructures.List[string]) {
	if l.Size() == 0 {
		delete(db.lists, key)
	}
}

func validate(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if value == "" {
		return ErrEmptyValue
	}
	return nil
}
