// Package memory provides an in-memory ledger store for development and tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

var errReadOnly = errors.New("memory store: write attempted inside a read snapshot")

// Store holds every ledger table in memory behind a single RWMutex.
type Store struct {
	mu    sync.RWMutex
	state state
}

type state struct {
	accounts  map[string]domain.Account
	entries   map[string]domain.JournalEntry
	order     []string // entry IDs in insertion order
	sequences map[string]int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{state: state{
		accounts:  make(map[string]domain.Account),
		entries:   make(map[string]domain.JournalEntry),
		sequences: make(map[string]int),
	}}
}

// snapshot copies the mutable parts of the state. Stored entries are never
// modified in place, so they are shared.
func (s *state) snapshot() state {
	accounts := make(map[string]domain.Account, len(s.accounts))
	for k, v := range s.accounts {
		accounts[k] = v
	}
	entries := make(map[string]domain.JournalEntry, len(s.entries))
	for k, v := range s.entries {
		entries[k] = v
	}
	sequences := make(map[string]int, len(s.sequences))
	for k, v := range s.sequences {
		sequences[k] = v
	}
	return state{
		accounts:  accounts,
		entries:   entries,
		order:     append([]string(nil), s.order...),
		sequences: sequences,
	}
}

// view is how a repository reaches the store. A view created by a unit of work
// already holds the store lock and must not take it again.
type view struct {
	store    *Store
	held     bool
	readOnly bool
}

func (v view) read(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !v.held {
		v.store.mu.RLock()
		defer v.store.mu.RUnlock()
	}
	return fn(&v.store.state)
}

func (v view) write(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if v.readOnly {
		return errReadOnly
	}
	if !v.held {
		v.store.mu.Lock()
		defer v.store.mu.Unlock()
	}
	return fn(&v.store.state)
}

// resolve returns a copy of the entry with account references filled in.
func (s *state) resolve(entry domain.JournalEntry) domain.JournalEntry {
	lines := make([]domain.JournalLine, len(entry.Lines))
	for i, line := range entry.Lines {
		if account, ok := s.accounts[line.AccountID]; ok {
			line.AccountCode = account.Code
			line.AccountName = account.Name
			line.AccountType = account.AccountType
		}
		lines[i] = line
	}
	entry.Lines = lines
	return entry
}

// chronological returns entries matching keep ordered by transaction date,
// then creation time, then insertion order.
func (s *state) chronological(keep func(domain.JournalEntry) bool) []domain.JournalEntry {
	var out []domain.JournalEntry
	for _, id := range s.order {
		entry := s.entries[id]
		if keep(entry) {
			out = append(out, s.resolve(entry))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].TransactionDate.Equal(out[j].TransactionDate) {
			return out[i].TransactionDate.Before(out[j].TransactionDate)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func touchesAccount(entry domain.JournalEntry, accountID string) bool {
	for _, line := range entry.Lines {
		if line.AccountID == accountID {
			return true
		}
	}
	return false
}
