package universe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/btree"
)

type nameEntry struct {
	key   string // lower-cased name
	index Index
}

func nameLess(a, b nameEntry) bool {
	if a.key != b.key {
		return a.key < b.key
	}
	return a.index < b.index
}

func newNameIndex() *btree.BTreeG[nameEntry] {
	return btree.NewBTreeG[nameEntry](nameLess)
}

// Lookup finds a system by name, ignoring case.
func (m *Map) Lookup(name string) (Index, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	var (
		found Index
		ok    bool
	)
	m.names.Ascend(nameEntry{key: key}, func(e nameEntry) bool {
		if e.key == key {
			found, ok = e.index, true
		}
		return false
	})
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
	}
	return found, nil
}

// Resolve accepts either a system name or a numeric SystemID.
func (m *Map) Resolve(query string) (Index, error) {
	if id, err := strconv.ParseUint(strings.TrimSpace(query), 10, 64); err == nil {
		return m.Index(SystemID(id))
	}
	return m.Lookup(query)
}

// Complete returns up to limit systems whose name starts with prefix, ignoring case,
// in name order. A limit of zero or less means no limit.
func (m *Map) Complete(prefix string, limit int) []Index {
	key := strings.ToLower(strings.TrimSpace(prefix))
	var out []Index
	m.names.Ascend(nameEntry{key: key}, func(e nameEntry) bool {
		if !strings.HasPrefix(e.key, key) {
			return false
		}
		out = append(out, e.index)
		return limit <= 0 || len(out) < limit
	})
	return out
}
