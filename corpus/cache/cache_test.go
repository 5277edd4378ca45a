package cache

import "testing"

type entry struct {
	value string
}

func TestMap(t *testing.T) {
	m := NewMap[string, entry]()
	if _, ok := m.Get("a"); ok {
		t.Error("expected miss on empty cache")
	}
	m.Set("a", &entry{value: "one"})
	m.Set("b", &entry{value: "two"})
	if m.Size() != 2 {
		t.Fatalf("expected 2 entries, got %d", m.Size())
	}
	got, ok := m.Get("a")
	if !ok || got.value != "one" {
		t.Errorf("unexpected entry %v/%v", got, ok)
	}
	m.Set("a", &entry{value: "three"})
	if m.Size() != 2 {
		t.Errorf("replacing a key must not grow the cache, size %d", m.Size())
	}
	if got, _ := m.Get("a"); got.value != "three" {
		t.Errorf("expected replaced value, got %v", got.value)
	}
}

func TestHash(t *testing.T) {
	data := []byte(`{"id":"a1","text":"Stocks rose."}`)
	if Hash(data) != Hash(data) {
		t.Error("hash must be deterministic")
	}
	if Hash(data) == Hash([]byte(`{"id":"a1","text":"Stocks fell."}`)) {
		t.Error("different content must hash differently")
	}
}
