package portal

import (
	"context"
	"encoding/json"
	"testing"
)

func TestMemStoreLoadDefaults(t *testing.T) {
	st, err := NewMemStore().Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Modules) == 0 {
		t.Fatal("default state has no modules")
	}
	if len(st.Assignments) != 0 || len(st.Results) != 0 {
		t.Fatal("default state must have empty collections")
	}
}

func TestDecodeStateFailOpen(t *testing.T) {
	for _, raw := range []string{"", "{", "not json at all", `[]`} {
		st := decodeState([]byte(raw))
		if len(st.Modules) == 0 {
			t.Errorf("raw %q: fallback state missing default catalog", raw)
		}
	}
}

func TestDecodeStateRoundTrip(t *testing.T) {
	want := DefaultState()
	buf, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	got := decodeState(buf)
	if len(got.Modules) != len(want.Modules) {
		t.Fatalf("got %d modules, want %d", len(got.Modules), len(want.Modules))
	}
}
