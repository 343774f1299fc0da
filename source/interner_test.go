package source

import (
	"sync"
	"testing"
)

func TestInterner_Dedup(t *testing.T) {
	in := NewInterner()

	a := in.Intern("foo")
	b := in.Intern("foo")
	c := in.InternBytes([]byte("bar"))

	if a == NoStringID || c == NoStringID {
		t.Fatalf("real strings must not intern to NoStringID")
	}
	if a != b {
		t.Fatalf("same spelling interned to %d and %d", a, b)
	}
	if a == c {
		t.Fatalf("different spellings share an ID")
	}

	if s := in.MustLookup(a); s != "foo" {
		t.Fatalf("MustLookup(%d) = %q, want foo", a, s)
	}
	if _, ok := in.Lookup(StringID(999)); ok {
		t.Fatalf("out-of-range lookup must fail")
	}
	if s, ok := in.Lookup(NoStringID); !ok || s != "" {
		t.Fatalf("NoStringID must resolve to the empty string")
	}
}

func TestInterner_NFCNormalization(t *testing.T) {
	in := NewInterner()

	// U+00E9 composed vs "e" + U+0301 combining acute: canonically the
	// same identifier.
	composed := in.Intern("café")
	decomposed := in.Intern("café")

	if composed != decomposed {
		t.Fatalf("canonically equivalent identifiers interned to %d and %d", composed, decomposed)
	}
	if s := in.MustLookup(decomposed); s != "café" {
		t.Fatalf("stored form = %q, want the NFC form", s)
	}
}

func TestInterner_Concurrent(t *testing.T) {
	in := NewInterner()
	words := []string{"a", "b", "c", "d", "e"}

	var wg sync.WaitGroup
	ids := make([][]StringID, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			ids[g] = make([]StringID, len(words))
			for i, w := range words {
				ids[g][i] = in.Intern(w)
			}
		}(g)
	}
	wg.Wait()

	for g := 1; g < 8; g++ {
		for i := range words {
			if ids[g][i] != ids[0][i] {
				t.Fatalf("goroutine %d interned %q to %d, goroutine 0 got %d",
					g, words[i], ids[g][i], ids[0][i])
			}
		}
	}
	if in.Len() != len(words)+1 {
		t.Fatalf("Len = %d, want %d", in.Len(), len(words)+1)
	}
}
