package arg

import (
	"testing"
)

func TestSuggest(t *testing.T) {
	p := New("test", WithoutHelpFlag())

	for _, name := range []string{"output", "verbose", "version"} {
		if err := p.AddFlag(0, name, ""); err != nil {
			t.Fatalf("declare error: %v", err)
		}
	}

	tests := []struct {
		name  string
		token string
		first string
		none  bool
	}{
		{name: "near miss", token: "outpt", first: "output"},
		{name: "prefix", token: "verb", first: "verbose"},
		{name: "exact", token: "version", first: "version"},
		{name: "no match", token: "zzz", none: true},
		{name: "empty token", token: "", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := p.Suggest(tt.token)

			if tt.none {
				if len(ranked) != 0 {
					t.Errorf("expected no suggestions, got %v", ranked)
				}

				return
			}

			if len(ranked) == 0 || ranked[0] != tt.first {
				t.Errorf("expected first suggestion %q, got %v",
					tt.first, ranked)
			}
		})
	}
}

func TestSuggest_NoDeclarations(t *testing.T) {
	p := New("test", WithoutHelpFlag())

	if ranked := p.Suggest("anything"); ranked != nil {
		t.Errorf("expected nil, got %v", ranked)
	}
}
