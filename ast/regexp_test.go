package ast

import "testing"

func TestRegExpLiteral_Compile(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
		match   string
		matches bool
	}{
		{name: "plain pattern", raw: "/a+b/", match: "aaab", matches: true},
		{name: "ignore case flag", raw: "/abc/i", match: "ABC", matches: true},
		{name: "no match", raw: "/^x$/", match: "y", matches: false},
		{name: "global flag tolerated", raw: "/a/g", match: "za", matches: true},
		{name: "missing delimiters", raw: "a+b", wantErr: true},
		{name: "unknown flag", raw: "/a/q", wantErr: true},
		{name: "bad pattern", raw: "/(/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := &RegExpLiteral{Raw: tt.raw}
			re, err := lit.Compile()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Compile(%q) succeeded, want error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tt.raw, err)
			}
			ok, err := re.MatchString(tt.match)
			if err != nil {
				t.Fatalf("MatchString failed: %v", err)
			}
			if ok != tt.matches {
				t.Errorf("match %q = %v, want %v", tt.match, ok, tt.matches)
			}
		})
	}
}
