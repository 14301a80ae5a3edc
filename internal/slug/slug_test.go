package slug

import "testing"

// TestGenerate exercises the slug generator with a broad range of inputs
// covering typical titles, special characters, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Normal titles ---
		{
			name:  "simple two words",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "punctuation stripped",
			input: "Hello World!",
			want:  "hello-world",
		},
		{
			name:  "title with year",
			input: "Hello World 2026",
			want:  "hello-world-2026",
		},
		{
			name:  "mixed case sentence",
			input: "The Quick Brown Fox Jumps Over the Lazy Dog",
			want:  "the-quick-brown-fox-jumps-over-the-lazy-dog",
		},
		{
			name:  "single word",
			input: "GoLang",
			want:  "golang",
		},

		// --- Special characters ---
		{
			name:  "apostrophes and question mark",
			input: "How's it going?",
			want:  "hows-it-going",
		},
		{
			name:  "ampersand and at sign",
			input: "Rock & Roll @ the Arena",
			want:  "rock-roll-the-arena",
		},
		{
			name:  "hash and dollar",
			input: "Issue #42 costs $100",
			want:  "issue-42-costs-100",
		},
		{
			name:  "parentheses and brackets",
			input: "Version (2.0) [Beta]",
			want:  "version-20-beta",
		},
		{
			name:  "underscores are word characters and survive",
			input: "foo_bar Baz",
			want:  "foo_bar-baz",
		},

		// --- Hyphens and whitespace ---
		{
			name:  "padded with double hyphens",
			input: "  A--B  ",
			want:  "a-b",
		},
		{
			name:  "internal runs of whitespace",
			input: "breaking \t news\n today",
			want:  "breaking-news-today",
		},
		{
			name:  "leading and trailing hyphens trimmed",
			input: "-Already Slugged-",
			want:  "already-slugged",
		},
		{
			name:  "consecutive hyphens collapsed",
			input: "one --- two",
			want:  "one-two",
		},

		// --- Edge cases ---
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "!?!",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   ",
			want:  "",
		},
		{
			name:  "numeric title",
			input: "2026",
			want:  "2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerateIdempotent verifies that slugging a slug is a no-op:
// Generate(Generate(s)) == Generate(s) for arbitrary inputs.
func TestGenerateIdempotent(t *testing.T) {
	inputs := []string{
		"Hello World!",
		"  A--B  ",
		"My First Post",
		"Rock & Roll @ the Arena",
		"breaking \t news\n today",
		"already-a-slug",
		"",
	}

	for _, in := range inputs {
		once := Generate(in)
		twice := Generate(once)
		if once != twice {
			t.Errorf("Generate not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
