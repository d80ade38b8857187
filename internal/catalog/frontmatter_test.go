package catalog

import "testing"

func TestSplitFrontmatter(t *testing.T) {
	tests := map[string]struct {
		content string
		want    string
		wantOK  bool
	}{
		"yaml block": {
			content: "---\nname: batch-apex\ndescription: Batch Apex patterns\n---\n# Batch Apex\n",
			want:    "name: batch-apex\ndescription: Batch Apex patterns",
			wantOK:  true,
		},
		"windows line endings": {
			content: "---\r\nname: batch-apex\r\n---\r\nbody\r\n",
			want:    "name: batch-apex",
			wantOK:  true,
		},
		"empty block": {
			content: "---\n---\nbody\n",
			want:    "",
			wantOK:  true,
		},
		"unclosed block": {
			content: "---\nname: batch-apex\n",
			wantOK:  false,
		},
		"no frontmatter": {
			content: "# Batch Apex\n",
			wantOK:  false,
		},
		"delimiter mid-document": {
			content: "# Batch Apex\n---\nname: x\n---\n",
			wantOK:  false,
		},
		"empty document": {
			content: "",
			wantOK:  false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			block, ok := splitFrontmatter([]byte(tt.content))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && string(block) != tt.want {
				t.Errorf("block = %q, want %q", block, tt.want)
			}
		})
	}
}

func TestParseFrontmatter(t *testing.T) {
	t.Run("fields", func(t *testing.T) {
		fields, err := parseFrontmatter([]byte("name: batch-apex\ndescription: Batch Apex patterns\n"))
		if err != nil {
			t.Fatalf("parseFrontmatter() error: %v", err)
		}
		if got := stringField(fields, "name"); got != "batch-apex" {
			t.Errorf("name = %q, want %q", got, "batch-apex")
		}
		if got := stringField(fields, "missing"); got != "" {
			t.Errorf("missing field = %q, want empty", got)
		}
	})

	t.Run("empty block", func(t *testing.T) {
		fields, err := parseFrontmatter(nil)
		if err != nil {
			t.Fatalf("parseFrontmatter() error: %v", err)
		}
		if len(fields) != 0 {
			t.Errorf("got %d fields, want 0", len(fields))
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := parseFrontmatter([]byte("name: [unclosed\n")); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("non-string values ignored", func(t *testing.T) {
		fields, err := parseFrontmatter([]byte("name: 42\n"))
		if err != nil {
			t.Fatalf("parseFrontmatter() error: %v", err)
		}
		if got := stringField(fields, "name"); got != "" {
			t.Errorf("name = %q, want empty for non-string value", got)
		}
	})
}
