package paths

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildRootDir(t *testing.T) {
	tests := []struct {
		name                           string
		base, category, language, proj string
		want                           string
	}{
		{"plain", "/home/u/dev", "personal", "rust", "pact", "/home/u/dev/personal/rust/pact"},
		{"duplicate separators in base", "/a//b", "c", "d", "e", "/a/b/c/d/e"},
		{"trailing separator on base", "/home/u/dev/", "work", "c", "x", "/home/u/dev/work/c/x"},
		{"separators everywhere", "//a///", "/c/", "//d", "e//", "/a/c/d/e/"},
		{"empty name", "/base", "test", "go", "", "/base/test/go/"},
		{"relative base", "dev", "school", "latex", "thesis", "dev/school/latex/thesis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRootDir(tt.base, tt.category, tt.language, tt.proj)
			if got != tt.want {
				t.Errorf("BuildRootDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"/", "/"},
		{"////", "/"},
		{"a", "a"},
		{"a//b///c", "a/b/c"},
		{"/a/./b/../c", "/a/./b/../c"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func FuzzNormalize(f *testing.F) {
	for _, seed := range []string{"", "/", "/a//b", "a///b//c/", "////x"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, in string) {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent: %q -> %q -> %q", in, once, twice)
		}
		if strings.Contains(once, "//") {
			t.Fatalf("Normalize(%q) = %q still contains a separator run", in, once)
		}
	})
}

func TestRepoNameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/group/repo.git", "repo"},
		{"https://example.com/group/repo", "repo"},
		{"git@github.com:owner/pact.git", "pact"},
		{"/srv/git/local.git", "local"},
		{"https://example.com/group/repo.git.git", "repo.git"},
		{"https://example.com/group/.gitignore", ".gitignore"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := RepoNameFromURL(tt.url)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RepoNameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestRepoNameFromURL_Invalid(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"no separator", "repo.git"},
		{"trailing separator", "https://example.com/group/"},
		{"only suffix", "https://example.com/.git"},
		{"too long", "https://example.com/" + strings.Repeat("a", MaxRepoNameLen+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RepoNameFromURL(tt.url)
			if !errors.Is(err, ErrInvalidURLFormat) {
				t.Errorf("expected ErrInvalidURLFormat, got %v", err)
			}
		})
	}
}

func TestRepoNameFromURL_MaxLength(t *testing.T) {
	name := strings.Repeat("a", MaxRepoNameLen)
	got, err := RepoNameFromURL("https://example.com/" + name + ".git")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != name {
		t.Errorf("got %d chars, want %d", len(got), len(name))
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if want, _ := os.UserHomeDir(); want != home {
		t.Skip("home directory is not controlled by $HOME on this platform")
	}

	tests := []struct {
		in, want string
	}{
		{"~", home},
		{"~/dev", filepath.Join(home, "dev")},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
		{"~other/dev", "~other/dev"},
	}
	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
