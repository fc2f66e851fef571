package cli

import (
	"io"
	"reflect"
	"testing"

	"github.com/hedron-dev/hedron/pkg/cache"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if got, want := root.Use, "hedron"; got != want {
		t.Errorf("root.Use = %q, want %q", got, want)
	}

	want := []string{"build", "transform", "render", "stats", "inspect", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	if got, want := c.Logger.GetLevel(), LogInfo; got != want {
		t.Errorf("initial level = %v, want %v", got, want)
	}

	c.SetLogLevel(LogDebug)
	if got, want := c.Logger.GetLevel(), LogDebug; got != want {
		t.Errorf("level after SetLogLevel = %v, want %v", got, want)
	}
}

func TestNewCacheDisabled(t *testing.T) {
	got, err := newCache(true)
	if err != nil {
		t.Fatalf("newCache(true) error: %v", err)
	}
	if _, ok := got.(*cache.NullCache); !ok {
		t.Errorf("newCache(true) = %T, want *cache.NullCache", got)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Empty", "", []string{"svg"}},
		{"Single", "dot", []string{"dot"}},
		{"Multiple", "dot,svg,png", []string{"dot", "svg", "png"}},
		{"Spaces", " dot , svg ", []string{"dot", "svg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTransforms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Empty", "", nil},
		{"Single", "triangulate", []string{"triangulate"}},
		{"Multiple", "triangulate,smooth", []string{"triangulate", "smooth"}},
		{"TrailingComma", "smooth,", []string{"smooth"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTransforms(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseTransforms(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
