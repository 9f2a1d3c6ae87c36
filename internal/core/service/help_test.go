package service

import (
	"slackcmd/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpRender(t *testing.T) {
	foo := newMockHandler("foo", domain.NewChannelScope("ops"))
	bar := newMockHandler("bar", domain.AllChannels())
	baz := newMockHandler("baz", domain.AllChannels())

	tests := []struct {
		name     string
		handlers []Handler
		channel  string
		unknown  string
		want     string
	}{
		{
			name:     "channel entries follow global entries",
			handlers: []Handler{foo, bar},
			channel:  "ops",
			want: "Available commands:\n" +
				"• `help`: Prints this help message\n" +
				"• `bar`: does bar\n" +
				"• `foo`: does foo",
		},
		{
			name:     "registration order does not matter",
			handlers: []Handler{baz, foo, bar},
			channel:  "ops",
			want: "Available commands:\n" +
				"• `help`: Prints this help message\n" +
				"• `bar`: does bar\n" +
				"• `baz`: does baz\n" +
				"• `foo`: does foo",
		},
		{
			name:     "unknown channel lists global entries only",
			handlers: []Handler{foo, bar},
			channel:  "",
			want: "Available commands:\n" +
				"• `help`: Prints this help message\n" +
				"• `bar`: does bar",
		},
		{
			name:     "unknown command is announced",
			handlers: []Handler{bar},
			channel:  "ops",
			unknown:  "nope",
			want: "Unknown command: `nope`\n" +
				"Available commands:\n" +
				"• `help`: Prints this help message\n" +
				"• `bar`: does bar",
		},
		{
			name:     "help is not announced as unknown",
			handlers: []Handler{bar},
			unknown:  "help",
			want: "Available commands:\n" +
				"• `help`: Prints this help message\n" +
				"• `bar`: does bar",
		},
		{
			name: "no entries",
			want: "Available commands:\n" +
				"• `help`: Prints this help message",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHelp(tc.handlers)
			assert.Equal(t, tc.want, h.Render(tc.channel, tc.unknown))
		})
	}
}

func TestHelpSortIsCaseSensitive(t *testing.T) {
	h := NewHelp([]Handler{
		newMockHandler("b", domain.AllChannels()),
		newMockHandler("B", domain.AllChannels()),
		newMockHandler("a", domain.AllChannels()),
	})

	assert.Equal(t, []string{"`B`: does B", "`a`: does a", "`b`: does b"}, h.global)
}

func TestHelpRenderDoesNotMutateGlobalEntries(t *testing.T) {
	h := NewHelp([]Handler{
		newMockHandler("bar", domain.AllChannels()),
		newMockHandler("foo", domain.NewChannelScope("ops")),
		newMockHandler("qux", domain.NewChannelScope("dev")),
	})

	h.Render("ops", "")
	h.Render("dev", "")

	assert.Equal(t, []string{"`bar`: does bar"}, h.global)
	assert.NotContains(t, h.Render("dev", ""), "foo")
}
