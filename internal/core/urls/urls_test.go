package urls

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(c *fiber.Ctx) error { return nil }

func TestReverser_Reverse(t *testing.T) {
	app := fiber.New()
	app.Get("/announcements/:id", noop).Name("announcements_detail")
	app.Post("/announcements/:id/dismiss", noop).Name("announcements_dismiss")
	app.Get("/", noop).Name("home")

	r := NewReverser(app)

	tests := []struct {
		name    string
		route   string
		args    []any
		want    string
		wantErr bool
	}{
		{name: "Detail", route: "announcements_detail", args: []any{uint(12)}, want: "/announcements/12"},
		{name: "Dismiss", route: "announcements_dismiss", args: []any{3}, want: "/announcements/3/dismiss"},
		{name: "NoParams", route: "home", want: "/"},
		{name: "Unknown", route: "missing", wantErr: true},
		{name: "TooFewArgs", route: "announcements_detail", wantErr: true},
		{name: "TooManyArgs", route: "home", args: []any{1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Reverse(tt.route, tt.args...)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoReverseMatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_EscapesArguments(t *testing.T) {
	got, err := Build("/tags/:name", "a b/c")
	require.NoError(t, err)
	assert.Equal(t, "/tags/a%20b%2Fc", got)
}

func TestBuild_RejectsOptionalSegments(t *testing.T) {
	_, err := Build("/files/:name?", "x")
	assert.ErrorIs(t, err, ErrNoReverseMatch)
}
