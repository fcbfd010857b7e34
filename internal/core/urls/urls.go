// Package urls reverses named fiber routes into paths.
package urls

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ErrNoReverseMatch is returned when no route matches a name and argument list.
var ErrNoReverseMatch = errors.New("no reverse match")

// Reverser builds paths for named routes of a fiber app.
type Reverser struct {
	app *fiber.App
}

// NewReverser creates a Reverser over app's route table.
func NewReverser(app *fiber.App) *Reverser {
	return &Reverser{app: app}
}

// Reverse fills the route's parameters positionally with args.
func (r *Reverser) Reverse(name string, args ...any) (string, error) {
	route := r.app.GetRoute(name)
	if route.Name == "" {
		return "", fmt.Errorf("%w: route %q is not registered", ErrNoReverseMatch, name)
	}
	return Build(route.Path, args...)
}

// Build substitutes the ":param" segments of pattern with args in order.
// Optional ("?") and greedy ("*", "+") segments are not supported.
func Build(pattern string, args ...any) (string, error) {
	segments := strings.Split(pattern, "/")
	next := 0

	for i, seg := range segments {
		if seg == "*" || seg == "+" || strings.HasSuffix(seg, "?") {
			return "", fmt.Errorf("%w: unsupported segment %q in %s", ErrNoReverseMatch, seg, pattern)
		}
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		if next >= len(args) {
			return "", fmt.Errorf("%w: %s needs more than %d argument(s)", ErrNoReverseMatch, pattern, len(args))
		}
		segments[i] = url.PathEscape(fmt.Sprint(args[next]))
		next++
	}

	if next != len(args) {
		return "", fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrNoReverseMatch, pattern, next, len(args))
	}
	return strings.Join(segments, "/"), nil
}
