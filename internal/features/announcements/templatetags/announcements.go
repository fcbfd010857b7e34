// Package templatetags provides the announcements tag:
//
//	{% announcements as site_announcements %}
//	{{range $site_announcements}}
//	  <div>{{.Title}} <a href="{{dismiss_url .}}">dismiss</a></div>
//	{{end}}
//
// The tag binds the current announcements visible to the requesting visitor.
package templatetags

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"regexp"

	"site-announcements/internal/core/tmpl"
	"site-announcements/internal/features/announcements/domain"
	"site-announcements/internal/features/announcements/ports"
)

const (
	tagName   = "announcements"
	funcName  = "announcements"
	detailFn  = "announcement_url"
	dismissFn = "dismiss_url"
)

var errUsage = errors.New("usage: {% announcements as var %}")

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Register adds the announcements tag and the URL functions to lib.
func Register(lib *tmpl.Library, r domain.URLReverser) {
	lib.Tag(tagName, handleToken)
	lib.Funcs(template.FuncMap{
		funcName: func() ([]domain.Announcement, error) {
			return nil, errors.New("announcements tag rendered without a visitor")
		},
		detailFn: func(a domain.Announcement) (string, error) {
			return a.AbsoluteURL(r)
		},
		dismissFn: func(a domain.Announcement) (string, error) {
			return a.DismissURL(r)
		},
	})
}

func handleToken(bits []string) (string, error) {
	if len(bits) != 3 || bits[1] != "as" {
		return "", errUsage
	}
	if !identifier.MatchString(bits[2]) {
		return "", fmt.Errorf("invalid variable name %q", bits[2])
	}
	return fmt.Sprintf("{{$%s := %s}}", bits[2], funcName), nil
}

// Bind returns the functions that resolve the tag for one visitor. Pass them to tmpl.Execute.
func Bind(ctx context.Context, svc ports.AnnouncementService, visitor domain.Visitor) template.FuncMap {
	return template.FuncMap{
		funcName: func() ([]domain.Announcement, error) {
			return svc.VisibleFor(ctx, visitor)
		},
	}
}
