// Package tmpl adds block tags of the form {% name arg ... %} to html/template.
//
// Tags are expanded into template actions when the template is parsed, so a
// malformed tag is reported by Parse and never while rendering. A tag usually
// binds a variable from a function that is only known per request; such
// functions are registered with a placeholder at parse time and rebound with
// Execute.
package tmpl

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
)

const (
	tagOpen  = "{%"
	tagClose = "%}"
)

// ErrTemplateSyntax is wrapped by every SyntaxError.
var ErrTemplateSyntax = errors.New("template syntax error")

// SyntaxError reports a malformed tag.
type SyntaxError struct {
	Template string
	Line     int
	Tag      string
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s: {%% %s %%}: %s", e.Template, e.Line, ErrTemplateSyntax, e.Tag, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrTemplateSyntax }

// TagFunc compiles the whitespace separated tokens of a tag, the tag name
// included, into template source. A returned error becomes a SyntaxError.
type TagFunc func(bits []string) (string, error)

// Library holds the registered tags and the functions their output calls.
type Library struct {
	tags  map[string]TagFunc
	funcs template.FuncMap
}

// NewLibrary creates an empty Library.
func NewLibrary() *Library {
	return &Library{
		tags:  map[string]TagFunc{},
		funcs: template.FuncMap{},
	}
}

// Tag registers fn under name.
func (l *Library) Tag(name string, fn TagFunc) {
	l.tags[name] = fn
}

// Funcs adds functions available to every template parsed by the library.
func (l *Library) Funcs(funcs template.FuncMap) {
	for name, fn := range funcs {
		l.funcs[name] = fn
	}
}

// Parse expands the tags in src and parses the result as an html/template.
func (l *Library) Parse(name, src string) (*template.Template, error) {
	expanded, err := l.expand(name, src)
	if err != nil {
		return nil, err
	}

	t, err := template.New(name).Funcs(l.funcs).Parse(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return t, nil
}

func (l *Library) expand(name, src string) (string, error) {
	var out strings.Builder
	line := 1

	for {
		start := strings.Index(src, tagOpen)
		if start < 0 {
			out.WriteString(src)
			return out.String(), nil
		}

		out.WriteString(src[:start])
		line += strings.Count(src[:start], "\n")
		src = src[start+len(tagOpen):]

		end := strings.Index(src, tagClose)
		if end < 0 {
			return "", &SyntaxError{Template: name, Line: line, Tag: strings.TrimSpace(firstLine(src)), Msg: "unclosed tag"}
		}

		body := src[:end]
		bits := strings.Fields(body)
		if len(bits) == 0 {
			return "", &SyntaxError{Template: name, Line: line, Msg: "empty tag"}
		}

		fn, ok := l.tags[bits[0]]
		if !ok {
			return "", &SyntaxError{Template: name, Line: line, Tag: bits[0], Msg: "unknown tag"}
		}

		compiled, err := fn(bits)
		if err != nil {
			return "", &SyntaxError{Template: name, Line: line, Tag: strings.Join(bits, " "), Msg: err.Error()}
		}

		out.WriteString(compiled)
		line += strings.Count(body, "\n")
		src = src[end+len(tagClose):]
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Execute renders t with funcs rebound for this call only. t itself is not modified.
func Execute(t *template.Template, w io.Writer, data any, funcs template.FuncMap) error {
	clone, err := t.Clone()
	if err != nil {
		return fmt.Errorf("failed to clone template %s: %w", t.Name(), err)
	}
	if len(funcs) > 0 {
		clone.Funcs(funcs)
	}
	return clone.Execute(w, data)
}
