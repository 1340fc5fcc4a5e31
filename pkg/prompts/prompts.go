// Package prompts renders the coaching prompts sent to the completion provider.
// Every function is pure: it only interpolates the values it is given.
package prompts

import (
	"strings"
	"text/template"
)

// None is rendered wherever a value is missing. Lines are never dropped.
const None = "None"

// Prompt is one system message followed by one user message.
type Prompt struct {
	System string
	User   string
}

// Profile holds the target attributes interpolated into strategy and reply prompts.
type Profile struct {
	Name                   string
	Gender                 *string
	Personality            *string
	RelationshipContext    *string
	RelationshipPerception *string
	RelationshipGoals      *string
	RelationshipGoalsLong  *string
	Language               *string
}

func orNone(s *string) string {
	if s == nil {
		return None
	}
	return *s
}

var funcs = template.FuncMap{"orNone": orNone}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

func render(t *template.Template, data any) string {
	var b strings.Builder
	// templates are parsed at init and data is always a known struct, so Execute cannot fail
	if err := t.Execute(&b, data); err != nil {
		panic(err)
	}
	return b.String()
}

func outputIn(language *string) string {
	return "Output in " + orNone(language) + ":"
}
