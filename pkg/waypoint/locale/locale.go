// Package locale provides translated labels for navigation chrome: the
// default alert acknowledgement and the onboarding screen titles.
package locale

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

// Message ids shipped in messages/*.toml.
const (
	AlertOK               = "AlertOK"
	CountrySelectionTitle = "CountrySelectionTitle"
	FormTitle             = "FormTitle"
	SummaryTitle          = "SummaryTitle"
	Next                  = "Next"
	Submit                = "Submit"
	FieldRequired         = "FieldRequired"
)

//go:embed messages/*.toml
var messageFS embed.FS

var messageFiles = []string{
	"messages/active.en.toml",
	"messages/active.ar.toml",
}

// NewBundle loads the embedded message files. English is the fallback.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, name := range messageFiles {
		if _, err := bundle.LoadMessageFileFS(messageFS, name); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	}
	return bundle, nil
}

// Localizer resolves message ids for one language.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New parses lang as a BCP 47 tag and builds a Localizer for it. Languages
// without a message file fall back to English.
func New(lang string) (*Localizer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse language %q: %w", lang, err)
	}
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// Language returns the requested language tag.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Text returns the translation of id, or id itself when no file defines it.
func (l *Localizer) Text(id string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// ActionLabel returns the title to show for an alert action. The default
// acknowledgement gets the translated "OK".
func (l *Localizer) ActionLabel(action router.AlertAction) string {
	if action.Default || action.Title == "" {
		return l.Text(AlertOK)
	}
	return action.Title
}
