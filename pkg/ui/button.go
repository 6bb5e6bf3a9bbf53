// Package ui describes the presentational elements shared by scorekeeper front ends.
package ui

import (
	"strings"

	"github.com/cbodonnell/scorekeeper/pkg/log"
)

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
)

const (
	defaultHref = "/"
	defaultText = "click here"
)

type ButtonProps struct {
	// Variant selects the style, primary when empty
	Variant ButtonVariant
	// NavLink renders a navigation link instead of an action button
	NavLink bool
	// Href is the link target, "/" when empty. Only used with NavLink.
	Href string
	Text string
	// ClassName is appended to the variant classes
	ClassName string
	// OnClick is called for action buttons. Only used without NavLink.
	OnClick func()
	// ButtonType is the button's type attribute, e.g. "submit"
	ButtonType string
}

// Element is a renderer independent description of one interactive element.
type Element struct {
	Tag       string
	ClassName string
	Text      string
	Href      string
	Type      string
	OnClick   func()
}

// Button turns props into either an anchor or a button element.
func Button(props ButtonProps) Element {
	classes := []string{string(ButtonPrimary)}
	if props.Variant == ButtonSecondary {
		classes = append(classes, string(ButtonSecondary))
	}
	if props.ClassName != "" {
		classes = append(classes, props.ClassName)
	}

	text := props.Text
	if text == "" {
		text = defaultText
	}

	if props.NavLink {
		href := props.Href
		if href == "" {
			href = defaultHref
		}
		return Element{
			Tag:       "a",
			ClassName: strings.Join(classes, " "),
			Text:      text,
			Href:      href,
		}
	}

	onClick := props.OnClick
	if onClick == nil {
		onClick = func() {
			log.Debug("Clicked")
		}
	}
	return Element{
		Tag:       "button",
		ClassName: strings.Join(classes, " "),
		Text:      text,
		Type:      props.ButtonType,
		OnClick:   onClick,
	}
}
