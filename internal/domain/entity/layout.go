package entity

import "github.com/fulcitt/fulcitt-api/internal/domain/enum"

// SectionStyle holds the styling of one receipt section.
type SectionStyle struct {
	Enabled       bool               `json:"enabled"`
	FontSize      enum.FontSize      `json:"font_size"`
	Justification enum.Justification `json:"justification"`
}

// HeaderLayout is the header section; unlike body and footer it carries a
// configurable static content string.
type HeaderLayout struct {
	SectionStyle
	Content string `json:"content"`
}

// PrintingLayout is the operator-editable receipt configuration. It is not a
// database entity: it is stored as a JSON document under a settings key and
// read at print time.
type PrintingLayout struct {
	Header                 HeaderLayout `json:"header"`
	Body                   SectionStyle `json:"body"`
	Footer                 SectionStyle `json:"footer"`
	GroupTicketsByCategory bool         `json:"group_tickets_by_category"`
}

// DefaultPrintingLayout returns the layout applied when none has been saved:
// header off, body enabled/normal/center, footer off, split tickets.
func DefaultPrintingLayout() *PrintingLayout {
	return &PrintingLayout{
		Header: HeaderLayout{
			SectionStyle: SectionStyle{
				Enabled:       false,
				FontSize:      enum.FontSizeNormal,
				Justification: enum.JustifyCenter,
			},
		},
		Body: SectionStyle{
			Enabled:       true,
			FontSize:      enum.FontSizeNormal,
			Justification: enum.JustifyCenter,
		},
		Footer: SectionStyle{
			Enabled:       false,
			FontSize:      enum.FontSizeNormal,
			Justification: enum.JustifyCenter,
		},
		GroupTicketsByCategory: false,
	}
}

// Validate checks that every styled section uses defined enum values.
func (l *PrintingLayout) Validate() bool {
	for _, s := range []SectionStyle{l.Header.SectionStyle, l.Body, l.Footer} {
		if !s.FontSize.IsValid() || !s.Justification.IsValid() {
			return false
		}
	}
	return true
}
