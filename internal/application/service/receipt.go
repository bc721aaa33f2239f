package service

import (
	"fmt"

	"github.com/fulcitt/fulcitt-api/internal/domain/entity"
	"github.com/fulcitt/fulcitt-api/internal/domain/enum"
	"github.com/fulcitt/fulcitt-api/pkg/printer"
)

// TicketItem is one sale line resolved for printing: the name captured at
// sale time plus the product's category for grouped tickets.
type TicketItem struct {
	Name     string
	Quantity int
	Category string
}

// footerTimeFormat renders sale timestamps as DD-MM-YYYY HH:MM:SS.
const footerTimeFormat = "02-01-2006 15:04:05"

// ComposeTickets turns a committed sale into the flat printer operation
// sequence for its tickets. It is pure with respect to the printer: dispatch
// happens separately so the sequence is testable without hardware.
//
// Split mode emits one ticket per sold unit. Grouped mode emits one ticket
// per product category, with one body write per unit inside it. Every ticket
// ends in a cut.
func ComposeTickets(sale *entity.Sale, items []TicketItem, layout *entity.PrintingLayout) []printer.Op {
	if layout.GroupTicketsByCategory {
		return composeGrouped(sale, items, layout)
	}
	return composeSplit(sale, items, layout)
}

func composeSplit(sale *entity.Sale, items []TicketItem, layout *entity.PrintingLayout) []printer.Op {
	var ops []printer.Op
	for _, item := range items {
		for unit := 0; unit < item.Quantity; unit++ {
			ops = appendSection(ops, layout.Header.SectionStyle, layout.Header.Content)
			ops = appendSection(ops, layout.Body, item.Name)
			ops = appendSection(ops, layout.Footer, footerText(sale))
			ops = append(ops, printer.CutOp())
		}
	}
	return ops
}

func composeGrouped(sale *entity.Sale, items []TicketItem, layout *entity.PrintingLayout) []printer.Op {
	// Categories keep first-appearance order; within a category, items keep
	// cart order and each unit is still a separate body write.
	var categories []string
	grouped := make(map[string][]TicketItem)
	for _, item := range items {
		if _, seen := grouped[item.Category]; !seen {
			categories = append(categories, item.Category)
		}
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	var ops []printer.Op
	for _, category := range categories {
		ops = appendSection(ops, layout.Header.SectionStyle, layout.Header.Content)
		for _, item := range grouped[category] {
			for unit := 0; unit < item.Quantity; unit++ {
				ops = appendSection(ops, layout.Body, item.Name)
			}
		}
		ops = appendSection(ops, layout.Footer, footerText(sale))
		ops = append(ops, printer.CutOp())
	}
	return ops
}

// appendSection emits one styled section: apply style, write, reset the font,
// feed. The font reset after every write keeps styling from leaking into the
// following section. Disabled sections emit nothing.
func appendSection(ops []printer.Op, style entity.SectionStyle, text string) []printer.Op {
	if !style.Enabled {
		return ops
	}

	w, h := fontMagnification(style.FontSize)
	rw, rh := fontMagnification(enum.FontSizeSmall)
	return append(ops,
		printer.SetFontOp(w, h),
		printer.SetJustifyOp(justifyAlign(style.Justification)),
		printer.WriteOp(text),
		printer.SetFontOp(rw, rh),
		printer.FeedOp(),
	)
}

func footerText(sale *entity.Sale) string {
	return fmt.Sprintf("#%s - %s", sale.ID, sale.SaleTime.Format(footerTimeFormat))
}

// fontMagnification maps a layout font size to ESC/POS width/height factors.
// Small is the hardware default magnification.
func fontMagnification(size enum.FontSize) (int, int) {
	switch size {
	case enum.FontSizeSmall:
		return 1, 1
	case enum.FontSizeLarge:
		return 3, 3
	default:
		return 2, 2
	}
}

func justifyAlign(j enum.Justification) int {
	switch j {
	case enum.JustifyCenter:
		return printer.AlignCenter
	case enum.JustifyRight:
		return printer.AlignRight
	default:
		return printer.AlignLeft
	}
}
