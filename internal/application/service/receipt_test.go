package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulcitt/fulcitt-api/internal/domain/entity"
	"github.com/fulcitt/fulcitt-api/internal/domain/enum"
	"github.com/fulcitt/fulcitt-api/pkg/printer"
)

func bodyOnlyLayout() *entity.PrintingLayout {
	return entity.DefaultPrintingLayout()
}

func fullLayout() *entity.PrintingLayout {
	layout := entity.DefaultPrintingLayout()
	layout.Header.Enabled = true
	layout.Header.Content = "FULCITT BAR"
	layout.Header.FontSize = enum.FontSizeLarge
	layout.Footer.Enabled = true
	layout.Footer.FontSize = enum.FontSizeSmall
	layout.Footer.Justification = enum.JustifyRight
	return layout
}

func countKind(ops []printer.Op, kind printer.OpKind) int {
	n := 0
	for _, op := range ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func writtenTexts(ops []printer.Op) []string {
	var texts []string
	for _, op := range ops {
		if op.Kind == printer.OpWrite {
			texts = append(texts, op.Text)
		}
	}
	return texts
}

func TestComposeSplitOneTicketPerUnit(t *testing.T) {
	sale := testSale()
	items := []TicketItem{
		{Name: "Espresso", Quantity: 2, Category: "Drinks"},
		{Name: "Panino", Quantity: 1, Category: "Food"},
	}

	ops := ComposeTickets(sale, items, bodyOnlyLayout())

	// 3 units sold, 3 tickets, each ending in a cut
	assert.Equal(t, 3, countKind(ops, printer.OpCut))
	assert.Equal(t, []string{"Espresso", "Espresso", "Panino"}, writtenTexts(ops))

	// Every ticket ends with its cut: the last op must be a cut
	require.NotEmpty(t, ops)
	assert.Equal(t, printer.OpCut, ops[len(ops)-1].Kind)
}

func TestComposeSplitSectionStructure(t *testing.T) {
	sale := testSale()
	items := []TicketItem{{Name: "Espresso", Quantity: 1, Category: "Drinks"}}

	ops := ComposeTickets(sale, items, bodyOnlyLayout())

	// Single enabled section: style, justify, write, reset, feed, then cut
	require.Len(t, ops, 6)
	assert.Equal(t, printer.SetFontOp(2, 2), ops[0])
	assert.Equal(t, printer.SetJustifyOp(printer.AlignCenter), ops[1])
	assert.Equal(t, printer.WriteOp("Espresso"), ops[2])
	assert.Equal(t, printer.SetFontOp(1, 1), ops[3])
	assert.Equal(t, printer.FeedOp(), ops[4])
	assert.Equal(t, printer.CutOp(), ops[5])
}

func TestComposeSplitHeaderAndFooter(t *testing.T) {
	sale := testSale()
	items := []TicketItem{{Name: "Espresso", Quantity: 2, Category: "Drinks"}}

	ops := ComposeTickets(sale, items, fullLayout())

	expectedFooter := fmt.Sprintf("#%s - 14-03-2026 18:30:05", sale.ID)
	assert.Equal(t, []string{
		"FULCITT BAR", "Espresso", expectedFooter,
		"FULCITT BAR", "Espresso", expectedFooter,
	}, writtenTexts(ops))
	assert.Equal(t, 2, countKind(ops, printer.OpCut))
}

func TestComposeDisabledSectionsEmitNothing(t *testing.T) {
	sale := testSale()
	items := []TicketItem{{Name: "Espresso", Quantity: 2, Category: "Drinks"}}

	layout := entity.DefaultPrintingLayout()
	layout.Body.Enabled = false

	ops := ComposeTickets(sale, items, layout)

	// No enabled section: tickets degenerate to bare cuts
	require.Len(t, ops, 2)
	assert.Equal(t, printer.OpCut, ops[0].Kind)
	assert.Equal(t, printer.OpCut, ops[1].Kind)
}

func TestComposeFontResetAfterEveryWrite(t *testing.T) {
	sale := testSale()
	items := []TicketItem{
		{Name: "Espresso", Quantity: 1, Category: "Drinks"},
		{Name: "Panino", Quantity: 2, Category: "Food"},
	}

	for _, grouped := range []bool{false, true} {
		layout := fullLayout()
		layout.GroupTicketsByCategory = grouped

		ops := ComposeTickets(sale, items, layout)
		for i, op := range ops {
			if op.Kind != printer.OpWrite {
				continue
			}
			require.Greater(t, len(ops), i+1, "write must not be the last op")
			assert.Equal(t, printer.SetFontOp(1, 1), ops[i+1],
				"grouped=%v: write %q must be followed by a font reset", grouped, op.Text)
		}
	}
}

func TestComposeGroupedOneTicketPerCategory(t *testing.T) {
	sale := testSale()
	items := []TicketItem{
		{Name: "Espresso", Quantity: 2, Category: "Drinks"},
		{Name: "Panino", Quantity: 1, Category: "Food"},
		{Name: "Coke", Quantity: 1, Category: "Drinks"},
	}

	layout := fullLayout()
	layout.GroupTicketsByCategory = true

	ops := ComposeTickets(sale, items, layout)

	// Two categories, two tickets
	assert.Equal(t, 2, countKind(ops, printer.OpCut))

	expectedFooter := fmt.Sprintf("#%s - 14-03-2026 18:30:05", sale.ID)
	assert.Equal(t, []string{
		// Drinks ticket: first-appearance category order, cart order inside,
		// one body write per unit
		"FULCITT BAR", "Espresso", "Espresso", "Coke", expectedFooter,
		// Food ticket
		"FULCITT BAR", "Panino", expectedFooter,
	}, writtenTexts(ops))

	// Header and footer once per ticket, not per unit
	assert.Equal(t, 8, countKind(ops, printer.OpWrite))
}

func TestComposeIsDeterministic(t *testing.T) {
	sale := testSale()
	items := []TicketItem{
		{Name: "Espresso", Quantity: 2, Category: "Drinks"},
		{Name: "Panino", Quantity: 1, Category: "Food"},
	}

	for _, grouped := range []bool{false, true} {
		layout := fullLayout()
		layout.GroupTicketsByCategory = grouped

		first := ComposeTickets(sale, items, layout)
		second := ComposeTickets(sale, items, layout)
		assert.Equal(t, first, second, "grouped=%v", grouped)
	}
}

func TestComposeEmptyItems(t *testing.T) {
	ops := ComposeTickets(testSale(), nil, fullLayout())
	assert.Empty(t, ops)
}

func TestFontMagnification(t *testing.T) {
	tests := []struct {
		size          enum.FontSize
		width, height int
	}{
		{enum.FontSizeSmall, 1, 1},
		{enum.FontSizeNormal, 2, 2},
		{enum.FontSizeLarge, 3, 3},
	}
	for _, tt := range tests {
		w, h := fontMagnification(tt.size)
		assert.Equal(t, tt.width, w, tt.size.String())
		assert.Equal(t, tt.height, h, tt.size.String())
	}
}
