package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pagekit/pagekit/internal/model"
	"github.com/pagekit/pagekit/internal/model1"
	"github.com/pagekit/pagekit/internal/page"
	"github.com/pagekit/pagekit/internal/view"
)

func printCmd() *cobra.Command {
	var tableID string
	cmd := &cobra.Command{
		Use:   "print PAGE",
		Short: "Print a page table with its selection and sort state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspectPage(args[0], func(e *env, h *page.Helper, vs *model.ViewState) error {
				data, err := h.ReadTable(tableID)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, renderTable(data, vs.Selection, vs.Sort(tableID), h.Layout()))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&tableID, "table", "", "Table element id")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func renderTable(data *model1.TableData, sel model.Selection, st model.SortState, layout page.Layout) string {
	sortCol, dir, _ := st.Column()
	bold := lipgloss.NewStyle().Bold(true)

	header := data.Header()
	names := make([]string, len(header))
	for i, h := range header {
		name := h.Name
		if i == sortCol {
			name += " " + dir.Indicator()
		}
		names[i] = bold.Render(name)
	}

	rows := make([][]string, 0, data.RowCount())
	for _, r := range data.Rows() {
		style := lipgloss.NewStyle()
		if color, ok := sel.Color(r.ID); ok {
			if hex, ok := model1.ColorHex(color); ok {
				style = style.Foreground(lipgloss.Color(hex))
			}
		} else if hex, ok := model1.ColorHex(layout.BaselineColor); ok {
			style = style.Foreground(lipgloss.Color(hex))
		}
		cells := make([]string, len(header))
		for i := range header {
			f := model1.NAValue
			if i < len(r.Fields) {
				f = r.Fields[i]
			}
			if i == 0 && sel.Has(r.ID) {
				f = "✓ " + f
			}
			cells[i] = style.Render(f)
		}
		rows = append(rows, cells)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(names...).
		Rows(rows...).
		String()
}

func viewCmd() *cobra.Command {
	var tableID string
	cmd := &cobra.Command{
		Use:   "view PAGE",
		Short: "Browse a page table, marking rows and sorting columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnPage(args[0], func(e *env, h *page.Helper, vs *model.ViewState) error {
				data, err := h.ReadTable(tableID)
				if err != nil {
					return err
				}
				pk := e.cfg.Pagekit
				m := model.NewTableData(data, pk.Page.Compare, e.log)
				m.Restore(vs.Selection, vs.Sort(tableID))

				app := view.NewApp(m, pk.Page.HighlightColor, pk.Page.BaselineColor)
				app.Init(pk.UI.EnableMouse)
				if err := app.Run(); err != nil {
					return fmt.Errorf("view: %w", err)
				}

				return applyView(h, tableID, m, vs)
			})
		},
	}
	cmd.Flags().StringVar(&tableID, "table", "", "Table element id")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

// applyView writes the browsed order and the marks that changed back to the
// page and the view state. Rows without an id keep their marks in the state
// only.
func applyView(h *page.Helper, tableID string, m *model.TableData, vs *model.ViewState) error {
	if err := h.Reorder(tableID, m.Peek().Rows().IDs()); err != nil {
		return err
	}

	sel := m.Selection()
	var changed []string
	for _, id := range sel.IDs() {
		if !vs.Selection.Has(id) && !page.IsPositional(id) {
			changed = append(changed, id)
		}
	}
	for _, id := range vs.Selection.IDs() {
		if !sel.Has(id) && !page.IsPositional(id) {
			changed = append(changed, id)
		}
	}
	if err := h.ApplySelection(sel, changed...); err != nil {
		return err
	}

	vs.Selection = sel
	vs.SetSort(tableID, m.SortState())

	return nil
}
