package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagekit/pagekit/internal/config"
	"github.com/pagekit/pagekit/internal/dom/htmldoc"
	"github.com/pagekit/pagekit/internal/model"
	"github.com/pagekit/pagekit/internal/page"
	"github.com/pagekit/pagekit/internal/state"
)

// pageRun is the body of a page command.
type pageRun func(e *env, h *page.Helper, vs *model.ViewState) error

// runOnPage loads the page, runs fn, records the view state and writes the
// page out.
func runOnPage(pagePath string, fn pageRun) error {
	e, doc, h, err := loadPage(pagePath)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	before := e.store.Get(pagePath)
	vs := before.Clone()
	if err := fn(e, h, vs); err != nil {
		return err
	}

	if err := recordState(e, pagePath, before, vs); err != nil {
		return err
	}

	return writePage(doc, pagePath)
}

// inspectPage runs fn against the page and its view state without saving
// either.
func inspectPage(pagePath string, fn pageRun) error {
	e, _, h, err := loadPage(pagePath)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	return fn(e, h, e.store.Get(pagePath))
}

func loadPage(pagePath string) (*env, *htmldoc.Document, *page.Helper, error) {
	e, err := setup()
	if err != nil {
		return nil, nil, nil, err
	}
	doc, err := htmldoc.Load(pagePath)
	if err != nil {
		return nil, nil, nil, err
	}

	return e, doc, page.NewHelper(doc, e.cfg.Pagekit.Layout(), e.log), nil
}

func recordState(e *env, pagePath string, before, after *model.ViewState) error {
	patch, err := state.Patch(before, after)
	if errors.Is(err, state.ErrNoChanges) {
		return nil
	}
	if err != nil {
		return err
	}
	e.log.Debugw("view state changed", "page", pagePath, "patch", patch)
	if config.IsBoolSet(pkFlags.Patch) {
		fmt.Fprintln(os.Stderr, patch)
	}

	e.store.Put(pagePath, after)
	return e.store.Save()
}

func writePage(doc *htmldoc.Document, pagePath string) error {
	out := pagePath
	if config.IsStringSet(pkFlags.Out) {
		out = *pkFlags.Out
	}
	if out == "-" {
		return doc.Render(os.Stdout)
	}
	return doc.Save(out)
}

func employeeCmd() *cobra.Command {
	var value string
	cmd := &cobra.Command{
		Use:   "employee PAGE",
		Short: "Show or hide the assignment field for a user type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnPage(args[0], func(e *env, h *page.Helper, _ *model.ViewState) error {
				return h.NewEmployee(value)
			})
		},
	}
	cmd.Flags().StringVar(&value, "value", "", "Selected user type value")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func submitCmd() *cobra.Command {
	var checkbox, submit string
	cmd := &cobra.Command{
		Use:   "submit PAGE",
		Short: "Show the submit control iff the checkbox is checked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnPage(args[0], func(e *env, h *page.Helper, _ *model.ViewState) error {
				return h.DisplaySubmit(checkbox, submit)
			})
		},
	}
	cmd.Flags().StringVar(&checkbox, "checkbox", "", "Checkbox element id")
	cmd.Flags().StringVar(&submit, "submit", "", "Submit element id")
	_ = cmd.MarkFlagRequired("checkbox")
	_ = cmd.MarkFlagRequired("submit")

	return cmd
}

func selectCmd() *cobra.Command {
	var rows []string
	var color string
	cmd := &cobra.Command{
		Use:   "select PAGE",
		Short: "Toggle the selection of table rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnPage(args[0], func(e *env, h *page.Helper, vs *model.ViewState) error {
				for _, id := range rows {
					if e.cfg.Pagekit.Infer() {
						if err := h.SelectRow(id, color); err != nil {
							return err
						}
						continue
					}
					sel, err := h.ToggleRow(vs.Selection, id, color)
					if err != nil {
						return err
					}
					vs.Selection = sel
				}
				e.log.Infow("rows toggled", "rows", rows, "selected", vs.Selection.IDs())
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&rows, "row", nil, "Row primary key (repeatable)")
	cmd.Flags().StringVar(&color, "color", "", "Highlight color (default from config)")
	_ = cmd.MarkFlagRequired("row")

	return cmd
}

func sortCmd() *cobra.Command {
	var (
		table   string
		by      string
		col     int
		numeric bool
	)
	cmd := &cobra.Command{
		Use:   "sort PAGE",
		Short: "Sort a table by a column, alternating direction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnPage(args[0], func(e *env, h *page.Helper, vs *model.ViewState) error {
				if by != "" {
					data, err := h.ReadTable(table)
					if err != nil {
						return err
					}
					idx, ok := data.Header().IndexOf(by)
					if !ok {
						return fmt.Errorf("table %q has no column %q", table, by)
					}
					col = idx
				}
				if e.cfg.Pagekit.Infer() {
					dir, err := h.SortTable(table, col, numeric)
					if err != nil {
						return err
					}
					e.log.Infow("table sorted", "table", table, "column", col, "direction", dir)
					return nil
				}
				st, err := h.SortBy(vs.Sort(table), table, col, numeric)
				if err != nil {
					return err
				}
				vs.SetSort(table, st)
				e.log.Infow("table sorted", "table", table, "column", col, "direction", st.Direction(col))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&table, "table", "", "Table element id")
	cmd.Flags().IntVar(&col, "col", 0, "Zero-based column index")
	cmd.Flags().StringVar(&by, "by", "", "Column header name (overrides --col)")
	cmd.Flags().BoolVar(&numeric, "numeric", false, "Compare the column as numbers")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}
