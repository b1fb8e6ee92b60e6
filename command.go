package main

import (
	"fmt"
	"strconv"
	"strings"
)

const helpText = `Commands:
  help                      Show help
  show [N]                  Show current page (or top N rows)
  cols                      List columns
  dtypes                    Show column types
  filter <cond>[,<cond>...] Apply filters (AND)
  sort <col>[,asc|desc]     Sort rows
  pagesize N                Set rows per page
  page N                    Jump to page
  next                      Next page
  prev                      Previous page
  export <file>             Export all visible rows (filtered/sorted)
  export_page <file>        Export only current page
  reset                     Reset data + pagesize + page
  exit                      Quit`

// response is the outcome of one dispatched command.
type response struct {
	message string
	// head, when set, asks the UI to display these rows instead of the
	// current page (the "show N" view).
	head *Dataset
	quit bool
}

// execCommand parses one line of user input and runs it against the view
// state. Failed commands return an error and leave the state untouched.
func execCommand(vs *ViewState, line string) (response, error) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	cmd = strings.ToLower(cmd)
	arg = strings.TrimSpace(arg)
	pager := vs.Pager()

	switch cmd {
	case "":
		return response{}, nil

	case "help":
		return response{message: helpText}, nil

	case "show":
		if len(vs.Current().Schema) == 0 {
			return response{}, ErrEmptyDataset
		}
		if arg != "" {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return response{}, fmt.Errorf("usage: show [N]")
			}
			head := vs.Head(n)
			return response{
				message: fmt.Sprintf("Rows in view: %d", vs.Current().Len()),
				head:    &head,
			}, nil
		}
		return response{message: pageStatus(vs)}, nil

	case "cols":
		return response{message: strings.Join(vs.Current().Schema.Names(), ", ")}, nil

	case "dtypes":
		var b strings.Builder
		for i, col := range vs.Current().Schema {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%s: %s", col.Name, col.Type)
		}
		return response{message: b.String()}, nil

	case "filter":
		if arg == "" {
			return response{}, fmt.Errorf("usage: filter <cond>[,<cond>...]")
		}
		if err := vs.Filter(arg); err != nil {
			return response{}, err
		}
		return response{message: fmt.Sprintf("Filtered rows: %d (Page %d/%d)",
			vs.Current().Len(), pager.Page(), pager.TotalPages())}, nil

	case "sort":
		if arg == "" {
			return response{}, fmt.Errorf("usage: sort <col>[,asc|desc]")
		}
		column, order, _ := strings.Cut(arg, ",")
		dir, err := parseSortDirection(order)
		if err != nil {
			return response{}, err
		}
		if err := vs.Sort(strings.TrimSpace(column), dir); err != nil {
			return response{}, err
		}
		return response{message: "Sorted."}, nil

	case "pagesize":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return response{}, fmt.Errorf("usage: pagesize N")
		}
		if err := pager.SetSize(n); err != nil {
			return response{}, err
		}
		return response{message: fmt.Sprintf("Page size: %d", pager.Size())}, nil

	case "page":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return response{}, fmt.Errorf("usage: page N")
		}
		if err := pager.Goto(n); err != nil {
			return response{}, err
		}
		return response{message: pageStatus(vs)}, nil

	case "next":
		pager.Next()
		return response{message: pageStatus(vs)}, nil

	case "prev":
		pager.Prev()
		return response{message: pageStatus(vs)}, nil

	case "export":
		if arg == "" {
			return response{}, fmt.Errorf("usage: export <file>")
		}
		if err := writeDataset(arg, vs.ExportAll()); err != nil {
			return response{}, err
		}
		return response{message: fmt.Sprintf("Saved visible rows: %s", arg)}, nil

	case "export_page":
		if arg == "" {
			return response{}, fmt.Errorf("usage: export_page <file>")
		}
		if err := writeDataset(arg, vs.ExportPage()); err != nil {
			return response{}, err
		}
		return response{message: fmt.Sprintf("Saved current page: %s", arg)}, nil

	case "reset":
		vs.Reset()
		return response{message: fmt.Sprintf("Reset to original data and default pagesize (%d).", defaultPageSize)}, nil

	case "exit", "quit":
		return response{quit: true}, nil
	}

	return response{message: "Unknown command. Type 'help'."}, nil
}

func pageStatus(vs *ViewState) string {
	p := vs.Pager()
	return fmt.Sprintf("Page %d/%d | Rows: %d", p.Page(), p.TotalPages(), vs.Current().Len())
}
