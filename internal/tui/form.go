package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/outgo/internal/config"
	"github.com/theirongolddev/outgo/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formKind identifies which modal form is open and how to apply it.
type formKind int

const (
	formNone formKind = iota
	formAdd
	formEdit
	formFilter
	formDelete
	formClear
)

// recordValues backs the add/edit form fields.
type recordValues struct {
	date     string
	category string
	amount   string
	note     string
}

// filterValues backs the filter form fields.
type filterValues struct {
	year     string
	month    string
	category string
}

func validateDate(s string) error {
	_, err := model.ParseDate(s)
	return err
}

func validateAmount(s string) error {
	_, err := model.ParseAmount(s)
	return err
}

func validateYear(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1 || y > 9999 {
		return errors.New("year must be a number like 2024")
	}
	return nil
}

// newRecordForm builds the add/edit form. Field validators reuse the
// record parsing rules, so input a form accepts is input the store accepts.
func newRecordForm(title string, v *recordValues, categories []string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&v.date).
				Validate(validateDate),
			huh.NewInput().
				Title("Category").
				Description("blank becomes "+model.DefaultCategory).
				Suggestions(categories).
				Value(&v.category),
			huh.NewInput().
				Title("Amount").
				Value(&v.amount).
				Validate(validateAmount),
			huh.NewInput().
				Title("Note").
				Value(&v.note),
		).Title(title),
	)
}

// newFilterForm builds the year/month/category filter form.
func newFilterForm(v *filterValues) *huh.Form {
	monthOpts := make([]huh.Option[string], 0, 13)
	monthOpts = append(monthOpts, huh.NewOption("Any", ""))
	for m := time.January; m <= time.December; m++ {
		monthOpts = append(monthOpts, huh.NewOption(m.String(), strconv.Itoa(int(m))))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Year").
				Description("blank for any year").
				Value(&v.year).
				Validate(validateYear),
			huh.NewSelect[string]().
				Title("Month").
				Options(monthOpts...).
				Value(&v.month),
			huh.NewInput().
				Title("Category contains").
				Value(&v.category),
		).Title("Filter records"),
	)
}

// newConfirmForm builds a destructive-action confirmation.
func newConfirmForm(title, description string, v *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Delete").
				Negative("Cancel").
				Value(v),
		),
	)
}

func (a App) openAddForm() (tea.Model, tea.Cmd) {
	cfg, _ := config.Load()
	a.recVals = recordValues{date: time.Now().Format(model.DateFormat)}
	a.formKind = formAdd
	a.form = newRecordForm("Add expense", &a.recVals, config.GetCategories(cfg)).WithWidth(a.formWidth())
	return a, a.form.Init()
}

func (a App) openEditForm() (tea.Model, tea.Cmd) {
	sel, ok := a.selectedRecord()
	if !ok {
		a.notice = "no record selected"
		return a, nil
	}

	cfg, _ := config.Load()
	a.recVals = recordValues{
		date:     sel.Date.Format(model.DateFormat),
		category: sel.Category,
		amount:   strconv.FormatFloat(sel.Amount, 'f', -1, 64),
		note:     sel.Note,
	}
	a.targetID = sel.ID
	a.formKind = formEdit
	a.form = newRecordForm("Edit expense", &a.recVals, config.GetCategories(cfg)).WithWidth(a.formWidth())
	return a, a.form.Init()
}

func (a App) openDeleteForm() (tea.Model, tea.Cmd) {
	sel, ok := a.selectedRecord()
	if !ok {
		a.notice = "no record selected"
		return a, nil
	}

	desc := fmt.Sprintf("%s  %s  %.2f", sel.Date.Format(model.DateFormat), sel.Category, sel.Amount)
	a.targetID = sel.ID
	a.confirmed = false
	a.formKind = formDelete
	a.form = newConfirmForm("Delete this record?", desc, &a.confirmed).WithWidth(a.formWidth())
	return a, a.form.Init()
}

func (a App) openClearForm() (tea.Model, tea.Cmd) {
	if a.st == nil || a.st.Len() == 0 {
		a.notice = "nothing to delete"
		return a, nil
	}

	desc := fmt.Sprintf("All %d records will be removed from the file.", a.st.Len())
	a.confirmed = false
	a.formKind = formClear
	a.form = newConfirmForm("Delete ALL records?", desc, &a.confirmed).WithWidth(a.formWidth())
	return a, a.form.Init()
}

func (a App) openFilterForm() (tea.Model, tea.Cmd) {
	a.filterVals = filterValues{category: a.category}
	if a.year != 0 {
		a.filterVals.year = strconv.Itoa(a.year)
	}
	if a.month != 0 {
		a.filterVals.month = strconv.Itoa(a.month)
	}
	a.formKind = formFilter
	a.form = newFilterForm(&a.filterVals).WithWidth(a.formWidth())
	return a, a.form.Init()
}

// selectedRecord returns the record under the records tab cursor.
func (a App) selectedRecord() (model.Record, bool) {
	vis := a.visibleRecords()
	if len(vis) == 0 || a.recState.cursor < 0 || a.recState.cursor >= len(vis) {
		return model.Record{}, false
	}
	return vis[a.recState.cursor], true
}

// updateModalForm drives the open form and applies it on completion.
// Aborting changes nothing.
func (a App) updateModalForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.applyForm()
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	return a, cmd
}

// applyForm commits a completed form to the store or filter state.
func (a *App) applyForm() {
	switch a.formKind {

	case formAdd:
		rec, err := model.ParseRecord(a.recVals.date, a.recVals.category, a.recVals.amount, a.recVals.note)
		if err != nil {
			a.notice = err.Error()
			return
		}
		if err := a.st.Add(rec); err != nil {
			a.notice = err.Error()
			return
		}
		a.notice = "added " + rec.Category
		a.recompute()

	case formEdit:
		rec, err := model.ParseRecord(a.recVals.date, a.recVals.category, a.recVals.amount, a.recVals.note)
		if err != nil {
			a.notice = err.Error()
			return
		}
		if err := a.st.Update(a.targetID, rec); err != nil {
			a.notice = err.Error()
			return
		}
		a.notice = "updated"
		a.recompute()

	case formDelete:
		if !a.confirmed {
			return
		}
		if err := a.st.Delete(a.targetID); err != nil {
			a.notice = err.Error()
			return
		}
		a.notice = "deleted"
		a.recompute()

	case formClear:
		if !a.confirmed {
			return
		}
		n := a.st.Len()
		if err := a.st.Clear(); err != nil {
			a.notice = err.Error()
			return
		}
		a.notice = fmt.Sprintf("deleted %d records", n)
		a.recompute()

	case formFilter:
		a.year = 0
		if y := strings.TrimSpace(a.filterVals.year); y != "" {
			a.year, _ = strconv.Atoi(y)
		}
		a.month = 0
		if m := a.filterVals.month; m != "" {
			a.month, _ = strconv.Atoi(m)
		}
		a.category = strings.TrimSpace(a.filterVals.category)
		a.recompute()
		a.notice = "filter: " + a.filterText()
	}
}
