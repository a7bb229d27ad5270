package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zeshan/pressbook/internal/app"
	"github.com/zeshan/pressbook/internal/domain"
	"github.com/zeshan/pressbook/internal/service"
)

type formMode int

const (
	formModeEdit formMode = iota
	formModePrompt
)

// itemAttr identifies which line item attribute a form field edits
type itemAttr int

const (
	attrNone itemAttr = iota
	attrDescription
	attrSpecs
	attrQuantity
	attrRate
)

// formField describes one focusable input in the form
type formField struct {
	label  string
	itemID string // empty for receipt-level fields
	attr   itemAttr
	apply  func(d *service.Draft, value string) // receipt-level fields only
}

type receiptSavedMsg struct {
	receipt *domain.Receipt
	err     error
}

type suggestionsMsg struct {
	suggestions []domain.JobSuggestion
}

// ReceiptFormModel is the new receipt entry form
type ReceiptFormModel struct {
	app   *app.App
	mode  formMode
	draft *service.Draft

	fields []textinput.Model
	descs  []formField
	focus  int

	payIdx int // index into domain.PaymentMethods

	promptInput textinput.Model
	suggesting  bool

	saving    bool
	err       error
	statusMsg string
}

// NewReceiptFormModel creates a fresh receipt form with an empty draft
func NewReceiptFormModel(a *app.App) tea.Model {
	draft := service.NewDraft()
	draft.TaxRate = a.Config.Receipt.DefaultTaxRate

	m := &ReceiptFormModel{
		app:   a,
		mode:  formModeEdit,
		draft: draft,
	}
	m.rebuildFields()

	m.promptInput = textinput.New()
	m.promptInput.Placeholder = "e.g. 500 wedding cards, golden embossed"
	m.promptInput.CharLimit = 200
	m.promptInput.Width = 60

	return m
}

// IsCapturingInput always returns true; the whole screen is a text form
func (m *ReceiptFormModel) IsCapturingInput() bool {
	return true
}

func (m *ReceiptFormModel) Init() tea.Cmd {
	if len(m.fields) > 0 {
		return m.fields[m.focus].Focus()
	}
	return nil
}

// rebuildFields reconstructs the input list from the draft. Called whenever
// line items are added or removed; receipt-level values survive via the draft.
func (m *ReceiptFormModel) rebuildFields() {
	newInput := func(placeholder, value string, width int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 200
		in.Width = width
		in.SetValue(value)
		return in
	}

	d := m.draft
	m.fields = m.fields[:0]
	m.descs = m.descs[:0]

	add := func(desc formField, in textinput.Model) {
		m.descs = append(m.descs, desc)
		m.fields = append(m.fields, in)
	}

	add(formField{label: "Customer name", apply: func(d *service.Draft, v string) { d.Customer.Name = v }},
		newInput("Customer name", d.Customer.Name, 40))
	add(formField{label: "Phone", apply: func(d *service.Draft, v string) { d.Customer.Phone = v }},
		newInput("03xx-xxxxxxx", d.Customer.Phone, 20))
	add(formField{label: "Email", apply: func(d *service.Draft, v string) { d.Customer.Email = v }},
		newInput("Email (optional)", d.Customer.Email, 40))
	add(formField{label: "Address", apply: func(d *service.Draft, v string) { d.Customer.Address = v }},
		newInput("Address (optional)", d.Customer.Address, 40))

	for i := range d.Items {
		item := &d.Items[i]
		n := i + 1
		add(formField{label: fmt.Sprintf("Item %d job", n), itemID: item.ID, attr: attrDescription},
			newInput("Job description", item.Description, 40))
		add(formField{label: fmt.Sprintf("Item %d specs", n), itemID: item.ID, attr: attrSpecs},
			newInput("Size, paper, colors (optional)", item.Specs, 40))
		add(formField{label: fmt.Sprintf("Item %d qty", n), itemID: item.ID, attr: attrQuantity},
			newInput("1", formatNum(item.Quantity), 10))
		add(formField{label: fmt.Sprintf("Item %d rate", n), itemID: item.ID, attr: attrRate},
			newInput("0", formatNum(item.Rate), 10))
	}

	add(formField{label: "Discount", apply: func(d *service.Draft, v string) { d.Discount = parseNum(v) }},
		newInput("0", formatNum(d.Discount), 10))
	add(formField{label: "Advance", apply: func(d *service.Draft, v string) { d.AdvancePayment = parseNum(v) }},
		newInput("0", formatNum(d.AdvancePayment), 10))
	add(formField{label: "Notes", apply: func(d *service.Draft, v string) { d.Notes = v }},
		newInput("Notes (optional)", d.Notes, 50))

	if m.focus >= len(m.fields) {
		m.focus = len(m.fields) - 1
	}
}

// syncFocused pushes the focused input's value into the draft
func (m *ReceiptFormModel) syncFocused() {
	desc := m.descs[m.focus]
	value := m.fields[m.focus].Value()

	if desc.itemID != "" {
		switch desc.attr {
		case attrDescription:
			m.draft.SetItemDescription(desc.itemID, value)
		case attrSpecs:
			m.draft.SetItemSpecs(desc.itemID, value)
		case attrQuantity:
			m.draft.SetItemQuantity(desc.itemID, parseNum(value))
		case attrRate:
			m.draft.SetItemRate(desc.itemID, parseNum(value))
		}
		return
	}
	if desc.apply != nil {
		desc.apply(m.draft, value)
	}
}

func (m *ReceiptFormModel) saveReceipt() tea.Cmd {
	draft := m.draft
	return func() tea.Msg {
		receipt, err := m.app.ReceiptService.Finalize(context.Background(), draft)
		return receiptSavedMsg{receipt: receipt, err: err}
	}
}

func (m *ReceiptFormModel) fetchSuggestions() tea.Cmd {
	prompt := m.promptInput.Value()
	return func() tea.Msg {
		suggestions := m.app.Suggest.JobSuggestions(context.Background(), prompt)
		return suggestionsMsg{suggestions: suggestions}
	}
}

func (m *ReceiptFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case receiptSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, func() tea.Msg { return ViewReceiptMsg{ID: msg.receipt.ID} }

	case suggestionsMsg:
		m.suggesting = false
		m.mode = formModeEdit
		if len(msg.suggestions) == 0 {
			m.statusMsg = "No suggestions for that description"
			return m, m.fields[m.focus].Focus()
		}
		// Only the first suggestion pre-fills a line item
		id := m.draft.AddSuggestedItem(msg.suggestions[0])
		m.rebuildFields()
		m.focusItemField(id, attrDescription)
		return m, m.fields[m.focus].Focus()
	}

	if m.mode == formModePrompt {
		return m.updatePrompt(msg)
	}
	return m.updateForm(msg)
}

func (m *ReceiptFormModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		m.statusMsg = ""

		switch msg.String() {
		case "esc":
			// Discard the draft
			return m, func() tea.Msg { return SwitchScreenMsg{Screen: ScreenDashboard} }

		case "tab", "down":
			m.syncFocused()
			m.fields[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.fields)
			return m, m.fields[m.focus].Focus()

		case "shift+tab", "up":
			m.syncFocused()
			m.fields[m.focus].Blur()
			m.focus = (m.focus - 1 + len(m.fields)) % len(m.fields)
			return m, m.fields[m.focus].Focus()

		case "enter":
			m.syncFocused()
			if m.focus == len(m.fields)-1 {
				m.err = nil
				m.saving = true
				return m, m.saveReceipt()
			}
			m.fields[m.focus].Blur()
			m.focus++
			return m, m.fields[m.focus].Focus()

		case "ctrl+a":
			m.syncFocused()
			id := m.draft.AddItem()
			m.rebuildFields()
			m.focusItemField(id, attrDescription)
			return m, m.fields[m.focus].Focus()

		case "ctrl+d":
			// Remove the line item under the cursor; the last item stays
			desc := m.descs[m.focus]
			if desc.itemID != "" {
				m.syncFocused()
				m.draft.RemoveItem(desc.itemID)
				m.rebuildFields()
				return m, m.fields[m.focus].Focus()
			}
			return m, nil

		case "ctrl+p":
			m.payIdx = (m.payIdx + 1) % len(domain.PaymentMethods)
			m.draft.PaymentMethod = domain.PaymentMethods[m.payIdx]
			return m, nil

		case "ctrl+g":
			if !m.app.Suggest.Enabled() {
				m.statusMsg = "Suggestions unavailable (no API key configured)"
				return m, nil
			}
			m.syncFocused()
			m.fields[m.focus].Blur()
			m.mode = formModePrompt
			m.promptInput.SetValue("")
			return m, m.promptInput.Focus()

		case "ctrl+s":
			m.syncFocused()
			m.err = nil
			m.saving = true
			return m, m.saveReceipt()
		}
	}

	// Update the focused text input, then keep the draft in sync
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	m.syncFocused()
	return m, cmd
}

func (m *ReceiptFormModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = formModeEdit
			m.promptInput.Blur()
			return m, m.fields[m.focus].Focus()
		case "enter":
			if strings.TrimSpace(m.promptInput.Value()) == "" {
				return m, nil
			}
			m.suggesting = true
			m.promptInput.Blur()
			return m, m.fetchSuggestions()
		}
	}

	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

// focusItemField moves focus to the given attribute of the given line item
func (m *ReceiptFormModel) focusItemField(itemID string, attr itemAttr) {
	for i, desc := range m.descs {
		if desc.itemID == itemID && desc.attr == attr {
			m.focus = i
			return
		}
	}
}

func (m *ReceiptFormModel) View() string {
	if m.mode == formModePrompt {
		return m.viewPrompt()
	}
	return m.viewForm()
}

func (m *ReceiptFormModel) viewForm() string {
	var s string
	s += titleStyle.Render("New Receipt") + "\n\n"

	for i, desc := range m.descs {
		indicator := "  "
		labelStyle := subtitleStyle
		if i == m.focus {
			indicator = "> "
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		s += fmt.Sprintf("%s%-16s %s\n", indicator, labelStyle.Render(desc.label+":"), m.fields[i].View())
	}

	s += fmt.Sprintf("\n  %-16s %s  %s\n",
		subtitleStyle.Render("Payment:"),
		string(domain.PaymentMethods[m.payIdx]),
		subtitleStyle.Render("(ctrl+p to change)"),
	)

	// Running totals
	totals := m.draft.Totals()
	s += "\n"
	s += fmt.Sprintf("  Subtotal: %s   Tax (%.0f%%): %s   Total: %s   Balance: %s\n",
		formatMoney(totals.Subtotal),
		m.draft.TaxRate,
		formatMoney(totals.Tax),
		lipgloss.NewStyle().Bold(true).Render(formatMoney(totals.Total)),
		formatMoney(totals.RemainingBalance),
	)

	if m.saving {
		s += "\n" + subtitleStyle.Render("  Saving...") + "\n"
	}
	if m.statusMsg != "" {
		s += "\n" + lipgloss.NewStyle().Foreground(warningColor).Render("  "+m.statusMsg) + "\n"
	}
	if m.err != nil {
		s += "\n" + lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("  Error: %v", m.err)) + "\n"
	}

	s += "\n" + helpStyle.Render("  tab: next field  ctrl+a: add item  ctrl+d: remove item  ctrl+g: suggest  ctrl+s: save  esc: discard")

	return s
}

func (m *ReceiptFormModel) viewPrompt() string {
	var s string
	s += titleStyle.Render("Suggest Line Item") + "\n\n"
	s += "  Describe the print job in plain words:\n\n"
	s += "  " + m.promptInput.View() + "\n"

	if m.suggesting {
		s += "\n" + subtitleStyle.Render("  Asking for suggestions...") + "\n"
	}

	s += "\n" + helpStyle.Render("  enter: suggest  esc: back to form")
	return s
}

// formatNum renders a numeric field value without trailing zeros
func formatNum(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseNum reads a numeric field value, treating blanks and garbage as zero
func parseNum(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
