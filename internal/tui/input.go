package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/seqgen/internal/format"
	"github.com/agbru/seqgen/internal/sequence"
)

type inputField int

const (
	fieldFirst inputField = iota
	fieldDiff
	fieldTerms
	fieldCount
)

const (
	inputLabelWidth = 24
	inputBoxWidth   = 18
)

var fieldLabels = [fieldCount]string{
	fieldFirst: "First term (a₁)",
	fieldDiff:  "Common difference (d)",
	fieldTerms: "Terms (n)",
}

// textField is a single-line editable value with a cursor position. Input is
// filtered to ASCII digits plus '.' and '-', so byte offsets are rune
// offsets.
type textField struct {
	value  string
	cursor int
}

func newTextField(v string) textField {
	return textField{value: v, cursor: len(v)}
}

func (f textField) insert(r rune) textField {
	f.value = f.value[:f.cursor] + string(r) + f.value[f.cursor:]
	f.cursor++
	return f
}

func (f textField) backspace() textField {
	if f.cursor > 0 {
		f.value = f.value[:f.cursor-1] + f.value[f.cursor:]
		f.cursor--
	}
	return f
}

func (f textField) deleteChar() textField {
	if f.cursor < len(f.value) {
		f.value = f.value[:f.cursor] + f.value[f.cursor+1:]
	}
	return f
}

func (f textField) left() textField {
	if f.cursor > 0 {
		f.cursor--
	}
	return f
}

func (f textField) right() textField {
	if f.cursor < len(f.value) {
		f.cursor++
	}
	return f
}

func (f textField) home() textField {
	f.cursor = 0
	return f
}

func (f textField) end() textField {
	f.cursor = len(f.value)
	return f
}

// inputState holds the three parameter fields and which one is active.
type inputState struct {
	fields [fieldCount]textField
	active inputField
}

// allowedRune reports whether r may be typed into the given field. The term
// count accepts digits only; the float fields also accept '.' and '-'.
func allowedRune(field inputField, r rune) bool {
	if unicode.IsDigit(r) {
		return true
	}
	if field == fieldTerms {
		return false
	}
	return r == '.' || r == '-'
}

// parseRequest converts the field values into a generation request. Range
// validation is left to the generation service.
func (st inputState) parseRequest() (sequence.Request, error) {
	first, err := strconv.ParseFloat(st.fields[fieldFirst].value, 64)
	if err != nil {
		return sequence.Request{}, fmt.Errorf("invalid first term: %q", st.fields[fieldFirst].value)
	}
	diff, err := strconv.ParseFloat(st.fields[fieldDiff].value, 64)
	if err != nil {
		return sequence.Request{}, fmt.Errorf("invalid common difference: %q", st.fields[fieldDiff].value)
	}
	terms, err := strconv.Atoi(st.fields[fieldTerms].value)
	if err != nil {
		return sequence.Request{}, fmt.Errorf("invalid term count: %q", st.fields[fieldTerms].value)
	}
	return sequence.Request{FirstTerm: first, CommonDiff: diff, NumTerms: terms}, nil
}

// setRequest fills the fields from a request, cursors at end.
func (st *inputState) setRequest(req sequence.Request) {
	st.fields[fieldFirst] = newTextField(format.FormatTerm(req.FirstTerm))
	st.fields[fieldDiff] = newTextField(format.FormatTerm(req.CommonDiff))
	st.fields[fieldTerms] = newTextField(strconv.Itoa(req.NumTerms))
}

// updateInput handles keys while the INPUT section is focused.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		return m.startGeneration()
	case key.Matches(msg, m.keys.Up):
		if m.input.active == 0 {
			m.focusedSection = SectionSequence
		} else {
			m.input.active--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.input.active == fieldCount-1 {
			m.focusedSection = SectionPresets
		} else {
			m.input.active++
		}
		return m, nil
	}

	f := m.input.fields[m.input.active]
	switch msg.Type {
	case tea.KeyBackspace:
		f = f.backspace()
	case tea.KeyDelete:
		f = f.deleteChar()
	case tea.KeyLeft:
		f = f.left()
	case tea.KeyRight:
		f = f.right()
	case tea.KeyHome:
		f = f.home()
	case tea.KeyEnd:
		f = f.end()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if allowedRune(m.input.active, r) {
				f = f.insert(r)
			}
		}
	}
	m.input.fields[m.input.active] = f
	return m, nil
}

// renderInputSection renders the parameter entry form.
func (m Model) renderInputSection() string {
	title := m.styles.BoxTitle
	if m.focusedSection == SectionInput && !m.showHelp {
		title = title.Foreground(m.styles.Primary.GetForeground())
	}

	var b strings.Builder
	b.WriteString(title.Render("INPUT"))
	b.WriteString("\n")

	for i := range int(fieldCount) {
		field := inputField(i)
		f := m.input.fields[field]

		boxStyle := m.styles.Input
		text := f.value
		if m.focusedSection == SectionInput && m.input.active == field {
			boxStyle = m.styles.InputFocused
			text = f.value[:f.cursor] + "|" + f.value[f.cursor:]
		}

		row := lipgloss.JoinHorizontal(lipgloss.Center,
			m.styles.InputLabel.Width(inputLabelWidth).Render(fieldLabels[field]),
			boxStyle.Width(inputBoxWidth).Render(text),
		)
		b.WriteString(row)
		b.WriteString("\n")
	}

	if req, err := m.input.parseRequest(); err == nil {
		b.WriteString(m.styles.Muted.Render("Preview: ") +
			m.styles.Info.Render(format.FormatFormula(req.FirstTerm, req.CommonDiff)))
	} else {
		b.WriteString(m.styles.Warning.Render(err.Error()))
	}
	b.WriteString("\n")

	b.WriteString(m.styles.HelpKey.Render("[g]") + m.styles.HelpDesc.Render(" Generate  ") +
		m.styles.HelpKey.Render("[s]") + m.styles.HelpDesc.Render(" Save  ") +
		m.styles.HelpKey.Render("[r]") + m.styles.HelpDesc.Render(" Reset"))

	return b.String()
}
