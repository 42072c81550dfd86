// ABOUTME: Bubble Tea model translating terminal input into dialog triggers
// ABOUTME: Renders the frame, fields, button row, and fuzzy-filtered select list

package btea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/popup-go/internal/sanitize"
	"github.com/mauromedda/popup-go/internal/textwidth"
	"github.com/mauromedda/popup-go/pkg/popup"
)

const (
	maxFrameWidth = 64
	iconMaxCols   = 16
)

// optionMatch is one visible row of a select list.
type optionMatch struct {
	index   int    // button index in the dialog
	label   string
	matched []int // byte offsets highlighted by the fuzzy filter
}

// dialogModel drives one dialog on screen. Focus moves through text fields
// first, then the button row; select dialogs replace the button row with a
// filterable option list.
type dialogModel struct {
	d      *popup.Dialog
	styles Styles
	md     *markdownRenderer

	width  int
	height int

	focus int // 0..nf-1 fields, nf..nf+nb-1 buttons

	isSelect bool
	filter   string
	matches  []optionMatch
	cursor   int
}

func newDialogModel(d *popup.Dialog, styles Styles) dialogModel {
	m := dialogModel{
		d:        d,
		styles:   styles,
		md:       newMarkdownRenderer(),
		isSelect: d.Kind() == "select",
	}
	if m.isSelect {
		m.matches = m.allOptions()
	} else {
		m.focus = m.initialFocus()
	}
	return m
}

// initialFocus starts on the first field, else on the default button.
func (m dialogModel) initialFocus() int {
	nf := len(m.d.Fields())
	if nf > 0 {
		return 0
	}
	for i, b := range m.d.Buttons() {
		if b.Role == popup.RoleDefault {
			return nf + i
		}
	}
	return nf
}

// Init returns nil; the program options handle screen setup.
func (m dialogModel) Init() tea.Cmd {
	return nil
}

// Update maps input to the dialog's resolution policy and quits once the
// dialog is finalized.
func (m dialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if !m.hitFrame(msg.X, msg.Y) {
				m.d.BackdropPressed()
			}
		}

	case tea.KeyMsg:
		if m.isSelect {
			m = m.updateSelect(msg)
		} else {
			m = m.updateForm(msg)
		}
	}

	if m.d.Finalized() {
		return m, tea.Quit
	}
	return m, nil
}

// updateForm handles keys for alert/confirm/prompt/loader layouts.
func (m dialogModel) updateForm(msg tea.KeyMsg) dialogModel {
	nf := len(m.d.Fields())
	nb := len(m.d.Buttons())

	switch msg.Type {
	case tea.KeyEsc:
		m.d.CancelTriggered()

	case tea.KeyEnter:
		switch {
		case m.focus < nf:
			if m.d.FieldSubmitted(m.focus) {
				m.focus++
			}
		case nb > 0:
			m.d.ButtonPressed(m.focus - nf)
		default:
			m.d.ConfirmTriggered()
		}

	case tea.KeyTab:
		if nf+nb > 0 {
			m.focus = (m.focus + 1) % (nf + nb)
		}

	case tea.KeyShiftTab:
		if nf+nb > 0 {
			m.focus = (m.focus + nf + nb - 1) % (nf + nb)
		}

	case tea.KeyLeft:
		if m.focus > nf {
			m.focus--
		}

	case tea.KeyRight:
		if m.focus >= nf && m.focus < nf+nb-1 {
			m.focus++
		}

	case tea.KeyBackspace:
		if m.focus < nf {
			v, err := m.d.FieldValue(m.focus)
			if err == nil && v != "" {
				runes := []rune(v)
				_ = m.d.SetFieldValue(m.focus, string(runes[:len(runes)-1]))
			}
		}

	case tea.KeySpace:
		m.typeIntoField(" ")

	case tea.KeyRunes:
		m.typeIntoField(string(msg.Runes))
	}
	return m
}

func (m dialogModel) typeIntoField(s string) {
	nf := len(m.d.Fields())
	if m.focus >= nf {
		return
	}
	v, err := m.d.FieldValue(m.focus)
	if err != nil {
		return
	}
	_ = m.d.SetFieldValue(m.focus, v+s)
}

// updateSelect handles keys for the fuzzy-filtered option list.
func (m dialogModel) updateSelect(msg tea.KeyMsg) dialogModel {
	switch msg.Type {
	case tea.KeyEsc:
		m.d.CancelTriggered()

	case tea.KeyEnter:
		if len(m.matches) > 0 {
			m.d.ButtonPressed(m.matches[m.cursor].index)
		}

	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case tea.KeyDown:
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}

	case tea.KeyBackspace:
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m = m.refreshMatches()
		}

	case tea.KeySpace:
		m.filter += " "
		m = m.refreshMatches()

	case tea.KeyRunes:
		m.filter += string(msg.Runes)
		m = m.refreshMatches()
	}
	return m
}

// allOptions lists every option unfiltered, in button order.
func (m dialogModel) allOptions() []optionMatch {
	btns := m.d.Buttons()
	out := make([]optionMatch, len(btns))
	for i, b := range btns {
		out[i] = optionMatch{index: i, label: b.Label}
	}
	return out
}

// refreshMatches re-runs the fuzzy filter and clamps the cursor.
func (m dialogModel) refreshMatches() dialogModel {
	if m.filter == "" {
		m.matches = m.allOptions()
	} else {
		btns := m.d.Buttons()
		labels := make([]string, len(btns))
		for i, b := range btns {
			labels[i] = b.Label
		}
		results := fuzzy.Find(m.filter, labels)
		matches := make([]optionMatch, len(results))
		for i, r := range results {
			matches[i] = optionMatch{index: r.Index, label: r.Str, matched: r.MatchedIndexes}
		}
		m.matches = matches
	}
	if m.cursor >= len(m.matches) {
		m.cursor = len(m.matches) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

// View renders the backdrop and the centered dialog frame.
func (m dialogModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		m.renderFrame(),
		lipgloss.WithWhitespaceBackground(m.styles.Backdrop),
	)
}

// renderFrame builds the bordered dialog box.
func (m dialogModel) renderFrame() string {
	contentW := m.contentWidth()
	var sections []string

	if lines := renderIcon(m.d.Icon(), iconMaxCols); len(lines) > 1 {
		for _, l := range lines {
			sections = append(sections, textwidth.Center(l, contentW))
		}
	}

	if title := sanitize.Clean(m.d.Title()); title != "" {
		line := textwidth.Truncate(title, contentW)
		if icon := m.inlineIcon(); icon != "" {
			line = textwidth.Truncate(icon+" "+title, contentW)
		}
		sections = append(sections, m.styles.Title.Render(textwidth.Center(line, contentW)))
	}

	if body := sanitize.Clean(m.d.Text()); body != "" {
		sections = append(sections, m.styles.Body.Render(m.md.render(body, contentW)))
	}

	if m.isSelect {
		sections = append(sections, m.renderSelect(contentW)...)
	} else {
		sections = append(sections, m.renderFields(contentW)...)
		if row := m.renderButtons(); row != "" {
			sections = append(sections, textwidth.Center(row, contentW))
		}
	}

	return m.styles.Frame.Render(strings.Join(sections, "\n\n"))
}

// inlineIcon returns a glyph icon for the title line; image icons render as
// their own block and return "".
func (m dialogModel) inlineIcon() string {
	lines := renderIcon(m.d.Icon(), iconMaxCols)
	if len(lines) == 1 {
		return lines[0]
	}
	return ""
}

// contentWidth fits the frame into the terminal, capped for readability.
func (m dialogModel) contentWidth() int {
	w := m.width - 10
	if w > maxFrameWidth {
		w = maxFrameWidth
	}
	if w < 16 {
		w = 16
	}
	return w
}

// renderFields draws each text field with value or placeholder, marking the
// focused one with a trailing cursor block.
func (m dialogModel) renderFields(contentW int) []string {
	fields := m.d.Fields()
	out := make([]string, 0, len(fields))
	for i, f := range fields {
		var line string
		switch {
		case f.Value == "" && f.Placeholder != "":
			line = m.styles.Placeholder.Render(textwidth.Truncate(f.Placeholder, contentW-2))
		default:
			line = m.styles.Field.Render(textwidth.Truncate(f.Value, contentW-2))
		}
		if i == m.focus {
			line += m.styles.FieldCursor.Render("▌")
		}
		out = append(out, "> "+line)
	}
	return out
}

// renderButtons draws the button row with role-based colors.
func (m dialogModel) renderButtons() string {
	btns := m.d.Buttons()
	if len(btns) == 0 {
		return ""
	}
	nf := len(m.d.Fields())
	parts := make([]string, len(btns))
	for i, b := range btns {
		style := m.styles.ButtonNormal
		switch b.Role {
		case popup.RoleDefault:
			style = m.styles.ButtonDefault
		case popup.RoleCancel:
			style = m.styles.ButtonCancel
		}
		if m.focus == nf+i {
			style = m.styles.ButtonFocus
		}
		parts[i] = style.Render("[ " + b.Label + " ]")
	}
	return strings.Join(parts, "  ")
}

// renderSelect draws the filter line and the option list.
func (m dialogModel) renderSelect(contentW int) []string {
	out := []string{"/ " + m.styles.Field.Render(m.filter) + m.styles.FieldCursor.Render("▌")}

	if len(m.matches) == 0 {
		out = append(out, m.styles.Placeholder.Render("no matches"))
		return out
	}

	for i, opt := range m.matches {
		prefix := "  "
		if i == m.cursor {
			prefix = "› "
		}
		label := m.highlightMatch(opt)
		label = textwidth.Truncate(label, contentW-2)
		if i == m.cursor {
			out = append(out, prefix+m.styles.SelectChoice.Render(label))
		} else {
			out = append(out, prefix+label)
		}
	}
	return out
}

// highlightMatch emphasizes the bytes the fuzzy filter matched. Truncation
// happens after highlighting, so offsets are computed on the raw label.
func (m dialogModel) highlightMatch(opt optionMatch) string {
	if len(opt.matched) == 0 {
		return opt.label
	}
	hit := make(map[int]bool, len(opt.matched))
	for _, idx := range opt.matched {
		hit[idx] = true
	}
	var b strings.Builder
	for idx, r := range opt.label {
		if hit[idx] {
			b.WriteString(m.styles.SelectMatch.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// hitFrame reports whether terminal cell (x, y) falls inside the rendered
// dialog frame.
func (m dialogModel) hitFrame(x, y int) bool {
	frame := m.renderFrame()
	fw := lipgloss.Width(frame)
	fh := lipgloss.Height(frame)
	x0 := (m.width - fw) / 2
	y0 := (m.height - fh) / 2
	return x >= x0 && x < x0+fw && y >= y0 && y < y0+fh
}
