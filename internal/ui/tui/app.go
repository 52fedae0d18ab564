package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/unitconv/internal/convert/concentration"
	"github.com/aalvaropc/unitconv/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenUnits
	screenForm
	screenResult
	screenHelp
)

func (s screen) String() string {
	switch s {
	case screenHome:
		return "home"
	case screenUnits:
		return "units"
	case screenForm:
		return "form"
	case screenResult:
		return "result"
	case screenHelp:
		return "help"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

type menuItem struct {
	title  string
	desc   string
	family domain.Family
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type unitItem struct {
	info domain.UnitInfo
}

func (u unitItem) Title() string       { return fmt.Sprintf("%2d. %s", u.info.Code, u.info.Label) }
func (u unitItem) Description() string { return u.info.Key }
func (u unitItem) FilterValue() string { return u.info.Key + " " + u.info.Label }

type model struct {
	ctx   context.Context
	theme Theme
	deps  Deps

	scr   screen
	menu  list.Model
	units list.Model
	input textinput.Model

	family        domain.Family
	source        domain.UnitInfo
	target        domain.UnitInfo
	pickingTarget bool

	form    form
	running bool
	result  domain.ConversionResult
	toast   string

	width  int
	height int
}

func Run(ctx context.Context, deps Deps) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m := newModel(ctx, deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func newModel(ctx context.Context, deps Deps) model {
	t := DefaultTheme()

	items := make([]list.Item, 0, len(domain.Families)+2)
	for i, f := range domain.Families {
		items = append(items, menuItem{
			title:  fmt.Sprintf("%2d. %s", i+1, f.Label()),
			desc:   familyHint(f),
			family: f,
		})
	}
	items = append(items,
		menuItem{title: "Help", desc: "Unit codes, parameters and keys"},
		menuItem{title: "Quit", desc: "Exit unitconv"},
	)

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "unitconv"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	ul := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	ul.SetShowStatusBar(false)
	ul.SetFilteringEnabled(true)
	ul.SetShowHelp(false)

	in := textinput.New()
	in.CharLimit = 256
	in.Width = 48

	return model{
		ctx:   ctx,
		theme: t,
		deps:  deps,
		scr:   screenHome,
		menu:  l,
		units: ul,
		input: in,
	}
}

func familyHint(f domain.Family) string {
	if f == domain.FamilyConcentration {
		return "Molarity, molality, fractions, ppm, g/L, %m/v, %m/m"
	}
	return "Convert between " + strings.ToLower(f.Label()) + " units"
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		m.units.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case convertDoneMsg:
		return m.onConverted(msg)

	case mixtureLoadedMsg:
		return m.onMixtureLoaded(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenUnits:
			return m.updateUnits(msg)
		case screenForm:
			return m.updateForm(msg)
		case screenResult, screenHelp:
			return m.updateResult(msg)
		}
	}

	switch m.scr {
	case screenHome:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	case screenUnits:
		var cmd tea.Cmd
		m.units, cmd = m.units.Update(msg)
		return m, cmd
	case screenForm:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtering := m.menu.FilterState() == list.Filtering
	if !filtering {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			it, ok := m.menu.SelectedItem().(menuItem)
			if !ok {
				return m, nil
			}
			switch {
			case it.family != "":
				return m.openFamily(it.family), nil
			case strings.EqualFold(it.title, "Help"):
				m.scr = screenHelp
				return m, nil
			case strings.EqualFold(it.title, "Quit"):
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) openFamily(f domain.Family) model {
	m.toast = ""
	if m.deps.Units == nil {
		m.toast = "Unit catalog unavailable"
		return m
	}
	units, err := m.deps.Units.Execute(f)
	if err != nil {
		m.toast = userMessage(err)
		return m
	}

	items := make([]list.Item, 0, len(units))
	for _, u := range units {
		items = append(items, unitItem{info: u})
	}
	m.units.SetItems(items)
	m.units.ResetFilter()
	m.units.Select(0)

	m.family = f
	m.pickingTarget = false
	m.units.Title = f.Label() + ": source unit"
	m.scr = screenUnits
	return m
}

func (m model) updateUnits(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.units.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc":
			if m.pickingTarget {
				m.pickingTarget = false
				m.units.Title = m.family.Label() + ": source unit"
				return m, nil
			}
			return m.home(), nil
		case "q":
			return m.home(), nil
		case "enter":
			it, ok := m.units.SelectedItem().(unitItem)
			if !ok {
				return m, nil
			}
			if !m.pickingTarget {
				m.source = it.info
				m.pickingTarget = true
				m.units.Title = fmt.Sprintf("%s: %s to ...", m.family.Label(), it.info.Label)
				m.units.ResetFilter()
				return m, nil
			}
			m.target = it.info
			return m.startForm()
		}
	}

	var cmd tea.Cmd
	m.units, cmd = m.units.Update(msg)
	return m, cmd
}

func (m model) startForm() (tea.Model, tea.Cmd) {
	var need concentration.Requirement
	if m.family == domain.FamilyConcentration && m.deps.Analyze != nil {
		need = m.deps.Analyze.Execute(m.source.Key, m.target.Key)
	}
	m.form = newForm(m.family, need, m.deps.Config)
	m.toast = ""
	m.scr = screenForm
	m = m.focusField("")
	return m, textinput.Blink
}

// focusField prepares the input for the current prompt, prefilled with value.
func (m model) focusField(value string) model {
	fd := m.form.current()
	m.input.Reset()
	m.input.Placeholder = fd.placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	return m
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		if m.form.step > 0 {
			m.form.step--
			return m.focusField(m.form.values[m.form.current().key]), nil
		}
		m.scr = screenUnits
		m.pickingTarget = false
		m.units.Title = m.family.Label() + ": source unit"
		return m, nil

	case "enter":
		fd := m.form.current()
		value := strings.TrimSpace(m.input.Value())
		if err := m.form.check(fd.key, value, fd.optional); err != nil {
			m.toast = userMessage(err)
			return m, nil
		}
		m.toast = ""
		m.form.values[fd.key] = value

		if fd.key == fieldMixture {
			m.form.mixture = nil
			if !domain.LooksInline(value) {
				m.running = true
				return m, cmdLoadMixture(m.deps, value)
			}
		}
		return m.advance()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) advance() (tea.Model, tea.Cmd) {
	m.form.step++
	if !m.form.done() {
		return m.focusField(m.form.values[m.form.current().key]), nil
	}

	req, err := m.form.request(m.family, m.source.Key, m.target.Key)
	if err != nil {
		m.toast = userMessage(err)
		m.form.step = 0
		return m.focusField(m.form.values[fieldQuantity]), nil
	}
	m.running = true
	m.input.Blur()
	return m, cmdConvert(m.ctx, m.deps, req)
}

func (m model) onMixtureLoaded(msg mixtureLoadedMsg) (tea.Model, tea.Cmd) {
	m.running = false
	if m.scr != screenForm {
		return m, nil
	}
	if msg.err != nil {
		m.toast = userMessage(msg.err)
		return m.focusField(msg.ref), nil
	}
	mix := msg.mixture
	m.form.mixture = &mix

	mm, cmd := m.advance()
	if next, ok := mm.(model); ok && !next.form.done() && next.form.current().key == fieldComponent {
		next.input.SetValue(mix.Context.Selected().Name)
		next.input.CursorEnd()
		return next, cmd
	}
	return mm, cmd
}

func (m model) onConverted(msg convertDoneMsg) (tea.Model, tea.Cmd) {
	m.running = false
	if msg.err == nil {
		m.result = msg.res
		m.toast = ""
		m.scr = screenResult
		return m, nil
	}

	m.toast = userMessage(msg.err)
	if m.deps.Logger != nil {
		m.deps.Logger.Debug("tui.convert.failed", "kind", domain.KindOf(msg.err), "err", msg.err.Error())
	}

	if domain.IsKind(msg.err, domain.KindInvalidUnit) {
		m.scr = screenUnits
		m.pickingTarget = false
		m.units.Title = m.family.Label() + ": source unit"
		return m, nil
	}

	// Re-prompt the field the error is about, or start over.
	m.scr = screenForm
	m.form.step = 0
	var ce *domain.ConversionError
	if errors.As(msg.err, &ce) {
		if i, ok := m.form.indexOf(ce.Param); ok {
			m.form.step = i
		}
	}
	var oe *domain.OpError
	if errors.As(msg.err, &oe) && oe.Kind == domain.KindNotFound {
		param := "molar_mass"
		if strings.Contains(oe.Op, "mixture") {
			param = "mixture"
		}
		if i, ok := m.form.indexOf(param); ok {
			m.form.step = i
		}
	}
	return m.focusField(m.form.values[m.form.current().key]), textinput.Blink
}

func (m model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "b":
		return m.home(), nil
	case "enter", "n":
		if m.scr == screenResult {
			return m.openFamily(m.family), nil
		}
		return m.home(), nil
	case "r":
		if m.scr == screenResult {
			return m.startForm()
		}
	}
	return m, nil
}

func (m model) home() model {
	m.scr = screenHome
	m.pickingTarget = false
	m.running = false
	m.toast = ""
	m.input.Blur()
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("unitconv") + "\n" +
		m.theme.Subtitle.Render("Unit conversion for the lab bench: concentration, temperature, and eight more families") + "\n"

	var banner string
	if m.deps.WorkspaceFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.deps.WorkspaceRoot))
	} else {
		banner = m.theme.Help.Render("No workspace (run `unitconv init` to keep mixtures and substances)")
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Error.Render("✗ "+m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(m.menu.View()) + toast + "\n" + help)

	case screenUnits:
		help := m.theme.Help.Render("↑/↓ navigate • enter select • / search • esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.units.View()) + toast + "\n" + help)

	case screenForm:
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.formView()) + toast)

	case screenResult:
		help := m.theme.Help.Render("enter new conversion • r same units • esc home")
		card := m.theme.Card.Render(renderResult(m.theme, m.result, m.deps.Config.Output))
		return wrap.Render(header + "\n" + card + "\n" + help)

	case screenHelp:
		help := m.theme.Help.Render("esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(helpText()) + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) formView() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(fmt.Sprintf("%s: %s -> %s", m.family.Label(), m.source.Label, m.target.Label)))
	b.WriteString("\n\n")

	for i, fd := range m.form.fields {
		switch {
		case i < m.form.step:
			b.WriteString(m.theme.Help.Render(fmt.Sprintf("✓ %s: %s", fd.label, displayValue(m.form.values[fd.key]))))
			b.WriteString("\n")
		case i == m.form.step:
			b.WriteString(fd.label)
			b.WriteString("\n")
			b.WriteString(m.input.View())
			b.WriteString("\n")
			if fd.key == fieldComponent {
				if names := componentNames(m.form.components()); names != "" {
					b.WriteString(m.theme.Help.Render("components: " + names))
					b.WriteString("\n")
				}
			}
		}
	}

	b.WriteString("\n")
	if m.running {
		b.WriteString(m.theme.Help.Render("Working…"))
	} else {
		b.WriteString(m.theme.Help.Render("enter next • esc back"))
	}
	return b.String()
}

func displayValue(v string) string {
	if v == "" {
		return "(default)"
	}
	return clampString(v, 40)
}

func componentNames(comps []domain.MixtureComponent) string {
	names := make([]string, 0, len(comps))
	for i, c := range comps {
		names = append(names, fmt.Sprintf("%d. %s", i+1, c.Name))
	}
	return strings.Join(names, ", ")
}
