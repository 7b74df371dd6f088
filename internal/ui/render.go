package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/NewsLens/internal/classify"
	"github.com/yildizm/NewsLens/internal/emoji"
	"github.com/yildizm/NewsLens/internal/session"
	"github.com/yildizm/NewsLens/internal/ui/components"
	"github.com/yildizm/NewsLens/internal/view"
)

func (m *Model) renderLoadingScreen() string {
	loading := m.styles.Title.Render("Initializing NewsLens...")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, loading)
}

func (m *Model) renderGoodbyeScreen() string {
	goodbye := m.styles.Success.Render("Thanks for using NewsLens! " + emoji.GetEmoji("door"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, goodbye)
}

func (m *Model) narrow() bool {
	return m.width < m.narrowWidth
}

func (m *Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	var body string
	if m.narrow() {
		paneWidth := m.width
		input := m.renderInputPane(paneWidth)
		results := m.renderResultPane(paneWidth)
		// results move above the input to bring a fresh prediction into view
		if m.focus == focusResults && m.session.State() == session.StateSuccess {
			body = lipgloss.JoinVertical(lipgloss.Left, results, input)
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, input, results)
		}
	} else {
		left := m.width / 2
		right := m.width - left
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderInputPane(left),
			m.renderResultPane(right),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) renderHeader() string {
	title := m.styles.Title.Render(emoji.GetEmoji("newspaper") + " NewsLens")
	subtitle := m.styles.Muted.Render("news headline classifier")
	if m.baseURL != "" {
		subtitle += m.styles.Muted.Render(" @ " + m.baseURL)
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", subtitle)
	status := m.renderHealth()

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(status) - 1
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, left, status)
	}
	return left + strings.Repeat(" ", gap) + status
}

func (m *Model) renderHealth() string {
	switch {
	case !m.health.known:
		return m.styles.Muted.Render("○ checking backend...")
	case m.health.healthy:
		return lipgloss.NewStyle().Foreground(m.styles.Theme.Success).Render("● " + m.health.text)
	default:
		return lipgloss.NewStyle().Foreground(m.styles.Theme.Error).Render("● " + m.health.text)
	}
}

// paneStyle sizes a bordered pane so that its total width is width
func (m *Model) paneStyle(width int, focused bool) (lipgloss.Style, int) {
	style := m.styles.Pane
	if focused {
		style = m.styles.FocusedPane
	}
	content := width - style.GetHorizontalFrameSize()
	if content < 10 {
		content = 10
	}
	return style.Width(content + style.GetHorizontalPadding()), content
}

// inputWidth is the content width of the input pane for the current layout
func (m *Model) inputWidth() int {
	width := m.width
	if !m.narrow() {
		width = m.width / 2
	}
	_, content := m.paneStyle(width, true)
	return content
}

func (m *Model) renderInputPane(width int) string {
	style, _ := m.paneStyle(width, m.focus == focusInput)

	count := classify.Length(m.input.Value())
	counter := lipgloss.NewStyle().
		Foreground(m.styles.Theme.CounterColor(classify.TierFor(count))).
		Render(fmt.Sprintf("%d / %d", count, classify.MaxTextLength))

	var button string
	if m.session.Busy() {
		button = m.styles.ButtonDisabled.Render(m.spinner.Render())
	} else {
		button = m.styles.Button.Render(emoji.GetEmoji("magic") + " Classify Headline")
	}

	lines := []string{
		m.styles.Subheader.Render("Headline"),
		m.input.View(),
		"",
		counter,
		"",
		button,
	}
	if len(m.examples) > 0 {
		lines = append(lines, m.styles.Muted.Render("ctrl+e inserts an example headline"))
	}

	return style.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderResultPane(width int) string {
	style, content := m.paneStyle(width, m.focus == focusResults)

	var body string
	switch m.session.State() {
	case session.StateLoading:
		spinner := *m.spinner
		spinner.Label = "Analyzing headline..."
		body = spinner.Render()
	case session.StateError:
		body = m.styles.Error.Width(content).Render(emoji.GetEmoji("error") + " " + m.session.ErrorMessage())
	case session.StateSuccess:
		body = m.renderPrediction(content)
	default:
		body = m.styles.Muted.Width(content).Render(emoji.GetEmoji("brain") + " Enter a headline and press enter to classify it")
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, m.styles.Subheader.Render("Result"), "", body))
}

func (m *Model) renderPrediction(width int) string {
	pv := m.prediction
	theme := m.styles.Theme

	badge := m.styles.Badge.Background(lipgloss.Color(pv.Accent.From)).Render(pv.Label) +
		lipgloss.NewStyle().Foreground(lipgloss.Color(pv.Accent.To)).Render("▌")

	confidence := components.NewBar(width - 8)
	confidence.SetFraction(pv.BarFraction)
	confidence.Fill = theme.TierColor(pv.Tier)
	confidence.Track = theme.Track
	confidence.Label = pv.ConfidenceText

	sections := []string{
		badge,
		"",
		m.styles.Subheader.Render("Confidence"),
		confidence.Render(),
		"",
		m.styles.Subheader.Render("All Probabilities"),
	}
	sections = append(sections, m.renderProbabilityRows(width)...)
	sections = append(sections,
		"",
		m.styles.Subheader.Render("Preprocessed Text"),
		m.styles.Muted.Width(width).Render(pv.Preprocessed),
		"",
		m.renderCopyButton(),
	)

	return strings.Join(sections, "\n")
}

func (m *Model) renderProbabilityRows(width int) []string {
	labelWidth := 0
	for _, row := range m.prediction.Rows {
		if w := lipgloss.Width(row.Label); w > labelWidth {
			labelWidth = w
		}
	}

	barWidth := width - labelWidth - 9
	if barWidth < 5 {
		barWidth = 5
	}

	rows := make([]string, 0, len(m.prediction.Rows))
	for _, row := range m.prediction.Rows {
		if row.Index >= m.revealed {
			rows = append(rows, "")
			continue
		}

		bar := components.NewBar(barWidth)
		bar.SetFraction(row.Fraction)
		bar.Fill = lipgloss.Color(view.AccentFor(row.Label).From)
		bar.Track = m.styles.Theme.Track

		label := lipgloss.NewStyle().Width(labelWidth).Render(row.Label)
		pct := lipgloss.NewStyle().Width(7).Align(lipgloss.Right).Render(row.PercentText)
		rows = append(rows, label+" "+bar.Render()+pct)
	}
	return rows
}

func (m *Model) renderCopyButton() string {
	if m.session.Copied() {
		return m.styles.ButtonDone.Render(emoji.GetEmoji("check") + " Copied!")
	}
	return m.styles.Button.Render(emoji.GetEmoji("clipboard") + " Copy Result")
}

func (m *Model) renderFooter() string {
	bindings := m.keys.footerBindings()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.styles.Key.Render(h.Key)+" "+m.styles.Muted.Render(h.Desc))
	}
	return " " + strings.Join(parts, m.styles.Muted.Render(" • "))
}

func (m *Model) modalWidth() int {
	w := m.width - 4
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) renderModelInfo() string {
	width := m.modalWidth()
	content := width - m.styles.Modal.GetHorizontalFrameSize()

	lines := []string{m.styles.Title.Render(emoji.GetEmoji("gear") + " Model Information"), ""}

	switch {
	case m.modal.loading:
		spinner := *m.spinner
		spinner.Label = "Loading model information..."
		lines = append(lines, spinner.Render())
	case m.modal.err != "":
		lines = append(lines, m.styles.Error.Width(content).Render(emoji.GetEmoji("error")+" "+m.modal.err))
	case m.modal.info != nil:
		lines = append(lines, m.renderModelInfoBody(content)...)
	}

	lines = append(lines, "", m.styles.Muted.Render("esc to close"))

	modal := m.styles.Modal.Width(content + m.styles.Modal.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m *Model) renderModelInfoBody(width int) []string {
	info := m.modal.info
	lines := []string{m.styles.Subheader.Render("Architecture")}
	for _, field := range info.Architecture {
		lines = append(lines, m.styles.Key.Render(field.Name+":")+" "+field.Value)
	}

	lines = append(lines, "", m.styles.Subheader.Render("Categories"))
	chips := make([]string, 0, len(info.Categories))
	for _, category := range info.Categories {
		chips = append(chips, m.styles.Chip.Background(lipgloss.Color(view.AccentFor(category).From)).Render(category))
	}
	lines = append(lines, lipgloss.NewStyle().Width(width).Render(strings.Join(chips, " ")))

	lines = append(lines, "", m.styles.Subheader.Render("Preprocessing Steps"))
	for _, step := range info.Steps {
		lines = append(lines, fmt.Sprintf("%d. %s", step.Number, step.Text))
	}
	return lines
}

func (m *Model) renderAlert() string {
	body := m.styles.Error.Render(emoji.GetEmoji("error")+" "+m.alert) + "\n\n" +
		m.styles.Muted.Render("press enter to dismiss")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.styles.Alert.Render(body))
}
