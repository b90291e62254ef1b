package ui

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/natefinch/atomic"
	"github.com/yildizm/landing/internal/brand"
	"github.com/yildizm/landing/internal/carousel"
	"github.com/yildizm/landing/internal/chart"
	"github.com/yildizm/landing/internal/clock"
	"github.com/yildizm/landing/internal/emoji"
	"github.com/yildizm/landing/internal/loader"
	"github.com/yildizm/landing/internal/logger"
	"github.com/yildizm/landing/internal/stats"
	"github.com/yildizm/landing/internal/ui/components"
)

// Section is one part of the landing page
type Section int

const (
	SectionStats Section = iota
	SectionChart
	SectionBrands
	SectionCarousel

	sectionCount
)

var sectionNames = [...]string{"Portfolio", "Emissions", "Brands", "Collections"}

func (s Section) String() string {
	if s < 0 || s >= sectionCount {
		return "unknown"
	}
	return sectionNames[s]
}

// revealSteps is the number of animation frames of the statistic panels.
const revealSteps = 20

// Options configures the root model
type Options struct {
	Clock         clock.Clock
	Engine        *chart.Engine
	Metrics       []stats.Metric
	Timings       loader.Timings
	SkipLoader    bool
	LoaderOnly    bool // quit once the transition completes
	ToastDuration time.Duration
	ExportPath    string
	ClampBars     bool
	Logger        *logger.Logger
}

// Model is the root TUI model: the loading transition followed by the
// landing page sections.
type Model struct {
	opts Options
	log  *logger.Logger

	events    chan tea.Msg
	done      chan struct{}
	closeOnce sync.Once

	machine  *loader.Machine
	state    loader.State
	landing  bool
	quitting bool

	engine   *chart.Engine
	card     *brand.Card
	carousel *carousel.Carousel
	product  int

	section   Section
	reveal    int
	status    string
	statusErr bool

	width  int
	height int
}

// NewModel creates the root model. Zero options fall back to the sample
// data, default timings and the wall clock.
func NewModel(opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Engine == nil {
		opts.Engine = chart.NewEngine(chart.SampleDataset())
	}
	if opts.Metrics == nil {
		opts.Metrics = stats.Portfolio()
	}
	if opts.Timings == (loader.Timings{}) {
		opts.Timings = loader.DefaultTimings()
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = carousel.DefaultToastDuration
	}
	if opts.ExportPath == "" {
		opts.ExportPath = chart.DefaultExportName
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	m := &Model{
		opts:   opts,
		log:    opts.Logger.WithComponent("ui"),
		events: make(chan tea.Msg, eventQueueSize),
		done:   make(chan struct{}),
		engine: opts.Engine,
		card:   brand.NewCard(),
		width:  80,
		height: 24,
	}

	m.machine = loader.New(opts.Clock,
		func() { m.send(loaderDoneMsg{}) },
		loader.WithTimings(opts.Timings),
		loader.WithObserver(func(s loader.State) { m.send(loaderStateMsg{state: s}) }),
	)
	m.carousel = carousel.New(opts.Clock,
		carousel.WithToastDuration(opts.ToastDuration),
		carousel.WithOnChange(func() { m.send(toastClearedMsg{}) }),
	)

	return m
}

// send queues a background event unless the model is closed
func (m *Model) send(msg tea.Msg) {
	select {
	case m.events <- msg:
	case <-m.done:
	}
}

// Close stops the loader and carousel timers and releases pending listeners.
func (m *Model) Close() {
	m.closeOnce.Do(func() {
		m.machine.Cancel()
		m.carousel.Close()
		close(m.done)
	})
}

// Landing reports whether the landing page is showing
func (m *Model) Landing() bool { return m.landing }

// LoaderState returns the last loader state the model received
func (m *Model) LoaderState() loader.State { return m.state }

// Section returns the focused landing page section
func (m *Model) Section() Section { return m.section }

// Status returns the last status line, e.g. the export result
func (m *Model) Status() string { return m.status }

// Init starts the loading transition
func (m *Model) Init() tea.Cmd {
	if m.opts.SkipLoader {
		m.landing = true
		return tea.Batch(listen(m.events, m.done), revealTick())
	}

	if err := m.machine.Start(); err != nil {
		m.log.Warn("Loader did not start: %v", err)
		m.landing = true
		return tea.Batch(listen(m.events, m.done), revealTick())
	}
	m.log.DebugWithFields("Loader started", []logger.Field{logger.Duration(m.opts.Timings.Tick)})

	return listen(m.events, m.done)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case loaderStateMsg:
		m.state = msg.state
		return m, listen(m.events, m.done)

	case loaderDoneMsg:
		return m.handleLoaderDone()

	case toastClearedMsg:
		return m, listen(m.events, m.done)

	case exportResultMsg:
		return m.handleExportResult(msg)

	case revealTickMsg:
		if m.reveal < revealSteps {
			m.reveal++
		}
		if m.reveal < revealSteps {
			return m, revealTick()
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleLoaderDone() (tea.Model, tea.Cmd) {
	m.log.Debug("Loader complete")
	m.state = loader.State{Progress: loader.MaxProgress, Phase: loader.PhaseDone}

	if m.opts.LoaderOnly {
		return m.quit()
	}

	m.landing = true
	return m, tea.Batch(listen(m.events, m.done), revealTick())
}

func (m *Model) handleExportResult(msg exportResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Warn("Export failed: %v", msg.err)
		m.status = fmt.Sprintf("%s Export failed: %v", emoji.GetEmoji("error"), msg.err)
		m.statusErr = true
		return m, nil
	}

	m.log.InfoWithFields("Dataset exported", []logger.Field{logger.F("path", msg.path)})
	m.status = fmt.Sprintf("%s Downloaded %s", emoji.GetEmoji("download"), msg.path)
	m.statusErr = false
	return m, nil
}

// handleKeyPress handles keyboard input
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c", "esc":
		return m.quit()
	}

	if !m.landing {
		if key == "enter" || key == " " {
			return m.skipLoader()
		}
		return m, nil
	}

	switch key {
	case "tab":
		m.section = (m.section + 1) % sectionCount
		return m, nil
	case "shift+tab":
		m.section = (m.section + sectionCount - 1) % sectionCount
		return m, nil
	}

	switch m.section {
	case SectionStats:
		return m.handleStatsKey(key)
	case SectionChart:
		return m.handleChartKey(key)
	case SectionBrands:
		return m.handleBrandKey(key)
	case SectionCarousel:
		return m.handleCarouselKey(key)
	}
	return m, nil
}

// skipLoader cancels the transition. The pending listener stays in flight
// and is released by Close.
func (m *Model) skipLoader() (tea.Model, tea.Cmd) {
	m.machine.Cancel()
	m.log.Debug("Loader skipped")

	if m.opts.LoaderOnly {
		return m.quit()
	}

	m.landing = true
	return m, revealTick()
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.Close()
	return m, tea.Quit
}

func (m *Model) handleStatsKey(key string) (tea.Model, tea.Cmd) {
	if key == "r" {
		m.reveal = 0
		return m, revealTick()
	}
	return m, nil
}

func (m *Model) handleChartKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "1":
		m.engine.SetCategory(chart.CategoryAll)
	case "2":
		m.engine.SetCategory(chart.CategoryRefurbishment)
	case "3":
		m.engine.SetCategory(chart.CategoryNewBuild)
	case "c":
		m.engine.SetStatus(chart.StatusComplete)
	case "e":
		m.engine.SetStatus(chart.StatusEstimate)
	case "d":
		return m, m.exportCmd()
	}
	return m, nil
}

func (m *Model) handleBrandKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		m.card.Prev()
	case "down", "j":
		m.card.Next()
	}
	return m, nil
}

func (m *Model) handleCarouselKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "left", "h":
		m.carousel.Activate(carousel.Left)
		m.product = 0
	case "right", "l":
		m.carousel.Activate(carousel.Right)
		m.product = 0
	case "up", "k":
		if m.product > 0 {
			m.product--
		}
	case "down", "j":
		if m.product < len(m.carousel.ActivePanel().Products)-1 {
			m.product++
		}
	case "enter", " ", "a":
		products := m.carousel.ActivePanel().Products
		if m.product < len(products) {
			m.carousel.AddToBag(products[m.product].Name)
		}
	}
	return m, nil
}

// exportCmd writes the unfiltered dataset to the export path
func (m *Model) exportCmd() tea.Cmd {
	path := m.opts.ExportPath
	engine := m.engine

	return func() tea.Msg {
		data, err := engine.Export()
		if err != nil {
			return exportResultMsg{path: path, err: err}
		}
		if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
			return exportResultMsg{path: path, err: fmt.Errorf("failed to write %s: %w", path, err)}
		}
		return exportResultMsg{path: path}
	}
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return m.renderGoodbyeScreen()
	}
	if !m.landing {
		return m.renderLoaderScreen()
	}
	return m.renderLandingPage()
}

func (m *Model) style(s lipgloss.Style, text string) string {
	if IsColorDisabled() {
		return text
	}
	return s.Render(text)
}

func (m *Model) renderGoodbyeScreen() string {
	styles := GetStyles()
	goodbye := m.style(styles.Success, "Thanks for visiting! "+emoji.GetEmoji("wave"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, goodbye)
}

func (m *Model) renderLoaderScreen() string {
	styles := GetStyles()

	var content string
	switch m.state.Phase {
	case loader.PhaseBreaking:
		content = m.style(styles.Progress, breakShape)
	case loader.PhaseZooming, loader.PhaseDone:
		return m.renderFlash()
	default:
		bar := components.NewProgressBar(40, loader.MaxProgress)
		bar.SetProgress(m.state.Progress)
		bar.Plain = IsColorDisabled()

		content = lipgloss.JoinVertical(lipgloss.Center,
			m.style(styles.Title, emoji.GetEmoji("loader")+" Loading"),
			"",
			bar.Render(),
			"",
			m.style(styles.Muted, "enter to skip • q to quit"),
		)
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// breakShape is the L mark split apart as the loader breaks.
const breakShape = `████
████
████
████

     ████████████
     ████████████`

func (m *Model) renderFlash() string {
	if IsColorDisabled() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "",
		lipgloss.WithWhitespaceBackground(GetTheme().Flash))
}

func (m *Model) renderLandingPage() string {
	var body string
	switch m.section {
	case SectionStats:
		body = m.renderStats()
	case SectionChart:
		body = m.renderChart()
	case SectionBrands:
		body = m.renderBrands()
	case SectionCarousel:
		body = m.renderCarousel()
	}

	parts := []string{m.renderTabs(), "", body, ""}
	if m.status != "" {
		style := GetStyles().Success
		if m.statusErr {
			style = GetStyles().Error
		}
		parts = append(parts, m.style(style, m.status))
	}
	parts = append(parts, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderTabs() string {
	styles := GetStyles()

	tabs := make([]string, 0, sectionCount)
	for s := Section(0); s < sectionCount; s++ {
		if s == m.section {
			label := " " + s.String() + " "
			if IsColorDisabled() {
				label = "[" + s.String() + "]"
			}
			tabs = append(tabs, m.style(styles.Selected, label))
			continue
		}
		tabs = append(tabs, m.style(styles.Muted, " "+s.String()+" "))
	}
	return strings.Join(tabs, " ")
}

func (m *Model) renderHelp() string {
	help := "tab next section • q quit"
	switch m.section {
	case SectionStats:
		help = "r replay • " + help
	case SectionChart:
		help = "1 all • 2 refurbishment • 3 new build • c complete • e estimate • d download • " + help
	case SectionBrands:
		help = "↑/↓ select • " + help
	case SectionCarousel:
		help = "←/→ panel • ↑/↓ product • enter add to bag • " + help
	}
	return m.style(GetStyles().Muted, help)
}

func (m *Model) renderStats() string {
	dashboard := components.NewStatsDashboard(m.opts.Metrics, m.width)
	dashboard.SetReveal(float64(m.reveal) / revealSteps)
	for _, card := range dashboard.Cards {
		if card.Metric.LinkKind == stats.LinkDownload {
			card.SetIcon(emoji.GetEmoji("download"))
		} else {
			card.SetIcon(emoji.GetEmoji("arrow"))
		}
	}
	return dashboard.Render()
}

func (m *Model) renderChart() string {
	view := m.engine.View()

	bars := components.NewBarChart("Embodied Carbon Emissions", view, 12)
	bars.Clamp = m.opts.ClampBars
	bars.Plain = IsColorDisabled()

	return lipgloss.JoinVertical(lipgloss.Left, m.renderFilterOptions(view.Filter), "", bars.Render())
}

func (m *Model) renderFilterOptions(filter chart.FilterState) string {
	mark := func(on bool) string {
		if on {
			return emoji.GetEmoji("check")
		}
		return emoji.GetEmoji("unchecked")
	}

	categories := []chart.Category{chart.CategoryAll, chart.CategoryRefurbishment, chart.CategoryNewBuild}
	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		parts = append(parts, mark(filter.Category == c)+" "+c.Label())
	}

	statuses := make([]string, 0, 2)
	for _, s := range chart.Statuses() {
		statuses = append(statuses, mark(filter.Status == s)+" "+s.Label())
	}

	return fmt.Sprintf("Type: %s   Status: %s", strings.Join(parts, "  "), strings.Join(statuses, "  "))
}

func (m *Model) renderBrands() string {
	list := components.NewBrandList(m.card, emoji.GetEmoji("check"), emoji.GetEmoji("unchecked"), 40)
	list.SetFocused(true)
	list.Plain = IsColorDisabled()
	return list.Render()
}

func (m *Model) renderCarousel() string {
	styles := GetStyles()
	active := m.carousel.Active()

	panels := make([]string, 0, 2)
	for _, panel := range m.carousel.Panels() {
		list := components.NewProductList(panel, emoji.GetEmoji("bag"), 34)
		list.Plain = true
		isActive := panel.Side == active
		if isActive {
			list.SetFocused(true)
			list.Selected = m.product
		}

		content := lipgloss.JoinVertical(lipgloss.Left,
			m.style(styles.Muted, panel.Badge),
			list.Render(),
			"",
			lipgloss.NewStyle().Width(34).Render(panel.Description),
		)

		if IsColorDisabled() {
			panels = append(panels, content)
			continue
		}

		frame := styles.Panel
		if isActive {
			frame = styles.ActivePanel
		}
		panels = append(panels, frame.Width(38).Render(content))
	}

	out := lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	if msg := m.carousel.Message(); msg != "" {
		out = lipgloss.JoinVertical(lipgloss.Left, out, "", m.style(styles.Success, emoji.GetEmoji("bag")+" "+msg))
	}
	return out
}

// Run runs the TUI until the user quits
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
