package ui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/storefront/internal/kv"
	"github.com/five82/storefront/internal/listing"
	"github.com/five82/storefront/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewProducts View = iota
	ViewDetail
	ViewCart
	ViewFavorites
)

// ThemeKey is the storage key holding the selected theme name.
const ThemeKey = "theme"

const defaultRefresh = 250 * time.Millisecond

// Options configures the UI.
type Options struct {
	Context  context.Context
	Store    *state.Store
	Storage  kv.Storage
	Logger   *slog.Logger
	PageSize int
	Currency string
	Refresh  time.Duration

	// Reload starts a background catalog load and calls done once the store
	// has been updated. It returns false when a load is already running.
	Reload func(done func()) bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx      context.Context
	store    *state.Store
	storage  kv.Storage
	logger   *slog.Logger
	reload   func(done func()) bool
	pageSize int
	currency string
	refresh  time.Duration

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	keys        keyMap
	help        help.Model
	spinner     spinner.Model
	showHelp    bool

	// Data state
	snapshot state.Snapshot
	pager    listing.Pager
	page     listing.Page

	// Cursors
	productRow  int
	cartRow     int
	favoriteRow int

	// Detail state
	detailID   int
	detailBack View

	// Status line
	status    string
	statusErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = listing.DefaultPageSize
	}

	currency := opts.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = defaultRefresh
	}

	themeName := defaultThemeName
	if opts.Storage != nil {
		if name, ok := opts.Storage.Get(ThemeKey); ok {
			themeName = name
		}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:         ctx,
		store:       opts.Store,
		storage:     opts.Storage,
		logger:      logger,
		reload:      opts.Reload,
		pageSize:    pageSize,
		currency:    currency,
		refresh:     refresh,
		theme:       GetTheme(themeName),
		currentView: ViewProducts,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     sp,
	}
	m.applyTheme()
	m.refreshSnapshot()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.refresh),
		m.spinner.Tick,
	}
	if cmd := m.loadCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		if m.ctx.Err() != nil {
			return m, tea.Quit
		}
		m.refreshSnapshot()
		return m, tickCmd(m.refresh)

	case loadDoneMsg:
		m.refreshSnapshot()
		if m.snapshot.Products.Error != "" {
			m.setError("Load failed: " + m.snapshot.Products.Error)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		cmd := m.loadCmd()
		if cmd == nil {
			m.setStatus("Catalog is already loading")
		}
		return m, cmd

	case key.Matches(msg, m.keys.Tab):
		m.toggleView()
		return m, nil

	case key.Matches(msg, m.keys.ViewProducts):
		m.currentView = ViewProducts
		return m, nil

	case key.Matches(msg, m.keys.ViewCart):
		m.currentView = ViewCart
		return m, nil

	case key.Matches(msg, m.keys.ViewFavorites):
		m.currentView = ViewFavorites
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.currentView == ViewDetail {
			m.currentView = m.detailBack
		} else {
			m.currentView = ViewProducts
		}
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewProducts:
		m.handleProductsKey(msg)
	case ViewDetail:
		m.handleDetailKey(msg)
	case ViewCart:
		m.handleCartKey(msg)
	case ViewFavorites:
		m.handleFavoritesKey(msg)
	}
	return m, nil
}

// toggleView cycles Products -> Cart -> Favorites -> Products.
func (m *Model) toggleView() {
	switch m.currentView {
	case ViewProducts:
		m.currentView = ViewCart
	case ViewCart:
		m.currentView = ViewFavorites
	default:
		m.currentView = ViewProducts
	}
}

// openDetail switches to the detail view for id.
func (m *Model) openDetail(id int) {
	m.detailBack = m.currentView
	m.detailID = id
	m.currentView = ViewDetail
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	if m.storage == nil {
		return
	}
	if err := m.storage.Set(ThemeKey, m.theme.Name); err != nil {
		m.logger.Warn("save theme failed", slog.String("theme", m.theme.Name), slog.Any("err", err))
		m.setError("Could not save theme: " + err.Error())
		return
	}
	m.setStatus("Theme: " + m.theme.Name)
}

// applyTheme restyles the bubbles components for the current theme.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.spinner.Style = styles.AccentText
	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.WarningText
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
}

// refreshSnapshot pulls the latest store state and re-derives the visible
// page, resetting the product cursor whenever the filters change.
func (m *Model) refreshSnapshot() {
	if m.store == nil {
		return
	}
	m.snapshot = m.store.Snapshot()
	if m.pager.Sync(m.snapshot.Filters) {
		m.productRow = 0
	}
	m.page = m.pager.View(m.snapshot.Products.Items, m.snapshot.Filters, m.pageSize)

	m.productRow = clampRow(m.productRow, len(m.page.Items))
	m.cartRow = clampRow(m.cartRow, len(m.snapshot.Cart))
	m.favoriteRow = clampRow(m.favoriteRow, len(m.snapshot.FavoriteProducts()))
}

// report records the outcome of a store mutation on the status line.
func (m *Model) report(action string, err error, ok string) {
	m.refreshSnapshot()
	if err != nil {
		m.logger.Error("persist state failed", slog.String("action", action), slog.Any("err", err))
		m.setError("Could not save " + action + ": " + err.Error())
		return
	}
	m.logger.Debug("state updated", slog.String("action", action))
	if ok != "" {
		m.setStatus(ok)
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func clampRow(row, count int) int {
	if count == 0 || row < 0 {
		return 0
	}
	if row >= count {
		return count - 1
	}
	return row
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	body := lipgloss.NewStyle().
		Width(m.width).
		Height(max(bodyHeight, 0)).
		MaxHeight(max(bodyHeight, 0)).
		Padding(0, 1).
		Render(m.renderContent())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewProducts:
		return m.renderProducts()
	case ViewDetail:
		return m.renderDetail()
	case ViewCart:
		return m.renderCart()
	case ViewFavorites:
		return m.renderFavorites()
	default:
		return ""
	}
}

// renderFooter renders the status line above the short help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	var b strings.Builder
	switch {
	case m.status == "":
		b.WriteString(styles.FaintText.Render(" "))
	case m.statusErr:
		b.WriteString(styles.DangerText.Render(m.status))
	default:
		b.WriteString(styles.SuccessText.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return styles.Footer.Width(m.width).Render(b.String())
}

// Messages

type tickMsg time.Time

type loadDoneMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadCmd starts a catalog load and blocks until it completes. It returns
// nil when no reload hook is configured or a load is already in flight.
func (m Model) loadCmd() tea.Cmd {
	if m.reload == nil {
		return nil
	}
	done := make(chan struct{})
	if !m.reload(func() { close(done) }) {
		return nil
	}
	return func() tea.Msg {
		<-done
		return loadDoneMsg{}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		// Cancelled by signal; treat as a clean exit.
		return nil
	}
	return err
}
