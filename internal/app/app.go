package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/afuentes/quizcoach/internal/ledger"
	"github.com/afuentes/quizcoach/internal/llm"
	"github.com/afuentes/quizcoach/internal/questions"
	"github.com/afuentes/quizcoach/internal/remote"
	"github.com/afuentes/quizcoach/internal/router"
	"github.com/afuentes/quizcoach/internal/screen"
	"github.com/afuentes/quizcoach/internal/screens/home"
	"github.com/afuentes/quizcoach/internal/store"
	"github.com/afuentes/quizcoach/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	// DBPath is the SQLite file. Empty means store.DefaultDBPath().
	DBPath string
}

// appModel is the root Bubble Tea model.
type appModel struct {
	router    *router.Router
	ledgerSvc *ledger.Service
	width     int
	height    int
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m appModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	stats := m.ledgerSvc.View().Stats
	header := layout.RenderHeader(title, stats.Level, stats.CurrentStreak, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run wires the storage, ledger and question sources together and
// starts the Bubble Tea program.
func Run(opts Options) error {
	st, ledgerSvc, err := openLedger(opts.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	statsClient := newStatsClient()
	source, err := buildSource(st, statsClient)
	if err != nil {
		return err
	}

	catalog := loadCatalog(statsClient)

	homeScreen := home.New(source, ledgerSvc, statsClient, st.EventRepo(), catalog)
	m := appModel{
		router:    router.New(homeScreen),
		ledgerSvc: ledgerSvc,
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// OpenLedger opens the store and loads the ledger, resolving the
// default database path when dbPath is empty. Shared with the
// non-interactive commands.
func OpenLedger(dbPath string) (*store.Store, *ledger.Service, error) {
	return openLedger(dbPath)
}

func openLedger(dbPath string) (*store.Store, *ledger.Service, error) {
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	ledgerSvc, err := ledger.NewService(context.Background(), st.LedgerRepo(), st.EventRepo())
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return st, ledgerSvc, nil
}

// newStatsClient returns a backend client, or nil for offline play.
func newStatsClient() *remote.Client {
	baseURL := remote.BaseURLFromEnv()
	if baseURL == "" {
		return nil
	}
	return remote.NewClient(baseURL, remote.DefaultTimeout)
}

// buildSource assembles the question source chain: backend REST when
// configured, else LLM generation when an API key is discovered, and
// the embedded bank as the always-available fallback.
func buildSource(st *store.Store, statsClient *remote.Client) (questions.Source, error) {
	local, err := questions.NewLocalBank(nil)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	var primary questions.Source
	switch {
	case statsClient != nil:
		primary = questions.NewRemoteSource(statsClient)
	default:
		if cfg, ok := llm.DiscoverConfig(); ok {
			provider, err := llm.NewProvider(context.Background(), cfg, st.EventRepo())
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: LLM provider unavailable, using local bank: %v\n", err)
			} else {
				primary = questions.NewLLMSource(provider)
			}
		}
	}

	return questions.NewFallback(primary, local), nil
}

// loadCatalog fetches the category catalog from the backend when one
// is configured, falling back to the built-in defaults.
func loadCatalog(statsClient *remote.Client) []questions.CategoryInfo {
	if statsClient == nil {
		return questions.DefaultCatalog()
	}
	ctx, cancel := context.WithTimeout(context.Background(), remote.DefaultTimeout)
	defer cancel()
	entries, err := statsClient.Categories(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: category fetch failed, using defaults: %v\n", err)
		return questions.DefaultCatalog()
	}
	return questions.MergeCatalog(entries)
}
