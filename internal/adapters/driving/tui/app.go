package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/components/status"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/keymap"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/messages"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/styles"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/views/dashboard"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/views/discovery"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/views/jobs"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/views/menu"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/views/networking"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/views/offers"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/views/resume"
	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/tui/views/settings"
	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
)

// sidebarWidth is the horizontal space taken by the menu, border included.
const sidebarWidth = 28

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// The menu sidebar and the active screen share the window. Focus is on
// either the menu or the screen; esc returns it to the menu.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView       *menu.View
	dashboardView  *dashboard.View
	jobsView       *jobs.View
	offersView     *offers.View
	resumeView     *resume.View
	networkingView *networking.View
	discoveryView  *discovery.View
	settingsView   *settings.View
	statusBar      *status.Bar

	// menuFocused is true while keystrokes go to the menu.
	menuFocused bool

	// err holds the last error that occurred.
	err error

	width  int
	height int

	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// Returns an error if required ports are missing.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	bar := status.NewBar(s, km)
	bar.SetStorage(ports.Storage)
	bar.SetAIReady(ports.Assistant != nil && ports.Assistant.Available())

	menuView := menu.NewView(s)
	menuView.SetActive(ports.Views.ActiveView())
	menuView.SetFocused(true)

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		keymap:         km,
		menuView:       menuView,
		dashboardView:  dashboard.NewView(s, ports.Tracker),
		jobsView:       jobs.NewView(s, ports.Tracker),
		offersView:     offers.NewView(s, ports.Tracker, ports.Assistant),
		resumeView:     resume.NewView(s, ports.Tracker, ports.Assistant),
		networkingView: networking.NewView(s, ports.Tracker),
		discoveryView:  discovery.NewView(s, ports.Assistant),
		settingsView:   settings.NewView(s, ports.Settings, ports.Tracker, ports.Storage),
		statusBar:      bar,
		menuFocused:    true,
	}, nil
}

// WithContext sets the context for the application.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("hirewire - Job Search"),
		a.initActive(),
	)
}

// initActive initialises the screen the view selector points at.
func (a *App) initActive() tea.Cmd {
	switch a.ports.Views.ActiveView() {
	case domain.ViewDashboard:
		return a.dashboardView.Init()
	case domain.ViewJobs:
		return a.jobsView.Init()
	case domain.ViewOffers:
		return a.offersView.Init()
	case domain.ViewResume:
		return a.resumeView.Init()
	case domain.ViewNetworking:
		return a.networkingView.Init()
	case domain.ViewDiscovery:
		return a.discoveryView.Init()
	case domain.ViewSettings:
		return a.settingsView.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.ViewChanged:
		return a, a.switchView(msg.View)

	case messages.FocusMenu:
		a.focusMenu()
		return a, nil

	case messages.JobDeleted:
		a.jobsView, cmd = a.jobsView.Update(msg)
		a.reportResult("Application deleted", msg.Err)
		return a, cmd

	case messages.ContactDeleted:
		a.networkingView, cmd = a.networkingView.Update(msg)
		a.reportResult("Contact deleted", msg.Err)
		return a, cmd

	case messages.GenerationCompleted:
		switch msg.Kind {
		case messages.GenerateGuide, messages.GenerateMock:
			a.offersView, cmd = a.offersView.Update(msg)
		case messages.GenerateSummary:
			a.resumeView, cmd = a.resumeView.Update(msg)
		case messages.GenerateDiscovery:
			a.discoveryView, cmd = a.discoveryView.Update(msg)
		}
		a.reportResult("Generation complete", msg.Err)
		return a, cmd

	case messages.SettingsLoaded:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.RecordsPurged:
		a.settingsView, cmd = a.settingsView.Update(msg)
		if msg.Err == nil {
			a.ports.Views.Reset()
			a.menuView.SetActive(a.ports.Views.ActiveView())
			a.focusMenu()
			cmd = tea.Batch(cmd, a.initActive())
		}
		a.reportResult("All records purged", msg.Err)
		return a, cmd

	case messages.ErrorOccurred:
		a.reportResult("", msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.updateActive(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.menuFocused {
		var cmd tea.Cmd
		a.menuView, cmd = a.menuView.Update(msg)
		return a, cmd
	}

	if !a.capturing() {
		switch {
		case keymap.Matches(key, a.keymap.Back):
			a.focusMenu()
			return a, nil
		case keymap.Matches(key, a.keymap.Quit):
			return a, tea.Quit
		}
	}
	return a, a.updateActive(msg)
}

// capturing reports whether the active screen is consuming raw keystrokes.
func (a *App) capturing() bool {
	switch a.ports.Views.ActiveView() {
	case domain.ViewJobs:
		return a.jobsView.Capturing()
	case domain.ViewNetworking:
		return a.networkingView.Capturing()
	case domain.ViewSettings:
		return a.settingsView.Capturing()
	}
	return false
}

// updateActive forwards a message to the active screen.
func (a *App) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.ports.Views.ActiveView() {
	case domain.ViewDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	case domain.ViewJobs:
		a.jobsView, cmd = a.jobsView.Update(msg)
	case domain.ViewOffers:
		a.offersView, cmd = a.offersView.Update(msg)
	case domain.ViewResume:
		a.resumeView, cmd = a.resumeView.Update(msg)
	case domain.ViewNetworking:
		a.networkingView, cmd = a.networkingView.Update(msg)
	case domain.ViewDiscovery:
		a.discoveryView, cmd = a.discoveryView.Update(msg)
	case domain.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	}
	return cmd
}

func (a *App) switchView(view domain.View) tea.Cmd {
	if err := a.ports.Views.SetActiveView(view); err != nil {
		a.reportResult("", err)
		return nil
	}
	a.menuView.SetActive(view)
	a.menuView.SetFocused(false)
	a.menuFocused = false
	a.statusBar.Clear()
	return a.initActive()
}

func (a *App) focusMenu() {
	a.menuFocused = true
	a.menuView.SetFocused(true)
}

// reportResult shows an outcome in the status bar.
func (a *App) reportResult(done string, err error) {
	a.err = err
	switch {
	case err != nil:
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(err.Error())
	case done != "":
		a.statusBar.SetState(status.StateDone)
		a.statusBar.SetMessage(done)
	}
}

// View implements tea.Model.
// It renders the menu, the active screen and the status bar.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, a.menuView.View(), " ", a.activeView())
	return body + "\n" + a.statusBar.View()
}

func (a *App) activeView() string {
	switch a.ports.Views.ActiveView() {
	case domain.ViewJobs:
		return a.jobsView.View()
	case domain.ViewOffers:
		return a.offersView.View()
	case domain.ViewResume:
		return a.resumeView.View()
	case domain.ViewNetworking:
		return a.networkingView.View()
	case domain.ViewDiscovery:
		return a.discoveryView.View()
	case domain.ViewSettings:
		return a.settingsView.View()
	default:
		return a.dashboardView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// ActiveView returns the active screen.
func (a *App) ActiveView() domain.View {
	return a.ports.Views.ActiveView()
}

// MenuFocused reports whether keystrokes go to the menu.
func (a *App) MenuFocused() bool {
	return a.menuFocused
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions and sizes every screen.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	contentWidth := max(width-sidebarWidth-1, 20)
	contentHeight := max(height-1, 5)

	a.menuView.SetDimensions(sidebarWidth, contentHeight)
	a.dashboardView.SetDimensions(contentWidth, contentHeight)
	a.jobsView.SetDimensions(contentWidth, contentHeight)
	a.offersView.SetDimensions(contentWidth, contentHeight)
	a.resumeView.SetDimensions(contentWidth, contentHeight)
	a.networkingView.SetDimensions(contentWidth, contentHeight)
	a.discoveryView.SetDimensions(contentWidth, contentHeight)
	a.settingsView.SetDimensions(contentWidth, contentHeight)
	a.statusBar.SetWidth(width)
}
