package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/feedme/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/feedme/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/feedme/internal/adapters/driving/tui/views/wizard"
	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/logger"
)

// App hosts the recipe wizard. It loads known ingredients so the wizard
// can tell new ones apart, and saves the finished recipe.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	wizard *wizard.View

	// Outcome: exactly one of saved, cancelled or err is set on exit.
	saved     *domain.Recipe
	cancelled bool
	err       error

	width, height int
	ready         bool
}

var _ tea.Model = (*App)(nil)

// NewApp builds the wizard app. Quantity, Recipe and Ingredient ports are
// all required.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		wizard: wizard.NewView(s, ports.Quantity),
	}, nil
}

// WithContext sets the context used for store calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("feedme - new recipe"),
		a.wizard.Init(),
		a.loadIngredients(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.wizard.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.cancelled = true
			return a, tea.Quit
		}
		a.wizard, cmd = a.wizard.Update(msg)
		return a, cmd

	case messages.IngredientsLoaded:
		if msg.Err != nil {
			// Without the list every ingredient is treated as new.
			logger.Warn("tui: loading ingredients: %v", msg.Err)
			return a, nil
		}
		a.wizard.SetKnown(msg.Ingredients)
		return a, nil

	case messages.RecipeCompleted:
		return a, a.saveRecipe(msg.Recipe)

	case messages.RecipeSaved:
		a.saved = msg.Recipe
		a.err = msg.Err
		return a, tea.Quit

	case messages.Cancelled:
		a.cancelled = true
		return a, tea.Quit
	}

	a.wizard, cmd = a.wizard.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.wizard.View()
}

func (a *App) loadIngredients() tea.Cmd {
	ctx := a.ctx
	ingredients := a.ports.Ingredient
	return func() tea.Msg {
		list, err := ingredients.List(ctx)
		return messages.IngredientsLoaded{Ingredients: list, Err: err}
	}
}

func (a *App) saveRecipe(recipe domain.Recipe) tea.Cmd {
	ctx := a.ctx
	recipes := a.ports.Recipe
	return func() tea.Msg {
		saved, err := recipes.Create(ctx, recipe)
		return messages.RecipeSaved{Recipe: saved, Err: err}
	}
}

// Run starts the wizard and blocks until it finishes. It returns the
// stored recipe, or nil when the user cancelled.
func (a *App) Run() (*domain.Recipe, error) {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	if a.err != nil {
		return nil, a.err
	}
	return a.saved, nil
}

// Saved returns the stored recipe, if any.
func (a *App) Saved() *domain.Recipe {
	return a.saved
}

// Cancelled reports whether the user left without saving.
func (a *App) Cancelled() bool {
	return a.cancelled
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Wizard returns the wizard view.
func (a *App) Wizard() *wizard.View {
	return a.wizard
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.wizard.SetDimensions(width, height)
}
