// Package wizard provides the step-by-step recipe entry view.
package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/feedme/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/feedme/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/feedme/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/feedme/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/feedme/internal/core/domain"
	"github.com/custodia-labs/feedme/internal/core/ports/driving"
)

// Step identifies the wizard stage.
type Step int

const (
	// StepName asks for the recipe name.
	StepName Step = iota
	// StepIngredient asks for the next ingredient. Empty moves on.
	StepIngredient
	// StepConfirm asks whether an unknown ingredient should be created.
	StepConfirm
	// StepQuantity asks for the ingredient quantity.
	StepQuantity
	// StepNotes asks for optional ingredient notes.
	StepNotes
	// StepInstructions collects instruction lines. Empty saves.
	StepInstructions
	// StepDone means the recipe has been handed off for saving.
	StepDone
)

// String returns the step name.
func (s Step) String() string {
	switch s {
	case StepName:
		return "name"
	case StepIngredient:
		return "ingredient"
	case StepConfirm:
		return "confirm"
	case StepQuantity:
		return "quantity"
	case StepNotes:
		return "notes"
	case StepInstructions:
		return "instructions"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// Row is an ingredient collected by the wizard.
type Row struct {
	Name     string
	Quantity string
	Notes    string

	// New is true when the ingredient will be created on save.
	New bool
}

// View is the recipe wizard.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	help     help.Model
	field    *input.Field
	quantity driving.QuantityService

	step         Step
	name         string
	rows         []Row
	pending      Row
	instructions []string
	known        map[string]domain.Ingredient
	errMsg       string

	width  int
	height int
}

// NewView creates a wizard. The quantity service powers the live preview
// and may be nil.
func NewView(s *styles.Styles, quantity driving.QuantityService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	v := &View{
		styles:   s,
		keymap:   keymap.DefaultKeyMap(),
		help:     help.New(),
		field:    input.NewField(s, ""),
		quantity: quantity,
		known:    make(map[string]domain.Ingredient),
	}
	v.enter(StepName)
	return v
}

// Init starts the cursor blinking.
func (v *View) Init() tea.Cmd {
	return v.field.Init()
}

// SetKnown records ingredients that already exist. Names match without
// regard to case.
func (v *View) SetKnown(ingredients []domain.Ingredient) {
	for _, ing := range ingredients {
		v.known[strings.ToLower(ing.Name)] = ing
	}
}

// SetDimensions sets the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.field.SetWidth(width)
}

// Update handles key messages.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || v.step == StepDone {
		return v, nil
	}

	if keymap.Matches(keyMsg.String(), v.keymap.Cancel) {
		v.step = StepDone
		return v, func() tea.Msg { return messages.Cancelled{} }
	}

	if v.step == StepConfirm {
		return v, v.handleConfirm(keyMsg)
	}

	if keymap.Matches(keyMsg.String(), v.keymap.Next) {
		return v, v.handleNext(strings.TrimSpace(v.field.Value()))
	}

	if v.step == StepIngredient || v.step == StepName {
		v.errMsg = ""
	}
	var cmd tea.Cmd
	v.field, cmd = v.field.Update(msg)
	return v, cmd
}

func (v *View) handleConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Yes):
		v.pending.New = true
		v.enter(StepQuantity)
	case keymap.Matches(msg.String(), v.keymap.No):
		v.pending = Row{}
		v.enter(StepIngredient)
	}
	return nil
}

func (v *View) handleNext(value string) tea.Cmd {
	switch v.step {
	case StepName:
		if value == "" {
			v.errMsg = "a recipe needs a name"
			return nil
		}
		v.name = value
		v.enter(StepIngredient)

	case StepIngredient:
		if value == "" {
			v.enter(StepInstructions)
			return nil
		}
		if v.hasRow(value) {
			v.errMsg = fmt.Sprintf("'%s' already added", value)
			v.field.Reset()
			return nil
		}
		v.pending = Row{Name: value}
		if known, ok := v.known[strings.ToLower(value)]; ok {
			v.pending.Name = known.Name
			v.enter(StepQuantity)
			return nil
		}
		v.enter(StepConfirm)

	case StepQuantity:
		v.pending.Quantity = value
		v.enter(StepNotes)

	case StepNotes:
		v.pending.Notes = value
		v.rows = append(v.rows, v.pending)
		v.pending = Row{}
		v.enter(StepIngredient)

	case StepInstructions:
		if value == "" {
			v.step = StepDone
			recipe := v.Recipe()
			return func() tea.Msg { return messages.RecipeCompleted{Recipe: recipe} }
		}
		v.instructions = append(v.instructions, value)
		v.field.Prompt(v.stepLabel(), "")
	}
	return nil
}

func (v *View) hasRow(name string) bool {
	for _, r := range v.rows {
		if strings.EqualFold(r.Name, name) {
			return true
		}
	}
	return false
}

// enter switches to a step and resets the input.
func (v *View) enter(step Step) {
	v.step = step
	v.errMsg = ""
	placeholder := ""
	switch step {
	case StepName:
		placeholder = "e.g. Pancakes"
	case StepIngredient:
		placeholder = "empty to continue"
	case StepQuantity:
		placeholder = "e.g. 1 1/2 cups"
	case StepNotes:
		placeholder = "optional"
	case StepInstructions:
		placeholder = "empty to save"
	case StepConfirm, StepDone:
	}
	v.field.Prompt(v.stepLabel(), placeholder)
}

func (v *View) stepLabel() string {
	switch v.step {
	case StepName:
		return "Recipe name"
	case StepIngredient:
		return "Ingredient"
	case StepQuantity:
		return "Quantity for " + v.pending.Name
	case StepNotes:
		return "Notes for " + v.pending.Name
	case StepInstructions:
		return fmt.Sprintf("Step %d", len(v.instructions)+1)
	case StepConfirm, StepDone:
	}
	return ""
}

// Preview describes how the quantity being typed will be read.
// It is empty outside the quantity step.
func (v *View) Preview() string {
	if v.step != StepQuantity || v.quantity == nil {
		return ""
	}
	text := strings.TrimSpace(v.field.Value())
	if text == "" {
		return ""
	}

	q := v.quantity.ParseQuantity(text)
	if q.IsResolved() {
		return fmt.Sprintf("= %s (%s)", q.Display(), q.Unit.Family)
	}
	return "not a known unit, kept as written"
}

// Recipe returns the recipe collected so far. Instruction lines are
// joined with newlines.
func (v *View) Recipe() domain.Recipe {
	recipe := domain.Recipe{
		Name:         v.name,
		Instructions: strings.Join(v.instructions, "\n"),
		Ingredients:  make([]domain.RecipeIngredient, len(v.rows)),
	}
	for i, r := range v.rows {
		recipe.Ingredients[i] = domain.RecipeIngredient{
			IngredientName: r.Name,
			QuantityUnit:   r.Quantity,
			Notes:          r.Notes,
		}
	}
	return recipe
}

// Step returns the current step.
func (v *View) Step() Step {
	return v.step
}

// Rows returns the ingredients collected so far.
func (v *View) Rows() []Row {
	return v.rows
}

// Err returns the inline error message, if any.
func (v *View) Err() string {
	return v.errMsg
}

// View renders the wizard.
func (v *View) View() string {
	var b strings.Builder

	title := "New recipe"
	if v.name != "" {
		title = v.name
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if len(v.rows) > 0 {
		b.WriteString(v.styles.Border.Render(v.renderRows()))
		b.WriteString("\n")
	}

	if len(v.instructions) > 0 {
		b.WriteString(v.styles.Subtitle.Render("Instructions"))
		b.WriteString("\n")
		for i, line := range v.instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, line)
		}
		b.WriteString("\n")
	}

	if v.step == StepConfirm {
		fmt.Fprintf(&b, "Add new ingredient '%s'? (y/n)\n", v.pending.Name)
		b.WriteString(v.help.ShortHelpView(v.keymap.ConfirmHelp()))
		return b.String()
	}

	b.WriteString(v.field.View())
	b.WriteString("\n")

	if preview := v.Preview(); preview != "" {
		b.WriteString(v.styles.Preview.Render(preview))
		b.WriteString("\n")
	}
	if v.errMsg != "" {
		b.WriteString(v.styles.Error.Render("Error: " + v.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(v.help.ShortHelpView(v.keymap.InputHelp()))
	return b.String()
}

func (v *View) renderRows() string {
	lines := make([]string, len(v.rows))
	for i, r := range v.rows {
		line := r.Name
		if r.Quantity != "" {
			line = r.Quantity + " " + r.Name
		}
		if r.Notes != "" {
			line += " " + v.styles.Notes.Render("("+r.Notes+")")
		}
		if r.New {
			line += " " + v.styles.Success.Render("new")
		}
		lines[i] = line
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
