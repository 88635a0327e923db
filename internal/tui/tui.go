// Package tui renders the three-seat table in the terminal and
// translates key presses into engine actions. The model reads game
// state only through snapshots and the engine's read-only query
// surface; the engine stays the single owner of game state.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/BigSlickGames/21holdemmobile/internal/deck"
	"github.com/BigSlickGames/21holdemmobile/internal/game"
)

// defaultBotDelay paces bot turns so the human can follow the action.
const defaultBotDelay = 700 * time.Millisecond

type phase int

const (
	phaseNameEntry phase = iota
	phasePlaying
	phaseWagerSelect
	phaseHandOver
)

// botTurnMsg fires when the pacing timer for the next bot turn expires.
type botTurnMsg struct{}

// Model is the Bubble Tea model for an interactive game.
type Model struct {
	engine *game.Engine
	logger *log.Logger
	clock  quartz.Clock

	botDelay  time.Duration
	nameInput textinput.Model

	phase phase
	snap  game.Snapshot

	// wagerAction is the pending bet or raise while presets are shown
	wagerAction  game.Action
	wagerOptions []game.WagerOption
	standAfter   bool

	status   string
	width    int
	height   int
	quitting bool
}

// Option configures a Model during creation
type Option func(*Model)

// WithClock substitutes the pacing clock, for tests
func WithClock(clock quartz.Clock) Option {
	return func(m *Model) { m.clock = clock }
}

// WithBotDelay overrides the pause before each bot action
func WithBotDelay(d time.Duration) Option {
	return func(m *Model) { m.botDelay = d }
}

// New creates a TUI model around an engine. The first hand starts once
// the player confirms a name.
func New(engine *game.Engine, logger *log.Logger, opts ...Option) *Model {
	if logger == nil {
		logger = log.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "PLAYER"
	ti.CharLimit = 12
	ti.Width = 20
	ti.Prompt = "> "
	ti.Focus()

	m := &Model{
		engine:    engine,
		logger:    logger.WithPrefix("tui"),
		clock:     quartz.NewReal(),
		botDelay:  defaultBotDelay,
		nameInput: ti,
		phase:     phaseNameEntry,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run starts the interactive program and blocks until the player quits.
func Run(engine *game.Engine, logger *log.Logger, opts ...Option) error {
	program := tea.NewProgram(New(engine, logger, opts...), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) refresh() {
	m.snap = m.engine.VisibleState()
}

// scheduleBotTurn arms the pacing timer for the next bot decision
func (m *Model) scheduleBotTurn() tea.Cmd {
	timer := m.clock.NewTimer(m.botDelay)
	return func() tea.Msg {
		<-timer.C
		return botTurnMsg{}
	}
}

// afterStateChange decides what happens next: end-of-hand display, a
// paced bot turn, or waiting for the human.
func (m *Model) afterStateChange() tea.Cmd {
	m.refresh()
	if m.snap.HandComplete {
		m.phase = phaseHandOver
		return nil
	}
	turn := m.snap.CurrentTurnIndex
	if turn >= 0 && !m.engine.IsHumanSeat(turn) {
		return m.scheduleBotTurn()
	}
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case botTurnMsg:
		if m.snap.HandComplete {
			return m, nil
		}
		m.engine.PlayBotTurn()
		return m, m.afterStateChange()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.phase {
		case phaseNameEntry:
			return m.updateNameEntry(msg)
		case phasePlaying:
			return m.updatePlaying(msg)
		case phaseWagerSelect:
			return m.updateWagerSelect(msg)
		case phaseHandOver:
			return m.updateHandOver(msg)
		}
	}

	if m.phase == phaseNameEntry {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateNameEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		m.engine.SetPlayerName(m.nameInput.Value())
		m.engine.StartNewHand()
		m.phase = phasePlaying
		return m, m.afterStateChange()
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.humanTurn() {
		if msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	actions := m.engine.AvailableActions(0)
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "a":
		m.standAfter = !m.standAfter
		return m, nil
	case "f":
		return m.submit(game.Fold, game.Payload{})
	case "c":
		if hasAction(actions, game.Call) {
			return m.submit(game.Call, game.Payload{StandAfter: m.standAfter})
		}
		return m.submit(game.Check, game.Payload{})
	case "s":
		return m.submit(game.Stand, game.Payload{})
	case "d":
		return m.submit(game.Double, game.Payload{})
	case "b":
		if hasAction(actions, game.Bet) {
			m.openWagerSelect(game.Bet)
		}
		return m, nil
	case "r":
		if hasAction(actions, game.Raise) {
			m.openWagerSelect(game.Raise)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) updateWagerSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.phase = phasePlaying
		m.wagerOptions = nil
		return m, nil
	case "1", "2", "3":
		index := int(msg.String()[0] - '1')
		if index >= len(m.wagerOptions) {
			return m, nil
		}
		action := m.wagerAction
		amount := m.wagerOptions[index].Amount
		m.phase = phasePlaying
		m.wagerOptions = nil
		return m.submit(action, game.Payload{Amount: amount, StandAfter: m.standAfter})
	}
	return m, nil
}

func (m *Model) updateHandOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "enter", "n":
		m.engine.StartNewHand()
		m.phase = phasePlaying
		m.standAfter = false
		m.status = ""
		return m, m.afterStateChange()
	}
	return m, nil
}

func (m *Model) openWagerSelect(action game.Action) {
	options := m.engine.WagerOptions(action, 0)
	if len(options) == 0 {
		return
	}
	m.wagerAction = action
	m.wagerOptions = options
	m.phase = phaseWagerSelect
}

func (m *Model) submit(action game.Action, payload game.Payload) (tea.Model, tea.Cmd) {
	result := m.engine.PerformHumanAction(action, payload)
	if !result.OK {
		m.status = result.Reason
		m.refresh()
		return m, nil
	}
	m.status = ""
	m.standAfter = false
	return m, m.afterStateChange()
}

func (m *Model) humanTurn() bool {
	return m.snap.CurrentTurnIndex >= 0 && m.engine.IsHumanSeat(m.snap.CurrentTurnIndex)
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == phaseNameEntry {
		return m.viewNameEntry()
	}
	return m.viewTable()
}

func (m *Model) viewNameEntry() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("21 HOLD'EM"))
	b.WriteString("\n\n")
	b.WriteString("Enter your name:\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("Enter to sit down • Ctrl+C to quit"))
	return b.String()
}

func (m *Model) viewTable() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("21 HOLD'EM • Hand %d • %s • Blinds %d/%d",
		m.snap.HandNumber, m.snap.RoundName, m.snap.SmallBlindAmount, m.snap.BigBlindAmount)))
	b.WriteString("\n\n")

	community := "(none)"
	if len(m.snap.Community) > 0 {
		community = formatCards(m.snap.Community)
	}
	b.WriteString(fmt.Sprintf("Community: %s   %s",
		community, WarningStyle.Render(fmt.Sprintf("Pot: %d", m.snap.Pot))))
	if m.snap.CurrentBet > 0 {
		b.WriteString(WarningStyle.Render(fmt.Sprintf("   Bet: %d", m.snap.CurrentBet)))
	}
	b.WriteString("\n\n")

	for i, p := range m.snap.Players {
		b.WriteString(m.renderSeat(i, p))
		b.WriteString("\n")
	}

	if m.snap.HandComplete && m.snap.HandResult != "" {
		b.WriteString("\n")
		b.WriteString(SuccessStyle.Render(m.snap.HandResult))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderActionBar())

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(m.status))
	}

	if len(m.snap.Log) > 0 {
		b.WriteString("\n\n")
		b.WriteString(PaneStyle.Render(m.renderLog()))
	}

	return b.String()
}

// renderSeat shows one player row. Bot hole cards stay hidden until the
// hand is over.
func (m *Model) renderSeat(index int, p game.PlayerSnapshot) string {
	out := p.Folded || p.Busted

	marker := "  "
	if index == m.snap.CurrentTurnIndex {
		marker = TurnMarkerStyle.Render("▶ ")
	}

	button := " "
	if index == m.snap.DealerIndex {
		button = "D"
	}

	cards := hiddenCards(len(p.Hand))
	total := ""
	if p.IsHuman || m.snap.HandComplete || p.Folded {
		cards = formatCards(p.Hand)
		total = fmt.Sprintf(" (%d)", p.Total)
	}

	name := p.Name
	if p.IsHuman && !out {
		name = HandInfoStyle.Render(name)
	}

	line := fmt.Sprintf("%s%s %-14s %5d chips  %s%s  %s",
		marker, button, name, p.Chips, cards, total, InfoStyle.Render(p.LastAction))
	if out {
		return InfoStyle.Render(line)
	}
	return line
}

func (m *Model) renderActionBar() string {
	switch m.phase {
	case phaseHandOver:
		return ActionsStyle.Render("Enter/n next hand • q quit")
	case phaseWagerSelect:
		var parts []string
		for i, opt := range m.wagerOptions {
			parts = append(parts, fmt.Sprintf("[%d] %s (%d)", i+1, opt.Label, opt.Cost))
		}
		return ActionsStyle.Render(fmt.Sprintf("%s: %s • esc cancel",
			m.wagerAction, strings.Join(parts, "  ")))
	}

	if !m.humanTurn() {
		return InfoStyle.Render("Waiting for the table...")
	}

	var parts []string
	for _, action := range m.engine.AvailableActions(0) {
		switch action {
		case game.Fold:
			parts = append(parts, ErrorStyle.Render("[f]old"))
		case game.Check:
			parts = append(parts, SuccessStyle.Render("[c]heck"))
		case game.Call:
			parts = append(parts, SuccessStyle.Render(fmt.Sprintf("[c]all %d", m.engine.ToCall(0))))
		case game.Bet:
			parts = append(parts, WarningStyle.Render("[b]et"))
		case game.Raise:
			parts = append(parts, WarningStyle.Render("[r]aise"))
		case game.Stand:
			parts = append(parts, "[s]tand")
		case game.Double:
			parts = append(parts, WarningStyle.Render(fmt.Sprintf("[d]ouble %d", max(1, m.snap.Pot))))
		}
	}

	standAfter := ""
	if m.standAfter {
		standAfter = "  " + HandInfoStyle.Render("(stand after: on, [a] toggles)")
	} else {
		standAfter = "  " + InfoStyle.Render("([a] stand after)")
	}

	return ActionsStyle.Render("Actions: "+strings.Join(parts, " ")) + standAfter
}

// renderLog shows the most recent table events, newest first.
func (m *Model) renderLog() string {
	limit := min(len(m.snap.Log), 8)
	return strings.Join(m.snap.Log[:limit], "\n")
}

func formatCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return "--"
	}
	var formatted []string
	for _, card := range cards {
		if card.IsRed() {
			formatted = append(formatted, RedCardStyle.Render(card.String()))
		} else {
			formatted = append(formatted, BlackCardStyle.Render(card.String()))
		}
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

func hiddenCards(count int) string {
	if count == 0 {
		return "--"
	}
	return "[" + strings.Repeat("## ", count-1) + "##]"
}

func hasAction(actions []game.Action, action game.Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
