package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"planetpal/internal/engine"
	"planetpal/internal/storage"
	"planetpal/internal/ui"
)

// screen is the single view selector: exactly one screen is visible.
type screen int

const (
	screenHome screen = iota
	screenQuiz
	screenShop
	screenPlanet
	screenActivities
)

const popupDelay = 2 * time.Second

type appModel struct {
	ctx       context.Context
	svc       *engine.Service
	profileID string

	width  int
	height int

	screen   screen
	selected int

	profile *storage.Profile
	pending []storage.PendingActivity

	// quiz state
	subject  engine.Subject
	question *engine.Question
	popup    string

	lastLog string
	err     error
}

type refreshMsg struct {
	profile *storage.Profile
	pending []storage.PendingActivity
	err     error
}

type answeredMsg struct {
	res *engine.AnswerResult
	err error
}

type purchasedMsg struct {
	res *engine.PurchaseResult
	err error
}

type activityActedMsg struct {
	approved bool
	res      *engine.ApproveResult
	err      error
}

type popupExpiredMsg struct{}

func newAppModel(ctx context.Context, svc *engine.Service, profileID string) appModel {
	return appModel{
		ctx:       ctx,
		svc:       svc,
		profileID: profileID,
		screen:    screenHome,
		lastLog:   "Welcome!",
	}
}

func (m appModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m appModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Profile(m.profileID)
		if err != nil {
			return refreshMsg{err: err}
		}
		return refreshMsg{profile: p, pending: m.svc.PendingActivities(m.profileID)}
	}
}

func (m appModel) answerCmd(q engine.Question, choice int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.SubmitAnswer(m.ctx, m.profileID, q, choice)
		return answeredMsg{res: res, err: err}
	}
}

func (m appModel) buyCmd(item engine.ShopItem) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Purchase(m.ctx, m.profileID, item.Category, item.Key)
		return purchasedMsg{res: res, err: err}
	}
}

func (m appModel) approveCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ApproveActivity(m.ctx, id)
		return activityActedMsg{approved: true, res: res, err: err}
	}
}

func (m appModel) rejectCmd(id string) tea.Cmd {
	return func() tea.Msg {
		err := m.svc.RejectActivity(m.ctx, id)
		return activityActedMsg{approved: false, err: err}
	}
}

func popupCmd() tea.Cmd {
	return tea.Tick(popupDelay, func(time.Time) tea.Msg {
		return popupExpiredMsg{}
	})
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.profile = msg.profile
		m.pending = msg.pending
		return m, nil

	case answeredMsg:
		if msg.err != nil {
			m.lastLog = "Answer failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.Correct {
			m.popup = fmt.Sprintf("%s +%d %s (combo %d, ×%.1f) +%d XP",
				ui.IconDone, msg.res.Reward, msg.res.Resource, msg.res.Combo, msg.res.Multiplier, msg.res.XPAwarded)
			if msg.res.LevelUp {
				m.popup += fmt.Sprintf("  %s → level %d, +%d crystals", ui.BadgeLevelUp, msg.res.LevelAfter, msg.res.BonusCrystals)
			}
		} else {
			m.popup = fmt.Sprintf("%s The answer was %q. Combo reset.", ui.IconWrong, msg.res.CorrectAnswer)
		}
		m.question = nil
		return m, tea.Batch(m.refreshCmd(), popupCmd())

	case popupExpiredMsg:
		m.popup = ""
		if m.screen == screenQuiz && m.subject != "" && m.question == nil && m.profile != nil {
			q := m.svc.Generator().Generate(m.subject, engine.TierForAge(m.profile.Age))
			m.question = &q
			m.selected = 0
		}
		return m, nil

	case purchasedMsg:
		if msg.err != nil {
			m.lastLog = msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Bought %s %s, placed at (%.0f, %.0f)",
			msg.res.Item.Icon, msg.res.Item.Name, msg.res.Placed.X, msg.res.Placed.Y)
		return m, m.refreshCmd()

	case activityActedMsg:
		if msg.err != nil {
			m.lastLog = msg.err.Error()
			return m, nil
		}
		if msg.approved {
			m.lastLog = fmt.Sprintf("Approved: +%d %s solar", msg.res.Solar, ui.IconSolar)
		} else {
			m.lastLog = "Rejected, no reward."
		}
		if m.selected > 0 {
			m.selected--
		}
		return m, m.refreshCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.popup != "" {
		// Any key dismisses the popup early.
		m.popup = ""
		if m.screen == screenQuiz && m.subject != "" && m.question == nil && m.profile != nil {
			q := m.svc.Generator().Generate(m.subject, engine.TierForAge(m.profile.Age))
			m.question = &q
			m.selected = 0
		}
		return m, nil
	}

	switch key {
	case "q", "esc":
		if m.screen == screenHome {
			return m, tea.Quit
		}
		m.screen = screenHome
		m.subject = ""
		m.question = nil
		m.selected = 0
		return m, nil
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < m.listLen()-1 {
			m.selected++
		}
		return m, nil
	case "enter", " ":
		return m.handleSelect()
	case "a":
		if m.screen == screenActivities && m.selected < len(m.pending) {
			return m, m.approveCmd(m.pending[m.selected].ID)
		}
	case "x":
		if m.screen == screenActivities && m.selected < len(m.pending) {
			return m, m.rejectCmd(m.pending[m.selected].ID)
		}
	}
	return m, nil
}

// listLen returns the number of selectable rows on the current screen.
func (m appModel) listLen() int {
	switch m.screen {
	case screenHome:
		return len(homeMenu)
	case screenQuiz:
		if m.question != nil {
			return len(m.question.Options)
		}
		return len(subjects)
	case screenShop:
		return len(shopRows())
	case screenActivities:
		return len(m.pending)
	default:
		return 0
	}
}

var homeMenu = []string{"Quiz", "Shop", "My Planet", "Activities", "Quit"}

var subjects = []engine.Subject{engine.SubjectMaths, engine.SubjectSpelling, engine.SubjectScience}

func shopRows() []engine.ShopItem {
	var rows []engine.ShopItem
	for _, cat := range []engine.ItemCategory{engine.CategoryBiome, engine.CategoryStructure, engine.CategoryCreature} {
		rows = append(rows, engine.Catalog(cat)...)
	}
	return rows
}

func (m appModel) handleSelect() (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenHome:
		switch m.selected {
		case 0:
			m.screen = screenQuiz
		case 1:
			m.screen = screenShop
		case 2:
			m.screen = screenPlanet
		case 3:
			m.screen = screenActivities
		default:
			return m, tea.Quit
		}
		m.selected = 0
		return m, nil

	case screenQuiz:
		if m.profile == nil {
			return m, nil
		}
		if m.question == nil {
			m.subject = subjects[m.selected]
			q := m.svc.Generator().Generate(m.subject, engine.TierForAge(m.profile.Age))
			m.question = &q
			m.selected = 0
			return m, nil
		}
		return m, m.answerCmd(*m.question, m.selected)

	case screenShop:
		rows := shopRows()
		if m.selected < len(rows) {
			return m, m.buyCmd(rows[m.selected])
		}
	}
	return m, nil
}

func (m appModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.profile == nil {
		return "Loading…\n"
	}

	var body string
	switch m.screen {
	case screenQuiz:
		body = m.viewQuiz()
	case screenShop:
		body = m.viewShop()
	case screenPlanet:
		body = m.viewPlanet()
	case screenActivities:
		body = m.viewActivities()
	default:
		body = m.viewHome()
	}

	out := m.renderHeader() + "\n\n" + body
	if m.popup != "" {
		out += "\n\n" + ui.Panel.Render(m.popup)
	}
	return out + "\n\n" + ui.Muted.Render(m.lastLog) + "\n"
}

func (m appModel) renderHeader() string {
	p := m.profile
	levelStart := (p.Level - 1) * engine.XPPerLevel
	bar := progressBar(p.XP-levelStart, engine.XPPerLevel, 20)
	return fmt.Sprintf("%s  Level %d %s  %s%d %s%d %s%d %s%d  %s%d days  combo %d",
		ui.Heading(ui.IconPlanet, p.Name),
		p.Level, bar,
		ui.IconCrystal, p.Crystals, ui.IconStardust, p.Stardust,
		ui.IconWater, p.Water, ui.IconSolar, p.Solar,
		ui.IconFire, p.StreakDays,
		m.svc.Combo(p.ID))
}

func (m appModel) viewHome() string {
	lines := []string{ui.H2.Render("Where to?")}
	for i, item := range homeMenu {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		lines = append(lines, cursor+item)
	}
	lines = append(lines, "", ui.Muted.Render("↑/↓ move · enter select · q quit"))
	return strings.Join(lines, "\n")
}

func (m appModel) viewQuiz() string {
	if m.question == nil {
		lines := []string{ui.H2.Render(ui.IconQuiz + " Pick a subject")}
		for i, s := range subjects {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
			}
			lines = append(lines, cursor+string(s))
		}
		lines = append(lines, "", ui.Muted.Render("enter pick · q back"))
		return strings.Join(lines, "\n")
	}

	lines := []string{ui.H2.Render(m.question.Prompt)}
	for i, opt := range m.question.Options {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%d) %s", cursor, i+1, opt))
	}
	lines = append(lines, "", ui.Muted.Render("enter answer · q back"))
	return strings.Join(lines, "\n")
}

func (m appModel) viewShop() string {
	lines := []string{ui.H2.Render(ui.IconShop + " Shop")}
	for i, item := range shopRows() {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		afford := ui.Good.Render("✔")
		if err := engine.CanAfford(m.profile, item); err != nil {
			afford = ui.Bad.Render("✘")
		}
		lines = append(lines, fmt.Sprintf("%s%s %-12s %s %s", cursor, item.Icon, item.Key, costLine(item), afford))
	}
	lines = append(lines, "", ui.Muted.Render("enter buy · q back"))
	return strings.Join(lines, "\n")
}

func costLine(item engine.ShopItem) string {
	order := []engine.Resource{engine.ResourceCrystals, engine.ResourceStardust, engine.ResourceWater, engine.ResourceSolar}
	var parts []string
	for _, r := range order {
		if n, ok := item.Cost[r]; ok {
			parts = append(parts, fmt.Sprintf("%s%d", ui.ResourceIcon(string(r)), n))
		}
	}
	return strings.Join(parts, " ")
}

// viewPlanet draws the decorations on a coarse grid scaled from their
// [0,100) placement coordinates.
func (m appModel) viewPlanet() string {
	const gridW, gridH = 36, 9
	grid := make([][]string, gridH)
	for y := range grid {
		grid[y] = make([]string, gridW)
		for x := range grid[y] {
			grid[y][x] = "·"
		}
	}
	for _, it := range m.profile.Items {
		x := int(it.X / 100 * gridW)
		y := int(it.Y / 100 * gridH)
		if x >= gridW {
			x = gridW - 1
		}
		if y >= gridH {
			y = gridH - 1
		}
		icon := ui.CategoryIcon(it.Category)
		if ci := engine.CatalogItem(engine.ItemCategory(it.Category), it.Kind); ci != nil {
			icon = ci.Icon
		}
		grid[y][x] = icon
	}

	lines := []string{ui.H2.Render(ui.IconPlanet + " " + m.profile.Name + "'s Planet")}
	for _, row := range grid {
		lines = append(lines, ui.Muted.Render(strings.Join(row, " ")))
	}
	lines = append(lines, "", fmt.Sprintf("%d decorations placed", len(m.profile.Items)))
	lines = append(lines, "", ui.Muted.Render("q back"))
	return strings.Join(lines, "\n")
}

func (m appModel) viewActivities() string {
	lines := []string{ui.H2.Render("🕐 Waiting for approval")}
	if len(m.pending) == 0 {
		lines = append(lines, ui.Muted.Render("(nothing pending)"))
	}
	for i, a := range m.pending {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%s %d min → %d %s", cursor, a.Type, a.Minutes, a.Reward, ui.IconSolar))
	}
	lines = append(lines, "", ui.Muted.Render("a approve · x reject · q back"))
	return strings.Join(lines, "\n")
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
