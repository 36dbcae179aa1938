package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0a84ff")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#30d158")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1c1c1e")).
			Background(lipgloss.Color("#ffd60a")).
			Padding(0, 1)
)

// Form field order for the proposal request.
const (
	fieldEvent = iota
	fieldSeason
	fieldGuests
	fieldPriceMin
	fieldPriceMax
	fieldWine
	fieldDiets
	fieldCulture
	fieldCount
)

// Model defines the application state
type Model struct {
	mainMenu    list.Model
	casesTable  table.Model
	weights     table.Model
	form        []textinput.Model
	formFocus   int
	rating      textinput.Model
	spinner     spinner.Model
	client      *ApiClient
	proposals   *ProposeResult
	selected    int
	lastRequest Request
	loading     bool
	currentView string
	status      string
	error       string
}

// item represents a list item
type item struct {
	title, desc string
}

// FilterValue implements list.Item interface
func (i item) FilterValue() string { return i.title }

// Title implements list.Item interface
func (i item) Title() string { return i.title }

// Description implements list.Item interface
func (i item) Description() string { return i.desc }

func newFormField(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

// Initialize the model
func initialModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	items := []list.Item{
		item{title: "Request Proposals", desc: "Describe an event and get menu proposals"},
		item{title: "Browse Cases", desc: "Inspect the stored case pool"},
		item{title: "Similarity Weights", desc: "View the learned criteria weights"},
		item{title: "Exit", desc: "Exit the application"},
	}
	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "Traiteur CLI"

	form := make([]textinput.Model, fieldCount)
	form[fieldEvent] = newFormField("wedding | familiar | congress | corporate | christening | communion", "wedding")
	form[fieldSeason] = newFormField("spring | summer | autumn | winter | all", "summer")
	form[fieldGuests] = newFormField("number of guests", "80")
	form[fieldPriceMin] = newFormField("minimum price per guest", "30")
	form[fieldPriceMax] = newFormField("maximum price per guest", "60")
	form[fieldWine] = newFormField("wine? y/n", "y")
	form[fieldDiets] = newFormField("required diets, comma separated (optional)", "")
	form[fieldCulture] = newFormField("cultural preference (optional)", "")
	form[fieldEvent].Focus()

	rating := textinput.New()
	rating.Placeholder = "score 1-5"
	rating.CharLimit = 3
	rating.Width = 10

	casesTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Case", Width: 34},
			{Title: "Event", Width: 12},
			{Title: "Score", Width: 6},
			{Title: "Used", Width: 5},
			{Title: "Kind", Width: 9},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	weightsTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Criterion", Width: 16},
			{Title: "Weight", Width: 8},
		}),
		table.WithHeight(11),
	)

	return Model{
		mainMenu:    mainMenu,
		casesTable:  casesTable,
		weights:     weightsTable,
		form:        form,
		rating:      rating,
		spinner:     s,
		client:      NewApiClient(),
		currentView: "main",
	}
}

// Messages flowing back from the API.
type proposalsMsg struct{ result *ProposeResult }
type casesMsg struct{ result *CaseList }
type weightsMsg struct{ weights map[string]float64 }
type feedbackMsg struct{ result *FeedbackResult }
type errorMsg struct{ err string }

func fetchProposals(client *ApiClient, req Request) tea.Cmd {
	return func() tea.Msg {
		res, err := client.Propose(req)
		if err != nil {
			return errorMsg{err.Error()}
		}
		return proposalsMsg{res}
	}
}

func fetchCases(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		res, err := client.Cases()
		if err != nil {
			return errorMsg{err.Error()}
		}
		return casesMsg{res}
	}
}

func fetchWeights(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		res, err := client.Weights()
		if err != nil {
			return errorMsg{err.Error()}
		}
		return weightsMsg{res}
	}
}

func sendFeedback(client *ApiClient, req Request, menu Menu, fb Feedback) tea.Cmd {
	return func() tea.Msg {
		res, err := client.SubmitFeedback(req, menu, fb)
		if err != nil {
			return errorMsg{err.Error()}
		}
		return feedbackMsg{res}
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen)
}

// buildRequest assembles the API request from the form fields.
func (m Model) buildRequest() (Request, error) {
	guests, err := strconv.Atoi(strings.TrimSpace(m.form[fieldGuests].Value()))
	if err != nil || guests <= 0 {
		return Request{}, fmt.Errorf("guests must be a positive number")
	}
	priceMin, err := strconv.ParseFloat(strings.TrimSpace(m.form[fieldPriceMin].Value()), 64)
	if err != nil {
		return Request{}, fmt.Errorf("minimum price must be a number")
	}
	priceMax, err := strconv.ParseFloat(strings.TrimSpace(m.form[fieldPriceMax].Value()), 64)
	if err != nil {
		return Request{}, fmt.Errorf("maximum price must be a number")
	}

	var diets []string
	for _, d := range strings.Split(m.form[fieldDiets].Value(), ",") {
		if d = strings.TrimSpace(d); d != "" {
			diets = append(diets, d)
		}
	}

	return Request{
		ID:                 "cli",
		EventType:          strings.TrimSpace(m.form[fieldEvent].Value()),
		Season:             strings.TrimSpace(m.form[fieldSeason].Value()),
		Guests:             guests,
		PriceMin:           priceMin,
		PriceMax:           priceMax,
		WantsWine:          strings.HasPrefix(strings.ToLower(m.form[fieldWine].Value()), "y"),
		RequiredDiets:      diets,
		CulturalPreference: strings.TrimSpace(m.form[fieldCulture].Value()),
	}, nil
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.currentView == "main" {
				return m, tea.Quit
			}
		case "enter":
			switch m.currentView {
			case "main":
				if selected, ok := m.mainMenu.SelectedItem().(item); ok {
					switch selected.title {
					case "Exit":
						return m, tea.Quit
					case "Request Proposals":
						m.currentView = "form"
						m.error = ""
					case "Browse Cases":
						m.currentView = "cases"
						m.loading = true
						return m, fetchCases(m.client)
					case "Similarity Weights":
						m.currentView = "weights"
						m.loading = true
						return m, fetchWeights(m.client)
					}
				}
			case "form":
				if m.formFocus < fieldCount-1 {
					m.form[m.formFocus].Blur()
					m.formFocus++
					m.form[m.formFocus].Focus()
					return m, nil
				}
				req, err := m.buildRequest()
				if err != nil {
					m.error = err.Error()
					return m, nil
				}
				m.error = ""
				m.lastRequest = req
				m.loading = true
				m.currentView = "proposals"
				return m, fetchProposals(m.client, req)
			case "rate":
				score, err := strconv.ParseFloat(strings.TrimSpace(m.rating.Value()), 64)
				if err != nil || score < 1 || score > 5 {
					m.error = "the score must be between 1 and 5"
					return m, nil
				}
				m.error = ""
				m.loading = true
				m.currentView = "proposals"
				menu := m.proposals.Proposals[m.selected].Menu
				return m, sendFeedback(m.client, m.lastRequest, menu, Feedback{
					Score:   score,
					Success: score >= 3.5,
				})
			}
		case "tab", "down":
			if m.currentView == "form" {
				m.form[m.formFocus].Blur()
				m.formFocus = (m.formFocus + 1) % fieldCount
				m.form[m.formFocus].Focus()
				return m, nil
			}
		case "shift+tab", "up":
			if m.currentView == "form" {
				m.form[m.formFocus].Blur()
				m.formFocus = (m.formFocus + fieldCount - 1) % fieldCount
				m.form[m.formFocus].Focus()
				return m, nil
			}
		case "left", "h":
			if m.currentView == "proposals" && m.selected > 0 {
				m.selected--
			}
		case "right", "l":
			if m.currentView == "proposals" && m.proposals != nil && m.selected < len(m.proposals.Proposals)-1 {
				m.selected++
			}
		case "f":
			if m.currentView == "proposals" && m.proposals != nil && len(m.proposals.Proposals) > 0 {
				m.currentView = "rate"
				m.rating.SetValue("")
				m.rating.Focus()
				return m, nil
			}
		case "esc":
			switch m.currentView {
			case "rate":
				m.currentView = "proposals"
			case "main":
			default:
				m.currentView = "main"
				m.error = ""
				m.status = ""
			}
			return m, nil
		}

	case proposalsMsg:
		m.loading = false
		m.proposals = msg.result
		m.selected = 0
		return m, nil

	case casesMsg:
		m.loading = false
		m.casesTable.SetRows(casesToRows(msg.result))
		return m, nil

	case weightsMsg:
		m.loading = false
		m.weights.SetRows(weightsToRows(msg.weights))
		return m, nil

	case feedbackMsg:
		m.loading = false
		m.status = fmt.Sprintf("feedback recorded: %s (%s)",
			msg.result.Retention.Action, msg.result.Retention.Reason)
		return m, nil

	case errorMsg:
		m.loading = false
		m.error = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.currentView {
	case "main":
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case "form":
		m.form[m.formFocus], cmd = m.form[m.formFocus].Update(msg)
	case "cases":
		m.casesTable, cmd = m.casesTable.Update(msg)
	case "weights":
		m.weights, cmd = m.weights.Update(msg)
	case "rate":
		m.rating, cmd = m.rating.Update(msg)
	}
	return m, cmd
}

func casesToRows(cl *CaseList) []table.Row {
	rows := make([]table.Row, 0, len(cl.Cases))
	for _, c := range cl.Cases {
		kind := "success"
		if c.Negative {
			kind = "failure"
		}
		rows = append(rows, table.Row{
			c.ID,
			c.Request.EventType,
			fmt.Sprintf("%.1f", c.FeedbackScore),
			strconv.Itoa(c.UsageCount),
			kind,
		})
	}
	return rows
}

func weightsToRows(weights map[string]float64) []table.Row {
	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return weights[names[i]] > weights[names[j]] })

	rows := make([]table.Row, 0, len(names))
	for _, name := range names {
		rows = append(rows, table.Row{name, fmt.Sprintf("%.3f", weights[name])})
	}
	return rows
}

var formLabels = [fieldCount]string{
	"Event type", "Season", "Guests", "Price min", "Price max",
	"Wine", "Required diets", "Cultural preference",
}

func (m Model) formView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New Menu Request") + "\n\n")
	for i, field := range m.form {
		b.WriteString(fmt.Sprintf("%-20s %s\n", formLabels[i], field.View()))
	}
	b.WriteString("\nPress 'enter' to advance, on the last field it submits. 'esc' to go back\n")
	if m.error != "" {
		b.WriteString(errorStyle.Render(m.error) + "\n")
	}
	return b.String()
}

func proposalView(p Proposal) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  Starter:  %s (%.2f)\n", p.Menu.Starter.Name, p.Menu.Starter.Price))
	b.WriteString(fmt.Sprintf("  Main:     %s (%.2f)\n", p.Menu.Main.Name, p.Menu.Main.Price))
	b.WriteString(fmt.Sprintf("  Dessert:  %s (%.2f)\n", p.Menu.Dessert.Name, p.Menu.Dessert.Price))
	b.WriteString(fmt.Sprintf("  Beverage: %s (%.2f)\n", p.Menu.Beverage.Name, p.Menu.Beverage.Price))
	b.WriteString(fmt.Sprintf("\n  Total %.2f per guest, %d kcal, %s bucket\n",
		p.Menu.TotalPrice, p.Menu.TotalCalories, p.PriceBucket))
	b.WriteString(fmt.Sprintf("  Score %.1f/100, similarity %.0f%%", p.Score, p.Similarity*100))
	if p.Generated {
		b.WriteString(", assembled from scratch")
	} else if p.SourceCaseID != "" {
		b.WriteString(", adapted from " + p.SourceCaseID)
	}
	b.WriteString("\n")
	if len(p.Explanations) > 0 {
		b.WriteString("\n")
		for _, e := range p.Explanations {
			b.WriteString("  • " + e + "\n")
		}
	}
	return b.String()
}

func (m Model) proposalsView() string {
	if m.loading {
		return m.spinner.View() + " asking the kitchen..."
	}
	if m.proposals == nil || len(m.proposals.Proposals) == 0 {
		out := titleStyle.Render("Proposals") + "\n\nNo proposals.\n"
		if m.error != "" {
			out += errorStyle.Render(m.error) + "\n"
		}
		return out + "\nPress 'esc' to go back\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Proposal %d/%d",
		m.selected+1, len(m.proposals.Proposals))) + "\n\n")
	for _, w := range m.proposals.Warnings {
		b.WriteString(warningStyle.Render(w) + "\n")
	}
	b.WriteString(proposalView(m.proposals.Proposals[m.selected]))
	b.WriteString("\n'←/→' switch proposal, 'f' rate it, 'esc' back\n")
	if m.status != "" {
		b.WriteString(successStyle.Render(m.status) + "\n")
	}
	if m.error != "" {
		b.WriteString(errorStyle.Render(m.error) + "\n")
	}
	return b.String()
}

// View renders the UI
func (m Model) View() string {
	switch m.currentView {
	case "main":
		return docStyle.Render(m.mainMenu.View())
	case "form":
		return docStyle.Render(m.formView())
	case "proposals":
		return docStyle.Render(m.proposalsView())
	case "rate":
		help := "\nPress 'enter' to submit, 'esc' to cancel\n"
		if m.error != "" {
			help += errorStyle.Render(m.error) + "\n"
		}
		return docStyle.Render(titleStyle.Render("Rate This Menu") + "\n\n" +
			m.rating.View() + help)
	case "cases":
		if m.loading {
			return docStyle.Render(m.spinner.View() + " loading cases...")
		}
		return docStyle.Render(titleStyle.Render("Case Pool") + "\n\n" +
			m.casesTable.View() + "\n\nPress 'esc' to go back\n")
	case "weights":
		if m.loading {
			return docStyle.Render(m.spinner.View() + " loading weights...")
		}
		return docStyle.Render(titleStyle.Render("Similarity Weights") + "\n\n" +
			m.weights.View() + "\n\n" +
			infoStyle.Render("Weights shift as feedback comes in") +
			"\n\nPress 'esc' to go back\n")
	default:
		return "Loading..."
	}
}

func main() {
	if !NewApiClient().Ping() {
		fmt.Println("warning: no server reachable, set TRAITEUR_API_URL")
	}
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error running program: %v\n", err)
	}
}
