package memorize

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chemiz/chemiz/internal/illustration"
	"github.com/chemiz/chemiz/internal/screen"
	"github.com/chemiz/chemiz/internal/substance"
	"github.com/chemiz/chemiz/internal/ui/components"
	"github.com/chemiz/chemiz/internal/ui/layout"
	"github.com/chemiz/chemiz/internal/ui/theme"
)

// categories cycled by Tab; the empty category shows everything.
var categories = []substance.Category{
	"",
	substance.CategoryInorganic,
	substance.CategoryHydrocarbon,
	substance.CategoryOrganic,
	substance.CategoryAcid,
}

// MemorizeScreen lists the dataset with a live search and previews the
// structure of the highlighted substance.
type MemorizeScreen struct {
	dataset *substance.Dataset
	art     illustration.Provider
	search  components.TextInput

	category int
	rows     []substance.Substance
	selected int
}

var _ screen.Screen = (*MemorizeScreen)(nil)
var _ screen.KeyHintProvider = (*MemorizeScreen)(nil)

// New creates a MemorizeScreen. art may be nil, in which case every preview
// falls back to the structure description.
func New(ds *substance.Dataset, art illustration.Provider) *MemorizeScreen {
	s := &MemorizeScreen{
		dataset: ds,
		art:     art,
		search:  components.NewTextInput("이름, 별칭, 시성식 검색", 30),
	}
	s.refilter()
	return s
}

func (s *MemorizeScreen) Init() tea.Cmd {
	return s.search.Init()
}

func (s *MemorizeScreen) Title() string {
	return "암기"
}

func (s *MemorizeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "선택"},
		{Key: "Tab", Description: "분류"},
		{Key: "입력", Description: "검색"},
		{Key: "Esc", Description: "홈"},
	}
}

func (s *MemorizeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.rows)-1 {
				s.selected++
			}
			return s, nil
		case "tab":
			s.category = (s.category + 1) % len(categories)
			s.refilter()
			return s, nil
		case "enter":
			return s, nil
		}
	}

	before := s.search.Value()
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	if s.search.Value() != before {
		s.refilter()
	}
	return s, cmd
}

// Selected returns the highlighted substance.
func (s *MemorizeScreen) Selected() (substance.Substance, bool) {
	if s.selected < 0 || s.selected >= len(s.rows) {
		return substance.Substance{}, false
	}
	return s.rows[s.selected], true
}

// Rows returns the substances currently listed.
func (s *MemorizeScreen) Rows() []substance.Substance {
	return s.rows
}

func (s *MemorizeScreen) refilter() {
	s.rows = substance.FilterCategory(s.dataset.Search(s.search.Value()), categories[s.category])
	if s.selected >= len(s.rows) {
		s.selected = len(s.rows) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *MemorizeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("  📚 암기 목록"))
	b.WriteString("\n\n")
	b.WriteString("  검색: " + s.search.View())
	b.WriteString("   ")
	b.WriteString(s.renderCategories())
	b.WriteString("\n\n")

	if len(s.rows) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("  검색 결과가 없습니다."))
		return b.String()
	}

	previewHeight := 9
	tableRows := height - previewHeight - 10
	if tableRows < 3 {
		tableRows = 3
	}
	start, end := components.Window(len(s.rows), s.selected, tableRows)

	rows := make([][]string, 0, end-start)
	for _, sub := range s.rows[start:end] {
		rows = append(rows, []string{
			sub.Name,
			sub.Formula,
			strings.Join(sub.Aliases, ", "),
			string(sub.Category),
		})
	}
	table := components.Table(
		[]string{"이름", "시성식", "별칭", "분류"},
		rows,
		s.selected-start,
		0,
	)
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(table))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d / %d", s.selected+1, len(s.rows))))
	b.WriteString("\n\n")

	if sub, ok := s.Selected(); ok {
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.renderPreview(sub)))
	}
	return b.String()
}

func (s *MemorizeScreen) renderCategories() string {
	parts := make([]string, len(categories))
	for i, c := range categories {
		label := string(c)
		if c == "" {
			label = "전체"
		}
		if i == s.category {
			parts[i] = theme.Selected.Render("[" + label + "]")
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
		}
	}
	return strings.Join(parts, " ")
}

// renderPreview shows the diagram of sub, or its structure description when
// no diagram is available.
func (s *MemorizeScreen) renderPreview(sub substance.Substance) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("🔍 구조식 미리보기: ") +
		theme.Formula.Render(fmt.Sprintf("%s (%s)", sub.Name, sub.Formula))

	var body string
	if h, ok := s.lookup(sub.Formula); ok {
		body = lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(h.Render())
	} else {
		body = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("그림 준비되지 않은 분자입니다. 구조 특징: " + sub.Structure)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(title + "\n\n" + body)
}

func (s *MemorizeScreen) lookup(formula string) (illustration.Handle, bool) {
	if s.art == nil || !illustration.Allowed(formula) {
		return illustration.Handle{}, false
	}
	return s.art.Lookup(formula)
}
