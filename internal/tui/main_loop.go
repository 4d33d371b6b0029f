package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formStage int

const (
	formStageNone formStage = iota
	formStageFields
	formStageDescription
)

type mainLoopModel struct {
	ctx    context.Context
	todos  service.ClientTodoService
	userID int64

	items   []models.Todo
	idx     int
	loading bool
	status  string
	errMsg  string
	detail  bool

	formStage     formStage
	formEditingID int64 // 0 while creating a new todo
	formDraft     models.Todo
	formInputs    []textinput.Model
	formFocus     int
	formArea      textarea.Model
	formErr       string
	formSaving    bool

	logout bool
}

type listLoadedMsg struct {
	items []models.Todo
	err   error
}

type deleteDoneMsg struct {
	err error
}

type updateDoneMsg struct {
	err error
}

type createDoneMsg struct {
	err error
}

var errUserIDNotSet = errors.New("user id не установлен")

func newMainLoopModel(ctx context.Context, todos service.ClientTodoService, userID int64) mainLoopModel {
	effectiveUserID := userID
	if effectiveUserID == 0 {
		effectiveUserID = getSessionUserID()
	}
	if effectiveUserID > 0 {
		setSessionUserID(effectiveUserID)
	}

	return mainLoopModel{
		ctx:     ctx,
		todos:   todos,
		userID:  effectiveUserID,
		loading: true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadItems()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка удаления: %v", msg.err)
			return m, nil
		}
		m.status = "Запись удалена"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()
	case updateDoneMsg:
		m.formSaving = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка изменения: %v", msg.err)
			m.resetForm()
			return m, nil
		}
		m.status = "Запись обновлена"
		m.errMsg = ""
		m.resetForm()
		m.loading = true
		return m, m.cmdLoadItems()
	case createDoneMsg:
		m.formSaving = false
		if msg.err != nil {
			m.status = "Возникла ошибка"
			m.errMsg = msg.err.Error()
			m.resetForm()
			return m, nil
		}
		m.status = "Запись добавлена!"
		m.errMsg = ""
		m.resetForm()
		m.loading = true
		return m, m.cmdLoadItems()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.formStage != formStageNone {
			return m.updateForm(msg)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	if m.formStage != formStageNone {
		return m.updateForm(msg)
	}

	if m.detail {
		item, ok := m.current()
		if !ok {
			m.detail = false
			return m, nil
		}

		switch keyMsg.String() {
		case "esc":
			m.detail = false
		case "e":
			m.detail = false
			m.startEdit(item)
			return m, nil
		case "ctrl+d":
			m.detail = false
			return m, m.cmdDelete(item.ID)
		case "c":
			if strings.TrimSpace(item.Description) == "" {
				m.status = "Нечего копировать"
				return m, nil
			}
			if err := clipboard.WriteAll(item.Description); err != nil {
				m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
				return m, nil
			}
			m.status = "Скопировано"
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "a":
		m.startAdd()
		return m, nil
	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = ""
		m.errMsg = ""
		return m, m.cmdLoadItems()
	case " ":
		item, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		return m, m.cmdToggleComplete(item)
	case "enter":
		if _, ok := m.current(); !ok {
			m.status = "Нет записей"
			return m, nil
		}
		m.detail = true
	case "e":
		item, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		m.startEdit(item)
		return m, nil
	case "ctrl+d":
		item, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		return m, m.cmdDelete(item.ID)
	case "l":
		m.logout = true
		clearSessionUserID()
		return m, tea.Quit
	}

	return m, nil
}

// ---- staged create/edit form ----

func (m *mainLoopModel) startAdd() {
	m.formEditingID = 0
	m.formDraft = models.Todo{Priority: 3}
	m.openFormFields("", "3")
}

func (m *mainLoopModel) startEdit(item models.Todo) {
	m.formEditingID = item.ID
	m.formDraft = item
	m.openFormFields(item.Title, strconv.Itoa(item.Priority))
}

func (m *mainLoopModel) openFormFields(title, priority string) {
	titleInput := textinput.New()
	titleInput.Placeholder = "Название"
	titleInput.CharLimit = 200
	titleInput.Width = 40
	titleInput.SetValue(title)
	titleInput.Focus()

	priorityInput := textinput.New()
	priorityInput.Placeholder = "Приоритет (1-5)"
	priorityInput.CharLimit = 1
	priorityInput.Width = 40
	priorityInput.SetValue(priority)

	m.formInputs = []textinput.Model{titleInput, priorityInput}
	m.formFocus = 0
	m.formErr = ""
	m.formSaving = false
	m.formStage = formStageFields
}

func (m *mainLoopModel) openFormDescription() {
	ta := textarea.New()
	ta.Placeholder = "Опишите задачу"
	ta.SetWidth(54)
	ta.SetHeight(6)
	ta.SetValue(m.formDraft.Description)
	ta.Focus()

	m.formArea = ta
	m.formStage = formStageDescription
}

func (m *mainLoopModel) resetForm() {
	m.formStage = formStageNone
	m.formEditingID = 0
	m.formDraft = models.Todo{}
	m.formInputs = nil
	m.formFocus = 0
	m.formErr = ""
	m.formSaving = false
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.formStage {
	case formStageFields:
		return m.updateFormFields(msg)
	case formStageDescription:
		return m.updateFormDescription(msg)
	default:
		return m, nil
	}
}

func (m mainLoopModel) updateFormFields(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetForm()
			return m, nil
		case "tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus + 1) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "shift+tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus - 1 + len(m.formInputs)) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "enter":
			title := strings.TrimSpace(m.formInputs[0].Value())
			priorityRaw := strings.TrimSpace(m.formInputs[1].Value())

			if title == "" {
				m.formErr = "нужно название."
				return m, nil
			}
			priority, err := strconv.Atoi(priorityRaw)
			if err != nil || priority < 1 || priority > 5 {
				m.formErr = "приоритет — число от 1 до 5."
				return m, nil
			}

			m.formDraft.Title = title
			m.formDraft.Priority = priority
			m.formErr = ""
			m.openFormDescription()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateFormDescription(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetForm()
			return m, nil
		case "ctrl+s":
			if m.formSaving {
				return m, nil
			}

			description := strings.TrimSpace(m.formArea.Value())
			if description == "" {
				m.formErr = "нужно заполнить описание"
				return m, nil
			}

			m.formDraft.Description = description
			m.formErr = ""
			m.formSaving = true

			if m.formEditingID > 0 {
				return m, m.cmdUpdate(models.TodoUpdate{
					ID:          m.formEditingID,
					Title:       m.formDraft.Title,
					Description: m.formDraft.Description,
					Priority:    m.formDraft.Priority,
					Complete:    m.formDraft.Complete,
				})
			}
			return m, m.cmdCreate(m.formDraft)
		}
	}

	var cmd tea.Cmd
	m.formArea, cmd = m.formArea.Update(msg)
	return m, cmd
}

// ---- views ----

func (m mainLoopModel) View() string {
	switch m.formStage {
	case formStageFields:
		return m.viewFormFields()
	case formStageDescription:
		return m.viewFormDescription()
	}

	if m.detail {
		item, ok := m.current()
		if !ok {
			return renderPage("ПРОСМОТР ЗАПИСИ", "Запись не найдена", "esc: назад")
		}
		title, out, hotKeys := m.viewDetail(item)
		return renderPage(title, strings.TrimRight(out, "\n"), hotKeys)
	}

	out := ""

	if m.loading {
		out += "Загрузка списка...\n"
		return renderPage("МОИ ЗАДАЧИ", strings.TrimRight(out, "\n"), m.listHotKeys())
	}

	if m.errMsg != "" {
		out += "Ошибка: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}

	if len(m.items) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "Записей нет\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "ID   │ Задача                   │ Приоритет │ Статус\n"
		out += "─────┼──────────────────────────┼───────────┼───────────\n"
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %-9s │ %s\n",
				cursor,
				item.ID,
				fitText(item.Title, 24),
				priorityLabel(item.Priority),
				completeLabel(item.Complete),
			)
		}
	}

	return renderPage("МОИ ЗАДАЧИ", strings.TrimRight(out, "\n"), m.listHotKeys())
}

func (m mainLoopModel) listHotKeys() string {
	return "a: добавить │ r: обновить │ enter: открыть │ e: изм. │ пробел: готово │ ctrl+d: уд. │ l: выход из уч."
}

func (m mainLoopModel) viewFormFields() string {
	title := "НОВАЯ ЗАДАЧА"
	if m.formEditingID > 0 {
		title = "ИЗМЕНЕНИЕ ЗАДАЧИ"
	}

	out := "Поле      │ Значение\n"
	out += "──────────┼──────────────────────────────────────────\n"
	out += "Название  │ [" + m.formInputs[0].View() + "]\n"
	out += "Приоритет │ [" + m.formInputs[1].View() + "]\n"
	if m.formErr != "" {
		out += "\nОшибка: " + m.formErr + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "tab: след. поле │ shift+tab: пред. поле │ enter: далее │ esc: отмена")
}

func (m mainLoopModel) viewFormDescription() string {
	out := "[ ОСНОВНОЕ ]\n"
	out += "Название  : " + m.formDraft.Title + "\n"
	out += "Приоритет : " + priorityLabel(m.formDraft.Priority) + "\n\n"
	out += "Описание:\n"
	out += m.formArea.View()
	if m.formErr != "" {
		out += "\nОшибка: " + m.formErr + "\n"
	}
	if m.formSaving {
		out += "\nСохранение...\n"
	}

	return renderPage("ОПИСАНИЕ ЗАДАЧИ", strings.TrimRight(out, "\n"), "enter: новая строка │ ctrl+s: сохранить │ esc: отмена")
}

func (m mainLoopModel) viewDetail(item models.Todo) (title, body, hotKeys string) {
	var b strings.Builder

	title = "ЗАДАЧА: " + fitText(item.Title, 40)

	b.WriteString("[ ОСНОВНОЕ ]\n")
	b.WriteString("ID        : " + strconv.FormatInt(item.ID, 10) + "\n")
	b.WriteString("Название  : " + item.Title + "\n")
	b.WriteString("Приоритет : " + priorityLabel(item.Priority) + "\n")
	b.WriteString("Статус    : " + completeLabel(item.Complete) + "\n\n")

	b.WriteString("[ ОПИСАНИЕ ]\n")
	if strings.TrimSpace(item.Description) != "" {
		b.WriteString(item.Description + "\n")
	} else {
		b.WriteString("(пусто)\n")
	}

	hotKeys = "e: изменить │ c: копировать описание │ ctrl+d: удалить │ esc: назад"
	return title, b.String(), hotKeys
}

// ---- async commands ----

func (m mainLoopModel) current() (models.Todo, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Todo{}, false
	}
	return m.items[m.idx], true
}

func (m mainLoopModel) cmdLoadItems() tea.Cmd {
	ctx := m.ctx
	svc := m.todos

	return func() tea.Msg {
		if m.activeUserID() <= 0 {
			return listLoadedMsg{err: errUserIDNotSet}
		}
		items, err := svc.List(ctx)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.todos

	return func() tea.Msg {
		err := svc.Delete(ctx, id)
		return deleteDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdUpdate(update models.TodoUpdate) tea.Cmd {
	ctx := m.ctx
	svc := m.todos

	return func() tea.Msg {
		err := svc.Update(ctx, update)
		return updateDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdToggleComplete(item models.Todo) tea.Cmd {
	ctx := m.ctx
	svc := m.todos

	return func() tea.Msg {
		err := svc.Update(ctx, models.TodoUpdate{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Priority:    item.Priority,
			Complete:    !item.Complete,
		})
		return updateDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdCreate(todo models.Todo) tea.Cmd {
	ctx := m.ctx
	svc := m.todos

	return func() tea.Msg {
		_, err := svc.Create(ctx, todo)
		return createDoneMsg{err: err}
	}
}

func (m mainLoopModel) activeUserID() int64 {
	if sid := getSessionUserID(); sid > 0 {
		return sid
	}
	if m.userID > 0 {
		return m.userID
	}
	return 0
}
