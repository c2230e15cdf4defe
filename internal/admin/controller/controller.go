package controller

import (
	"context"
	"errors"
	"fmt"
)

// Severity — уровень уведомления для пользователя.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier показывает пользователю нефатальные уведомления.
type Notifier interface {
	Notify(title, description string, severity Severity)
}

// Confirmer запрашивает у пользователя подтверждение необратимого
// действия. false — действие отменено, вызовов к серверу не будет.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Gateway — удалённое хранилище одной таблицы. Контроллер получает его
// через конструктор и не знает, HTTP это или что-то ещё.
type Gateway[E any] interface {
	List(ctx context.Context) ([]E, error)
	Insert(ctx context.Context, payload map[string]any) error
	Update(ctx context.Context, id string, payload map[string]any) error
	Delete(ctx context.Context, id string) error
}

// Uploader загружает один файл и возвращает его публичный URL.
type Uploader interface {
	Upload(ctx context.Context, dir, filename string, data []byte) (string, error)
}

// AssetConfig описывает, как сущность принимает загруженные файлы.
// Таблицы без изображений оставляют поле Assets дескриптора пустым.
type AssetConfig[D any] struct {
	// Dir — каталог в хранилище объектов.
	Dir string
	// Append добавляет URL успешно загруженных файлов в черновик.
	Append func(d *D, urls []string)
	// Remove убирает URL из черновика.
	Remove func(d *D, url string)
}

// Descriptor — всё, чем таблицы отличаются друг от друга. Контроллер
// один, дескрипторов столько же, сколько таблиц.
type Descriptor[E any, D any] struct {
	// Table — имя таблицы, попадает в тексты уведомлений.
	Table string
	// Title — человекочитаемое имя записи для уведомлений.
	Title string
	// ID возвращает первичный ключ записи.
	ID func(e E) string
	// SearchFields — значения, по которым ищет Filter.
	SearchFields func(e E) []string
	// NewDraft — пустой черновик для создания записи.
	NewDraft func() D
	// Seed заполняет черновик из существующей записи для редактирования.
	Seed func(e E) D
	// Transform валидирует черновик и собирает тело запроса к серверу.
	// Ошибка означает, что форма остаётся открытой и запрос не уходит.
	Transform func(d D) (map[string]any, error)
	// Assets — приём загруженных файлов; nil, если таблице они не нужны.
	Assets *AssetConfig[D]
}

var (
	// ErrBusy — форма уже отправляется, повторный Submit отклонён.
	ErrBusy = errors.New("form is already submitting")
	// ErrFormClosed — операция требует открытой формы.
	ErrFormClosed = errors.New("form is not open")
	// ErrCancelled — пользователь не подтвердил удаление.
	ErrCancelled = errors.New("cancelled")
)

// Controller — управляемая форма одной таблицы: кеш списка, черновик
// и машина состояний. Не потокобезопасен, живёт в одной горутине
// консольной команды.
type Controller[E any, D any] struct {
	desc      Descriptor[E, D]
	gw        Gateway[E]
	uploader  Uploader
	notifier  Notifier
	confirmer Confirmer
	// onMutate дёргается после каждой подтверждённой сервером мутации,
	// уже на свежем кеше. Сюда вешается пересчёт сводки.
	onMutate func()

	cache []E
	state FormState
	draft D
}

// Option настраивает контроллер при создании.
type Option[E any, D any] func(*Controller[E, D])

// WithUploader подключает хранилище файлов.
func WithUploader[E any, D any](u Uploader) Option[E, D] {
	return func(c *Controller[E, D]) { c.uploader = u }
}

// WithOnMutate регистрирует обработчик успешных мутаций.
func WithOnMutate[E any, D any](fn func()) Option[E, D] {
	return func(c *Controller[E, D]) { c.onMutate = fn }
}

// New создаёт контроллер таблицы. Gateway, Notifier и Confirmer
// обязательны, остальное — опции.
func New[E any, D any](desc Descriptor[E, D], gw Gateway[E], n Notifier, cf Confirmer, opts ...Option[E, D]) *Controller[E, D] {
	c := &Controller[E, D]{
		desc:      desc,
		gw:        gw,
		notifier:  n,
		confirmer: cf,
		state:     closedState(),
		draft:     desc.NewDraft(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State возвращает текущее состояние формы.
func (c *Controller[E, D]) State() FormState { return c.state }

// Items — текущий кеш списка. Порядок задаёт сервер.
func (c *Controller[E, D]) Items() []E { return c.cache }

// Draft — черновик открытой формы. Правки применяются по месту.
func (c *Controller[E, D]) Draft() *D { return &c.draft }

// Refresh перечитывает список с сервера целиком. При ошибке старый кеш
// сохраняется как есть, пользователь получает уведомление.
func (c *Controller[E, D]) Refresh(ctx context.Context) error {
	items, err := c.gw.List(ctx)
	if err != nil {
		c.notifier.Notify("Error", fmt.Sprintf("failed to load %s: %v", c.desc.Table, err), SeverityError)
		return err
	}
	c.cache = items
	return nil
}

// Filtered возвращает записи кеша, подходящие под запрос.
func (c *Controller[E, D]) Filtered(query string) []E {
	return Filter(c.cache, query, c.desc.SearchFields)
}

// Find ищет запись в кеше по первичному ключу.
func (c *Controller[E, D]) Find(id string) (E, bool) {
	for _, e := range c.cache {
		if c.desc.ID(e) == id {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// BeginCreate открывает форму с пустым черновиком.
func (c *Controller[E, D]) BeginCreate() error {
	if c.state.Phase == PhaseSubmitting {
		return ErrBusy
	}
	c.draft = c.desc.NewDraft()
	c.state = FormState{Phase: PhaseCreating}
	return nil
}

// BeginEdit открывает форму по записи из кеша.
func (c *Controller[E, D]) BeginEdit(id string) error {
	if c.state.Phase == PhaseSubmitting {
		return ErrBusy
	}
	e, ok := c.Find(id)
	if !ok {
		return fmt.Errorf("%s %q not found", c.desc.Title, id)
	}
	c.draft = c.desc.Seed(e)
	c.state = FormState{Phase: PhaseEditing, EditingID: id}
	return nil
}

// Cancel закрывает форму и сбрасывает черновик.
func (c *Controller[E, D]) Cancel() {
	c.state = closedState()
	c.draft = c.desc.NewDraft()
}

// Submit отправляет черновик: Insert при создании, Update при
// редактировании. На время запроса форма в PhaseSubmitting и повторный
// Submit отклоняется. Ошибка сервера возвращает форму в исходную фазу
// с сохранённым черновиком; успех закрывает форму, перечитывает список
// и зовёт onMutate.
func (c *Controller[E, D]) Submit(ctx context.Context) error {
	switch c.state.Phase {
	case PhaseSubmitting:
		return ErrBusy
	case PhaseCreating, PhaseEditing:
	default:
		return ErrFormClosed
	}

	payload, err := c.desc.Transform(c.draft)
	if err != nil {
		c.notifier.Notify("Error", err.Error(), SeverityError)
		return err
	}

	from := c.state
	c.state = FormState{Phase: PhaseSubmitting, EditingID: from.EditingID, From: from.Phase}

	if from.Phase == PhaseEditing {
		err = c.gw.Update(ctx, from.EditingID, payload)
	} else {
		err = c.gw.Insert(ctx, payload)
	}
	if err != nil {
		c.state = from
		c.notifier.Notify("Error", fmt.Sprintf("failed to save %s: %v", c.desc.Title, err), SeverityError)
		return err
	}

	c.state = closedState()
	c.draft = c.desc.NewDraft()
	c.afterMutation(ctx)
	verb := "created"
	if from.Phase == PhaseEditing {
		verb = "updated"
	}
	c.notifier.Notify("Success", fmt.Sprintf("%s %s", c.desc.Title, verb), SeveritySuccess)
	return nil
}

// Delete удаляет запись после подтверждения. Без подтверждения запрос
// к серверу не отправляется.
func (c *Controller[E, D]) Delete(ctx context.Context, id string) error {
	if !c.confirmer.Confirm(fmt.Sprintf("Delete this %s? This cannot be undone.", c.desc.Title)) {
		return ErrCancelled
	}
	if err := c.gw.Delete(ctx, id); err != nil {
		c.notifier.Notify("Error", fmt.Sprintf("failed to delete %s: %v", c.desc.Title, err), SeverityError)
		return err
	}
	c.afterMutation(ctx)
	c.notifier.Notify("Success", fmt.Sprintf("%s deleted", c.desc.Title), SeveritySuccess)
	return nil
}

// Apply отправляет частичное обновление записи мимо формы. Так консоль
// помечает сообщения прочитанными, не открывая черновик.
func (c *Controller[E, D]) Apply(ctx context.Context, id string, payload map[string]any, action string) error {
	if err := c.gw.Update(ctx, id, payload); err != nil {
		c.notifier.Notify("Error", fmt.Sprintf("failed to %s %s: %v", action, c.desc.Title, err), SeverityError)
		return err
	}
	c.afterMutation(ctx)
	return nil
}

func (c *Controller[E, D]) afterMutation(ctx context.Context) {
	// Сначала свежий список, потом колбэк: подписчик видит кеш уже
	// после мутации.
	_ = c.Refresh(ctx)
	if c.onMutate != nil {
		c.onMutate()
	}
}
