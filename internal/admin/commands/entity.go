package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"PortfolioDesk/internal/admin/api"
	"PortfolioDesk/internal/admin/controller"
	"PortfolioDesk/internal/admin/draftstore"
	"PortfolioDesk/internal/admin/forms"
	"PortfolioDesk/internal/admin/ui"
	"PortfolioDesk/internal/config"
)

// entitySet регистрирует стандартный набор команд таблицы:
// <name>-list, <name>-new, <name>-edit, <name>-rm. Вся разница между
// таблицами приходит из формы, команды одни на всех.
type entitySet[E any, D any] struct {
	name     string
	form     forms.Form[E, D]
	editable bool
}

func registerEntity[E any, D any](name string, form forms.Form[E, D], editable bool) {
	s := entitySet[E, D]{name: name, form: form, editable: editable}
	RegisterCmd(listCmd[E, D]{s})
	RegisterCmd(rmCmd[E, D]{s})
	if editable {
		RegisterCmd(newCmd[E, D]{s})
		RegisterCmd(editCmd[E, D]{s})
	}
}

// newController собирает контроллер таблицы поверх HTTP-шлюза.
// После каждой подтверждённой мутации перечитывается сводка по
// таблицам — консольный аналог пересчёта цифр дашборда.
func (s entitySet[E, D]) newController(ctx context.Context, cfg *config.Config) (*controller.Controller[E, D], *api.Client) {
	client := newClient(cfg)
	gw := api.NewTableClient[E](client, s.form.Descriptor.Table)
	notifier := &ui.TermNotifier{Out: Out}
	confirmer := &ui.TermConfirmer{In: In, Out: Out}
	ctl := controller.New(s.form.Descriptor, gw, notifier, confirmer,
		controller.WithUploader[E, D](client),
		controller.WithOnMutate[E, D](func() { printTotals(ctx, client) }))
	return ctl, client
}

// printTotals печатает свежую сводку после мутации. Ошибка сводки не
// мешает самой операции, строка просто не выводится.
func printTotals(ctx context.Context, client *api.Client) {
	sum, err := client.Summary(ctx)
	if err != nil {
		return
	}
	fmt.Fprintf(Out, "Totals: blog %d, works %d, skills %d, education %d, experience %d, stats %d, brands %d, testimonials %d, messages %d (%d unread)\n",
		sum.BlogPosts, sum.Works, sum.Skills, sum.Education, sum.Experience,
		sum.Statistics, sum.Brands, sum.Testimonials, sum.Messages, sum.UnreadMessages)
}

// openDrafts открывает локальную БД черновиков вошедшего пользователя.
// Без сохранённой сессии черновики недоступны, это не ошибка.
func openDrafts(cfg *config.Config) *draftstore.Store {
	login, err := sessionStore(cfg).LoadLogin()
	if err != nil {
		return nil
	}
	ds, _, err := draftstore.OpenForUser(cfg.ConsoleDBDir, login)
	if err != nil {
		return nil
	}
	if err := ds.Migrate(); err != nil {
		_ = ds.Close()
		return nil
	}
	return ds
}

// splitArgs делит аргументы на пары поле=значение и пути файлов
// (префикс file=). Порядок файлов сохраняется.
func splitArgs(args []string) (fields [][2]string, files []string, err error) {
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return nil, nil, fmt.Errorf("expected field=value, got %q", a)
		}
		if k == "file" {
			files = append(files, v)
			continue
		}
		fields = append(fields, [2]string{k, v})
	}
	return fields, files, nil
}

func readFiles(paths []string) ([]controller.LocalFile, error) {
	out := make([]controller.LocalFile, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		out = append(out, controller.LocalFile{Name: filepath.Base(p), Data: data})
	}
	return out, nil
}

// fillAndSubmit применяет аргументы к черновику открытой формы,
// загружает файлы и отправляет форму. Черновик переживает неудачную
// отправку в локальной БД и восстанавливается при повторном запуске.
func (s entitySet[E, D]) fillAndSubmit(ctx context.Context, cfg *config.Config, ctl *controller.Controller[E, D], targetID string, args []string) error {
	fields, filePaths, err := splitArgs(args)
	if err != nil {
		return err
	}

	ds := openDrafts(cfg)
	if ds != nil {
		defer ds.Close()
		restored, err := ds.Load(s.form.Descriptor.Table, targetID, ctl.Draft())
		if err == nil && restored {
			fmt.Fprintln(Out, "Restored unsaved draft")
		}
	}

	for _, kv := range fields {
		if err := s.form.Set(ctl.Draft(), kv[0], kv[1]); err != nil {
			return err
		}
	}

	if len(filePaths) > 0 {
		files, err := readFiles(filePaths)
		if err != nil {
			return err
		}
		if err := ctl.UploadFiles(ctx, files); err != nil {
			return err
		}
	}

	if err := ctl.Submit(ctx); err != nil {
		if ds != nil {
			if serr := ds.Save(s.form.Descriptor.Table, targetID, ctl.Draft()); serr == nil {
				fmt.Fprintln(Out, "Draft saved locally, rerun the command to retry")
			}
		}
		return err
	}
	if ds != nil {
		_ = ds.Delete(s.form.Descriptor.Table, targetID)
	}
	return nil
}

type listCmd[E any, D any] struct{ s entitySet[E, D] }

func (c listCmd[E, D]) Name() string { return c.s.name + "-list" }
func (c listCmd[E, D]) Description() string {
	return "List " + c.s.form.Descriptor.Table + ", optionally filtered"
}
func (c listCmd[E, D]) Usage() string { return c.s.name + "-list [query]" }

func (c listCmd[E, D]) Run(ctx context.Context, cfg *config.Config, args []string) error {
	ctl, _ := c.s.newController(ctx, cfg)
	if err := ctl.Refresh(ctx); err != nil {
		return err
	}
	query := strings.Join(args, " ")
	items := ctl.Filtered(query)
	if len(items) == 0 {
		fmt.Fprintln(Out, "No records")
		return nil
	}
	for _, e := range items {
		c.s.form.Render(Out, e)
	}
	fmt.Fprintf(Out, "%d record(s)\n", len(items))
	return nil
}

type newCmd[E any, D any] struct{ s entitySet[E, D] }

func (c newCmd[E, D]) Name() string { return c.s.name + "-new" }
func (c newCmd[E, D]) Description() string {
	return "Create a " + c.s.form.Descriptor.Title
}
func (c newCmd[E, D]) Usage() string {
	return c.s.name + "-new <field>=<value>... [file=<path>...]"
}

func (c newCmd[E, D]) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	ctl, _ := c.s.newController(ctx, cfg)
	if err := ctl.BeginCreate(); err != nil {
		return err
	}
	return c.s.fillAndSubmit(ctx, cfg, ctl, "", args)
}

type editCmd[E any, D any] struct{ s entitySet[E, D] }

func (c editCmd[E, D]) Name() string { return c.s.name + "-edit" }
func (c editCmd[E, D]) Description() string {
	return "Edit a " + c.s.form.Descriptor.Title + " by id"
}
func (c editCmd[E, D]) Usage() string {
	return c.s.name + "-edit <id> <field>=<value>... [file=<path>...]"
}

func (c editCmd[E, D]) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id := args[0]
	ctl, _ := c.s.newController(ctx, cfg)
	// Форма редактирования засевается из свежей записи.
	if err := ctl.Refresh(ctx); err != nil {
		return err
	}
	if err := ctl.BeginEdit(id); err != nil {
		return err
	}
	return c.s.fillAndSubmit(ctx, cfg, ctl, id, args[1:])
}

type rmCmd[E any, D any] struct{ s entitySet[E, D] }

func (c rmCmd[E, D]) Name() string { return c.s.name + "-rm" }
func (c rmCmd[E, D]) Description() string {
	return "Delete a " + c.s.form.Descriptor.Title + " (asks for confirmation)"
}
func (c rmCmd[E, D]) Usage() string { return c.s.name + "-rm <id>" }

func (c rmCmd[E, D]) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	ctl, _ := c.s.newController(ctx, cfg)
	err := ctl.Delete(ctx, args[0])
	if err == controller.ErrCancelled {
		fmt.Fprintln(Out, "Cancelled")
		return nil
	}
	return err
}
