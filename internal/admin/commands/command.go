// Package commands — консольные команды администратора портфолио:
// вход, списки таблиц, формы создания и правки, загрузка изображений,
// работа с сообщениями.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"PortfolioDesk/internal/config"
)

// ErrUsage возвращается командой при неверных аргументах: диспетчер
// печатает её Usage вместо текста ошибки.
var ErrUsage = errors.New("usage")

// Command — одна консольная подкоманда.
type Command interface {
	// Name — имя команды, как его набирает пользователь ("login").
	Name() string
	// Description — короткое описание для справки.
	Description() string
	// Usage — точная строка использования ("login <login> <password>").
	Usage() string
	// Run выполняет команду; args — без имени команды.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// Потоки консоли. В тестах переназначаются на буферы.
var (
	Out io.Writer = os.Stdout
	In  io.Reader = os.Stdin
)

var registry = map[string]Command{}

// RegisterCmd регистрирует команду; вызывается из init каждой команды.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get возвращает команду по имени.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List возвращает все команды, отсортированные по имени.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage собирает общую справку по всем командам.
func FormatGlobalUsage() string {
	var b strings.Builder
	b.WriteString("PortfolioDesk console\n\n")
	b.WriteString("Usage:\n  pdesk [--base-url <host:port>] <command> [args]\n\n")
	b.WriteString("Commands:\n")
	for _, c := range List() {
		fmt.Fprintf(&b, "  %-42s %s\n", c.Usage(), c.Description())
	}
	return b.String()
}
