// Package ui — терминальные реализации уведомлений и подтверждений
// для контроллера формы.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"PortfolioDesk/internal/admin/controller"
)

// TermNotifier печатает уведомления в поток строками вида
// "[ERROR] Title: description".
type TermNotifier struct {
	Out io.Writer
}

// Notify реализует controller.Notifier.
func (n *TermNotifier) Notify(title, description string, severity controller.Severity) {
	fmt.Fprintf(n.Out, "[%s] %s: %s\n", strings.ToUpper(string(severity)), title, description)
}

// TermConfirmer блокирующе спрашивает y/n из потока ввода. Любой ответ,
// кроме y/yes, означает отказ; конец потока тоже отказ.
type TermConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm реализует controller.Confirmer.
func (c *TermConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.Out, "%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(c.In)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
