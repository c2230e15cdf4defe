package forms

import (
	"errors"
	"fmt"
	"io"

	"PortfolioDesk/internal/admin/controller"
	"PortfolioDesk/internal/model"
)

// MessageDraft пуст нарочно: сообщения создаёт публичный сайт, консоль
// их только читает, помечает и удаляет.
type MessageDraft struct{}

// Messages возвращает форму таблицы contact_submissions.
func Messages() Form[model.ContactSubmission, MessageDraft] {
	desc := controller.Descriptor[model.ContactSubmission, MessageDraft]{
		Table: "contact_submissions",
		Title: "message",
		ID:    func(e model.ContactSubmission) string { return e.ID },
		SearchFields: func(e model.ContactSubmission) []string {
			return []string{e.Name, e.Email, e.Subject}
		},
		NewDraft: func() MessageDraft { return MessageDraft{} },
		Seed:     func(model.ContactSubmission) MessageDraft { return MessageDraft{} },
		Transform: func(MessageDraft) (map[string]any, error) {
			return nil, errors.New("contact messages are created by the public site")
		},
	}

	return Form[model.ContactSubmission, MessageDraft]{
		Descriptor: desc,
		Set: func(*MessageDraft, string, string) error {
			return errors.New("contact messages are not editable")
		},
		Render: func(w io.Writer, e model.ContactSubmission) {
			mark := "•"
			if e.Read {
				mark = " "
			}
			fmt.Fprintf(w, "%s %s  %-25s  %-30s  %s\n", mark, e.ID, e.Name, e.Email, e.Subject)
		},
	}
}
