package commands

import (
	"context"
	"fmt"

	"PortfolioDesk/internal/admin/forms"
	"PortfolioDesk/internal/config"
	"PortfolioDesk/internal/model"
)

// markReadCmd переключает признак прочитанности сообщения, минуя форму.
type markReadCmd struct {
	read bool
}

func (c markReadCmd) Name() string {
	if c.read {
		return "msg-read"
	}
	return "msg-unread"
}

func (c markReadCmd) Description() string {
	if c.read {
		return "Mark a contact message as read"
	}
	return "Mark a contact message as unread"
}

func (c markReadCmd) Usage() string { return c.Name() + " <id>" }

func (c markReadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	s := entitySet[model.ContactSubmission, forms.MessageDraft]{name: "msg", form: forms.Messages()}
	ctl, _ := s.newController(ctx, cfg)

	action := "mark read"
	if !c.read {
		action = "mark unread"
	}
	if err := ctl.Apply(ctx, args[0], map[string]any{"read": c.read}, action); err != nil {
		return err
	}
	fmt.Fprintln(Out, "OK")
	return nil
}

func init() {
	RegisterCmd(markReadCmd{read: true})
	RegisterCmd(markReadCmd{read: false})
}
