package commands

import (
	"context"
	"fmt"

	"PortfolioDesk/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show session and content summary" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	store := sessionStore(cfg)
	login, err := store.LoadLogin()
	if err != nil {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}

	c := newClient(cfg)
	uid, err := c.Session(ctx)
	if err != nil {
		fmt.Fprintf(Out, "Stored session for %q is not valid: %v\n", login, err)
		return nil
	}
	fmt.Fprintf(Out, "Logged in as %s (user id %d)\n", login, uid)

	sum, err := c.Summary(ctx)
	if err != nil {
		return fmt.Errorf("loading summary: %w", err)
	}
	fmt.Fprintf(Out, "Blog posts:    %d\n", sum.BlogPosts)
	fmt.Fprintf(Out, "Works:         %d\n", sum.Works)
	fmt.Fprintf(Out, "Skills:        %d\n", sum.Skills)
	fmt.Fprintf(Out, "Education:     %d\n", sum.Education)
	fmt.Fprintf(Out, "Experience:    %d\n", sum.Experience)
	fmt.Fprintf(Out, "Statistics:    %d\n", sum.Statistics)
	fmt.Fprintf(Out, "Brands:        %d\n", sum.Brands)
	fmt.Fprintf(Out, "Testimonials:  %d\n", sum.Testimonials)
	fmt.Fprintf(Out, "Messages:      %d (%d unread)\n", sum.Messages, sum.UnreadMessages)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
