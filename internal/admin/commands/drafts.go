package commands

import (
	"context"
	"fmt"
	"time"

	"PortfolioDesk/internal/config"
)

type draftsCmd struct{}

func (draftsCmd) Name() string        { return "drafts" }
func (draftsCmd) Description() string { return "List locally saved unsubmitted drafts" }
func (draftsCmd) Usage() string       { return "drafts" }

func (draftsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	ds := openDrafts(cfg)
	if ds == nil {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}
	defer ds.Close()

	entries, err := ds.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(Out, "No drafts")
		return nil
	}
	for _, e := range entries {
		target := e.TargetID
		if target == "" {
			target = "(new)"
		}
		fmt.Fprintf(Out, "%-20s  %-36s  %s\n", e.Table, target, e.SavedAt.Format(time.RFC3339))
	}
	return nil
}

func init() { RegisterCmd(draftsCmd{}) }
