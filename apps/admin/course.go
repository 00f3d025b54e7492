package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/trezcool/courseadmin/apps"
	"github.com/trezcool/courseadmin/core"
	"github.com/trezcool/courseadmin/core/course"
	"github.com/trezcool/courseadmin/core/page"
)

const (
	promptAction = "Action (update/delete/cancel):"
	msgCancelled = "Edit cancelled."
)

// newWidget returns a course widget that lists the courses of pagePath after every successful edit.
func (cli *commandLine) newWidget(pagePath string) *course.Widget {
	reload := course.ReloaderFunc(func(ctx context.Context) error {
		return cli.list(ctx, pagePath)
	})
	return course.NewWidget(cli.client, cli.ui, reload, cli.logger)
}

func (cli *commandLine) add(ctx context.Context, pagePath string) error {
	outcome, err := cli.newWidget(pagePath).Add(ctx)
	cli.logger.Debug("add course", map[string]interface{}{"outcome": outcome.String()})
	return err
}

func (cli *commandLine) fetchRows(ctx context.Context, pagePath string) ([]course.Course, error) {
	doc, err := cli.client.FetchPage(ctx, pagePath)
	if err != nil {
		return nil, err
	}
	return page.EditRows(doc), nil
}

func (cli *commandLine) list(ctx context.Context, pagePath string) error {
	rows, err := cli.fetchRows(ctx, pagePath)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPROFESSOR")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.ID, row.Name, row.Professor)
	}
	return tw.Flush()
}

// edit opens the edit modal of a course row, lets the user change its inputs, then runs the chosen action.
func (cli *commandLine) edit(ctx context.Context, id, pagePath string) error {
	rows, err := cli.fetchRows(ctx, pagePath)
	if err != nil {
		return err
	}
	row, ok := page.FindRow(rows, id)
	if !ok {
		ids := make([]string, 0, len(rows))
		for _, r := range rows {
			ids = append(ids, r.ID)
		}
		msg := fmt.Sprintf("course %q not found on %s", id, pagePath)
		if s := closest(id, ids); s != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", s)
		}
		return apps.NewArgumentError(msg)
	}

	w := cli.newWidget(pagePath)
	w.OpenEdit(row)
	modal := w.Modal()
	fmt.Fprintf(cli.out, "Editing course %s\n", modal.ID)

	// an empty answer keeps the current value
	for _, p := range []struct {
		label string
		dst   *string
	}{
		{"Course Name", &modal.Name},
		{"Professor Name", &modal.Professor},
	} {
		ans, err := cli.ui.Prompt(fmt.Sprintf("%s [%s]:", p.label, *p.dst))
		if err != nil {
			return err
		}
		if ans != "" {
			*p.dst = ans
		}
	}

	action, err := cli.ui.Prompt(promptAction)
	if err != nil {
		return err
	}
	var outcome course.Outcome
	switch core.CleanString(action, true /* lower */) {
	case "update", "u":
		outcome, err = w.Update(ctx)
	case "delete", "d":
		outcome, err = w.Delete(ctx)
	default:
		w.Cancel()
		fmt.Fprintln(cli.out, msgCancelled)
		return nil
	}
	cli.logger.Debug("edit course", map[string]interface{}{"course_id": id, "outcome": outcome.String()})
	return err
}
