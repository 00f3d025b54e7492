package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/courseadmin/apps"
	"github.com/trezcool/courseadmin/core"
	"github.com/trezcool/courseadmin/services/api"
)

var errHelp = errors.New("help provided")

var commands = []string{"add", "list", "edit", "student", "nav"}

type commandLine struct {
	client *apisvc.Client
	ui     core.Prompter
	out    io.Writer
	logger core.Logger
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  add                                   - add a course (prompts for its fields)")
	fmt.Fprintln(cli.out, "  list [-page PATH]                     - list the courses of the course page")
	fmt.Fprintln(cli.out, "  edit -id COURSE_ID [-page PATH]       - update or delete a course")
	fmt.Fprintln(cli.out, "  student update -id ID -name NAME -email EMAIL")
	fmt.Fprintln(cli.out, "  student patch -id ID -set FIELD=VALUE [-set ...]")
	fmt.Fprintln(cli.out, "  student delete -id ID")
	fmt.Fprintln(cli.out, "  student options")
	fmt.Fprintln(cli.out, "  nav -path PATH [-page PAGE] [-html]   - mark the nav links pointing to PATH as active")
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

// parse wraps flag.ErrHelp so that -h behaves like any other usage request.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return apps.NewArgumentError(err.Error())
	}
	return nil
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	pagePath := cli.client.CoursePagePath()

	listCmd := cli.newFlagSet("list")
	listPage := listCmd.String("page", pagePath, "The page rendering the course rows.")

	editCmd := cli.newFlagSet("edit")
	editID := editCmd.String("id", "", "The id of the course to edit.")
	editPage := editCmd.String("page", pagePath, "The page rendering the course rows.")

	navCmd := cli.newFlagSet("nav")
	navPath := navCmd.String("path", "", "The current page path.")
	navPage := navCmd.String("page", "", "The page to fetch (defaults to -path).")
	navHTML := navCmd.Bool("html", false, "Print the highlighted page instead of the active links.")

	switch args[1] {
	case "add":
		return cli.add(ctx, pagePath)
	case "list":
		if err := parse(listCmd, args[2:]); err != nil {
			return err
		}
		return cli.list(ctx, *listPage)
	case "edit":
		if err := parse(editCmd, args[2:]); err != nil {
			return err
		}
		if core.CleanString(*editID) == "" {
			editCmd.Usage()
			return errHelp
		}
		return cli.edit(ctx, core.CleanString(*editID), *editPage)
	case "student":
		return cli.student(ctx, args[2:])
	case "nav":
		if err := parse(navCmd, args[2:]); err != nil {
			return err
		}
		if *navPath == "" {
			navCmd.Usage()
			return errHelp
		}
		return cli.nav(ctx, *navPath, *navPage, *navHTML)
	default:
		cli.printUsage()
		if s := closest(args[1], commands); s != "" {
			fmt.Fprintf(cli.out, "\nDid you mean %q?\n", s)
		}
		return errHelp
	}
}

// closest returns the candidate most similar to word, or "" when none is close enough.
func closest(word string, candidates []string) string {
	const minRatio = .6
	type match struct {
		s     string
		ratio float64
	}
	matches := make([]match, 0, len(candidates))
	for _, c := range candidates {
		r := difflib.NewMatcher(strings.Split(word, ""), strings.Split(c, "")).Ratio()
		if r >= minRatio {
			matches = append(matches, match{c, r})
		}
	}
	if len(matches) == 0 {
		return ""
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].ratio > matches[j].ratio })
	return matches[0].s
}

// isUserError reports errors caused by the user's input rather than by the system.
func isUserError(err error) bool {
	switch pkgerrors.Cause(err).(type) {
	case *apps.ArgumentError, *core.ValidationError:
		return true
	default:
		return false
	}
}
