package main

import (
	"context"
	"fmt"

	"github.com/trezcool/courseadmin/core/page"
)

// nav fetches pagePath (path when empty), marks the nav links pointing to path as active and prints the result.
func (cli *commandLine) nav(ctx context.Context, path, pagePath string, printHTML bool) error {
	if pagePath == "" {
		pagePath = path
	}
	doc, err := cli.client.FetchPage(ctx, pagePath)
	if err != nil {
		return err
	}
	page.HighlightNav(doc, path)

	if printHTML {
		src, err := page.Render(doc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cli.out, src)
		return err
	}
	active := page.ActiveLinks(doc)
	if len(active) == 0 {
		_, err = fmt.Fprintf(cli.out, "no navigation link points to %s\n", path)
		return err
	}
	for _, href := range active {
		fmt.Fprintln(cli.out, href)
	}
	return nil
}
