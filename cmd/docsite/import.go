package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/importer"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	if deps.Importer == nil {
		return docsite.Errorf(docsite.EINVALID, "import writes to a local site; unset --origin")
	}

	reqs, err := c.requests()
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		return docsite.Errorf(docsite.EINVALID, "no pages to import; pass name=url or --manifest")
	}
	deps.Writer.Overwrite = c.Overwrite

	finished := 0
	outcomes, err := deps.Importer.ImportAll(deps.Ctx, reqs, func(o importer.Outcome) {
		finished++
		if o.Err != nil {
			fmt.Fprintf(deps.Stderr, "[%d/%d] failed %s: %s\n", finished, len(reqs), o.Name, errorMessage(o.Err))
			return
		}
		fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", finished, len(reqs), o.Name)
	})
	if err != nil {
		return err
	}

	var failed []importer.Outcome
	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
			continue
		}
		fmt.Fprintf(deps.Stdout, "Imported %s (%s) to %s\n", o.Name, humanize.Bytes(uint64(len(o.Page.Content))), deps.Writer.Path(o.Name))
	}
	if len(failed) > 0 {
		return docsite.Errorf(docsite.ErrorCode(failed[0].Err), "%d of %d pages failed to import", len(failed), len(reqs))
	}
	return nil
}

// requests collects the pages named by the manifest and the arguments.
func (c *ImportCmd) requests() ([]importer.Request, error) {
	var reqs []importer.Request
	if c.Manifest != "" {
		f, err := os.Open(c.Manifest)
		if err != nil {
			return nil, docsite.Errorf(docsite.EINVALID, "cannot read manifest: %v", err)
		}
		defer f.Close()

		m, err := importer.ReadManifest(f)
		if err != nil {
			return nil, err
		}
		if reqs, err = m.Requests(); err != nil {
			return nil, err
		}
	}

	args, err := importer.ParseArgs(c.Pages)
	if err != nil {
		return nil, err
	}
	return importer.Combine(reqs, args)
}
