package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vicsion901-rgb/onlyteaching/core"
	"github.com/vicsion901-rgb/onlyteaching/core/comment"
	"github.com/vicsion901-rgb/onlyteaching/core/xlsimport"
)

// seedComments loads keyword-bank rows from a spreadsheet laid out as
// category | subcategory | attribute | content, one fragment per row.
func (cli *commandLine) seedComments(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	matrix := xlsimport.ParseMatrix(f)
	if len(matrix) == 0 {
		return fmt.Errorf("no rows found in %s", path)
	}

	ctx := context.Background()
	var seeded int
	for i, row := range matrix {
		nc := comment.NewComment{}
		if len(row) > 0 {
			nc.Category = core.CleanString(row[0])
		}
		if len(row) > 1 {
			nc.Subcategory = core.CleanString(row[1])
		}
		if len(row) > 2 {
			nc.Attribute = core.CleanString(row[2])
		}
		if len(row) > 3 {
			nc.Content = core.CleanString(row[3])
		}

		// header row
		if i == 0 && (nc.Category == "category" || nc.Category == "대분류") {
			continue
		}
		if nc.Category == "" || nc.Content == "" {
			continue
		}

		if _, err := cli.commentSvc.Create(ctx, nc); err != nil {
			return err
		}
		seeded++
	}

	logger.Printf("seeded %d keyword-bank entries", seeded)
	return nil
}
