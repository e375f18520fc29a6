package main

import (
	"fmt"
	"sort"
	"sync"

	// Packages
	errgroup "golang.org/x/sync/errgroup"

	chat "github.com/devtoolbox/go-chat"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelsCmd struct {
	All bool `flag:"all" help:"Query every configured provider, not just the selected one"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ModelsCmd) Run(globals *Globals) error {
	var clients []chat.Client
	if cmd.All {
		all, err := globals.Clients()
		if err != nil {
			return err
		}
		clients = all
	} else {
		c, err := globals.Client()
		if err != nil {
			return err
		}
		clients = []chat.Client{c}
	}

	// Collect models from all providers in parallel
	var mu sync.Mutex
	type row struct {
		provider, model string
	}
	var rows []row

	wg, ctx := errgroup.WithContext(globals.ctx)
	for _, c := range clients {
		wg.Go(func() error {
			models, err := c.Models(ctx)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			for _, model := range models {
				rows = append(rows, row{c.Name(), model})
			}
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return err
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].provider != rows[j].provider {
			return rows[i].provider < rows[j].provider
		}
		return rows[i].model < rows[j].model
	})
	for _, row := range rows {
		fmt.Printf("%s\t%s\n", row.provider, row.model)
	}
	return nil
}
