package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/printer"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   messages.InfoUse,
		Short: messages.InfoShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, api, err := a.requireAPI()
			if err != nil {
				return err
			}
			r := a.workspace(cfg).Repo(cfg.Username, args[0])
			info, err := r.Info(cmd.Context(), api, now())
			if err != nil {
				return err
			}

			rows := []printer.Row{{Key: messages.InfoKeyName, Value: info.Name}}
			for _, kv := range []printer.Row{
				{Key: messages.InfoKeyDesc, Value: info.Description},
				{Key: messages.InfoKeyCreated, Value: info.Created},
				{Key: messages.InfoKeyUpdated, Value: info.Updated},
				{Key: messages.InfoKeySize, Value: info.Size},
				{Key: messages.InfoKeyLicense, Value: info.License},
				{Key: messages.InfoKeyLang, Value: info.Language},
			} {
				if kv.Value != "" {
					rows = append(rows, kv)
				}
			}
			rows = append(rows,
				printer.Row{Key: messages.InfoKeyRemote, Value: strconv.FormatBool(info.Remote)},
				printer.Row{Key: messages.InfoKeyLocal, Value: strconv.FormatBool(info.Local)},
			)
			a.out.Title(fmt.Sprintf(messages.InfoTitleFmt, info.Name))
			a.out.Table(rows)
			return nil
		},
	}
}
