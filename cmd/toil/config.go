package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/toil/internal/config"
	"github.com/conn-castle/toil/internal/messages"
	"github.com/conn-castle/toil/internal/printer"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ConfigUse,
		Short: messages.ConfigShort,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   messages.ConfigShowUse,
			Short: messages.ConfigShowShort,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := a.loadConfig()
				if err != nil {
					return err
				}
				rows := make([]printer.Row, 0, len(config.Fields()))
				for _, kv := range cfg.Pairs() {
					value := kv.Value
					if field, _ := config.LookupField(kv.Key); field.Secret && value != "" {
						value = messages.ConfigSecretMask
					}
					rows = append(rows, printer.Row{Key: kv.Key, Value: value})
				}
				a.out.Table(rows)
				return nil
			},
		},
		&cobra.Command{
			Use:   messages.ConfigGetUse,
			Short: messages.ConfigGetShort,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := a.loadConfig()
				if err != nil {
					return err
				}
				value, err := cfg.Get(args[0])
				if err != nil {
					return err
				}
				a.out.Text(fmt.Sprintf(messages.ConfigShowKeyValueFmt, args[0], value))
				return nil
			},
		},
		&cobra.Command{
			Use:   messages.ConfigSetUse,
			Short: messages.ConfigSetShort,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := a.path()
				if err != nil {
					return err
				}
				cfg, err := config.Set(path, args[0], args[1])
				if err != nil {
					return err
				}
				value, err := cfg.Get(args[0])
				if err != nil {
					return err
				}
				a.out.Goodf(messages.ConfigSetDoneFmt, args[0], value)
				return nil
			},
		},
		&cobra.Command{
			Use:   messages.ConfigInitUse,
			Short: messages.ConfigInitShort,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := a.path()
				if err != nil {
					return err
				}
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf(messages.ConfigAlreadyExistsFmt, path)
				}
				return a.setup(path)
			},
		},
		&cobra.Command{
			Use:   messages.ConfigExplainUse,
			Short: messages.ConfigExplainShort,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := a.path()
				if err != nil {
					return err
				}
				a.out.Title(fmt.Sprintf(messages.ConfigExplainHeader, path))
				w := a.out.Writer()
				for _, f := range config.Fields() {
					_, _ = fmt.Fprintf(w, messages.ConfigExplainRow, f.Key, f.Type, f.Description)
				}
				return nil
			},
		},
	)
	return cmd
}
