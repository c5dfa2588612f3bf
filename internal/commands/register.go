package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fiscalia-dev/spedparse/internal/sped"
)

func newRegisterCommand() *cobra.Command {
	var family string
	var configPath string
	var code string

	cmd := &cobra.Command{
		Use:   "register <file>",
		Short: "Dump every record of one type as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cmd.OutOrStdout(), family, configPath, code, args[0])
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "file family: contributions, fiscal, or ledger (required)")
	_ = cmd.MarkFlagRequired("family")
	cmd.Flags().StringVar(&code, "code", "", "record-type code, e.g. C170 or I355 (required)")
	_ = cmd.MarkFlagRequired("code")
	cmd.Flags().StringVar(&configPath, "config", "", "path to spedparse.yaml")

	return cmd
}

func runRegister(w io.Writer, family, configPath, code, path string) error {
	ext, opts, err := resolve(family, configPath)
	if err != nil {
		return err
	}

	res, err := sped.ParseFile(ext, path, opts)
	if err != nil {
		return err
	}

	rows, err := res.Register(code)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()
	for i, row := range rows {
		rec := make([]string, len(row))
		for col := range rec {
			rec[col] = row[strconv.Itoa(col)]
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}
