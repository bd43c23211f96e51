package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/internal/service/catalog"
)

func newImportCmd() *cobra.Command {
	var as string
	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Upsert modules and fields from a YAML catalog document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := decodeDocument(f)
			if err != nil {
				return err
			}

			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			ctx, err := e.actAs(cmd.Context(), as)
			if err != nil {
				return err
			}
			res, err := e.svcs.Catalog.ImportCatalog(ctx, *doc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "modules: %d created, %d updated\nfields: %d created, %d updated\n",
				res.ModulesCreated, res.ModulesUpdated, res.FieldsCreated, res.FieldsUpdated)
			return nil
		},
	}
	cmd.Flags().StringVar(&as, "as", "", "email of the admin performing the import")
	_ = cmd.MarkFlagRequired("as")
	return cmd
}

func newExportCmd() *cobra.Command {
	var as, kind string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog of one entity kind as YAML to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k := domain.EntityKind(kind)
			if !k.IsValid() {
				return fmt.Errorf("unknown kind %q", kind)
			}

			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			ctx, err := e.actAs(cmd.Context(), as)
			if err != nil {
				return err
			}
			doc, err := e.svcs.Catalog.ExportCatalog(ctx, k)
			if err != nil {
				return err
			}
			return encodeDocument(cmd.OutOrStdout(), doc)
		},
	}
	cmd.Flags().StringVar(&as, "as", "", "email of the admin performing the export")
	cmd.Flags().StringVar(&kind, "kind", string(domain.EntityKindSystem), "entity kind: system or company")
	_ = cmd.MarkFlagRequired("as")
	return cmd
}

func decodeDocument(r io.Reader) (*catalog.Document, error) {
	var doc catalog.Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func encodeDocument(w io.Writer, doc *catalog.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
