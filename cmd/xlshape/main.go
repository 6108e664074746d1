// Package main provides the CLI entry point for xlshape-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/xlshape-go/pkg/xlshape"
	"github.com/ukaji3/xlshape-go/pkg/xlshape/config"
	"github.com/ukaji3/xlshape-go/pkg/xlshape/output"
	"github.com/ukaji3/xlshape-go/pkg/xlshape/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	outputPath string
	pretty     bool
	configPath string
	verbose    bool

	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlshape",
		Short: "Create and inspect shapes in Excel drawings",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	newCmd := &cobra.Command{
		Use:   "new [output.xlsx]",
		Short: "Create a workbook with the shapes of a definition file",
		Args:  cobra.ExactArgs(1),
		RunE:  runNew,
	}
	newCmd.Flags().StringVarP(&configPath, "config", "c", "", "Shape definition file (YAML)")
	_ = newCmd.MarkFlagRequired("config")

	dumpCmd := &cobra.Command{
		Use:   "dump [input.xlsx]",
		Short: "Print the shapes of a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	addOutputFlags(dumpCmd.Flags())

	prototypeCmd := &cobra.Command{
		Use:   "prototype",
		Short: "Print the default shape record as XML",
		Args:  cobra.NoArgs,
		RunE:  runPrototype,
	}
	prototypeCmd.Flags().BoolVar(&pretty, "pretty", false, "Indent XML output")

	rootCmd.AddCommand(newCmd, dumpCmd, prototypeCmd)
	return rootCmd
}

func addOutputFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	fs.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
}

func runNew(cmd *cobra.Command, args []string) error {
	defs, err := config.Load(configPath)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	opts := xlshape.DefaultOptions()
	if defs.Language != "" {
		opts.Language = defs.Language
	}
	opts.Logger = logger

	if err := buildShapes(f, defs, opts); err != nil {
		return err
	}

	if err := f.SaveAs(args[0]); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	logger.Info("workbook written", zap.String("path", args[0]), zap.Int("shapes", len(defs.Shapes)))
	return nil
}

func buildShapes(f *excelize.File, defs *config.File, opts xlshape.Options) error {
	styles := xlshape.NewWorkbookStyles(f)
	for i, def := range defs.Shapes {
		if idx, err := f.GetSheetIndex(def.Sheet); err != nil || idx == -1 {
			if _, err := f.NewSheet(def.Sheet); err != nil {
				return fmt.Errorf("failed to create sheet %q: %w", def.Sheet, err)
			}
		}

		shape, err := xlshape.NewShape(opts)
		if err != nil {
			return err
		}
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("Shape %d", i+1)
		}
		if err := shape.SetName(i+1, name); err != nil {
			return err
		}
		if err := shape.SetShapeType(def.ShapeType()); err != nil {
			return err
		}
		if def.Width > 0 || def.Height > 0 {
			if err := shape.SetSize(def.Width, def.Height); err != nil {
				return err
			}
		}
		rt := def.RichText()
		// the anchor cell keeps a copy of the text so it can be edited in the grid
		if text := xlshape.NewRichTextStringFromModel(rt); text.Length() > 0 {
			if err := f.SetCellRichText(def.Sheet, def.Cell, parser.ExcelizeRuns(rt)); err != nil {
				return fmt.Errorf("failed to write text of %q to %s!%s: %w", name, def.Sheet, def.Cell, err)
			}
		}
		if err := shape.SetText(xlshape.NewRichTextStringFromModel(rt), styles); err != nil {
			return err
		}
		if err := xlshape.AddShape(f, def.Sheet, def.Cell, shape); err != nil {
			return err
		}
	}
	return nil
}

func runDump(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	wb, err := parser.ExtractWorkbook(inputPath)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	for sheetName, sheet := range wb.Sheets {
		logger.Debug("extracted shapes", zap.String("sheet", sheetName), zap.Int("shapes", len(sheet.Shapes)))
	}

	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd, jsonData)
}

func runPrototype(cmd *cobra.Command, args []string) error {
	rec, err := xlshape.Prototype()
	if err != nil {
		return err
	}
	data, err := output.ShapeToXML(rec, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd, data)
}

func writeOutput(cmd *cobra.Command, data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
