package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/phenomvv/aetherapp/internal/ops"
	"github.com/phenomvv/aetherapp/internal/task"
)

func main() {
	root := &cobra.Command{
		Use:           "aether-ops",
		Short:         "Offline data operations for the aether task tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(snapshotCmd(), restoreCmd(), exportCmd(), importCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func snapshotCmd() *cobra.Command {
	var dataDir, out string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Archive the data directory state files to a tar.gz",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = filepath.Join("backups", ops.DefaultArchiveName(time.Now()))
			}
			if err := ops.Snapshot(dataDir, out); err != nil {
				return err
			}
			fmt.Println("wrote", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "path to the data directory")
	cmd.Flags().StringVar(&out, "out", "", "output archive path")
	return cmd
}

func restoreCmd() *cobra.Command {
	var dataDir, archive string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore state files from a snapshot archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			if archive == "" {
				return fmt.Errorf("--archive is required")
			}
			if err := ops.Restore(archive, dataDir); err != nil {
				return err
			}
			fmt.Println("restored into", dataDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "path to the data directory")
	cmd.Flags().StringVar(&archive, "archive", "", "snapshot archive to restore")
	return cmd
}

func exportCmd() *cobra.Command {
	var dataDir, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the task collection as a JSON backup document",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := task.NewStore(task.Options{DataDir: dataDir})
			if err != nil {
				return err
			}
			b, err := store.ExportJSON()
			if err != nil {
				return err
			}
			if out == "" {
				out = task.ExportFilename(time.Now())
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return err
			}
			fmt.Println("wrote", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "path to the data directory")
	cmd.Flags().StringVar(&out, "out", "", "output file path")
	return cmd
}

func importCmd() *cobra.Command {
	var dataDir, file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the task collection from a JSON backup document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			b, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			store, err := task.NewStore(task.Options{DataDir: dataDir})
			if err != nil {
				return err
			}
			n, err := store.ImportJSON(b)
			if err != nil {
				return err
			}
			fmt.Println("imported", n, "tasks")
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "path to the data directory")
	cmd.Flags().StringVar(&file, "file", "", "backup document to import")
	return cmd
}
