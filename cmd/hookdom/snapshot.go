package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/hookdom/internal/snapshot"
)

func snapshotCmd(flags *globalFlags) *cobra.Command {
	var (
		bucket string
		key    string
		prefix string
		title  string
		clicks int
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the demo and upload the HTML to S3",
		Long: `Render the demo application and upload it as a standalone HTML page.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN. Region and endpoint come from the snapshot section of
the config file or AWS_REGION.

Examples:
  hookdom snapshot --bucket=previews
  hookdom snapshot --bucket=previews --key=counter --clicks=2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Snapshot.Bucket = bucket
			}
			if prefix != "" {
				cfg.Snapshot.Prefix = prefix
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Debug)

			doc, err := renderDemo(cmd.Context(), cfg, logger, clicks)
			if err != nil {
				return err
			}

			store := snapshot.NewStore(snapshot.NewClient(cfg.Snapshot), cfg.Snapshot.Bucket, cfg.Snapshot.Prefix)
			uploaded, err := store.Upload(cmd.Context(), key, title, doc.Root().InnerHTML())
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Uploaded s3://%s/%s", cfg.Snapshot.Bucket, uploaded)
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (default from config)")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Object name (default: UTC timestamp)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from config)")
	cmd.Flags().StringVar(&title, "title", "hookdom", "Page title")
	cmd.Flags().IntVarP(&clicks, "clicks", "n", 0, "Click the increment button N times before uploading")

	return cmd
}
