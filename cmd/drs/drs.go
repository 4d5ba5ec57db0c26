package drs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/GBA-BI/drs-client/cmd/drs/options"
	"github.com/GBA-BI/drs-client/internal/application"
	"github.com/GBA-BI/drs-client/internal/infra/repo"
	"github.com/GBA-BI/drs-client/pkg/apperror"
	drsclient "github.com/GBA-BI/drs-client/pkg/drs"
	"github.com/GBA-BI/drs-client/pkg/log"
	"github.com/GBA-BI/drs-client/pkg/version"
)

// NewDRSCommand builds the drs command tree with options resolved from the
// environment.
func NewDRSCommand(ctx context.Context) *cobra.Command {
	opts := options.NewFromENV()

	cmd := newRootCommand()
	opts.AddFlags(cmd.PersistentFlags())
	version.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newGetCommand(ctx, opts),
		newAccessCommand(ctx, opts),
		newPostCommand(ctx, opts),
		newDeleteCommand(ctx, opts),
		newFetchCommand(ctx, opts),
	)

	return cmd
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "drs",
		Short: "client for GA4GH DRS instances",
		Long: `client for GA4GH Data Repository Service instances, including the
registration and deletion endpoints defined in DRS-filer
`,
		SilenceUsage: true,
	}
}

// runWithClient does the shared per-call setup: option validation, logger,
// client construction.
func runWithClient(opts *options.Options, fn func(client *drsclient.Client, logger log.Logger) error) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	logger, err := log.GetLogger(opts.Log)
	if err != nil {
		return err
	}
	defer log.Close()

	version.PrintVersionOrContinue()

	client, err := drsclient.New(opts.Client, logger)
	if err != nil {
		return err
	}
	if err := fn(client, logger); err != nil {
		logger.Errorf("run error: %v", err)
		return codedError(err)
	}
	return nil
}

// codedError maps client errors onto coded errors for scripted callers. API
// errors already carry the instance's status code and pass through untouched.
func codedError(err error) error {
	var apiErr *drsclient.APIError
	switch {
	case errors.As(err, &apiErr):
		return err
	case errors.Is(err, drsclient.ErrInvalidURI):
		return apperror.NewInvalidURIError(err)
	case errors.Is(err, drsclient.ErrInvalidObjectData):
		return apperror.NewInvalidObjectDataError(err)
	case errors.Is(err, drsclient.ErrInvalidResponse):
		return apperror.NewInvalidResponseError(err)
	case errors.Is(err, drsclient.ErrConnectionFailure):
		return apperror.NewConnectionFailureError(err)
	default:
		return err
	}
}

func newGetCommand(ctx context.Context, opts *options.Options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "get object-id",
		Short: "retrieve a DRS object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(opts, func(client *drsclient.Client, _ log.Logger) error {
				object, err := client.GetObject(ctx, args[0], "")
				if err != nil {
					return err
				}
				return printObject(object, asJSON)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw object JSON")
	return cmd
}

func newAccessCommand(ctx context.Context, opts *options.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "access object-id access-id",
		Short: "retrieve the access URL behind one of an object's access methods",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(opts, func(client *drsclient.Client, _ log.Logger) error {
				accessURL, err := client.GetAccessURL(ctx, args[0], args[1], "")
				if err != nil {
					return err
				}
				fmt.Println(accessURL.URL)
				return nil
			})
		},
	}
}

func newPostCommand(ctx context.Context, opts *options.Options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "post -f object.json",
		Short: "register a DRS object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(opts, func(client *drsclient.Client, _ log.Logger) error {
				object, err := readPostObject(file)
				if err != nil {
					return err
				}
				objectID, err := client.PostObject(ctx, object, "")
				if err != nil {
					return err
				}
				fmt.Println(objectID)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with the object to register")
	cmd.MarkFlagRequired("file")
	return cmd
}

func newDeleteCommand(ctx context.Context, opts *options.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete object-id",
		Short: "delete a DRS object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(opts, func(client *drsclient.Client, _ log.Logger) error {
				objectID, err := client.DeleteObject(ctx, args[0], "")
				if err != nil {
					return err
				}
				fmt.Println(objectID)
				return nil
			})
		},
	}
}

func newFetchCommand(ctx context.Context, opts *options.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch object-id",
		Short: "download the bytes of a DRS object to a local path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.ValidateFetch(); err != nil {
				return err
			}
			return runWithClient(opts, func(client *drsclient.Client, logger log.Logger) error {
				objectsRepo, err := repo.NewObjectRepo(opts.Repo, client, logger)
				if err != nil {
					return err
				}
				fetchCmd, err := application.NewFetchCmd(opts.App, objectsRepo)
				if err != nil {
					return err
				}
				return fetchCmd.Fetch(ctx, args[0], "")
			})
		},
	}
	opts.AddFetchFlags(cmd.Flags())
	return cmd
}

func readPostObject(path string) (*drsclient.PostDrsObject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var object drsclient.PostDrsObject
	if err := json.Unmarshal(data, &object); err != nil {
		return nil, fmt.Errorf("failed to parse object data: %w", err)
	}
	return &object, nil
}

func printObject(object *drsclient.DrsObject, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(object, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	table := uitable.New()
	table.RightAlign(0)
	table.MaxColWidth = 80
	table.Separator = " "
	table.AddRow("id:", object.ID)
	if object.Name != "" {
		table.AddRow("name:", object.Name)
	}
	table.AddRow("self_uri:", object.SelfURI)
	table.AddRow("size:", fmt.Sprintf("%d", object.Size))
	table.AddRow("version:", object.Version)
	table.AddRow("created_time:", object.CreatedTime)
	table.AddRow("updated_time:", object.UpdatedTime)
	if object.MimeType != "" {
		table.AddRow("mime_type:", object.MimeType)
	}
	for _, checksum := range object.Checksums {
		table.AddRow("checksum:", fmt.Sprintf("%s:%s", checksum.Type, checksum.Checksum))
	}
	accessTypes := make([]string, 0, len(object.AccessMethods))
	for _, accessMethod := range object.AccessMethods {
		accessTypes = append(accessTypes, accessMethod.Type)
	}
	table.AddRow("access_methods:", strings.Join(accessTypes, ", "))

	fmt.Println(table.String())
	return nil
}
