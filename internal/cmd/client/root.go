package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	directordv1 "github.com/mwhahaha/directord/api/directord/v1"
)

const defaultServerAddr = "127.0.0.1:5558"

// serverAddr resolves the target server from the flag, then the environment,
// then the default.
func serverAddr(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv("DIRECTORD_GRPC_SERVER_ADDRESS"); v != "" {
		return v
	}
	return defaultServerAddr
}

func withClient(addr string, fn func(ctx context.Context, c *Client) error) error {
	c, err := Dial(serverAddr(addr))
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return fn(ctx, c)
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

// NewRoot constructs the client command groups: message, job, purge, stats.
func NewRoot() *cobra.Command {
	var addr string
	root := &cobra.Command{
		Use:   "client",
		Short: "Client commands against a running directord server",
	}
	root.PersistentFlags().StringVar(&addr, "server", "", "server address (default $DIRECTORD_GRPC_SERVER_ADDRESS or "+defaultServerAddr+")")

	root.AddCommand(newKindCommand("message", &addr,
		func(ctx context.Context, c *Client, target string, data *directordv1.MessageData) (bool, error) {
			return c.PutMessage(ctx, target, data)
		},
		func(ctx context.Context, c *Client, target string) (*directordv1.MessageData, bool, error) {
			return c.GetMessage(ctx, target)
		},
		func(ctx context.Context, c *Client, target string) (bool, error) {
			return c.MessageCheck(ctx, target)
		}))
	root.AddCommand(newKindCommand("job", &addr,
		func(ctx context.Context, c *Client, target string, data *directordv1.MessageData) (bool, error) {
			return c.PutJob(ctx, target, data)
		},
		func(ctx context.Context, c *Client, target string) (*directordv1.MessageData, bool, error) {
			return c.GetJob(ctx, target)
		},
		func(ctx context.Context, c *Client, target string) (bool, error) {
			return c.JobCheck(ctx, target)
		}))
	root.AddCommand(newPurgeCommand(&addr))
	root.AddCommand(newStatsCommand(&addr))
	return root
}

func newKindCommand(kind string, addr *string,
	put func(context.Context, *Client, string, *directordv1.MessageData) (bool, error),
	get func(context.Context, *Client, string) (*directordv1.MessageData, bool, error),
	check func(context.Context, *Client, string) (bool, error),
) *cobra.Command {
	cmd := &cobra.Command{Use: kind, Short: fmt.Sprintf("Operate on the %s queue space", kind)}

	var target string
	data := &directordv1.MessageData{}
	putCmd := &cobra.Command{
		Use:   "put",
		Short: fmt.Sprintf("Queue a %s for a target", kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(*addr, func(ctx context.Context, c *Client) error {
				ok, err := put(ctx, c, target, data)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%s put rejected", kind)
				}
				fmt.Println("ok")
				return nil
			})
		},
	}
	putCmd.Flags().StringVar(&target, "target", "", "queue target (required)")
	putCmd.Flags().StringVar(&data.Identity, "identity", "", "sender identity")
	putCmd.Flags().StringVar(&data.MsgID, "msg-id", "", "correlation id")
	putCmd.Flags().StringVar(&data.Control, "control", "", "control flag")
	putCmd.Flags().StringVar(&data.Command, "command", "", "requested action")
	putCmd.Flags().StringVar(&data.Data, "data", "", "opaque payload")
	putCmd.Flags().StringVar(&data.Info, "info", "", "informational text")
	_ = putCmd.MarkFlagRequired("target")
	cmd.AddCommand(putCmd)

	var getTarget string
	getCmd := &cobra.Command{
		Use:   "get",
		Short: fmt.Sprintf("Fetch the oldest queued %s for a target", kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(*addr, func(ctx context.Context, c *Client) error {
				env, ok, err := get(ctx, c, getTarget)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Printf("no %s for %s\n", kind, getTarget)
					return nil
				}
				return printJSON(env)
			})
		},
	}
	getCmd.Flags().StringVar(&getTarget, "target", "", "queue target (required)")
	_ = getCmd.MarkFlagRequired("target")
	cmd.AddCommand(getCmd)

	var checkTarget string
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: fmt.Sprintf("Report whether a target has queued %ss", kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(*addr, func(ctx context.Context, c *Client) error {
				has, err := check(ctx, c, checkTarget)
				if err != nil {
					return err
				}
				fmt.Println(has)
				return nil
			})
		},
	}
	checkCmd.Flags().StringVar(&checkTarget, "target", "", "queue target (required)")
	_ = checkCmd.MarkFlagRequired("target")
	cmd.AddCommand(checkCmd)

	return cmd
}

func newPurgeCommand(addr *string) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Drop every queue for both kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(*addr, func(ctx context.Context, c *Client) error {
				ok, err := c.PurgeQueues(ctx, verbose)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("purge rejected")
				}
				fmt.Println("purged")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log per-queue detail server-side")
	return cmd
}

func newStatsCommand(addr *string) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Enumerate live queues",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(*addr, func(ctx context.Context, c *Client) error {
				stats, err := c.QueueStats(ctx, filter)
				if err != nil {
					return err
				}
				return printJSON(stats)
			})
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", `CEL filter over {kind, target, depth}, e.g. 'depth > 0'`)
	return cmd
}
