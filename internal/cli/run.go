package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/localstack/dockhand"
	"github.com/localstack/dockhand/internal/config"
	"github.com/localstack/dockhand/internal/env"
	"github.com/localstack/dockhand/internal/output"
	"github.com/localstack/dockhand/internal/ports"
	"github.com/localstack/dockhand/internal/telemetry"
	"github.com/localstack/dockhand/internal/ui"
	"github.com/localstack/dockhand/internal/version"
	"github.com/spf13/cobra"
)

type portMapping struct {
	src   uint16
	host  uint16
	proto dockhand.Protocol
}

type runOptions struct {
	image      string
	tag        string
	name       string
	slugLength int
	publish    []portMapping
	env        []string
	cmd        []string
	pull       bool
}

var runCmd = &cobra.Command{
	Use:   "run --image <image> [flags] [-- cmd...]",
	Short: "Create and start a container",
	Long:  "Create and start a throwaway container, then report its published ports. Trailing arguments replace the container command.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Get()
		if err != nil {
			return err
		}

		opts := runOptions{cmd: args}
		opts.image, _ = cmd.Flags().GetString("image")
		opts.tag, _ = cmd.Flags().GetString("tag")
		opts.name, _ = cmd.Flags().GetString("name")
		opts.slugLength, _ = cmd.Flags().GetInt("slug-length")
		opts.env, _ = cmd.Flags().GetStringArray("env")
		opts.pull, _ = cmd.Flags().GetBool("pull")

		if !cmd.Flags().Changed("tag") {
			opts.tag = cfg.Defaults.Tag
		}
		if !cmd.Flags().Changed("slug-length") {
			opts.slugLength = cfg.Defaults.SlugLength
		}
		if !cmd.Flags().Changed("pull") {
			opts.pull = cfg.Defaults.Pull
		}

		publish, _ := cmd.Flags().GetStringArray("publish")
		for _, spec := range publish {
			mapping, err := parsePublish(spec)
			if err != nil {
				return err
			}
			opts.publish = append(opts.publish, mapping)
		}

		endpoint := env.Vars.OTLPEndpoint
		if endpoint == "" {
			endpoint = cfg.OTLPEndpoint
		}
		shutdown, err := telemetry.Init(cmd.Context(), endpoint)
		if err != nil {
			return err
		}
		defer func() { _ = shutdown(context.Background()) }()

		client, err := dockhand.Default()
		if err != nil {
			return err
		}

		if ui.IsInteractive() {
			return ui.Run(cmd.Context(), version.Version(), func(ctx context.Context, sink output.Sink) error {
				return provision(ctx, sink, client, opts)
			})
		}

		sink := output.NewPlainSink(cmd.OutOrStdout())
		if err := provision(cmd.Context(), sink, client, opts); err != nil {
			// The failure already reached the user through the sink;
			// mark it so main does not print it twice.
			output.EmitLog(sink, fmt.Sprintf("Error: %v", err))
			return output.NewSilentError(err)
		}
		return sink.Err()
	},
}

func init() {
	runCmd.Flags().String("image", "", "Image name, without tag (required)")
	runCmd.Flags().String("tag", "latest", "Image tag")
	runCmd.Flags().String("name", "", "Container name; empty lets the daemon pick one")
	runCmd.Flags().Int("slug-length", 0, "Append a random slug of this length to the name")
	runCmd.Flags().StringArrayP("publish", "p", nil, "Publish a port as src:host[/proto] (repeatable)")
	runCmd.Flags().StringArrayP("env", "e", nil, "Environment variable as KEY=value (repeatable)")
	runCmd.Flags().Bool("pull", false, "Pull the image before creating the container")
	_ = runCmd.MarkFlagRequired("image")
	rootCmd.AddCommand(runCmd)
}

// parsePublish parses "src:host" or "src:host/proto" into a port mapping.
// The protocol defaults to tcp.
func parsePublish(spec string) (portMapping, error) {
	proto := dockhand.TCP
	rest := spec
	if idx := strings.IndexByte(spec, '/'); idx >= 0 {
		rest = spec[:idx]
		switch spec[idx+1:] {
		case "tcp":
			proto = dockhand.TCP
		case "udp":
			proto = dockhand.UDP
		default:
			return portMapping{}, fmt.Errorf("invalid protocol in publish spec %q", spec)
		}
	}

	srcStr, hostStr, ok := strings.Cut(rest, ":")
	if !ok {
		return portMapping{}, fmt.Errorf("invalid publish spec %q, expected src:host[/proto]", spec)
	}
	src, err := strconv.ParseUint(srcStr, 10, 16)
	if err != nil || src == 0 {
		return portMapping{}, fmt.Errorf("invalid source port in publish spec %q", spec)
	}
	host, err := strconv.ParseUint(hostStr, 10, 16)
	if err != nil || host == 0 {
		return portMapping{}, fmt.Errorf("invalid host port in publish spec %q", spec)
	}

	return portMapping{src: uint16(src), host: uint16(host), proto: proto}, nil
}

func provision(ctx context.Context, sink output.Sink, client *dockhand.Client, opts runOptions) error {
	for _, m := range opts.publish {
		if err := ports.CheckAvailable(m.host); err != nil {
			output.EmitWarning(sink, err.Error())
		}
	}

	b := dockhand.NewContainerBuilder(opts.image).Tag(opts.tag).Client(client)
	if opts.name != "" {
		b = b.Name(opts.name)
	}
	if opts.slugLength > 0 {
		b = b.SlugLength(opts.slugLength)
	}
	for _, m := range opts.publish {
		b = b.Expose(m.src, m.host, m.proto)
	}
	for _, kv := range opts.env {
		b = b.Env(kv)
	}
	if len(opts.cmd) > 0 {
		b = b.Cmd(opts.cmd)
	}

	ref := opts.image + ":" + opts.tag
	if opts.pull {
		b = b.PullOnBuild(true).PullProgress(func(p dockhand.PullProgress) {
			output.EmitProgress(sink, p.LayerID, p.Status, p.Current, p.Total)
		})
		output.EmitStatus(sink, "pulling", ref, "")
	} else {
		output.EmitStatus(sink, "creating", ref, "")
	}

	c, err := b.Build(ctx)
	if err != nil {
		return err
	}

	output.EmitStatus(sink, "ready", ref, c.ID())
	for _, line := range portLines(c.Ports()) {
		output.EmitLog(sink, line)
	}
	return nil
}

func portLines(published map[dockhand.PortSpec][]dockhand.HostPort) []string {
	lines := make([]string, 0, len(published))
	for spec, hosts := range published {
		for _, h := range hosts {
			lines = append(lines, fmt.Sprintf("%s -> %s", spec, h))
		}
	}
	sort.Strings(lines)
	return lines
}
