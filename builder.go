package dockhand

import (
	"context"
	"fmt"
	"strconv"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/strslice"
	"github.com/docker/go-connections/nat"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/localstack/dockhand/internal/slug"
)

var tracer = otel.Tracer("github.com/localstack/dockhand")

// PortMapping publishes one container port on the host.
type PortMapping struct {
	Source   uint16
	Host     uint16
	Protocol Protocol
}

// ContainerBuilder accumulates the configuration for a single container.
// Setters chain and perform no I/O and no validation; invalid image names,
// malformed environment entries or port collisions surface only when the
// daemon rejects the request during Build.
type ContainerBuilder struct {
	imageName  string
	imageTag   string
	name       string
	slugLength int
	ports      []PortMapping
	env        []string
	cmd        []string
	pull       bool
	onPull     func(PullProgress)
	client     *Client
}

// NewContainerBuilder returns a builder for image with the defaults: tag
// "latest", daemon-assigned name, no published ports, no pull on build, the
// shared Default client.
func NewContainerBuilder(image string) *ContainerBuilder {
	return &ContainerBuilder{
		imageName: image,
		imageTag:  "latest",
	}
}

// NewContainer creates and starts a container from image with the default
// configuration. Shorthand for NewContainerBuilder(image).Build(ctx).
func NewContainer(ctx context.Context, image string) (*Container, error) {
	return NewContainerBuilder(image).Build(ctx)
}

// Tag sets the image tag. Defaults to "latest".
func (b *ContainerBuilder) Tag(tag string) *ContainerBuilder {
	b.imageTag = tag
	return b
}

// Name sets the container name. Unset, the daemon picks a name.
func (b *ContainerBuilder) Name(name string) *ContainerBuilder {
	b.name = name
	return b
}

// SlugLength appends a random alphanumeric suffix of n characters to the
// container name, "name_XXXXXX". Useful when creating containers in bulk that
// should have readable names without collisions. Ignored when no name is set.
func (b *ContainerBuilder) SlugLength(n int) *ContainerBuilder {
	b.slugLength = n
	return b
}

// Expose publishes container port src on host port host. Repeatable; mappings
// are submitted to the daemon in insertion order. Duplicate source ports are
// not deduplicated, the daemon's own conflict semantics apply.
func (b *ContainerBuilder) Expose(src, host uint16, proto Protocol) *ContainerBuilder {
	b.ports = append(b.ports, PortMapping{Source: src, Host: host, Protocol: proto})
	return b
}

// Env appends one KEY=VALUE environment entry. Repeatable.
func (b *ContainerBuilder) Env(kv string) *ContainerBuilder {
	b.env = append(b.env, kv)
	return b
}

// Cmd replaces the container's startup command wholesale.
func (b *ContainerBuilder) Cmd(cmd []string) *ContainerBuilder {
	b.cmd = cmd
	return b
}

// PullOnBuild sets whether Build fetches the image from the registry before
// creating the container. Defaults to false.
func (b *ContainerBuilder) PullOnBuild(pull bool) *ContainerBuilder {
	b.pull = pull
	return b
}

// PullProgress registers an observer for pull status messages. Only invoked
// when PullOnBuild is set.
func (b *ContainerBuilder) PullProgress(fn func(PullProgress)) *ContainerBuilder {
	b.onPull = fn
	return b
}

// Client overrides the shared Default client for this builder and the handle
// it produces.
func (b *ContainerBuilder) Client(c *Client) *ContainerBuilder {
	b.client = c
	return b
}

func (b *ContainerBuilder) imageRef() string {
	return b.imageName + ":" + b.imageTag
}

// effectiveName resolves the name submitted to the daemon. Empty means the
// daemon assigns one. The slug is generated here, at most once per Build.
func (b *ContainerBuilder) effectiveName() string {
	if b.name == "" || b.slugLength == 0 {
		return b.name
	}
	return b.name + "_" + slug.Generate(b.slugLength)
}

// Build runs the provisioning pipeline: an optional image pull, then create,
// start and inspect, strictly in that order. Each stage blocks on the daemon;
// the first failure aborts the rest and is returned as a *StageError. Nothing
// is retried and partially built containers are not cleaned up -- after a
// start or inspect failure the container is still in the daemon, identified
// by StageError.ResourceID.
//
// Cancelling ctx mid-pipeline may likewise leave a created or running
// container behind with no handle referencing it.
func (b *ContainerBuilder) Build(ctx context.Context) (*Container, error) {
	cli := b.client
	if cli == nil {
		var err error
		if cli, err = Default(); err != nil {
			return nil, fmt.Errorf("no docker client available: %w", err)
		}
	}

	ref := b.imageRef()
	name := b.effectiveName()

	ctx, span := tracer.Start(ctx, "dockhand.Build",
		trace.WithAttributes(attribute.String("image", ref)))
	defer span.End()

	if b.pull {
		if err := pullImage(ctx, cli.engine, ref, b.onPull); err != nil {
			return nil, buildFailed(span, StagePull, "", err)
		}
	}

	id, err := createContainer(ctx, cli.engine, ref, name, b.ports, b.env, b.cmd)
	if err != nil {
		return nil, buildFailed(span, StageCreate, "", err)
	}
	span.SetAttributes(attribute.String("container.id", id))

	if err := cli.engine.ContainerStart(ctx, id, container.StartOptions{}); err != nil {
		return nil, buildFailed(span, StageStart, id, err)
	}

	details, err := cli.engine.ContainerInspect(ctx, id)
	if err != nil {
		return nil, buildFailed(span, StageInspect, id, err)
	}

	return &Container{details: details, client: cli}, nil
}

func buildFailed(span trace.Span, stage Stage, id string, err error) *StageError {
	serr := stageError(stage, id, err)
	span.RecordError(serr)
	span.SetStatus(codes.Error, string(stage))
	return serr
}

func createContainer(ctx context.Context, engine Engine, ref, name string, ports []PortMapping, env, cmd []string) (string, error) {
	exposed := make(nat.PortSet)
	bindings := make(nat.PortMap)
	for _, p := range ports {
		port := nat.Port(fmt.Sprintf("%d/%s", p.Source, p.Protocol))
		exposed[port] = struct{}{}
		bindings[port] = append(bindings[port], nat.PortBinding{HostPort: strconv.Itoa(int(p.Host))})
	}

	cfg := &container.Config{
		Image: ref,
		Env:   env,
		Cmd:   strslice.StrSlice(cmd),
	}
	if len(exposed) > 0 {
		cfg.ExposedPorts = exposed
	}

	hostCfg := &container.HostConfig{}
	if len(bindings) > 0 {
		hostCfg.PortBindings = bindings
	}

	resp, err := engine.ContainerCreate(ctx, cfg, hostCfg, nil, nil, name)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}
