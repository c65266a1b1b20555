// Package networks manages the services of one test network: adding and
// removing service containers, looking up their handles and repartitioning
// the network.
package networks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bnema/testnet/internal/adapters/out/telemetry"
	"github.com/bnema/testnet/internal/boundaries/out"
	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/services"
)

// DefaultCompensationStopTimeout is the container stop timeout used when
// removing a service whose startup failed.
const DefaultCompensationStopTimeout = 10 * time.Second

// serviceHandle is the registry entry of a live service.
type serviceHandle struct {
	partitionID domain.PartitionID
	serviceCtx  *services.ServiceContext
	service     services.Service
}

// NetworkContext is the handle test code uses to build and change its network.
// Mutations are serialized; lookups run concurrently with them.
type NetworkContext struct {
	client               out.NetworkClient
	filesArtifactURLs    map[domain.FilesArtifactID]string
	suiteExVolMountpoint string

	fs                      afero.Fs
	meterProvider           metric.MeterProvider
	metrics                 *telemetry.Metrics
	events                  out.EventPublisher
	compensate              bool
	compensationStopTimeout time.Duration

	mutationMu sync.Mutex

	mu      sync.RWMutex
	handles map[domain.ServiceID]*serviceHandle
	retired map[domain.ServiceID]bool
}

// Option configures a NetworkContext.
type Option func(*NetworkContext)

// WithFs sets the file system generated files are written to.
func WithFs(fs afero.Fs) Option {
	return func(nc *NetworkContext) { nc.fs = fs }
}

// WithMeterProvider records network metrics through mp. A nil mp disables them.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(nc *NetworkContext) {
		nc.meterProvider = mp
		nc.metrics = telemetry.MetricsFor(mp)
	}
}

// WithEventPublisher publishes service and repartition events.
func WithEventPublisher(p out.EventPublisher) Option {
	return func(nc *NetworkContext) { nc.events = p }
}

// WithCompensation controls whether a service whose startup failed after
// registration is removed from the orchestrator again.
func WithCompensation(enabled bool, stopTimeout time.Duration) Option {
	return func(nc *NetworkContext) {
		nc.compensate = enabled
		nc.compensationStopTimeout = stopTimeout
	}
}

// NewNetworkContext creates an empty network. filesArtifactURLs maps the
// artifact ids services may request to the URL the orchestrator downloads;
// it is copied and fixed for the lifetime of the network.
func NewNetworkContext(client out.NetworkClient, filesArtifactURLs map[domain.FilesArtifactID]string, suiteExVolMountpoint string, opts ...Option) *NetworkContext {
	urls := make(map[domain.FilesArtifactID]string, len(filesArtifactURLs))
	for id, url := range filesArtifactURLs {
		urls[id] = url
	}

	nc := &NetworkContext{
		client:                  client,
		filesArtifactURLs:       urls,
		suiteExVolMountpoint:    suiteExVolMountpoint,
		fs:                      afero.NewOsFs(),
		compensate:              true,
		compensationStopTimeout: DefaultCompensationStopTimeout,
		handles:                 make(map[domain.ServiceID]*serviceHandle),
		retired:                 make(map[domain.ServiceID]bool),
	}
	for _, opt := range opts {
		opt(nc)
	}
	return nc
}

// AddService adds a service to the default partition.
func (nc *NetworkContext) AddService(ctx context.Context, serviceID domain.ServiceID, factory services.ContainerConfigFactory) (services.Service, services.AvailabilityChecker, error) {
	return nc.AddServiceToPartition(ctx, serviceID, domain.DefaultPartitionID, factory)
}

// AddServiceToPartition registers, configures and starts a service container
// in partitionID. The service is only visible in the network once every step
// succeeded. The returned checker waits for the service to report ready.
func (nc *NetworkContext) AddServiceToPartition(ctx context.Context, serviceID domain.ServiceID, partitionID domain.PartitionID, factory services.ContainerConfigFactory) (services.Service, services.AvailabilityChecker, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "network",
		zerowrap.FieldUseCase:  "AddService",
		zerowrap.FieldEntityID: string(serviceID),
		"partition_id":         string(partitionID),
	})
	log := zerowrap.FromCtx(ctx)

	nc.mutationMu.Lock()
	defer nc.mutationMu.Unlock()

	if err := nc.checkAddable(serviceID); err != nil {
		return nil, nil, err
	}

	creationCfg, err := factory.GetCreationConfig()
	if err != nil {
		nc.recordAddFailure(ctx, "creation_config")
		return nil, nil, &domain.ConfigurationError{Field: "creation config", Reason: fmt.Sprintf("service %q", serviceID), Cause: err}
	}

	artifactMounts, err := nc.resolveArtifacts(creationCfg.FilesArtifactMountpoints())
	if err != nil {
		nc.recordAddFailure(ctx, "artifacts")
		return nil, nil, err
	}

	registration, err := nc.client.RegisterService(ctx, domain.RegisterServiceRequest{
		ServiceID:       serviceID,
		PartitionID:     partitionID,
		FilesToGenerate: creationCfg.FileIDsToGenerate(),
	})
	if err != nil {
		nc.recordAddFailure(ctx, "register")
		return nil, nil, log.WrapErr(
			&domain.RegistrationError{Operation: "register service", ServiceID: serviceID, Cause: err},
			"failed to register service")
	}
	log.Debug().Str("ip_address", registration.IPAddress).Msg("service registered")

	handle, err := nc.startRegistered(ctx, serviceID, partitionID, factory, creationCfg, registration, artifactMounts)
	if err != nil {
		nc.recordAddFailure(ctx, "start")
		return nil, nil, nc.compensateFailedStart(ctx, serviceID, err)
	}

	nc.mu.Lock()
	nc.handles[serviceID] = handle
	nc.mu.Unlock()

	if nc.metrics != nil {
		nc.metrics.ServicesAdded.Add(ctx, 1)
		nc.metrics.ActiveServices.Add(ctx, 1)
	}
	nc.publish(ctx, domain.EventServiceAdded, domain.ServiceEventPayload{
		ServiceID:   serviceID,
		PartitionID: partitionID,
		IPAddress:   registration.IPAddress,
	})

	log.Info().Str("ip_address", registration.IPAddress).Msg("service added")

	checker := services.NewDefaultAvailabilityChecker(serviceID, handle.service,
		services.WithCheckerLogger(log),
		services.WithCheckerMeterProvider(nc.meterProvider),
	)
	return handle.service, checker, nil
}

func (nc *NetworkContext) checkAddable(serviceID domain.ServiceID) error {
	if serviceID == "" {
		return &domain.ConfigurationError{Field: "service id", Reason: "must not be empty"}
	}

	nc.mu.RLock()
	defer nc.mu.RUnlock()

	if _, ok := nc.handles[serviceID]; ok {
		return fmt.Errorf("service %q: %w", serviceID, domain.ErrServiceExists)
	}
	if nc.retired[serviceID] {
		return fmt.Errorf("service %q: %w", serviceID, domain.ErrServiceIDRetired)
	}
	return nil
}

// resolveArtifacts maps the requested artifact ids to their URL and returns
// the URL to mount dirpath map sent to the orchestrator.
func (nc *NetworkContext) resolveArtifacts(mountpoints map[domain.FilesArtifactID]string) (map[string]string, error) {
	mounts := make(map[string]string, len(mountpoints))
	for id, mountpoint := range mountpoints {
		url, ok := nc.filesArtifactURLs[id]
		if !ok {
			return nil, &domain.ConfigurationError{
				Field:  "files artifacts",
				Reason: fmt.Sprintf("artifact %q is not declared in the test configuration", id),
			}
		}
		mounts[url] = mountpoint
	}
	return mounts, nil
}

func (nc *NetworkContext) startRegistered(
	ctx context.Context,
	serviceID domain.ServiceID,
	partitionID domain.PartitionID,
	factory services.ContainerConfigFactory,
	creationCfg *services.ContainerCreationConfig,
	registration *domain.RegisterServiceResult,
	artifactMounts map[string]string,
) (*serviceHandle, error) {
	log := zerowrap.FromCtx(ctx)
	serviceMountpoint := creationCfg.TestVolumeMountpoint()

	filepaths, err := services.ResolveGeneratedFilepaths(
		creationCfg.FileIDsToGenerate(),
		registration.GeneratedFilesRelativeFilepaths,
		nc.suiteExVolMountpoint,
		serviceMountpoint,
	)
	if err != nil {
		return nil, err
	}
	servicePaths, err := services.InitializeGeneratedFiles(nc.fs, filepaths, creationCfg.GeneratedFiles())
	if err != nil {
		return nil, err
	}
	log.Debug().Int("generated_files", len(servicePaths)).Msg("generated files initialized")

	runCfg, err := factory.GetRunConfig(registration.IPAddress, servicePaths)
	if err != nil {
		return nil, &domain.ConfigurationError{Field: "run config", Reason: fmt.Sprintf("service %q", serviceID), Cause: err}
	}

	err = nc.client.StartService(ctx, domain.StartServiceRequest{
		ServiceID:                     serviceID,
		DockerImage:                   creationCfg.Image(),
		UsedPorts:                     creationCfg.UsedPorts(),
		EntrypointArgs:                runCfg.EntrypointOverride(),
		CmdArgs:                       runCfg.CmdOverride(),
		EnvVars:                       runCfg.EnvironmentVariableOverrides(),
		SuiteExecutionVolMountDirpath: serviceMountpoint,
		FilesArtifactMountDirpaths:    artifactMounts,
	})
	if err != nil {
		return nil, &domain.RegistrationError{Operation: "start service", ServiceID: serviceID, Cause: err}
	}
	log.Debug().Str("image", creationCfg.Image()).Msg("service started")

	serviceCtx := services.NewServiceContext(nc.client, serviceID, registration.IPAddress, nc.suiteExVolMountpoint, serviceMountpoint)
	service := creationCfg.ServiceCreatingFunc()(serviceCtx)
	if service == nil {
		return nil, &domain.ConfigurationError{Field: "service creating func", Reason: fmt.Sprintf("returned no service for %q", serviceID)}
	}

	return &serviceHandle{
		partitionID: partitionID,
		serviceCtx:  serviceCtx,
		service:     service,
	}, nil
}

// compensateFailedStart retires serviceID and, when enabled, asks the
// orchestrator to remove it. The original cause is always returned.
func (nc *NetworkContext) compensateFailedStart(ctx context.Context, serviceID domain.ServiceID, cause error) error {
	log := zerowrap.FromCtx(ctx)

	nc.mu.Lock()
	nc.retired[serviceID] = true
	nc.mu.Unlock()

	if !nc.compensate {
		log.Warn().Err(cause).Msg("service startup failed, leaving registered service in place")
		return cause
	}

	err := nc.client.RemoveService(context.WithoutCancel(ctx), domain.RemoveServiceRequest{
		ServiceID:            serviceID,
		ContainerStopTimeout: nc.compensationStopTimeout,
	})
	if err != nil {
		log.Error().Err(err).AnErr("cause", cause).Msg("failed to remove service after failed startup")
		return errors.Join(cause, fmt.Errorf("removing service %q after failed startup: %w", serviceID, err))
	}

	log.Warn().Err(cause).Msg("service startup failed, service removed")
	return cause
}

// GetService returns the service object registered under serviceID.
func (nc *NetworkContext) GetService(serviceID domain.ServiceID) (services.Service, error) {
	handle, err := nc.handle(serviceID)
	if err != nil {
		return nil, err
	}
	return handle.service, nil
}

// GetServiceContext returns the context of a live service, giving access to
// its IP address, command execution and file generation.
func (nc *NetworkContext) GetServiceContext(serviceID domain.ServiceID) (*services.ServiceContext, error) {
	handle, err := nc.handle(serviceID)
	if err != nil {
		return nil, err
	}
	return handle.serviceCtx, nil
}

// GetServiceIDs returns a snapshot of the live service ids.
func (nc *NetworkContext) GetServiceIDs() map[domain.ServiceID]bool {
	nc.mu.RLock()
	defer nc.mu.RUnlock()

	ids := make(map[domain.ServiceID]bool, len(nc.handles))
	for id := range nc.handles {
		ids[id] = true
	}
	return ids
}

func (nc *NetworkContext) handle(serviceID domain.ServiceID) (*serviceHandle, error) {
	nc.mu.RLock()
	defer nc.mu.RUnlock()

	handle, ok := nc.handles[serviceID]
	if !ok {
		return nil, &domain.ServiceNotFoundError{ServiceID: serviceID}
	}
	return handle, nil
}

// GetService returns the service registered under serviceID as a T.
func GetService[T services.Service](nc *NetworkContext, serviceID domain.ServiceID) (T, error) {
	var zero T
	service, err := nc.GetService(serviceID)
	if err != nil {
		return zero, err
	}
	typed, ok := service.(T)
	if !ok {
		return zero, &domain.TypeMismatchError{
			ServiceID: serviceID,
			Expected:  fmt.Sprintf("%T", zero),
			Actual:    fmt.Sprintf("%T", service),
		}
	}
	return typed, nil
}

// RemoveService stops and removes a live service. Its id can never be added again.
func (nc *NetworkContext) RemoveService(ctx context.Context, serviceID domain.ServiceID, containerStopTimeout time.Duration) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "network",
		zerowrap.FieldUseCase:  "RemoveService",
		zerowrap.FieldEntityID: string(serviceID),
	})
	log := zerowrap.FromCtx(ctx)

	nc.mutationMu.Lock()
	defer nc.mutationMu.Unlock()

	handle, err := nc.handle(serviceID)
	if err != nil {
		return err
	}

	err = nc.client.RemoveService(ctx, domain.RemoveServiceRequest{
		ServiceID:            serviceID,
		ContainerStopTimeout: containerStopTimeout,
	})
	if err != nil {
		return log.WrapErr(
			&domain.RegistrationError{Operation: "remove service", ServiceID: serviceID, Cause: err},
			"failed to remove service")
	}

	nc.mu.Lock()
	delete(nc.handles, serviceID)
	nc.retired[serviceID] = true
	nc.mu.Unlock()

	if nc.metrics != nil {
		nc.metrics.ServicesRemoved.Add(ctx, 1)
		nc.metrics.ActiveServices.Add(ctx, -1)
	}
	nc.publish(ctx, domain.EventServiceRemoved, domain.ServiceEventPayload{
		ServiceID:   serviceID,
		PartitionID: handle.partitionID,
		IPAddress:   handle.serviceCtx.GetIPAddress(),
	})

	log.Info().Msg("service removed")
	return nil
}

// GetRepartitionerBuilder starts a new topology for this network.
func (nc *NetworkContext) GetRepartitionerBuilder(isDefaultConnectionBlocked bool) *RepartitionerBuilder {
	return NewRepartitionerBuilder(isDefaultConnectionBlocked)
}

// RepartitionNetwork applies the repartitioner's topology. Every live service
// must be placed in exactly one partition and every placed service must be
// live; otherwise nothing is sent to the orchestrator.
func (nc *NetworkContext) RepartitionNetwork(ctx context.Context, repartitioner *Repartitioner) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "network",
		zerowrap.FieldUseCase: "Repartition",
	})
	log := zerowrap.FromCtx(ctx)

	if repartitioner == nil {
		return &domain.ConfigurationError{Field: "repartitioner", Reason: "must not be nil"}
	}

	nc.mutationMu.Lock()
	defer nc.mutationMu.Unlock()

	topology := repartitioner.Topology()
	if err := nc.validateAgainstRegistry(topology); err != nil {
		return err
	}

	if err := nc.client.Repartition(ctx, topology); err != nil {
		return log.WrapErr(
			&domain.RegistrationError{Operation: "repartition", Cause: err},
			"failed to repartition network")
	}

	nc.mu.Lock()
	for serviceID, partitionID := range topology.ServicePartitions() {
		nc.handles[serviceID].partitionID = partitionID
	}
	nc.mu.Unlock()

	if nc.metrics != nil {
		nc.metrics.Repartitions.Add(ctx, 1, metric.WithAttributes(
			attribute.Int("partitions", len(topology.PartitionServices)),
		))
	}
	nc.publish(ctx, domain.EventNetworkRepartitioned, topology)

	log.Info().
		Int("partitions", len(topology.PartitionServices)).
		Int("connections", len(topology.PartitionConnections)).
		Bool("default_blocked", topology.DefaultConnection.IsBlocked).
		Msg("network repartitioned")
	return nil
}

func (nc *NetworkContext) validateAgainstRegistry(topology domain.PartitionTopology) error {
	if err := topology.Validate(); err != nil {
		return err
	}

	nc.mu.RLock()
	defer nc.mu.RUnlock()

	placed := topology.ServicePartitions()
	var unknown, unplaced []string
	for serviceID := range placed {
		if _, ok := nc.handles[serviceID]; !ok {
			unknown = append(unknown, string(serviceID))
		}
	}
	for serviceID := range nc.handles {
		if _, ok := placed[serviceID]; !ok {
			unplaced = append(unplaced, string(serviceID))
		}
	}
	sort.Strings(unknown)
	sort.Strings(unplaced)

	if len(unknown) > 0 {
		return &domain.ConfigurationError{
			Field:  "partition services",
			Reason: fmt.Sprintf("unknown services %v", unknown),
		}
	}
	if len(unplaced) > 0 {
		return &domain.ConfigurationError{
			Field:  "partition services",
			Reason: fmt.Sprintf("services %v are not assigned to a partition", unplaced),
		}
	}
	return nil
}

// ServicePartition returns the partition a live service currently belongs to.
func (nc *NetworkContext) ServicePartition(serviceID domain.ServiceID) (domain.PartitionID, error) {
	handle, err := nc.handle(serviceID)
	if err != nil {
		return "", err
	}
	nc.mu.RLock()
	defer nc.mu.RUnlock()
	return handle.partitionID, nil
}

func (nc *NetworkContext) recordAddFailure(ctx context.Context, step string) {
	if nc.metrics == nil {
		return
	}
	nc.metrics.ServiceAddFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("step", step),
	))
}

func (nc *NetworkContext) publish(ctx context.Context, eventType domain.EventType, payload any) {
	if nc.events == nil {
		return
	}
	if err := nc.events.Publish(eventType, payload); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Str(zerowrap.FieldEvent, string(eventType)).Msg("failed to publish network event")
	}
}

// Network is the user-defined view of a test network returned by a test's
// setup and handed to its run phase.
type Network any
