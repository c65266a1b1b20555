package examplesuite

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/networks"
	"github.com/bnema/testnet/pkg/testsuite"
)

const (
	clientServiceID domain.ServiceID   = "client"
	serverServiceID domain.ServiceID   = "server"
	clientPartition domain.PartitionID = "client"
	serverPartition domain.PartitionID = "server"
)

// NetworkPartitionTest blocks the link between two services, checks they can
// no longer reach each other, then heals the network.
type NetworkPartitionTest struct {
	image string
}

// partitionNetwork is the network NetworkPartitionTest runs against.
type partitionNetwork struct {
	nc     *networks.NetworkContext
	client *ExecCmdService
	server *ExecCmdService
}

func (t *NetworkPartitionTest) Configure(b *testsuite.TestConfigurationBuilder) {
	b.WithPartitioningEnabled(true).
		WithSetupTimeout(60 * time.Second).
		WithRunTimeout(60 * time.Second)
}

func (t *NetworkPartitionTest) Setup(ctx context.Context, nc *networks.NetworkContext) (networks.Network, error) {
	network := &partitionNetwork{nc: nc}
	for _, id := range []domain.ServiceID{clientServiceID, serverServiceID} {
		if _, _, err := nc.AddService(ctx, id, ExecCmdFactory{image: t.image}); err != nil {
			return nil, fmt.Errorf("start service %s: %w", id, err)
		}
	}

	var err error
	if network.client, err = networks.GetService[*ExecCmdService](nc, clientServiceID); err != nil {
		return nil, err
	}
	if network.server, err = networks.GetService[*ExecCmdService](nc, serverServiceID); err != nil {
		return nil, err
	}
	return network, nil
}

func (t *NetworkPartitionTest) Run(ctx context.Context, uncast networks.Network, tc testsuite.TestContext) error {
	log := zerowrap.FromCtx(ctx)
	network := uncast.(*partitionNetwork)

	if err := network.split(ctx, true); err != nil {
		return err
	}
	partition, err := network.nc.ServicePartition(serverServiceID)
	if err != nil {
		return err
	}
	tc.AssertTrue(partition == serverPartition, fmt.Errorf("server should be in partition %s, is in %s", serverPartition, partition))

	reachable, err := network.serverReachable(ctx)
	if err != nil {
		return err
	}
	tc.AssertTrue(!reachable, fmt.Errorf("server should be unreachable across a blocked partition"))
	log.Info().Msg("blocked partitions cannot reach each other")

	if err := network.split(ctx, false); err != nil {
		return err
	}
	reachable, err = network.serverReachable(ctx)
	if err != nil {
		return err
	}
	tc.AssertTrue(reachable, fmt.Errorf("server should be reachable once the partitions are connected"))
	log.Info().Msg("healed partitions can reach each other")

	return nil
}

func (n *partitionNetwork) split(ctx context.Context, blocked bool) error {
	repartitioner, err := n.nc.GetRepartitionerBuilder(false).
		WithPartition(clientPartition, clientServiceID).
		WithPartition(serverPartition, serverServiceID).
		WithPartitionConnection(clientPartition, serverPartition, blocked).
		Build()
	if err != nil {
		return err
	}
	return n.nc.RepartitionNetwork(ctx, repartitioner)
}

func (n *partitionNetwork) serverReachable(ctx context.Context) (bool, error) {
	code, _, err := n.client.RunExecCmd(ctx, []string{"ping", "-c", "1", "-W", "1", n.server.serviceCtx.GetIPAddress()})
	if err != nil {
		return false, err
	}
	return code == 0, nil
}
