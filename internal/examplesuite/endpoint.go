package examplesuite

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/testnet/internal/boundaries/out"
	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/networks"
	"github.com/bnema/testnet/pkg/testsuite"
)

const (
	webServiceID domain.ServiceID = "web"
	webIndexBody                  = "<h1>testnet</h1>\n"

	webStartupPollInterval = 500 * time.Millisecond
	webStartupMaxPolls     = 30
)

// EndpointAvailabilityTest starts a web server and waits for its HTTP endpoint.
type EndpointAvailabilityTest struct {
	image  string
	prober out.HTTPProber
}

func (t *EndpointAvailabilityTest) Configure(b *testsuite.TestConfigurationBuilder) {
	b.WithSetupTimeout(60 * time.Second).WithRunTimeout(30 * time.Second)
}

func (t *EndpointAvailabilityTest) Setup(ctx context.Context, nc *networks.NetworkContext) (networks.Network, error) {
	_, checker, err := nc.AddService(ctx, webServiceID, WebFactory{image: t.image, body: webIndexBody, prober: t.prober})
	if err != nil {
		return nil, fmt.Errorf("start service %s: %w", webServiceID, err)
	}
	if err := checker.WaitForStartup(webStartupPollInterval, webStartupMaxPolls); err != nil {
		return nil, err
	}
	return nc, nil
}

func (t *EndpointAvailabilityTest) Run(ctx context.Context, network networks.Network, tc testsuite.TestContext) error {
	nc := network.(*networks.NetworkContext)
	svc, err := networks.GetService[*WebService](nc, webServiceID)
	if err != nil {
		return err
	}
	tc.AssertTrue(svc.IsAvailable(), fmt.Errorf("%s stopped answering after startup", svc.URL()))
	log := zerowrap.FromCtx(ctx)
	log.Info().Str("url", svc.URL()).Msg("endpoint available")
	return nil
}
