package examplesuite

import (
	"fmt"
	"io"

	"github.com/alessio/shellescape"

	"github.com/bnema/testnet/internal/boundaries/out"
	"github.com/bnema/testnet/pkg/services"
)

const (
	webPort        = 80
	indexFileID    = "index"
	webContentRoot = "/usr/share/nginx/html"
)

// WebService is a static HTTP server whose availability is its HTTP readiness.
type WebService struct {
	serviceCtx *services.ServiceContext
	probe      *services.HTTPReadinessProbe
}

func (s *WebService) IsAvailable() bool { return s.probe.IsAvailable() }

// URL returns the address of the served index page.
func (s *WebService) URL() string { return s.probe.URL() }

// WebFactory starts a WebService serving body as its index page.
type WebFactory struct {
	image  string
	body   string
	prober out.HTTPProber
}

func (f WebFactory) GetCreationConfig() (*services.ContainerCreationConfig, error) {
	return services.NewContainerCreationConfigBuilder(f.image, testVolumeMountpoint, func(ctx *services.ServiceContext) services.Service {
		var opts []services.ReadinessOption
		if f.prober != nil {
			opts = append(opts, services.WithProber(f.prober))
		}
		return &WebService{
			serviceCtx: ctx,
			probe:      services.NewHTTPReadinessProbe(ctx.GetIPAddress(), webPort, "/", opts...),
		}
	}).
		WithUsedPorts(map[string]bool{fmt.Sprintf("%d/tcp", webPort): true}).
		WithGeneratedFiles(map[string]services.FileInitializer{
			indexFileID: func(w io.Writer) error {
				_, err := io.WriteString(w, f.body)
				return err
			},
		}).
		Build()
}

func (f WebFactory) GetRunConfig(_ string, generatedFileFilepaths map[string]string) (*services.ContainerRunConfig, error) {
	indexPath, ok := generatedFileFilepaths[indexFileID]
	if !ok {
		return nil, fmt.Errorf("no filepath for generated file %q", indexFileID)
	}
	script := shellescape.QuoteCommand([]string{"cp", indexPath, webContentRoot + "/index.html"}) +
		" && exec nginx -g 'daemon off;'"
	return services.NewContainerRunConfigBuilder().
		WithEntrypointOverride([]string{"sh", "-c"}).
		WithCmdOverride([]string{script}).
		Build(), nil
}
