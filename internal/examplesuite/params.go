// Package examplesuite is the testsuite shipped with the testnet binary. It
// exercises command execution, network partitioning and endpoint readiness.
package examplesuite

// Params are the custom params the orchestrator passes to the suite.
type Params struct {
	ExecImage           string `json:"execImage"`
	WebImage            string `json:"webImage"`
	IsPartitioningSuite bool   `json:"isPartitioningSuite"`
	NetworkWidthBits    uint32 `json:"networkWidthBits"`
}

const (
	defaultExecImage        = "alpine:3.20"
	defaultWebImage         = "nginx:1.27-alpine"
	defaultNetworkWidthBits = 8
)

const paramsSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"execImage": {"type": "string", "minLength": 1},
		"webImage": {"type": "string", "minLength": 1},
		"isPartitioningSuite": {"type": "boolean"},
		"networkWidthBits": {"type": "integer", "minimum": 1, "maximum": 24}
	},
	"additionalProperties": false
}`

func (p *Params) applyDefaults() {
	if p.ExecImage == "" {
		p.ExecImage = defaultExecImage
	}
	if p.WebImage == "" {
		p.WebImage = defaultWebImage
	}
	if p.NetworkWidthBits == 0 {
		p.NetworkWidthBits = defaultNetworkWidthBits
	}
}
