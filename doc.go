// Package juleskit provides a Go toolkit for the Jules coding-agent API.
//
// juleskit is designed to be imported à la carte. Each subpackage can be
// used independently:
//
//   - jules: typed API client for sessions, activities, and sources, with
//     lazy pagination and a closed error taxonomy
//   - julesconfig: config file loading (YAML/TOML/JSON), environment
//     overrides, and hot reload of rotated credentials
//
// # Quick Start
//
// Create a client and start a session:
//
//	import "github.com/randalmurphal/juleskit/jules"
//
//	client := jules.NewClient(apiKey)
//	session, err := client.CreateSession(ctx, &jules.Session{
//	    Prompt:        "Add input validation to the signup form",
//	    SourceContext: jules.SourceContext{Source: "sources/my-repo"},
//	})
//
// Walk every session without thinking about pages:
//
//	for s, err := range client.StreamSessions(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(s.Name, s.State)
//	}
//
// Load configuration the standard way:
//
//	import "github.com/randalmurphal/juleskit/julesconfig"
//
//	cfg, err := julesconfig.Discover()
//	client := jules.NewClient(cfg.APIKey, cfg.ClientOptions()...)
//
// # Design Philosophy
//
//   - One network attempt per call: no hidden retries, no fallback values
//   - Errors carry a closed classification so remediation paths stay distinct
//   - Pagination is pull-driven; at most one page is ever buffered
//   - Sensible defaults with full configurability
package juleskit
