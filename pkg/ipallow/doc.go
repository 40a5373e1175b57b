// Package ipallow gates requests on a static source-IP allowlist.
//
// The gate is evaluated before any credential or tenant logic. Entries
// are either exact IP literals or wildcard patterns where a single "*"
// stands for any digit sequence in that dotted-quad position (e.g.
// "192.168.1.*" matches "192.168.1.42"). An empty allowlist admits every
// caller, as does a disabled gate; both defaults keep the filter inert
// unless explicitly configured.
//
// # Usage
//
//	var cfg ipallow.Config
//	config.MustLoad(&cfg)
//
//	allowlist, err := ipallow.New(cfg.Allowlist)
//	if err != nil {
//		// malformed pattern in configuration
//	}
//	router.Use(ipallow.Middleware(allowlist, cfg.Enabled))
package ipallow
