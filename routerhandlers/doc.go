// Package routerhandlers provides stock global middleware nodes for the
// router chain.
//
// Every constructor returns a fresh node; add it with Router.Use. Nodes
// added later run first, so add Recovery last to cover the others:
//
//	r := router.New()
//	_ = r.Use(routerhandlers.AccessLog(routerhandlers.AccessLogConfig{Logger: logger}))
//	_ = r.Use(routerhandlers.RequestID(routerhandlers.RequestIDConfig{}))
//	_ = r.Use(routerhandlers.Recovery(routerhandlers.RecoveryConfig{Logger: logger}))
//
// # Basic Auth
//
// BasicAuth implements HTTP Basic Authentication per RFC 7617. A request
// with missing or invalid credentials gets 401 Unauthorized and the chain
// stops there: later nodes and the route handler do not run.
//
//	mw, err := routerhandlers.BasicAuth(routerhandlers.BasicAuthConfig{
//	    Realm: "My App",
//	    Credentials: map[string]string{
//	        "admin": "secret",
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = r.Use(mw)
package routerhandlers
