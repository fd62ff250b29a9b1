// Package platform provides a unified abstraction over GitHub issue comments
// and GitLab issue notes.
//
// The [Provider] interface is all the notifiers need: create a status comment
// on the configured issue, then edit it by id. Use [NewProvider] to build the
// adapter matching the configured platform:
//
//	provider, err := platform.NewProvider(cfg, logger)
//	id, _ := provider.CreateComment(ctx, body)
//	provider.EditComment(ctx, id, newBody)
package platform
