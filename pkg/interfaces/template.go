package interfaces

import "context"

// TemplateRenderer renders a named template with the supplied data contract.
// The generator treats renderers as black boxes so hosts can swap template
// engines without touching the build pipeline.
type TemplateRenderer interface {
	Render(ctx context.Context, template string, data any) ([]byte, error)
}
