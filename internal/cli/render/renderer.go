package render

// Renderer turns a use case result into user-facing output.
type Renderer[T any] interface {
	Render(result T) error
}
