package hello

// GreetInput carries the name captured from the /hello/{name} path.
type GreetInput struct {
	Name string `path:"name" doc:"Name to greet, echoed verbatim" example:"Alice"`
}
