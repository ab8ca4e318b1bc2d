// Package greeting formats the strings returned by the greeting endpoints.
package greeting

const (
	rootMessage = "My name is Rajan Yadav"
	worldName   = "World"
	prefix      = "Hello "
)

// Root returns the service's self-introduction.
func Root() string {
	return rootMessage
}

// World returns the greeting for the bare /hello route.
func World() string {
	return Greet(worldName)
}

// Greet returns "Hello " followed by name exactly as given. An empty name
// yields "Hello " with the trailing space.
func Greet(name string) string {
	return prefix + name
}
