// Package application provides application initialization and dependency wiring.
// It encapsulates the creation of the input source, output sink, configuration
// resolver and title builder, making the main package cleaner and more focused
// on CLI parsing and orchestration.
package application
