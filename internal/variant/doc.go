// Package variant models the Android library variants the host produces:
// one per build type × product flavor combination, each with its ordered
// source providers and compile classpath.
//
// Variants reach consumers through a Collection, a live collection in the
// style of a build system's domain object containers. Consumers register a
// callback with All and are invoked exactly once per variant, whether the
// variant was added before or after they registered.
package variant
