// Package javadoc generates API documentation for a variant's Java sources.
// The Generator interface is what tasks depend on; Tool runs the JDK
// javadoc binary.
package javadoc
