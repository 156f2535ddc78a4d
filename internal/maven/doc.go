// Package maven writes publication components into a Maven repository
// laid out on the local file system: artifacts, the POM and the
// artifact-level maven-metadata.xml.
package maven
