// Package config defines the format-agnostic model of a library project: the
// project coordinates, the applied plugins, the Android library settings the
// variant model is derived from, the aar-publish toggles and the publishing
// target.
//
// The Model is the single input to the host project. Concrete loaders, such
// as the HCL one in internal/hcl, translate their own syntax into it and
// apply defaults, so nothing downstream needs to know which format the user
// wrote.
package config
