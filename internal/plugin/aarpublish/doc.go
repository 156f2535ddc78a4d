/*
Package aarpublish derives publication components for every variant of an
Android library.

For each variant it registers the javadoc and sources tasks the toggles ask
for, and contributes the variant's artifacts to the publication graph:

  - android<Variant>: the per-variant component, always.
  - android: the default component, registered as soon as the Android
    library plugin is applied and filled by the default publish variant
    (release unless default_publish_config names another).
  - all: the aggregate component holding every variant's javadoc and sources
    jars under variant-prefixed classifiers, when aggregation is enabled.

The plugin only acts when the Android library plugin is applied; otherwise
applying it has no effect.
*/
package aarpublish
