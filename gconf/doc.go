/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration entity, stored under the "_c:"
prefix followed by the extension name. Configuration is loaded from the
genesis file and can later be updated by its owner.

Not being able to get a configuration value is a critical condition for the
application, so callers are expected to fail the transaction when Load
returns an error.
*/
package gconf
