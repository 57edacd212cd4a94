// Package paths centralizes filesystem path resolution for the mdvars CLI.
//
// Configuration lives under the XDG base directories via github.com/adrg/xdg,
// so MDVARS respects XDG_CONFIG_HOME and the platform conventions xdg
// implements.
package paths
