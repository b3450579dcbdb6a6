//go:build debug
// +build debug

package sedml

const debug = true
