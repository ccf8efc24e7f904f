//go:build !release

package bridge

const buildMode = Verbose
