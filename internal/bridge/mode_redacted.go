//go:build release

package bridge

const buildMode = Redacted
