//go:build gallerydebug

package gallery

const debugAssertions = true
