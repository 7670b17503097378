//go:generate go run ./script/buildinfo-extractor.go .
//
// Generated: 2026-08-28T09:14:02-07:00
//
package buildinfo

var VERSION_INFO = "dev"

func BuildInfo() string {
	return VERSION_INFO
}
