// Package resources bundles the static word lists shipped with the binary.
package resources

import "embed"

const (
	StopwordsPath = "stopwords/fa.txt"
	CensoredDir   = "censored"
)

//go:embed stopwords/* censored/*
var FS embed.FS
