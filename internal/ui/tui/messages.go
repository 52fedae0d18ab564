package tui

import "github.com/aalvaropc/unitconv/internal/domain"

type convertDoneMsg struct {
	res domain.ConversionResult
	err error
}

type mixtureLoadedMsg struct {
	ref     string
	mixture domain.Mixture
	err     error
}
