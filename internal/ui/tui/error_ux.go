package tui

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/unitconv/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

var paramLabels = map[string]string{
	"quantity":         "quantity",
	"molar_mass":       "molar mass",
	"density":          "density",
	"mixture":          "mixture",
	"mixture.interest": "component of interest",
}

func userMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return "Cancelled"
	}

	var ce *domain.ConversionError
	if errors.As(err, &ce) {
		switch {
		case domain.IsKind(err, domain.KindInvalidUnit):
			return "Unknown unit for this family"
		case domain.IsKind(err, domain.KindMissingParameter):
			return "Missing " + paramLabel(innerParam(err))
		case domain.IsKind(err, domain.KindDomain):
			return "Not defined for this input: " + innermostMsg(err)
		case domain.IsKind(err, domain.KindInvalidRange):
			return "Invalid " + paramLabel(innerParam(err)) + ": " + innermostMsg(err)
		case domain.IsKind(err, domain.KindConversion):
			return "Conversion failed: " + innermostMsg(err)
		}
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			switch {
			case strings.Contains(oe.Op, "mixture"):
				return "Mixture not found"
			case strings.Contains(oe.Op, "substance"):
				return "Substance not found"
			case strings.Contains(oe.Op, "workspacefinder"):
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid " + base

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

// innerParam returns the first non-empty Param in the chain.
func innerParam(err error) string {
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		if ce, ok := cur.(*domain.ConversionError); ok && ce.Param != "" {
			return ce.Param
		}
	}
	return ""
}

func innermostMsg(err error) string {
	msg := ""
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		if ce, ok := cur.(*domain.ConversionError); ok && ce.Msg != "" {
			msg = ce.Msg
		}
	}
	return msg
}

func paramLabel(param string) string {
	if l, ok := paramLabels[param]; ok {
		return l
	}
	if strings.HasPrefix(param, "mixture") {
		return "mixture"
	}
	if param == "" {
		return "parameter"
	}
	return strings.ReplaceAll(param, "_", " ")
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
