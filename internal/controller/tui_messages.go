package controller

import (
	"fmt"
	"strings"
	"time"

	m "github.com/mouse-blink/marauders/internal/model"
)

// Message types.
type tickMsg time.Time

type configurationStartedMsg struct {
	index    int
	total    int
	variants []string
}

type configurationCompletedMsg struct {
	index  int
	total  int
	result m.ConfigurationResult
}

type runFinishedMsg struct{}

// List item types.
type variationItem struct {
	info m.VariationInfo
}

func (v variationItem) location() string {
	return fmt.Sprintf("%s:%d", v.info.Path, v.info.Line)
}

func (v variationItem) FilterValue() string {
	fields := []string{v.location(), v.info.Name}
	fields = append(fields, v.info.Variants...)
	fields = append(fields, v.info.Tags...)

	return strings.Join(fields, " ")
}

type resultItem struct {
	index  int
	result m.ConfigurationResult
}

func (r resultItem) FilterValue() string {
	return string(r.result.Status) + " " + strings.Join(r.result.Variants, " ")
}
