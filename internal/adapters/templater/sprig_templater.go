package templater

import (
	"fmt"
	"strings"
	"text/template"

	"isolet/internal/ports"

	"github.com/Masterminds/sprig/v3"
	"go.uber.org/zap"
)

var _ ports.Templater = (*SprigTemplater)(nil)

// SprigTemplater renders text/template sources with the sprig function map.
// Missing keys fail the first pass; a second pass renders them as zero
// values and the first failure is logged.
type SprigTemplater struct {
	logger *zap.Logger
}

func ProvideSprigTemplater(logger *zap.Logger) *SprigTemplater {
	return &SprigTemplater{logger: logger}
}

func (t *SprigTemplater) Render(templateText string, templateName string, values map[string]interface{}) (string, error) {
	result, err := t.execute(templateText, templateName, values, "missingkey=error")
	if err == nil {
		return result, nil
	}
	strictErr := err

	result, err = t.execute(templateText, templateName, values, "missingkey=zero")
	if err != nil {
		return "", err
	}
	t.logger.Warn("template rendered with missing values", zap.String("template", templateName), zap.Error(strictErr))
	return result, nil
}

func (t *SprigTemplater) execute(templateText, templateName string, values map[string]interface{}, option string) (string, error) {
	tmpl, err := template.New(templateName).Funcs(sprig.TxtFuncMap()).Option(option).Parse(templateText)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}
	var result strings.Builder
	if err := tmpl.Execute(&result, values); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", templateName, err)
	}
	return result.String(), nil
}
