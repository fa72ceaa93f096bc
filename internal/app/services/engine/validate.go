package engine

import (
	"errors"
	"fmt"
	"strings"

	"auditflow-service/internal/app/models"

	"github.com/google/uuid"
)

var knownQuestionTypes = map[string]bool{
	models.QuestionTypeText:     true,
	models.QuestionTypeNumeric:  true,
	models.QuestionTypeSingle:   true,
	models.QuestionTypeMultiple: true,
	models.QuestionTypeDropdown: true,
	models.QuestionTypeDate:     true,
	models.QuestionTypeFile:     true,
	models.QuestionTypeBarcode:  true,
}

var knownOperators = map[string]bool{
	models.OperatorEqual:          true,
	models.OperatorNotEqual:       true,
	models.OperatorLess:           true,
	models.OperatorGreater:        true,
	models.OperatorLessOrEqual:    true,
	models.OperatorGreaterOrEqual: true,
}

var knownActions = map[string]bool{
	models.ActionShow: true,
	models.ActionHide: true,
	models.ActionSkip: true,
}

// NormalizeTemplate prepares an authored template for saving: it defaults
// the lifecycle status, mints a stable key for every question that lacks
// one, defaults missing connectives to AND, and rewrites rule references
// spelled as question display text into keys. Text rewriting keeps templates
// authored before stable keys existed working without runtime text matching.
func NormalizeTemplate(template *models.Template) {
	if template.Status == "" {
		template.Status = models.TemplateStatusDraft
	}

	for i := range template.Questions {
		if template.Questions[i].Key == "" {
			template.Questions[i].Key = uuid.NewString()
		}
	}

	for i := range template.LogicRules {
		rule := &template.LogicRules[i]
		rule.Question = resolveReference(template, rule.Question)
		rule.Action.Target = resolveReference(template, rule.Action.Target)
		for j := range rule.Conditions {
			rule.Conditions[j].Question = resolveReference(template, rule.Conditions[j].Question)
			if rule.Conditions[j].LogicOp == "" {
				rule.Conditions[j].LogicOp = models.LogicOpAnd
			}
		}
	}
}

func resolveReference(template *models.Template, ref string) string {
	if ref == "" || template.QuestionByKey(ref) != nil {
		return ref
	}
	if q := template.QuestionByText(ref); q != nil {
		return q.Key
	}
	return ref
}

// ValidateTemplate checks the well-formedness rules enforced at save time,
// reporting every problem found. Evaluation assumes templates passed here:
// the resolver never defends against dangling references or unknown
// operators at runtime.
func ValidateTemplate(template *models.Template) error {
	var problems []string

	if strings.TrimSpace(template.Name) == "" {
		problems = append(problems, "template name is required")
	}
	if template.ComplianceThreshold != nil {
		if *template.ComplianceThreshold < 0 || *template.ComplianceThreshold > 100 {
			problems = append(problems, "compliance threshold must be between 0 and 100")
		}
	}

	sectionTitles := make(map[string]bool, len(template.Sections))
	for _, section := range template.Sections {
		if strings.TrimSpace(section.Title) == "" {
			problems = append(problems, "section title is required")
			continue
		}
		if sectionTitles[section.Title] {
			problems = append(problems, fmt.Sprintf("section title %q is duplicated", section.Title))
		}
		sectionTitles[section.Title] = true
	}

	for i, q := range template.Questions {
		label := q.Text
		if label == "" {
			label = fmt.Sprintf("question #%d", i+1)
			problems = append(problems, fmt.Sprintf("%s has no text", label))
		}
		if !knownQuestionTypes[q.Type] {
			problems = append(problems, fmt.Sprintf("%s has unknown type %q", label, q.Type))
		}
		if q.IsChoiceLike() && len(q.Options) < 2 {
			problems = append(problems, fmt.Sprintf("%s needs at least 2 options", label))
		}
		if q.Type == models.QuestionTypeNumeric && q.Min != nil && q.Max != nil && *q.Min > *q.Max {
			problems = append(problems, fmt.Sprintf("%s has min greater than max", label))
		}
		if q.Weight != nil && *q.Weight < 0 {
			problems = append(problems, fmt.Sprintf("%s has negative weight", label))
		}
		if len(sectionTitles) > 0 && q.Section != "" && !sectionTitles[q.Section] {
			problems = append(problems, fmt.Sprintf("%s references undeclared section %q", label, q.Section))
		}
	}

	for i, rule := range template.LogicRules {
		label := fmt.Sprintf("rule #%d", i+1)

		if !knownActions[rule.Action.Type] {
			problems = append(problems, fmt.Sprintf("%s has unknown action %q", label, rule.Action.Type))
		}
		if rule.Action.Target == "" {
			problems = append(problems, fmt.Sprintf("%s has no action target", label))
		} else if template.QuestionByKey(rule.Action.Target) == nil {
			problems = append(problems, fmt.Sprintf("%s targets an unknown question", label))
		}

		for j, cond := range rule.Conditions {
			if !knownOperators[cond.Operator] {
				problems = append(problems, fmt.Sprintf("%s condition #%d has unknown operator %q", label, j+1, cond.Operator))
			}
			if cond.LogicOp != models.LogicOpAnd && cond.LogicOp != models.LogicOpOr {
				problems = append(problems, fmt.Sprintf("%s condition #%d has unknown connective %q", label, j+1, cond.LogicOp))
			}
			if cond.Question == "" || template.QuestionByKey(cond.Question) == nil {
				problems = append(problems, fmt.Sprintf("%s condition #%d references an unknown question", label, j+1))
			}
			if cond.Question != "" && cond.Question == rule.Action.Target {
				problems = append(problems, fmt.Sprintf("%s targets the question that triggers it", label))
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New(strings.Join(problems, "; "))
}
