package requests

import (
	"auditflow-service/internal/app/models"
)

// SaveTemplateRequest is the payload for template create and update. The
// nested question/rule shapes are the stored model shapes.
type SaveTemplateRequest struct {
	Name                string             `json:"name" validate:"required"`
	Description         string             `json:"description"`
	AuditCategory       string             `json:"auditCategory"`
	Sections            []models.Section   `json:"sections"`
	Questions           []models.Question  `json:"questions" validate:"required,min=1"`
	LogicRules          []models.LogicRule `json:"logicRules"`
	ScoringEnabled      bool               `json:"scoringEnabled"`
	ComplianceThreshold *int               `json:"complianceThreshold" validate:"omitempty,min=0,max=100"`
}

func (r *SaveTemplateRequest) ToModel() *models.Template {
	return &models.Template{
		Name:                r.Name,
		Description:         r.Description,
		AuditCategory:       r.AuditCategory,
		Sections:            r.Sections,
		Questions:           r.Questions,
		LogicRules:          r.LogicRules,
		ScoringEnabled:      r.ScoringEnabled,
		ComplianceThreshold: r.ComplianceThreshold,
	}
}
