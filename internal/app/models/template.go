package models

// Question types as they travel on the wire and in stored templates.
const (
	QuestionTypeText     = "text"
	QuestionTypeNumeric  = "numeric"
	QuestionTypeSingle   = "single"
	QuestionTypeMultiple = "multiple"
	QuestionTypeDropdown = "dropdown"
	QuestionTypeDate     = "date"
	QuestionTypeFile     = "file"
	QuestionTypeBarcode  = "barcode"
)

const (
	OperatorEqual          = "=="
	OperatorNotEqual       = "!="
	OperatorLess           = "<"
	OperatorGreater        = ">"
	OperatorLessOrEqual    = "<="
	OperatorGreaterOrEqual = ">="
)

const (
	LogicOpAnd = "AND"
	LogicOpOr  = "OR"
)

const (
	ActionShow = "show"
	ActionHide = "hide"
	// ActionSkip is reserved for navigation control and ignored by
	// visibility resolution.
	ActionSkip = "skip"
)

const (
	TemplateStatusDraft     = "draft"
	TemplateStatusPublished = "published"
)

type Option struct {
	Value string `json:"value" bson:"value"`
}

// Question carries a stable Key minted at save time. Rules, answers and
// scoring address questions by Key; Text is display-only and free to change.
type Question struct {
	Key       string   `json:"key" bson:"key"`
	Section   string   `json:"section" bson:"section"`
	Type      string   `json:"type" bson:"type"`
	Text      string   `json:"text" bson:"text"`
	Options   []Option `json:"options,omitempty" bson:"options,omitempty"`
	Mandatory bool     `json:"mandatory" bson:"mandatory"`
	Min       *float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" bson:"max,omitempty"`
	Critical  bool     `json:"critical" bson:"critical"`
	Weight    *float64 `json:"weight,omitempty" bson:"weight,omitempty"`
}

// EffectiveWeight is the question's scoring weight, defaulting to 1 when the
// author left it unset.
func (q Question) EffectiveWeight() float64 {
	if q.Weight == nil {
		return 1
	}
	return *q.Weight
}

// IsChoiceLike reports whether the question type carries an option list.
func (q Question) IsChoiceLike() bool {
	switch q.Type {
	case QuestionTypeSingle, QuestionTypeMultiple, QuestionTypeDropdown:
		return true
	}
	return false
}

type Condition struct {
	Question string      `json:"question" bson:"question"`
	Operator string      `json:"operator" bson:"operator"`
	Value    interface{} `json:"value" bson:"value"`
	// LogicOp states how this condition combines with the previous one in
	// the list; it is unused on the first condition.
	LogicOp string `json:"logicOp" bson:"logicOp"`
}

type Action struct {
	Type   string `json:"type" bson:"type"`
	Target string `json:"target" bson:"target"`
}

type LogicRule struct {
	Question   string      `json:"question" bson:"question"`
	Conditions []Condition `json:"conditions" bson:"conditions"`
	Action     Action      `json:"action" bson:"action"`
}

type Section struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

type Template struct {
	ID                  string      `json:"id" bson:"_id,omitempty"`
	Name                string      `json:"name" bson:"name"`
	Description         string      `json:"description,omitempty" bson:"description,omitempty"`
	AuditCategory       string      `json:"auditCategory,omitempty" bson:"auditCategory,omitempty"`
	Sections            []Section   `json:"sections" bson:"sections"`
	Questions           []Question  `json:"questions" bson:"questions"`
	LogicRules          []LogicRule `json:"logicRules" bson:"logicRules"`
	ScoringEnabled      bool        `json:"scoringEnabled" bson:"scoringEnabled"`
	ComplianceThreshold *int        `json:"complianceThreshold,omitempty" bson:"complianceThreshold,omitempty"`
	Status              string      `json:"status" bson:"status"`
	TimeModel           `bson:",inline"`
}

// QuestionByKey returns the question carrying the given key, or nil.
func (t *Template) QuestionByKey(key string) *Question {
	for i := range t.Questions {
		if t.Questions[i].Key == key {
			return &t.Questions[i]
		}
	}
	return nil
}

// QuestionByText resolves a display-text reference, used when normalizing
// templates authored before stable keys existed.
func (t *Template) QuestionByText(text string) *Question {
	for i := range t.Questions {
		if t.Questions[i].Text == text {
			return &t.Questions[i]
		}
	}
	return nil
}
