package models

// FormDefinition is the plaintext form an owner writes in YAML or JSON before
// publishing. It never leaves the owner's machine unencrypted.
type FormDefinition struct {
	// ID is optional; a new UUID v7 is assigned when empty.
	ID          string               `yaml:"id" json:"id"`
	Title       string               `yaml:"title" json:"title"`
	Description string               `yaml:"description" json:"description"`
	Questions   []QuestionDefinition `yaml:"questions" json:"questions"`
}

// QuestionDefinition is one plaintext question of a [FormDefinition]. The
// position in the list becomes the question's Order.
type QuestionDefinition struct {
	// ID is optional; a new UUID v7 is assigned when empty.
	ID          string       `yaml:"id" json:"id"`
	Type        QuestionType `yaml:"type" json:"type"`
	Required    bool         `yaml:"required" json:"required"`
	Text        string       `yaml:"text" json:"text"`
	Description string       `yaml:"description" json:"description"`
	Options     []string     `yaml:"options" json:"options"`
}
