package models

// GenerateRequest represents the inputs for one generate invocation
type GenerateRequest struct {
	OutputDir    string
	TemplatePath string
	Vars         []string
	ConfigPath   string
}

// NewGenerateRequest creates a request with defaults applied
func NewGenerateRequest() *GenerateRequest {
	return &GenerateRequest{
		OutputDir: ".",
		Vars:      []string{},
	}
}
