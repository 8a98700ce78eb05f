package prefill

import "errors"

var (
	ErrEmptyTemplateName = errors.New("please enter a template name")
	ErrDuplicateTemplate = errors.New("template already exists")
)
